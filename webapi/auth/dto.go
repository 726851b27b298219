package auth

// LoginRequest represents the request body for authenticating with a phone number and password.
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required,max=32"`
	Password string `json:"password" validate:"required,max=72"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
