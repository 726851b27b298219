package auth

import (
	authsvc "github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the authentication endpoints.
func Routes(app *fiber.App, authSvc *authsvc.Service) {
	app.Post("/auth/login", Login(authSvc))
}

// Login handles user authentication and returns a JWT token.
// Unknown phone numbers and wrong passwords produce the same 401 response.
// @Summary Log in
// @Description Exchanges a phone number and password for a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} common.Response{data=LoginResponse} "Login successful"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Invalid credentials"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Router /auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginRequest](c)
		if input == nil {
			return err
		}
		a, err := authSvc.Login(c.UserContext(), input.Phone, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid credentials", err)
		}
		token, err := authSvc.GenerateToken(a)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to generate token", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Login successful", LoginResponse{Token: token})
	}
}
