package account

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/amirasaad/ledger/pkg/middleware"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	authsvc "github.com/amirasaad/ledger/pkg/service/auth"
	ledgersvc "github.com/amirasaad/ledger/pkg/service/ledger"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Routes registers the account endpoints. Everything under /accounts/me acts
// on the account named by the bearer token.
//
// Routes:
//   - POST /accounts                   : Register a new account.
//   - GET  /accounts/me                : Show the authenticated account.
//   - GET  /accounts/lookup?phone=     : Resolve a phone number to a holder.
//   - POST /accounts/me/deposit        : Deposit funds.
//   - POST /accounts/me/transfer       : Transfer funds to a phone number.
//   - GET  /accounts/me/transactions   : List recent transactions.
func Routes(
	app *fiber.App,
	accountSvc *accountsvc.Service,
	ledgerSvc *ledgersvc.Service,
	cfg *config.App,
) {
	app.Post("/accounts", Register(accountSvc))

	protected := middleware.JwtProtected(cfg.Auth.Jwt)
	app.Get("/accounts/lookup", protected, Lookup(accountSvc))
	app.Get("/accounts/me", protected, Me(accountSvc))
	app.Post("/accounts/me/deposit", protected, Deposit(accountSvc))
	app.Post("/accounts/me/transfer", protected, Transfer(accountSvc))
	app.Get("/accounts/me/transactions", protected, Transactions(ledgerSvc))
}

func currentAccountID(c *fiber.Ctx) (int64, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	return authsvc.AccountID(token)
}

// Register creates an account with a zero balance. The password is stored as a bcrypt hash.
// @Summary Register an account
// @Description Creates an account with a zero balance and a freshly allocated account number.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Holder details"
// @Success 201 {object} common.Response{data=RegisterResponse} "Account registered"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 409 {object} common.ProblemDetails "Phone number already registered"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts [post]
func Register(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterRequest](c)
		if input == nil {
			return err
		}
		hash, err := utils.HashPassword(input.Password)
		if err != nil {
			if errors.Is(err, utils.ErrPasswordTooShort) {
				return common.ProblemDetailsJSON(c, "Invalid password", err, err.Error(), fiber.StatusBadRequest)
			}
			return common.ProblemDetailsJSON(c, "Failed to register account", err)
		}
		created, err := accountSvc.CreateAccount(c.UserContext(), input.Name, input.Phone, hash)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to register account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account registered", RegisterResponse{
			ID:            created.ID,
			AccountNumber: created.Number.Display(),
		})
	}
}

// Me returns the authenticated account.
// @Summary Show the authenticated account
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response{data=AccountResponse} "Account fetched"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts/me [get]
// @Security BearerAuth
func Me(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := currentAccountID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		a, err := accountSvc.GetAccountByID(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account fetched", toAccountResponse(a))
	}
}

// @Summary Resolve a phone number to an account holder
// @Tags accounts
// @Produce json
// @Param phone query string true "Phone number"
// @Success 200 {object} common.Response{data=LookupResponse} "Account found"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts/lookup [get]
// @Security BearerAuth
func Lookup(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		phone := c.Query("phone")
		if phone == "" {
			return common.ProblemDetailsJSON(c, "Missing phone", domain.ErrInvalidPhone)
		}
		a, err := accountSvc.GetAccountByPhone(c.UserContext(), phone)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Lookup failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account found", LookupResponse{
			Name:          a.Name,
			Phone:         a.Phone,
			AccountNumber: a.Number.Display(),
		})
	}
}

// Deposit credits the authenticated account and returns the new balance.
// @Summary Deposit funds
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body DepositRequest true "Deposit amount"
// @Success 200 {object} common.Response{data=BalanceResponse} "Deposit successful"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts/me/deposit [post]
// @Security BearerAuth
func Deposit(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := currentAccountID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[DepositRequest](c)
		if input == nil {
			return err
		}
		amount, err := money.Parse(input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid amount", err)
		}
		balance, err := accountSvc.Deposit(c.UserContext(), id, amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Deposit failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", BalanceResponse{Balance: balance.String()})
	}
}

// Transfer moves funds from the authenticated account to the account
// registered under the given phone number.
// @Summary Transfer funds
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Recipient phone and amount"
// @Success 200 {object} common.Response{data=TransferResponse} "Transfer successful"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 422 {object} common.ProblemDetails "Insufficient balance"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts/me/transfer [post]
// @Security BearerAuth
func Transfer(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := currentAccountID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err
		}
		amount, err := money.Parse(input.Amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid amount", err)
		}
		res, err := accountSvc.Transfer(c.UserContext(), id, input.Phone, amount)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Transfer failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer successful", TransferResponse{
			Balance:      res.NewBalance.String(),
			ReceiverName: res.ReceiverName,
		})
	}
}

// @Summary List recent transactions
// @Description Newest first. limit defaults to 20 and is capped at 100.
// @Tags accounts
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} common.Response{data=[]TransactionResponse} "Transactions fetched"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts/me/transactions [get]
// @Security BearerAuth
func Transactions(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := currentAccountID(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		views, err := ledgerSvc.ListTransactions(c.UserContext(), id, c.QueryInt("limit", 0))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", toTransactionResponses(views))
	}
}
