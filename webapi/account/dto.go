package account

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/dto"
)

// RegisterRequest represents the request body for registering an account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	Phone    string `json:"phone" validate:"required,max=32"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// DepositRequest represents the request body for depositing funds.
// Amount is a decimal string with at most two fractional digits.
type DepositRequest struct {
	Amount string `json:"amount" validate:"required,numeric"`
}

// TransferRequest represents the request body for transferring funds to
// the account registered under Phone.
type TransferRequest struct {
	Phone  string `json:"phone" validate:"required,max=32"`
	Amount string `json:"amount" validate:"required,numeric"`
}

type RegisterResponse struct {
	ID            int64  `json:"id"`
	AccountNumber string `json:"account_number"`
}

type AccountResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	AccountNumber string    `json:"account_number"`
	Balance       string    `json:"balance"`
	CreatedAt     time.Time `json:"created_at"`
}

// LookupResponse is what one holder may learn about another.
type LookupResponse struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	AccountNumber string `json:"account_number"`
}

type BalanceResponse struct {
	Balance string `json:"balance"`
}

type TransferResponse struct {
	Balance      string `json:"balance"`
	ReceiverName string `json:"receiver_name"`
}

type TransactionResponse struct {
	ID               int64     `json:"id"`
	Kind             string    `json:"kind"`
	Direction        string    `json:"direction"`
	Amount           string    `json:"amount"`
	CounterpartName  string    `json:"counterpart_name"`
	CounterpartPhone string    `json:"counterpart_phone"`
	CreatedAt        time.Time `json:"created_at"`
}

func toAccountResponse(a *dto.AccountRead) AccountResponse {
	return AccountResponse{
		ID:            a.ID,
		Name:          a.Name,
		Phone:         a.Phone,
		AccountNumber: a.Number.Display(),
		Balance:       a.Balance.String(),
		CreatedAt:     a.CreatedAt,
	}
}

func toTransactionResponses(views []ledger.View) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(views))
	for _, v := range views {
		out = append(out, TransactionResponse{
			ID:               v.ID,
			Kind:             string(v.Kind),
			Direction:        string(v.Direction),
			Amount:           v.Amount.String(),
			CounterpartName:  v.CounterpartName,
			CounterpartPhone: v.CounterpartPhone,
			CreatedAt:        v.CreatedAt,
		})
	}
	return out
}
