// Package observability holds the Prometheus collectors of the ledger.
package observability

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ledger"

// Operation names used as metric labels.
const (
	OpCreateAccount = "create_account"
	OpDeposit       = "deposit"
	OpTransfer      = "transfer"
)

var (
	Operations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Engine operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	CommittedAmount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "committed_amount_minor_units_total",
			Help:      "Sum of committed amounts in minor units",
		},
		[]string{"operation"},
	)
)

// Outcome classifies an operation error into a low-cardinality label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "committed"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, domain.ErrSelfTransfer):
		return "self_transfer"
	case errors.Is(err, domain.ErrAlreadyExists):
		return "conflict"
	case errors.Is(err, domain.ErrAllocationExhausted):
		return "exhausted"
	default:
		return "storage_error"
	}
}

// Observe records one finished operation.
func Observe(operation string, amount money.Amount, err error) {
	Operations.WithLabelValues(operation, Outcome(err)).Inc()
	if err == nil && amount > 0 {
		CommittedAmount.WithLabelValues(operation).Add(float64(amount))
	}
}
