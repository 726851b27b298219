package repository

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors so that callers
// never see driver types. Errors without a domain meaning are returned as is
// and classified as storage failures by the services.
func MapGormErrorToDomain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrAlreadyExists
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		// balance >= 0 is the only check a write path can trip.
		return domain.ErrInsufficientBalance
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrNotFound
	default:
		return err
	}
}
