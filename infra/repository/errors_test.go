package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapGormErrorToDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{"duplicate key", gorm.ErrDuplicatedKey, domain.ErrAlreadyExists},
		{"record not found", gorm.ErrRecordNotFound, domain.ErrNotFound},
		{"check constraint", gorm.ErrCheckConstraintViolated, domain.ErrInsufficientBalance},
		{"foreign key", gorm.ErrForeignKeyViolated, domain.ErrNotFound},
		{"wrapped duplicate key", fmt.Errorf("insert account: %w", gorm.ErrDuplicatedKey), domain.ErrAlreadyExists},
		{"joined not found", errors.Join(errors.New("outer"), gorm.ErrRecordNotFound), domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, MapGormErrorToDomain(tt.input), tt.expected)
		})
	}
}

func TestMapGormErrorToDomain_Passthrough(t *testing.T) {
	t.Parallel()

	assert.NoError(t, MapGormErrorToDomain(nil))

	driverErr := errors.New("dial tcp: connection refused")
	assert.Same(t, driverErr, MapGormErrorToDomain(driverErr))

	unmapped := MapGormErrorToDomain(gorm.ErrInvalidField)
	assert.Equal(t, gorm.ErrInvalidField, unmapped)
	assert.False(t, domain.IsDomainError(unmapped))
}
