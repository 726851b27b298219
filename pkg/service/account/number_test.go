package account

import (
	"context"
	"testing"

	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRandomSuffixInRange(t *testing.T) {
	for range 10_000 {
		s := randomSuffix()
		require.GreaterOrEqual(t, s, account.MinNumberSuffix)
		require.LessOrEqual(t, s, account.MaxNumberSuffix)
	}
}

func TestNumberAllocator_RetriesOnCollision(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	suffixes := []int{123456, 123456, 654321}
	alloc := &NumberAllocator{maxAttempts: MaxAllocationAttempts, suffix: func() int {
		s := suffixes[0]
		suffixes = suffixes[1:]
		return s
	}}

	repo.EXPECT().NumberExists(mock.Anything, account.Number("4501123456")).Return(true, nil).Twice()
	repo.EXPECT().NumberExists(mock.Anything, account.Number("4501654321")).Return(false, nil).Once()

	n, err := alloc.Allocate(context.Background(), repo)
	require.NoError(t, err)
	assert.Equal(t, account.Number("4501654321"), n)
	assert.Equal(t, "4501-654-321", n.Display())
}

func TestNumberAllocator_Exhausted(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	alloc := &NumberAllocator{maxAttempts: MaxAllocationAttempts, suffix: func() int { return 100000 }}

	repo.EXPECT().NumberExists(mock.Anything, mock.Anything).Return(true, nil).Times(MaxAllocationAttempts)

	_, err := alloc.Allocate(context.Background(), repo)
	assert.ErrorIs(t, err, domain.ErrAllocationExhausted)
}
