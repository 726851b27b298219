//go:build integration

package account_test

import (
	"testing"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TestEngineTestSuite_Postgres runs the engine scenarios against a real
// Postgres server, where concurrent units contend on row locks instead of a
// single connection.
func TestEngineTestSuite_Postgres(t *testing.T) {
	store := testutils.OpenPostgresStore(t)
	suite.Run(t, &EngineTestSuite{openStore: func(t *testing.T) *infra.Store {
		require.NoError(t, store.DB.Exec("TRUNCATE TABLE transactions, accounts RESTART IDENTITY CASCADE").Error)
		return store
	}})
}
