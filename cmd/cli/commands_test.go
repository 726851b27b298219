package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCLI(t *testing.T) (*cli, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	store := testutils.OpenEmbeddedStore(t)
	cfg := &config.App{
		Env:  "test",
		Auth: &config.Auth{Jwt: &config.Jwt{Secret: "cli-test-secret", Expiry: time.Hour}},
	}
	deps := &app.Deps{Uow: store.UnitOfWork(), Logger: testutils.DiscardLogger(), Close: store.Close}
	out := &bytes.Buffer{}
	c := newCLI(app.New(deps, cfg), strings.NewReader(""), out)
	c.readPassword = func(string) (string, error) { return "secret123", nil }
	return c, out
}

func TestCLI_Flow(t *testing.T) {
	c, out := newTestCLI(t)
	ctx := context.Background()

	require.NoError(t, c.dispatch(ctx, []string{"register", "Alice", "+201000000001"}))
	assert.Regexp(t, `Account registered: \d{4}-\d{3}-\d{3}`, out.String())
	require.NoError(t, c.dispatch(ctx, []string{"register", "Bob", "+201000000002"}))

	out.Reset()
	require.NoError(t, c.dispatch(ctx, []string{"deposit", "+201000000001", "50.00"}))
	assert.Contains(t, out.String(), "New balance: 50.00")

	out.Reset()
	require.NoError(t, c.dispatch(ctx, []string{"transfer", "+201000000001", "+201000000002", "20"}))
	assert.Contains(t, out.String(), "Sent 20.00 to Bob. New balance: 30.00")

	out.Reset()
	require.NoError(t, c.dispatch(ctx, []string{"show", "+201000000002"}))
	assert.Contains(t, out.String(), "Bob")
	assert.Contains(t, out.String(), "20.00")

	out.Reset()
	require.NoError(t, c.dispatch(ctx, []string{"history", "+201000000001", "1"}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "debit")
	assert.Contains(t, lines[0], "Bob (+201000000002)")
}

func TestCLI_Errors(t *testing.T) {
	c, _ := newTestCLI(t)
	ctx := context.Background()

	assert.ErrorIs(t, c.dispatch(ctx, nil), errUsage)
	assert.ErrorIs(t, c.dispatch(ctx, []string{"withdraw"}), errUsage)
	assert.ErrorIs(t, c.dispatch(ctx, []string{"deposit", "+201000000001"}), errUsage)
	assert.ErrorIs(t, c.dispatch(ctx, []string{"history", "+201000000001", "ten"}), errUsage)

	assert.ErrorIs(t, c.dispatch(ctx, []string{"show", "+201000000009"}), domain.ErrUnauthorized)

	require.NoError(t, c.dispatch(ctx, []string{"register", "Alice", "+201000000001"}))
	assert.ErrorIs(t, c.dispatch(ctx, []string{"register", "Alice", "+201000000001"}), domain.ErrAlreadyExists)
	assert.ErrorIs(t, c.dispatch(ctx, []string{"deposit", "+201000000001", "1.234"}), domain.ErrInvalidAmount)
	assert.ErrorIs(t,
		c.dispatch(ctx, []string{"transfer", "+201000000001", "+201000000001", "1"}),
		domain.ErrSelfTransfer,
	)

	c.readPassword = func(string) (string, error) { return "wrong-password", nil }
	assert.ErrorIs(t, c.dispatch(ctx, []string{"deposit", "+201000000001", "1"}), domain.ErrUnauthorized)
}

func TestPromptPassword_NonTerminal(t *testing.T) {
	out := &bytes.Buffer{}
	c := newCLI(nil, strings.NewReader("hunter22\nrest\n"), out)
	c.isTerminal = func(int) bool { return false }
	pw, err := c.promptPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "hunter22", pw)
	assert.Equal(t, "Password: ", out.String())
}
