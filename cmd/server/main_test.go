package main_test

import (
	"io"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/amirasaad/ledger/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

type MainTestSuite struct {
	suite.Suite
	app *fiber.App
}

func (s *MainTestSuite) SetupTest() {
	store := testutils.OpenEmbeddedStore(s.T())
	cfg := &config.App{
		Env:       "test",
		Auth:      &config.Auth{Jwt: &config.Jwt{Secret: "main-test-secret", Expiry: time.Hour}},
		RateLimit: &config.RateLimit{MaxRequests: 100, Window: time.Minute},
	}
	deps := &app.Deps{Uow: store.UnitOfWork(), Logger: testutils.DiscardLogger(), Close: store.Close}
	s.app = webapi.SetupApp(app.New(deps, cfg))
}

func (s *MainTestSuite) request(method, path string) *http.Response {
	resp, err := s.app.Test(httptest.NewRequest(method, path, nil), -1)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestMainTestSuite(t *testing.T) {
	suite.Run(t, new(MainTestSuite))
}

func (s *MainTestSuite) TestRootRoute() {
	s.Equal(http.StatusOK, s.request(http.MethodGet, "/").StatusCode)
}

func (s *MainTestSuite) TestProtectedRoute_MissingToken() {
	s.Equal(http.StatusBadRequest, s.request(http.MethodGet, "/accounts/me").StatusCode)
}

func (s *MainTestSuite) TestNotFoundRoute() {
	s.Equal(http.StatusNotFound, s.request(http.MethodGet, "/doesnotexist").StatusCode)
}

func (s *MainTestSuite) TestLoginRoute_BadRequest() {
	s.Equal(http.StatusBadRequest, s.request(http.MethodPost, "/auth/login").StatusCode)
}
