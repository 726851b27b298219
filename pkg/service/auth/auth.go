// Package auth checks account credentials and issues the tokens the HTTP
// caller trusts as the authenticated account id.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
)

// AccountIDClaim carries the authenticated account id as a decimal string.
const AccountIDClaim = "account_id"

// dummyHash is compared against when the phone is unknown so that both
// failure paths cost one bcrypt comparison.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
	now    func() time.Time
}

func NewWithJWT(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{uow: uow, cfg: cfg, logger: logger.With("service", "auth"), now: time.Now}
}

// Login returns the account registered under phone when password matches its credential.
func (s *Service) Login(
	ctx context.Context,
	phone, password string,
) (*account.Account, error) {
	log := s.logger.With("context", "Login")
	log.Debug("Login called")

	normalized, err := account.NormalizePhone(phone)
	if err != nil {
		_ = utils.CheckPasswordHash(password, dummyHash)
		return nil, domain.ErrUnauthorized
	}

	repo, err := s.uow.AccountRepository()
	if err != nil {
		log.Error("Login failed: repository error", "error", err)
		return nil, domain.ErrStorage
	}
	a, err := repo.GetByPhone(ctx, normalized)
	if err != nil {
		_ = utils.CheckPasswordHash(password, dummyHash)
		if errors.Is(err, domain.ErrNotFound) {
			log.Warn("Login failed", "error", domain.ErrUnauthorized)
			return nil, domain.ErrUnauthorized
		}
		log.Error("Login failed: storage error", "error", err)
		return nil, domain.ErrStorage
	}
	if !utils.CheckPasswordHash(password, a.Credential) {
		log.Warn("Login failed", "accountID", a.ID, "error", domain.ErrUnauthorized)
		return nil, domain.ErrUnauthorized
	}
	log.Info("Login successful", "accountID", a.ID)
	return a, nil
}

// GenerateToken signs an HS256 token for the account.
func (s *Service) GenerateToken(a *account.Account) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims[AccountIDClaim] = strconv.FormatInt(a.ID, 10)
	claims["name"] = a.Name
	claims["exp"] = s.now().Add(s.cfg.Expiry).Unix()
	tokenString, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("GenerateToken failed", "accountID", a.ID, "error", err)
		return "", err
	}
	return tokenString, nil
}

// AccountID extracts the authenticated account id from a verified token.
func AccountID(token *jwt.Token) (int64, error) {
	if token == nil {
		return 0, domain.ErrUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("%w: unexpected claims type", domain.ErrUnauthorized)
	}
	raw, ok := claims[AccountIDClaim].(string)
	if !ok {
		return 0, fmt.Errorf("%w: missing %s claim", domain.ErrUnauthorized, AccountIDClaim)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: malformed %s claim", domain.ErrUnauthorized, AccountIDClaim)
	}
	return id, nil
}
