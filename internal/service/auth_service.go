package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yvonlcy/wanderlust-api/internal/auth"
	"github.com/yvonlcy/wanderlust-api/internal/config"
	"github.com/yvonlcy/wanderlust-api/internal/domain"
	"github.com/yvonlcy/wanderlust-api/internal/events"
	"github.com/yvonlcy/wanderlust-api/internal/repository"
	apperrors "github.com/yvonlcy/wanderlust-api/pkg/util"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// TokenPair bundles the access and refresh tokens issued at login.
type TokenPair struct {
	Access           string
	AccessExpiresAt  time.Time
	Refresh          string
	RefreshExpiresAt time.Time
}

// RegisterInput carries validated-on-entry registration fields.
type RegisterInput struct {
	Username   string
	Password   string
	Email      string
	Agency     string
	SignupCode string
}

// AuthService coordinates registration, login and token refresh flows.
type AuthService struct {
	accounts   repository.AccountRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
	signupCode string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, accounts repository.AccountRepository, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{
		accounts:   accounts,
		tokenMgr:   auth.NewTokenManager(cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessTokenTTLMinutes, cfg.RefreshTokenTTLHours),
		dispatcher: dispatcher,
		bcryptCost: cfg.BcryptCost,
		signupCode: cfg.SignupCode,
	}
}

// RegisterMember creates a new member account.
func (s *AuthService) RegisterMember(ctx context.Context, in RegisterInput) (*domain.Account, error) {
	if err := validateCredentials(in.Username, in.Password, in.Email); err != nil {
		return nil, err
	}
	return s.register(ctx, in, domain.RoleMember)
}

// RegisterOperator creates a new operator account. The signup code must
// match the server-side secret before anything is written.
func (s *AuthService) RegisterOperator(ctx context.Context, in RegisterInput) (*domain.Account, error) {
	if err := validateCredentials(in.Username, in.Password, in.Email); err != nil {
		return nil, err
	}
	if in.Agency == "" {
		return nil, apperrors.NewValidationError("agency is required", nil)
	}
	if in.SignupCode == "" {
		return nil, apperrors.NewValidationError("signup code is required", nil)
	}
	if in.SignupCode != s.signupCode {
		return nil, apperrors.NewForbidden("invalid signup code")
	}
	return s.register(ctx, in, domain.RoleOperator)
}

func (s *AuthService) register(ctx context.Context, in RegisterInput, role domain.Role) (*domain.Account, error) {
	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	account := &domain.Account{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		Favorites:    []string{},
		Agency:       in.Agency,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, apperrors.NewConflict("username already exists", nil)
		}
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventAccountRegistered,
			Timestamp: time.Now(),
			Payload: events.AccountRegisteredPayload{
				AccountID: account.ID,
				Username:  account.Username,
				Role:      account.Role,
			},
		})
	}
	return account, nil
}

// Login authenticates an account scoped to the expected role and issues a
// token pair. A missing account and a wrong password are indistinguishable
// in the returned error.
func (s *AuthService) Login(ctx context.Context, username, password string, role domain.Role) (*domain.Account, *TokenPair, error) {
	if username == "" || password == "" {
		return nil, nil, apperrors.NewValidationError("username and password are required", nil)
	}

	account, err := s.accounts.GetByUsernameAndRole(ctx, username, role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewUnauthorized("invalid username or password")
		}
		return nil, nil, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, nil, apperrors.NewUnauthorized("invalid username or password")
	}

	access, accessExp, err := s.tokenMgr.IssueAccessToken(account.ID, account.Role)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	refresh, refreshExp, err := s.tokenMgr.IssueRefreshToken(account.ID, account.Role)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}

	return account, &TokenPair{
		Access:           access,
		AccessExpiresAt:  accessExp,
		Refresh:          refresh,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// RefreshAccessToken mints a new access token from a valid refresh token.
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, time.Time, error) {
	if refreshToken == "" {
		return "", time.Time{}, apperrors.NewValidationError("refresh token required", nil)
	}
	access, exp, err := s.tokenMgr.Refresh(refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidTokenType) {
			return "", time.Time{}, apperrors.NewValidationError("invalid token type", nil)
		}
		return "", time.Time{}, apperrors.NewUnauthorized("invalid or expired refresh token")
	}
	return access, exp, nil
}

// Profile returns the public profile fields for the authenticated account.
func (s *AuthService) Profile(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("account not found")
		}
		return nil, apperrors.MapError(err)
	}
	return account, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func validateCredentials(username, password, email string) error {
	if username == "" {
		return apperrors.NewValidationError("username is required", nil)
	}
	if len(password) < minPasswordLength {
		return apperrors.NewValidationError("password must be at least 6 characters", nil)
	}
	if !emailPattern.MatchString(email) {
		return apperrors.NewValidationError("invalid email", nil)
	}
	return nil
}
