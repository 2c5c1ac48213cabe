package service

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yvonlcy/wanderlust-api/internal/config"
	"github.com/yvonlcy/wanderlust-api/internal/domain"
	"github.com/yvonlcy/wanderlust-api/internal/repository"
	apperrors "github.com/yvonlcy/wanderlust-api/pkg/util"
)

// fakeAccountRepo is an in-memory AccountRepository with the same
// uniqueness semantics as the Postgres implementation.
type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (f *fakeAccountRepo) Create(_ context.Context, account *domain.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.accounts {
		if existing.Username == account.Username {
			return repository.ErrUsernameTaken
		}
	}
	account.ID = uuid.NewString()
	clone := *account
	f.accounts[account.ID] = &clone
	return nil
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id string) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *account
	return &clone, nil
}

func (f *fakeAccountRepo) GetByUsernameAndRole(_ context.Context, username string, role domain.Role) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, account := range f.accounts {
		if account.Username == username && account.Role == role {
			clone := *account
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeAccountRepo) AddFavorite(_ context.Context, accountID, hotelID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[accountID]
	if !ok || account.Role != domain.RoleMember {
		return pgx.ErrNoRows
	}
	for _, fav := range account.Favorites {
		if fav == hotelID {
			return nil
		}
	}
	account.Favorites = append(account.Favorites, hotelID)
	return nil
}

func (f *fakeAccountRepo) RemoveFavorite(_ context.Context, accountID, hotelID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[accountID]
	if !ok || account.Role != domain.RoleMember {
		return pgx.ErrNoRows
	}
	for i, fav := range account.Favorites {
		if fav == hotelID {
			account.Favorites = append(account.Favorites[:i], account.Favorites[i+1:]...)
			return nil
		}
	}
	// Removing an absent favourite matches nothing.
	return pgx.ErrNoRows
}

func (f *fakeAccountRepo) ListFavorites(_ context.Context, accountID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[accountID]
	if !ok || account.Role != domain.RoleMember {
		return nil, pgx.ErrNoRows
	}
	return append([]string{}, account.Favorites...), nil
}

func (f *fakeAccountRepo) SetPhotoURL(_ context.Context, accountID, photoURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	account, ok := f.accounts[accountID]
	if !ok {
		return pgx.ErrNoRows
	}
	account.PhotoURL = photoURL
	return nil
}

func (f *fakeAccountRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.accounts)
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AccessSecret:          "test-access-secret",
		RefreshSecret:         "test-refresh-secret",
		SignupCode:            "open-sesame",
		AccessTokenTTLMinutes: 15,
		RefreshTokenTTLHours:  7 * 24,
		BcryptCost:            4,
	}
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, status, domainErr.HTTPStatus)
}

func TestRegisterMember(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)

	account, err := svc.RegisterMember(context.Background(), RegisterInput{
		Username: "alice",
		Password: "secret1",
		Email:    "a@x.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, domain.RoleMember, account.Role)
	assert.NotEqual(t, "secret1", account.PasswordHash)
}

func TestRegisterMemberValidation(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newFakeAccountRepo(), nil)

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"empty username", RegisterInput{Username: "", Password: "secret1", Email: "a@x.com"}},
		{"short password", RegisterInput{Username: "alice", Password: "short", Email: "a@x.com"}},
		{"bad email", RegisterInput{Username: "alice", Password: "secret1", Email: "not-an-email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterMember(context.Background(), tt.input)
			requireStatus(t, err, http.StatusBadRequest)
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)

	input := RegisterInput{Username: "alice", Password: "secret1", Email: "a@x.com"}
	_, err := svc.RegisterMember(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.RegisterMember(context.Background(), input)
	requireStatus(t, err, http.StatusConflict)
	assert.Equal(t, 1, repo.count())
}

func TestRegisterOperator(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)

	account, err := svc.RegisterOperator(context.Background(), RegisterInput{
		Username:   "bob",
		Password:   "secret1",
		Email:      "b@x.com",
		Agency:     "Wander Travel",
		SignupCode: "open-sesame",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOperator, account.Role)
	assert.Equal(t, "Wander Travel", account.Agency)
}

func TestRegisterOperatorWrongSignupCode(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)

	_, err := svc.RegisterOperator(context.Background(), RegisterInput{
		Username:   "bob",
		Password:   "secret1",
		Email:      "b@x.com",
		Agency:     "Wander Travel",
		SignupCode: "wrong",
	})
	requireStatus(t, err, http.StatusForbidden)
	// No account may be created on a rejected signup code.
	assert.Equal(t, 0, repo.count())
}

func TestRegisterOperatorMissingAgency(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newFakeAccountRepo(), nil)

	_, err := svc.RegisterOperator(context.Background(), RegisterInput{
		Username:   "bob",
		Password:   "secret1",
		Email:      "b@x.com",
		SignupCode: "open-sesame",
	})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestLogin(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)

	_, err := svc.RegisterMember(context.Background(), RegisterInput{
		Username: "alice", Password: "secret1", Email: "a@x.com",
	})
	require.NoError(t, err)

	account, tokens, err := svc.Login(context.Background(), "alice", "secret1", domain.RoleMember)
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
	require.NotNil(t, tokens)
	assert.NotEmpty(t, tokens.Access)
	assert.NotEmpty(t, tokens.Refresh)
	assert.True(t, tokens.RefreshExpiresAt.After(tokens.AccessExpiresAt))
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)

	_, err := svc.RegisterMember(context.Background(), RegisterInput{
		Username: "alice", Password: "secret1", Email: "a@x.com",
	})
	require.NoError(t, err)

	_, tokens, err := svc.Login(context.Background(), "alice", "wrong", domain.RoleMember)
	requireStatus(t, err, http.StatusUnauthorized)
	assert.Nil(t, tokens)
}

func TestLoginUnknownUserSameError(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)

	_, err := svc.RegisterMember(context.Background(), RegisterInput{
		Username: "alice", Password: "secret1", Email: "a@x.com",
	})
	require.NoError(t, err)

	_, _, unknownErr := svc.Login(context.Background(), "nobody", "secret1", domain.RoleMember)
	_, _, wrongPwErr := svc.Login(context.Background(), "alice", "wrong", domain.RoleMember)

	// The client must not be able to tell which of username/password failed.
	assert.Equal(t, unknownErr.Error(), wrongPwErr.Error())
}

func TestLoginRoleScoped(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)

	_, err := svc.RegisterMember(context.Background(), RegisterInput{
		Username: "alice", Password: "secret1", Email: "a@x.com",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "alice", "secret1", domain.RoleOperator)
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestRefreshAccessToken(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)

	account, err := svc.RegisterMember(context.Background(), RegisterInput{
		Username: "alice", Password: "secret1", Email: "a@x.com",
	})
	require.NoError(t, err)

	_, tokens, err := svc.Login(context.Background(), "alice", "secret1", domain.RoleMember)
	require.NoError(t, err)

	access, _, err := svc.RefreshAccessToken(tokens.Refresh)
	require.NoError(t, err)

	claims, err := svc.TokenManager().ParseAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, domain.RoleMember, claims.Role)
}

func TestRefreshAccessTokenFailures(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newFakeAccountRepo(), nil)

	_, _, err := svc.RefreshAccessToken("")
	requireStatus(t, err, http.StatusBadRequest)

	_, _, err = svc.RefreshAccessToken("garbage.token.value")
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestRefreshRejectsAccessTokenAsRefresh(t *testing.T) {
	// Shared secret so only the token_type tag distinguishes the kinds.
	cfg := testAuthConfig()
	cfg.RefreshSecret = cfg.AccessSecret
	svc := NewAuthService(cfg, newFakeAccountRepo(), nil)

	access, _, err := svc.TokenManager().IssueAccessToken("acc-1", domain.RoleMember)
	require.NoError(t, err)

	_, _, refreshErr := svc.RefreshAccessToken(access)
	requireStatus(t, refreshErr, http.StatusBadRequest)
	assert.Contains(t, refreshErr.Error(), "invalid token type")
}

func TestProfile(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)

	account, err := svc.RegisterMember(context.Background(), RegisterInput{
		Username: "alice", Password: "secret1", Email: "a@x.com",
	})
	require.NoError(t, err)

	profile, err := svc.Profile(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "a@x.com", profile.Email)

	_, err = svc.Profile(context.Background(), uuid.NewString())
	requireStatus(t, err, http.StatusUnauthorized)
}

var _ repository.AccountRepository = (*fakeAccountRepo)(nil)
