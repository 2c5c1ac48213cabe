package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yvonlcy/wanderlust-api/internal/domain"
)

// ErrUsernameTaken is returned when the accounts unique index rejects an
// insert. The index, not the application, is the authoritative check.
var ErrUsernameTaken = errors.New("username already exists")

const uniqueViolationCode = "23505"

// AccountRepository defines persistence access for member and operator accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByUsernameAndRole(ctx context.Context, username string, role domain.Role) (*domain.Account, error)
	AddFavorite(ctx context.Context, accountID, hotelID string) error
	RemoveFavorite(ctx context.Context, accountID, hotelID string) error
	ListFavorites(ctx context.Context, accountID string) ([]string, error)
	SetPhotoURL(ctx context.Context, accountID, photoURL string) error
}

type accountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository returns a Postgres-backed implementation.
func NewAccountRepository(pool *pgxpool.Pool) AccountRepository {
	return &accountRepository{pool: pool}
}

const accountColumns = `id, username, email, password_hash, role, favorites, agency, photo_url, created_at, updated_at`

func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	const query = `
        INSERT INTO accounts (username, email, password_hash, role, favorites, agency)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	if account.Favorites == nil {
		account.Favorites = []string{}
	}
	err := r.pool.QueryRow(ctx, query,
		account.Username,
		account.Email,
		account.PasswordHash,
		account.Role,
		account.Favorites,
		account.Agency,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM accounts WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *accountRepository) GetByUsernameAndRole(ctx context.Context, username string, role domain.Role) (*domain.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM accounts WHERE username=$1 AND role=$2`

	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, username, role).Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&account.Favorites,
		&account.Agency,
		&account.PhotoURL,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Account, error) {
	var account domain.Account
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&account.Favorites,
		&account.Agency,
		&account.PhotoURL,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) AddFavorite(ctx context.Context, accountID, hotelID string) error {
	// Set semantics: re-adding an existing favourite is a no-op, not an error.
	const query = `
        UPDATE accounts
        SET favorites = CASE WHEN $2 = ANY(favorites) THEN favorites ELSE array_append(favorites, $2) END,
            updated_at = NOW()
        WHERE id=$1 AND role='member'`

	cmd, err := r.pool.Exec(ctx, query, accountID, hotelID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountRepository) RemoveFavorite(ctx context.Context, accountID, hotelID string) error {
	// The hotel must actually be in the set; removing an absent favourite
	// matches zero rows and surfaces as not-found.
	const query = `
        UPDATE accounts
        SET favorites = array_remove(favorites, $2), updated_at = NOW()
        WHERE id=$1 AND role='member' AND $2 = ANY(favorites)`

	cmd, err := r.pool.Exec(ctx, query, accountID, hotelID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountRepository) ListFavorites(ctx context.Context, accountID string) ([]string, error) {
	const query = `SELECT favorites FROM accounts WHERE id=$1 AND role='member'`

	var favorites []string
	if err := r.pool.QueryRow(ctx, query, accountID).Scan(&favorites); err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []string{}
	}
	return favorites, nil
}

func (r *accountRepository) SetPhotoURL(ctx context.Context, accountID, photoURL string) error {
	const query = `UPDATE accounts SET photo_url=$2, updated_at=NOW() WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, accountID, photoURL)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
