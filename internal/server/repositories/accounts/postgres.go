// Package accounts provides the PostgreSQL-backed repository for account
// records, including their verification state and pending OTP.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/arijitp/notekeeper/internal/dbx"
	"github.com/arijitp/notekeeper/internal/server/models"
	"github.com/arijitp/notekeeper/internal/shared"
)

// uniqueViolation is the PostgreSQL error code raised when an insert hits
// the unique index on lower(email). The index, not an application-side
// pre-check, is the authority on email uniqueness.
const uniqueViolation = "23505"

// PostgresRepository implements account storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new account. A concurrent or repeated insert with the
// same email returns shared.ErrDuplicateEmail.
func (r *PostgresRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {

	query :=
		`INSERT INTO accounts (id, name, email, dob, password_hash, is_verified, otp, otp_expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.Name, account.Email, account.DOB, account.PasswordHash,
		account.IsVerified, account.OTP, account.OTPExpiresAt).Scan(&account.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, shared.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

// GetByEmail looks an account up by its normalized email.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT id, name, email, dob, password_hash, is_verified, otp, otp_expires_at, created_at
		 FROM accounts
		 WHERE lower(email) = lower($1)
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

// GetByID looks an account up by its identifier.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	query :=
		`SELECT id, name, email, dob, password_hash, is_verified, otp, otp_expires_at, created_at
		 FROM accounts
		 WHERE id = $1
		 `

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// Update persists the mutable account fields (verification state and OTP).
func (r *PostgresRepository) Update(ctx context.Context, account *models.Account) error {
	query :=
		`UPDATE accounts
		 SET is_verified = $2, otp = $3, otp_expires_at = $4
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		account.ID, account.IsVerified, account.OTP, account.OTPExpiresAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return shared.ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Account, error) {
	account := &models.Account{}
	err := row.Scan(&account.ID, &account.Name, &account.Email, &account.DOB,
		&account.PasswordHash, &account.IsVerified, &account.OTP, &account.OTPExpiresAt,
		&account.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}
