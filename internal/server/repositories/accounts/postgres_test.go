package accounts

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/arijitp/notekeeper/internal/server/models"
	"github.com/arijitp/notekeeper/internal/shared"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func accountColumns() []string {
	return []string{"id", "name", "email", "dob", "password_hash", "is_verified", "otp", "otp_expires_at", "created_at"}
}

const insertQuery = `(?s)^INSERT\s+INTO\s+accounts\s*\(id,\s*name,\s*email,\s*dob,\s*password_hash,\s*is_verified,\s*otp,\s*otp_expires_at\)`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now()
	code := 123456
	expires := created.Add(24 * time.Hour)

	mock.ExpectQuery(insertQuery).
		WithArgs("id-1", "alice", "a@x.com", nil, "hash", false, code, expires).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	a := &models.Account{
		ID: "id-1", Name: "alice", Email: "a@x.com", PasswordHash: "hash",
		OTP: &code, OTPExpiresAt: &expires,
	}
	got, err := repo.Create(context.Background(), a)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected created_at: %v", got.CreatedAt)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})

	code := 123456
	expires := time.Now().Add(time.Hour)
	a := &models.Account{ID: "id-2", Name: "alice", Email: "a@x.com", PasswordHash: "hash", OTP: &code, OTPExpiresAt: &expires}

	_, err := repo.Create(context.Background(), a)
	if !errors.Is(err, shared.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).WillReturnError(errors.New("boom"))

	code := 123456
	expires := time.Now().Add(time.Hour)
	a := &models.Account{ID: "id-3", Name: "alice", Email: "a@x.com", PasswordHash: "hash", OTP: &code, OTPExpiresAt: &expires}

	if _, err := repo.Create(context.Background(), a); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGetByEmail_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now()
	rows := sqlmock.NewRows(accountColumns()).
		AddRow("id-1", "alice", "a@x.com", nil, "hash", true, nil, nil, created)

	mock.ExpectQuery(`(?s)^SELECT\s+.+\s+FROM\s+accounts\s+WHERE\s+lower\(email\)\s*=\s*lower\(\$1\)`).
		WithArgs("a@x.com").
		WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != "id-1" || !got.IsVerified || got.OTP != nil {
		t.Fatalf("unexpected account: %+v", got)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+.+\s+FROM\s+accounts\s+WHERE\s+lower\(email\)`).
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@x.com")
	if !errors.Is(err, shared.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+.+\s+FROM\s+accounts\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, shared.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^UPDATE\s+accounts\s+SET\s+is_verified`).
		WithArgs("id-1", true, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	a := &models.Account{ID: "id-1", IsVerified: true}
	if err := repo.Update(context.Background(), a); err != nil {
		t.Fatalf("Update error: %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^UPDATE\s+accounts\s+SET\s+is_verified`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	a := &models.Account{ID: "missing"}
	if err := repo.Update(context.Background(), a); !errors.Is(err, shared.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
