// Package services contains server-side business logic. This file implements
// AuthService, which drives the signup → verification → signin lifecycle
// over the account repository, the OTP generator, and the mail transport.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arijitp/notekeeper/internal/dbx"
	"github.com/arijitp/notekeeper/internal/server/auth"
	"github.com/arijitp/notekeeper/internal/server/config"
	"github.com/arijitp/notekeeper/internal/server/mail"
	"github.com/arijitp/notekeeper/internal/server/models"
	"github.com/arijitp/notekeeper/internal/server/otp"
	"github.com/arijitp/notekeeper/internal/server/repositories/repomanager"
	"github.com/arijitp/notekeeper/internal/server/secret"
	"github.com/arijitp/notekeeper/internal/shared"
)

// SignInResult bundles a freshly issued bearer token with the public
// profile of the authenticated account.
type SignInResult struct {
	Token   string
	Profile models.PublicProfile
}

// AuthService provides the account lifecycle operations:
// - SignUp: create an unverified account and dispatch an OTP
// - Verify: consume the OTP and mark the account verified
// - SignIn: check credentials and mint a bearer token
// - ResendOTP: re-issue a code for a still-unverified account
type AuthService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	mailer                mail.Mailer
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	otpValidityDuration   time.Duration
}

// NewAuthService constructs an AuthService using repositories, the mail
// transport, and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, mailer mail.Mailer, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                    db,
		repomanager:           m,
		mailer:                mailer,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		otpValidityDuration:   cfg.OTPValidityDuration,
	}
}

// SignUp creates an unverified account with a fresh OTP and dispatches the
// code by email. The unique index on email is the authority on duplicates:
// there is no pre-check, and a losing racer gets shared.ErrDuplicateEmail.
// A persisted OTP may survive a failed dispatch; retrying signup or calling
// ResendOTP issues a fresh code.
func (s *AuthService) SignUp(ctx context.Context, name, email string, dob *time.Time, password string) error {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return shared.ErrMissingField
	}

	hash, err := secret.Hash(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %v", err)
	}

	code, err := otp.Generate()
	if err != nil {
		return fmt.Errorf("error generating otp: %v", err)
	}
	expiresAt := time.Now().Add(s.otpValidityDuration)

	account := &models.Account{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		DOB:          dob,
		PasswordHash: hash,
		IsVerified:   false,
		OTP:          &code,
		OTPExpiresAt: &expiresAt,
	}

	repo := s.repomanager.Accounts(s.db)
	if _, err := repo.Create(ctx, account); err != nil {
		if errors.Is(err, shared.ErrDuplicateEmail) {
			return shared.ErrDuplicateEmail
		}
		return fmt.Errorf("error creating account: %v", err)
	}

	return s.dispatchOTP(ctx, email, code)
}

// Verify consumes the submitted code. The re-read and the state change run
// in one transaction so a code cannot be spent twice.
func (s *AuthService) Verify(ctx context.Context, email, submittedCode string) error {
	email = normalizeEmail(email)
	if email == "" || submittedCode == "" {
		return shared.ErrMissingField
	}

	code, err := otp.ParseCode(submittedCode)
	if err != nil {
		// An account lookup still decides between 404 and 400 for the caller.
		if _, lookupErr := s.repomanager.Accounts(s.db).GetByEmail(ctx, email); lookupErr != nil {
			if errors.Is(lookupErr, shared.ErrNotFound) {
				return shared.ErrNotFound
			}
			return fmt.Errorf("error searching account: %v", lookupErr)
		}
		return shared.ErrInvalidOTP
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		account, err := repo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.ErrNotFound
			}
			return fmt.Errorf("error searching account: %v", err)
		}

		if account.OTP == nil || account.OTPExpiresAt == nil {
			return shared.ErrInvalidOTP
		}
		if *account.OTP != code || time.Now().After(*account.OTPExpiresAt) {
			return shared.ErrInvalidOTP
		}

		account.IsVerified = true
		account.OTP = nil
		account.OTPExpiresAt = nil

		if err := repo.Update(ctx, account); err != nil {
			return fmt.Errorf("error updating account: %v", err)
		}
		return nil
	})
}

// SignIn checks the password of a verified account and returns a bearer
// token plus the public profile. Verification state is left untouched:
// verify-once at registration, not per session.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, shared.ErrMissingField
	}

	repo := s.repomanager.Accounts(s.db)
	account, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("error searching account: %v", err)
	}

	if !account.IsVerified {
		return nil, shared.ErrNotVerified
	}

	if err := secret.Compare(password, account.PasswordHash); err != nil {
		return nil, shared.ErrIncorrectPassword
	}

	token, err := auth.GenerateToken(account.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %v", err)
	}

	return &SignInResult{Token: token, Profile: account.Public()}, nil
}

// ResendOTP regenerates and dispatches a verification code for an account
// that has not completed verification yet.
func (s *AuthService) ResendOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return shared.ErrMissingField
	}

	repo := s.repomanager.Accounts(s.db)
	account, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrNotFound
		}
		return fmt.Errorf("error searching account: %v", err)
	}

	if account.IsVerified {
		return shared.ErrAlreadyVerified
	}

	code, err := otp.Generate()
	if err != nil {
		return fmt.Errorf("error generating otp: %v", err)
	}
	expiresAt := time.Now().Add(s.otpValidityDuration)

	account.OTP = &code
	account.OTPExpiresAt = &expiresAt

	if err := repo.Update(ctx, account); err != nil {
		return fmt.Errorf("error updating account: %v", err)
	}

	return s.dispatchOTP(ctx, email, code)
}

// ResolveToken verifies a bearer token and re-resolves the embedded account
// id against the store. A valid signature over an account that no longer
// exists yields shared.ErrNotFound.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*models.Account, error) {
	accountID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	account, err := s.repomanager.Accounts(s.db).GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("error searching account: %v", err)
	}

	return account, nil
}

// --- helpers below ---

func (s *AuthService) dispatchOTP(ctx context.Context, email string, code int) error {
	body := mail.OTPBody(code, s.otpValidityDuration.String())
	if err := s.mailer.Send(ctx, email, mail.OTPSubject, body); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrEmailDelivery, err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
