// Package httpapi exposes the JSON HTTP surface of the notes service:
// the /api/auth lifecycle endpoints and the token-gated /api/note CRUD.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/arijitp/notekeeper/internal/logging"
	"github.com/arijitp/notekeeper/internal/server/models"
	"github.com/arijitp/notekeeper/internal/server/services"
)

// AuthService is the slice of the auth state machine the handlers consume.
type AuthService interface {
	SignUp(ctx context.Context, name, email string, dob *time.Time, password string) error
	Verify(ctx context.Context, email, submittedCode string) error
	SignIn(ctx context.Context, email, password string) (*services.SignInResult, error)
	ResendOTP(ctx context.Context, email string) error
	ResolveToken(ctx context.Context, token string) (*models.Account, error)
}

// NoteService is the slice of the note operations the handlers consume.
type NoteService interface {
	Create(ctx context.Context, ownerID, title string) (*models.Note, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error)
	Delete(ctx context.Context, ownerID, noteID string) error
}

// Server serves the HTTP API over the injected services.
type Server struct {
	address        string
	auth           AuthService
	notes          NoteService
	logger         logging.Logger
	requestTimeout time.Duration
}

func NewServer(address string, l logging.Logger, as AuthService, ns NoteService, requestTimeout time.Duration) *Server {
	return &Server{
		address:        address,
		auth:           as,
		notes:          ns,
		logger:         l.With("module", "http_server"),
		requestTimeout: requestTimeout,
	}
}

// Router builds the chi router with the full middleware stack and routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	// The deadline covers inline OTP mail dispatch on signup/signin paths.
	r.Use(middleware.Timeout(s.requestTimeout))

	r.Get("/", s.handleRoot)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", s.handleSignUp)
			r.Post("/verify", s.handleVerify)
			r.Post("/signin", s.handleSignIn)
			r.Post("/resend-otp", s.handleResendOTP)
		})

		r.Route("/note", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/", s.handleCreateNote)
			r.Get("/", s.handleListNotes)
			r.Delete("/{id}", s.handleDeleteNote)
		})
	})

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx ends.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Notes app server"))
}
