package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/arijitp/notekeeper/internal/server/models"
	"github.com/arijitp/notekeeper/internal/server/repositories/repomanager"
	"github.com/arijitp/notekeeper/internal/shared"
)

// NoteService provides ownership-scoped note operations. Every method takes
// the owner id resolved from the bearer token; no note is reachable outside
// its owner's scope.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewNoteService constructs a NoteService.
func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

// Create stores a new note for ownerID. A title that is empty after
// trimming is rejected with shared.ErrInvalidInput and nothing is persisted.
func (s *NoteService) Create(ctx context.Context, ownerID, title string) (*models.Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.ErrInvalidInput
	}

	note := &models.Note{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Title:   title,
	}

	repo := s.repomanager.Notes(s.db)
	note, err := repo.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("error creating note: %v", err)
	}

	return note, nil
}

// ListByOwner returns the owner's notes in creation order. An empty slice
// is a valid result, not an error.
func (s *NoteService) ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error) {
	repo := s.repomanager.Notes(s.db)
	result, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %v", err)
	}
	return result, nil
}

// Delete removes a note owned by ownerID. A note that does not exist and a
// note owned by someone else produce the same shared.ErrNotFound, and
// repeating the call repeats the outcome.
func (s *NoteService) Delete(ctx context.Context, ownerID, noteID string) error {
	repo := s.repomanager.Notes(s.db)
	if err := repo.Delete(ctx, ownerID, noteID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrNotFound
		}
		return fmt.Errorf("error deleting note: %v", err)
	}
	return nil
}
