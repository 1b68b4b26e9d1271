package notes

import (
	"context"

	"github.com/arijitp/notekeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error)
	Delete(ctx context.Context, ownerID, noteID string) error
}
