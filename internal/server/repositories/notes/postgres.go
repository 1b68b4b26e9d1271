// Package notes provides the PostgreSQL-backed repository for note records.
// Every query is scoped to an owner id; a note is never visible outside it.
package notes

import (
	"context"
	"fmt"

	"github.com/arijitp/notekeeper/internal/dbx"
	"github.com/arijitp/notekeeper/internal/server/models"
	"github.com/arijitp/notekeeper/internal/shared"
)

// PostgresRepository implements note storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new note for the owner.
func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {

	query :=
		`INSERT INTO notes (id, owner_id, title)
		 VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		note.ID, note.OwnerID, note.Title).Scan(&note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

// ListByOwner returns all notes belonging to ownerID in creation order.
// An empty result is not an error.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error) {
	query :=
		`SELECT id, owner_id, title, created_at, updated_at FROM notes
		 WHERE owner_id = $1
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()

	var result []*models.Note
	for rows.Next() {
		var item models.Note
		if err := rows.Scan(&item.ID, &item.OwnerID, &item.Title, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the note only if it belongs to ownerID. A missing note and
// a foreign note produce the same shared.ErrNotFound, so the outcome does
// not leak whether another user's note exists.
func (r *PostgresRepository) Delete(ctx context.Context, ownerID, noteID string) error {
	query :=
		`DELETE FROM notes
		 WHERE id = $1 AND owner_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, noteID, ownerID)
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
	if n > 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}

	return nil
}
