package repomanager

import (
	"context"
	"database/sql"

	"github.com/arijitp/notekeeper/internal/dbx"
	"github.com/arijitp/notekeeper/internal/server/repositories/accounts"
	"github.com/arijitp/notekeeper/internal/server/repositories/notes"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Notes(db dbx.DBTX) notes.Repository
}
