package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/finances/internal/dbx"
	"github.com/dmitrijs2005/finances/internal/server/repositories/categories"
	"github.com/dmitrijs2005/finances/internal/server/repositories/codes"
	"github.com/dmitrijs2005/finances/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/finances/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/finances/internal/server/repositories/releases"
	"github.com/dmitrijs2005/finances/internal/server/repositories/usercontacts"
	"github.com/dmitrijs2005/finances/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a *sql.DB or a *sql.Tx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Codes(db dbx.DBTX) codes.Repository
	UserContacts(db dbx.DBTX) usercontacts.Repository
	Contacts(db dbx.DBTX) contacts.Repository
	Categories(db dbx.DBTX) categories.Repository
	Releases(db dbx.DBTX) releases.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
}
