package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/finances/internal/server/repositories/categories"
	"github.com/dmitrijs2005/finances/internal/server/repositories/codes"
	"github.com/dmitrijs2005/finances/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/finances/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/finances/internal/server/repositories/releases"
	"github.com/dmitrijs2005/finances/internal/server/repositories/usercontacts"
	"github.com/dmitrijs2005/finances/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNewPostgresRepositoryManager_ReturnsInterface(t *testing.T) {
	var _ RepositoryManager = NewPostgresRepositoryManager()
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := &PostgresRepositoryManager{}

	if _, ok := m.Users(db).(*users.PostgresRepository); !ok {
		t.Fatal("Users() not postgres")
	}
	if _, ok := m.Codes(db).(*codes.PostgresRepository); !ok {
		t.Fatal("Codes() not postgres")
	}
	if _, ok := m.UserContacts(db).(*usercontacts.PostgresRepository); !ok {
		t.Fatal("UserContacts() not postgres")
	}
	if _, ok := m.Contacts(db).(*contacts.PostgresRepository); !ok {
		t.Fatal("Contacts() not postgres")
	}
	if _, ok := m.Categories(db).(*categories.PostgresRepository); !ok {
		t.Fatal("Categories() not postgres")
	}
	if _, ok := m.Releases(db).(*releases.PostgresRepository); !ok {
		t.Fatal("Releases() not postgres")
	}
	if _, ok := m.RefreshTokens(db).(*refreshtokens.PostgresRepository); !ok {
		t.Fatal("RefreshTokens() not postgres")
	}
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
