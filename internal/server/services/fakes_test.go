package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/finances/internal/common"
	"github.com/dmitrijs2005/finances/internal/dbx"
	"github.com/dmitrijs2005/finances/internal/logging"
	"github.com/dmitrijs2005/finances/internal/server/models"
	"github.com/dmitrijs2005/finances/internal/server/repositories/categories"
	"github.com/dmitrijs2005/finances/internal/server/repositories/codes"
	"github.com/dmitrijs2005/finances/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/finances/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/finances/internal/server/repositories/releases"
	"github.com/dmitrijs2005/finances/internal/server/repositories/usercontacts"
	"github.com/dmitrijs2005/finances/internal/server/repositories/users"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func uniqueViolation(constraint string) error {
	return fmt.Errorf("db error: %w", &pgconn.PgError{Code: "23505", ConstraintName: constraint})
}

// invalidUUID mirrors what Postgres returns for a malformed id bound to a
// uuid column.
func invalidUUID(id string) error {
	if _, err := uuid.Parse(id); err == nil {
		return nil
	}
	return fmt.Errorf("db error: %w", &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"})
}

// memStore is an in-memory stand-in for the Postgres schema. It enforces the
// same unique indexes the migrations declare. Keys of fail name a repository
// method ("users.Create") whose next calls return the mapped error.
type memStore struct {
	mu         sync.Mutex
	users      map[string]*models.User
	codes      map[string]*models.VerificationCode
	identities map[string]*models.UserContact
	invites    []*models.Contact
	categories map[string]*models.Category
	releases   []*models.Release
	tokens     map[string]*models.RefreshToken
	fail       map[string]error
	seq        time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[string]*models.User{},
		codes:      map[string]*models.VerificationCode{},
		identities: map[string]*models.UserContact{},
		categories: map[string]*models.Category{},
		tokens:     map[string]*models.RefreshToken{},
		fail:       map[string]error{},
		seq:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) tick() time.Time {
	s.seq = s.seq.Add(time.Second)
	return s.seq
}

func (s *memStore) failed(op string) error {
	return s.fail[op]
}

func (s *memStore) validCodes(userID string) []*models.VerificationCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.VerificationCode
	for _, c := range s.codes {
		if c.UserID == userID && c.Valid {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out
}

func (s *memStore) codeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.codes)
}

func (s *memStore) userCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

func (s *memStore) inviteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.invites)
}

// addUser seeds an account with its contact identity when active.
func (s *memStore) addUser(email string, active bool) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &models.User{ID: uuid.NewString(), Email: email, FirstName: "F", LastName: "L",
		PasswordHash: "hashed:password1", Active: active, CreatedAt: s.tick()}
	s.users[u.ID] = u
	if active {
		s.identities[u.ID] = &models.UserContact{ID: uuid.NewString(), UserID: u.ID,
			Username: strings.Split(email, "@")[0], CreatedAt: s.tick()}
	}
	cp := *u
	return &cp
}

func (s *memStore) identity(userID string) *models.UserContact {
	s.mu.Lock()
	defer s.mu.Unlock()
	uc, ok := s.identities[userID]
	if !ok {
		return nil
	}
	cp := *uc
	return &cp
}

// --- users ---

type memUsers struct{ s *memStore }

func (r memUsers) find(op string, match func(u *models.User) bool) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed(op); err != nil {
		return nil, err
	}
	for _, u := range r.s.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find("users.FindByEmail", func(u *models.User) bool { return u.Email == email })
}

func (r memUsers) FindActiveByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find("users.FindActiveByEmail", func(u *models.User) bool { return u.Email == email && u.Active })
}

func (r memUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	if err := invalidUUID(id); err != nil {
		return nil, err
	}
	return r.find("users.FindByID", func(u *models.User) bool { return u.ID == id })
}

func (r memUsers) FindActiveByID(_ context.Context, id string) (*models.User, error) {
	if err := invalidUUID(id); err != nil {
		return nil, err
	}
	return r.find("users.FindActiveByID", func(u *models.User) bool { return u.ID == id && u.Active })
}

func (r memUsers) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("users.Create"); err != nil {
		return nil, err
	}
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return nil, uniqueViolation("users_email_key")
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = r.s.tick()
	cp := *user
	r.s.users[user.ID] = &cp
	return user, nil
}

func (r memUsers) Update(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("users.Update"); err != nil {
		return err
	}
	if _, ok := r.s.users[user.ID]; !ok {
		return common.ErrorNotFound
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

// --- codes ---

type memCodes struct{ s *memStore }

func (r memCodes) FindValidByUserID(_ context.Context, userID string) (*models.VerificationCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("codes.FindValidByUserID"); err != nil {
		return nil, err
	}
	for _, c := range r.s.codes {
		if c.UserID == userID && c.Valid {
			cp := *c
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memCodes) FindByID(_ context.Context, id string) (*models.VerificationCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("codes.FindByID"); err != nil {
		return nil, err
	}
	c, ok := r.s.codes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (r memCodes) Create(_ context.Context, code *models.VerificationCode) (*models.VerificationCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("codes.Create"); err != nil {
		return nil, err
	}
	for _, c := range r.s.codes {
		if code.Valid && c.Valid && c.UserID == code.UserID {
			return nil, uniqueViolation("verification_codes_one_valid_per_user")
		}
	}
	code.ID = uuid.NewString()
	code.CreatedAt = r.s.tick()
	cp := *code
	r.s.codes[code.ID] = &cp
	return code, nil
}

func (r memCodes) Update(_ context.Context, code *models.VerificationCode) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("codes.Update"); err != nil {
		return err
	}
	c, ok := r.s.codes[code.ID]
	if !ok {
		return common.ErrorNotFound
	}
	c.Valid = code.Valid
	return nil
}

// --- user contacts ---

type memUserContacts struct{ s *memStore }

func (r memUserContacts) FindByUserID(_ context.Context, userID string) (*models.UserContact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("usercontacts.FindByUserID"); err != nil {
		return nil, err
	}
	uc, ok := r.s.identities[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *uc
	return &cp, nil
}

func (r memUserContacts) Create(_ context.Context, uc *models.UserContact) (*models.UserContact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("usercontacts.Create"); err != nil {
		return nil, err
	}
	if _, ok := r.s.identities[uc.UserID]; ok {
		return nil, uniqueViolation("user_contacts_user_id_key")
	}
	uc.ID = uuid.NewString()
	uc.CreatedAt = r.s.tick()
	cp := *uc
	r.s.identities[uc.UserID] = &cp
	return uc, nil
}

func (r memUserContacts) UpdateProfile(_ context.Context, uc *models.UserContact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("usercontacts.UpdateProfile"); err != nil {
		return err
	}
	for userID, other := range r.s.identities {
		if userID != uc.UserID && other.Username == uc.Username {
			return uniqueViolation("user_contacts_username_key")
		}
	}
	cur, ok := r.s.identities[uc.UserID]
	if !ok {
		return common.ErrorNotFound
	}
	cur.Username = uc.Username
	cur.AvatarKey = uc.AvatarKey
	return nil
}

// --- contacts ---

type memContacts struct{ s *memStore }

func (r memContacts) Create(_ context.Context, c *models.Contact) (*models.Contact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("contacts.Create"); err != nil {
		return nil, err
	}
	for _, other := range r.s.invites {
		if other.Status == models.InviteStatusPending && c.Status == models.InviteStatusPending &&
			other.RequesterID == c.RequesterID && other.ReceiverID == c.ReceiverID {
			return nil, uniqueViolation("contacts_one_pending_per_pair")
		}
	}
	c.ID = uuid.NewString()
	c.CreatedAt = r.s.tick()
	cp := *c
	r.s.invites = append(r.s.invites, &cp)
	return c, nil
}

func (r memContacts) Update(_ context.Context, c *models.Contact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("contacts.Update"); err != nil {
		return err
	}
	for _, cur := range r.s.invites {
		if cur.ID == c.ID {
			cur.Status = c.Status
			cur.ResolvedAt = c.ResolvedAt
			return nil
		}
	}
	return common.ErrorNotFound
}

func (r memContacts) FindForReceiver(_ context.Context, inviteID, receiverID string) (*models.Contact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("contacts.FindForReceiver"); err != nil {
		return nil, err
	}
	for _, c := range r.s.invites {
		if c.ID == inviteID && c.ReceiverID == receiverID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memContacts) filter(op string, match func(c *models.Contact) bool) ([]*models.Contact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed(op); err != nil {
		return nil, err
	}
	var out []*models.Contact
	for _, c := range r.s.invites {
		if match(c) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r memContacts) ListByReceiver(_ context.Context, receiverID string) ([]*models.Contact, error) {
	return r.filter("contacts.ListByReceiver", func(c *models.Contact) bool { return c.ReceiverID == receiverID })
}

func (r memContacts) ListAccepted(_ context.Context, contactID string) ([]*models.Contact, error) {
	return r.filter("contacts.ListAccepted", func(c *models.Contact) bool {
		return c.Status == models.InviteStatusAccepted && (c.RequesterID == contactID || c.ReceiverID == contactID)
	})
}

// --- categories ---

type memCategories struct{ s *memStore }

func (r memCategories) Create(_ context.Context, c *models.Category) (*models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("categories.Create"); err != nil {
		return nil, err
	}
	c.ID = uuid.NewString()
	c.CreatedAt = r.s.tick()
	cp := *c
	r.s.categories[c.ID] = &cp
	return c, nil
}

func (r memCategories) FindForUser(_ context.Context, id, userID string) (*models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("categories.FindForUser"); err != nil {
		return nil, err
	}
	c, ok := r.s.categories[id]
	if !ok || c.UserID != userID {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (r memCategories) List(_ context.Context, userID, filter string) ([]*models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("categories.List"); err != nil {
		return nil, err
	}
	var out []*models.Category
	for _, c := range r.s.categories {
		if c.UserID == userID && strings.Contains(strings.ToLower(c.Description), strings.ToLower(filter)) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Description < out[j].Description })
	return out, nil
}

func (r memCategories) Update(_ context.Context, c *models.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("categories.Update"); err != nil {
		return err
	}
	cur, ok := r.s.categories[c.ID]
	if !ok || cur.UserID != c.UserID {
		return common.ErrorNotFound
	}
	cur.Description = c.Description
	return nil
}

// --- releases ---

type memReleases struct{ s *memStore }

func (r memReleases) Create(_ context.Context, rel *models.Release) (*models.Release, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("releases.Create"); err != nil {
		return nil, err
	}
	rel.ID = uuid.NewString()
	rel.CreatedAt = r.s.tick()
	cp := *rel
	r.s.releases = append(r.s.releases, &cp)
	return rel, nil
}

func (r memReleases) ListByUser(_ context.Context, userID string) ([]*models.Release, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("releases.ListByUser"); err != nil {
		return nil, err
	}
	var out []*models.Release
	for _, rel := range r.s.releases {
		if rel.UserID == userID {
			cp := *rel
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

// --- refresh tokens ---

type memTokens struct{ s *memStore }

func (r memTokens) Create(_ context.Context, t *models.RefreshToken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("refreshtokens.Create"); err != nil {
		return err
	}
	cp := *t
	r.s.tokens[t.Token] = &cp
	return nil
}

func (r memTokens) FindForUpdate(_ context.Context, token string) (*models.RefreshToken, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("refreshtokens.FindForUpdate"); err != nil {
		return nil, err
	}
	t, ok := r.s.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *t
	return &cp, nil
}

func (r memTokens) Delete(_ context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.failed("refreshtokens.Delete"); err != nil {
		return err
	}
	delete(r.s.tokens, token)
	return nil
}

// --- manager ---

type fakeRepoManager struct{ s *memStore }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return memUsers{m.s} }
func (m *fakeRepoManager) Codes(dbx.DBTX) codes.Repository                 { return memCodes{m.s} }
func (m *fakeRepoManager) UserContacts(dbx.DBTX) usercontacts.Repository   { return memUserContacts{m.s} }
func (m *fakeRepoManager) Contacts(dbx.DBTX) contacts.Repository           { return memContacts{m.s} }
func (m *fakeRepoManager) Categories(dbx.DBTX) categories.Repository       { return memCategories{m.s} }
func (m *fakeRepoManager) Releases(dbx.DBTX) releases.Repository           { return memReleases{m.s} }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return memTokens{m.s} }

// --- collaborators ---

type fakeHasher struct{ err error }

func (h fakeHasher) Hash(p string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + p, nil
}

func (h fakeHasher) Compare(hash, p string) bool { return hash == "hashed:"+p }

type sentCode struct {
	UserID string
	Email  string
	Code   string
}

type recordingNotifier struct {
	mu          sync.Mutex
	activations []sentCode
	recoveries  []sentCode
	err         error
}

func (n *recordingNotifier) SendActivation(_ context.Context, u *models.User, code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.activations = append(n.activations, sentCode{u.ID, u.Email, code})
	return n.err
}

func (n *recordingNotifier) SendRecovery(_ context.Context, u *models.User, code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.recoveries = append(n.recoveries, sentCode{u.ID, u.Email, code})
	return n.err
}

// --- wiring ---

type testEnv struct {
	db       *sql.DB
	mock     sqlmock.Sqlmock
	store    *memStore
	notifier *recordingNotifier
	codes    *CodeManager
	graph    *ContactGraph
	accounts *AccountService
	invites  *InviteService
}

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, mock := newSQLMockDB(t)
	store := newMemStore()
	rm := &fakeRepoManager{s: store}
	notifier := &recordingNotifier{}
	log := logging.Nop{}

	codeManager := NewCodeManager(db, rm)
	graph := NewContactGraph(db, rm, log)
	return &testEnv{
		db:       db,
		mock:     mock,
		store:    store,
		notifier: notifier,
		codes:    codeManager,
		graph:    graph,
		accounts: NewAccountService(db, rm, codeManager, graph, fakeHasher{}, notifier, log),
		invites:  NewInviteService(db, rm, graph, log),
	}
}

// expectTx registers one transaction that either commits or rolls back.
func (e *testEnv) expectTx(commit bool) {
	e.mock.ExpectBegin()
	if commit {
		e.mock.ExpectCommit()
	} else {
		e.mock.ExpectRollback()
	}
}

func (e *testEnv) verify(t *testing.T) {
	t.Helper()
	if err := e.mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
