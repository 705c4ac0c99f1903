package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/finances/internal/common"
	"github.com/dmitrijs2005/finances/internal/dbx"
	"github.com/dmitrijs2005/finances/internal/logging"
	"github.com/dmitrijs2005/finances/internal/server/models"
	"github.com/dmitrijs2005/finances/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/finances/internal/validation"
	"github.com/google/uuid"
)

const usernameConstraint = "user_contacts_username_key"

var usernameUnsafe = regexp.MustCompile(`[^a-z0-9_.\-]+`)

// ContactGraph owns UserContact identities and lookups of invite edges.
// It does not transition invites; see InviteService.
type ContactGraph struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewContactGraph(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *ContactGraph {
	return &ContactGraph{db: db, repomanager: m, log: log}
}

// IdentityFor returns the user's contact identity or
// common.ErrContactIdentityNotFound.
func (g *ContactGraph) IdentityFor(ctx context.Context, userID string) (*models.UserContact, error) {
	return g.identityFor(ctx, g.db, userID)
}

func (g *ContactGraph) identityFor(ctx context.Context, db dbx.DBTX, userID string) (*models.UserContact, error) {
	uc, err := g.repomanager.UserContacts(db).FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrContactIdentityNotFound
		}
		return nil, fmt.Errorf("error searching contact identity: %w", err)
	}
	return uc, nil
}

// FindPendingInvite returns the invite only when it is addressed to
// receiverContactID. Unknown ids and invites for other receivers both yield
// common.ErrInviteNotFound. The row is locked FOR UPDATE, so tx should be the
// transaction that goes on to resolve the invite.
func (g *ContactGraph) FindPendingInvite(ctx context.Context, tx dbx.DBTX, inviteID, receiverContactID string) (*models.Contact, error) {
	if _, err := uuid.Parse(inviteID); err != nil {
		return nil, common.ErrInviteNotFound
	}

	c, err := g.repomanager.Contacts(tx).FindForReceiver(ctx, inviteID, receiverContactID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInviteNotFound
		}
		return nil, fmt.Errorf("error searching invite: %w", err)
	}
	return c, nil
}

// EnsureIdentity creates the user's contact identity if it does not exist
// yet. The default username is the email local part plus a random suffix.
func (g *ContactGraph) EnsureIdentity(ctx context.Context, tx dbx.DBTX, user *models.User) (*models.UserContact, error) {
	uc, err := g.identityFor(ctx, tx, user.ID)
	if err == nil {
		return uc, nil
	}
	if !errors.Is(err, common.ErrContactIdentityNotFound) {
		return nil, err
	}

	uc, err = g.repomanager.UserContacts(tx).Create(ctx, &models.UserContact{
		UserID:   user.ID,
		Username: DefaultUsername(user.Email),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating contact identity: %w", err)
	}

	g.log.Info(ctx, "contact identity created", "user_id", user.ID, "username", uc.Username)
	return uc, nil
}

// DefaultUsername derives a public handle from an email address.
func DefaultUsername(email string) string {
	local, _, _ := strings.Cut(strings.ToLower(email), "@")
	local = usernameUnsafe.ReplaceAllString(local, "")
	if len(local) > 20 {
		local = local[:20]
	}
	if local == "" {
		local = "user"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return local + "_" + suffix
}

// MakePublic sets the user's public handle and avatar. avatarKey must be
// empty or a key previously issued by AvatarService for this user.
func (g *ContactGraph) MakePublic(ctx context.Context, userID, username, avatarKey string) (*models.UserContact, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if err := validation.ValidateUsername(username); err != nil {
		return nil, err
	}
	if avatarKey != "" && !strings.HasPrefix(avatarKey, AvatarKeyPrefix(userID)) {
		return nil, validation.FieldError{Field: "avatar_key", Message: "avatar key does not belong to the user"}
	}

	uc, err := g.IdentityFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	uc.Username = username
	uc.AvatarKey = avatarKey
	if err := g.repomanager.UserContacts(g.db).UpdateProfile(ctx, uc); err != nil {
		switch {
		case dbx.IsUniqueViolation(err, usernameConstraint):
			return nil, common.ErrUsernameTaken
		case errors.Is(err, common.ErrorNotFound):
			return nil, common.ErrContactIdentityNotFound
		}
		return nil, fmt.Errorf("error updating profile: %w", err)
	}

	return uc, nil
}
