package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/finances/internal/common"
	"github.com/dmitrijs2005/finances/internal/dbx"
	"github.com/dmitrijs2005/finances/internal/logging"
	"github.com/dmitrijs2005/finances/internal/server/models"
	"github.com/dmitrijs2005/finances/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const pendingInviteConstraint = "contacts_one_pending_per_pair"

// InviteService runs the invite state machine:
// PENDING -> ACCEPTED or PENDING -> REFUSED. Resolved invites never change.
type InviteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	graph       *ContactGraph
	log         logging.Logger
	clock       clock
}

func NewInviteService(db *sql.DB, m repomanager.RepositoryManager, graph *ContactGraph, log logging.Logger) *InviteService {
	return &InviteService{db: db, repomanager: m, graph: graph, log: log}
}

// Invite creates a PENDING invite from the requester to the receiver.
func (s *InviteService) Invite(ctx context.Context, requesterUserID, receiverUserID string) (*models.Contact, error) {
	if requesterUserID == receiverUserID {
		return nil, common.ErrSelfInviteNotAllowed
	}
	if _, err := uuid.Parse(receiverUserID); err != nil {
		return nil, common.ErrContactIdentityNotFound
	}

	usersRepo := s.repomanager.Users(s.db)
	if _, err := usersRepo.FindActiveByID(ctx, requesterUserID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrRequesterNotFound
		}
		return nil, fmt.Errorf("error searching requester: %w", err)
	}
	if _, err := usersRepo.FindActiveByID(ctx, receiverUserID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrContactIdentityNotFound
		}
		return nil, fmt.Errorf("error searching receiver: %w", err)
	}

	requester, err := s.graph.identityFor(ctx, s.db, requesterUserID)
	if err != nil {
		return nil, err
	}
	receiver, err := s.graph.identityFor(ctx, s.db, receiverUserID)
	if err != nil {
		return nil, err
	}

	invite, err := s.repomanager.Contacts(s.db).Create(ctx, &models.Contact{
		RequesterID: requester.ID,
		ReceiverID:  receiver.ID,
		Status:      models.InviteStatusPending,
	})
	if err != nil {
		if dbx.IsUniqueViolation(err, pendingInviteConstraint) {
			return nil, common.ErrInviteAlreadyPending
		}
		return nil, fmt.Errorf("error creating invite: %w", err)
	}

	s.log.Info(ctx, "invite created", "invite_id", invite.ID, "requester_id", requester.ID, "receiver_id", receiver.ID)
	return invite, nil
}

// Accept moves a PENDING invite addressed to the receiver to ACCEPTED.
func (s *InviteService) Accept(ctx context.Context, inviteID, receiverUserID string) (*models.Contact, error) {
	return s.resolve(ctx, inviteID, receiverUserID, models.InviteStatusAccepted)
}

// Refuse moves a PENDING invite addressed to the receiver to REFUSED.
func (s *InviteService) Refuse(ctx context.Context, inviteID, receiverUserID string) (*models.Contact, error) {
	return s.resolve(ctx, inviteID, receiverUserID, models.InviteStatusRefused)
}

func (s *InviteService) resolve(ctx context.Context, inviteID, receiverUserID string, to models.InviteStatus) (*models.Contact, error) {
	var invite *models.Contact
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		receiver, err := s.graph.identityFor(ctx, tx, receiverUserID)
		if err != nil {
			return err
		}

		invite, err = s.graph.FindPendingInvite(ctx, tx, inviteID, receiver.ID)
		if err != nil {
			return err
		}
		if invite.Status.Terminal() {
			return common.ErrInviteAlreadyResolved
		}

		resolvedAt := s.clock.now()
		invite.Status = to
		invite.ResolvedAt = &resolvedAt
		if err := s.repomanager.Contacts(tx).Update(ctx, invite); err != nil {
			return fmt.Errorf("error updating invite: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "invite resolved", "invite_id", invite.ID, "status", string(invite.Status))
	return invite, nil
}

// ListInvites returns every invite addressed to the receiver, oldest first,
// regardless of state.
func (s *InviteService) ListInvites(ctx context.Context, receiverUserID string) ([]*models.Contact, error) {
	receiver, err := s.graph.IdentityFor(ctx, receiverUserID)
	if err != nil {
		return nil, err
	}

	invites, err := s.repomanager.Contacts(s.db).ListByReceiver(ctx, receiver.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing invites: %w", err)
	}
	return invites, nil
}

// ListContacts returns accepted invites in which the user takes either side.
func (s *InviteService) ListContacts(ctx context.Context, userID string) ([]*models.Contact, error) {
	identity, err := s.graph.IdentityFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	contacts, err := s.repomanager.Contacts(s.db).ListAccepted(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("error listing contacts: %w", err)
	}
	return contacts, nil
}
