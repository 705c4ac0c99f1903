package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/finances/internal/common"
	"github.com/dmitrijs2005/finances/internal/logging"
	"github.com/dmitrijs2005/finances/internal/server/models"
	"github.com/dmitrijs2005/finances/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvite_SelfInviteCreatesNothing(t *testing.T) {
	env := newTestEnv(t)
	a := env.store.addUser("a@x.com", true)

	_, err := env.invites.Invite(context.Background(), a.ID, a.ID)

	require.ErrorIs(t, err, common.ErrSelfInviteNotAllowed)
	assert.Zero(t, env.store.inviteCount())
}

func TestInvite_Preconditions(t *testing.T) {
	env := newTestEnv(t)
	active := env.store.addUser("a@x.com", true)
	inactive := env.store.addUser("b@x.com", false)
	noIdentity := env.store.addUser("c@x.com", true)
	env.store.mu.Lock()
	delete(env.store.identities, noIdentity.ID)
	env.store.mu.Unlock()

	tests := []struct {
		name      string
		requester string
		receiver  string
		want      error
	}{
		{"unknown requester", uuid.NewString(), active.ID, common.ErrRequesterNotFound},
		{"malformed receiver id", active.ID, "not-a-uuid", common.ErrContactIdentityNotFound},
		{"inactive requester", inactive.ID, active.ID, common.ErrRequesterNotFound},
		{"inactive receiver", active.ID, inactive.ID, common.ErrContactIdentityNotFound},
		{"receiver without identity", active.ID, noIdentity.ID, common.ErrContactIdentityNotFound},
		{"requester without identity", noIdentity.ID, active.ID, common.ErrContactIdentityNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.invites.Invite(context.Background(), tt.requester, tt.receiver)
			require.ErrorIs(t, err, tt.want)
			assert.Zero(t, env.store.inviteCount())
		})
	}
}

func TestInvite_DuplicatePendingRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.store.addUser("a@x.com", true)
	b := env.store.addUser("b@x.com", true)

	first, err := env.invites.Invite(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InviteStatusPending, first.Status)
	assert.Equal(t, env.store.identity(a.ID).ID, first.RequesterID)
	assert.Equal(t, env.store.identity(b.ID).ID, first.ReceiverID)

	_, err = env.invites.Invite(ctx, a.ID, b.ID)
	require.ErrorIs(t, err, common.ErrInviteAlreadyPending)

	_, err = env.invites.Invite(ctx, b.ID, a.ID)
	require.NoError(t, err, "the reverse direction is a different pair")
	assert.Equal(t, 2, env.store.inviteCount())
}

func TestInviteAccept_Scenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.store.addUser("a@x.com", true)
	b := env.store.addUser("b@x.com", true)
	resolvedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	env.invites.clock = func() time.Time { return resolvedAt }

	invite, err := env.invites.Invite(ctx, a.ID, b.ID)
	require.NoError(t, err)

	env.expectTx(true)
	accepted, err := env.invites.Accept(ctx, invite.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InviteStatusAccepted, accepted.Status)
	require.NotNil(t, accepted.ResolvedAt)
	assert.True(t, accepted.ResolvedAt.Equal(resolvedAt))

	list, err := env.invites.ListInvites(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, invite.ID, list[0].ID)
	assert.Equal(t, models.InviteStatusAccepted, list[0].Status)

	forA, err := env.invites.ListContacts(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, forA, 1)
	forB, err := env.invites.ListContacts(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, forB, 1)
	env.verify(t)
}

func TestInviteRefuse_Scenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.store.addUser("a@x.com", true)
	b := env.store.addUser("b@x.com", true)

	invite, err := env.invites.Invite(ctx, a.ID, b.ID)
	require.NoError(t, err)

	env.expectTx(true)
	refused, err := env.invites.Refuse(ctx, invite.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InviteStatusRefused, refused.Status)
	assert.NotNil(t, refused.ResolvedAt)

	contacts, err := env.invites.ListContacts(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, contacts)
	env.verify(t)
}

func TestResolve_OtherReceiverGetsNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.store.addUser("a@x.com", true)
	b := env.store.addUser("b@x.com", true)
	c := env.store.addUser("c@x.com", true)

	invite, err := env.invites.Invite(ctx, a.ID, b.ID)
	require.NoError(t, err)

	for _, resolve := range []func(context.Context, string, string) (*models.Contact, error){
		env.invites.Accept, env.invites.Refuse,
	} {
		env.expectTx(false)
		_, err := resolve(ctx, invite.ID, c.ID)
		require.ErrorIs(t, err, common.ErrInviteNotFound)

		env.expectTx(false)
		_, err = resolve(ctx, invite.ID, a.ID)
		require.ErrorIs(t, err, common.ErrInviteNotFound, "the requester cannot resolve its own invite")
	}

	list, err := env.invites.ListInvites(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.InviteStatusPending, list[0].Status)
	env.verify(t)
}

func TestResolve_UnknownAndMalformedInvite(t *testing.T) {
	env := newTestEnv(t)
	b := env.store.addUser("b@x.com", true)

	env.expectTx(false)
	_, err := env.invites.Accept(context.Background(), uuid.NewString(), b.ID)
	require.ErrorIs(t, err, common.ErrInviteNotFound)

	env.expectTx(false)
	_, err = env.invites.Accept(context.Background(), "42", b.ID)
	require.ErrorIs(t, err, common.ErrInviteNotFound)
	env.verify(t)
}

func TestResolve_LocksInviteInsideTransaction(t *testing.T) {
	db, mock := newSQLMockDB(t)
	rm := repomanager.NewPostgresRepositoryManager()
	graph := NewContactGraph(db, rm, logging.Nop{})
	svc := NewInviteService(db, rm, graph, logging.Nop{})
	userID, contactID, inviteID := uuid.NewString(), uuid.NewString(), uuid.NewString()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id, user_id, username, avatar_key, created_at FROM user_contacts`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "username", "avatar_key", "created_at"}).
			AddRow(contactID, userID, "b_1234", "", time.Now()))
	mock.ExpectQuery(`FROM contacts WHERE id = \$1 AND receiver_id = \$2 FOR UPDATE`).
		WithArgs(inviteID, contactID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "requester_id", "receiver_id", "status", "created_at", "resolved_at"}))
	mock.ExpectRollback()

	_, err := svc.Accept(context.Background(), inviteID, userID)
	require.ErrorIs(t, err, common.ErrInviteNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolve_TerminalStatesDoNotTransition(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.store.addUser("a@x.com", true)
	b := env.store.addUser("b@x.com", true)

	invite, err := env.invites.Invite(ctx, a.ID, b.ID)
	require.NoError(t, err)

	env.expectTx(true)
	_, err = env.invites.Accept(ctx, invite.ID, b.ID)
	require.NoError(t, err)

	env.expectTx(false)
	_, err = env.invites.Refuse(ctx, invite.ID, b.ID)
	require.ErrorIs(t, err, common.ErrInviteAlreadyResolved)

	env.expectTx(false)
	_, err = env.invites.Accept(ctx, invite.ID, b.ID)
	require.ErrorIs(t, err, common.ErrInviteAlreadyResolved)

	list, err := env.invites.ListInvites(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InviteStatusAccepted, list[0].Status)
	env.verify(t)
}

func TestResolve_UpdateFailureRollsBack(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.store.addUser("a@x.com", true)
	b := env.store.addUser("b@x.com", true)

	invite, err := env.invites.Invite(ctx, a.ID, b.ID)
	require.NoError(t, err)

	env.store.fail["contacts.Update"] = errBoom{}
	env.expectTx(false)
	_, err = env.invites.Accept(ctx, invite.ID, b.ID)

	require.ErrorIs(t, err, errBoom{})
	env.verify(t)
}

func TestListInvites_OrderedByCreation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.store.addUser("a@x.com", true)
	b := env.store.addUser("b@x.com", true)
	c := env.store.addUser("c@x.com", true)

	first, err := env.invites.Invite(ctx, a.ID, c.ID)
	require.NoError(t, err)
	second, err := env.invites.Invite(ctx, b.ID, c.ID)
	require.NoError(t, err)

	list, err := env.invites.ListInvites(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	none, err := env.invites.ListInvites(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListInvites_NoIdentity(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.invites.ListInvites(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, common.ErrContactIdentityNotFound)

	_, err = env.invites.ListContacts(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, common.ErrContactIdentityNotFound)
}
