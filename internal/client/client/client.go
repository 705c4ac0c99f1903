package client

import (
	"context"

	pb "github.com/dmitrijs2005/finances/internal/proto"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, email, firstName, lastName, password string) error
	Activate(ctx context.Context, code string) error
	RecoverPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, code, newPassword string) error
	Login(ctx context.Context, email, password string) error
	Logout()
	IsLoggedIn() bool

	MakePublic(ctx context.Context, username, avatarKey string) (*pb.UserContact, error)
	AvatarUploadURL(ctx context.Context) (key, url string, err error)
	Invite(ctx context.Context, receiverUserID string) (*pb.Invite, error)
	AcceptInvite(ctx context.Context, inviteID string) (*pb.Invite, error)
	RefuseInvite(ctx context.Context, inviteID string) (*pb.Invite, error)
	ListInvites(ctx context.Context) ([]*pb.Invite, error)
	ListContacts(ctx context.Context) ([]*pb.Invite, error)

	CreateCategory(ctx context.Context, description string) (*pb.Category, error)
	ListCategories(ctx context.Context, filter string) ([]*pb.Category, error)
	UpdateCategory(ctx context.Context, id, description string) (*pb.Category, error)
	CreateRelease(ctx context.Context, r *pb.Release) (*pb.Release, error)
	ListReleases(ctx context.Context) ([]*pb.Release, error)
}
