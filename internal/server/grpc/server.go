package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/finances/internal/logging"
	pb "github.com/dmitrijs2005/finances/internal/proto"
	"github.com/dmitrijs2005/finances/internal/server/models"
	"github.com/dmitrijs2005/finances/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
)

type accountSvc interface {
	CreateAccount(ctx context.Context, draft models.UserDraft) (*models.User, error)
	ActivateAccount(ctx context.Context, codeID string) (*models.User, error)
	InitiatePasswordRecovery(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, codeID, newPassword string) error
}

type authSvc interface {
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

type contactSvc interface {
	MakePublic(ctx context.Context, userID, username, avatarKey string) (*models.UserContact, error)
}

type inviteSvc interface {
	Invite(ctx context.Context, requesterUserID, receiverUserID string) (*models.Contact, error)
	Accept(ctx context.Context, inviteID, receiverUserID string) (*models.Contact, error)
	Refuse(ctx context.Context, inviteID, receiverUserID string) (*models.Contact, error)
	ListInvites(ctx context.Context, receiverUserID string) ([]*models.Contact, error)
	ListContacts(ctx context.Context, userID string) ([]*models.Contact, error)
}

type categorySvc interface {
	Create(ctx context.Context, userID, description string) (*models.Category, error)
	List(ctx context.Context, userID, filter string) ([]*models.Category, error)
	Update(ctx context.Context, userID, categoryID, description string) (*models.Category, error)
}

type releaseSvc interface {
	Create(ctx context.Context, userID string, draft models.Release) (*models.Release, error)
	List(ctx context.Context, userID string) ([]*models.Release, error)
}

type avatarSvc interface {
	AvatarUploadURL(ctx context.Context, userID string) (*models.AvatarUploadTask, error)
	AvatarURL(ctx context.Context, key string) (string, error)
}

// Services groups the application services exposed over gRPC.
type Services struct {
	Accounts   accountSvc
	Auth       authSvc
	Contacts   contactSvc
	Invites    inviteSvc
	Categories categorySvc
	Releases   releaseSvc
	Avatars    avatarSvc
}

type GRPCServer struct {
	pb.UnimplementedFinancesServiceServer
	address    string
	accounts   accountSvc
	auth       authSvc
	contacts   contactSvc
	invites    inviteSvc
	categories categorySvc
	releases   releaseSvc
	avatars    avatarSvc
	logger     logging.Logger
	jwtSecret  []byte
}

func NewGRPCServer(a string, l logging.Logger, svc Services, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		accounts:   svc.Accounts,
		auth:       svc.Auth,
		contacts:   svc.Contacts,
		invites:    svc.Invites,
		categories: svc.Categories,
		releases:   svc.Releases,
		avatars:    svc.Avatars,
		jwtSecret:  []byte(secretKey),
	}, nil
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	)
	pb.RegisterFinancesServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
