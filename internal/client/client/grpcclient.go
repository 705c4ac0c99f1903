package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/finances/internal/common"
	pb "github.com/dmitrijs2005/finances/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.FinancesServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	access, refresh := s.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)

	if err == nil || method == pb.FinancesService_RefreshToken_FullMethodName {
		return err
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		s.setTokens("", "")
		return rerr
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)

	// tokens refreshed, retry once with the new access token
	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

func NewFinancesClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewFinancesServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, email, firstName, lastName, password string) error {
	req := &pb.RegisterUserRequest{Email: email, FirstName: firstName, LastName: lastName, Password: password}
	if _, err := s.client.RegisterUser(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Activate(ctx context.Context, code string) error {
	if _, err := s.client.ActivateAccount(ctx, &pb.ActivateAccountRequest{Code: code}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) RecoverPassword(ctx context.Context, email string) error {
	if _, err := s.client.RecoverPassword(ctx, &pb.RecoverPasswordRequest{Email: email}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ResetPassword(ctx context.Context, code, newPassword string) error {
	if _, err := s.client.ResetPassword(ctx, &pb.ResetPasswordRequest{Code: code, NewPassword: newPassword}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return s.mapError(err)
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

func (s *GRPCClient) Logout() {
	s.setTokens("", "")
}

func (s *GRPCClient) IsLoggedIn() bool {
	access, _ := s.tokens()
	return access != ""
}

func (s *GRPCClient) MakePublic(ctx context.Context, username, avatarKey string) (*pb.UserContact, error) {
	resp, err := s.client.MakePublic(ctx, &pb.MakePublicRequest{Username: username, AvatarKey: avatarKey})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Contact, nil
}

func (s *GRPCClient) AvatarUploadURL(ctx context.Context) (string, string, error) {
	resp, err := s.client.AvatarUploadURL(ctx, &pb.AvatarUploadURLRequest{})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.Key, resp.Url, nil
}

func (s *GRPCClient) Invite(ctx context.Context, receiverUserID string) (*pb.Invite, error) {
	resp, err := s.client.InviteContact(ctx, &pb.InviteContactRequest{ReceiverUserId: receiverUserID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Invite, nil
}

func (s *GRPCClient) AcceptInvite(ctx context.Context, inviteID string) (*pb.Invite, error) {
	resp, err := s.client.AcceptInvite(ctx, &pb.AcceptInviteRequest{InviteId: inviteID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Invite, nil
}

func (s *GRPCClient) RefuseInvite(ctx context.Context, inviteID string) (*pb.Invite, error) {
	resp, err := s.client.RefuseInvite(ctx, &pb.RefuseInviteRequest{InviteId: inviteID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Invite, nil
}

func (s *GRPCClient) ListInvites(ctx context.Context) ([]*pb.Invite, error) {
	resp, err := s.client.ListInvites(ctx, &pb.ListInvitesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Invites, nil
}

func (s *GRPCClient) ListContacts(ctx context.Context) ([]*pb.Invite, error) {
	resp, err := s.client.ListContacts(ctx, &pb.ListContactsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Contacts, nil
}

func (s *GRPCClient) CreateCategory(ctx context.Context, description string) (*pb.Category, error) {
	resp, err := s.client.CreateCategory(ctx, &pb.CreateCategoryRequest{Description: description})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Category, nil
}

func (s *GRPCClient) ListCategories(ctx context.Context, filter string) ([]*pb.Category, error) {
	resp, err := s.client.ListCategories(ctx, &pb.ListCategoriesRequest{Filter: filter})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Categories, nil
}

func (s *GRPCClient) UpdateCategory(ctx context.Context, id, description string) (*pb.Category, error) {
	resp, err := s.client.UpdateCategory(ctx, &pb.UpdateCategoryRequest{Id: id, Description: description})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Category, nil
}

func (s *GRPCClient) CreateRelease(ctx context.Context, r *pb.Release) (*pb.Release, error) {
	resp, err := s.client.CreateRelease(ctx, &pb.CreateReleaseRequest{Release: r})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Release, nil
}

func (s *GRPCClient) ListReleases(ctx context.Context) ([]*pb.Release, error) {
	resp, err := s.client.ListReleases(ctx, &pb.ListReleasesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Releases, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument, codes.FailedPrecondition, codes.AlreadyExists, codes.NotFound:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
