package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/finances/internal/common"
	pb "github.com/dmitrijs2005/finances/internal/proto"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

/*************
 * Fake pb client
 *************/

// fakePB overrides the calls under test; the embedded interface panics on
// anything else.
type fakePB struct {
	pb.FinancesServiceClient

	lastRefreshTokenReq *pb.RefreshTokenRequest
	lastLoginReq        *pb.LoginRequest
	lastRegisterReq     *pb.RegisterUserRequest
	lastInviteReq       *pb.InviteContactRequest
	lastReleaseReq      *pb.CreateReleaseRequest

	refreshTokenResp *pb.RefreshTokenResponse
	refreshTokenErr  error

	pingResp *pb.PingResponse
	pingErr  error

	loginResp *pb.LoginResponse
	loginErr  error

	registerErr error

	inviteResp *pb.InviteContactResponse
	inviteErr  error

	listInvitesResp *pb.ListInvitesResponse

	releaseErr error
}

func (f *fakePB) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest, opts ...grpc.CallOption) (*pb.RefreshTokenResponse, error) {
	f.lastRefreshTokenReq = in
	return f.refreshTokenResp, f.refreshTokenErr
}
func (f *fakePB) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}
func (f *fakePB) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.LoginResponse, error) {
	f.lastLoginReq = in
	return f.loginResp, f.loginErr
}
func (f *fakePB) RegisterUser(ctx context.Context, in *pb.RegisterUserRequest, opts ...grpc.CallOption) (*pb.RegisterUserResponse, error) {
	f.lastRegisterReq = in
	return &pb.RegisterUserResponse{}, f.registerErr
}
func (f *fakePB) InviteContact(ctx context.Context, in *pb.InviteContactRequest, opts ...grpc.CallOption) (*pb.InviteContactResponse, error) {
	f.lastInviteReq = in
	return f.inviteResp, f.inviteErr
}
func (f *fakePB) ListInvites(ctx context.Context, in *pb.ListInvitesRequest, opts ...grpc.CallOption) (*pb.ListInvitesResponse, error) {
	return f.listInvitesResp, nil
}
func (f *fakePB) CreateRelease(ctx context.Context, in *pb.CreateReleaseRequest, opts ...grpc.CallOption) (*pb.CreateReleaseResponse, error) {
	f.lastReleaseReq = in
	if f.releaseErr != nil {
		return nil, f.releaseErr
	}
	return &pb.CreateReleaseResponse{Release: in.Release}, nil
}

/*************
 * accessTokenInterceptor tests
 *************/

func TestInterceptor_RefreshesTokenOnExpiredAndRetries(t *testing.T) {
	f := &fakePB{
		refreshTokenResp: &pb.RefreshTokenResponse{AccessToken: "A2", RefreshToken: "R2"},
	}
	c := &GRPCClient{
		client:       f,
		accessToken:  "A1",
		refreshToken: "R1",
	}

	callCount := 0
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		callCount++
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AccessTokenHeaderName)
		require.Len(t, toks, 1)

		if callCount == 1 {
			require.Equal(t, "A1", toks[0])
			return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		require.Equal(t, "A2", toks[0])
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)
	require.Equal(t, 2, callCount)
	require.Equal(t, "A2", c.accessToken)
	require.Equal(t, "R2", c.refreshToken)
	require.Equal(t, "R1", f.lastRefreshTokenReq.RefreshToken)
}

func TestInterceptor_FailedRefreshLogsOut(t *testing.T) {
	f := &fakePB{refreshTokenErr: status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())}
	c := &GRPCClient{client: f, accessToken: "A1", refreshToken: "R1"}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
	require.False(t, c.IsLoggedIn())
}

func TestInterceptor_NoRefreshIfNoRefreshToken(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{
		client:      f,
		accessToken: "A1",
	}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
	require.Nil(t, f.lastRefreshTokenReq)
}

func TestInterceptor_NoRefreshForRefreshCall(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f, accessToken: "A1", refreshToken: "R1"}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}

	err := c.accessTokenInterceptor(context.Background(), pb.FinancesService_RefreshToken_FullMethodName, nil, nil, nil, invoker)
	require.Error(t, err)
	require.Nil(t, f.lastRefreshTokenReq)
}

func TestInterceptor_IgnoresOtherErrors(t *testing.T) {
	c := &GRPCClient{accessToken: "X", refreshToken: "R"}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Internal, "boom")
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
}

func TestInterceptor_UnauthenticatedButDifferentMessage_NoRefresh(t *testing.T) {
	c := &GRPCClient{accessToken: "X", refreshToken: "R"}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unauthenticated, "some other reason")
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Error(t, err)
}

func TestInterceptor_AppliesTimeoutAndOmitsEmptyToken(t *testing.T) {
	c := &GRPCClient{timeout: time.Second}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		_, ok := ctx.Deadline()
		require.True(t, ok, "deadline must be set")
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Empty(t, md.Get(common.AccessTokenHeaderName))
		return nil
	}

	require.NoError(t, c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker))
}

/*************
 * mapError tests
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.Unauthenticated, "x")))
	require.Equal(t, ErrUnauthorized, c.mapError(status.Error(codes.PermissionDenied, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.Unavailable, "x")))
	require.Equal(t, ErrUnavailable, c.mapError(status.Error(codes.DeadlineExceeded, "x")))

	err := c.mapError(status.Error(codes.AlreadyExists, "email already registered"))
	require.ErrorIs(t, err, ErrRejected)
	require.EqualError(t, err, "rejected: email already registered")

	e := errors.New("plain")
	require.ErrorContains(t, c.mapError(e), "rpc error:")
	require.NoError(t, c.mapError(nil))
}

/*************
 * call tests
 *************/

func TestPing(t *testing.T) {
	c := &GRPCClient{client: &fakePB{pingResp: &pb.PingResponse{Status: "OK"}}}
	require.NoError(t, c.Ping(context.Background()))

	c = &GRPCClient{client: &fakePB{pingResp: &pb.PingResponse{Status: "NOT_OK"}}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)

	c = &GRPCClient{client: &fakePB{pingErr: status.Error(codes.Unavailable, "down")}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestLogin_SetsTokensAndLogoutClears(t *testing.T) {
	f := &fakePB{loginResp: &pb.LoginResponse{AccessToken: "A", RefreshToken: "R"}}
	c := &GRPCClient{client: f}

	require.False(t, c.IsLoggedIn())
	require.NoError(t, c.Login(context.Background(), "u@x.com", "pw"))
	require.True(t, c.IsLoggedIn())
	require.Equal(t, "R", c.refreshToken)
	require.Equal(t, "u@x.com", f.lastLoginReq.Email)
	require.Equal(t, "pw", f.lastLoginReq.Password)

	c.Logout()
	require.False(t, c.IsLoggedIn())
}

func TestRegister_MapsError(t *testing.T) {
	f := &fakePB{registerErr: status.Error(codes.AlreadyExists, "email already registered")}
	c := &GRPCClient{client: f}

	err := c.Register(context.Background(), "u@x.com", "U", "X", "password1")
	require.ErrorIs(t, err, ErrRejected)
	require.Equal(t, "u@x.com", f.lastRegisterReq.Email)
	require.Equal(t, "U", f.lastRegisterReq.FirstName)
	require.Equal(t, "password1", f.lastRegisterReq.Password)
}

func TestInviteAndList(t *testing.T) {
	f := &fakePB{
		inviteResp:      &pb.InviteContactResponse{Invite: &pb.Invite{Id: "i1", Status: "PENDING"}},
		listInvitesResp: &pb.ListInvitesResponse{Invites: []*pb.Invite{{Id: "i1"}, {Id: "i2"}}},
	}
	c := &GRPCClient{client: f}

	inv, err := c.Invite(context.Background(), "u2")
	require.NoError(t, err)
	require.Equal(t, "i1", inv.Id)
	require.Equal(t, "u2", f.lastInviteReq.ReceiverUserId)

	list, err := c.ListInvites(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	f.inviteErr = status.Error(codes.FailedPrecondition, "user can't invite himself")
	_, err = c.Invite(context.Background(), "u1")
	require.ErrorIs(t, err, ErrRejected)
}

func TestCreateRelease(t *testing.T) {
	f := &fakePB{}
	c := &GRPCClient{client: f}

	r, err := c.CreateRelease(context.Background(), &pb.Release{Value: "10.00", CategoryId: "c1"})
	require.NoError(t, err)
	require.Equal(t, "10.00", r.Value)
	require.Equal(t, "c1", f.lastReleaseReq.Release.CategoryId)

	f.releaseErr = status.Error(codes.InvalidArgument, "value: value must be greater than zero")
	_, err = c.CreateRelease(context.Background(), &pb.Release{})
	require.ErrorIs(t, err, ErrRejected)
}

func TestNewFinancesClient(t *testing.T) {
	c, err := NewFinancesClient("127.0.0.1:0", time.Second)
	require.NoError(t, err)
	require.NoError(t, c.Close())
}
