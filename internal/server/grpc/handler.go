package grpc

import (
	"context"
	"strings"

	pb "github.com/dmitrijs2005/finances/internal/proto"
	"github.com/dmitrijs2005/finances/internal/server/models"
	"github.com/dmitrijs2005/finances/internal/validation"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {
	user, err := s.accounts.CreateAccount(ctx, models.UserDraft{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &pb.RegisterUserResponse{User: toPBUser(user)}, nil
}

func (s *GRPCServer) ActivateAccount(ctx context.Context, req *pb.ActivateAccountRequest) (*pb.ActivateAccountResponse, error) {
	user, err := s.accounts.ActivateAccount(ctx, req.Code)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.ActivateAccountResponse{User: toPBUser(user)}, nil
}

func (s *GRPCServer) RecoverPassword(ctx context.Context, req *pb.RecoverPasswordRequest) (*pb.RecoverPasswordResponse, error) {
	if err := s.accounts.InitiatePasswordRecovery(ctx, req.Email); err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.RecoverPasswordResponse{}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.ResetPasswordResponse, error) {
	if err := s.accounts.ResetPassword(ctx, req.Code, req.NewPassword); err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.ResetPasswordResponse{}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	tokens, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, err := s.auth.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) MakePublic(ctx context.Context, req *pb.MakePublicRequest) (*pb.MakePublicResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	uc, err := s.contacts.MakePublic(ctx, userID, req.Username, req.AvatarKey)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	contact := &pb.UserContact{Id: uc.ID, Username: uc.Username, AvatarKey: uc.AvatarKey}
	if uc.AvatarKey != "" {
		// the profile is saved; a missing preview URL is not worth failing the call
		url, err := s.avatars.AvatarURL(ctx, uc.AvatarKey)
		if err != nil {
			s.logger.Warn(ctx, "avatar url", "error", err)
		}
		contact.AvatarUrl = url
	}

	return &pb.MakePublicResponse{Contact: contact}, nil
}

func (s *GRPCServer) AvatarUploadURL(ctx context.Context, req *pb.AvatarUploadURLRequest) (*pb.AvatarUploadURLResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.avatars.AvatarUploadURL(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.AvatarUploadURLResponse{Key: task.Key, Url: task.URL}, nil
}

func (s *GRPCServer) InviteContact(ctx context.Context, req *pb.InviteContactRequest) (*pb.InviteContactResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	invite, err := s.invites.Invite(ctx, userID, req.ReceiverUserId)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.InviteContactResponse{Invite: toPBInvite(invite)}, nil
}

func (s *GRPCServer) AcceptInvite(ctx context.Context, req *pb.AcceptInviteRequest) (*pb.AcceptInviteResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	invite, err := s.invites.Accept(ctx, req.InviteId, userID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.AcceptInviteResponse{Invite: toPBInvite(invite)}, nil
}

func (s *GRPCServer) RefuseInvite(ctx context.Context, req *pb.RefuseInviteRequest) (*pb.RefuseInviteResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	invite, err := s.invites.Refuse(ctx, req.InviteId, userID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.RefuseInviteResponse{Invite: toPBInvite(invite)}, nil
}

func (s *GRPCServer) ListInvites(ctx context.Context, req *pb.ListInvitesRequest) (*pb.ListInvitesResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.invites.ListInvites(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.ListInvitesResponse{Invites: toPBInvites(list)}, nil
}

func (s *GRPCServer) ListContacts(ctx context.Context, req *pb.ListContactsRequest) (*pb.ListContactsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.invites.ListContacts(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.ListContactsResponse{Contacts: toPBInvites(list)}, nil
}

func (s *GRPCServer) CreateCategory(ctx context.Context, req *pb.CreateCategoryRequest) (*pb.CreateCategoryResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.categories.Create(ctx, userID, req.Description)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.CreateCategoryResponse{Category: toPBCategory(c)}, nil
}

func (s *GRPCServer) ListCategories(ctx context.Context, req *pb.ListCategoriesRequest) (*pb.ListCategoriesResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.categories.List(ctx, userID, req.Filter)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	out := make([]*pb.Category, 0, len(list))
	for _, c := range list {
		out = append(out, toPBCategory(c))
	}
	return &pb.ListCategoriesResponse{Categories: out}, nil
}

func (s *GRPCServer) UpdateCategory(ctx context.Context, req *pb.UpdateCategoryRequest) (*pb.UpdateCategoryResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.categories.Update(ctx, userID, req.Id, req.Description)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.UpdateCategoryResponse{Category: toPBCategory(c)}, nil
}

func (s *GRPCServer) CreateRelease(ctx context.Context, req *pb.CreateReleaseRequest) (*pb.CreateReleaseResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.Release == nil {
		return nil, s.fail(ctx, validation.FieldError{Field: "release", Message: "release is required"})
	}

	draft, err := fromPBRelease(req.Release)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	r, err := s.releases.Create(ctx, userID, *draft)
	if err != nil {
		return nil, s.fail(ctx, err)
	}
	return &pb.CreateReleaseResponse{Release: toPBRelease(r)}, nil
}

func (s *GRPCServer) ListReleases(ctx context.Context, req *pb.ListReleasesRequest) (*pb.ListReleasesResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.releases.List(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, err)
	}

	out := make([]*pb.Release, 0, len(list))
	for _, r := range list {
		out = append(out, toPBRelease(r))
	}
	return &pb.ListReleasesResponse{Releases: out}, nil
}

func toPBUser(u *models.User) *pb.User {
	return &pb.User{
		Id:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Active:    u.Active,
		CreatedAt: timestamppb.New(u.CreatedAt),
	}
}

func toPBInvite(c *models.Contact) *pb.Invite {
	inv := &pb.Invite{
		Id:          c.ID,
		RequesterId: c.RequesterID,
		ReceiverId:  c.ReceiverID,
		Status:      string(c.Status),
		CreatedAt:   timestamppb.New(c.CreatedAt),
	}
	if c.ResolvedAt != nil {
		inv.ResolvedAt = timestamppb.New(*c.ResolvedAt)
	}
	return inv
}

func toPBInvites(list []*models.Contact) []*pb.Invite {
	out := make([]*pb.Invite, 0, len(list))
	for _, c := range list {
		out = append(out, toPBInvite(c))
	}
	return out
}

func toPBCategory(c *models.Category) *pb.Category {
	return &pb.Category{Id: c.ID, Description: c.Description, CreatedAt: timestamppb.New(c.CreatedAt)}
}

func toPBRelease(r *models.Release) *pb.Release {
	return &pb.Release{
		Id:          r.ID,
		CategoryId:  r.CategoryID,
		Value:       r.Value.StringFixed(2),
		Description: r.Description,
		Status:      string(r.Status),
		Type:        string(r.Type),
		DueDate:     timestamppb.New(r.DueDate),
		CreatedAt:   timestamppb.New(r.CreatedAt),
	}
}

func fromPBRelease(r *pb.Release) (*models.Release, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(r.Value))
	if err != nil {
		return nil, validation.FieldError{Field: "value", Message: "value must be a decimal number"}
	}

	rel := &models.Release{
		CategoryID:  r.CategoryId,
		Value:       value,
		Description: r.Description,
		Status:      models.ReleaseStatus(strings.ToUpper(r.Status)),
		Type:        models.ReleaseType(strings.ToUpper(r.Type)),
	}
	// an unset due date stays zero so validation reports it as missing
	if r.DueDate != nil {
		rel.DueDate = r.DueDate.AsTime()
	}
	return rel, nil
}
