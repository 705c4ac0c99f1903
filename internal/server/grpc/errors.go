package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/finances/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrValidation, codes.InvalidArgument},

	{common.ErrDuplicateEmail, codes.AlreadyExists},
	{common.ErrUsernameTaken, codes.AlreadyExists},
	{common.ErrInviteAlreadyPending, codes.AlreadyExists},

	{common.ErrInvalidCode, codes.FailedPrecondition},
	{common.ErrSelfInviteNotAllowed, codes.FailedPrecondition},
	{common.ErrInviteAlreadyResolved, codes.FailedPrecondition},
	{common.ErrAccountInactive, codes.FailedPrecondition},

	{common.ErrRequesterNotFound, codes.NotFound},
	{common.ErrContactIdentityNotFound, codes.NotFound},
	{common.ErrInviteNotFound, codes.NotFound},
	{common.ErrCategoryNotFound, codes.NotFound},
	{common.ErrUserNotFound, codes.NotFound},
	{common.ErrSubjectNotFound, codes.NotFound},

	{common.ErrorUnauthorized, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrTokenExpired, codes.Unauthenticated},
	{common.ErrRefreshTokenExpired, codes.Unauthenticated},

	{common.ErrCodeAlreadyIssued, codes.Aborted},
}

// toStatus maps service errors to gRPC statuses. Unknown errors become
// Internal without leaking their text.
func toStatus(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return status.Error(e.code, err.Error())
		}
	}
	return status.Error(codes.Internal, "internal error")
}

// fail converts err for the wire and keeps the original text of Internal
// errors in the log.
func (s *GRPCServer) fail(ctx context.Context, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, "internal error", "error", err)
	}
	return st
}
