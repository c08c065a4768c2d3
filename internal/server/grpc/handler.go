package grpc

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dmitrijs2005/accountregistry/internal/common"
	pb "github.com/dmitrijs2005/accountregistry/internal/proto"
	"github.com/dmitrijs2005/accountregistry/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// internalErrorMessage is the only detail a client sees for unmapped failures.
var internalErrorMessage = common.ErrorInternal.Error()

func (s *GRPCServer) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.CreateAccountResponse, error) {
	if req.GetSemester() > math.MaxUint16 {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("semester %d out of range", req.GetSemester()))
	}

	acc, err := s.accounts.Register(ctx, req.GetEmail(), req.GetFirstName(), req.GetLastName(), req.GetPasswordHash(), uint16(req.GetSemester()))
	if err != nil {
		return nil, s.toStatus(ctx, "CreateAccount", err)
	}

	s.logger.Debug(ctx, "Account registered", "account_id", acc.ID)
	return &pb.CreateAccountResponse{AccountId: acc.ID}, nil
}

func (s *GRPCServer) GetAccountByEmail(ctx context.Context, req *pb.GetAccountByEmailRequest) (*pb.GetAccountByEmailResponse, error) {
	acc, err := s.accounts.Lookup(ctx, req.GetEmail())
	if err != nil {
		return nil, s.toStatus(ctx, "GetAccountByEmail", err)
	}

	return &pb.GetAccountByEmailResponse{
		Found:        true,
		AccountId:    acc.ID,
		Email:        acc.Email,
		PasswordHash: acc.PasswordHash,
		Semester:     uint32(acc.Semester),
		FirstName:    acc.FirstName,
		LastName:     acc.LastName,
		CreatedAt:    timestamppb.New(acc.CreatedAt),
	}, nil
}

// toStatus maps domain errors to status codes. Anything unrecognised is
// logged and reported as INTERNAL without its cause.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	var (
		verr *services.ValidationError
		dup  *services.DuplicateEmailError
		nf   *services.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		return status.Error(codes.InvalidArgument, verr.Error())
	case errors.As(err, &dup):
		return status.Error(codes.AlreadyExists, dup.Error())
	case errors.As(err, &nf):
		return status.Error(codes.NotFound, nf.Error())
	default:
		s.logger.Error(ctx, "request failed", "op", op, "error", err)
		return status.Error(codes.Internal, internalErrorMessage)
	}
}
