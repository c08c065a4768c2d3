// Package client is a thin gRPC client for the account registry. Status codes
// returned by the server are mapped back to the sentinel errors in errors.go.
package client

import (
	"context"
	"fmt"

	pb "github.com/dmitrijs2005/accountregistry/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AccountServiceClient
	health      healthpb.HealthClient
}

// NewAccountRegistryClient creates a client for endpointURL. The connection
// is established lazily on the first call. Extra dial options are appended
// after the default insecure transport credentials.
func NewAccountRegistryClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient(opts ...grpc.DialOption) error {
	dialOpts := append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAccountServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

// CreateAccount registers a and returns the new account id.
func (s *GRPCClient) CreateAccount(ctx context.Context, a NewAccount) (string, error) {
	req := &pb.CreateAccountRequest{
		Email:        a.Email,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		PasswordHash: a.PasswordHash,
		Semester:     uint32(a.Semester),
	}

	resp, err := s.client.CreateAccount(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetAccountId(), nil
}

// GetAccountByEmail looks up an account, ignoring the case of email.
func (s *GRPCClient) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	resp, err := s.client.GetAccountByEmail(ctx, &pb.GetAccountByEmailRequest{Email: email})
	if err != nil {
		return nil, s.mapError(err)
	}
	if !resp.GetFound() {
		return nil, ErrNotFound
	}

	return &Account{
		ID:           resp.GetAccountId(),
		Email:        resp.GetEmail(),
		FirstName:    resp.GetFirstName(),
		LastName:     resp.GetLastName(),
		PasswordHash: resp.GetPasswordHash(),
		Semester:     uint16(resp.GetSemester()),
		CreatedAt:    resp.GetCreatedAt().AsTime(),
	}, nil
}

// Health returns the serving status reported by the standard health service.
func (s *GRPCClient) Health(ctx context.Context) (string, error) {
	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: pb.AccountService_ServiceDesc.ServiceName})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetStatus().String(), nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
