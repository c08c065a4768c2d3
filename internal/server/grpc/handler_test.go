package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/accountregistry/internal/common"
	"github.com/dmitrijs2005/accountregistry/internal/logging"
	pb "github.com/dmitrijs2005/accountregistry/internal/proto"
	"github.com/dmitrijs2005/accountregistry/internal/server/models"
	"github.com/dmitrijs2005/accountregistry/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeAccounts struct {
	regOut *models.Account
	regErr error

	lookupOut *models.Account
	lookupErr error

	regCalls  int
	gotEmail  string
	gotSemest uint16
}

func (f *fakeAccounts) Register(ctx context.Context, email, firstName, lastName, passwordHash string, semester uint16) (*models.Account, error) {
	f.regCalls++
	f.gotEmail = email
	f.gotSemest = semester
	return f.regOut, f.regErr
}

func (f *fakeAccounts) Lookup(ctx context.Context, email string) (*models.Account, error) {
	f.gotEmail = email
	return f.lookupOut, f.lookupErr
}

func newTestServer(svc accountService) *GRPCServer {
	return &GRPCServer{logger: nopLogger{}, accounts: svc}
}

func TestCreateAccount_OK(t *testing.T) {
	svc := &fakeAccounts{regOut: &models.Account{ID: "acc-1"}}
	s := newTestServer(svc)

	resp, err := s.CreateAccount(context.Background(), &pb.CreateAccountRequest{
		Email: "a@b.io", FirstName: "A", LastName: "B", PasswordHash: "h", Semester: 65535,
	})
	require.NoError(t, err)
	assert.Equal(t, "acc-1", resp.GetAccountId())
	assert.Equal(t, "a@b.io", svc.gotEmail)
	assert.Equal(t, uint16(65535), svc.gotSemest)
}

func TestCreateAccount_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name:     "duplicate",
			err:      &services.DuplicateEmailError{Email: "a@b.io"},
			wantCode: codes.AlreadyExists,
			wantMsg:  `account with email "a@b.io" already exists`,
		},
		{
			name:     "validation",
			err:      &services.ValidationError{Violations: []services.FieldViolation{{Field: "email", Message: "invalid email format"}}},
			wantCode: codes.InvalidArgument,
			wantMsg:  "invalid account: email: invalid email format",
		},
		{
			name:     "storage",
			err:      errors.Join(common.ErrorStorage, errors.New("connection refused")),
			wantCode: codes.Internal,
			wantMsg:  internalErrorMessage,
		},
		{
			name:     "unexpected",
			err:      errors.New("boom"),
			wantCode: codes.Internal,
			wantMsg:  internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(&fakeAccounts{regErr: tt.err})

			resp, err := s.CreateAccount(context.Background(), &pb.CreateAccountRequest{Email: "a@b.io"})
			assert.Nil(t, resp)
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}

func TestCreateAccount_SemesterOutOfRange(t *testing.T) {
	svc := &fakeAccounts{}
	s := newTestServer(svc)

	_, err := s.CreateAccount(context.Background(), &pb.CreateAccountRequest{Email: "a@b.io", Semester: 65536})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, 0, svc.regCalls)
}

func TestGetAccountByEmail_OK(t *testing.T) {
	created := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	svc := &fakeAccounts{lookupOut: &models.Account{
		ID: "acc-1", Email: "Ann@Example.com", FirstName: "Ann", LastName: "Lee",
		PasswordHash: "h", Semester: 4, CreatedAt: created,
	}}
	s := newTestServer(svc)

	resp, err := s.GetAccountByEmail(context.Background(), &pb.GetAccountByEmailRequest{Email: "ann@example.com"})
	require.NoError(t, err)

	assert.True(t, resp.GetFound())
	assert.Equal(t, "acc-1", resp.GetAccountId())
	assert.Equal(t, "Ann@Example.com", resp.GetEmail())
	assert.Equal(t, "Ann", resp.GetFirstName())
	assert.Equal(t, "Lee", resp.GetLastName())
	assert.Equal(t, "h", resp.GetPasswordHash())
	assert.Equal(t, uint32(4), resp.GetSemester())
	assert.True(t, created.Equal(resp.GetCreatedAt().AsTime()))
	assert.Equal(t, "ann@example.com", svc.gotEmail)
}

func TestGetAccountByEmail_ErrorMapping(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		s := newTestServer(&fakeAccounts{lookupErr: &services.NotFoundError{Email: "x@y.io"}})

		_, err := s.GetAccountByEmail(context.Background(), &pb.GetAccountByEmailRequest{Email: "x@y.io"})
		st, _ := status.FromError(err)
		assert.Equal(t, codes.NotFound, st.Code())
		assert.Equal(t, `account with email "x@y.io" not found`, st.Message())
	})

	t.Run("storage", func(t *testing.T) {
		s := newTestServer(&fakeAccounts{lookupErr: common.ErrorStorage})

		_, err := s.GetAccountByEmail(context.Background(), &pb.GetAccountByEmailRequest{Email: "x@y.io"})
		st, _ := status.FromError(err)
		assert.Equal(t, codes.Internal, st.Code())
		assert.Equal(t, internalErrorMessage, st.Message())
	})
}

func TestInternalErrorMessage_IsSentinelText(t *testing.T) {
	s := newTestServer(&fakeAccounts{regErr: errors.New("db exploded: password=hunter2")})

	_, err := s.CreateAccount(context.Background(), &pb.CreateAccountRequest{Email: "a@b.io"})
	st, _ := status.FromError(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, common.ErrorInternal.Error(), st.Message())
	assert.NotContains(t, st.Message(), "hunter2")
}
