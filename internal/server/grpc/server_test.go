package grpc

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	pb "github.com/dmitrijs2005/accountregistry/internal/proto"
	"github.com/dmitrijs2005/accountregistry/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/accountregistry/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv, err := NewGRPCServer("127.0.0.1:0", nopLogger{}, &fakeAccounts{}, 0, nil)
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv, err := NewGRPCServer("127.0.0.1:99999", nopLogger{}, &fakeAccounts{}, 0, nil)
	if err != nil {
		t.Fatalf("NewGRPCServer error (constructor should not fail here): %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

// startBufconn serves an in-memory account registry and returns a connected
// client connection.
func startBufconn(t *testing.T) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	svc := services.NewAccountService(accounts.NewMemoryRepository())
	srv, err := NewGRPCServer("bufconn", nopLogger{}, svc, time.Second, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufconn",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})
	return conn
}

func TestEndToEnd_RegisterAndLookup(t *testing.T) {
	conn := startBufconn(t)
	client := pb.NewAccountServiceClient(conn)
	ctx := context.Background()

	created, err := client.CreateAccount(ctx, &pb.CreateAccountRequest{
		Email: "Ann@Example.com", FirstName: "Ann", LastName: "Lee", PasswordHash: "h", Semester: 2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.GetAccountId())

	got, err := client.GetAccountByEmail(ctx, &pb.GetAccountByEmailRequest{Email: "ANN@example.com"})
	require.NoError(t, err)
	assert.True(t, got.GetFound())
	assert.Equal(t, created.GetAccountId(), got.GetAccountId())
	assert.Equal(t, "Ann@Example.com", got.GetEmail())
	assert.Equal(t, uint32(2), got.GetSemester())
	assert.False(t, got.GetCreatedAt().AsTime().IsZero())

	_, err = client.CreateAccount(ctx, &pb.CreateAccountRequest{Email: "ann@EXAMPLE.com", PasswordHash: "x"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = client.GetAccountByEmail(ctx, &pb.GetAccountByEmailRequest{Email: "nobody@example.com"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.CreateAccount(ctx, &pb.CreateAccountRequest{Email: "not-an-email"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.CreateAccount(ctx, &pb.CreateAccountRequest{Email: "big@example.com", Semester: 70000})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestEndToEnd_ConcurrentRegisterSameEmail(t *testing.T) {
	conn := startBufconn(t)
	client := pb.NewAccountServiceClient(conn)
	ctx := context.Background()

	const n = 32
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		dups      atomic.Int32
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.CreateAccount(ctx, &pb.CreateAccountRequest{Email: "race@example.com", PasswordHash: "h"})
			switch status.Code(err) {
			case codes.OK:
				successes.Add(1)
			case codes.AlreadyExists:
				dups.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(n-1), dups.Load())
}

func TestEndToEnd_Health(t *testing.T) {
	conn := startBufconn(t)
	hc := healthpb.NewHealthClient(conn)

	for _, name := range []string{"", pb.AccountService_ServiceDesc.ServiceName} {
		resp, err := hc.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
	}
}
