package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/accountregistry/internal/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeClient struct {
	created   []client.NewAccount
	createID  string
	createErr error

	account *client.Account
	getErr  error
	gotGet  string

	health    string
	healthErr error

	closed bool
}

func (f *fakeClient) CreateAccount(ctx context.Context, a client.NewAccount) (string, error) {
	f.created = append(f.created, a)
	return f.createID, f.createErr
}

func (f *fakeClient) GetAccountByEmail(ctx context.Context, email string) (*client.Account, error) {
	f.gotGet = email
	return f.account, f.getErr
}

func (f *fakeClient) Health(ctx context.Context) (string, error) {
	return f.health, f.healthErr
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

// withFakes installs fc as the client and answers password prompts from pws.
func withFakes(t *testing.T, fc *fakeClient, pws ...string) *string {
	t.Helper()
	var gotServer string

	origClient, origRead, origCost := newClient, readPassword, bcryptCost
	newClient = func(server string) (accountClient, error) {
		gotServer = server
		return fc, nil
	}
	readPassword = func(int) ([]byte, error) {
		if len(pws) == 0 {
			return nil, errors.New("no more input")
		}
		pw := pws[0]
		pws = pws[1:]
		return []byte(pw), nil
	}
	bcryptCost = bcrypt.MinCost
	t.Cleanup(func() { newClient, readPassword, bcryptCost = origClient, origRead, origCost })

	return &gotServer
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRegister_HashesPasswordLocally(t *testing.T) {
	fc := &fakeClient{createID: "id-1"}
	withFakes(t, fc, "s3cret", "s3cret")

	out, err := run(t, "register", "--email", "a@b.io", "--first-name", "Ann", "--last-name", "Lee", "--semester", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Registered account id-1")

	require.Len(t, fc.created, 1)
	got := fc.created[0]
	assert.Equal(t, "a@b.io", got.Email)
	assert.Equal(t, "Ann", got.FirstName)
	assert.Equal(t, "Lee", got.LastName)
	assert.Equal(t, uint16(3), got.Semester)
	assert.NotEqual(t, "s3cret", got.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("s3cret")))
	assert.True(t, fc.closed)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	fc := &fakeClient{}
	withFakes(t, fc, "one", "two")

	_, err := run(t, "register", "--email", "a@b.io")
	assert.ErrorIs(t, err, errPasswordMismatch)
	assert.Empty(t, fc.created)
}

func TestRegister_RequiresEmail(t *testing.T) {
	withFakes(t, &fakeClient{}, "pw", "pw")

	_, err := run(t, "register")
	assert.Error(t, err)
}

func TestRegister_Duplicate(t *testing.T) {
	fc := &fakeClient{createErr: client.ErrAlreadyExists}
	withFakes(t, fc, "pw", "pw")

	_, err := run(t, "register", "--email", "a@b.io")
	assert.ErrorIs(t, err, client.ErrAlreadyExists)
}

func TestGet_TextAndJSON(t *testing.T) {
	acc := &client.Account{
		ID: "id-1", Email: "Ann@Example.com", FirstName: "Ann", LastName: "Lee",
		PasswordHash: "secret-hash", Semester: 2, CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("text", func(t *testing.T) {
		fc := &fakeClient{account: acc}
		withFakes(t, fc)

		out, err := run(t, "get", "ann@example.com")
		require.NoError(t, err)
		assert.Equal(t, "ann@example.com", fc.gotGet)
		assert.Contains(t, out, "Ann@Example.com")
		assert.Contains(t, out, "2024-01-02T03:04:05Z")
		assert.NotContains(t, out, "secret-hash")
	})

	t.Run("json", func(t *testing.T) {
		withFakes(t, &fakeClient{account: acc})

		out, err := run(t, "get", "-o", "json", "ann@example.com")
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "id-1", decoded["id"])
		assert.NotContains(t, out, "secret-hash")
	})

	t.Run("needs an argument", func(t *testing.T) {
		withFakes(t, &fakeClient{account: acc})

		_, err := run(t, "get")
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)
	acc := &client.Account{ID: "id-1", Email: "a@b.io", PasswordHash: string(hash)}

	t.Run("ok", func(t *testing.T) {
		withFakes(t, &fakeClient{account: acc}, "right")

		out, err := run(t, "login", "--email", "a@b.io")
		require.NoError(t, err)
		assert.Contains(t, out, "Login OK")
	})

	t.Run("wrong password", func(t *testing.T) {
		withFakes(t, &fakeClient{account: acc}, "wrong")

		_, err := run(t, "login", "--email", "a@b.io")
		assert.ErrorIs(t, err, errInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		withFakes(t, &fakeClient{getErr: client.ErrNotFound}, "right")

		_, err := run(t, "login", "--email", "x@y.io")
		assert.ErrorIs(t, err, errInvalidCredentials)
	})
}

func TestHealth(t *testing.T) {
	withFakes(t, &fakeClient{health: "SERVING"})

	out, err := run(t, "health")
	require.NoError(t, err)
	assert.Equal(t, "SERVING\n", out)
}

func TestServerAddress(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv(ServerEnv, "")
		got := withFakes(t, &fakeClient{health: "SERVING"})

		_, err := run(t, "health")
		require.NoError(t, err)
		assert.Equal(t, "localhost:50051", *got)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv(ServerEnv, "registry:6000")
		got := withFakes(t, &fakeClient{health: "SERVING"})

		_, err := run(t, "health")
		require.NoError(t, err)
		assert.Equal(t, "registry:6000", *got)
	})

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(ServerEnv, "registry:6000")
		got := withFakes(t, &fakeClient{health: "SERVING"})

		_, err := run(t, "--server", "other:7000", "health")
		require.NoError(t, err)
		assert.Equal(t, "other:7000", *got)
	})
}

func TestUnknownOutputFormat(t *testing.T) {
	withFakes(t, &fakeClient{health: "SERVING"})

	_, err := run(t, "-o", "yaml", "health")
	assert.Error(t, err)
}
