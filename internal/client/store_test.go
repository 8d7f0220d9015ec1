package client

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVerifier scripts the verify round trip
type fakeVerifier struct {
	admin *Admin
	err   error
	calls int
}

func (v *fakeVerifier) Verify(_ context.Context) (*Admin, error) {
	v.calls++
	if v.err != nil {
		return nil, v.err
	}
	return v.admin, nil
}

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "auth.json")
}

func TestAuthStoreStartsAnonymous(t *testing.T) {
	store, err := NewAuthStore(storePath(t), &fakeVerifier{}, nil)
	require.NoError(t, err)

	assert.Equal(t, StateAnonymous, store.State())
	assert.Nil(t, store.Identity())
	assert.False(t, store.IsAuthenticated())
}

func TestSetIdentityIsVerified(t *testing.T) {
	path := storePath(t)
	store, err := NewAuthStore(path, &fakeVerifier{}, nil)
	require.NoError(t, err)

	store.SetIdentity(&Admin{ID: 7, Username: "janedoe", Role: "admin"})

	assert.Equal(t, StateAuthenticatedVerified, store.State())
	require.NotNil(t, store.Identity())
	assert.Equal(t, "janedoe", store.Identity().Username)

	// The identity is on disk.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var file struct {
		IsAuthenticated bool   `json:"isAuthenticated"`
		Identity        *Admin `json:"identity"`
	}
	require.NoError(t, json.Unmarshal(data, &file))
	assert.True(t, file.IsAuthenticated)
	assert.Equal(t, int64(7), file.Identity.ID)
}

func TestClearAuthReturnsToAnonymous(t *testing.T) {
	store, err := NewAuthStore(storePath(t), &fakeVerifier{}, nil)
	require.NoError(t, err)

	store.SetIdentity(&Admin{ID: 7, Username: "janedoe"})
	store.ClearAuth()

	assert.Equal(t, StateAnonymous, store.State())
	assert.Nil(t, store.Identity())
}

func TestReloadedIdentityIsUnverified(t *testing.T) {
	path := storePath(t)

	first, err := NewAuthStore(path, &fakeVerifier{}, nil)
	require.NoError(t, err)
	first.SetIdentity(&Admin{ID: 7, Username: "janedoe", Role: "admin"})

	// A fresh process loads the persisted identity but must not trust
	// it until a round trip confirms it.
	second, err := NewAuthStore(path, &fakeVerifier{}, nil)
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticatedUnverified, second.State())
	require.NotNil(t, second.Identity())
	assert.Equal(t, "janedoe", second.Identity().Username)
}

func TestCorruptStoreFileFallsBackToAnonymous(t *testing.T) {
	path := storePath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store, err := NewAuthStore(path, &fakeVerifier{}, nil)
	require.NoError(t, err)
	assert.Equal(t, StateAnonymous, store.State())
}

func TestReverifySuccessConfirmsIdentity(t *testing.T) {
	verifier := &fakeVerifier{admin: &Admin{ID: 7, Username: "janedoe", Role: "admin"}}
	store, err := NewAuthStore(storePath(t), verifier, nil)
	require.NoError(t, err)

	store.SetIdentity(&Admin{ID: 7, Username: "janedoe", Role: "admin"})
	store.reverify(context.Background())

	assert.Equal(t, StateAuthenticatedVerified, store.State())
	assert.Equal(t, 1, verifier.calls)
}

func TestReverifyRejectionClearsAuth(t *testing.T) {
	verifier := &fakeVerifier{err: &APIError{StatusCode: 403, Message: "Invalid or expired token"}}
	store, err := NewAuthStore(storePath(t), verifier, nil)
	require.NoError(t, err)

	store.SetIdentity(&Admin{ID: 7, Username: "janedoe"})
	store.reverify(context.Background())

	assert.Equal(t, StateAnonymous, store.State())
	assert.Nil(t, store.Identity())
}

func TestReverifyNetworkFailureClearsAuth(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("dial tcp: connection refused")}
	store, err := NewAuthStore(storePath(t), verifier, nil)
	require.NoError(t, err)

	store.SetIdentity(&Admin{ID: 7, Username: "janedoe"})
	store.reverify(context.Background())

	assert.Equal(t, StateAnonymous, store.State(), "an unconfirmable session is not a session")
}

func TestStartVerifiesLoadedIdentity(t *testing.T) {
	path := storePath(t)

	first, err := NewAuthStore(path, &fakeVerifier{}, nil)
	require.NoError(t, err)
	first.SetIdentity(&Admin{ID: 7, Username: "janedoe", Role: "admin"})

	verifier := &fakeVerifier{admin: &Admin{ID: 7, Username: "janedoe", Role: "admin"}}
	second, err := NewAuthStore(path, verifier, nil)
	require.NoError(t, err)
	require.NoError(t, second.Start(context.Background()))
	defer second.Stop()

	assert.Equal(t, 1, verifier.calls)
	assert.Equal(t, StateAuthenticatedVerified, second.State())
}

func TestStartSkipsVerifyWhenAnonymous(t *testing.T) {
	verifier := &fakeVerifier{}
	store, err := NewAuthStore(storePath(t), verifier, nil)
	require.NoError(t, err)
	require.NoError(t, store.Start(context.Background()))
	defer store.Stop()

	assert.Equal(t, 0, verifier.calls)
}

func TestGuards(t *testing.T) {
	store, err := NewAuthStore(storePath(t), &fakeVerifier{}, nil)
	require.NoError(t, err)

	assert.False(t, store.CanManageAdmins())
	assert.False(t, store.CanManageUsers())
	assert.False(t, store.CanManageProducts())

	store.SetIdentity(&Admin{ID: 7, Username: "janedoe", Role: "user"})
	assert.False(t, store.CanManageAdmins())
	assert.False(t, store.CanManageUsers(), "directory users are admin territory")
	assert.True(t, store.CanManageProducts())

	store.SetIdentity(&Admin{ID: 8, Username: "root", Role: "admin"})
	assert.True(t, store.CanManageAdmins())
	assert.True(t, store.CanManageUsers())
	assert.True(t, store.CanManageProducts())

	store.SetIdentity(&Admin{ID: 9, Username: "odd", Role: "superuser"})
	assert.False(t, store.CanManageAdmins(), "unknown roles never pass a gate")
	assert.False(t, store.CanManageProducts())
}
