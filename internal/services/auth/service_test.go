package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gitealink/internal/gitea"
	"github.com/ternarybob/gitealink/internal/models"
)

// memoryStore is an in-memory CredentialStore for tests.
type memoryStore struct {
	creds     *models.Credentials
	loadErr   error
	saveErr   error
	deleteErr error
}

func (m *memoryStore) Save(ctx context.Context, credentials *models.Credentials) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.creds = credentials
	return nil
}

func (m *memoryStore) Load(ctx context.Context) (*models.Credentials, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.creds, nil
}

func (m *memoryStore) Delete(ctx context.Context) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.creds = nil
	return nil
}

func (m *memoryStore) Exists(ctx context.Context) bool {
	return m.creds != nil
}

func newUserServer(t *testing.T, status int, requests *atomic.Int64) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests != nil {
			requests.Add(1)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Write([]byte(`{"id": 1, "login": "bob", "full_name": "Bob McTest"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestService(store *memoryStore, server *httptest.Server) *Service {
	return NewService(store, arbor.NewLogger(), gitea.WithHTTPClient(server.Client()))
}

func TestStartWithoutCredentials(t *testing.T) {
	var requests atomic.Int64
	server := newUserServer(t, http.StatusOK, &requests)
	store := &memoryStore{}
	service := newTestService(store, server)

	service.Start(context.Background())

	assert.Equal(t, StateUnauthenticated, service.State())
	assert.Nil(t, service.CurrentUser())
	assert.Equal(t, int64(0), requests.Load(), "no network call without stored credentials")
}

func TestStartWithValidCredentials(t *testing.T) {
	server := newUserServer(t, http.StatusOK, nil)
	store := &memoryStore{creds: &models.Credentials{ServerURL: server.URL, AccessToken: "tok123"}}
	service := newTestService(store, server)

	service.Start(context.Background())

	assert.Equal(t, StateAuthenticated, service.State())
	require.NotNil(t, service.CurrentUser())
	assert.Equal(t, "bob", service.CurrentUser().Login)
	assert.Equal(t, "tok123", service.Token())
	assert.Equal(t, server.URL, service.ServerURL())
	assert.True(t, store.Exists(context.Background()), "credentials remain stored")
}

func TestStartWithInvalidCredentialsWipesStore(t *testing.T) {
	server := newUserServer(t, http.StatusUnauthorized, nil)
	store := &memoryStore{creds: &models.Credentials{ServerURL: server.URL, AccessToken: "stale"}}
	service := newTestService(store, server)

	service.Start(context.Background())

	assert.Equal(t, StateUnauthenticated, service.State())
	assert.False(t, store.Exists(context.Background()), "stale credentials must be deleted")
}

func TestStartTreatsServerFaultAsInvalid(t *testing.T) {
	// Fail-closed: even a transient 500 during startup validation wipes
	// the stored credentials.
	server := newUserServer(t, http.StatusInternalServerError, nil)
	store := &memoryStore{creds: &models.Credentials{ServerURL: server.URL, AccessToken: "tok"}}
	service := newTestService(store, server)

	service.Start(context.Background())

	assert.Equal(t, StateUnauthenticated, service.State())
	assert.False(t, store.Exists(context.Background()))
}

func TestLoginSuccessPersistsCredentials(t *testing.T) {
	server := newUserServer(t, http.StatusOK, nil)
	store := &memoryStore{}
	service := newTestService(store, server)

	err := service.Login(context.Background(), server.URL, "tok123")
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, service.State())
	require.NotNil(t, store.creds)
	assert.Equal(t, server.URL, store.creds.ServerURL)
	assert.Equal(t, "tok123", store.creds.AccessToken)
	assert.Equal(t, "tok123", service.TokenProvider()())
}

func TestLoginFailureDoesNotPersist(t *testing.T) {
	server := newUserServer(t, http.StatusUnauthorized, nil)
	store := &memoryStore{}
	service := newTestService(store, server)

	err := service.Login(context.Background(), server.URL, "tok123")
	require.Error(t, err)

	apiErr, ok := gitea.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, gitea.KindUnauthorized, apiErr.Kind)

	assert.Equal(t, StateUnauthenticated, service.State())
	assert.Nil(t, store.creds, "failed login must not persist credentials")
	assert.Empty(t, service.Token())
}

func TestLogoutClearsSession(t *testing.T) {
	server := newUserServer(t, http.StatusOK, nil)
	store := &memoryStore{}
	service := newTestService(store, server)

	require.NoError(t, service.Login(context.Background(), server.URL, "tok123"))
	service.Logout(context.Background())

	assert.Equal(t, StateUnauthenticated, service.State())
	assert.Nil(t, service.CurrentUser())
	assert.Empty(t, service.Token())
	assert.Empty(t, service.ServerURL())
	assert.False(t, store.Exists(context.Background()))
}

func TestLogoutSwallowsStorageFailure(t *testing.T) {
	server := newUserServer(t, http.StatusOK, nil)
	store := &memoryStore{}
	service := newTestService(store, server)

	require.NoError(t, service.Login(context.Background(), server.URL, "tok123"))
	store.deleteErr = errors.New("disk on fire")

	service.Logout(context.Background())

	assert.Equal(t, StateUnauthenticated, service.State(), "logout always succeeds")
	assert.Empty(t, service.Token())
}

func TestTokenProviderReflectsLogout(t *testing.T) {
	server := newUserServer(t, http.StatusOK, nil)
	store := &memoryStore{}
	service := newTestService(store, server)

	require.NoError(t, service.Login(context.Background(), server.URL, "tok123"))
	provider := service.TokenProvider()
	assert.Equal(t, "tok123", provider())

	service.Logout(context.Background())
	assert.Empty(t, provider(), "provider must never serve a stale token")
}
