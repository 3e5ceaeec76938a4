// Package auth manages the login lifecycle: credential restoration at
// startup, credential validation, and logout.
package auth

import (
	"context"
	"sync"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gitealink/internal/gitea"
	"github.com/ternarybob/gitealink/internal/interfaces"
	"github.com/ternarybob/gitealink/internal/models"
	"github.com/ternarybob/gitealink/internal/services/users"
)

// State is the authentication state machine. The machine starts in
// StateChecking, moves once to one of the other two states, and from then
// on toggles between authenticated and unauthenticated.
type State string

const (
	StateChecking        State = "checking_credentials"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

// Service orchestrates login, startup credential restoration, and logout.
// State mutation is serialized behind one mutex; callers are expected to
// keep at most one Login or Start in flight at a time.
type Service struct {
	store         interfaces.CredentialStore
	logger        arbor.ILogger
	clientOptions []gitea.ClientOption

	mu          sync.Mutex
	state       State
	user        *models.User
	serverURL   string
	accessToken string
}

// NewService creates an authentication service. clientOptions are passed
// through to the validation client (tests inject a custom http.Client).
func NewService(store interfaces.CredentialStore, logger arbor.ILogger, clientOptions ...gitea.ClientOption) *Service {
	return &Service{
		store:         store,
		logger:        logger,
		clientOptions: clientOptions,
		state:         StateChecking,
	}
}

// Start restores persisted credentials. With no stored credentials it
// transitions straight to unauthenticated without any network call. Stored
// credentials are validated against the server; any validation failure,
// not just an auth failure, wipes the stored record. A transient server
// fault at startup therefore logs the user out rather than risk operating
// on invalid state.
func (s *Service) Start(ctx context.Context) {
	s.setState(StateChecking)

	creds, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to load stored credentials")
		s.becomeUnauthenticated()
		return
	}
	if creds == nil {
		s.becomeUnauthenticated()
		return
	}

	user, err := s.validate(ctx, creds.ServerURL, creds.AccessToken)
	if err != nil {
		s.logger.Info().Err(err).Msg("Stored credentials failed validation, clearing them")
		if delErr := s.store.Delete(ctx); delErr != nil {
			s.logger.Warn().Err(delErr).Msg("Failed to delete invalid credentials")
		}
		s.becomeUnauthenticated()
		return
	}

	s.becomeAuthenticated(user, creds.ServerURL, creds.AccessToken)
	s.logger.Info().Str("user", user.Login).Msg("Restored session from stored credentials")
}

// Login validates the supplied pair against the server. On success the
// credentials are persisted and the state becomes authenticated. On
// failure the taxonomy error is returned, nothing is persisted, and the
// state stays unauthenticated.
func (s *Service) Login(ctx context.Context, serverURL, accessToken string) error {
	user, err := s.validate(ctx, serverURL, accessToken)
	if err != nil {
		s.becomeUnauthenticated()
		return err
	}

	creds := &models.Credentials{ServerURL: serverURL, AccessToken: accessToken}
	if err := s.store.Save(ctx, creds); err != nil {
		s.becomeUnauthenticated()
		return err
	}

	s.becomeAuthenticated(user, serverURL, accessToken)
	s.logger.Info().Str("user", user.Login).Str("server", serverURL).Msg("Logged in")
	return nil
}

// Logout deletes persisted credentials best-effort and always transitions
// to unauthenticated. Storage failures are swallowed: logout must succeed
// from the state machine's perspective.
func (s *Service) Logout(ctx context.Context) {
	if err := s.store.Delete(ctx); err != nil {
		s.logger.Debug().Err(err).Msg("Failed to delete stored credentials on logout")
	}
	s.becomeUnauthenticated()
	s.logger.Info().Msg("Logged out")
}

// State returns the current authentication state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentUser returns the validated user profile, or nil when not
// authenticated.
func (s *Service) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Token returns the active access token, or empty after logout.
func (s *Service) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

// ServerURL returns the active server URL, or empty after logout.
func (s *Service) ServerURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serverURL
}

// TokenProvider returns a closure handed to the transport engine. It reads
// the live token so a logout is reflected immediately.
func (s *Service) TokenProvider() gitea.TokenProvider {
	return s.Token
}

// Client builds a transport client bound to the current session.
func (s *Service) Client() (*gitea.Client, error) {
	return gitea.NewClient(s.ServerURL(), s.TokenProvider(), s.clientOptions...)
}

// validate issues the "who am I" request with the candidate credentials.
func (s *Service) validate(ctx context.Context, serverURL, accessToken string) (*models.User, error) {
	client, err := gitea.NewClient(serverURL, func() string { return accessToken }, s.clientOptions...)
	if err != nil {
		return nil, err
	}
	return users.NewService(client).GetCurrentUser(ctx)
}

func (s *Service) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

func (s *Service) becomeAuthenticated(user *models.User, serverURL, accessToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAuthenticated
	s.user = user
	s.serverURL = serverURL
	s.accessToken = accessToken
}

func (s *Service) becomeUnauthenticated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateUnauthenticated
	s.user = nil
	s.serverURL = ""
	s.accessToken = ""
}
