// Package session owns the process-wide authentication state. The Store is
// the single source of truth for "who is logged in" and the only writer of
// the persisted credential and the gateway token slot.
package session

import (
	"context"
	"sync"

	"github.com/fidelizaplus/gestao/internal/api"
	"github.com/fidelizaplus/gestao/internal/credential"
	"github.com/fidelizaplus/gestao/internal/errors"
	"github.com/fidelizaplus/gestao/internal/log"
)

// Status is the session lifecycle state.
type Status int

const (
	// StatusBootstrapping is the initial state, before Bootstrap resolves.
	StatusBootstrapping Status = iota
	// StatusAuthenticated means a token and an allowed-role profile are held.
	StatusAuthenticated
	// StatusUnauthenticated means no session is held.
	StatusUnauthenticated
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusBootstrapping:
		return "bootstrapping"
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// UserPatch is a partial local update to the current profile, mirroring a
// change the backend already accepted.
type UserPatch struct {
	Name  *string
	Email *string
}

// Store holds the session. Construct one per process and pass it to
// whatever needs it; there is no package-level instance.
type Store struct {
	mu      sync.RWMutex
	gateway *api.Client
	creds   *credential.Store
	logger  *log.Logger

	token  string
	user   *api.User
	status Status
}

// NewStore creates a session store in the bootstrapping state.
func NewStore(gateway *api.Client, creds *credential.Store, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Store{
		gateway: gateway,
		creds:   creds,
		logger:  logger,
		status:  StatusBootstrapping,
	}
}

// Status returns the current lifecycle state.
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// CurrentUser returns a copy of the signed-in profile, or nil.
func (s *Store) CurrentUser() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the held bearer token, or empty.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// roleAllowed gates which backend account types may use this client.
// CLIENT accounts belong to the customer app and are rejected even when
// the backend authenticates them.
func roleAllowed(userType string) bool {
	switch userType {
	case api.UserTypeAdmin, api.UserTypeCollaborator:
		return true
	default:
		return false
	}
}

// Bootstrap restores a session from the persisted credential. It always
// resolves the status: any failure (missing token, network error, rejected
// token, disallowed role) degrades to a clean unauthenticated state rather
// than propagating. Callers must wait for it before reading Status.
func (s *Store) Bootstrap(ctx context.Context) Status {
	token, ok, err := s.creds.Load()
	if err != nil {
		s.logger.WithError(err).Warn("stored credentials unreadable, discarding")
		s.SignOut()
		return StatusUnauthenticated
	}
	if !ok {
		s.mu.Lock()
		s.status = StatusUnauthenticated
		s.mu.Unlock()
		return StatusUnauthenticated
	}

	s.gateway.SetToken(token)

	user, err := s.gateway.CurrentUser(ctx)
	if err != nil {
		s.logger.WithError(err).Debug("stored token rejected")
		s.SignOut()
		return StatusUnauthenticated
	}
	if !roleAllowed(user.UserType) {
		s.logger.Warn("stored session belongs to a disallowed account type",
			"user_type", user.UserType)
		s.SignOut()
		return StatusUnauthenticated
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.status = StatusAuthenticated
	s.mu.Unlock()

	s.logger.Debug("session restored",
		"user_id", user.ID,
		"token_fingerprint", credential.Fingerprint(token))
	return StatusAuthenticated
}

// SignIn exchanges credentials for a token, validates the profile role, and
// persists the session. The token and profile fetches are strictly
// sequential. Nothing is persisted until the role check passes.
func (s *Store) SignIn(ctx context.Context, email, password string) (*api.User, error) {
	token, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		if apiErr, ok := api.AsError(err); ok && apiErr.Unauthorized() {
			return nil, errors.NewInvalidCredentialsError(err)
		}
		return nil, err
	}

	s.gateway.SetToken(token)

	user, err := s.gateway.CurrentUser(ctx)
	if err != nil {
		s.gateway.ClearToken()
		return nil, err
	}

	if !roleAllowed(user.UserType) {
		s.gateway.ClearToken()
		return nil, errors.NewAccessDeniedError(user.UserType)
	}

	if err := s.creds.Save(token); err != nil {
		s.gateway.ClearToken()
		return nil, err
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.status = StatusAuthenticated
	s.mu.Unlock()

	s.logger.Info("signed in",
		"user_id", user.ID,
		"user_type", user.UserType,
		"token_fingerprint", credential.Fingerprint(token))
	return s.CurrentUser(), nil
}

// SignOut clears the session, the gateway token slot, and the persisted
// credential. It is idempotent: calling it while unauthenticated leaves the
// same end state.
func (s *Store) SignOut() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.status = StatusUnauthenticated
	s.mu.Unlock()

	s.gateway.ClearToken()
	if err := s.creds.Delete(); err != nil {
		s.logger.WithError(err).Warn("failed to remove stored credentials")
	}
}

// RefreshProfile re-fetches the profile for the current token, replacing the
// local copy. Any failure is treated as session-invalid: the store signs out
// and returns a session-expired error.
func (s *Store) RefreshProfile(ctx context.Context) (*api.User, error) {
	if s.Status() != StatusAuthenticated {
		return nil, errors.NewNotAuthenticatedError()
	}

	user, err := s.gateway.CurrentUser(ctx)
	if err != nil {
		s.SignOut()
		return nil, errors.NewSessionExpiredError(err)
	}
	if !roleAllowed(user.UserType) {
		s.SignOut()
		return nil, errors.NewAccessDeniedError(user.UserType)
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return s.CurrentUser(), nil
}

// UpdateUserLocally merges a partial profile update into the current user
// without a network round trip, mirroring a change the backend already
// accepted. Persisted storage is untouched.
func (s *Store) UpdateUserLocally(patch UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	if patch.Name != nil {
		s.user.Name = *patch.Name
	}
	if patch.Email != nil {
		s.user.Email = *patch.Email
	}
}
