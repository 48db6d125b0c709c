package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/abdulkader3/expence-go/internal/client/api"
	"github.com/abdulkader3/expence-go/internal/client/storage"
	"github.com/abdulkader3/expence-go/internal/validation"
	wire "github.com/abdulkader3/expence-go/pkg/api"
)

// State is the session's position in the auth lifecycle.
type State int

const (
	StateLoggedOut State = iota
	StateLoggingIn
	StateLoggedIn
	StateRefreshing
)

func (s State) String() string {
	switch s {
	case StateLoggedOut:
		return "logged_out"
	case StateLoggingIn:
		return "logging_in"
	case StateLoggedIn:
		return "logged_in"
	case StateRefreshing:
		return "refreshing_token"
	default:
		return "unknown"
	}
}

// Session owns the auth lifecycle for one device: login, registration, token
// refresh and logout, plus the authorized-call policy around 401 responses.
// It is an explicit object handed to collaborators; there is no ambient
// global auth state.
type Session struct {
	apiClient api.ClientAPI
	creds     *CredentialStore
	logger    *slog.Logger

	mu    sync.Mutex
	state State
}

// NewSession creates a session in the logged-out state. Call Restore to pick
// up persisted credentials from a previous run.
func NewSession(apiClient api.ClientAPI, creds *CredentialStore, logger *slog.Logger) *Session {
	return &Session{
		apiClient: apiClient,
		creds:     creds,
		logger:    logger,
		state:     StateLoggedOut,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Restore loads persisted credentials and, when both the token pair and the
// cached user are present, resumes the logged-in state. Credentials and user
// are all-or-nothing: a half-present pair stays logged out.
func (s *Session) Restore(ctx context.Context) (*wire.User, error) {
	tokens, err := s.creds.GetTokens(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrTokensNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load tokens: %w", err)
	}

	user, err := s.creds.GetUser(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load cached user: %w", err)
	}

	if tokens != nil && user != nil {
		s.setState(StateLoggedIn)
		return user, nil
	}
	return nil, nil
}

// Login authenticates and persists the session. A storage failure after a
// successful server round trip is logged but does not fail the login: the
// user is authenticated, only local persistence is degraded.
func (s *Session) Login(ctx context.Context, payload wire.LoginPayload) (*wire.AuthData, error) {
	if err := validation.Struct(payload); err != nil {
		return nil, err
	}

	s.setState(StateLoggingIn)

	data, err := s.apiClient.Login(ctx, payload)
	if err != nil {
		s.setState(StateLoggedOut)
		return nil, fmt.Errorf("login failed: %w", err)
	}

	s.persistAuth(ctx, data)
	s.setState(StateLoggedIn)
	return data, nil
}

// Register creates an account and enters the logged-in state directly.
func (s *Session) Register(ctx context.Context, payload wire.RegisterPayload) (*wire.AuthData, error) {
	if err := validation.Struct(payload); err != nil {
		return nil, err
	}

	s.setState(StateLoggingIn)

	data, err := s.apiClient.Register(ctx, payload)
	if err != nil {
		s.setState(StateLoggedOut)
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.persistAuth(ctx, data)
	s.setState(StateLoggedIn)
	return data, nil
}

// persistAuth writes tokens and user as a unit. Failures are observable in
// logs but deliberately not propagated (see Login).
func (s *Session) persistAuth(ctx context.Context, data *wire.AuthData) {
	if err := s.creds.SaveTokens(ctx, &data.Tokens); err != nil {
		s.logger.Warn("failed to persist tokens", "error", err)
		return
	}
	if err := s.creds.SaveUser(ctx, &data.User); err != nil {
		s.logger.Warn("failed to persist user", "error", err)
	}
}

// Logout revokes the refresh token server-side (best effort) and always
// clears local credentials: the user's intent to log out locally must
// succeed even when the server is unreachable.
func (s *Session) Logout(ctx context.Context, revokeAll bool) error {
	tokens, err := s.creds.GetTokens(ctx)
	if err != nil {
		s.logger.Debug("no tokens found during logout", "error", err)
	} else {
		if logoutErr := s.apiClient.Logout(ctx, tokens.RefreshToken, revokeAll); logoutErr != nil {
			s.logger.Warn("failed to revoke tokens on server", "error", logoutErr)
		}
	}

	s.setState(StateLoggedOut)
	if err := s.creds.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear local credentials: %w", err)
	}
	return nil
}

// Refresh exchanges the refresh token for a rotated pair. A rejected refresh
// token is unrecoverable without re-authentication, so any failure clears
// credentials and drops the session to logged out.
func (s *Session) Refresh(ctx context.Context) error {
	tokens, err := s.creds.GetTokens(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tokens: %w", err)
	}

	s.setState(StateRefreshing)

	data, err := s.apiClient.Refresh(ctx, tokens.RefreshToken)
	if err != nil {
		s.logger.Warn("token refresh failed, logging out", "error", err)
		s.setState(StateLoggedOut)
		if clearErr := s.creds.ClearAll(ctx); clearErr != nil {
			s.logger.Warn("failed to clear credentials", "error", clearErr)
		}
		return fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}

	pair := wire.Tokens{AccessToken: data.AccessToken, RefreshToken: data.RefreshToken}
	if err := s.creds.SaveTokens(ctx, &pair); err != nil {
		s.setState(StateLoggedOut)
		return fmt.Errorf("failed to persist rotated tokens: %w", err)
	}

	s.setState(StateLoggedIn)
	return nil
}

// Authorized runs fn, which is expected to issue authenticated requests
// through the transport. On a 401 it performs exactly one silent refresh and
// retries once; a second 401 is terminal and forces a local logout.
func (s *Session) Authorized(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if !isUnauthorized(err) {
		return err
	}

	s.logger.Debug("got 401, attempting token refresh")
	if refreshErr := s.Refresh(ctx); refreshErr != nil {
		return refreshErr
	}

	err = fn(ctx)
	if isUnauthorized(err) {
		s.logger.Warn("still unauthorized after refresh, logging out")
		s.setState(StateLoggedOut)
		if clearErr := s.creds.ClearAll(ctx); clearErr != nil {
			s.logger.Warn("failed to clear credentials", "error", clearErr)
		}
		return fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}
	return err
}

func isUnauthorized(err error) bool {
	var apiErr *api.Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// CurrentUser fetches the profile from the server and refreshes the cache.
func (s *Session) CurrentUser(ctx context.Context) (*wire.User, error) {
	var user *wire.User
	err := s.Authorized(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.apiClient.GetCurrentUser(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := s.creds.SaveUser(ctx, user); err != nil {
		s.logger.Warn("failed to cache user", "error", err)
	}
	return user, nil
}

// CachedUser returns the locally cached profile without a network round trip.
func (s *Session) CachedUser(ctx context.Context) (*wire.User, error) {
	return s.creds.GetUser(ctx)
}

// UpdateCurrentUser patches profile fields (multipart when an avatar is
// attached) and refreshes the local cache on success.
func (s *Session) UpdateCurrentUser(ctx context.Context, payload wire.UpdateUserPayload) (*wire.User, error) {
	var user *wire.User
	err := s.Authorized(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.apiClient.UpdateCurrentUser(ctx, payload)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := s.creds.SaveUser(ctx, user); err != nil {
		s.logger.Warn("failed to cache user", "error", err)
	}
	return user, nil
}

// Settings fetches notification and security preferences.
func (s *Session) Settings(ctx context.Context) (*wire.UserSettings, error) {
	var settings *wire.UserSettings
	err := s.Authorized(ctx, func(ctx context.Context) error {
		var err error
		settings, err = s.apiClient.GetSettings(ctx)
		return err
	})
	return settings, err
}

// UpdateSettings replaces preference fields.
func (s *Session) UpdateSettings(ctx context.Context, payload wire.UpdateSettingsPayload) (*wire.UserSettings, error) {
	var settings *wire.UserSettings
	err := s.Authorized(ctx, func(ctx context.Context) error {
		var err error
		settings, err = s.apiClient.UpdateSettings(ctx, payload)
		return err
	})
	return settings, err
}

// AccessTokenExpiry reads the exp claim of the stored access token without
// verifying the signature. Display only: expiry decisions still come from
// 401 responses, never from the clock.
func (s *Session) AccessTokenExpiry(ctx context.Context) (time.Time, error) {
	tokens, err := s.creds.GetTokens(ctx)
	if err != nil {
		return time.Time{}, err
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokens.AccessToken, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse access token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("access token has no expiry claim")
	}
	return exp.Time, nil
}
