package auth

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulkader3/expence-go/internal/client/api"
	"github.com/abdulkader3/expence-go/internal/client/storage"
	"github.com/abdulkader3/expence-go/internal/client/storage/boltdb"
	wire "github.com/abdulkader3/expence-go/pkg/api"
)

func newTestSession(t *testing.T, mock *api.ClientAPIMock) (*Session, *CredentialStore) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	boltStorage, err := boltdb.New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, boltStorage.Close())
	})

	creds := NewCredentialStore(boltStorage, boltStorage)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewSession(mock, creds, logger), creds
}

func authData() *wire.AuthData {
	return &wire.AuthData{
		User: wire.User{ID: "user-1", Name: "Alex", Email: "alex@example.com"},
		Tokens: wire.Tokens{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		},
		ExpiresIn: 900,
	}
}

func unauthorized() *api.Error {
	return &api.Error{Message: "unauthorized", Status: http.StatusUnauthorized}
}

func TestSession_Login(t *testing.T) {
	mock := &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, payload wire.LoginPayload) (*wire.AuthData, error) {
			return authData(), nil
		},
	}
	session, creds := newTestSession(t, mock)
	ctx := context.Background()

	data, err := session.Login(ctx, wire.LoginPayload{
		Email:    "alex@example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", data.User.ID)
	assert.Equal(t, StateLoggedIn, session.State())

	// Both halves of the session must be persisted.
	tokens, err := creds.GetTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-token", tokens.AccessToken)
	user, err := creds.GetUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}

func TestSession_Login_ValidationFailsBeforeTransport(t *testing.T) {
	mock := &api.ClientAPIMock{}
	session, _ := newTestSession(t, mock)

	_, err := session.Login(context.Background(), wire.LoginPayload{
		Email:    "not-an-email",
		Password: "short",
	})

	require.Error(t, err)
	assert.Empty(t, mock.LoginCalls())
	assert.Equal(t, StateLoggedOut, session.State())
}

func TestSession_Login_ServerError(t *testing.T) {
	mock := &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, payload wire.LoginPayload) (*wire.AuthData, error) {
			return nil, &api.Error{Message: "invalid credentials", Status: http.StatusUnauthorized}
		},
	}
	session, creds := newTestSession(t, mock)

	_, err := session.Login(context.Background(), wire.LoginPayload{
		Email:    "alex@example.com",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.Equal(t, StateLoggedOut, session.State())
	_, err = creds.GetTokens(context.Background())
	assert.ErrorIs(t, err, storage.ErrTokensNotFound)
}

func TestSession_Register(t *testing.T) {
	mock := &api.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, payload wire.RegisterPayload) (*wire.AuthData, error) {
			return authData(), nil
		},
	}
	session, _ := newTestSession(t, mock)

	data, err := session.Register(context.Background(), wire.RegisterPayload{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", data.User.ID)
	assert.Equal(t, StateLoggedIn, session.State())
}

func TestSession_Restore(t *testing.T) {
	mock := &api.ClientAPIMock{}
	session, creds := newTestSession(t, mock)
	ctx := context.Background()

	// Nothing persisted: stays logged out without error.
	user, err := session.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Equal(t, StateLoggedOut, session.State())

	// Tokens alone are not enough.
	require.NoError(t, creds.SaveTokens(ctx, &wire.Tokens{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}))
	user, err = session.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Equal(t, StateLoggedOut, session.State())

	// Tokens plus cached user resume the logged-in state.
	require.NoError(t, creds.SaveUser(ctx, &wire.User{ID: "user-1", Name: "Alex"}))
	user, err = session.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, StateLoggedIn, session.State())
}

func TestSession_Logout_ClearsLocallyWhenServerUnreachable(t *testing.T) {
	mock := &api.ClientAPIMock{
		LogoutFunc: func(ctx context.Context, refreshToken string, revokeAll bool) error {
			return &api.Error{Message: "connection refused", Status: 0}
		},
	}
	session, creds := newTestSession(t, mock)
	ctx := context.Background()

	require.NoError(t, creds.SaveTokens(ctx, &wire.Tokens{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}))

	// Server revocation fails, local logout must still succeed.
	require.NoError(t, session.Logout(ctx, false))
	assert.Equal(t, StateLoggedOut, session.State())

	calls := mock.LogoutCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "refresh-token", calls[0].RefreshToken)
	assert.False(t, calls[0].RevokeAll)

	_, err := creds.GetTokens(ctx)
	assert.ErrorIs(t, err, storage.ErrTokensNotFound)
}

func TestSession_Logout_NoTokens(t *testing.T) {
	mock := &api.ClientAPIMock{}
	session, _ := newTestSession(t, mock)

	require.NoError(t, session.Logout(context.Background(), false))
	assert.Empty(t, mock.LogoutCalls())
	assert.Equal(t, StateLoggedOut, session.State())
}

func TestSession_Logout_RevokeAll(t *testing.T) {
	mock := &api.ClientAPIMock{
		LogoutFunc: func(ctx context.Context, refreshToken string, revokeAll bool) error {
			return nil
		},
	}
	session, creds := newTestSession(t, mock)
	ctx := context.Background()

	require.NoError(t, creds.SaveTokens(ctx, &wire.Tokens{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}))

	require.NoError(t, session.Logout(ctx, true))

	calls := mock.LogoutCalls()
	require.Len(t, calls, 1)
	assert.True(t, calls[0].RevokeAll)
}

func TestSession_Refresh_RotatesPair(t *testing.T) {
	mock := &api.ClientAPIMock{
		RefreshFunc: func(ctx context.Context, refreshToken string) (*wire.RefreshData, error) {
			assert.Equal(t, "refresh-token", refreshToken)
			return &wire.RefreshData{
				AccessToken:  "new-access",
				RefreshToken: "new-refresh",
				ExpiresIn:    900,
			}, nil
		},
	}
	session, creds := newTestSession(t, mock)
	ctx := context.Background()

	require.NoError(t, creds.SaveTokens(ctx, &wire.Tokens{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}))

	require.NoError(t, session.Refresh(ctx))
	assert.Equal(t, StateLoggedIn, session.State())

	tokens, err := creds.GetTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new-access", tokens.AccessToken)
	assert.Equal(t, "new-refresh", tokens.RefreshToken)
}

func TestSession_Refresh_FailureLogsOut(t *testing.T) {
	mock := &api.ClientAPIMock{
		RefreshFunc: func(ctx context.Context, refreshToken string) (*wire.RefreshData, error) {
			return nil, &api.Error{Message: "refresh token revoked", Status: http.StatusUnauthorized}
		},
	}
	session, creds := newTestSession(t, mock)
	ctx := context.Background()

	require.NoError(t, creds.SaveTokens(ctx, &wire.Tokens{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}))

	err := session.Refresh(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, StateLoggedOut, session.State())

	_, err = creds.GetTokens(ctx)
	assert.ErrorIs(t, err, storage.ErrTokensNotFound)
}

func TestSession_Authorized_RefreshesOnceOn401(t *testing.T) {
	mock := &api.ClientAPIMock{
		RefreshFunc: func(ctx context.Context, refreshToken string) (*wire.RefreshData, error) {
			return &wire.RefreshData{
				AccessToken:  "new-access",
				RefreshToken: "new-refresh",
			}, nil
		},
	}
	session, creds := newTestSession(t, mock)
	ctx := context.Background()

	require.NoError(t, creds.SaveTokens(ctx, &wire.Tokens{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}))

	calls := 0
	err := session.Authorized(ctx, func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return unauthorized()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Len(t, mock.RefreshCalls(), 1)
}

func TestSession_Authorized_SecondUnauthorizedIsTerminal(t *testing.T) {
	mock := &api.ClientAPIMock{
		RefreshFunc: func(ctx context.Context, refreshToken string) (*wire.RefreshData, error) {
			return &wire.RefreshData{
				AccessToken:  "new-access",
				RefreshToken: "new-refresh",
			}, nil
		},
	}
	session, creds := newTestSession(t, mock)
	ctx := context.Background()

	require.NoError(t, creds.SaveTokens(ctx, &wire.Tokens{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}))

	calls := 0
	err := session.Authorized(ctx, func(ctx context.Context) error {
		calls++
		return unauthorized()
	})

	require.ErrorIs(t, err, ErrSessionExpired)
	// Exactly one silent retry, never a loop.
	assert.Equal(t, 2, calls)
	assert.Equal(t, StateLoggedOut, session.State())

	_, err = creds.GetTokens(ctx)
	assert.ErrorIs(t, err, storage.ErrTokensNotFound)
}

func TestSession_Authorized_OtherErrorsPassThrough(t *testing.T) {
	mock := &api.ClientAPIMock{}
	session, _ := newTestSession(t, mock)

	serverErr := &api.Error{Message: "internal error", Status: http.StatusInternalServerError}
	calls := 0
	err := session.Authorized(context.Background(), func(ctx context.Context) error {
		calls++
		return serverErr
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, serverErr)
	assert.Empty(t, mock.RefreshCalls())
}

func TestSession_CurrentUser_RefreshesCache(t *testing.T) {
	mock := &api.ClientAPIMock{
		GetCurrentUserFunc: func(ctx context.Context) (*wire.User, error) {
			return &wire.User{ID: "user-1", Name: "Alex Updated"}, nil
		},
	}
	session, creds := newTestSession(t, mock)
	ctx := context.Background()

	require.NoError(t, creds.SaveUser(ctx, &wire.User{ID: "user-1", Name: "Alex"}))

	user, err := session.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alex Updated", user.Name)

	cached, err := session.CachedUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alex Updated", cached.Name)
}

func TestSession_AccessTokenExpiry(t *testing.T) {
	mock := &api.ClientAPIMock{}
	session, creds := newTestSession(t, mock)
	ctx := context.Background()

	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	require.NoError(t, creds.SaveTokens(ctx, &wire.Tokens{
		AccessToken:  signed,
		RefreshToken: "refresh-token",
	}))

	got, err := session.AccessTokenExpiry(ctx)
	require.NoError(t, err)
	assert.True(t, got.Equal(exp), "want %s, got %s", exp, got)
}

func TestSession_AccessTokenExpiry_NotAJWT(t *testing.T) {
	mock := &api.ClientAPIMock{}
	session, creds := newTestSession(t, mock)
	ctx := context.Background()

	require.NoError(t, creds.SaveTokens(ctx, &wire.Tokens{
		AccessToken:  "opaque-token",
		RefreshToken: "refresh-token",
	}))

	_, err := session.AccessTokenExpiry(ctx)
	assert.Error(t, err)
}
