package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulkader3/expence-go/internal/client/api"
	"github.com/abdulkader3/expence-go/internal/client/auth"
	"github.com/abdulkader3/expence-go/internal/client/config"
	"github.com/abdulkader3/expence-go/internal/client/iocli"
	"github.com/abdulkader3/expence-go/internal/client/ledger"
	"github.com/abdulkader3/expence-go/internal/client/storage/boltdb"
	"github.com/abdulkader3/expence-go/internal/client/sync"
	wire "github.com/abdulkader3/expence-go/pkg/api"
)

// scriptedIO records everything printed and answers prompts from a script.
type scriptedIO struct {
	*iocli.IOMock
	out strings.Builder
}

func newScriptedIO(inputs ...string) *scriptedIO {
	io := &scriptedIO{}
	next := func() string {
		if len(inputs) == 0 {
			return ""
		}
		v := inputs[0]
		inputs = inputs[1:]
		return v
	}
	io.IOMock = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			io.out.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(&io.out, format, a...)
		},
		ReadInputFunc: func(prompt string) (string, error) {
			return next(), nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			return next(), nil
		},
	}
	return io
}

func newTestCli(t *testing.T, mock *api.ClientAPIMock, io *scriptedIO) (*Cli, *auth.Session) {
	t.Helper()

	ctx := context.Background()
	dir := t.TempDir()

	boltStorage, err := boltdb.New(ctx, filepath.Join(dir, "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, boltStorage.Close())
	})

	led, err := ledger.New(ctx, filepath.Join(dir, "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, led.Close())
	})

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	creds := auth.NewCredentialStore(boltStorage, boltStorage)
	session := auth.NewSession(mock, creds, logger)
	syncService := sync.NewService(mock, session, boltStorage, boltStorage, led, config.SyncConfig{
		MaxBatchAttempts: 1,
		MaxItemAttempts:  5,
		BackoffBase:      time.Millisecond,
	}, logger)

	return New(io, mock, session, syncService, led, "test-device"), session
}

func TestRunLogin_Success(t *testing.T) {
	mock := &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, payload wire.LoginPayload) (*wire.AuthData, error) {
			assert.Equal(t, "user@example.com", payload.Email)
			assert.Equal(t, "password123", payload.Password)
			return &wire.AuthData{
				User:      wire.User{ID: "u-1", Name: "Test User", Email: payload.Email},
				Tokens:    wire.Tokens{AccessToken: "access", RefreshToken: "refresh"},
				ExpiresIn: 900,
			}, nil
		},
	}
	io := newScriptedIO("user@example.com", "password123")
	c, session := newTestCli(t, mock, io)

	err := c.runLogin(context.Background())

	require.NoError(t, err)
	assert.Equal(t, auth.StateLoggedIn, session.State())
	assert.Contains(t, io.out.String(), "Login successful")
	assert.Contains(t, io.out.String(), "Test User")
}

func TestRunLogin_BadCredentials(t *testing.T) {
	mock := &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, payload wire.LoginPayload) (*wire.AuthData, error) {
			return nil, &api.Error{Message: "invalid email or password", Status: http.StatusUnauthorized}
		},
	}
	io := newScriptedIO("user@example.com", "wrong-password")
	c, session := newTestCli(t, mock, io)

	err := c.runLogin(context.Background())

	require.Error(t, err)
	assert.Equal(t, auth.StateLoggedOut, session.State())
	assert.Contains(t, io.out.String(), "invalid email or password")
}

func TestRunLogin_DuplicateEmailMessageOnRegister(t *testing.T) {
	mock := &api.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, payload wire.RegisterPayload) (*wire.AuthData, error) {
			return nil, &api.Error{Message: "email taken", Status: http.StatusConflict}
		},
	}
	io := newScriptedIO("Test User", "user@example.com", "", "", "password123", "password123")
	c, _ := newTestCli(t, mock, io)

	err := c.runRegister(context.Background())

	require.Error(t, err)
	assert.Contains(t, io.out.String(), "already registered")
}

func TestRunStatus_NotLoggedIn(t *testing.T) {
	io := newScriptedIO()
	c, _ := newTestCli(t, &api.ClientAPIMock{}, io)

	err := c.runStatus(context.Background())

	require.NoError(t, err)
	assert.Contains(t, io.out.String(), "Not logged in")
}

func TestRunAdd_RequiresLogin(t *testing.T) {
	io := newScriptedIO()
	c, _ := newTestCli(t, &api.ClientAPIMock{}, io)

	err := c.runAdd(context.Background(), []string{"-for", "p-1", "-amount", "10"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestRunAdd_QueuesByDefault(t *testing.T) {
	mock := loggedInMock()
	io := newScriptedIO()
	c, session := newTestCli(t, mock, io)
	loginSession(t, session)

	err := c.runAdd(context.Background(), []string{"-for", "p-1", "-amount", "12.50", "-category", "groceries"})

	require.NoError(t, err)
	assert.Contains(t, io.out.String(), "Contribution queued")
	// Nothing hit the contribution endpoint.
	assert.Empty(t, mock.CreateContributionCalls())
}

func TestRunAdd_NowSendsDirectly(t *testing.T) {
	mock := loggedInMock()
	mock.CreateContributionFunc = func(ctx context.Context, payload wire.ContributionPayload, idempotencyKey string) (*wire.ContributionResponse, error) {
		return &wire.ContributionResponse{
			Transaction:  wire.Transaction{ID: "tx-1", Amount: payload.Amount, Currency: payload.Currency},
			PartnerTotal: 42.5,
		}, nil
	}
	io := newScriptedIO()
	c, session := newTestCli(t, mock, io)
	loginSession(t, session)

	err := c.runAdd(context.Background(), []string{"-now", "-for", "p-1", "-amount", "12.50", "-currency", "USD"})

	require.NoError(t, err)
	assert.Contains(t, io.out.String(), "Contribution recorded")
	assert.Contains(t, io.out.String(), "tx-1")
	require.Len(t, mock.CreateContributionCalls(), 1)
}

func TestRunSync_NothingToSync(t *testing.T) {
	mock := loggedInMock()
	io := newScriptedIO()
	c, session := newTestCli(t, mock, io)
	loginSession(t, session)

	err := c.runSync(context.Background())

	require.NoError(t, err)
	assert.Contains(t, io.out.String(), "Nothing to sync")
	assert.Empty(t, mock.SyncQueueCalls())
}

func TestRunPartners_List(t *testing.T) {
	mock := loggedInMock()
	mock.GetPartnersFunc = func(ctx context.Context, query wire.PartnersQuery) (*wire.PartnersResponse, error) {
		assert.Equal(t, "name", query.SortBy)
		return &wire.PartnersResponse{
			Data: []wire.Partner{{ID: "p-1", Name: "Alex", TotalContributed: 150.25}},
			Meta: wire.PageMeta{Total: 1},
		}, nil
	}
	io := newScriptedIO()
	c, session := newTestCli(t, mock, io)
	loginSession(t, session)

	err := c.runPartners(context.Background(), []string{"-sort", "name"})

	require.NoError(t, err)
	assert.Contains(t, io.out.String(), "Alex")
	assert.Contains(t, io.out.String(), "150.25")
}

func TestRunPartners_Detail(t *testing.T) {
	mock := loggedInMock()
	mock.GetPartnerDetailFunc = func(ctx context.Context, partnerID string, query wire.PartnerDetailQuery) (*wire.PartnerDetailResponse, error) {
		assert.Equal(t, "p-1", partnerID)
		assert.Equal(t, "groceries", query.Category)
		return &wire.PartnerDetailResponse{
			Partner: wire.PartnerDetail{ID: "p-1", Name: "Alex", TotalContributed: 300},
			Transactions: []wire.PartnerDetailTransaction{
				{ID: "tx-1", Amount: 12.50, Date: "2026-02-03", Category: "groceries"},
			},
			Meta: wire.PartnerDetailMeta{TotalTransactions: 1},
		}, nil
	}
	io := newScriptedIO()
	c, session := newTestCli(t, mock, io)
	loginSession(t, session)

	err := c.runPartners(context.Background(), []string{"-category", "groceries", "p-1"})

	require.NoError(t, err)
	assert.Contains(t, io.out.String(), "Total contributed: 300.00")
	assert.Contains(t, io.out.String(), "tx-1")
}

func TestRunLeaderboard(t *testing.T) {
	mock := loggedInMock()
	mock.GetLeaderboardFunc = func(ctx context.Context, query wire.LeaderboardQuery) (*wire.LeaderboardResponse, error) {
		return &wire.LeaderboardResponse{
			Data: []wire.LeaderboardEntry{
				{PartnerID: "p-1", Name: "Alex", Rank: 1, TopContributor: true, TotalContributed: 300},
				{PartnerID: "p-2", Name: "Sam", Rank: 2, TotalContributed: 120},
			},
			Meta: wire.LeaderboardMeta{AsOf: "2026-08-30T12:00:00Z"},
		}, nil
	}
	io := newScriptedIO()
	c, session := newTestCli(t, mock, io)
	loginSession(t, session)

	err := c.runLeaderboard(context.Background(), []string{"-limit", "10"})

	require.NoError(t, err)
	assert.Contains(t, io.out.String(), "★")
	assert.Contains(t, io.out.String(), "Alex")
	assert.Contains(t, io.out.String(), "As of 2026-08-30T12:00:00Z")
}

func TestRunSync_ReportsResult(t *testing.T) {
	mock := loggedInMock()
	io := newScriptedIO()
	c, session := newTestCli(t, mock, io)
	loginSession(t, session)

	syncMock := &sync.ServiceMock{
		PendingCountFunc: func(ctx context.Context) (int, error) { return 3, nil },
		SyncFunc: func(ctx context.Context) (*sync.SyncResult, error) {
			return &sync.SyncResult{Submitted: 3, Succeeded: 2, Retained: 1}, nil
		},
	}
	c.syncService = syncMock

	err := c.runSync(context.Background())

	require.NoError(t, err)
	assert.Len(t, syncMock.SyncCalls(), 1)
	assert.Contains(t, io.out.String(), "Succeeded:  2")
	assert.Contains(t, io.out.String(), "Retained:   1")
}

// loggedInMock answers the login round trip so tests can enter the
// authenticated state through the real session.
func loggedInMock() *api.ClientAPIMock {
	return &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, payload wire.LoginPayload) (*wire.AuthData, error) {
			return &wire.AuthData{
				User:   wire.User{ID: "u-1", Name: "Test User", Email: payload.Email},
				Tokens: wire.Tokens{AccessToken: "access", RefreshToken: "refresh"},
			}, nil
		},
	}
}

func loginSession(t *testing.T, session *auth.Session) {
	t.Helper()
	_, err := session.Login(context.Background(), wire.LoginPayload{
		Email:    "user@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
}
