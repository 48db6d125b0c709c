package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wire "github.com/abdulkader3/expence-go/pkg/api"
)

// staticTokens is a TokenSource returning a fixed access token.
type staticTokens struct {
	token string
	err   error
}

func (s *staticTokens) AccessToken(ctx context.Context) (string, error) {
	return s.token, s.err
}

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:5000/")

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:5000", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req wire.LoginPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alex@example.com", req.Email)
		assert.Equal(t, "secret-password", req.Password)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(wire.AuthResponse{
			Data: wire.AuthData{
				User: wire.User{ID: "user-1", Name: "Alex", Email: "alex@example.com"},
				Tokens: wire.Tokens{
					AccessToken:  "access-token",
					RefreshToken: "refresh-token",
				},
				ExpiresIn: 900,
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	data, err := client.Login(context.Background(), wire.LoginPayload{
		Email:    "alex@example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", data.User.ID)
	assert.Equal(t, "access-token", data.Tokens.AccessToken)
	assert.Equal(t, "refresh-token", data.Tokens.RefreshToken)
	assert.Equal(t, int64(900), data.ExpiresIn)
}

func TestClient_DebugLogsIncludeBodies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(wire.AuthResponse{
			Data: wire.AuthData{User: wire.User{ID: "user-1"}},
		})
	}))
	defer server.Close()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client := NewClient(server.URL, WithLogger(logger))

	_, err := client.Login(context.Background(), wire.LoginPayload{
		Email:    "alex@example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "alex@example.com", "request body should appear in debug logs")
	assert.Contains(t, logs.String(), "user-1", "response body should appear in debug logs")
}

func TestClient_Register_Errors(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		body        wire.ErrorResponse
		wantMessage string
		wantFields  int
	}{
		{
			name:        "duplicate email",
			statusCode:  http.StatusConflict,
			body:        wire.ErrorResponse{Message: "email already registered"},
			wantMessage: "email already registered",
		},
		{
			name:       "validation failure",
			statusCode: http.StatusBadRequest,
			body: wire.ErrorResponse{
				Message: "validation failed",
				Errors: []wire.FieldError{
					{Field: "email", Message: "invalid email"},
					{Field: "password", Message: "too short"},
				},
			},
			wantMessage: "validation failed",
			wantFields:  2,
		},
		{
			name:        "rate limited",
			statusCode:  http.StatusTooManyRequests,
			body:        wire.ErrorResponse{Message: "too many requests"},
			wantMessage: "too many requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				_ = json.NewEncoder(w).Encode(tt.body)
			}))
			defer server.Close()

			client := NewClient(server.URL)
			_, err := client.Register(context.Background(), wire.RegisterPayload{
				Name:     "Alex",
				Email:    "alex@example.com",
				Password: "secret-password",
			})

			require.Error(t, err)
			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.statusCode, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Len(t, apiErr.Fields, tt.wantFields)
			assert.False(t, apiErr.IsNetwork())
			assert.False(t, apiErr.Timeout)
		})
	}
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>Bad Gateway</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetCurrentUser(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "request failed with status 502", apiErr.Message)
	assert.Contains(t, string(apiErr.Body), "Bad Gateway")
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL)
	_, err := client.Health(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.True(t, apiErr.IsNetwork())
	assert.False(t, apiErr.Timeout)
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTimeout(20*time.Millisecond))
	_, err := client.Health(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.True(t, apiErr.Timeout)
	assert.True(t, apiErr.IsNetwork())
}

func TestClient_AuthorizedRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/me", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(wire.User{ID: "user-1", Name: "Alex", Email: "alex@example.com"})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTokenSource(&staticTokens{token: "access-token"}))
	user, err := client.GetCurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "Alex", user.Name)
}

func TestClient_AuthorizedRequest_TokenSourceFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent when the token source fails")
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTokenSource(&staticTokens{err: errors.New("no tokens")}))
	_, err := client.GetCurrentUser(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
}

func TestClient_CreateContribution_IdempotencyKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/partners", r.URL.Path)
		assert.Equal(t, "idem-key-1", r.Header.Get("Idempotency-Key"))

		var req wire.ContributionPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "partner-1", req.RecordedFor)
		assert.InDelta(t, 12.50, req.Amount, 0.001)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(wire.ContributionResponse{
			Transaction:  wire.Transaction{ID: "tx-1", Amount: 12.50, Currency: "USD"},
			PartnerTotal: 112.50,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTokenSource(&staticTokens{token: "access-token"}))
	resp, err := client.CreateContribution(context.Background(), wire.ContributionPayload{
		RecordedFor: "partner-1",
		Amount:      12.50,
	}, "idem-key-1")

	require.NoError(t, err)
	assert.Equal(t, "tx-1", resp.Transaction.ID)
	assert.InDelta(t, 112.50, resp.PartnerTotal, 0.001)
}

func TestClient_GetTransactions_QueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "partner-1", q.Get("recorded_for"))
		assert.Equal(t, "groceries", q.Get("category"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "50", q.Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(wire.TransactionsResponse{
			Data: []wire.Transaction{{ID: "tx-1"}},
			Meta: wire.PageMeta{Total: 1, Page: 2, PerPage: 50},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTokenSource(&staticTokens{token: "access-token"}))
	resp, err := client.GetTransactions(context.Background(), wire.TransactionsQuery{
		RecordedFor: "partner-1",
		Category:    "groceries",
		Page:        2,
		PerPage:     50,
	})

	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "tx-1", resp.Data[0].ID)
}

func TestClient_GetPartners_QueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/partners", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "total_contributed", q.Get("sort_by"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "25", q.Get("per_page"))
		assert.Equal(t, "true", q.Get("include_transactions"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(wire.PartnersResponse{
			Data: []wire.Partner{{
				ID:               "p-1",
				Name:             "Alex",
				TotalContributed: 150.25,
				RecentTransactions: []wire.PartnerTransaction{
					{ID: "tx-1", Amount: 12.50},
				},
			}},
			Meta: wire.PageMeta{Total: 1, Page: 2, PerPage: 25},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTokenSource(&staticTokens{token: "access-token"}))
	resp, err := client.GetPartners(context.Background(), wire.PartnersQuery{
		SortBy:              "total_contributed",
		Page:                2,
		PerPage:             25,
		IncludeTransactions: true,
	})

	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Alex", resp.Data[0].Name)
	assert.Equal(t, 150.25, resp.Data[0].TotalContributed)
	require.Len(t, resp.Data[0].RecentTransactions, 1)
}

func TestClient_GetLeaderboard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/partners/leaderboard", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(wire.LeaderboardResponse{
			Data: []wire.LeaderboardEntry{
				{PartnerID: "p-1", Name: "Alex", Rank: 1, TopContributor: true, TotalContributed: 300},
				{PartnerID: "p-2", Name: "Sam", Rank: 2, TotalContributed: 120},
			},
			Meta: wire.LeaderboardMeta{AsOf: "2026-08-30T12:00:00Z"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTokenSource(&staticTokens{token: "access-token"}))
	resp, err := client.GetLeaderboard(context.Background(), wire.LeaderboardQuery{Limit: 3})

	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.True(t, resp.Data[0].TopContributor)
	assert.Equal(t, 2, resp.Data[1].Rank)
	assert.Equal(t, "2026-08-30T12:00:00Z", resp.Meta.AsOf)
}

func TestClient_GetPartnerDetail_PathAndFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/partners/p-1", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2026-01-01", q.Get("from"))
		assert.Equal(t, "groceries", q.Get("category"))
		assert.Equal(t, "market", q.Get("search"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(wire.PartnerDetailResponse{
			Partner: wire.PartnerDetail{ID: "p-1", Name: "Alex", TotalContributed: 300},
			Transactions: []wire.PartnerDetailTransaction{
				{ID: "tx-1", Type: "contribution", Amount: 12.50, Date: "2026-02-03"},
			},
			Meta: wire.PartnerDetailMeta{TotalTransactions: 1},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTokenSource(&staticTokens{token: "access-token"}))
	resp, err := client.GetPartnerDetail(context.Background(), "p-1", wire.PartnerDetailQuery{
		From:     "2026-01-01",
		Category: "groceries",
		Search:   "market",
	})

	require.NoError(t, err)
	assert.Equal(t, "Alex", resp.Partner.Name)
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, 1, resp.Meta.TotalTransactions)
}

func TestClient_GetTransactionsCSV(t *testing.T) {
	const csvBody = "id,amount,currency\ntx-1,12.50,USD\n"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "text/csv", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(csvBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTokenSource(&staticTokens{token: "access-token"}))
	body, err := client.GetTransactionsCSV(context.Background(), wire.TransactionsQuery{})

	require.NoError(t, err)
	assert.Equal(t, csvBody, body)
}

func TestClient_UpdateCurrentUser_Multipart(t *testing.T) {
	avatarPath := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(avatarPath, []byte("fake-png-bytes"), 0o600))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Alex", r.FormValue("name"))

		file, header, err := r.FormFile("avatar")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "avatar.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(wire.UpdateUserResponse{
			User: wire.User{ID: "user-1", Name: "Alex", AvatarURL: "https://cdn/avatar.png"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTokenSource(&staticTokens{token: "access-token"}))
	user, err := client.UpdateCurrentUser(context.Background(), wire.UpdateUserPayload{
		Name: "Alex",
		Avatar: &wire.FileUpload{
			Path:        avatarPath,
			Name:        "avatar.png",
			ContentType: "image/png",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn/avatar.png", user.AvatarURL)
}

func TestClient_Logout_RevokeAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/logout", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("all"))

		var req wire.LogoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "refresh-token", req.RefreshToken)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(wire.LogoutResponse{Success: true})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.Logout(context.Background(), "refresh-token", true)

	require.NoError(t, err)
}

func TestClient_Refresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/refresh", r.URL.Path)

		var req wire.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "old-refresh", req.RefreshToken)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(wire.RefreshResponse{
			Data: wire.RefreshData{
				AccessToken:  "new-access",
				RefreshToken: "new-refresh",
				ExpiresIn:    900,
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	data, err := client.Refresh(context.Background(), "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", data.AccessToken)
	assert.Equal(t, "new-refresh", data.RefreshToken)
}

func TestClient_Health_OutsideAPIPrefix(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(wire.HealthResponse{Status: "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}

func TestClient_SyncQueue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sync/queue", r.URL.Path)

		var req wire.SyncQueueRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "device-1", req.DeviceID)
		require.Len(t, req.Queue, 1)
		assert.Equal(t, "local-1", req.Queue[0].LocalID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(wire.SyncQueueResponse{
			Results: []wire.SyncQueueResult{
				{LocalID: "local-1", Status: wire.SyncStatusOK, ServerID: "tx-1"},
			},
			Summary: wire.SyncSummary{Total: 1, Success: 1},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTokenSource(&staticTokens{token: "access-token"}))
	resp, err := client.SyncQueue(context.Background(), wire.SyncQueueRequest{
		DeviceID: "device-1",
		Queue: []wire.QueueItem{
			{LocalID: "local-1", Action: wire.ActionAddContribution},
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "tx-1", resp.Results[0].ServerID)
	assert.Equal(t, 1, resp.Summary.Success)
}
