package cli

import (
	"context"
	"fmt"

	"github.com/abdulkader3/expence-go/internal/client/api"
	"github.com/abdulkader3/expence-go/internal/client/auth"
	"github.com/abdulkader3/expence-go/internal/client/iocli"
	"github.com/abdulkader3/expence-go/internal/client/ledger"
	"github.com/abdulkader3/expence-go/internal/client/sync"
)

// Cli dispatches commands against the session and sync engine. It stands in
// for the mobile app's screens: every command is a thin caller into the core
// client and renders typed results or classified errors.
type Cli struct {
	io          iocli.IO
	apiClient   api.ClientAPI
	session     *auth.Session
	syncService sync.Service
	ledger      *ledger.Storage
	deviceName  string
}

func New(io iocli.IO, apiClient api.ClientAPI, session *auth.Session, syncService sync.Service, led *ledger.Storage, deviceName string) *Cli {
	return &Cli{
		io:          io,
		apiClient:   apiClient,
		session:     session,
		syncService: syncService,
		ledger:      led,
		deviceName:  deviceName,
	}
}

// ensureLoggedIn restores a persisted session and fails when none exists.
func (c *Cli) ensureLoggedIn(ctx context.Context) error {
	if _, err := c.session.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	if c.session.State() != auth.StateLoggedIn {
		return fmt.Errorf("not logged in. Please run 'expence login' first")
	}
	return nil
}

// printAuthError renders a classified auth failure the way the app's screens
// would: a distinct actionable message per error class, field errors listed
// one per line.
func (c *Cli) printAuthError(err error) {
	info := auth.Classify(err)

	switch {
	case info.DuplicateEmail:
		c.io.Println("This email is already registered. Try logging in instead.")
	case info.RateLimited:
		c.io.Println("Too many attempts. Please wait a moment before trying again.")
	case info.Timeout:
		c.io.Println("The request timed out. Check your connection and try again.")
	default:
		c.io.Println(info.Message)
	}

	for _, fe := range info.FieldErrors {
		c.io.Printf("  %s: %s\n", fe.Field, fe.Message)
	}
}

func PrintUsage() {
	fmt.Println("Expence Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  expence [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version               Show version information")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  EXPENCE_API_URL         Backend base URL (default: http://localhost:5000)")
	fmt.Println("  EXPENCE_DB_PATH         Local database path (default: expence-client.db)")
	fmt.Println("  EXPENCE_LEDGER_PATH     Local ledger path (default: expence-ledger.db)")
	fmt.Println("  EXPENCE_DEVICE_NAME     Device name attached to login sessions")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                Create an account")
	fmt.Println("  login                   Log in")
	fmt.Println("  logout [-all]           Log out (-all revokes every device)")
	fmt.Println("  status                  Show session and queue status")
	fmt.Println("  whoami                  Show the current user profile")
	fmt.Println("  settings [set]          Show or update notification & security preferences")
	fmt.Println("  add [-now]              Queue a contribution (-now sends immediately)")
	fmt.Println("  undo <transaction-id>   Queue an undo of a recorded transaction")
	fmt.Println("  sync                    Replay the offline queue")
	fmt.Println("  partners [id]           List partners, or show one partner's ledger")
	fmt.Println("  leaderboard [-limit]    Show the contribution ranking")
	fmt.Println("  transactions [-csv]     List transactions")
	fmt.Println("  export                  Export transactions as CSV")
	fmt.Println("  health                  Check backend availability")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  expence login")
	fmt.Println("  expence add -for partner-id -amount 12.50 -category groceries")
	fmt.Println("  expence add -for partner-id -amount 40 -receipt ./receipt.jpg")
	fmt.Println("  expence sync")
	fmt.Println("  expence transactions -csv > transactions.csv")
}
