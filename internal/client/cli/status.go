package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/abdulkader3/expence-go/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	user, err := c.session.Restore(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	if c.session.State() != auth.StateLoggedIn {
		c.io.Println("Status: Not logged in")
		c.io.Println()
		c.io.Println("Run 'expence login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Logged in")
	c.io.Printf("Name:  %s\n", user.Name)
	c.io.Printf("Email: %s\n", user.Email)

	if expiry, err := c.session.AccessTokenExpiry(ctx); err == nil {
		c.io.Printf("Token expires: %s\n", expiry.Format(time.RFC3339))
		if remaining := time.Until(expiry); remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("Token has expired; it will be refreshed on the next request.")
		}
	}

	pending, err := c.syncService.PendingCount(ctx)
	if err != nil {
		c.io.Printf("\nWarning: failed to read the offline queue: %v\n", err)
		return nil
	}

	c.io.Println()
	if pending > 0 {
		c.io.Printf("⚠️  Offline queue: %d item(s) waiting to be synced\n", pending)
		c.io.Println("Run 'expence sync' to replay them.")
	} else {
		c.io.Println("✓ Offline queue is empty")
	}

	return nil
}
