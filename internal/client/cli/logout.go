package cli

import (
	"context"
	"flag"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("logout", flag.ContinueOnError)
	revokeAll := fs.Bool("all", false, "revoke sessions on every device")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.io.Println("=== Logout ===")

	if err := c.session.Logout(ctx, *revokeAll); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	if *revokeAll {
		c.io.Println("Sessions on all devices have been revoked.")
	}
	c.io.Println("Your local session has been deleted.")

	return nil
}
