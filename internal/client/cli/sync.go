package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	if err := c.ensureLoggedIn(ctx); err != nil {
		return err
	}

	pending, err := c.syncService.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to read the offline queue: %w", err)
	}
	if pending == 0 {
		c.io.Println("✓ Nothing to sync, the offline queue is empty.")
		return nil
	}

	c.io.Printf("Replaying %d queued item(s)...\n", pending)

	result, err := c.syncService.Sync(ctx)
	if err != nil {
		c.io.Println()
		c.io.Println("Synchronization failed; all queued items were kept.")
		return err
	}

	c.io.Println()
	c.io.Println("✓ Synchronization completed!")
	c.io.Println()
	c.io.Printf("Submitted:  %d\n", result.Submitted)
	c.io.Printf("Succeeded:  %d\n", result.Succeeded)
	if result.Duplicates > 0 {
		c.io.Printf("Duplicates: %d (already applied on the server)\n", result.Duplicates)
	}
	if result.Failed > 0 {
		c.io.Printf("Failed:     %d (rejected permanently)\n", result.Failed)
	}
	if result.Retained > 0 {
		c.io.Printf("Retained:   %d (will retry on the next sync)\n", result.Retained)
	}

	return nil
}
