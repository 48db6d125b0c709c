package cli

import (
	"context"
	"flag"
	"fmt"
)

func (c *Cli) runUndo(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("undo", flag.ContinueOnError)
	reason := fs.String("reason", "", "why the transaction is being undone")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("missing transaction id. Usage: expence undo [-reason ...] <transaction-id>")
	}
	transactionID := fs.Arg(0)

	c.io.Println("=== Undo Transaction ===")
	c.io.Println()

	if err := c.ensureLoggedIn(ctx); err != nil {
		return err
	}

	item, err := c.syncService.EnqueueUndo(ctx, transactionID, *reason)
	if err != nil {
		return fmt.Errorf("failed to queue undo: %w", err)
	}

	c.io.Println("✓ Undo queued.")
	c.io.Printf("Transaction: %s\n", transactionID)
	c.io.Printf("Local ID:    %s\n", item.LocalID)
	c.io.Println("Run 'expence sync' to apply it on the server.")

	return nil
}
