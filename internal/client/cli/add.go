package cli

import (
	"context"
	"flag"
	"fmt"

	wire "github.com/abdulkader3/expence-go/pkg/api"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	recordedFor := fs.String("for", "", "partner the contribution is recorded for (required)")
	amount := fs.Float64("amount", 0, "contribution amount (required, > 0)")
	currency := fs.String("currency", "", "currency code, e.g. USD")
	category := fs.String("category", "", "category, e.g. groceries")
	contextTag := fs.String("context", "", "free-form context tag")
	date := fs.String("date", "", "date in YYYY-MM-DD (defaults to today on the server)")
	receipt := fs.String("receipt", "", "path to a receipt image to attach")
	now := fs.Bool("now", false, "send immediately, falling back to the queue when offline")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.io.Println("=== Add Contribution ===")
	c.io.Println()

	if err := c.ensureLoggedIn(ctx); err != nil {
		return err
	}

	payload := wire.ContributionPayload{
		RecordedFor: *recordedFor,
		Amount:      *amount,
		Currency:    *currency,
		Category:    *category,
		Context:     *contextTag,
		Date:        *date,
	}

	if !*now {
		item, err := c.syncService.EnqueueContribution(ctx, payload, *receipt)
		if err != nil {
			c.printAuthError(err)
			return fmt.Errorf("failed to queue contribution")
		}
		c.io.Println()
		c.io.Println("✓ Contribution queued.")
		c.io.Printf("Local ID: %s\n", item.LocalID)
		c.io.Println("Run 'expence sync' to submit it.")
		return nil
	}

	resp, queued, err := c.syncService.SubmitContribution(ctx, payload, *receipt)
	if err != nil {
		c.printAuthError(err)
		return fmt.Errorf("failed to record contribution")
	}

	c.io.Println()
	if resp != nil {
		c.io.Println("✓ Contribution recorded!")
		c.io.Printf("Transaction:   %s\n", resp.Transaction.ID)
		c.io.Printf("Amount:        %.2f %s\n", resp.Transaction.Amount, resp.Transaction.Currency)
		c.io.Printf("Partner total: %.2f\n", resp.PartnerTotal)
		return nil
	}

	c.io.Println("✓ Contribution queued (server unreachable).")
	c.io.Printf("Local ID: %s\n", queued.LocalID)
	c.io.Println("Run 'expence sync' once you are back online.")

	return nil
}
