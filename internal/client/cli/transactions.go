package cli

import (
	"context"
	"flag"
	"fmt"

	wire "github.com/abdulkader3/expence-go/pkg/api"
)

func (c *Cli) runTransactions(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("transactions", flag.ContinueOnError)
	csv := fs.Bool("csv", false, "print results as CSV instead of a table")
	local := fs.Bool("local", false, "list locally recorded transactions (works offline)")
	status := fs.String("status", "", "with -local: filter by status (pending, synced, failed)")
	recordedFor := fs.String("for", "", "filter by partner")
	category := fs.String("category", "", "filter by category")
	dateFrom := fs.String("from", "", "filter from date (YYYY-MM-DD)")
	dateTo := fs.String("to", "", "filter to date (YYYY-MM-DD)")
	search := fs.String("q", "", "full-text search")
	page := fs.Int("page", 0, "page number")
	perPage := fs.Int("per-page", 0, "items per page")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *local {
		return c.runTransactionsLocal(ctx, *status)
	}

	if err := c.ensureLoggedIn(ctx); err != nil {
		return err
	}

	query := wire.TransactionsQuery{
		RecordedFor: *recordedFor,
		Category:    *category,
		DateFrom:    *dateFrom,
		DateTo:      *dateTo,
		Search:      *search,
		Page:        *page,
		PerPage:     *perPage,
	}

	if *csv {
		var body string
		err := c.session.Authorized(ctx, func(ctx context.Context) error {
			var err error
			body, err = c.apiClient.GetTransactionsCSV(ctx, query)
			return err
		})
		if err != nil {
			c.printAuthError(err)
			return fmt.Errorf("failed to fetch transactions")
		}
		c.io.Printf("%s", body)
		return nil
	}

	var resp *wire.TransactionsResponse
	err := c.session.Authorized(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.apiClient.GetTransactions(ctx, query)
		return err
	})
	if err != nil {
		c.printAuthError(err)
		return fmt.Errorf("failed to fetch transactions")
	}

	c.io.Println("=== Transactions ===")
	c.io.Println()

	if len(resp.Data) == 0 {
		c.io.Println("No transactions found.")
		return nil
	}

	for _, tx := range resp.Data {
		name := tx.RecordedForName
		if name == "" {
			name = tx.RecordedFor
		}
		c.io.Printf("%s  %10.2f %s  %-12s  %s", tx.Date, tx.Amount, tx.Currency, tx.Category, name)
		if tx.Type == "undo" {
			c.io.Printf("  (undo)")
		}
		c.io.Printf("  [%s]\n", tx.ID)
	}

	c.io.Println()
	c.io.Printf("Page %d of %d transaction(s) total\n", resp.Meta.Page, resp.Meta.Total)

	return nil
}

func (c *Cli) runTransactionsLocal(ctx context.Context, status string) error {
	records, err := c.ledger.List(ctx, status)
	if err != nil {
		return fmt.Errorf("failed to read the local ledger: %w", err)
	}

	c.io.Println("=== Local Transactions ===")
	c.io.Println()

	if len(records) == 0 {
		c.io.Println("No local records found.")
		return nil
	}

	for _, r := range records {
		c.io.Printf("%-8s  %10.2f %s  %-12s  %s  [%s]", r.Status, r.Amount, r.Currency, r.Category, r.RecordedFor, r.LocalID)
		if r.ServerID != "" {
			c.io.Printf("  server=%s", r.ServerID)
		}
		if r.Error != "" {
			c.io.Printf("  error=%q", r.Error)
		}
		c.io.Printf("\n")
	}

	return nil
}

func (c *Cli) runExport(ctx context.Context) error {
	if err := c.ensureLoggedIn(ctx); err != nil {
		return err
	}

	var body string
	err := c.session.Authorized(ctx, func(ctx context.Context) error {
		var err error
		body, err = c.apiClient.ExportTransactionsCSV(ctx, wire.TransactionsQuery{})
		return err
	})
	if err != nil {
		c.printAuthError(err)
		return fmt.Errorf("failed to export transactions")
	}

	c.io.Printf("%s", body)
	return nil
}
