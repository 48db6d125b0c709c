package cli

import (
	"context"
	"flag"
	"fmt"

	wire "github.com/abdulkader3/expence-go/pkg/api"
)

func (c *Cli) runPartners(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("partners", flag.ContinueOnError)
	sortBy := fs.String("sort", "", "sort by: total_contributed, name or created_at")
	page := fs.Int("page", 0, "page number")
	perPage := fs.Int("per-page", 0, "items per page")
	withTx := fs.Bool("with-transactions", false, "include each partner's recent transactions")
	from := fs.String("from", "", "with a partner id: filter from date (YYYY-MM-DD)")
	to := fs.String("to", "", "with a partner id: filter to date (YYYY-MM-DD)")
	category := fs.String("category", "", "with a partner id: filter by category")
	search := fs.String("q", "", "with a partner id: full-text search")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.ensureLoggedIn(ctx); err != nil {
		return err
	}

	if fs.NArg() > 0 {
		return c.runPartnerDetail(ctx, fs.Arg(0), wire.PartnerDetailQuery{
			From:     *from,
			To:       *to,
			Category: *category,
			Search:   *search,
			Page:     *page,
			PerPage:  *perPage,
		})
	}

	query := wire.PartnersQuery{
		SortBy:              *sortBy,
		Page:                *page,
		PerPage:             *perPage,
		IncludeTransactions: *withTx,
	}

	var resp *wire.PartnersResponse
	err := c.session.Authorized(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.apiClient.GetPartners(ctx, query)
		return err
	})
	if err != nil {
		c.printAuthError(err)
		return fmt.Errorf("failed to fetch partners")
	}

	c.io.Println("=== Partners ===")
	c.io.Println()

	if len(resp.Data) == 0 {
		c.io.Println("No partners found.")
		return nil
	}

	for _, p := range resp.Data {
		c.io.Printf("%-24s  %10.2f", p.Name, p.TotalContributed)
		if p.LastContributionAt != "" {
			c.io.Printf("  last: %s", p.LastContributionAt)
		}
		c.io.Printf("  [%s]\n", p.ID)
		for _, tx := range p.RecentTransactions {
			c.io.Printf("    %10.2f  %s  %s\n", tx.Amount, tx.CreatedAt, tx.Description)
		}
	}

	c.io.Println()
	c.io.Printf("%d partner(s) total\n", resp.Meta.Total)

	return nil
}

func (c *Cli) runPartnerDetail(ctx context.Context, partnerID string, query wire.PartnerDetailQuery) error {
	var resp *wire.PartnerDetailResponse
	err := c.session.Authorized(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.apiClient.GetPartnerDetail(ctx, partnerID, query)
		return err
	})
	if err != nil {
		c.printAuthError(err)
		return fmt.Errorf("failed to fetch partner")
	}

	c.io.Println("=== Partner ===")
	c.io.Println()
	c.io.Printf("Name:              %s\n", resp.Partner.Name)
	c.io.Printf("Total contributed: %.2f\n", resp.Partner.TotalContributed)
	if resp.Partner.Notes != "" {
		c.io.Printf("Notes:             %s\n", resp.Partner.Notes)
	}

	c.io.Println()
	if len(resp.Transactions) == 0 {
		c.io.Println("No transactions in the selected range.")
		return nil
	}

	for _, tx := range resp.Transactions {
		c.io.Printf("%s  %10.2f  %-12s  %s", tx.Date, tx.Amount, tx.Category, tx.RecordedBy)
		if tx.Type == "undo" {
			c.io.Printf("  (undo)")
		}
		c.io.Printf("  [%s]\n", tx.ID)
	}

	c.io.Println()
	c.io.Printf("%d transaction(s) total\n", resp.Meta.TotalTransactions)

	return nil
}

func (c *Cli) runLeaderboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("leaderboard", flag.ContinueOnError)
	limit := fs.Int("limit", 0, "number of entries")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.ensureLoggedIn(ctx); err != nil {
		return err
	}

	var resp *wire.LeaderboardResponse
	err := c.session.Authorized(ctx, func(ctx context.Context) error {
		var err error
		resp, err = c.apiClient.GetLeaderboard(ctx, wire.LeaderboardQuery{Limit: *limit})
		return err
	})
	if err != nil {
		c.printAuthError(err)
		return fmt.Errorf("failed to fetch leaderboard")
	}

	c.io.Println("=== Leaderboard ===")
	c.io.Println()

	if len(resp.Data) == 0 {
		c.io.Println("No contributions yet.")
		return nil
	}

	for _, e := range resp.Data {
		marker := "  "
		if e.TopContributor {
			marker = "★ "
		}
		c.io.Printf("%s%2d. %-24s  %10.2f\n", marker, e.Rank, e.Name, e.TotalContributed)
	}

	if resp.Meta.AsOf != "" {
		c.io.Println()
		c.io.Printf("As of %s\n", resp.Meta.AsOf)
	}

	return nil
}
