package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runWhoami(ctx context.Context) error {
	c.io.Println("=== Profile ===")
	c.io.Println()

	if err := c.ensureLoggedIn(ctx); err != nil {
		return err
	}

	user, err := c.session.CurrentUser(ctx)
	if err != nil {
		// Offline fallback: show the last cached profile.
		cached, cacheErr := c.session.CachedUser(ctx)
		if cacheErr != nil {
			c.printAuthError(err)
			return fmt.Errorf("failed to load profile")
		}
		c.io.Println("(offline, showing cached profile)")
		c.io.Println()
		user = cached
	}

	c.io.Printf("ID:      %s\n", user.ID)
	c.io.Printf("Name:    %s\n", user.Name)
	c.io.Printf("Email:   %s\n", user.Email)
	if user.Phone != "" {
		c.io.Printf("Phone:   %s\n", user.Phone)
	}
	if user.Company != "" {
		c.io.Printf("Company: %s\n", user.Company)
	}
	if len(user.Roles) > 0 {
		c.io.Printf("Roles:   %s\n", strings.Join(user.Roles, ", "))
	}

	return nil
}
