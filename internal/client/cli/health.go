package cli

import (
	"context"
)

func (c *Cli) runHealth(ctx context.Context) error {
	resp, err := c.apiClient.Health(ctx)
	if err != nil {
		c.io.Println("✗ Backend is unreachable.")
		return err
	}

	c.io.Printf("✓ Backend is up (status: %s)\n", resp.Status)
	return nil
}
