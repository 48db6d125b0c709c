package cli

import (
	"context"
	"fmt"

	wire "github.com/abdulkader3/expence-go/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	data, err := c.session.Login(ctx, wire.LoginPayload{
		Email:      email,
		Password:   password,
		DeviceName: c.deviceName,
	})
	if err != nil {
		c.io.Println()
		c.printAuthError(err)
		return fmt.Errorf("login failed")
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Name:  %s\n", data.User.Name)
	c.io.Printf("Email: %s\n", data.User.Email)
	if data.ExpiresIn > 0 {
		c.io.Printf("Access token expires in: %d seconds\n", data.ExpiresIn)
	}
	c.io.Println()
	c.io.Println("Your session has been saved securely.")

	return nil
}
