package cli

import (
	"context"
	"fmt"

	wire "github.com/abdulkader3/expence-go/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Register ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	phone, err := c.io.ReadInput("Phone (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read phone: %w", err)
	}

	company, err := c.io.ReadInput("Company (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read company: %w", err)
	}

	password, err := c.io.ReadPassword("Password (min 8 characters): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	c.io.Println()
	c.io.Println("Creating account...")

	data, err := c.session.Register(ctx, wire.RegisterPayload{
		Name:     name,
		Email:    email,
		Password: password,
		Phone:    phone,
		Company:  company,
	})
	if err != nil {
		c.io.Println()
		c.printAuthError(err)
		return fmt.Errorf("registration failed")
	}

	c.io.Println()
	c.io.Println("✓ Account created!")
	c.io.Printf("Name:  %s\n", data.User.Name)
	c.io.Printf("Email: %s\n", data.User.Email)
	c.io.Println()
	c.io.Println("You are now logged in on this device.")

	return nil
}
