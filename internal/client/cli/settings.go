package cli

import (
	"context"
	"flag"
	"fmt"

	wire "github.com/abdulkader3/expence-go/pkg/api"
)

func (c *Cli) runSettings(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "set" {
		return c.runSettingsSet(ctx, args[1:])
	}

	c.io.Println("=== Settings ===")
	c.io.Println()

	if err := c.ensureLoggedIn(ctx); err != nil {
		return err
	}

	settings, err := c.session.Settings(ctx)
	if err != nil {
		c.printAuthError(err)
		return fmt.Errorf("failed to load settings")
	}

	c.printSettings(settings)
	return nil
}

func (c *Cli) runSettingsSet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("settings set", flag.ContinueOnError)
	currency := fs.String("currency", "", "default currency code, e.g. USD")
	exportFormat := fs.String("export", "", "export format: csv or pdf")
	quickAdd := fs.String("quick-add", "", "default partner for quick add")
	biometric := fs.String("biometric", "", "biometric lock: on or off")
	notifications := fs.String("notifications", "", "notifications: on or off")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.io.Println("=== Update Settings ===")
	c.io.Println()

	if err := c.ensureLoggedIn(ctx); err != nil {
		return err
	}

	// Only flags the user actually passed go into the payload; the server
	// leaves nil fields untouched.
	var payload wire.UpdateSettingsPayload
	changed := false
	fs.Visit(func(f *flag.Flag) {
		changed = true
		switch f.Name {
		case "currency":
			payload.Currency = currency
		case "export":
			payload.ExportFormat = exportFormat
		case "quick-add":
			payload.QuickAddDefaultPartner = quickAdd
		case "biometric":
			v := *biometric == "on"
			payload.BiometricLockEnabled = &v
		case "notifications":
			v := *notifications == "on"
			payload.Notifications = &wire.NotificationSettings{Enabled: v, Email: v, Push: v}
		}
	})
	if !changed {
		return fmt.Errorf("nothing to update: pass at least one flag")
	}

	settings, err := c.session.UpdateSettings(ctx, payload)
	if err != nil {
		c.printAuthError(err)
		return fmt.Errorf("failed to update settings")
	}

	c.io.Println("✓ Settings updated!")
	c.io.Println()
	c.printSettings(settings)
	return nil
}

func (c *Cli) printSettings(settings *wire.UserSettings) {
	c.io.Printf("Currency:       %s\n", settings.Currency)
	c.io.Printf("Export format:  %s\n", settings.ExportFormat)
	c.io.Printf("Biometric lock: %s\n", onOff(settings.BiometricLockEnabled))
	if settings.QuickAddDefaultPartner != "" {
		c.io.Printf("Quick-add partner: %s\n", settings.QuickAddDefaultPartner)
	}
	c.io.Println()
	c.io.Println("Notifications:")
	c.io.Printf("  Enabled: %s\n", onOff(settings.Notifications.Enabled))
	c.io.Printf("  Email:   %s\n", onOff(settings.Notifications.Email))
	c.io.Printf("  Push:    %s\n", onOff(settings.Notifications.Push))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
