package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/inkpress/internal/validation"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println(headerStyle.Render("=== Login ==="))

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	// Валидация отсекает заведомо плохой ввод до сетевого запроса
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	c.io.Println("Authenticating...")

	user, err := c.actions.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println(successStyle.Render("✓ Logged in as " + user.Name))
	return nil
}
