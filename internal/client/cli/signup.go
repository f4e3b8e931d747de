package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/inkpress/internal/validation"
)

func (c *Cli) runSignUp(ctx context.Context) error {
	c.io.Println(headerStyle.Render("=== Sign Up ==="))

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if err := validation.ValidateName(name); err != nil {
		return err
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
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

	c.io.Println("Creating account...")

	user, err := c.actions.SignUp(ctx, name, email, password)
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}

	c.io.Println(successStyle.Render("✓ Account created. Logged in as " + user.Name))
	return nil
}
