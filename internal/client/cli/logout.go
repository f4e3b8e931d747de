package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	msg, err := c.actions.Logout(ctx)
	if err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	// Вместе с сессией сбрасывается локальное состояние экранов
	c.searchTerm = ""
	c.sortKey = sortNewest
	c.revisionIdx = -1

	if msg == "" {
		msg = "Logged out."
	}
	c.io.Println(successStyle.Render("✓ " + msg))
	return nil
}
