package cli

import (
	"context"
)

func (c *Cli) runWhoami(ctx context.Context) error {
	c.io.Println(headerStyle.Render("=== Session ==="))

	if _, err := c.guard.Check(ctx); err != nil {
		c.io.Println("Status: Not authenticated")
		c.io.Println("Run 'login' to authenticate.")
		return nil
	}

	sess := c.store.Session()
	if sess.User == nil {
		c.io.Println("Status: Not authenticated")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Name:  %s\n", sess.User.Name)
	c.io.Printf("Email: %s\n", sess.User.Email)
	c.io.Printf("ID:    %s\n", sess.User.ID)
	return nil
}
