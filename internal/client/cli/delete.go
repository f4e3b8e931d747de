package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing article ID. Usage: delete <id>")
	}
	id := args[0]

	// Если статья есть в загруженном списке, проверяем владение до запроса
	for _, a := range c.store.Articles().Items {
		if a.ID == id && !canAccess(a.CreatedBy.ID, c.store.Session().User) {
			return fmt.Errorf("you can only delete your own articles")
		}
	}

	ok, err := c.confirm("Are you sure you want to delete this article?")
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Cancelled.")
		return nil
	}

	msg, err := c.actions.DeleteArticle(ctx, id)
	if err != nil {
		c.io.Println(errorStyle.Render("Failed to delete article: " + err.Error()))
		return nil
	}

	if msg == "" {
		msg = "Article deleted."
	}
	c.io.Println(successStyle.Render("✓ " + msg))
	return nil
}
