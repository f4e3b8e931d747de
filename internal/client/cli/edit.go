package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/inkpress/internal/validation"
	pkgapi "github.com/iudanet/inkpress/pkg/api"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing article ID. Usage: edit <id>")
	}

	article, err := c.actions.GetArticle(ctx, args[0])
	if err != nil {
		c.io.Println(errorStyle.Render("Failed to load article: " + err.Error()))
		return nil
	}
	// Сервер проверит владение ещё раз, но чужую статью не даём править и тут
	if !canAccess(article.CreatedBy.ID, c.store.Session().User) {
		return fmt.Errorf("you can only edit your own articles")
	}

	c.io.Println(headerStyle.Render("=== Edit Article ==="))
	c.io.Printf("Current title: %s\n", article.Title)

	title, err := c.io.ReadInput("New title (empty keeps current): ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if strings.TrimSpace(title) == "" {
		title = article.Title
	}
	if err := validation.ValidateTitle(title); err != nil {
		return err
	}

	content, err := c.io.ReadInput("New content (empty keeps current, 'ai' to regenerate): ")
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}
	switch strings.TrimSpace(content) {
	case "":
		content = article.Content
	case "ai":
		c.io.Println("Generating content...")
		generated, err := c.actions.GenerateContent(ctx, title)
		if err != nil {
			c.io.Println(errorStyle.Render("AI generation failed: " + err.Error()))
			return nil
		}
		content = generated
	}
	if err := validation.ValidateContent(content); err != nil {
		return err
	}

	updated, err := c.actions.UpdateArticle(ctx, article.ID, pkgapi.ArticleRequest{Title: title, Content: content})
	if err != nil {
		c.io.Println(errorStyle.Render("Failed to update article: " + err.Error()))
		return nil
	}

	c.io.Println(successStyle.Render("✓ Article updated: " + updated.ID))
	return nil
}
