package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/inkpress/internal/validation"
	pkgapi "github.com/iudanet/inkpress/pkg/api"
)

func (c *Cli) runCreate(ctx context.Context) error {
	c.io.Println(headerStyle.Render("=== New Article ==="))

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if err := validation.ValidateTitle(title); err != nil {
		return err
	}

	content, err := c.io.ReadInput("Content (leave empty to generate with AI): ")
	if err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}

	if strings.TrimSpace(content) == "" {
		c.io.Println("Generating content...")
		generated, err := c.actions.GenerateContent(ctx, title)
		if err != nil {
			c.io.Println(errorStyle.Render("AI generation failed: " + err.Error()))
			return nil
		}
		c.io.Println(mutedStyle.Render(generated))

		ok, err := c.confirm("Use this content?")
		if err != nil {
			return err
		}
		if !ok {
			c.io.Println("Cancelled.")
			return nil
		}
		content = generated
	}

	if err := validation.ValidateContent(content); err != nil {
		return err
	}

	article, err := c.actions.CreateArticle(ctx, pkgapi.ArticleRequest{Title: title, Content: content})
	if err != nil {
		c.io.Println(errorStyle.Render("Failed to create article: " + err.Error()))
		return nil
	}

	c.io.Println(successStyle.Render("✓ Article created: " + article.ID))
	return nil
}
