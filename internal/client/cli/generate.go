package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/inkpress/internal/validation"
)

func (c *Cli) runGenerate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing title. Usage: generate <title>")
	}

	title := strings.Join(args, " ")
	if err := validation.ValidateTitle(title); err != nil {
		return err
	}

	c.io.Println("Generating content...")

	content, err := c.actions.GenerateContent(ctx, title)
	if err != nil {
		c.io.Println(errorStyle.Render("AI generation failed: " + err.Error()))
		return nil
	}

	c.io.Println(headerStyle.Render("=== Generated Content ==="))
	c.io.Println(content)
	return nil
}
