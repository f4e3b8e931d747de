package cli

import (
	"context"
	"fmt"
)

// Dispatch выполняет одну команду. Защищённые команды проходят через guard.
func (c *Cli) Dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "help":
		c.io.Println(usageText)
		return nil
	case "signup":
		return c.runSignUp(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "whoami":
		return c.runWhoami(ctx)
	case "sort":
		return c.runSort(args)
	case "revision":
		return c.runRevision(args)
	case "list":
		return c.protected(ctx, func(ctx context.Context) error { return c.runList(ctx, args) })
	case "get":
		return c.protected(ctx, func(ctx context.Context) error { return c.runGet(ctx, args) })
	case "create":
		return c.protected(ctx, c.runCreate)
	case "edit":
		return c.protected(ctx, func(ctx context.Context) error { return c.runEdit(ctx, args) })
	case "delete":
		return c.protected(ctx, func(ctx context.Context) error { return c.runDelete(ctx, args) })
	case "generate":
		return c.protected(ctx, func(ctx context.Context) error { return c.runGenerate(ctx, args) })
	default:
		return fmt.Errorf("unknown command: %s (type 'help')", command)
	}
}

// protected перепроверяет сессию перед каждым защищённым экраном.
// Отказ не ошибка команды: пользователя отправляют на логин.
func (c *Cli) protected(ctx context.Context, fn func(context.Context) error) error {
	c.io.Println(mutedStyle.Render("Checking session..."))
	if _, err := c.guard.Check(ctx); err != nil {
		c.io.Println(errorStyle.Render("Not authenticated. Please 'login' first."))
		return nil
	}
	return fn(ctx)
}
