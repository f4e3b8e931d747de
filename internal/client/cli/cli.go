// Package cli — терминальный слой представления. Читает команды, дергает
// доменные действия и рендерит срезы состояния. Всё локальное UI-состояние
// (поиск, сортировка, выбранная ревизия, черновики) живёт здесь и не
// попадает в Store.
package cli

import (
	"context"
	"errors"
	"fmt"
	stdio "io"
	"strings"

	"github.com/iudanet/inkpress/internal/client/actions"
	"github.com/iudanet/inkpress/internal/client/guard"
	"github.com/iudanet/inkpress/internal/client/iocli"
	"github.com/iudanet/inkpress/internal/client/state"
)

// Ключи сортировки списка статей
const (
	sortNewest = "newest"
	sortOldest = "oldest"
	sortTitle  = "title"
	sortViews  = "views"
)

type Cli struct {
	actions *actions.Service
	store   *state.Store
	guard   *guard.Guard
	io      iocli.IO

	// Локальное UI-состояние текущего сеанса
	searchTerm  string
	sortKey     string
	revisionIdx int // индекс выбранной ревизии в Selected, -1 если не выбрана
}

func New(actionsSvc *actions.Service, store *state.Store, g *guard.Guard, io iocli.IO) *Cli {
	return &Cli{
		actions:     actionsSvc,
		store:       store,
		guard:       g,
		io:          io,
		sortKey:     sortNewest,
		revisionIdx: -1,
	}
}

// Run запускает командный цикл. Возвращается по exit или EOF.
func (c *Cli) Run(ctx context.Context) error {
	c.io.Println(titleStyle.Render("Inkpress"))
	c.io.Println("Type 'help' to list commands.")
	c.io.Println("")

	for {
		line, err := c.io.ReadInput("inkpress> ")
		if err != nil {
			if errors.Is(err, stdio.EOF) {
				c.io.Println("")
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			return nil
		}

		if err := c.Dispatch(ctx, fields[0], fields[1:]); err != nil {
			c.io.Println(errorStyle.Render("Error: " + err.Error()))
		}
	}
}
