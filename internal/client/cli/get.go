package cli

import (
	"context"
	"fmt"
	"strconv"

	pkgapi "github.com/iudanet/inkpress/pkg/api"
)

// articleView — данные шаблона деталей статьи
type articleView struct {
	Preview   *pkgapi.Revision // выбранная ревизия для предпросмотра
	Article   pkgapi.Article
	CanManage bool
}

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing article ID. Usage: get <id>")
	}

	// Новый экран — предпросмотр ревизии сбрасывается
	c.revisionIdx = -1

	if _, err := c.actions.GetArticle(ctx, args[0]); err != nil {
		c.io.Println(errorStyle.Render("Failed to load article: " + err.Error()))
		return nil
	}
	return c.renderSelected()
}

// runRevision включает или выключает предпросмотр ревизии открытой статьи.
// Номер считается так, как он показан в истории: Rev 1 — самая старая.
func (c *Cli) runRevision(args []string) error {
	st := c.store.Articles()
	if st.Selected == nil {
		return fmt.Errorf("no article is open. Use 'get <id>' first")
	}
	if len(args) == 0 {
		return fmt.Errorf("missing revision number. Usage: revision <n|off>")
	}

	if args[0] == "off" {
		c.revisionIdx = -1
		return c.renderSelected()
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid revision number: %s", args[0])
	}

	total := len(st.Selected.Revisions)
	idx := total - n
	if n < 1 || idx < 0 || idx >= total {
		return fmt.Errorf("revision %d does not exist (article has %d)", n, total)
	}

	c.revisionIdx = idx
	return c.renderSelected()
}

func (c *Cli) renderSelected() error {
	st := c.store.Articles()
	if st.Selected == nil {
		return fmt.Errorf("no article is open")
	}

	view := articleView{
		Article:   *st.Selected,
		CanManage: canAccess(st.Selected.CreatedBy.ID, c.store.Session().User),
	}
	if c.revisionIdx >= 0 && c.revisionIdx < len(st.Selected.Revisions) {
		rev := st.Selected.Revisions[c.revisionIdx]
		view.Preview = &rev
	}

	return renderTemplate(c.io, articleDetailsTemplate, view)
}
