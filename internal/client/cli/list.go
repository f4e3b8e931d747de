package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	pkgapi "github.com/iudanet/inkpress/pkg/api"
)

// listView — данные шаблона списка статей
type listView struct {
	Search string
	Sort   string
	Rows   []articleRow
	Total  int
}

// articleRow — строка списка с вычисленным правом на управление
type articleRow struct {
	pkgapi.Article
	CanManage bool
}

func (c *Cli) runList(ctx context.Context, args []string) error {
	// Аргументы команды — поисковый запрос текущего экрана
	c.searchTerm = strings.Join(args, " ")

	if _, err := c.actions.ListArticles(ctx); err != nil {
		// Срез уже в состоянии ошибки, показываем её вместо содержимого
		c.io.Println(errorStyle.Render("Failed to load articles: " + err.Error()))
		return nil
	}
	return c.renderList()
}

func (c *Cli) renderList() error {
	st := c.store.Articles()
	user := c.store.Session().User

	items := sortArticles(filterArticles(st.Items, c.searchTerm), c.sortKey)
	rows := make([]articleRow, 0, len(items))
	for _, a := range items {
		rows = append(rows, articleRow{Article: a, CanManage: canAccess(a.CreatedBy.ID, user)})
	}

	return renderTemplate(c.io, articlesListTemplate, listView{
		Search: c.searchTerm,
		Sort:   c.sortKey,
		Rows:   rows,
		Total:  len(st.Items),
	})
}

func (c *Cli) runSort(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing sort key. Usage: sort <newest|oldest|title|views>")
	}

	switch args[0] {
	case sortNewest, sortOldest, sortTitle, sortViews:
		c.sortKey = args[0]
	default:
		return fmt.Errorf("unknown sort key: %s. Use: newest, oldest, title, or views", args[0])
	}

	if len(c.store.Articles().Items) > 0 {
		return c.renderList()
	}
	c.io.Printf("Sort key set to %s\n", c.sortKey)
	return nil
}

// filterArticles оставляет статьи, чей заголовок или автор содержит
// подстроку поиска без учёта регистра
func filterArticles(items []pkgapi.Article, term string) []pkgapi.Article {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	var out []pkgapi.Article
	for _, a := range items {
		if strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.Author), needle) {
			out = append(out, a)
		}
	}
	return out
}

// sortArticles возвращает отсортированную копию, исходный срез не меняется.
// Неизвестный ключ оставляет порядок сервера.
func sortArticles(items []pkgapi.Article, key string) []pkgapi.Article {
	out := make([]pkgapi.Article, len(items))
	copy(out, items)

	switch key {
	case sortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	case sortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	case sortTitle:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	case sortViews:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	}
	return out
}
