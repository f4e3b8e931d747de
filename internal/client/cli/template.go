package cli

import (
	"fmt"
	"text/template"

	"github.com/iudanet/inkpress/internal/client/iocli"
)

var templateFuncs = template.FuncMap{
	"formatDate": formatDate,
	// Отображаемый номер ревизии: Rev 1 — самая старая, последняя в списке
	"revNumber": func(total, index int) int { return total - index },
	"badge":     func(s string) string { return badgeStyle.Render(s) },
}

// renderTemplate исполняет шаблон экрана прямо в терминальный вывод
func renderTemplate(out iocli.IO, tmpl string, data any) error {
	t, err := template.New("view").Funcs(templateFuncs).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := t.Execute(out, data); err != nil {
		return fmt.Errorf("failed to render view: %w", err)
	}
	return nil
}

const usageText = `
Commands:
  signup                  Create an account
  login                   Log in
  logout                  Log out
  whoami                  Show session status
  list [query]            List articles, optionally filtered by title/author
  sort <key>              Set list order: newest, oldest, title, views
  get <id>                Read an article with its revision history
  revision <n|off>        Preview revision n of the opened article
  create                  Write a new article (AI can draft the content)
  edit <id>               Edit your article
  delete <id>             Delete your article
  generate <title>        Generate AI content for a title
  help                    Show this help
  exit                    Quit
`

const articlesListTemplate = `
=== Articles ===

{{- if .Search }}
Search: {{ .Search }} ({{ len .Rows }} of {{ .Total }} shown)
{{- end }}
Sort: {{ .Sort }}

{{- if eq (len .Rows) 0 }}
{{- if .Search }}
No articles match your search.
{{- else }}
No articles found.

Use 'create' to publish your first article.
{{- end }}
{{ else }}
{{- range .Rows }}
- {{ .Title }}
   ID:      {{ .ID }}
   Author:  {{ .Author }}
   Views:   {{ .Views }}
   Date:    {{ formatDate .CreatedAt }}
   {{- if .Description }}
   About:   {{ .Description }}
   {{- end }}
   {{- if .CanManage }}
   Actions: edit / delete available
   {{- end }}

{{- end }}
Use 'get <id>' to read an article.
{{- end }}
`

const articleDetailsTemplate = `
=== {{ .Article.Title }} ===

Author:    {{ .Article.CreatedBy.Name }} <{{ .Article.CreatedBy.Email }}>
Published: {{ if .Preview }}{{ formatDate .Preview.UpdatedAt }} (revision preview){{ else }}{{ formatDate .Article.CreatedAt }}{{ end }}
Updated:   {{ formatDate .Article.UpdatedAt }}
Views:     {{ .Article.Views }}

{{ if .Preview }}{{ .Preview.Content }}{{ else }}{{ .Article.Content }}{{ end }}

{{- if .CanManage }}

Revision history ({{ len .Article.Revisions }}):
{{- $total := len .Article.Revisions }}
{{- range $i, $rev := .Article.Revisions }}
  Rev {{ revNumber $total $i }}  {{ formatDate $rev.UpdatedAt }}{{ if $rev.IsCurrent }}  {{ badge "CURRENT" }}{{ end }}
{{- end }}

Use 'revision <n>' to preview a revision, 'revision off' to go back.
{{- end }}

Article ID: {{ .Article.ID }}
`
