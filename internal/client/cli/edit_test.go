package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgapi "github.com/iudanet/inkpress/pkg/api"
)

// TestRunEdit_OwnArticle проверяет правку своей статьи;
// пустой ввод сохраняет текущие значения
func TestRunEdit_OwnArticle(t *testing.T) {
	sio := &scriptedIO{inputs: []string{"Rewritten Title", ""}}
	cli, _ := newTestCli(t, authOK(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/api/v1/article/a1", r.URL.Path)
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(pkgapi.Article{
				ID: "a1", Title: "Original", Content: "Body text",
				CreatedBy: pkgapi.User{ID: "u-1", Name: "Ada"},
			})
		case http.MethodPut:
			assert.Equal(t, "/api/v1/article/a1", r.URL.Path)
			var req pkgapi.ArticleRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Rewritten Title", req.Title)
			assert.Equal(t, "Body text", req.Content) // содержимое сохранилось
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(pkgapi.Article{ID: "a1", Title: req.Title, Content: req.Content})
		default:
			t.Errorf("unexpected method: %s", r.Method)
		}
	}), sio)

	// Сессия появится в срезе после проверки guard'ом
	err := cli.Dispatch(context.Background(), "edit", []string{"a1"})

	require.NoError(t, err)
	assert.Contains(t, sio.out.String(), "Article updated: a1")
}

// TestRunEdit_ForeignArticle проверяет что чужую статью править нельзя
func TestRunEdit_ForeignArticle(t *testing.T) {
	sio := &scriptedIO{}
	cli, _ := newTestCli(t, authOK(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			t.Error("foreign article must not be updated")
			return
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(pkgapi.Article{
			ID: "a1", Title: "Foreign", Content: "Body",
			CreatedBy: pkgapi.User{ID: "someone-else", Name: "Bob"},
		})
	}), sio)

	err := cli.Dispatch(context.Background(), "edit", []string{"a1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "only edit your own articles")
}

// TestRunEdit_Regenerate проверяет перегенерацию содержимого по вводу 'ai'
func TestRunEdit_Regenerate(t *testing.T) {
	sio := &scriptedIO{inputs: []string{"", "ai"}}
	cli, _ := newTestCli(t, authOK(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(pkgapi.Article{
				ID: "a1", Title: "Original", Content: "Old body",
				CreatedBy: pkgapi.User{ID: "u-1"},
			})
		case r.Method == http.MethodPost:
			assert.Equal(t, "/api/v1/article/Original/summary", r.URL.EscapedPath())
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(pkgapi.GeneratedContent{Content: "Fresh body."})
		case r.Method == http.MethodPut:
			var req pkgapi.ArticleRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Original", req.Title)
			assert.Equal(t, "Fresh body.", req.Content)
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(pkgapi.Article{ID: "a1", Title: req.Title, Content: req.Content})
		}
	}), sio)

	err := cli.Dispatch(context.Background(), "edit", []string{"a1"})

	require.NoError(t, err)
	assert.Contains(t, sio.out.String(), "Article updated: a1")
}

// TestRunEdit_MissingID проверяет подсказку при вызове без аргумента
func TestRunEdit_MissingID(t *testing.T) {
	sio := &scriptedIO{}
	cli, _ := newTestCli(t, authOK(func(w http.ResponseWriter, r *http.Request) {
		t.Error("server should not be reached")
	}), sio)

	err := cli.Dispatch(context.Background(), "edit", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing article ID")
}
