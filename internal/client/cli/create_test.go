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

// TestRunCreate_ManualContent проверяет создание статьи с введённым текстом
func TestRunCreate_ManualContent(t *testing.T) {
	sio := &scriptedIO{inputs: []string{"Go Concurrency", "Channels all the way down."}}
	cli, store := newTestCli(t, authOK(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/v1/article", r.URL.Path)

		var req pkgapi.ArticleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Go Concurrency", req.Title)
		assert.Equal(t, "Channels all the way down.", req.Content)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(pkgapi.Article{ID: "a-new", Title: req.Title, Content: req.Content})
	}), sio)

	err := cli.Dispatch(context.Background(), "create", nil)

	require.NoError(t, err)
	assert.Contains(t, sio.out.String(), "Article created: a-new")
	require.Len(t, store.Articles().Items, 1)
}

// TestRunCreate_GeneratedContent проверяет черновик от генератора:
// пустой ввод текста запускает генерацию, подтверждение публикует
func TestRunCreate_GeneratedContent(t *testing.T) {
	sio := &scriptedIO{inputs: []string{"Go Concurrency", "", "y"}}
	cli, _ := newTestCli(t, authOK(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.EscapedPath() {
		case "/api/v1/article/Go%20Concurrency/summary":
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(pkgapi.GeneratedContent{Content: "Drafted by the machine."})
		case "/api/v1/article":
			var req pkgapi.ArticleRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Drafted by the machine.", req.Content)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(pkgapi.Article{ID: "a-gen", Title: req.Title, Content: req.Content})
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}), sio)

	err := cli.Dispatch(context.Background(), "create", nil)

	require.NoError(t, err)
	out := sio.out.String()
	assert.Contains(t, out, "Drafted by the machine.")
	assert.Contains(t, out, "Article created: a-gen")
}

// TestRunCreate_GeneratedContentRejected проверяет отказ от черновика:
// статья не публикуется
func TestRunCreate_GeneratedContentRejected(t *testing.T) {
	sio := &scriptedIO{inputs: []string{"Go Concurrency", "", "n"}}
	cli, store := newTestCli(t, authOK(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/v1/article" {
			t.Error("rejected draft must not be published")
			return
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(pkgapi.GeneratedContent{Content: "Drafted by the machine."})
	}), sio)

	err := cli.Dispatch(context.Background(), "create", nil)

	require.NoError(t, err)
	assert.Contains(t, sio.out.String(), "Cancelled.")
	assert.Empty(t, store.Articles().Items)
}

// TestRunCreate_EmptyTitle проверяет отсечку пустого заголовка
// до сетевого запроса
func TestRunCreate_EmptyTitle(t *testing.T) {
	sio := &scriptedIO{inputs: []string{"   "}}
	cli, _ := newTestCli(t, authOK(func(w http.ResponseWriter, r *http.Request) {
		t.Error("validation must short-circuit before the network")
	}), sio)

	err := cli.Dispatch(context.Background(), "create", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "please enter a title")
}

// TestRunGenerate проверяет отдельную команду генерации
func TestRunGenerate(t *testing.T) {
	sio := &scriptedIO{}
	cli, store := newTestCli(t, authOK(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/article/Go%20Concurrency/summary", r.URL.EscapedPath())
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(pkgapi.GeneratedContent{Content: "Generated text."})
	}), sio)

	err := cli.Dispatch(context.Background(), "generate", []string{"Go", "Concurrency"})

	require.NoError(t, err)
	assert.Contains(t, sio.out.String(), "Generated text.")
	// Генерация не публикация: коллекция не меняется
	assert.Empty(t, store.Articles().Items)
}
