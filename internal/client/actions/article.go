package actions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iudanet/inkpress/internal/client/api"
	"github.com/iudanet/inkpress/internal/client/state"
	pkgapi "github.com/iudanet/inkpress/pkg/api"
)

// ListArticles загружает коллекцию целиком и замещает ею срез статей
func (s *Service) ListArticles(ctx context.Context) ([]pkgapi.Article, error) {
	s.applyArticles(state.ArticleEvent{Op: state.ArticleList, Phase: state.PhaseRequested})

	res := s.gw.Do(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "article",
	})
	if res.Failed {
		s.applyArticles(state.ArticleEvent{Op: state.ArticleList, Phase: state.PhaseFailed, Err: res.Message})
		return nil, errors.New(res.Message)
	}

	var items []pkgapi.Article
	if err := json.Unmarshal(res.Payload, &items); err != nil {
		err = fmt.Errorf("malformed server response: %w", err)
		s.applyArticles(state.ArticleEvent{Op: state.ArticleList, Phase: state.PhaseFailed, Err: err.Error()})
		return nil, err
	}

	s.applyArticles(state.ArticleEvent{Op: state.ArticleList, Phase: state.PhaseSucceeded, Items: items})
	return items, nil
}

// GetArticle загружает одну статью с историей ревизий в Selected
func (s *Service) GetArticle(ctx context.Context, id string) (*pkgapi.Article, error) {
	s.applyArticles(state.ArticleEvent{Op: state.ArticleGet, Phase: state.PhaseRequested})

	res := s.gw.Do(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "article/" + id,
	})
	if res.Failed {
		s.applyArticles(state.ArticleEvent{Op: state.ArticleGet, Phase: state.PhaseFailed, Err: res.Message})
		return nil, errors.New(res.Message)
	}

	article, err := decodeArticle(res.Payload)
	if err != nil {
		s.applyArticles(state.ArticleEvent{Op: state.ArticleGet, Phase: state.PhaseFailed, Err: err.Error()})
		return nil, err
	}

	s.applyArticles(state.ArticleEvent{Op: state.ArticleGet, Phase: state.PhaseSucceeded, Article: article})
	return article, nil
}

// CreateArticle публикует новую статью; успех добавляет её в конец коллекции
func (s *Service) CreateArticle(ctx context.Context, req pkgapi.ArticleRequest) (*pkgapi.Article, error) {
	s.applyArticles(state.ArticleEvent{Op: state.ArticleCreate, Phase: state.PhaseRequested})

	res := s.gw.Do(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "article",
		Body:   req,
	})
	if res.Failed {
		s.applyArticles(state.ArticleEvent{Op: state.ArticleCreate, Phase: state.PhaseFailed, Err: res.Message})
		return nil, errors.New(res.Message)
	}

	article, err := decodeArticle(res.Payload)
	if err != nil {
		s.applyArticles(state.ArticleEvent{Op: state.ArticleCreate, Phase: state.PhaseFailed, Err: err.Error()})
		return nil, err
	}

	s.applyArticles(state.ArticleEvent{Op: state.ArticleCreate, Phase: state.PhaseSucceeded, Article: article})
	return article, nil
}

// UpdateArticle сохраняет правку; успех замещает статью с тем же id в коллекции
func (s *Service) UpdateArticle(ctx context.Context, id string, req pkgapi.ArticleRequest) (*pkgapi.Article, error) {
	s.applyArticles(state.ArticleEvent{Op: state.ArticleUpdate, Phase: state.PhaseRequested})

	res := s.gw.Do(ctx, api.Request{
		Method: http.MethodPut,
		Path:   "article/" + id,
		Body:   req,
	})
	if res.Failed {
		s.applyArticles(state.ArticleEvent{Op: state.ArticleUpdate, Phase: state.PhaseFailed, Err: res.Message})
		return nil, errors.New(res.Message)
	}

	article, err := decodeArticle(res.Payload)
	if err != nil {
		s.applyArticles(state.ArticleEvent{Op: state.ArticleUpdate, Phase: state.PhaseFailed, Err: err.Error()})
		return nil, err
	}

	s.applyArticles(state.ArticleEvent{Op: state.ArticleUpdate, Phase: state.PhaseSucceeded, Article: article})
	return article, nil
}

// DeleteArticle удаляет статью; успех убирает её из коллекции по id
// из подтверждения сервера. Возвращает текст подтверждения для уведомления.
func (s *Service) DeleteArticle(ctx context.Context, id string) (string, error) {
	s.applyArticles(state.ArticleEvent{Op: state.ArticleDelete, Phase: state.PhaseRequested})

	res := s.gw.Do(ctx, api.Request{
		Method: http.MethodDelete,
		Path:   "article/" + id,
	})
	if res.Failed {
		s.applyArticles(state.ArticleEvent{Op: state.ArticleDelete, Phase: state.PhaseFailed, Err: res.Message})
		return "", errors.New(res.Message)
	}

	var resp pkgapi.DeleteResponse
	if err := json.Unmarshal(res.Payload, &resp); err != nil {
		err = fmt.Errorf("malformed server response: %w", err)
		s.applyArticles(state.ArticleEvent{Op: state.ArticleDelete, Phase: state.PhaseFailed, Err: err.Error()})
		return "", err
	}

	deletedID := resp.Article.ID
	if deletedID == "" {
		// Подтверждение без статьи целиком: ориентируемся на запрошенный id
		deletedID = id
	}

	s.applyArticles(state.ArticleEvent{Op: state.ArticleDelete, Phase: state.PhaseSucceeded, DeletedID: deletedID})
	return resp.Message, nil
}

// GenerateContent запрашивает у сервера сгенерированный текст для заголовка.
// Срез статей не трогается: результат живёт только в черновике вызывающей
// стороны, у которой и крутится свой индикатор загрузки.
func (s *Service) GenerateContent(ctx context.Context, title string) (string, error) {
	res := s.gw.Do(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "article/" + url.PathEscape(title) + "/summary",
	})
	if res.Failed {
		return "", errors.New(res.Message)
	}

	var gen pkgapi.GeneratedContent
	if err := json.Unmarshal(res.Payload, &gen); err != nil {
		return "", fmt.Errorf("malformed server response: %w", err)
	}
	return gen.Content, nil
}
