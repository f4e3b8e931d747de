// Package actions содержит доменные действия клиента. Каждое действие ровно
// один раз обращается к гейтвею и проводит свой срез состояния через фазы
// requested/succeeded/failed. Payload разбирается в типизированные структуры
// прямо на этой границе: кривой ответ сервера превращается в фазу failed,
// а не расползается по состоянию.
package actions

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iudanet/inkpress/internal/client/api"
	"github.com/iudanet/inkpress/internal/client/state"
	pkgapi "github.com/iudanet/inkpress/pkg/api"
)

// Service выполняет доменные действия поверх гейтвея
type Service struct {
	gw    *api.Client
	store *state.Store
	log   zerolog.Logger
}

// NewService создает новый сервис действий
func NewService(gw *api.Client, store *state.Store, log zerolog.Logger) *Service {
	return &Service{
		gw:    gw,
		store: store,
		log:   log,
	}
}

// applySession доставляет событие в Store и пишет отладочный след фазы
func (s *Service) applySession(ev state.SessionEvent) {
	s.log.Debug().
		Stringer("op", ev.Op).
		Stringer("phase", ev.Phase).
		Msg("session event")
	s.store.ApplySession(ev)
}

// applyArticles доставляет событие в Store и пишет отладочный след фазы
func (s *Service) applyArticles(ev state.ArticleEvent) {
	s.log.Debug().
		Stringer("op", ev.Op).
		Stringer("phase", ev.Phase).
		Msg("articles event")
	s.store.ApplyArticles(ev)
}

// decodeUser разбирает ответ с пользователем: либо {"user": {...}},
// либо объект пользователя на верхнем уровне (так отвечает signup)
func decodeUser(payload json.RawMessage) (*pkgapi.User, error) {
	var wrapped pkgapi.AuthResponse
	if err := json.Unmarshal(payload, &wrapped); err == nil && wrapped.User != nil && wrapped.User.ID != "" {
		return wrapped.User, nil
	}

	var bare pkgapi.User
	if err := json.Unmarshal(payload, &bare); err != nil {
		return nil, fmt.Errorf("malformed server response: %w", err)
	}
	if bare.ID == "" {
		return nil, fmt.Errorf("malformed server response: no user in payload")
	}
	return &bare, nil
}

// decodeArticle разбирает одиночную статью из payload
func decodeArticle(payload json.RawMessage) (*pkgapi.Article, error) {
	var a pkgapi.Article
	if err := json.Unmarshal(payload, &a); err != nil {
		return nil, fmt.Errorf("malformed server response: %w", err)
	}
	if a.ID == "" {
		return nil, fmt.Errorf("malformed server response: article without id")
	}
	return &a, nil
}
