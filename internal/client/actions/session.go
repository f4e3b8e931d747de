package actions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iudanet/inkpress/internal/client/api"
	"github.com/iudanet/inkpress/internal/client/state"
	pkgapi "github.com/iudanet/inkpress/pkg/api"
)

// Login выполняет вход и обновляет срез сессии
func (s *Service) Login(ctx context.Context, email, password string) (*pkgapi.User, error) {
	s.applySession(state.SessionEvent{Op: state.SessionLogin, Phase: state.PhaseRequested})

	res := s.gw.Do(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "auth/login",
		Body:   pkgapi.LoginRequest{Email: email, Password: password},
	})
	if res.Failed {
		s.applySession(state.SessionEvent{Op: state.SessionLogin, Phase: state.PhaseFailed, Err: res.Message})
		return nil, errors.New(res.Message)
	}

	user, err := decodeUser(res.Payload)
	if err != nil {
		s.applySession(state.SessionEvent{Op: state.SessionLogin, Phase: state.PhaseFailed, Err: err.Error()})
		return nil, err
	}

	s.applySession(state.SessionEvent{Op: state.SessionLogin, Phase: state.PhaseSucceeded, User: user})
	return user, nil
}

// SignUp регистрирует нового пользователя; успешный ответ открывает сессию
func (s *Service) SignUp(ctx context.Context, name, email, password string) (*pkgapi.User, error) {
	s.applySession(state.SessionEvent{Op: state.SessionSignUp, Phase: state.PhaseRequested})

	res := s.gw.Do(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "auth/signup",
		Body:   pkgapi.SignupRequest{Name: name, Email: email, Password: password},
	})
	if res.Failed {
		s.applySession(state.SessionEvent{Op: state.SessionSignUp, Phase: state.PhaseFailed, Err: res.Message})
		return nil, errors.New(res.Message)
	}

	user, err := decodeUser(res.Payload)
	if err != nil {
		s.applySession(state.SessionEvent{Op: state.SessionSignUp, Phase: state.PhaseFailed, Err: err.Error()})
		return nil, err
	}

	s.applySession(state.SessionEvent{Op: state.SessionSignUp, Phase: state.PhaseSucceeded, User: user})
	return user, nil
}

// ValidateSession проверяет сессию по cookie. Вызывается перед каждым
// защищённым экраном; неуспех сбрасывает пользователя в срезе сессии.
func (s *Service) ValidateSession(ctx context.Context) (*pkgapi.User, error) {
	s.applySession(state.SessionEvent{Op: state.SessionValidate, Phase: state.PhaseRequested})

	res := s.gw.Do(ctx, api.Request{
		Method: http.MethodGet,
		Path:   "auth/validateUser",
	})
	if res.Failed {
		s.applySession(state.SessionEvent{Op: state.SessionValidate, Phase: state.PhaseFailed, Err: res.Message})
		return nil, errors.New(res.Message)
	}

	user, err := decodeUser(res.Payload)
	if err != nil {
		s.applySession(state.SessionEvent{Op: state.SessionValidate, Phase: state.PhaseFailed, Err: err.Error()})
		return nil, err
	}

	s.applySession(state.SessionEvent{Op: state.SessionValidate, Phase: state.PhaseSucceeded, User: user})
	return user, nil
}

// Logout завершает сессию на сервере. Успех очищает пользователя в срезе;
// локальное состояние экранов сбрасывает слой представления.
func (s *Service) Logout(ctx context.Context) (string, error) {
	s.applySession(state.SessionEvent{Op: state.SessionLogout, Phase: state.PhaseRequested})

	res := s.gw.Do(ctx, api.Request{
		Method: http.MethodPost,
		Path:   "auth/logout",
	})
	if res.Failed {
		s.applySession(state.SessionEvent{Op: state.SessionLogout, Phase: state.PhaseFailed, Err: res.Message})
		return "", errors.New(res.Message)
	}

	// Текст подтверждения не обязателен
	var msg pkgapi.MessageResponse
	_ = json.Unmarshal(res.Payload, &msg)

	s.applySession(state.SessionEvent{Op: state.SessionLogout, Phase: state.PhaseSucceeded})
	return msg.Message, nil
}
