package state

import (
	pkgapi "github.com/iudanet/inkpress/pkg/api"
)

// SessionOp — действие над срезом сессии
type SessionOp int

const (
	SessionLogin SessionOp = iota
	SessionSignUp
	SessionValidate
	SessionLogout
)

func (op SessionOp) String() string {
	switch op {
	case SessionLogin:
		return "login"
	case SessionSignUp:
		return "signup"
	case SessionValidate:
		return "validate"
	case SessionLogout:
		return "logout"
	default:
		return "unknown"
	}
}

// SessionState описывает последнее известное состояние сессии.
// User не nil только после успешного login/signup/validate.
type SessionState struct {
	User      *pkgapi.User
	Error     string
	IsLoading bool
}

// SessionEvent — событие одной фазы одного действия над сессией
type SessionEvent struct {
	User  *pkgapi.User // payload успешных login/signup/validate
	Err   string       // сообщение при PhaseFailed
	Op    SessionOp
	Phase Phase
}

// ReduceSession применяет событие к состоянию сессии.
// Чистая функция: возвращает новое состояние, аргументы не меняются.
func ReduceSession(s SessionState, ev SessionEvent) SessionState {
	switch ev.Phase {
	case PhaseRequested:
		s.IsLoading = true
		s.Error = ""
	case PhaseFailed:
		s.IsLoading = false
		s.Error = ev.Err
		// Неуспешная проверка сессии означает, что пользователя больше нет
		if ev.Op == SessionValidate {
			s.User = nil
		}
	case PhaseSucceeded:
		s.IsLoading = false
		switch ev.Op {
		case SessionLogin, SessionSignUp, SessionValidate:
			s.User = ev.User
		case SessionLogout:
			s.User = nil
		}
	}
	return s
}
