// Package guard выполняет проверку сессии перед защищёнными экранами.
package guard

import (
	"context"
	"fmt"

	pkgapi "github.com/iudanet/inkpress/pkg/api"
)

// SessionValidator проверяет текущую сессию на сервере
type SessionValidator interface {
	ValidateSession(ctx context.Context) (*pkgapi.User, error)
}

// Guard повторяет проверку при каждом входе в защищённый экран.
// Результат предыдущей проверки не кэшируется.
type Guard struct {
	validator SessionValidator
}

// New создает новый guard поверх проверяющего сервиса
func New(v SessionValidator) *Guard {
	return &Guard{validator: v}
}

// Check выполняет проверку сессии. nil — доступ разрешён; ошибка — вход
// запрещён, и вызывающая сторона должна отправить пользователя на логин.
func (g *Guard) Check(ctx context.Context) (*pkgapi.User, error) {
	user, err := g.validator.ValidateSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("session check failed: %w", err)
	}
	return user, nil
}
