package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgapi "github.com/iudanet/inkpress/pkg/api"
)

// fakeValidator считает вызовы и возвращает заранее заданный исход
type fakeValidator struct {
	user  *pkgapi.User
	err   error
	calls int
}

func (f *fakeValidator) ValidateSession(ctx context.Context) (*pkgapi.User, error) {
	f.calls++
	return f.user, f.err
}

// TestGuard_Check_Allowed проверяет пропуск при живой сессии
func TestGuard_Check_Allowed(t *testing.T) {
	v := &fakeValidator{user: &pkgapi.User{ID: "u-1", Name: "Ada"}}
	g := New(v)

	user, err := g.Check(context.Background())

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u-1", user.ID)
}

// TestGuard_Check_Denied проверяет отказ при мёртвой сессии
func TestGuard_Check_Denied(t *testing.T) {
	v := &fakeValidator{err: errors.New("Unauthorized")}
	g := New(v)

	user, err := g.Check(context.Background())

	require.Error(t, err)
	assert.Nil(t, user)
	assert.Contains(t, err.Error(), "session check failed")
	assert.Contains(t, err.Error(), "Unauthorized")
}

// TestGuard_Check_NoCaching проверяет что каждая проверка идёт к серверу:
// протухшая между экранами сессия будет замечена
func TestGuard_Check_NoCaching(t *testing.T) {
	v := &fakeValidator{user: &pkgapi.User{ID: "u-1"}}
	g := New(v)

	_, err := g.Check(context.Background())
	require.NoError(t, err)

	// Сессия истекла на сервере между экранами
	v.user = nil
	v.err = errors.New("session expired")

	_, err = g.Check(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, v.calls)
}
