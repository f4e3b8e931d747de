package cli

import (
	pkgapi "github.com/iudanet/inkpress/pkg/api"
)

// canAccess сообщает, владеет ли пользователь сессии статьёй.
// true только когда сессия есть и id создателя совпадает с id пользователя.
func canAccess(ownerID string, user *pkgapi.User) bool {
	return user != nil && user.ID == ownerID
}
