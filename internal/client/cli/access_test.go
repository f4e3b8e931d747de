package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pkgapi "github.com/iudanet/inkpress/pkg/api"
)

// TestCanAccess проверяет право на управление статьёй:
// только авторизованный владелец
func TestCanAccess(t *testing.T) {
	owner := &pkgapi.User{ID: "u-1", Name: "Ada"}
	stranger := &pkgapi.User{ID: "u-2", Name: "Bob"}

	tests := []struct {
		user    *pkgapi.User
		name    string
		ownerID string
		want    bool
	}{
		{
			name:    "owner can manage",
			ownerID: "u-1",
			user:    owner,
			want:    true,
		},
		{
			name:    "stranger cannot manage",
			ownerID: "u-1",
			user:    stranger,
			want:    false,
		},
		{
			name:    "anonymous cannot manage",
			ownerID: "u-1",
			user:    nil,
			want:    false,
		},
		{
			name:    "empty owner id never matches user",
			ownerID: "",
			user:    owner,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canAccess(tt.ownerID, tt.user))
		})
	}
}
