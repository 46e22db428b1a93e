// file: internals/features/classes/invites/dto/class_invite_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateInviteRequest_ResolveExpiry(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	t.Run("default 24 jam", func(t *testing.T) {
		r := CreateInviteRequest{}
		assert.Equal(t, now.Add(24*time.Hour), r.ResolveExpiry(now))
	})

	t.Run("expires_in_hours", func(t *testing.T) {
		hours := 6
		r := CreateInviteRequest{ExpiresInHours: &hours}
		assert.Equal(t, now.Add(6*time.Hour), r.ResolveExpiry(now))
	})

	t.Run("expires_at menang atas hours", func(t *testing.T) {
		hours := 6
		at := now.Add(48 * time.Hour)
		r := CreateInviteRequest{ExpiresInHours: &hours, ExpiresAt: &at}
		assert.Equal(t, at, r.ResolveExpiry(now))
	})
}
