// file: internals/features/classes/invites/dto/class_invite_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "kampusku_backend/internals/features/classes/invites/model"
)

/* ==============================
   CREATE (POST /classes/:id/invites)
============================== */

type CreateInviteRequest struct {
	// Jam dari sekarang; default 24 jam jika kedua field kosong.
	ExpiresInHours *int       `json:"expires_in_hours" validate:"omitempty,min=1,max=720"`
	ExpiresAt      *time.Time `json:"expires_at" validate:"omitempty"`
	MaxUses        int        `json:"max_uses" validate:"omitempty,min=1,max=500"`
}

// ResolveExpiry menghitung waktu kedaluwarsa final.
func (r *CreateInviteRequest) ResolveExpiry(now time.Time) time.Time {
	if r.ExpiresAt != nil {
		return r.ExpiresAt.UTC()
	}
	hours := 24
	if r.ExpiresInHours != nil {
		hours = *r.ExpiresInHours
	}
	return now.Add(time.Duration(hours) * time.Hour)
}

/* ==============================
   JOIN (POST /classes/join)
============================== */

type JoinByCodeRequest struct {
	Code string `json:"code" validate:"required,min=4,max=16"`
}

/* ==============================
   RESPONSE
============================== */

type ClassInviteDTO struct {
	ClassInviteID        uuid.UUID `json:"class_invite_id"`
	ClassInviteClassID   uuid.UUID `json:"class_invite_class_id"`
	ClassInviteCode      string    `json:"class_invite_code"`
	ClassInviteExpiresAt time.Time `json:"class_invite_expires_at"`
	ClassInviteMaxUses   int       `json:"class_invite_max_uses"`
	ClassInviteUses      int       `json:"class_invite_uses"`
	ClassInviteActive    bool      `json:"class_invite_active"`
	ClassInviteCreatedAt time.Time `json:"class_invite_created_at"`
}

func ToClassInviteDTO(m model.ClassInviteModel) ClassInviteDTO {
	return ClassInviteDTO{
		ClassInviteID:        m.ClassInviteID,
		ClassInviteClassID:   m.ClassInviteClassID,
		ClassInviteCode:      m.ClassInviteCode,
		ClassInviteExpiresAt: m.ClassInviteExpiresAt,
		ClassInviteMaxUses:   m.ClassInviteMaxUses,
		ClassInviteUses:      m.ClassInviteUses,
		ClassInviteActive:    m.ClassInviteActive,
		ClassInviteCreatedAt: m.ClassInviteCreatedAt,
	}
}
