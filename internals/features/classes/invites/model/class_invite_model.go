package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassInviteModel: kode undangan masuk kelas (berbatas waktu & kuota pemakaian)
type ClassInviteModel struct {
	ClassInviteID uuid.UUID `gorm:"column:class_invite_id;type:uuid;primaryKey" json:"class_invite_id"`

	ClassInviteClassID   uuid.UUID `gorm:"column:class_invite_class_id;type:uuid;not null;index" json:"class_invite_class_id"`
	ClassInviteCreatedBy uuid.UUID `gorm:"column:class_invite_created_by;type:uuid;not null" json:"class_invite_created_by"`

	ClassInviteCode string `gorm:"column:class_invite_code;size:16;not null;uniqueIndex" json:"class_invite_code"`

	ClassInviteExpiresAt time.Time `gorm:"column:class_invite_expires_at;not null" json:"class_invite_expires_at"`
	ClassInviteMaxUses   int       `gorm:"column:class_invite_max_uses;not null;default:1" json:"class_invite_max_uses"`
	ClassInviteUses      int       `gorm:"column:class_invite_uses;not null;default:0" json:"class_invite_uses"`
	ClassInviteActive    bool      `gorm:"column:class_invite_active;not null;default:true" json:"class_invite_active"`

	ClassInviteCreatedAt time.Time      `gorm:"column:class_invite_created_at;autoCreateTime" json:"class_invite_created_at"`
	ClassInviteUpdatedAt time.Time      `gorm:"column:class_invite_updated_at;autoUpdateTime" json:"class_invite_updated_at"`
	ClassInviteDeletedAt gorm.DeletedAt `gorm:"column:class_invite_deleted_at;index" json:"-"`
}

func (ClassInviteModel) TableName() string { return "class_invites" }

func (m *ClassInviteModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassInviteID == uuid.Nil {
		m.ClassInviteID = uuid.New()
	}
	return nil
}

/* ===================================================================
   Helper methods (aturan pakai invite)
=================================================================== */

func (m *ClassInviteModel) IsExpired(now time.Time) bool {
	return now.After(m.ClassInviteExpiresAt)
}

func (m *ClassInviteModel) IsExhausted() bool {
	return m.ClassInviteUses >= m.ClassInviteMaxUses
}

// Usable: aktif, belum expired, kuota masih ada
func (m *ClassInviteModel) Usable(now time.Time) bool {
	return m.ClassInviteActive && !m.IsExpired(now) && !m.IsExhausted()
}
