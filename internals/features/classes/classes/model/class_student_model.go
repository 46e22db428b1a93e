package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassStudentModel: membership student di kelas (hasil join via invite)
type ClassStudentModel struct {
	ClassStudentID uuid.UUID `gorm:"column:class_student_id;type:uuid;primaryKey" json:"class_student_id"`

	ClassStudentClassID   uuid.UUID `gorm:"column:class_student_class_id;type:uuid;not null;uniqueIndex:uq_class_student,priority:1" json:"class_student_class_id"`
	ClassStudentStudentID uuid.UUID `gorm:"column:class_student_student_id;type:uuid;not null;uniqueIndex:uq_class_student,priority:2;index" json:"class_student_student_id"`

	// Invite yang dipakai saat join (audit)
	ClassStudentInviteID *uuid.UUID `gorm:"column:class_student_invite_id;type:uuid" json:"class_student_invite_id,omitempty"`

	ClassStudentJoinedAt  time.Time      `gorm:"column:class_student_joined_at;autoCreateTime" json:"class_student_joined_at"`
	ClassStudentDeletedAt gorm.DeletedAt `gorm:"column:class_student_deleted_at;index" json:"-"`
}

func (ClassStudentModel) TableName() string { return "class_students" }

func (m *ClassStudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassStudentID == uuid.Nil {
		m.ClassStudentID = uuid.New()
	}
	return nil
}
