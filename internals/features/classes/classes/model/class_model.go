package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel merepresentasikan tabel classes
type ClassModel struct {
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;primaryKey" json:"class_id"`

	ClassName    string `gorm:"column:class_name;size:120;not null" json:"class_name"`
	ClassSubject string `gorm:"column:class_subject;size:120;not null" json:"class_subject"`
	// contoh: "2026.1"
	ClassPeriod string `gorm:"column:class_period;size:10;not null" json:"class_period"`

	// Kode course resmi yang menaungi kelas ini
	ClassCourseCode string `gorm:"column:class_course_code;size:20;not null;index" json:"class_course_code"`

	// Teacher pemilik kelas
	ClassTeacherID uuid.UUID `gorm:"column:class_teacher_id;type:uuid;not null;index" json:"class_teacher_id"`

	ClassCreatedAt time.Time      `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"-"`
}

func (ClassModel) TableName() string { return "classes" }

func (m *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassID == uuid.Nil {
		m.ClassID = uuid.New()
	}
	return nil
}
