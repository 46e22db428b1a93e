package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormModel: form/quiz milik sebuah kelas
type FormModel struct {
	FormID uuid.UUID `gorm:"column:form_id;type:uuid;primaryKey" json:"form_id"`

	FormClassID   uuid.UUID `gorm:"column:form_class_id;type:uuid;not null;index" json:"form_class_id"`
	FormTeacherID uuid.UUID `gorm:"column:form_teacher_id;type:uuid;not null;index" json:"form_teacher_id"`

	FormTitle       string  `gorm:"column:form_title;size:180;not null" json:"form_title"`
	FormSubject     string  `gorm:"column:form_subject;size:120" json:"form_subject"`
	FormDescription *string `gorm:"column:form_description;type:text" json:"form_description,omitempty"`

	// Jendela pengerjaan
	FormOpensAt time.Time `gorm:"column:form_opens_at;not null" json:"form_opens_at"`
	FormDueAt   time.Time `gorm:"column:form_due_at;not null" json:"form_due_at"`

	FormPublished bool `gorm:"column:form_published;not null;default:false" json:"form_published"`

	// Student boleh lihat skor auto sebelum koreksi manual selesai?
	FormShowScoreAfterSubmit bool `gorm:"column:form_show_score_after_submit;not null;default:true" json:"form_show_score_after_submit"`

	FormCreatedAt time.Time      `gorm:"column:form_created_at;autoCreateTime" json:"form_created_at"`
	FormUpdatedAt time.Time      `gorm:"column:form_updated_at;autoUpdateTime" json:"form_updated_at"`
	FormDeletedAt gorm.DeletedAt `gorm:"column:form_deleted_at;index" json:"-"`
}

func (FormModel) TableName() string { return "forms" }

func (m *FormModel) BeforeCreate(tx *gorm.DB) error {
	if m.FormID == uuid.Nil {
		m.FormID = uuid.New()
	}
	return nil
}

// IsOpen: form bisa dikerjakan sekarang?
func (m *FormModel) IsOpen(now time.Time) bool {
	return m.FormPublished && !now.Before(m.FormOpensAt) && !now.After(m.FormDueAt)
}
