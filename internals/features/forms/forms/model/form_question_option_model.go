package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormQuestionOptionModel: opsi jawaban soal objective (is_correct = kunci)
type FormQuestionOptionModel struct {
	FormQuestionOptionID         uuid.UUID `gorm:"column:form_question_option_id;type:uuid;primaryKey" json:"form_question_option_id"`
	FormQuestionOptionQuestionID uuid.UUID `gorm:"column:form_question_option_question_id;type:uuid;not null;index" json:"form_question_option_question_id"`

	FormQuestionOptionText     string `gorm:"column:form_question_option_text;type:text;not null" json:"form_question_option_text"`
	FormQuestionOptionPosition int    `gorm:"column:form_question_option_position;not null;default:0" json:"form_question_option_position"`

	// Kunci jawaban — JANGAN pernah bocor ke student (dto yang filter)
	FormQuestionOptionIsCorrect bool `gorm:"column:form_question_option_is_correct;not null;default:false" json:"form_question_option_is_correct"`

	FormQuestionOptionCreatedAt time.Time      `gorm:"column:form_question_option_created_at;autoCreateTime" json:"form_question_option_created_at"`
	FormQuestionOptionDeletedAt gorm.DeletedAt `gorm:"column:form_question_option_deleted_at;index" json:"-"`
}

func (FormQuestionOptionModel) TableName() string { return "form_question_options" }

func (m *FormQuestionOptionModel) BeforeCreate(tx *gorm.DB) error {
	if m.FormQuestionOptionID == uuid.Nil {
		m.FormQuestionOptionID = uuid.New()
	}
	return nil
}
