package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormAnswerModel: jawaban student per soal dalam satu submission.
// Objective → chosen_option_id; open → answer_text + manual_points setelah koreksi.
type FormAnswerModel struct {
	FormAnswerID uuid.UUID `gorm:"column:form_answer_id;type:uuid;primaryKey" json:"form_answer_id"`

	FormAnswerSubmissionID uuid.UUID `gorm:"column:form_answer_submission_id;type:uuid;not null;uniqueIndex:uq_answer_submission_question,priority:1" json:"form_answer_submission_id"`
	FormAnswerQuestionID   uuid.UUID `gorm:"column:form_answer_question_id;type:uuid;not null;uniqueIndex:uq_answer_submission_question,priority:2" json:"form_answer_question_id"`

	FormAnswerChosenOptionID *uuid.UUID `gorm:"column:form_answer_chosen_option_id;type:uuid" json:"form_answer_chosen_option_id,omitempty"`
	FormAnswerText           *string    `gorm:"column:form_answer_text;type:text" json:"form_answer_text,omitempty"`

	// Hasil scoring
	FormAnswerIsCorrect    *bool    `gorm:"column:form_answer_is_correct" json:"form_answer_is_correct,omitempty"`
	FormAnswerEarnedPoints float64  `gorm:"column:form_answer_earned_points;type:numeric(7,3);not null;default:0" json:"form_answer_earned_points"`
	FormAnswerManualPoints *float64 `gorm:"column:form_answer_manual_points;type:numeric(7,3)" json:"form_answer_manual_points,omitempty"`

	FormAnswerCreatedAt time.Time      `gorm:"column:form_answer_created_at;autoCreateTime" json:"form_answer_created_at"`
	FormAnswerUpdatedAt time.Time      `gorm:"column:form_answer_updated_at;autoUpdateTime" json:"form_answer_updated_at"`
	FormAnswerDeletedAt gorm.DeletedAt `gorm:"column:form_answer_deleted_at;index" json:"-"`
}

func (FormAnswerModel) TableName() string { return "form_answers" }

func (m *FormAnswerModel) BeforeCreate(tx *gorm.DB) error {
	if m.FormAnswerID == uuid.Nil {
		m.FormAnswerID = uuid.New()
	}
	return nil
}
