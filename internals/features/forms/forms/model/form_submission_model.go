package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: Submission Status ('pending','submitted','corrected')
============================================================================= */
type FormSubmissionStatus string

const (
	SubmissionPending   FormSubmissionStatus = "pending"
	SubmissionSubmitted FormSubmissionStatus = "submitted"
	SubmissionCorrected FormSubmissionStatus = "corrected"
)

func (s FormSubmissionStatus) String() string { return string(s) }
func (s FormSubmissionStatus) Valid() bool {
	switch s {
	case SubmissionPending, SubmissionSubmitted, SubmissionCorrected:
		return true
	default:
		return false
	}
}

func (s *FormSubmissionStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = FormSubmissionStatus(v)
	case []byte:
		*s = FormSubmissionStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for FormSubmissionStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid FormSubmissionStatus: %q", *s)
	}
	return nil
}

func (s FormSubmissionStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid FormSubmissionStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: form_submissions (1 baris per student × form)
============================================================================= */
type FormSubmissionModel struct {
	FormSubmissionID uuid.UUID `gorm:"column:form_submission_id;type:uuid;primaryKey" json:"form_submission_id"`

	FormSubmissionFormID    uuid.UUID `gorm:"column:form_submission_form_id;type:uuid;not null;uniqueIndex:uq_submission_form_student,priority:1" json:"form_submission_form_id"`
	FormSubmissionStudentID uuid.UUID `gorm:"column:form_submission_student_id;type:uuid;not null;uniqueIndex:uq_submission_form_student,priority:2;index" json:"form_submission_student_id"`

	FormSubmissionStatus      FormSubmissionStatus `gorm:"column:form_submission_status;type:varchar(16);not null;default:'pending'" json:"form_submission_status"`
	FormSubmissionSubmittedAt *time.Time           `gorm:"column:form_submission_submitted_at" json:"form_submission_submitted_at,omitempty"`

	// Skor
	FormSubmissionAutoScore   float64  `gorm:"column:form_submission_auto_score;type:numeric(7,3);not null;default:0" json:"form_submission_auto_score"`
	FormSubmissionManualScore *float64 `gorm:"column:form_submission_manual_score;type:numeric(7,3)" json:"form_submission_manual_score,omitempty"`
	FormSubmissionFinalScore  *float64 `gorm:"column:form_submission_final_score;type:numeric(7,3)" json:"form_submission_final_score,omitempty"`

	// Flag koreksi manual selesai (per student × form)
	FormSubmissionCorrected   bool       `gorm:"column:form_submission_corrected;not null;default:false" json:"form_submission_corrected"`
	FormSubmissionCorrectedAt *time.Time `gorm:"column:form_submission_corrected_at" json:"form_submission_corrected_at,omitempty"`
	FormSubmissionCorrectedBy *uuid.UUID `gorm:"column:form_submission_corrected_by;type:uuid" json:"form_submission_corrected_by,omitempty"`

	FormSubmissionCreatedAt time.Time      `gorm:"column:form_submission_created_at;autoCreateTime" json:"form_submission_created_at"`
	FormSubmissionUpdatedAt time.Time      `gorm:"column:form_submission_updated_at;autoUpdateTime" json:"form_submission_updated_at"`
	FormSubmissionDeletedAt gorm.DeletedAt `gorm:"column:form_submission_deleted_at;index" json:"-"`
}

func (FormSubmissionModel) TableName() string { return "form_submissions" }

func (m *FormSubmissionModel) BeforeCreate(tx *gorm.DB) error {
	if m.FormSubmissionID == uuid.Nil {
		m.FormSubmissionID = uuid.New()
	}
	return nil
}

/* ===================================================================
   Helper methods (transisi status)
=================================================================== */

func (m *FormSubmissionModel) MarkSubmitted(autoScore float64, at time.Time) {
	m.FormSubmissionStatus = SubmissionSubmitted
	m.FormSubmissionAutoScore = autoScore
	m.FormSubmissionSubmittedAt = &at
}

func (m *FormSubmissionModel) MarkCorrected(manualScore, finalScore float64, by uuid.UUID, at time.Time) {
	m.FormSubmissionStatus = SubmissionCorrected
	m.FormSubmissionManualScore = &manualScore
	m.FormSubmissionFinalScore = &finalScore
	m.FormSubmissionCorrected = true
	m.FormSubmissionCorrectedAt = &at
	m.FormSubmissionCorrectedBy = &by
}
