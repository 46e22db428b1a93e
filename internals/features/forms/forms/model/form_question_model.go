package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   ENUM-like: Question Type ('objective','open')
============================================================================= */
type FormQuestionType string

const (
	QuestionTypeObjective FormQuestionType = "objective"
	QuestionTypeOpen      FormQuestionType = "open"
)

func (t FormQuestionType) String() string { return string(t) }
func (t FormQuestionType) Valid() bool {
	switch t {
	case QuestionTypeObjective, QuestionTypeOpen:
		return true
	default:
		return false
	}
}

// sql.Scanner + driver.Valuer (aman saat scan ke enum)
func (t *FormQuestionType) Scan(value any) error {
	if value == nil {
		*t = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = FormQuestionType(v)
	case []byte:
		*t = FormQuestionType(string(v))
	default:
		return fmt.Errorf("unsupported type for FormQuestionType: %T", value)
	}
	if !t.Valid() {
		return fmt.Errorf("invalid FormQuestionType: %q", *t)
	}
	return nil
}

func (t FormQuestionType) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	if !t.Valid() {
		return nil, fmt.Errorf("invalid FormQuestionType: %q", t)
	}
	return string(t), nil
}

/* =============================================================================
   MODEL: form_questions
============================================================================= */
type FormQuestionModel struct {
	FormQuestionID     uuid.UUID `gorm:"column:form_question_id;type:uuid;primaryKey" json:"form_question_id"`
	FormQuestionFormID uuid.UUID `gorm:"column:form_question_form_id;type:uuid;not null;index" json:"form_question_form_id"`

	FormQuestionStatement string           `gorm:"column:form_question_statement;type:text;not null" json:"form_question_statement"`
	FormQuestionType      FormQuestionType `gorm:"column:form_question_type;type:varchar(16);not null" json:"form_question_type"`

	// Bobot poin soal (skor auto = akumulasi bobot jawaban benar)
	FormQuestionWeight   float64 `gorm:"column:form_question_weight;type:numeric(7,3);not null;default:1" json:"form_question_weight"`
	FormQuestionPosition int     `gorm:"column:form_question_position;not null;default:0" json:"form_question_position"`

	FormQuestionCreatedAt time.Time      `gorm:"column:form_question_created_at;autoCreateTime" json:"form_question_created_at"`
	FormQuestionUpdatedAt time.Time      `gorm:"column:form_question_updated_at;autoUpdateTime" json:"form_question_updated_at"`
	FormQuestionDeletedAt gorm.DeletedAt `gorm:"column:form_question_deleted_at;index" json:"-"`

	// Relasi opsional (preload saat ambil form lengkap)
	Options []FormQuestionOptionModel `gorm:"foreignKey:FormQuestionOptionQuestionID;references:FormQuestionID" json:"options,omitempty"`
}

func (FormQuestionModel) TableName() string { return "form_questions" }

func (m *FormQuestionModel) BeforeCreate(tx *gorm.DB) error {
	if m.FormQuestionID == uuid.Nil {
		m.FormQuestionID = uuid.New()
	}
	return nil
}
