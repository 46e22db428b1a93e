// file: internals/features/forms/forms/dto/form_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	model "kampusku_backend/internals/features/forms/forms/model"
)

/* =============================================================================
   CREATE (POST /forms) — form lengkap dengan soal + opsi sekali kirim
============================================================================= */

type CreateOptionRequest struct {
	Text      string `json:"text" validate:"required,min=1"`
	IsCorrect bool   `json:"is_correct"`
}

type CreateQuestionRequest struct {
	Statement string                `json:"statement" validate:"required,min=3"`
	Type      string                `json:"type" validate:"required,oneof=objective open"`
	Weight    float64               `json:"weight" validate:"omitempty,gt=0,lte=1000"`
	Options   []CreateOptionRequest `json:"options" validate:"omitempty,dive"`
}

type CreateFormRequest struct {
	FormClassID     uuid.UUID               `json:"form_class_id" validate:"required"`
	FormTitle       string                  `json:"form_title" validate:"required,min=3,max=180"`
	FormSubject     string                  `json:"form_subject" validate:"omitempty,max=120"`
	FormDescription *string                 `json:"form_description"`
	FormOpensAt     time.Time               `json:"form_opens_at" validate:"required"`
	FormDueAt       time.Time               `json:"form_due_at" validate:"required"`
	Questions       []CreateQuestionRequest `json:"questions" validate:"required,min=1,dive"`

	FormShowScoreAfterSubmit *bool `json:"form_show_score_after_submit"`
}

// ValidateQuestions: aturan struktural yang tidak bisa dicakup tag validator.
// Soal objective wajib minimal 2 opsi dan minimal 1 kunci; soal open tanpa opsi.
func (r *CreateFormRequest) ValidateQuestions() error {
	if !r.FormDueAt.After(r.FormOpensAt) {
		return errors.New("form_due_at harus setelah form_opens_at")
	}
	for i := range r.Questions {
		q := &r.Questions[i]
		switch model.FormQuestionType(q.Type) {
		case model.QuestionTypeObjective:
			if len(q.Options) < 2 {
				return errors.New("soal objective wajib minimal 2 opsi")
			}
			hasKey := false
			for _, opt := range q.Options {
				if opt.IsCorrect {
					hasKey = true
					break
				}
			}
			if !hasKey {
				return errors.New("soal objective wajib minimal 1 opsi benar")
			}
		case model.QuestionTypeOpen:
			if len(q.Options) > 0 {
				return errors.New("soal open tidak boleh punya opsi")
			}
		}
	}
	return nil
}

func (r *CreateFormRequest) ToModel(teacherID uuid.UUID) *model.FormModel {
	showScore := true
	if r.FormShowScoreAfterSubmit != nil {
		showScore = *r.FormShowScoreAfterSubmit
	}
	return &model.FormModel{
		FormClassID:              r.FormClassID,
		FormTeacherID:            teacherID,
		FormTitle:                strings.TrimSpace(r.FormTitle),
		FormSubject:              strings.TrimSpace(r.FormSubject),
		FormDescription:          r.FormDescription,
		FormOpensAt:              r.FormOpensAt.UTC(),
		FormDueAt:                r.FormDueAt.UTC(),
		FormShowScoreAfterSubmit: showScore,
	}
}

func (q *CreateQuestionRequest) ToModel(formID uuid.UUID, position int) *model.FormQuestionModel {
	weight := q.Weight
	if weight <= 0 {
		weight = 1
	}
	return &model.FormQuestionModel{
		FormQuestionFormID:    formID,
		FormQuestionStatement: strings.TrimSpace(q.Statement),
		FormQuestionType:      model.FormQuestionType(q.Type),
		FormQuestionWeight:    weight,
		FormQuestionPosition:  position,
	}
}

/* =============================================================================
   UPDATE (PATCH /forms/:id) — metadata saja, soal tidak bisa diubah
   setelah ada submission (dicek di controller)
============================================================================= */

type UpdateFormRequest struct {
	FormTitle       *string    `json:"form_title" validate:"omitempty,min=3,max=180"`
	FormSubject     *string    `json:"form_subject" validate:"omitempty,max=120"`
	FormDescription *string    `json:"form_description"`
	FormOpensAt     *time.Time `json:"form_opens_at"`
	FormDueAt       *time.Time `json:"form_due_at"`
	FormPublished   *bool      `json:"form_published"`

	FormShowScoreAfterSubmit *bool `json:"form_show_score_after_submit"`
}

func (r *UpdateFormRequest) ApplyTo(m *model.FormModel) {
	if r.FormTitle != nil {
		m.FormTitle = strings.TrimSpace(*r.FormTitle)
	}
	if r.FormSubject != nil {
		m.FormSubject = strings.TrimSpace(*r.FormSubject)
	}
	if r.FormDescription != nil {
		m.FormDescription = r.FormDescription
	}
	if r.FormOpensAt != nil {
		m.FormOpensAt = r.FormOpensAt.UTC()
	}
	if r.FormDueAt != nil {
		m.FormDueAt = r.FormDueAt.UTC()
	}
	if r.FormPublished != nil {
		m.FormPublished = *r.FormPublished
	}
	if r.FormShowScoreAfterSubmit != nil {
		m.FormShowScoreAfterSubmit = *r.FormShowScoreAfterSubmit
	}
}

/* =============================================================================
   RESPONSE — teacher view (dengan kunci) vs student view (tanpa kunci)
============================================================================= */

type FormDTO struct {
	FormID                   uuid.UUID `json:"form_id"`
	FormClassID              uuid.UUID `json:"form_class_id"`
	FormTeacherID            uuid.UUID `json:"form_teacher_id"`
	FormTitle                string    `json:"form_title"`
	FormSubject              string    `json:"form_subject"`
	FormDescription          *string   `json:"form_description,omitempty"`
	FormOpensAt              time.Time `json:"form_opens_at"`
	FormDueAt                time.Time `json:"form_due_at"`
	FormPublished            bool      `json:"form_published"`
	FormShowScoreAfterSubmit bool      `json:"form_show_score_after_submit"`
	FormCreatedAt            time.Time `json:"form_created_at"`
}

func ToFormDTO(m model.FormModel) FormDTO {
	return FormDTO{
		FormID:                   m.FormID,
		FormClassID:              m.FormClassID,
		FormTeacherID:            m.FormTeacherID,
		FormTitle:                m.FormTitle,
		FormSubject:              m.FormSubject,
		FormDescription:          m.FormDescription,
		FormOpensAt:              m.FormOpensAt,
		FormDueAt:                m.FormDueAt,
		FormPublished:            m.FormPublished,
		FormShowScoreAfterSubmit: m.FormShowScoreAfterSubmit,
		FormCreatedAt:            m.FormCreatedAt,
	}
}

// --- Teacher view: opsi lengkap dengan kunci ---

type TeacherOptionDTO struct {
	OptionID  uuid.UUID `json:"option_id"`
	Text      string    `json:"text"`
	Position  int       `json:"position"`
	IsCorrect bool      `json:"is_correct"`
}

type TeacherQuestionDTO struct {
	QuestionID uuid.UUID          `json:"question_id"`
	Statement  string             `json:"statement"`
	Type       string             `json:"type"`
	Weight     float64            `json:"weight"`
	Position   int                `json:"position"`
	Options    []TeacherOptionDTO `json:"options,omitempty"`
}

type TeacherFormDetailDTO struct {
	FormDTO
	Questions []TeacherQuestionDTO `json:"questions"`
}

func ToTeacherFormDetailDTO(form model.FormModel, questions []model.FormQuestionModel) TeacherFormDetailDTO {
	qs := make([]TeacherQuestionDTO, 0, len(questions))
	for _, q := range questions {
		opts := make([]TeacherOptionDTO, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, TeacherOptionDTO{
				OptionID:  o.FormQuestionOptionID,
				Text:      o.FormQuestionOptionText,
				Position:  o.FormQuestionOptionPosition,
				IsCorrect: o.FormQuestionOptionIsCorrect,
			})
		}
		qs = append(qs, TeacherQuestionDTO{
			QuestionID: q.FormQuestionID,
			Statement:  q.FormQuestionStatement,
			Type:       q.FormQuestionType.String(),
			Weight:     q.FormQuestionWeight,
			Position:   q.FormQuestionPosition,
			Options:    opts,
		})
	}
	return TeacherFormDetailDTO{FormDTO: ToFormDTO(form), Questions: qs}
}

// --- Student view: is_correct TIDAK ikut serialisasi ---

type StudentOptionDTO struct {
	OptionID uuid.UUID `json:"option_id"`
	Text     string    `json:"text"`
	Position int       `json:"position"`
}

type StudentQuestionDTO struct {
	QuestionID uuid.UUID          `json:"question_id"`
	Statement  string             `json:"statement"`
	Type       string             `json:"type"`
	Weight     float64            `json:"weight"`
	Position   int                `json:"position"`
	Options    []StudentOptionDTO `json:"options,omitempty"`
}

type StudentFormDetailDTO struct {
	FormDTO
	Questions []StudentQuestionDTO `json:"questions"`
}

func ToStudentFormDetailDTO(form model.FormModel, questions []model.FormQuestionModel) StudentFormDetailDTO {
	qs := make([]StudentQuestionDTO, 0, len(questions))
	for _, q := range questions {
		opts := make([]StudentOptionDTO, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, StudentOptionDTO{
				OptionID: o.FormQuestionOptionID,
				Text:     o.FormQuestionOptionText,
				Position: o.FormQuestionOptionPosition,
			})
		}
		qs = append(qs, StudentQuestionDTO{
			QuestionID: q.FormQuestionID,
			Statement:  q.FormQuestionStatement,
			Type:       q.FormQuestionType.String(),
			Weight:     q.FormQuestionWeight,
			Position:   q.FormQuestionPosition,
			Options:    opts,
		})
	}
	return StudentFormDetailDTO{FormDTO: ToFormDTO(form), Questions: qs}
}
