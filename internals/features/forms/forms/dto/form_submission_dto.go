// file: internals/features/forms/forms/dto/form_submission_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "kampusku_backend/internals/features/forms/forms/model"
)

/* =============================================================================
   SUBMIT (POST /forms/:id/submit)
============================================================================= */

type SubmitAnswerRequest struct {
	QuestionID     uuid.UUID  `json:"question_id" validate:"required"`
	ChosenOptionID *uuid.UUID `json:"chosen_option_id"`
	Text           *string    `json:"text"`
}

type SubmitFormRequest struct {
	Answers []SubmitAnswerRequest `json:"answers" validate:"required,min=1,dive"`
}

/* =============================================================================
   CORRECTION (POST /forms/:id/submissions/:submission_id/correct)
============================================================================= */

type CorrectAnswerRequest struct {
	AnswerID     uuid.UUID `json:"answer_id" validate:"required"`
	ManualPoints float64   `json:"manual_points" validate:"min=0"`
}

// Corrections boleh kosong: kalau siswa melewatkan semua soal open,
// koreksi tanpa entri tetap memfinalkan submission (manual = 0).
type CorrectSubmissionRequest struct {
	Corrections []CorrectAnswerRequest `json:"corrections" validate:"dive"`
}

/* =============================================================================
   RESPONSE
============================================================================= */

type AnswerDTO struct {
	AnswerID       uuid.UUID  `json:"answer_id"`
	QuestionID     uuid.UUID  `json:"question_id"`
	ChosenOptionID *uuid.UUID `json:"chosen_option_id,omitempty"`
	Text           *string    `json:"text,omitempty"`
	IsCorrect      *bool      `json:"is_correct,omitempty"`
	EarnedPoints   float64    `json:"earned_points"`
	ManualPoints   *float64   `json:"manual_points,omitempty"`
}

func ToAnswerDTO(m model.FormAnswerModel) AnswerDTO {
	return AnswerDTO{
		AnswerID:       m.FormAnswerID,
		QuestionID:     m.FormAnswerQuestionID,
		ChosenOptionID: m.FormAnswerChosenOptionID,
		Text:           m.FormAnswerText,
		IsCorrect:      m.FormAnswerIsCorrect,
		EarnedPoints:   m.FormAnswerEarnedPoints,
		ManualPoints:   m.FormAnswerManualPoints,
	}
}

type SubmissionDTO struct {
	SubmissionID uuid.UUID  `json:"submission_id"`
	FormID       uuid.UUID  `json:"form_id"`
	StudentID    uuid.UUID  `json:"student_id"`
	Status       string     `json:"status"`
	SubmittedAt  *time.Time `json:"submitted_at,omitempty"`
	AutoScore    float64    `json:"auto_score"`
	ManualScore  *float64   `json:"manual_score,omitempty"`
	FinalScore   *float64   `json:"final_score,omitempty"`
	Corrected    bool       `json:"corrected"`
	CorrectedAt  *time.Time `json:"corrected_at,omitempty"`
}

func ToSubmissionDTO(m model.FormSubmissionModel) SubmissionDTO {
	return SubmissionDTO{
		SubmissionID: m.FormSubmissionID,
		FormID:       m.FormSubmissionFormID,
		StudentID:    m.FormSubmissionStudentID,
		Status:       m.FormSubmissionStatus.String(),
		SubmittedAt:  m.FormSubmissionSubmittedAt,
		AutoScore:    m.FormSubmissionAutoScore,
		ManualScore:  m.FormSubmissionManualScore,
		FinalScore:   m.FormSubmissionFinalScore,
		Corrected:    m.FormSubmissionCorrected,
		CorrectedAt:  m.FormSubmissionCorrectedAt,
	}
}

type SubmissionDetailDTO struct {
	SubmissionDTO
	Answers []AnswerDTO `json:"answers"`
}

func ToSubmissionDetailDTO(sub model.FormSubmissionModel, answers []model.FormAnswerModel) SubmissionDetailDTO {
	out := SubmissionDetailDTO{SubmissionDTO: ToSubmissionDTO(sub)}
	out.Answers = make([]AnswerDTO, 0, len(answers))
	for _, a := range answers {
		out.Answers = append(out.Answers, ToAnswerDTO(a))
	}
	return out
}

// HideScores: dipakai saat form_show_score_after_submit=false dan belum corrected.
func (d *SubmissionDTO) HideScores() {
	d.AutoScore = 0
	d.ManualScore = nil
	d.FinalScore = nil
}

// SubmissionRowDTO: baris list submission untuk teacher (join nama student)
type SubmissionRowDTO struct {
	SubmissionID uuid.UUID  `json:"submission_id"`
	StudentID    uuid.UUID  `json:"student_id"`
	StudentName  string     `json:"student_name"`
	Status       string     `json:"status"`
	SubmittedAt  *time.Time `json:"submitted_at,omitempty"`
	AutoScore    float64    `json:"auto_score"`
	FinalScore   *float64   `json:"final_score,omitempty"`
	Corrected    bool       `json:"corrected"`
}

// FormStatsDTO: agregat nilai satu form untuk teacher.
// total_pending = anggota kelas yang belum submit sama sekali.
type FormStatsDTO struct {
	FormID          uuid.UUID `json:"form_id"`
	TotalStudents   int64     `json:"total_students"`
	TotalPending    int64     `json:"total_pending"`
	TotalSubmitted  int64     `json:"total_submitted"` // menunggu koreksi
	TotalCorrected  int64     `json:"total_corrected"`
	MaxPoints       float64   `json:"max_points"` // Σ bobot soal
	AvgAutoScore    float64   `json:"avg_auto_score"`
	AvgFinalScore   float64   `json:"avg_final_score"`
	AvgFinalPercent float64   `json:"avg_final_percent"` // avg_final / max_points * 100
	MaxFinalScore   float64   `json:"max_final_score"`
	MinFinalScore   float64   `json:"min_final_score"`
}
