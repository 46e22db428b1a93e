// file: internals/features/forms/forms/service/scoring_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/forms/forms/dto"
	model "kampusku_backend/internals/features/forms/forms/model"
)

var (
	ErrFormNotFound      = errors.New("form tidak ditemukan")
	ErrFormNotOpen       = errors.New("form belum dibuka atau belum dipublish")
	ErrFormClosed        = errors.New("form sudah lewat batas waktu")
	ErrAlreadySubmitted  = errors.New("sudah pernah submit form ini")
	ErrUnknownQuestion   = errors.New("jawaban menunjuk soal yang tidak ada di form")
	ErrDuplicateAnswer   = errors.New("lebih dari satu jawaban untuk soal yang sama")
	ErrOptionMismatch    = errors.New("opsi yang dipilih bukan milik soal tersebut")
	ErrObjectiveNeedsOpt = errors.New("soal objective wajib diisi dengan chosen_option_id")
	ErrOpenNeedsText     = errors.New("soal open wajib diisi dengan text")
)

// ScoreResult: hasil auto scoring satu submission.
type ScoreResult struct {
	AutoScore float64
	HasOpen   bool // masih ada soal open → butuh koreksi manual
	Answers   []model.FormAnswerModel
}

// BuildAnswers memvalidasi jawaban terhadap soal form lalu menghitung skor auto.
// Soal objective: benar jika chosen option adalah kunci; earned = bobot soal.
// Soal open: earned 0 dulu, menunggu manual_points dari koreksi.
func BuildAnswers(questions []model.FormQuestionModel, answers []dto.SubmitAnswerRequest) (*ScoreResult, error) {
	qByID := make(map[uuid.UUID]*model.FormQuestionModel, len(questions))
	for i := range questions {
		qByID[questions[i].FormQuestionID] = &questions[i]
	}

	seen := make(map[uuid.UUID]bool, len(answers))
	result := &ScoreResult{Answers: make([]model.FormAnswerModel, 0, len(answers))}

	for i := range questions {
		if questions[i].FormQuestionType == model.QuestionTypeOpen {
			result.HasOpen = true
			break
		}
	}

	for _, a := range answers {
		q, ok := qByID[a.QuestionID]
		if !ok {
			return nil, ErrUnknownQuestion
		}
		if seen[a.QuestionID] {
			return nil, ErrDuplicateAnswer
		}
		seen[a.QuestionID] = true

		row := model.FormAnswerModel{
			FormAnswerQuestionID: a.QuestionID,
		}

		switch q.FormQuestionType {
		case model.QuestionTypeObjective:
			if a.ChosenOptionID == nil {
				return nil, ErrObjectiveNeedsOpt
			}
			var chosen *model.FormQuestionOptionModel
			for j := range q.Options {
				if q.Options[j].FormQuestionOptionID == *a.ChosenOptionID {
					chosen = &q.Options[j]
					break
				}
			}
			if chosen == nil {
				return nil, ErrOptionMismatch
			}
			correct := chosen.FormQuestionOptionIsCorrect
			row.FormAnswerChosenOptionID = a.ChosenOptionID
			row.FormAnswerIsCorrect = &correct
			if correct {
				row.FormAnswerEarnedPoints = q.FormQuestionWeight
				result.AutoScore += q.FormQuestionWeight
			}

		case model.QuestionTypeOpen:
			if a.Text == nil || *a.Text == "" {
				return nil, ErrOpenNeedsText
			}
			row.FormAnswerText = a.Text
		}

		result.Answers = append(result.Answers, row)
	}

	return result, nil
}

// Submit: jalankan submission student secara transaksional.
// Satu submission per form × student; telat = ditolak.
func Submit(db *gorm.DB, form *model.FormModel, studentID uuid.UUID, req *dto.SubmitFormRequest, now time.Time) (*model.FormSubmissionModel, error) {
	if !form.FormPublished || now.Before(form.FormOpensAt) {
		return nil, ErrFormNotOpen
	}
	if now.After(form.FormDueAt) {
		return nil, ErrFormClosed
	}

	var submission *model.FormSubmissionModel
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&model.FormSubmissionModel{}).
			Where("form_submission_form_id = ? AND form_submission_student_id = ?", form.FormID, studentID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadySubmitted
		}

		var questions []model.FormQuestionModel
		if err := tx.Preload("Options").
			Where("form_question_form_id = ?", form.FormID).
			Order("form_question_position ASC").
			Find(&questions).Error; err != nil {
			return err
		}

		result, err := BuildAnswers(questions, req.Answers)
		if err != nil {
			return err
		}

		submission = &model.FormSubmissionModel{
			FormSubmissionFormID:    form.FormID,
			FormSubmissionStudentID: studentID,
		}
		submission.MarkSubmitted(result.AutoScore, now)

		// Tanpa soal open → skor final langsung jadi, status corrected
		if !result.HasOpen {
			submission.MarkCorrected(0, result.AutoScore, form.FormTeacherID, now)
		}

		if err := tx.Create(submission).Error; err != nil {
			return err
		}

		for i := range result.Answers {
			result.Answers[i].FormAnswerSubmissionID = submission.FormSubmissionID
		}
		if len(result.Answers) > 0 {
			if err := tx.Create(&result.Answers).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return submission, nil
}
