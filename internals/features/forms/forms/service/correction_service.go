// file: internals/features/forms/forms/service/correction_service.go
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
	ErrSubmissionNotFound    = errors.New("submission tidak ditemukan")
	ErrSubmissionNotYet      = errors.New("submission belum disubmit")
	ErrAnswerNotFound        = errors.New("jawaban tidak ditemukan di submission ini")
	ErrNotOpenQuestion       = errors.New("manual points hanya untuk soal open")
	ErrPointsOutOfRange      = errors.New("manual points di luar rentang 0..bobot soal")
	ErrOpenAnswerUncorrected = errors.New("masih ada jawaban open yang belum dikoreksi")
)

// Correct: teacher memberi manual_points per jawaban open, lalu submission
// dihitung ulang: final = auto + total manual, status → corrected.
// Boleh dipanggil ulang (re-correction), nilai lama ditimpa.
func Correct(db *gorm.DB, submissionID, teacherID uuid.UUID, req *dto.CorrectSubmissionRequest, now time.Time) (*model.FormSubmissionModel, error) {
	var submission model.FormSubmissionModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&submission, "form_submission_id = ?", submissionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubmissionNotFound
			}
			return err
		}
		if submission.FormSubmissionStatus == model.SubmissionPending {
			return ErrSubmissionNotYet
		}

		var answers []model.FormAnswerModel
		if err := tx.Where("form_answer_submission_id = ?", submissionID).
			Find(&answers).Error; err != nil {
			return err
		}
		answerByID := make(map[uuid.UUID]*model.FormAnswerModel, len(answers))
		for i := range answers {
			answerByID[answers[i].FormAnswerID] = &answers[i]
		}

		// Bobot soal untuk validasi rentang manual points
		questionIDs := make([]uuid.UUID, 0, len(answers))
		for _, a := range answers {
			questionIDs = append(questionIDs, a.FormAnswerQuestionID)
		}
		var questions []model.FormQuestionModel
		if err := tx.Where("form_question_id IN ?", questionIDs).
			Find(&questions).Error; err != nil {
			return err
		}
		qByID := make(map[uuid.UUID]*model.FormQuestionModel, len(questions))
		for i := range questions {
			qByID[questions[i].FormQuestionID] = &questions[i]
		}

		for _, corr := range req.Corrections {
			ans, ok := answerByID[corr.AnswerID]
			if !ok {
				return ErrAnswerNotFound
			}
			q := qByID[ans.FormAnswerQuestionID]
			if q == nil || q.FormQuestionType != model.QuestionTypeOpen {
				return ErrNotOpenQuestion
			}
			if corr.ManualPoints < 0 || corr.ManualPoints > q.FormQuestionWeight {
				return ErrPointsOutOfRange
			}
			points := corr.ManualPoints
			ans.FormAnswerManualPoints = &points
			if err := tx.Model(&model.FormAnswerModel{}).
				Where("form_answer_id = ?", ans.FormAnswerID).
				Update("form_answer_manual_points", points).Error; err != nil {
				return err
			}
		}

		// Semua jawaban open harus sudah punya manual points
		var manualTotal float64
		for i := range answers {
			a := &answers[i]
			q := qByID[a.FormAnswerQuestionID]
			if q == nil || q.FormQuestionType != model.QuestionTypeOpen {
				continue
			}
			if a.FormAnswerManualPoints == nil {
				return ErrOpenAnswerUncorrected
			}
			manualTotal += *a.FormAnswerManualPoints
		}

		finalScore := submission.FormSubmissionAutoScore + manualTotal
		submission.MarkCorrected(manualTotal, finalScore, teacherID, now)

		return tx.Model(&model.FormSubmissionModel{}).
			Where("form_submission_id = ?", submissionID).
			Updates(map[string]interface{}{
				"form_submission_status":       model.SubmissionCorrected,
				"form_submission_manual_score": manualTotal,
				"form_submission_final_score":  finalScore,
				"form_submission_corrected":    true,
				"form_submission_corrected_at": now,
				"form_submission_corrected_by": teacherID,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &submission, nil
}
