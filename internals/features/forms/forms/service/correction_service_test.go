// file: internals/features/forms/forms/service/correction_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/forms/forms/dto"
	model "kampusku_backend/internals/features/forms/forms/model"
)

// submitWithOpen: siapkan submission (2 objective benar = 5 poin, 1 open bobot 5)
func submitWithOpen(t *testing.T, db *gorm.DB) (*model.FormSubmissionModel, model.FormAnswerModel, model.FormQuestionModel) {
	t.Helper()
	form, questions := buildForm(t, db, true)
	studentID := uuid.New()

	opt1 := correctOption(t, questions[0])
	opt2 := correctOption(t, questions[1])
	text := "bagi dua terus sampai ketemu"

	sub, err := Submit(db, form, studentID, &dto.SubmitFormRequest{
		Answers: []dto.SubmitAnswerRequest{
			{QuestionID: questions[0].FormQuestionID, ChosenOptionID: &opt1},
			{QuestionID: questions[1].FormQuestionID, ChosenOptionID: &opt2},
			{QuestionID: questions[2].FormQuestionID, Text: &text},
		},
	}, time.Now().UTC())
	require.NoError(t, err)

	var openAnswer model.FormAnswerModel
	require.NoError(t, db.
		Where("form_answer_submission_id = ? AND form_answer_question_id = ?", sub.FormSubmissionID, questions[2].FormQuestionID).
		First(&openAnswer).Error)
	return sub, openAnswer, questions[2]
}

func TestCorrect_HappyPath(t *testing.T) {
	db := newTestDB(t)
	sub, openAnswer, _ := submitWithOpen(t, db)
	teacherID := uuid.New()

	corrected, err := Correct(db, sub.FormSubmissionID, teacherID, &dto.CorrectSubmissionRequest{
		Corrections: []dto.CorrectAnswerRequest{
			{AnswerID: openAnswer.FormAnswerID, ManualPoints: 4},
		},
	}, time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, model.SubmissionCorrected, corrected.FormSubmissionStatus)
	require.NotNil(t, corrected.FormSubmissionManualScore)
	assert.Equal(t, 4.0, *corrected.FormSubmissionManualScore)
	require.NotNil(t, corrected.FormSubmissionFinalScore)
	assert.Equal(t, 9.0, *corrected.FormSubmissionFinalScore) // 5 auto + 4 manual
	assert.True(t, corrected.FormSubmissionCorrected)
	require.NotNil(t, corrected.FormSubmissionCorrectedBy)
	assert.Equal(t, teacherID, *corrected.FormSubmissionCorrectedBy)

	// tersimpan di DB juga
	var fromDB model.FormSubmissionModel
	require.NoError(t, db.First(&fromDB, "form_submission_id = ?", sub.FormSubmissionID).Error)
	assert.Equal(t, model.SubmissionCorrected, fromDB.FormSubmissionStatus)
	require.NotNil(t, fromDB.FormSubmissionFinalScore)
	assert.Equal(t, 9.0, *fromDB.FormSubmissionFinalScore)
}

func TestCorrect_PointsOutOfRange(t *testing.T) {
	db := newTestDB(t)
	sub, openAnswer, openQuestion := submitWithOpen(t, db)

	t.Run("melebihi bobot", func(t *testing.T) {
		_, err := Correct(db, sub.FormSubmissionID, uuid.New(), &dto.CorrectSubmissionRequest{
			Corrections: []dto.CorrectAnswerRequest{
				{AnswerID: openAnswer.FormAnswerID, ManualPoints: openQuestion.FormQuestionWeight + 1},
			},
		}, time.Now().UTC())
		assert.ErrorIs(t, err, ErrPointsOutOfRange)
	})

	t.Run("negatif", func(t *testing.T) {
		_, err := Correct(db, sub.FormSubmissionID, uuid.New(), &dto.CorrectSubmissionRequest{
			Corrections: []dto.CorrectAnswerRequest{
				{AnswerID: openAnswer.FormAnswerID, ManualPoints: -1},
			},
		}, time.Now().UTC())
		assert.ErrorIs(t, err, ErrPointsOutOfRange)
	})
}

// Siswa boleh melewatkan soal open; koreksi tanpa entri harus tetap
// memfinalkan submission dengan manual = 0.
func TestCorrect_SkippedOpenQuestion_EmptyCorrections(t *testing.T) {
	db := newTestDB(t)
	form, questions := buildForm(t, db, true)
	opt1 := correctOption(t, questions[0])
	opt2 := correctOption(t, questions[1])

	sub, err := Submit(db, form, uuid.New(), &dto.SubmitFormRequest{
		Answers: []dto.SubmitAnswerRequest{
			{QuestionID: questions[0].FormQuestionID, ChosenOptionID: &opt1},
			{QuestionID: questions[1].FormQuestionID, ChosenOptionID: &opt2},
		},
	}, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, model.SubmissionSubmitted, sub.FormSubmissionStatus)

	teacherID := uuid.New()
	corrected, err := Correct(db, sub.FormSubmissionID, teacherID, &dto.CorrectSubmissionRequest{}, time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, model.SubmissionCorrected, corrected.FormSubmissionStatus)
	require.NotNil(t, corrected.FormSubmissionManualScore)
	assert.Equal(t, 0.0, *corrected.FormSubmissionManualScore)
	require.NotNil(t, corrected.FormSubmissionFinalScore)
	assert.Equal(t, 5.0, *corrected.FormSubmissionFinalScore) // auto saja
}

func TestCorrect_ManualPointsOnlyForOpen(t *testing.T) {
	db := newTestDB(t)
	sub, _, _ := submitWithOpen(t, db)

	var objectiveAnswer model.FormAnswerModel
	require.NoError(t, db.
		Where("form_answer_submission_id = ? AND form_answer_chosen_option_id IS NOT NULL", sub.FormSubmissionID).
		First(&objectiveAnswer).Error)

	_, err := Correct(db, sub.FormSubmissionID, uuid.New(), &dto.CorrectSubmissionRequest{
		Corrections: []dto.CorrectAnswerRequest{
			{AnswerID: objectiveAnswer.FormAnswerID, ManualPoints: 1},
		},
	}, time.Now().UTC())
	assert.ErrorIs(t, err, ErrNotOpenQuestion)
}

func TestCorrect_AnswerNotFound(t *testing.T) {
	db := newTestDB(t)
	sub, _, _ := submitWithOpen(t, db)

	_, err := Correct(db, sub.FormSubmissionID, uuid.New(), &dto.CorrectSubmissionRequest{
		Corrections: []dto.CorrectAnswerRequest{
			{AnswerID: uuid.New(), ManualPoints: 1},
		},
	}, time.Now().UTC())
	assert.ErrorIs(t, err, ErrAnswerNotFound)
}

func TestCorrect_SubmissionNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := Correct(db, uuid.New(), uuid.New(), &dto.CorrectSubmissionRequest{
		Corrections: []dto.CorrectAnswerRequest{
			{AnswerID: uuid.New(), ManualPoints: 1},
		},
	}, time.Now().UTC())
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}

func TestCorrect_Recorrection_Overwrites(t *testing.T) {
	db := newTestDB(t)
	sub, openAnswer, _ := submitWithOpen(t, db)
	teacherID := uuid.New()

	_, err := Correct(db, sub.FormSubmissionID, teacherID, &dto.CorrectSubmissionRequest{
		Corrections: []dto.CorrectAnswerRequest{
			{AnswerID: openAnswer.FormAnswerID, ManualPoints: 2},
		},
	}, time.Now().UTC())
	require.NoError(t, err)

	// koreksi ulang menimpa nilai lama
	corrected, err := Correct(db, sub.FormSubmissionID, teacherID, &dto.CorrectSubmissionRequest{
		Corrections: []dto.CorrectAnswerRequest{
			{AnswerID: openAnswer.FormAnswerID, ManualPoints: 5},
		},
	}, time.Now().UTC())
	require.NoError(t, err)

	require.NotNil(t, corrected.FormSubmissionFinalScore)
	assert.Equal(t, 10.0, *corrected.FormSubmissionFinalScore) // 5 auto + 5 manual
}
