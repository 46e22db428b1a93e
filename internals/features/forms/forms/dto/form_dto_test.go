// file: internals/features/forms/forms/dto/form_dto_test.go
package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "kampusku_backend/internals/features/forms/forms/model"
)

func sampleQuestions() []model.FormQuestionModel {
	qID := uuid.New()
	return []model.FormQuestionModel{
		{
			FormQuestionID:        qID,
			FormQuestionStatement: "Ibukota Indonesia?",
			FormQuestionType:      model.QuestionTypeObjective,
			FormQuestionWeight:    1,
			FormQuestionPosition:  1,
			Options: []model.FormQuestionOptionModel{
				{FormQuestionOptionID: uuid.New(), FormQuestionOptionQuestionID: qID, FormQuestionOptionText: "Jakarta", FormQuestionOptionPosition: 1, FormQuestionOptionIsCorrect: true},
				{FormQuestionOptionID: uuid.New(), FormQuestionOptionQuestionID: qID, FormQuestionOptionText: "Bandung", FormQuestionOptionPosition: 2},
			},
		},
	}
}

func TestStudentView_HidesAnswerKey(t *testing.T) {
	form := model.FormModel{FormID: uuid.New(), FormTitle: "Kuis"}
	questions := sampleQuestions()

	studentView := ToStudentFormDetailDTO(form, questions)
	raw, err := json.Marshal(studentView)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "is_correct")

	teacherView := ToTeacherFormDetailDTO(form, questions)
	raw, err = json.Marshal(teacherView)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "is_correct")
	assert.True(t, teacherView.Questions[0].Options[0].IsCorrect)
}

func TestCreateFormRequest_ValidateQuestions(t *testing.T) {
	now := time.Now().UTC()
	base := CreateFormRequest{
		FormClassID: uuid.New(),
		FormTitle:   "Kuis Mingguan",
		FormOpensAt: now,
		FormDueAt:   now.Add(time.Hour),
	}

	t.Run("due before open", func(t *testing.T) {
		r := base
		r.FormDueAt = now.Add(-time.Hour)
		r.Questions = []CreateQuestionRequest{{Statement: "x", Type: "open"}}
		assert.Error(t, r.ValidateQuestions())
	})

	t.Run("objective needs two options", func(t *testing.T) {
		r := base
		r.Questions = []CreateQuestionRequest{{
			Statement: "x", Type: "objective",
			Options: []CreateOptionRequest{{Text: "a", IsCorrect: true}},
		}}
		assert.Error(t, r.ValidateQuestions())
	})

	t.Run("objective needs a key", func(t *testing.T) {
		r := base
		r.Questions = []CreateQuestionRequest{{
			Statement: "x", Type: "objective",
			Options: []CreateOptionRequest{{Text: "a"}, {Text: "b"}},
		}}
		assert.Error(t, r.ValidateQuestions())
	})

	t.Run("open must not have options", func(t *testing.T) {
		r := base
		r.Questions = []CreateQuestionRequest{{
			Statement: "x", Type: "open",
			Options: []CreateOptionRequest{{Text: "a"}},
		}}
		assert.Error(t, r.ValidateQuestions())
	})

	t.Run("valid mix", func(t *testing.T) {
		r := base
		r.Questions = []CreateQuestionRequest{
			{
				Statement: "pilihan", Type: "objective",
				Options: []CreateOptionRequest{{Text: "a", IsCorrect: true}, {Text: "b"}},
			},
			{Statement: "uraian", Type: "open"},
		}
		assert.NoError(t, r.ValidateQuestions())
	})
}

func TestQuestionToModel_DefaultWeight(t *testing.T) {
	q := CreateQuestionRequest{Statement: "uraian", Type: "open"}
	m := q.ToModel(uuid.New(), 3)
	assert.Equal(t, 1.0, m.FormQuestionWeight)
	assert.Equal(t, 3, m.FormQuestionPosition)
	assert.Equal(t, model.QuestionTypeOpen, m.FormQuestionType)
}
