// file: internals/features/forms/forms/route/form_route_test.go
package route

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kampusku_backend/internals/configs"
	classModel "kampusku_backend/internals/features/classes/classes/model"
	formModel "kampusku_backend/internals/features/forms/forms/model"
	authModel "kampusku_backend/internals/features/users/auth/model"
	userModel "kampusku_backend/internals/features/users/user/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "route-test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&classModel.ClassModel{},
		&classModel.ClassStudentModel{},
		&formModel.FormModel{},
		&formModel.FormQuestionModel{},
		&formModel.FormQuestionOptionModel{},
		&formModel.FormSubmissionModel{},
		&formModel.FormAnswerModel{},
	))

	app := fiber.New()
	FormRoutes(app, db)
	return app, db
}

func newUser(t *testing.T, db *gorm.DB, role string) *userModel.UserModel {
	t.Helper()
	suffix := uuid.New().String()[:8]
	u := &userModel.UserModel{
		UserName: role + "_" + suffix,
		FullName: "Akun Uji " + suffix,
		Email:    suffix + "@kampus.test",
		Password: "rahasia-terhash",
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func tokenFor(t *testing.T, u *userModel.UserModel) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":       u.ID.String(),
		"role":      u.Role,
		"user_name": u.UserName,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	require.NoError(t, err)
	return signed
}

// seedForm: kelas milik teacher + form published (2 objective bobot 2&3, 1 open bobot 5)
func seedForm(t *testing.T, db *gorm.DB, teacherID uuid.UUID) (*classModel.ClassModel, *formModel.FormModel, []formModel.FormQuestionModel) {
	t.Helper()
	now := time.Now().UTC()

	class := &classModel.ClassModel{
		ClassName:       "Algoritma A",
		ClassSubject:    "Algoritma",
		ClassPeriod:     "2026.2",
		ClassCourseCode: "CS101",
		ClassTeacherID:  teacherID,
	}
	require.NoError(t, db.Create(class).Error)

	form := &formModel.FormModel{
		FormClassID:              class.ClassID,
		FormTeacherID:            teacherID,
		FormTitle:                "Kuis Mingguan",
		FormSubject:              "Algoritma",
		FormOpensAt:              now.Add(-time.Hour),
		FormDueAt:                now.Add(time.Hour),
		FormPublished:            true,
		FormShowScoreAfterSubmit: true,
	}
	require.NoError(t, db.Create(form).Error)

	q1 := &formModel.FormQuestionModel{
		FormQuestionFormID:    form.FormID,
		FormQuestionStatement: "2 + 2 = ?",
		FormQuestionType:      formModel.QuestionTypeObjective,
		FormQuestionWeight:    2,
		FormQuestionPosition:  1,
	}
	require.NoError(t, db.Create(q1).Error)
	for i, opt := range []struct {
		text    string
		correct bool
	}{{"3", false}, {"4", true}} {
		require.NoError(t, db.Create(&formModel.FormQuestionOptionModel{
			FormQuestionOptionQuestionID: q1.FormQuestionID,
			FormQuestionOptionText:       opt.text,
			FormQuestionOptionPosition:   i + 1,
			FormQuestionOptionIsCorrect:  opt.correct,
		}).Error)
	}

	q2 := &formModel.FormQuestionModel{
		FormQuestionFormID:    form.FormID,
		FormQuestionStatement: "Kompleksitas binary search?",
		FormQuestionType:      formModel.QuestionTypeObjective,
		FormQuestionWeight:    3,
		FormQuestionPosition:  2,
	}
	require.NoError(t, db.Create(q2).Error)
	for i, opt := range []struct {
		text    string
		correct bool
	}{{"O(n)", false}, {"O(log n)", true}} {
		require.NoError(t, db.Create(&formModel.FormQuestionOptionModel{
			FormQuestionOptionQuestionID: q2.FormQuestionID,
			FormQuestionOptionText:       opt.text,
			FormQuestionOptionPosition:   i + 1,
			FormQuestionOptionIsCorrect:  opt.correct,
		}).Error)
	}

	q3 := &formModel.FormQuestionModel{
		FormQuestionFormID:    form.FormID,
		FormQuestionStatement: "Jelaskan cara kerja quicksort.",
		FormQuestionType:      formModel.QuestionTypeOpen,
		FormQuestionWeight:    5,
		FormQuestionPosition:  3,
	}
	require.NoError(t, db.Create(q3).Error)

	var questions []formModel.FormQuestionModel
	require.NoError(t, db.Preload("Options").
		Where("form_question_form_id = ?", form.FormID).
		Order("form_question_position ASC").
		Find(&questions).Error)
	return class, form, questions
}

func enroll(t *testing.T, db *gorm.DB, classID, studentID uuid.UUID) {
	t.Helper()
	require.NoError(t, db.Create(&classModel.ClassStudentModel{
		ClassStudentClassID:   classID,
		ClassStudentStudentID: studentID,
	}).Error)
}

func keyOption(t *testing.T, q formModel.FormQuestionModel) uuid.UUID {
	t.Helper()
	for _, o := range q.Options {
		if o.FormQuestionOptionIsCorrect {
			return o.FormQuestionOptionID
		}
	}
	t.Fatalf("soal %s tanpa kunci", q.FormQuestionID)
	return uuid.Nil
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body interface{}) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := app.Test(req, 5000)
	require.NoError(t, err)
	return res
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	res.Body.Close()
	return string(raw)
}

func TestFormRoutes_AuthAndRoleGates(t *testing.T) {
	app, db := newTestApp(t)
	teacher := newUser(t, db, "teacher")
	student := newUser(t, db, "student")
	_, form, _ := seedForm(t, db, teacher.ID)

	t.Run("tanpa token 401", func(t *testing.T) {
		res := doJSON(t, app, http.MethodGet, "/api/t/forms/"+form.FormID.String(), "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	t.Run("student ke endpoint teacher 403", func(t *testing.T) {
		res := doJSON(t, app, http.MethodGet, "/api/t/forms/"+form.FormID.String(), tokenFor(t, student), nil)
		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
	})

	t.Run("teacher ke endpoint student 403", func(t *testing.T) {
		res := doJSON(t, app, http.MethodGet, "/api/s/forms/"+form.FormID.String(), tokenFor(t, teacher), nil)
		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
	})

	t.Run("akun nonaktif 403", func(t *testing.T) {
		token := tokenFor(t, teacher)
		require.NoError(t, db.Model(&userModel.UserModel{}).
			Where("id = ?", teacher.ID).Update("is_active", false).Error)
		res := doJSON(t, app, http.MethodGet, "/api/t/forms/"+form.FormID.String(), token, nil)
		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
		require.NoError(t, db.Model(&userModel.UserModel{}).
			Where("id = ?", teacher.ID).Update("is_active", true).Error)
	})
}

func TestFormRoutes_TeacherOwnership(t *testing.T) {
	app, db := newTestApp(t)
	owner := newUser(t, db, "teacher")
	other := newUser(t, db, "teacher")
	_, form, _ := seedForm(t, db, owner.ID)

	t.Run("pemilik 200 beserta kunci jawaban", func(t *testing.T) {
		res := doJSON(t, app, http.MethodGet, "/api/t/forms/"+form.FormID.String(), tokenFor(t, owner), nil)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)
		assert.Contains(t, readBody(t, res), "is_correct")
	})

	t.Run("teacher lain 403", func(t *testing.T) {
		res := doJSON(t, app, http.MethodGet, "/api/t/forms/"+form.FormID.String(), tokenFor(t, other), nil)
		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
	})

	t.Run("form tidak ada 404", func(t *testing.T) {
		res := doJSON(t, app, http.MethodGet, "/api/t/forms/"+uuid.New().String(), tokenFor(t, owner), nil)
		assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
	})
}

func TestFormRoutes_StudentSubmitFlow(t *testing.T) {
	app, db := newTestApp(t)
	teacher := newUser(t, db, "teacher")
	member := newUser(t, db, "student")
	outsider := newUser(t, db, "student")
	class, form, questions := seedForm(t, db, teacher.ID)
	enroll(t, db, class.ClassID, member.ID)

	payload := fiber.Map{
		"answers": []fiber.Map{
			{"question_id": questions[0].FormQuestionID, "chosen_option_id": keyOption(t, questions[0])},
			{"question_id": questions[1].FormQuestionID, "chosen_option_id": keyOption(t, questions[1])},
		},
	}

	t.Run("bukan anggota 403", func(t *testing.T) {
		res := doJSON(t, app, http.MethodPost, "/api/s/forms/"+form.FormID.String()+"/submit", tokenFor(t, outsider), payload)
		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
	})

	t.Run("anggota submit 201", func(t *testing.T) {
		res := doJSON(t, app, http.MethodPost, "/api/s/forms/"+form.FormID.String()+"/submit", tokenFor(t, member), payload)
		assert.Equal(t, fiber.StatusCreated, res.StatusCode)
	})

	t.Run("submit kedua 409", func(t *testing.T) {
		res := doJSON(t, app, http.MethodPost, "/api/s/forms/"+form.FormID.String()+"/submit", tokenFor(t, member), payload)
		assert.Equal(t, fiber.StatusConflict, res.StatusCode)
	})

	t.Run("lewat batas waktu 422", func(t *testing.T) {
		require.NoError(t, db.Model(&formModel.FormModel{}).
			Where("form_id = ?", form.FormID).
			Updates(map[string]interface{}{
				"form_opens_at": time.Now().UTC().Add(-2 * time.Hour),
				"form_due_at":   time.Now().UTC().Add(-time.Hour),
			}).Error)
		late := newUser(t, db, "student")
		enroll(t, db, class.ClassID, late.ID)
		res := doJSON(t, app, http.MethodPost, "/api/s/forms/"+form.FormID.String()+"/submit", tokenFor(t, late), payload)
		assert.Equal(t, fiber.StatusUnprocessableEntity, res.StatusCode)
	})
}

func TestFormRoutes_StudentViewHidesAnswerKey(t *testing.T) {
	app, db := newTestApp(t)
	teacher := newUser(t, db, "teacher")
	member := newUser(t, db, "student")
	class, form, _ := seedForm(t, db, teacher.ID)
	enroll(t, db, class.ClassID, member.ID)

	res := doJSON(t, app, http.MethodGet, "/api/s/forms/"+form.FormID.String(), tokenFor(t, member), nil)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.NotContains(t, readBody(t, res), "is_correct")
}

func TestFormRoutes_CorrectionAndStats(t *testing.T) {
	app, db := newTestApp(t)
	teacher := newUser(t, db, "teacher")
	s1 := newUser(t, db, "student")
	s2 := newUser(t, db, "student")
	class, form, questions := seedForm(t, db, teacher.ID)
	enroll(t, db, class.ClassID, s1.ID)
	enroll(t, db, class.ClassID, s2.ID)

	// s1 mengerjakan semua soal (termasuk open) → status submitted
	res := doJSON(t, app, http.MethodPost, "/api/s/forms/"+form.FormID.String()+"/submit", tokenFor(t, s1), fiber.Map{
		"answers": []fiber.Map{
			{"question_id": questions[0].FormQuestionID, "chosen_option_id": keyOption(t, questions[0])},
			{"question_id": questions[1].FormQuestionID, "chosen_option_id": keyOption(t, questions[1])},
			{"question_id": questions[2].FormQuestionID, "text": "bagi, urutkan, gabung"},
		},
	})
	require.Equal(t, fiber.StatusCreated, res.StatusCode)

	type statsEnvelope struct {
		Data struct {
			TotalStudents   int64   `json:"total_students"`
			TotalPending    int64   `json:"total_pending"`
			TotalSubmitted  int64   `json:"total_submitted"`
			TotalCorrected  int64   `json:"total_corrected"`
			MaxPoints       float64 `json:"max_points"`
			AvgFinalPercent float64 `json:"avg_final_percent"`
		} `json:"data"`
	}

	statsURL := "/api/t/forms/" + form.FormID.String() + "/stats"

	res = doJSON(t, app, http.MethodGet, statsURL, tokenFor(t, teacher), nil)
	require.Equal(t, fiber.StatusOK, res.StatusCode)
	var before statsEnvelope
	require.NoError(t, json.Unmarshal([]byte(readBody(t, res)), &before))
	assert.Equal(t, int64(2), before.Data.TotalStudents)
	assert.Equal(t, int64(1), before.Data.TotalPending)
	assert.Equal(t, int64(1), before.Data.TotalSubmitted)
	assert.Equal(t, int64(0), before.Data.TotalCorrected)
	assert.Equal(t, 10.0, before.Data.MaxPoints)

	var submission formModel.FormSubmissionModel
	require.NoError(t, db.First(&submission, "form_submission_form_id = ?", form.FormID).Error)
	var openAnswer formModel.FormAnswerModel
	require.NoError(t, db.First(&openAnswer,
		"form_answer_submission_id = ? AND form_answer_question_id = ?",
		submission.FormSubmissionID, questions[2].FormQuestionID).Error)

	correctURL := "/api/t/forms/" + form.FormID.String() +
		"/submissions/" + submission.FormSubmissionID.String() + "/correct"

	t.Run("manual points di luar rentang 422", func(t *testing.T) {
		res := doJSON(t, app, http.MethodPost, correctURL, tokenFor(t, teacher), fiber.Map{
			"corrections": []fiber.Map{
				{"answer_id": openAnswer.FormAnswerID, "manual_points": 6},
			},
		})
		assert.Equal(t, fiber.StatusUnprocessableEntity, res.StatusCode)
	})

	t.Run("koreksi lalu stats terbarui", func(t *testing.T) {
		res := doJSON(t, app, http.MethodPost, correctURL, tokenFor(t, teacher), fiber.Map{
			"corrections": []fiber.Map{
				{"answer_id": openAnswer.FormAnswerID, "manual_points": 5},
			},
		})
		require.Equal(t, fiber.StatusOK, res.StatusCode)

		res = doJSON(t, app, http.MethodGet, statsURL, tokenFor(t, teacher), nil)
		require.Equal(t, fiber.StatusOK, res.StatusCode)
		var after statsEnvelope
		require.NoError(t, json.Unmarshal([]byte(readBody(t, res)), &after))
		assert.Equal(t, int64(0), after.Data.TotalSubmitted)
		assert.Equal(t, int64(1), after.Data.TotalCorrected)
		assert.Equal(t, int64(1), after.Data.TotalPending)
		assert.InDelta(t, 100.0, after.Data.AvgFinalPercent, 0.001) // 10/10 poin
	})
}
