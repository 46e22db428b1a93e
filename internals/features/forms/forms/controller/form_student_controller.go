// file: internals/features/forms/forms/controller/form_student_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "kampusku_backend/internals/features/classes/classes/model"
	"kampusku_backend/internals/features/forms/forms/dto"
	model "kampusku_backend/internals/features/forms/forms/model"
	formService "kampusku_backend/internals/features/forms/forms/service"
	resp "kampusku_backend/internals/helpers"
)

// memberForm: ambil form + pastikan student adalah anggota kelasnya
func (ctrl *FormController) memberForm(c *fiber.Ctx, studentID uuid.UUID) (*model.FormModel, error) {
	formID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, resp.JsonError(c, fiber.StatusBadRequest, "ID form tidak valid")
	}

	var form model.FormModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&form, "form_id = ?", formID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, resp.JsonError(c, fiber.StatusNotFound, "Form not found")
		}
		return nil, resp.JsonError(c, fiber.StatusInternalServerError, "Failed to get form")
	}

	var membership int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&classModel.ClassStudentModel{}).
		Where("class_student_class_id = ? AND class_student_student_id = ?", form.FormClassID, studentID).
		Count(&membership).Error; err != nil {
		return nil, resp.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa keanggotaan")
	}
	if membership == 0 {
		return nil, resp.JsonError(c, fiber.StatusForbidden, "Anda bukan anggota kelas form ini")
	}
	return &form, nil
}

// =============================
// 📄 List Forms kelas saya (student, hanya yang published)
// =============================
func (ctrl *FormController) GetStudentForms(c *fiber.Ctx) error {
	studentID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var forms []model.FormModel
	if err := ctrl.DB.WithContext(c.Context()).
		Joins("JOIN class_students cs ON cs.class_student_class_id = forms.form_class_id").
		Where("cs.class_student_student_id = ? AND cs.class_student_deleted_at IS NULL AND forms.form_published = ?", studentID, true).
		Order("forms.form_due_at ASC").
		Find(&forms).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil form")
	}

	// Status submission saya per form
	formIDs := make([]uuid.UUID, 0, len(forms))
	for _, f := range forms {
		formIDs = append(formIDs, f.FormID)
	}
	statusByForm := make(map[uuid.UUID]string, len(formIDs))
	if len(formIDs) > 0 {
		var subs []model.FormSubmissionModel
		if err := ctrl.DB.WithContext(c.Context()).
			Select("form_submission_form_id", "form_submission_status").
			Where("form_submission_student_id = ? AND form_submission_form_id IN ?", studentID, formIDs).
			Find(&subs).Error; err != nil {
			return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil status submission")
		}
		for _, s := range subs {
			statusByForm[s.FormSubmissionFormID] = s.FormSubmissionStatus.String()
		}
	}

	type studentFormRow struct {
		dto.FormDTO
		MyStatus string `json:"my_status"` // belum submit = "pending"
	}
	result := make([]studentFormRow, 0, len(forms))
	for _, f := range forms {
		status, ok := statusByForm[f.FormID]
		if !ok {
			status = model.SubmissionPending.String()
		}
		result = append(result, studentFormRow{FormDTO: dto.ToFormDTO(f), MyStatus: status})
	}
	return resp.JsonOK(c, "OK", result)
}

// =============================
// 🔍 Get Form untuk dikerjakan (student — kunci DISEMBUNYIKAN)
// =============================
func (ctrl *FormController) GetStudentFormDetail(c *fiber.Ctx) error {
	studentID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	form, err := ctrl.memberForm(c, studentID)
	if err != nil {
		return err
	}
	if !form.FormPublished {
		return resp.JsonError(c, fiber.StatusNotFound, "Form not found")
	}

	var questions []model.FormQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("form_question_option_position ASC")
		}).
		Where("form_question_form_id = ?", form.FormID).
		Order("form_question_position ASC").
		Find(&questions).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	return resp.JsonOK(c, "OK", dto.ToStudentFormDetailDTO(*form, questions))
}

// =============================
// 📨 Submit jawaban (auto scoring objective)
// =============================
func (ctrl *FormController) SubmitForm(c *fiber.Ctx) error {
	studentID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	form, err := ctrl.memberForm(c, studentID)
	if err != nil {
		return err
	}

	var body dto.SubmitFormRequest
	if err := c.BodyParser(&body); err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return resp.ValidationError(c, err)
	}

	submission, err := formService.Submit(ctrl.DB.WithContext(c.Context()), form, studentID, &body, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, formService.ErrFormNotOpen):
			return resp.JsonError(c, fiber.StatusUnprocessableEntity, "Form belum dibuka")
		case errors.Is(err, formService.ErrFormClosed):
			return resp.JsonError(c, fiber.StatusUnprocessableEntity, "Form sudah lewat batas waktu")
		case errors.Is(err, formService.ErrAlreadySubmitted):
			return resp.JsonError(c, fiber.StatusConflict, "Anda sudah submit form ini")
		case errors.Is(err, formService.ErrUnknownQuestion),
			errors.Is(err, formService.ErrDuplicateAnswer),
			errors.Is(err, formService.ErrOptionMismatch),
			errors.Is(err, formService.ErrObjectiveNeedsOpt),
			errors.Is(err, formService.ErrOpenNeedsText):
			return resp.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal submit form")
		}
	}

	result := dto.ToSubmissionDTO(*submission)
	if !form.FormShowScoreAfterSubmit && !submission.FormSubmissionCorrected {
		result.HideScores()
	}
	return resp.JsonCreated(c, "Form submitted", result)
}

// =============================
// 🧾 Lihat hasil submission saya
// =============================
func (ctrl *FormController) GetMySubmission(c *fiber.Ctx) error {
	studentID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	form, err := ctrl.memberForm(c, studentID)
	if err != nil {
		return err
	}

	var submission model.FormSubmissionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("form_submission_form_id = ? AND form_submission_student_id = ?", form.FormID, studentID).
		First(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp.JsonError(c, fiber.StatusNotFound, "Belum ada submission")
		}
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil submission")
	}

	var answers []model.FormAnswerModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("form_answer_submission_id = ?", submission.FormSubmissionID).
		Find(&answers).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban")
	}

	result := dto.ToSubmissionDetailDTO(submission, answers)
	if !form.FormShowScoreAfterSubmit && !submission.FormSubmissionCorrected {
		result.HideScores()
		for i := range result.Answers {
			result.Answers[i].IsCorrect = nil
			result.Answers[i].EarnedPoints = 0
		}
	}
	return resp.JsonOK(c, "OK", result)
}
