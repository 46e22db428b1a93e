// file: internals/features/forms/forms/controller/correction_controller.go
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

// =============================
// 📄 List Submissions satu form (teacher)
// =============================
func (ctrl *FormController) GetFormSubmissions(c *fiber.Ctx) error {
	form, err := ctrl.ownedForm(c, "id")
	if err != nil {
		return err
	}

	p := resp.ResolvePaging(c, 20, 100)

	base := ctrl.DB.WithContext(c.Context()).
		Table("form_submissions AS fs").
		Where("fs.form_submission_form_id = ? AND fs.form_submission_deleted_at IS NULL", form.FormID)

	// ?status=submitted|corrected
	if status := c.Query("status"); status != "" {
		base = base.Where("fs.form_submission_status = ?", status)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung submission")
	}

	var rows []dto.SubmissionRowDTO
	if err := base.Session(&gorm.Session{}).
		Select(`fs.form_submission_id AS submission_id,
			fs.form_submission_student_id AS student_id,
			u.full_name AS student_name,
			fs.form_submission_status AS status,
			fs.form_submission_submitted_at AS submitted_at,
			fs.form_submission_auto_score AS auto_score,
			fs.form_submission_final_score AS final_score,
			fs.form_submission_corrected AS corrected`).
		Joins("JOIN users u ON u.id = fs.form_submission_student_id").
		Order("fs.form_submission_submitted_at ASC").
		Limit(p.Limit).Offset(p.Offset).
		Scan(&rows).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil submission")
	}

	pagination := resp.BuildPaginationFromOffset(total, p.Offset, p.Limit)
	pagination.Count = len(rows)
	return resp.JsonList(c, "OK", rows, pagination)
}

// =============================
// 🔍 Submission Detail (teacher — jawaban lengkap untuk dikoreksi)
// =============================
func (ctrl *FormController) GetSubmissionDetail(c *fiber.Ctx) error {
	form, err := ctrl.ownedForm(c, "id")
	if err != nil {
		return err
	}
	submissionID, err := uuid.Parse(c.Params("submission_id"))
	if err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "ID submission tidak valid")
	}

	var submission model.FormSubmissionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("form_submission_id = ? AND form_submission_form_id = ?", submissionID, form.FormID).
		First(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil submission")
	}

	var answers []model.FormAnswerModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("form_answer_submission_id = ?", submission.FormSubmissionID).
		Find(&answers).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban")
	}

	return resp.JsonOK(c, "OK", dto.ToSubmissionDetailDTO(submission, answers))
}

// =============================
// ✅ Correct Submission (manual points jawaban open)
// =============================
func (ctrl *FormController) CorrectSubmission(c *fiber.Ctx) error {
	form, err := ctrl.ownedForm(c, "id")
	if err != nil {
		return err
	}
	submissionID, err := uuid.Parse(c.Params("submission_id"))
	if err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "ID submission tidak valid")
	}

	teacherID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var body dto.CorrectSubmissionRequest
	if err := c.BodyParser(&body); err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return resp.ValidationError(c, err)
	}

	// submission harus milik form ini
	var belongs int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.FormSubmissionModel{}).
		Where("form_submission_id = ? AND form_submission_form_id = ?", submissionID, form.FormID).
		Count(&belongs).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa submission")
	}
	if belongs == 0 {
		return resp.JsonError(c, fiber.StatusNotFound, "Submission not found")
	}

	submission, err := formService.Correct(ctrl.DB.WithContext(c.Context()), submissionID, teacherID, &body, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, formService.ErrSubmissionNotFound):
			return resp.JsonError(c, fiber.StatusNotFound, "Submission not found")
		case errors.Is(err, formService.ErrSubmissionNotYet):
			return resp.JsonError(c, fiber.StatusUnprocessableEntity, "Submission belum disubmit")
		case errors.Is(err, formService.ErrAnswerNotFound),
			errors.Is(err, formService.ErrNotOpenQuestion),
			errors.Is(err, formService.ErrPointsOutOfRange),
			errors.Is(err, formService.ErrOpenAnswerUncorrected):
			return resp.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		default:
			return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan koreksi")
		}
	}

	return resp.JsonOK(c, "Submission corrected", dto.ToSubmissionDTO(*submission))
}

// =============================
// 📊 Form Stats (agregat nilai, teacher)
// =============================
func (ctrl *FormController) GetFormStats(c *fiber.Ctx) error {
	form, err := ctrl.ownedForm(c, "id")
	if err != nil {
		return err
	}

	stats := dto.FormStatsDTO{FormID: form.FormID}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&classModel.ClassStudentModel{}).
		Where("class_student_class_id = ?", form.FormClassID).
		Count(&stats.TotalStudents).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung anggota kelas")
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.FormSubmissionModel{}).
		Where("form_submission_form_id = ? AND form_submission_status = ?", form.FormID, model.SubmissionSubmitted).
		Count(&stats.TotalSubmitted).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung submission")
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.FormSubmissionModel{}).
		Where("form_submission_form_id = ? AND form_submission_status = ?", form.FormID, model.SubmissionCorrected).
		Count(&stats.TotalCorrected).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung koreksi")
	}
	stats.TotalPending = stats.TotalStudents - stats.TotalSubmitted - stats.TotalCorrected
	if stats.TotalPending < 0 {
		stats.TotalPending = 0
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.FormQuestionModel{}).
		Select("COALESCE(SUM(form_question_weight), 0)").
		Where("form_question_form_id = ?", form.FormID).
		Scan(&stats.MaxPoints).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung bobot soal")
	}

	type aggRow struct {
		AvgAuto  *float64
		AvgFinal *float64
		MaxFinal *float64
		MinFinal *float64
	}
	var agg aggRow
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.FormSubmissionModel{}).
		Select(`AVG(form_submission_auto_score) AS avg_auto,
			AVG(form_submission_final_score) AS avg_final,
			MAX(form_submission_final_score) AS max_final,
			MIN(form_submission_final_score) AS min_final`).
		Where("form_submission_form_id = ?", form.FormID).
		Scan(&agg).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung agregat")
	}
	if agg.AvgAuto != nil {
		stats.AvgAutoScore = *agg.AvgAuto
	}
	if agg.AvgFinal != nil {
		stats.AvgFinalScore = *agg.AvgFinal
		if stats.MaxPoints > 0 {
			stats.AvgFinalPercent = stats.AvgFinalScore / stats.MaxPoints * 100
		}
	}
	if agg.MaxFinal != nil {
		stats.MaxFinalScore = *agg.MaxFinal
	}
	if agg.MinFinal != nil {
		stats.MinFinalScore = *agg.MinFinal
	}

	return resp.JsonOK(c, "OK", stats)
}
