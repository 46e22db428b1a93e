// file: internals/features/forms/forms/controller/form_teacher_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "kampusku_backend/internals/features/classes/classes/model"
	"kampusku_backend/internals/features/forms/forms/dto"
	model "kampusku_backend/internals/features/forms/forms/model"
	resp "kampusku_backend/internals/helpers"
)

type FormController struct {
	DB *gorm.DB
}

func NewFormController(db *gorm.DB) *FormController {
	return &FormController{DB: db}
}

var validate = validator.New()

// ownedForm: ambil form + pastikan milik teacher yang login
func (ctrl *FormController) ownedForm(c *fiber.Ctx, formIDParam string) (*model.FormModel, error) {
	formID, err := uuid.Parse(c.Params(formIDParam))
	if err != nil {
		return nil, resp.JsonError(c, fiber.StatusBadRequest, "ID form tidak valid")
	}
	teacherID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return nil, err
	}

	var form model.FormModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&form, "form_id = ?", formID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, resp.JsonError(c, fiber.StatusNotFound, "Form not found")
		}
		return nil, resp.JsonError(c, fiber.StatusInternalServerError, "Failed to get form")
	}
	if form.FormTeacherID != teacherID {
		return nil, resp.JsonError(c, fiber.StatusForbidden, "Bukan form Anda")
	}
	return &form, nil
}

// =============================
// ➕ Create Form (soal + opsi sekali kirim, transaksional)
// =============================
func (ctrl *FormController) CreateForm(c *fiber.Ctx) error {
	var body dto.CreateFormRequest
	if err := c.BodyParser(&body); err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return resp.ValidationError(c, err)
	}
	if err := body.ValidateQuestions(); err != nil {
		return resp.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	teacherID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	// Kelas harus milik teacher ini
	var class classModel.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&class, "class_id = ?", body.FormClassID).Error; err != nil {
		return resp.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	if class.ClassTeacherID != teacherID {
		return resp.JsonError(c, fiber.StatusForbidden, "Bukan kelas Anda")
	}

	form := body.ToModel(teacherID)
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(form).Error; err != nil {
			return err
		}
		for i, qReq := range body.Questions {
			question := qReq.ToModel(form.FormID, i+1)
			if err := tx.Create(question).Error; err != nil {
				return err
			}
			for j, optReq := range qReq.Options {
				option := &model.FormQuestionOptionModel{
					FormQuestionOptionQuestionID: question.FormQuestionID,
					FormQuestionOptionText:       optReq.Text,
					FormQuestionOptionPosition:   j + 1,
					FormQuestionOptionIsCorrect:  optReq.IsCorrect,
				}
				if err := tx.Create(option).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat form")
	}

	return resp.JsonCreated(c, "Form created", dto.ToFormDTO(*form))
}

// =============================
// 📄 List Forms per Class (teacher)
// =============================
func (ctrl *FormController) GetClassForms(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}
	teacherID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var class classModel.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&class, "class_id = ?", classID).Error; err != nil {
		return resp.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}
	if class.ClassTeacherID != teacherID {
		return resp.JsonError(c, fiber.StatusForbidden, "Bukan kelas Anda")
	}

	var forms []model.FormModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("form_class_id = ?", classID).
		Order("form_created_at DESC").
		Find(&forms).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil form")
	}

	result := make([]dto.FormDTO, 0, len(forms))
	for _, f := range forms {
		result = append(result, dto.ToFormDTO(f))
	}
	return resp.JsonOK(c, "OK", result)
}

// =============================
// 🔍 Get Form Detail (teacher — kunci ikut)
// =============================
func (ctrl *FormController) GetFormDetail(c *fiber.Ctx) error {
	form, err := ctrl.ownedForm(c, "id")
	if err != nil {
		return err
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

	return resp.JsonOK(c, "OK", dto.ToTeacherFormDetailDTO(*form, questions))
}

// =============================
// ✏️ Update Form (metadata; soal terkunci setelah ada submission)
// =============================
func (ctrl *FormController) UpdateForm(c *fiber.Ctx) error {
	form, err := ctrl.ownedForm(c, "id")
	if err != nil {
		return err
	}

	var body dto.UpdateFormRequest
	if err := c.BodyParser(&body); err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return resp.ValidationError(c, err)
	}

	body.ApplyTo(form)
	if !form.FormDueAt.After(form.FormOpensAt) {
		return resp.JsonError(c, fiber.StatusUnprocessableEntity, "form_due_at harus setelah form_opens_at")
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(form).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal update form")
	}
	return resp.JsonOK(c, "Form updated", dto.ToFormDTO(*form))
}

// =============================
// 🗑️ Delete Form (soft; ditolak jika sudah ada submission)
// =============================
func (ctrl *FormController) DeleteForm(c *fiber.Ctx) error {
	form, err := ctrl.ownedForm(c, "id")
	if err != nil {
		return err
	}

	var submitted int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.FormSubmissionModel{}).
		Where("form_submission_form_id = ?", form.FormID).
		Count(&submitted).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa submission")
	}
	if submitted > 0 {
		return resp.JsonError(c, fiber.StatusConflict, "Form sudah punya submission, tidak bisa dihapus")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(form).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus form")
	}
	return resp.JsonOK(c, "Form deleted", nil)
}
