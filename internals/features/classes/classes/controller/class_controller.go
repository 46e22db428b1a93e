package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	registryService "kampusku_backend/internals/features/academics/registry/service"
	"kampusku_backend/internals/features/classes/classes/dto"
	"kampusku_backend/internals/features/classes/classes/model"
	resp "kampusku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create Class (teacher)
// =============================
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	var body dto.CreateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return resp.ValidationError(c, err)
	}

	teacherID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	// Course kelas harus valid di registry resmi
	ok, err := registryService.ValidateCourseCode(c.UserContext(), ctrl.DB, body.ClassCourseCode)
	if err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa registry course")
	}
	if !ok {
		return resp.JsonError(c, fiber.StatusUnprocessableEntity, "Course tidak terdaftar di registry resmi")
	}

	class := body.ToModel(teacherID)
	if err := ctrl.DB.WithContext(c.Context()).Create(class).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}

	return resp.JsonCreated(c, "Class created", dto.ToClassDTO(*class))
}

// =============================
// 📄 Get My Classes (teacher)
// =============================
func (ctrl *ClassController) GetMyClasses(c *fiber.Ctx) error {
	teacherID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var classes []model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("class_teacher_id = ?", teacherID).
		Order("class_created_at DESC").
		Find(&classes).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}

	result := make([]dto.ClassDTO, 0, len(classes))
	for _, cl := range classes {
		result = append(result, dto.ToClassDTO(cl))
	}
	return resp.JsonOK(c, "OK", result)
}

// =============================
// 🔍 Get Class By ID
// =============================
func (ctrl *ClassController) GetClassByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var class model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&class, "class_id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return resp.JsonError(c, fiber.StatusInternalServerError, "Failed to get class")
	}

	return resp.JsonOK(c, "OK", dto.ToClassDTO(class))
}

// =============================
// ✏️ Update Class By ID (partial, hanya pemilik)
// =============================
func (ctrl *ClassController) UpdateClassByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	teacherID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var body dto.UpdateClassRequest
	if err := c.BodyParser(&body); err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return resp.ValidationError(c, err)
	}

	var class model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&class, "class_id = ?", idStr).Error; err != nil {
		return resp.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	if class.ClassTeacherID != teacherID {
		return resp.JsonError(c, fiber.StatusForbidden, "Bukan kelas Anda")
	}

	body.ApplyTo(&class)
	if err := ctrl.DB.WithContext(c.Context()).Save(&class).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal update kelas")
	}

	return resp.JsonOK(c, "Class updated", dto.ToClassDTO(class))
}

// =============================
// 🗑️ Delete Class (soft, hanya pemilik)
// =============================
func (ctrl *ClassController) DeleteClassByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	teacherID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var class model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&class, "class_id = ?", idStr).Error; err != nil {
		return resp.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	if class.ClassTeacherID != teacherID {
		return resp.JsonError(c, fiber.StatusForbidden, "Bukan kelas Anda")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&class).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}
	return resp.JsonOK(c, "Class deleted", nil)
}
