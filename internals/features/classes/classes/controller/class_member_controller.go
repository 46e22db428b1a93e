package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/classes/classes/dto"
	"kampusku_backend/internals/features/classes/classes/model"
	resp "kampusku_backend/internals/helpers"
)

// =============================
// 👥 Get Class Members (teacher pemilik)
// =============================
func (ctrl *ClassController) GetClassMembers(c *fiber.Ctx) error {
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

	var members []dto.ClassMemberDTO
	if err := ctrl.DB.WithContext(c.Context()).
		Table("class_students AS cs").
		Select(`cs.class_student_id, cs.class_student_student_id AS student_id,
			u.full_name AS student_name, u.email AS student_email,
			cs.class_student_joined_at AS joined_at`).
		Joins("JOIN users u ON u.id = cs.class_student_student_id").
		Where("cs.class_student_class_id = ? AND cs.class_student_deleted_at IS NULL", idStr).
		Order("cs.class_student_joined_at ASC").
		Scan(&members).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil anggota kelas")
	}

	return resp.JsonOK(c, "OK", members)
}

// =============================
// 📄 My Joined Classes (student)
// =============================
func (ctrl *ClassController) GetJoinedClasses(c *fiber.Ctx) error {
	studentID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var classes []model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		Joins("JOIN class_students cs ON cs.class_student_class_id = classes.class_id").
		Where("cs.class_student_student_id = ? AND cs.class_student_deleted_at IS NULL", studentID).
		Order("classes.class_created_at DESC").
		Find(&classes).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	result := make([]dto.ClassDTO, 0, len(classes))
	for _, cl := range classes {
		result = append(result, dto.ToClassDTO(cl))
	}
	return resp.JsonOK(c, "OK", result)
}

// =============================
// 🚪 Leave Class (student)
// =============================
func (ctrl *ClassController) LeaveClass(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	studentID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var member model.ClassStudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("class_student_class_id = ? AND class_student_student_id = ?", idStr, studentID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp.JsonError(c, fiber.StatusNotFound, "Anda bukan anggota kelas ini")
		}
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa keanggotaan")
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&member).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal keluar dari kelas")
	}
	return resp.JsonOK(c, "Left class", nil)
}
