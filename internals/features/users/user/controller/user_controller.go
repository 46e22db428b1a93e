// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/users/user/dto"
	"kampusku_backend/internals/features/users/user/model"
	resp "kampusku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

// =============================
// 📄 List Users (coordinator, paginated + search + filter role)
// =============================
func (ctrl *UserController) GetUsers(c *fiber.Ctx) error {
	p := resp.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.UserModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR LOWER(user_name) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []model.UserModel
	if err := q.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&users).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	rows := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		rows = append(rows, dto.ToUserDTO(u))
	}

	pagination := resp.BuildPaginationFromOffset(total, p.Offset, p.Limit)
	pagination.Count = len(rows)
	return resp.JsonList(c, "OK", rows, pagination)
}

// =============================
// 🔍 Get User By ID (+ student profile kalau ada)
// =============================
func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return resp.JsonError(c, fiber.StatusInternalServerError, "Failed to get user")
	}

	payload := fiber.Map{"user": dto.ToUserDTO(user)}
	if user.Role == "student" {
		var profile model.StudentProfileModel
		if err := ctrl.DB.WithContext(c.Context()).
			Where("student_profile_user_id = ?", user.ID).
			First(&profile).Error; err == nil {
			payload["student_profile"] = profile
		}
	}
	return resp.JsonOK(c, "OK", payload)
}

// =============================
// ✏️ Update User (coordinator, partial)
// =============================
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return resp.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "id = ?", id).Error; err != nil {
		return resp.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	body.ApplyTo(&user)
	if err := ctrl.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			return resp.JsonError(c, fiber.StatusBadRequest, "Username atau email sudah dipakai")
		}
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal update user")
	}
	return resp.JsonOK(c, "User updated", dto.ToUserDTO(user))
}

// =============================
// 🔌 Activate / Deactivate (coordinator)
// =============================
func (ctrl *UserController) SetUserActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body struct {
		IsActive *bool `json:"is_active" validate:"required"`
	}
	if err := c.BodyParser(&body); err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return resp.ValidationError(c, err)
	}

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("is_active", *body.IsActive)
	if res.Error != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status user")
	}
	if res.RowsAffected == 0 {
		return resp.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	msg := "User activated"
	if !*body.IsActive {
		msg = "User deactivated"
	}
	return resp.JsonOK(c, msg, nil)
}

// =============================
// 🗑️ Delete User (soft, coordinator)
// =============================
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	selfID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	if selfID == id {
		return resp.JsonError(c, fiber.StatusUnprocessableEntity, "Tidak bisa menghapus akun sendiri")
	}

	res := ctrl.DB.WithContext(c.Context()).Delete(&model.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	if res.RowsAffected == 0 {
		return resp.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return resp.JsonOK(c, "User deleted", nil)
}
