// file: internals/features/classes/invites/controller/invite_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "kampusku_backend/internals/features/classes/classes/model"
	"kampusku_backend/internals/features/classes/invites/dto"
	inviteModel "kampusku_backend/internals/features/classes/invites/model"
	inviteService "kampusku_backend/internals/features/classes/invites/service"
	resp "kampusku_backend/internals/helpers"
)

type InviteController struct {
	DB *gorm.DB
}

func NewInviteController(db *gorm.DB) *InviteController {
	return &InviteController{DB: db}
}

var validate = validator.New()

// =============================
// ➕ Create Invite (teacher pemilik kelas)
// =============================
func (ctrl *InviteController) CreateInvite(c *fiber.Ctx) error {
	classIDStr := c.Params("id")
	classID, err := uuid.Parse(classIDStr)
	if err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	teacherID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var body dto.CreateInviteRequest
	if err := c.BodyParser(&body); err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return resp.ValidationError(c, err)
	}

	var class classModel.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&class, "class_id = ?", classID).Error; err != nil {
		return resp.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	if class.ClassTeacherID != teacherID {
		return resp.JsonError(c, fiber.StatusForbidden, "Bukan kelas Anda")
	}

	now := time.Now().UTC()
	expiresAt := body.ResolveExpiry(now)
	if !expiresAt.After(now) {
		return resp.JsonError(c, fiber.StatusUnprocessableEntity, "expires_at harus di masa depan")
	}

	invite, err := inviteService.CreateInvite(ctrl.DB.WithContext(c.Context()), classID, teacherID, expiresAt, body.MaxUses)
	if err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat invite")
	}

	return resp.JsonCreated(c, "Invite created", dto.ToClassInviteDTO(*invite))
}

// =============================
// 📄 List Invites per Class (teacher pemilik)
// =============================
func (ctrl *InviteController) GetClassInvites(c *fiber.Ctx) error {
	classIDStr := c.Params("id")
	classID, err := uuid.Parse(classIDStr)
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
		return resp.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	if class.ClassTeacherID != teacherID {
		return resp.JsonError(c, fiber.StatusForbidden, "Bukan kelas Anda")
	}

	var invites []inviteModel.ClassInviteModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("class_invite_class_id = ?", classID).
		Order("class_invite_created_at DESC").
		Find(&invites).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil invite")
	}

	result := make([]dto.ClassInviteDTO, 0, len(invites))
	for _, iv := range invites {
		result = append(result, dto.ToClassInviteDTO(iv))
	}
	return resp.JsonOK(c, "OK", result)
}

// =============================
// 🚫 Revoke Invite (teacher pemilik)
// =============================
func (ctrl *InviteController) RevokeInvite(c *fiber.Ctx) error {
	inviteIDStr := c.Params("invite_id")
	inviteID, err := uuid.Parse(inviteIDStr)
	if err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "ID invite tidak valid")
	}

	teacherID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var invite inviteModel.ClassInviteModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&invite, "class_invite_id = ?", inviteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp.JsonError(c, fiber.StatusNotFound, "Invite not found")
		}
		return resp.JsonError(c, fiber.StatusInternalServerError, "Failed to get invite")
	}
	if invite.ClassInviteCreatedBy != teacherID {
		return resp.JsonError(c, fiber.StatusForbidden, "Bukan invite Anda")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&inviteModel.ClassInviteModel{}).
		Where("class_invite_id = ?", inviteID).
		Update("class_invite_active", false).Error; err != nil {
		return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal menonaktifkan invite")
	}
	return resp.JsonOK(c, "Invite revoked", nil)
}

// =============================
// 🎟️ Join By Code (student)
// =============================
func (ctrl *InviteController) JoinByCode(c *fiber.Ctx) error {
	var body dto.JoinByCodeRequest
	if err := c.BodyParser(&body); err != nil {
		return resp.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return resp.ValidationError(c, err)
	}

	studentID, err := resp.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	member, err := inviteService.JoinByCode(ctrl.DB.WithContext(c.Context()), body.Code, studentID)
	if err != nil {
		switch {
		case errors.Is(err, inviteService.ErrInviteNotFound):
			return resp.JsonError(c, fiber.StatusNotFound, "Kode invite tidak ditemukan")
		case errors.Is(err, inviteService.ErrInviteExpired), errors.Is(err, inviteService.ErrInviteInactive):
			return resp.JsonError(c, fiber.StatusGone, "Invite sudah tidak berlaku")
		case errors.Is(err, inviteService.ErrInviteExhausted):
			return resp.JsonError(c, fiber.StatusConflict, "Kuota invite sudah habis")
		case errors.Is(err, inviteService.ErrAlreadyMember):
			return resp.JsonError(c, fiber.StatusConflict, "Anda sudah menjadi anggota kelas ini")
		case errors.Is(err, inviteService.ErrClassNotFound):
			return resp.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		default:
			return resp.JsonError(c, fiber.StatusInternalServerError, "Gagal join kelas")
		}
	}

	return resp.JsonCreated(c, "Joined class", fiber.Map{
		"class_student_id": member.ClassStudentID,
		"class_id":         member.ClassStudentClassID,
		"joined_at":        member.ClassStudentJoinedAt,
	})
}
