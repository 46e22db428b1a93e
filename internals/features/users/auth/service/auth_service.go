package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	"kampusku_backend/internals/constants"
	registryService "kampusku_backend/internals/features/academics/registry/service"
	authHelper "kampusku_backend/internals/features/users/auth/helper"
	authRepo "kampusku_backend/internals/features/users/auth/repository"
	userModel "kampusku_backend/internals/features/users/user/model"
	helpers "kampusku_backend/internals/helpers"
)

/* ==========================
   REGISTER
========================== */

type RegisterInput struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	FullName string `json:"full_name" validate:"required,min=3,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=student teacher coordinator"`

	// Khusus student — course harus valid di registry resmi
	RegistrationNumber string `json:"registration_number" validate:"omitempty,max=30"`
	CourseCode         string `json:"course_code" validate:"omitempty,max=20"`
	Period             int    `json:"period" validate:"omitempty,gte=1,lte=20"`
}

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := authHelper.ValidateRegisterInput(input.UserName, input.Email, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if input.Role == "" {
		input.Role = constants.RoleStudent
	}

	// Student wajib deklarasi course yang terdaftar resmi
	if input.Role == constants.RoleStudent {
		if strings.TrimSpace(input.CourseCode) == "" || strings.TrimSpace(input.RegistrationNumber) == "" {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Student wajib mengisi course_code dan registration_number")
		}
		ok, err := registryService.ValidateCourseCode(c.UserContext(), db, input.CourseCode)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa registry course")
		}
		if !ok {
			return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "Course tidak terdaftar di registry resmi")
		}
	}

	// Hash password
	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(input.UserName),
		FullName: strings.TrimSpace(input.FullName),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: passwordHash,
		Role:     input.Role,
	}
	if err := user.Validate(); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// User + profile student dalam satu transaksi
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := authRepo.CreateUser(tx, &user); err != nil {
			return err
		}
		if user.Role == constants.RoleStudent {
			period := input.Period
			if period < 1 {
				period = 1
			}
			return tx.Create(&userModel.StudentProfileModel{
				StudentProfileUserID:             user.ID,
				StudentProfileRegistrationNumber: strings.TrimSpace(input.RegistrationNumber),
				StudentProfileCourseCode:         strings.ToUpper(strings.TrimSpace(input.CourseCode)),
				StudentProfilePeriod:             period,
			}).Error
		}
		return nil
	}); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email atau username sudah terdaftar")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.JsonCreated(c, "Registration successful", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"role":      user.Role,
	})
}

/* ==========================
   LOGIN (username/email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)

	if err := authHelper.ValidateLoginInput(input.Identifier, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Minimal user
	userLight, err := authRepo.FindUserByEmailOrUsernameLight(db, input.Identifier)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Identifier atau Password salah")
	}
	if !userLight.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi coordinator.")
	}
	if err := authHelper.CheckPasswordHash(userLight.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Identifier atau Password salah")
	}

	// Full user
	userFull, err := authRepo.FindUserByID(db, userLight.ID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return issueTokens(c, db, *userFull)
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// Blacklist access token yang sedang dipakai
	if tok, ok := c.Locals("access_token").(string); ok && tok != "" {
		if err := authRepo.BlacklistToken(db, tok, configs.Cfg.AccessTTL); err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal blacklist token")
		}
	}

	// Revoke semua refresh token user
	if uid, err := helpers.GetUserIDFromLocals(c); err == nil {
		if err := authRepo.RevokeRefreshTokensByUser(db, uid, time.Now().UTC()); err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal revoke refresh token")
		}
	}

	clearAuthCookies(c)
	return helpers.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   CHANGE PASSWORD
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}

	var input struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(input.NewPassword) < 8 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Password baru minimal 8 karakter")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.OldPassword); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	newHash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	if err := authRepo.UpdateUserPassword(db, userID, newHash); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal update password")
	}

	return helpers.JsonOK(c, "Password berhasil diganti", nil)
}
