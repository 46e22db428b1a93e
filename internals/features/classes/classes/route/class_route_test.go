// file: internals/features/classes/classes/route/class_route_test.go
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
	inviteModel "kampusku_backend/internals/features/classes/invites/model"
	inviteService "kampusku_backend/internals/features/classes/invites/service"
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
		&inviteModel.ClassInviteModel{},
	))

	app := fiber.New()
	ClassRoutes(app, db)
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

func newClass(t *testing.T, db *gorm.DB, teacherID uuid.UUID) *classModel.ClassModel {
	t.Helper()
	class := &classModel.ClassModel{
		ClassName:       "Basis Data B",
		ClassSubject:    "Basis Data",
		ClassPeriod:     "2026.2",
		ClassCourseCode: "CS202",
		ClassTeacherID:  teacherID,
	}
	require.NoError(t, db.Create(class).Error)
	return class
}

func postJoin(t *testing.T, app *fiber.App, token, code string) *http.Response {
	t.Helper()
	raw, err := json.Marshal(fiber.Map{"code": code})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/s/classes/join", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req, 5000)
	require.NoError(t, err)
	io.Copy(io.Discard, res.Body)
	res.Body.Close()
	return res
}

func TestJoinRoute_StatusMapping(t *testing.T) {
	app, db := newTestApp(t)
	teacher := newUser(t, db, "teacher")
	class := newClass(t, db, teacher.ID)

	invite, err := inviteService.CreateInvite(db, class.ClassID, teacher.ID,
		time.Now().UTC().Add(24*time.Hour), 1)
	require.NoError(t, err)

	s1 := newUser(t, db, "student")
	s2 := newUser(t, db, "student")

	t.Run("teacher ditolak role gate 403", func(t *testing.T) {
		res := postJoin(t, app, tokenFor(t, teacher), invite.ClassInviteCode)
		assert.Equal(t, fiber.StatusForbidden, res.StatusCode)
	})

	t.Run("kode tidak dikenal 404", func(t *testing.T) {
		res := postJoin(t, app, tokenFor(t, s1), "TIDAKADA")
		assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
	})

	t.Run("join pertama 201", func(t *testing.T) {
		res := postJoin(t, app, tokenFor(t, s1), invite.ClassInviteCode)
		assert.Equal(t, fiber.StatusCreated, res.StatusCode)
	})

	t.Run("sudah jadi anggota 409", func(t *testing.T) {
		res := postJoin(t, app, tokenFor(t, s1), invite.ClassInviteCode)
		assert.Equal(t, fiber.StatusConflict, res.StatusCode)
	})

	t.Run("kuota habis 409", func(t *testing.T) {
		res := postJoin(t, app, tokenFor(t, s2), invite.ClassInviteCode)
		assert.Equal(t, fiber.StatusConflict, res.StatusCode)
	})

	t.Run("kedaluwarsa 410", func(t *testing.T) {
		expired := &inviteModel.ClassInviteModel{
			ClassInviteClassID:   class.ClassID,
			ClassInviteCreatedBy: teacher.ID,
			ClassInviteCode:      "KDLWRSA8",
			ClassInviteExpiresAt: time.Now().UTC().Add(-time.Hour),
			ClassInviteMaxUses:   5,
			ClassInviteActive:    true,
		}
		require.NoError(t, db.Create(expired).Error)
		res := postJoin(t, app, tokenFor(t, s2), expired.ClassInviteCode)
		assert.Equal(t, fiber.StatusGone, res.StatusCode)
	})

	t.Run("sudah dicabut 410", func(t *testing.T) {
		revoked, err := inviteService.CreateInvite(db, class.ClassID, teacher.ID,
			time.Now().UTC().Add(24*time.Hour), 5)
		require.NoError(t, err)
		require.NoError(t, db.Model(&inviteModel.ClassInviteModel{}).
			Where("class_invite_id = ?", revoked.ClassInviteID).
			Update("class_invite_active", false).Error)
		res := postJoin(t, app, tokenFor(t, s2), revoked.ClassInviteCode)
		assert.Equal(t, fiber.StatusGone, res.StatusCode)
	})
}
