// file: internals/features/classes/classes/route/class_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	classCtrl "kampusku_backend/internals/features/classes/classes/controller"
	inviteCtrl "kampusku_backend/internals/features/classes/invites/controller"
	rateLimiter "kampusku_backend/internals/middlewares"
	authMw "kampusku_backend/internals/middlewares/auth"
)

// ClassRoutes: manajemen kelas (teacher) + join/leave (student)
func ClassRoutes(app *fiber.App, db *gorm.DB) {
	classController := classCtrl.NewClassController(db)
	inviteController := inviteCtrl.NewInviteController(db)

	// 🔒 Teacher & coordinator
	teacher := app.Group("/api/t/classes",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorTeacher("manajemen kelas"), constants.TeacherAndAbove...),
	)
	teacher.Post("/", classController.CreateClass)
	teacher.Get("/", classController.GetMyClasses)
	teacher.Get("/:id", classController.GetClassByID)
	teacher.Patch("/:id", classController.UpdateClassByID)
	teacher.Delete("/:id", classController.DeleteClassByID)
	teacher.Get("/:id/members", classController.GetClassMembers)

	// Invite management (masih milik teacher)
	teacher.Post("/:id/invites", inviteController.CreateInvite)
	teacher.Get("/:id/invites", inviteController.GetClassInvites)
	teacher.Delete("/invites/:invite_id", inviteController.RevokeInvite)

	// 🔒 Student
	student := app.Group("/api/s/classes",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorStudent("kelas student"), constants.StudentOnly...),
	)
	student.Post("/join", rateLimiter.InviteJoinRateLimiter(), inviteController.JoinByCode)
	student.Get("/", classController.GetJoinedClasses)
	student.Get("/:id", classController.GetClassByID)
	student.Delete("/:id/leave", classController.LeaveClass)
}
