// file: internals/features/forms/forms/route/form_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	controller "kampusku_backend/internals/features/forms/forms/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

// FormRoutes: form/quiz — CRUD + koreksi (teacher), kerjakan (student)
func FormRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewFormController(db)

	// 🔒 Teacher & coordinator
	teacher := app.Group("/api/t/forms",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorTeacher("manajemen form"), constants.TeacherAndAbove...),
	)
	teacher.Post("/", ctrl.CreateForm)
	teacher.Get("/class/:class_id", ctrl.GetClassForms)
	teacher.Get("/:id", ctrl.GetFormDetail)
	teacher.Patch("/:id", ctrl.UpdateForm)
	teacher.Delete("/:id", ctrl.DeleteForm)

	// Koreksi & rekap
	teacher.Get("/:id/submissions", ctrl.GetFormSubmissions)
	teacher.Get("/:id/submissions/:submission_id", ctrl.GetSubmissionDetail)
	teacher.Post("/:id/submissions/:submission_id/correct", ctrl.CorrectSubmission)
	teacher.Get("/:id/stats", ctrl.GetFormStats)

	// 🔒 Student
	student := app.Group("/api/s/forms",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorStudent("pengerjaan form"), constants.StudentOnly...),
	)
	student.Get("/", ctrl.GetStudentForms)
	student.Get("/:id", ctrl.GetStudentFormDetail)
	student.Post("/:id/submit", ctrl.SubmitForm)
	student.Get("/:id/submission", ctrl.GetMySubmission)
}
