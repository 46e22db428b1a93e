package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	controller "kampusku_backend/internals/features/academics/registry/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

// RegistryRoutes: katalog course resmi (read public, sync coordinator only)
func RegistryRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewRegistryController(db)

	public := app.Group("/api/registry")
	public.Get("/courses", ctrl.GetCourses)
	public.Get("/courses/:code", ctrl.GetCourseByCode)
	public.Get("/courses/:code/validate", ctrl.ValidateCourse)

	admin := app.Group("/api/registry",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorCoordinator("registry sync"), constants.CoordinatorOnly...),
	)
	admin.Post("/sync", ctrl.SyncNow)
}
