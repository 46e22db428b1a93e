// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	controller "kampusku_backend/internals/features/users/user/controller"
	authMw "kampusku_backend/internals/middlewares/auth"
)

// UserRoutes: manajemen user (coordinator only)
func UserRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	admin := app.Group("/api/c/users",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorCoordinator("manajemen user"), constants.CoordinatorOnly...),
	)
	admin.Get("/", ctrl.GetUsers)
	admin.Get("/:id", ctrl.GetUserByID)
	admin.Patch("/:id", ctrl.UpdateUser)
	admin.Patch("/:id/active", ctrl.SetUserActive)
	admin.Delete("/:id", ctrl.DeleteUser)
}
