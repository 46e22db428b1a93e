// file: internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	registryRoute "kampusku_backend/internals/features/academics/registry/route"
	classRoute "kampusku_backend/internals/features/classes/classes/route"
	formRoute "kampusku_backend/internals/features/forms/forms/route"
	authRoute "kampusku_backend/internals/features/users/auth/route"
	userRoute "kampusku_backend/internals/features/users/user/route"
)

// SetupRoutes mendaftarkan semua route aplikasi.
// Prefix: /api/auth (umum), /api/registry (katalog), /api/t (teacher),
// /api/s (student), /api/c (coordinator).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)
	registryRoute.RegistryRoutes(app, db)
	classRoute.ClassRoutes(app, db)
	formRoute.FormRoutes(app, db)
	userRoute.UserRoutes(app, db)

	log.Println("[INFO] ✅ Semua route terdaftar")
}
