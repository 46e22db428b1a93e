package migrations

import (
	"log"

	"gorm.io/gorm"

	registryModel "kampusku_backend/internals/features/academics/registry/model"
	classModel "kampusku_backend/internals/features/classes/classes/model"
	inviteModel "kampusku_backend/internals/features/classes/invites/model"
	formModel "kampusku_backend/internals/features/forms/forms/model"
	authModel "kampusku_backend/internals/features/users/auth/model"
	userModel "kampusku_backend/internals/features/users/user/model"
)

// Run menjalankan migrasi skema (urutan mengikuti dependensi FK logis).
func Run(db *gorm.DB) error {
	log.Println("🧱 Menjalankan migrasi skema...")

	// ekstensi uuid hanya relevan di Postgres
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
			log.Printf("⚠️ Gagal create extension pgcrypto: %v", err)
		}
	}

	if err := db.AutoMigrate(
		// users & auth
		&userModel.UserModel{},
		&userModel.StudentProfileModel{},
		&authModel.RefreshToken{},
		&authModel.TokenBlacklist{},

		// registry course resmi
		&registryModel.RegistryCourseModel{},

		// kelas & invite
		&classModel.ClassModel{},
		&classModel.ClassStudentModel{},
		&inviteModel.ClassInviteModel{},

		// forms (core)
		&formModel.FormModel{},
		&formModel.FormQuestionModel{},
		&formModel.FormQuestionOptionModel{},
		&formModel.FormSubmissionModel{},
		&formModel.FormAnswerModel{},
	); err != nil {
		return err
	}

	log.Println("✅ Migrasi selesai.")
	return nil
}
