package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentProfileModel: data akademik student (course wajib valid di registry resmi)
type StudentProfileModel struct {
	StudentProfileID     uuid.UUID `gorm:"column:student_profile_id;type:uuid;primaryKey" json:"student_profile_id"`
	StudentProfileUserID uuid.UUID `gorm:"column:student_profile_user_id;type:uuid;not null;uniqueIndex" json:"student_profile_user_id"`

	// Nomor registrasi kampus (NIM / matricula)
	StudentProfileRegistrationNumber string `gorm:"column:student_profile_registration_number;size:30;not null" json:"student_profile_registration_number"`

	// Kode course resmi (FK logis ke registry_courses.registry_course_code)
	StudentProfileCourseCode string `gorm:"column:student_profile_course_code;size:20;not null;index" json:"student_profile_course_code"`

	// Periode/semester berjalan
	StudentProfilePeriod int `gorm:"column:student_profile_period;not null;default:1" json:"student_profile_period"`

	StudentProfileCreatedAt time.Time      `gorm:"column:student_profile_created_at;autoCreateTime" json:"student_profile_created_at"`
	StudentProfileUpdatedAt time.Time      `gorm:"column:student_profile_updated_at;autoUpdateTime" json:"student_profile_updated_at"`
	StudentProfileDeletedAt gorm.DeletedAt `gorm:"column:student_profile_deleted_at;index" json:"-"`
}

func (StudentProfileModel) TableName() string { return "student_profiles" }

func (s *StudentProfileModel) BeforeCreate(tx *gorm.DB) error {
	if s.StudentProfileID == uuid.Nil {
		s.StudentProfileID = uuid.New()
	}
	return nil
}
