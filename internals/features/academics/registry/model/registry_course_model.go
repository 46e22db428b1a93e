package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RegistryCourseModel: tabel course resmi hasil sinkron dari registry eksternal.
// Dipakai untuk validasi course yang dideklarasikan student saat register.
type RegistryCourseModel struct {
	RegistryCourseID uuid.UUID `gorm:"column:registry_course_id;type:uuid;primaryKey" json:"registry_course_id"`

	// Kode resmi (unik, kunci validasi)
	RegistryCourseCode string `gorm:"column:registry_course_code;size:20;not null;uniqueIndex" json:"registry_course_code"`
	RegistryCourseName string `gorm:"column:registry_course_name;size:160;not null;index" json:"registry_course_name"`

	// bachelor | licentiate | technologist | master | doctorate
	RegistryCourseDegree string `gorm:"column:registry_course_degree;size:30;not null" json:"registry_course_degree"`
	// on_campus | distance | hybrid
	RegistryCourseModality    string `gorm:"column:registry_course_modality;size:20;not null;default:'on_campus'" json:"registry_course_modality"`
	RegistryCourseInstitution string `gorm:"column:registry_course_institution;size:160" json:"registry_course_institution"`

	// Kampus penyelenggara (array text di Postgres)
	RegistryCourseCampuses pq.StringArray `gorm:"column:registry_course_campuses;type:text[]" json:"registry_course_campuses,omitempty"`

	// Snapshot payload mentah dari sumber (audit sinkronisasi)
	RegistryCourseSourcePayload datatypes.JSON `gorm:"column:registry_course_source_payload;type:jsonb" json:"-"`

	RegistryCourseActive   bool      `gorm:"column:registry_course_active;not null;default:true" json:"registry_course_active"`
	RegistryCourseSyncedAt time.Time `gorm:"column:registry_course_synced_at" json:"registry_course_synced_at"`

	RegistryCourseCreatedAt time.Time      `gorm:"column:registry_course_created_at;autoCreateTime" json:"registry_course_created_at"`
	RegistryCourseUpdatedAt time.Time      `gorm:"column:registry_course_updated_at;autoUpdateTime" json:"registry_course_updated_at"`
	RegistryCourseDeletedAt gorm.DeletedAt `gorm:"column:registry_course_deleted_at;index" json:"-"`
}

func (RegistryCourseModel) TableName() string { return "registry_courses" }

func (m *RegistryCourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.RegistryCourseID == uuid.Nil {
		m.RegistryCourseID = uuid.New()
	}
	return nil
}
