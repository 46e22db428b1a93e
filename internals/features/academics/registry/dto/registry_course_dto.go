package dto

import (
	"time"

	"github.com/google/uuid"

	model "kampusku_backend/internals/features/academics/registry/model"
)

type RegistryCourseDTO struct {
	RegistryCourseID          uuid.UUID `json:"registry_course_id"`
	RegistryCourseCode        string    `json:"registry_course_code"`
	RegistryCourseName        string    `json:"registry_course_name"`
	RegistryCourseDegree      string    `json:"registry_course_degree"`
	RegistryCourseModality    string    `json:"registry_course_modality"`
	RegistryCourseInstitution string    `json:"registry_course_institution"`
	RegistryCourseCampuses    []string  `json:"registry_course_campuses,omitempty"`
	RegistryCourseActive      bool      `json:"registry_course_active"`
	RegistryCourseSyncedAt    time.Time `json:"registry_course_synced_at"`
}

func ToRegistryCourseDTO(m model.RegistryCourseModel) RegistryCourseDTO {
	return RegistryCourseDTO{
		RegistryCourseID:          m.RegistryCourseID,
		RegistryCourseCode:        m.RegistryCourseCode,
		RegistryCourseName:        m.RegistryCourseName,
		RegistryCourseDegree:      m.RegistryCourseDegree,
		RegistryCourseModality:    m.RegistryCourseModality,
		RegistryCourseInstitution: m.RegistryCourseInstitution,
		RegistryCourseCampuses:    m.RegistryCourseCampuses,
		RegistryCourseActive:      m.RegistryCourseActive,
		RegistryCourseSyncedAt:    m.RegistryCourseSyncedAt,
	}
}
