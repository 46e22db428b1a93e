package constants

import "fmt"

const (
	RoleStudent     = "student"
	RoleTeacher     = "teacher"
	RoleCoordinator = "coordinator"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess     = "❌ Hanya teacher atau coordinator yang boleh mengakses fitur %s."
	ErrOnlyCoordinatorsCanAccess = "❌ Hanya coordinator yang boleh mengakses fitur %s."
	ErrOnlyStudentsCanAccess     = "❌ Hanya student yang boleh mengakses fitur %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorCoordinator(feature string) string {
	return fmt.Sprintf(ErrOnlyCoordinatorsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleTeacher,
		RoleCoordinator,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleCoordinator,
	}

	CoordinatorOnly = []string{
		RoleCoordinator,
	}

	StudentOnly = []string{
		RoleStudent,
	}
)
