package constants

import "fmt"

const (
	RoleSuperAdmin = "super_admin"
	RoleDirector   = "director"
	RoleProfessor  = "professor"
	RoleGuardian   = "guardian"
	RoleStudent    = "student"
)

// Plantillas de error por rol
const (
	ErrOnlyDirectorsCanAccess  = "❌ Solo el director de la academia puede acceder a %s."
	ErrOnlyStaffCanAccess      = "❌ Solo el director o un profesor pueden acceder a %s."
	ErrOnlySuperAdminCanAccess = "❌ Solo el super admin puede acceder a %s."
	ErrOnlyGuardiansCanAccess  = "❌ Solo un acudiente puede acceder a %s."
)

func RoleErrorDirector(feature string) string {
	return fmt.Sprintf(ErrOnlyDirectorsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminCanAccess, feature)
}

func RoleErrorGuardian(feature string) string {
	return fmt.Sprintf(ErrOnlyGuardiansCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleDirector,
		RoleProfessor,
		RoleGuardian,
		RoleStudent,
	}

	StaffRoles = []string{
		RoleDirector,
		RoleProfessor,
	}

	DirectorAndAbove = []string{
		RoleDirector,
		RoleSuperAdmin,
	}

	SuperAdminOnly = []string{
		RoleSuperAdmin,
	}

	GuardianOnly = []string{
		RoleGuardian,
	}
)
