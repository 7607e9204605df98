package models

// Role defines the closed set of user roles.
type Role string

const (
	RoleStudent           Role = "student"
	RoleLecturer          Role = "lecturer"
	RolePrincipalLecturer Role = "principal_lecturer"
	RoleProgramLeader     Role = "program_leader"
)

// AllRoles lists every valid role, in registration-form order.
var AllRoles = []Role{RoleStudent, RoleLecturer, RolePrincipalLecturer, RoleProgramLeader}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}
