package models

// Role represents the portal roles used for login and RBAC.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleFinance   Role = "finance"
	RoleStudent   Role = "student"
	RoleProfessor Role = "professor"
)

// Valid returns true when the role is a supported value.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleFinance, RoleStudent, RoleProfessor:
		return true
	default:
		return false
	}
}

// User is the root of authentication. Passwords are stored and compared in
// clear text, mirroring the legacy portal; hardening is out of scope.
type User struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}
