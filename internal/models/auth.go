package models

import "github.com/golang-jwt/jwt/v5"

// LoginRequest holds the credential triple checked against the user
// collection. All three fields must match a single user exactly.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     Role   `json:"role" validate:"required"`
}

// LoginResponse returns the issued token, the principal and the initial view
// the client should route to for the principal's role.
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	ExpiresIn   int64    `json:"expires_in"`
	User        UserInfo `json:"user"`
	InitialView string   `json:"initial_view"`
}

// UserInfo describes the authenticated principal in responses.
type UserInfo struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// JWTClaims is the access-token payload.
type JWTClaims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	jwt.RegisteredClaims
}

// initialViews is the total routing table from role to the first view shown
// after login.
var initialViews = map[Role]string{
	RoleStudent:   "student-profile",
	RoleAdmin:     "admin-register",
	RoleFinance:   "finance-dashboard",
	RoleProfessor: "prof-dashboard",
}

// InitialView returns the initial view identifier for a role.
func InitialView(role Role) string {
	return initialViews[role]
}
