package dto

import (
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
)

// LoginRequest holds a national ID (DNI) or username and a password.
type LoginRequest struct {
	Credential string `json:"credential" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	Landing   domain.Landing `json:"landing"`
	Person    PersonResponse `json:"person"`
}

// LandingResponse names the view a person should be sent to.
type LandingResponse struct {
	Landing domain.Landing `json:"landing"`
}

// RoleResponse is a role with its display label.
type RoleResponse struct {
	Code  domain.Role `json:"code"`
	Label string      `json:"label"`
}

// PersonResponse defines the data returned for a person.
type PersonResponse struct {
	PersonID    string         `json:"personID"`
	Username    string         `json:"username"`
	FirstName   string         `json:"firstName"`
	LastName    string         `json:"lastName"`
	DisplayName string         `json:"displayName"`
	Email       string         `json:"email"`
	Roles       []RoleResponse `json:"roles"`
	LastLoginAt *time.Time     `json:"lastLoginAt,omitempty"`
}

// CreatePersonRequest defines the data needed to register a person.
type CreatePersonRequest struct {
	Username   string        `json:"username" binding:"required,max=150"`
	FirstName  string        `json:"firstName" binding:"max=150"`
	LastName   string        `json:"lastName" binding:"max=150"`
	Email      string        `json:"email" binding:"omitempty,email"`
	Password   string        `json:"password" binding:"required"`
	Roles      []domain.Role `json:"roles" binding:"dive,oneof=SALESPERSON SALES_MANAGER GENERAL_MANAGER COMMERCIAL_DIRECTOR ADMIN"`
	NationalID string        `json:"nationalID" binding:"max=20"`
	Site       string        `json:"site"`
	Area       string        `json:"area" binding:"omitempty,oneof=ventas postventa"`
}

// ChangePasswordRequest defines the data needed to change one's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// ToRoleResponses labels a list of roles.
func ToRoleResponses(roles []domain.Role) []RoleResponse {
	res := make([]RoleResponse, len(roles))
	for i, role := range roles {
		res[i] = RoleResponse{Code: role, Label: role.Label()}
	}
	return res
}

// ToPersonResponse converts a domain.Person to PersonResponse DTO
func ToPersonResponse(p domain.Person) PersonResponse {
	return PersonResponse{
		PersonID:    p.PersonID,
		Username:    p.Username,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DisplayName: p.DisplayName(),
		Email:       p.Email,
		Roles:       ToRoleResponses(p.Roles),
		LastLoginAt: p.LastLoginAt,
	}
}
