package domain

import (
	"strings"
	"time"
)

// Role is a group membership that drives access control and landing pages.
type Role string

const (
	RoleSalesperson        Role = "SALESPERSON"
	RoleSalesManager       Role = "SALES_MANAGER"
	RoleGeneralManager     Role = "GENERAL_MANAGER"
	RoleCommercialDirector Role = "COMMERCIAL_DIRECTOR"
	RoleAdmin              Role = "ADMIN"
)

// AllRoles lists every role in hierarchy order, admin last.
var AllRoles = []Role{RoleSalesperson, RoleSalesManager, RoleGeneralManager, RoleCommercialDirector, RoleAdmin}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// Label returns the display label of the role.
func (r Role) Label() string {
	return RoleLabels.Label(string(r))
}

// Person is a system user.
type Person struct {
	PersonID     string     `json:"personID"` // Primary Key (UUID)
	Username     string     `json:"username"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Roles        []Role     `json:"roles"`
	IsActive     bool       `json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	AuditFields
}

// FullName joins first and last name.
func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// DisplayName is the full name, or the username when no name is recorded.
func (p Person) DisplayName() string {
	if name := p.FullName(); name != "" {
		return name
	}
	return p.Username
}

// HasRole reports whether the person holds any of the given roles.
func (p Person) HasRole(roles ...Role) bool {
	return hasAnyRole(p.Roles, roles)
}

// Actor is the authenticated person on whose behalf a request runs.
// Every data-scoping service call receives one explicitly.
type Actor struct {
	PersonID string
	Roles    []Role
}

// ActorFor builds the actor of a loaded person.
func ActorFor(p Person) Actor {
	roles := make([]Role, len(p.Roles))
	copy(roles, p.Roles)
	return Actor{PersonID: p.PersonID, Roles: roles}
}

// HasRole reports whether the actor holds any of the given roles.
func (a Actor) HasRole(roles ...Role) bool {
	return hasAnyRole(a.Roles, roles)
}

// IsManagement is true for general managers, commercial directors and admins.
func (a Actor) IsManagement() bool {
	return a.HasRole(RoleGeneralManager, RoleCommercialDirector, RoleAdmin)
}

// IsSalesTeam is true for salespeople and sales managers.
func (a Actor) IsSalesTeam() bool {
	return a.HasRole(RoleSalesperson, RoleSalesManager)
}

// Landing names the view a person is sent to after login.
type Landing string

const (
	LandingSales                 Landing = "sales"
	LandingManagementCommissions Landing = "management_commissions"
	LandingProfile               Landing = "profile"
)

// Landing picks the first view the actor should see. Sales team membership
// wins over management.
func (a Actor) Landing() Landing {
	switch {
	case a.IsSalesTeam():
		return LandingSales
	case a.IsManagement():
		return LandingManagementCommissions
	default:
		return LandingProfile
	}
}

func hasAnyRole(held []Role, wanted []Role) bool {
	for _, h := range held {
		for _, w := range wanted {
			if h == w {
				return true
			}
		}
	}
	return false
}
