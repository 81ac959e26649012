package dto

import (
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
)

// PersonRef is a referenced person in the hierarchy.
type PersonRef struct {
	PersonID    string `json:"personID"`
	DisplayName string `json:"displayName"`
}

// ProfileResponse is a person's profile with the hierarchy resolved to names.
type ProfileResponse struct {
	Person             PersonResponse `json:"person"`
	NationalID         string         `json:"nationalID"`
	Phone              string         `json:"phone"`
	Site               string         `json:"site"`
	Area               string         `json:"area"`
	Supervisor         *PersonRef     `json:"supervisor"`
	Manager            *PersonRef     `json:"manager"`
	Director           *PersonRef     `json:"director"`
	InitialProfileSeen bool           `json:"initialProfileSeen"`
}

// UpdateMyProfileRequest holds the fields a person may edit on their own profile.
type UpdateMyProfileRequest struct {
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"phone"`
}

// AssignHierarchyRequest is an administrator's hierarchy assignment. Nil
// links are cleared; nil optional fields are kept.
type AssignHierarchyRequest struct {
	SupervisorID *string `json:"supervisorID"`
	ManagerID    *string `json:"managerID"`
	DirectorID   *string `json:"directorID"`
	NationalID   *string `json:"nationalID" binding:"omitempty,max=20"`
	Site         *string `json:"site"`
	Area         *string `json:"area" binding:"omitempty,oneof=ventas postventa"`
}

// HierarchyProfileResponse is a saved profile as administrators see it.
type HierarchyProfileResponse struct {
	PersonID     string  `json:"personID"`
	NationalID   string  `json:"nationalID"`
	Site         string  `json:"site"`
	Area         string  `json:"area"`
	SupervisorID *string `json:"supervisorID"`
	ManagerID    *string `json:"managerID"`
	DirectorID   *string `json:"directorID"`
}

func toPersonRef(p *domain.Person) *PersonRef {
	if p == nil {
		return nil
	}
	return &PersonRef{PersonID: p.PersonID, DisplayName: p.DisplayName()}
}

// ToProfileResponse converts a loaded profile view.
func ToProfileResponse(v domain.ProfileView) ProfileResponse {
	return ProfileResponse{
		Person:             ToPersonResponse(v.Person),
		NationalID:         v.Profile.NationalID,
		Phone:              v.Profile.Phone,
		Site:               v.Profile.Site,
		Area:               v.Profile.Area,
		Supervisor:         toPersonRef(v.Supervisor),
		Manager:            toPersonRef(v.Manager),
		Director:           toPersonRef(v.Director),
		InitialProfileSeen: v.Profile.InitialProfileSeen,
	}
}

// ToHierarchyProfileResponse converts a domain.Profile.
func ToHierarchyProfileResponse(p domain.Profile) HierarchyProfileResponse {
	return HierarchyProfileResponse{
		PersonID:     p.PersonID,
		NationalID:   p.NationalID,
		Site:         p.Site,
		Area:         p.Area,
		SupervisorID: p.SupervisorID,
		ManagerID:    p.ManagerID,
		DirectorID:   p.DirectorID,
	}
}

// ToHierarchyProfileResponses converts a slice of profiles.
func ToHierarchyProfileResponses(profiles []domain.Profile) []HierarchyProfileResponse {
	res := make([]HierarchyProfileResponse, len(profiles))
	for i, p := range profiles {
		res[i] = ToHierarchyProfileResponse(p)
	}
	return res
}
