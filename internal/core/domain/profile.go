package domain

import (
	"regexp"
	"strings"
)

// Area values of a profile.
const (
	AreaSales     = "ventas"
	AreaAfterSale = "postventa"
)

// ValidArea reports whether area is one of the profile areas.
func ValidArea(area string) bool {
	return area == AreaSales || area == AreaAfterSale
}

// Profile extends a Person with HR data and the denormalized hierarchy chain
// salesperson -> supervisor (sales manager) -> manager -> director.
//
// ManagerID and DirectorID are derived from SupervisorID when a profile is
// saved; they are only taken as given at the top of the chain.
type Profile struct {
	PersonID           string  `json:"personID"`
	NationalID         string  `json:"nationalID"`
	Phone              string  `json:"phone"`
	Site               string  `json:"site"`
	Area               string  `json:"area"`
	SupervisorID       *string `json:"supervisorID,omitempty"`
	ManagerID          *string `json:"managerID,omitempty"`
	DirectorID         *string `json:"directorID,omitempty"`
	InitialProfileSeen bool    `json:"initialProfileSeen"`
	PhotoPath          *string `json:"photoPath,omitempty"`
	AuditFields
}

// ProfileView is a profile with the people it references already loaded.
type ProfileView struct {
	Person     Person
	Profile    Profile
	Supervisor *Person
	Manager    *Person
	Director   *Person
}

var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]{7,20}$`)

// ValidPhone reports whether phone is an acceptable contact number. An
// empty phone is valid.
func ValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	return phone == "" || phonePattern.MatchString(phone)
}

// References returns the set hierarchy links of the profile.
func (p Profile) References() []string {
	var ids []string
	for _, ref := range []*string{p.SupervisorID, p.ManagerID, p.DirectorID} {
		if ref != nil {
			ids = append(ids, *ref)
		}
	}
	return ids
}
