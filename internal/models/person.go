package models

import "time"

// Person is a row of the persons table.
type Person struct {
	PersonID     string     `db:"person_id"`
	Username     string     `db:"username"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Roles        []string   `db:"roles"`
	IsActive     bool       `db:"is_active"`
	LastLoginAt  *time.Time `db:"last_login_at"`
	AuditFields
}

// Profile is a row of the profiles table.
type Profile struct {
	PersonID           string  `db:"person_id"`
	NationalID         string  `db:"national_id"`
	Phone              string  `db:"phone"`
	Site               string  `db:"site"`
	Area               string  `db:"area"`
	SupervisorID       *string `db:"supervisor_id"`
	ManagerID          *string `db:"manager_id"`
	DirectorID         *string `db:"director_id"`
	InitialProfileSeen bool    `db:"initial_profile_seen"`
	PhotoPath          *string `db:"photo_path"`
	AuditFields
}
