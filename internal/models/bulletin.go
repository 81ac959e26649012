package models

import "time"

// Bulletin is a row of the bulletins table, optionally joined with one
// reader's receipt.
type Bulletin struct {
	BulletinID   int64      `db:"bulletin_id"`
	Title        string     `db:"title"`
	BulletinDate time.Time  `db:"bulletin_date"`
	Brand        string     `db:"brand"`
	Category     string     `db:"category"`
	Active       bool       `db:"active"`
	ReadAt       *time.Time `db:"read_at"`
	Confirmed    *bool      `db:"confirmed"`
}
