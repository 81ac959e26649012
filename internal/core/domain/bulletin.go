package domain

import "time"

// Bulletin is a published notice.
type Bulletin struct {
	BulletinID int64     `json:"bulletinID"`
	Title      string    `json:"title"`
	Date       time.Time `json:"date"`
	Brand      string    `json:"brand"`
	Category   string    `json:"category"`
	Active     bool      `json:"active"`
}

// BulletinRead is a person's read receipt for a bulletin.
type BulletinRead struct {
	BulletinID int64     `json:"bulletinID"`
	PersonID   string    `json:"personID"`
	ReadAt     time.Time `json:"readAt"`
	Confirmed  bool      `json:"confirmed"`
}

// BulletinView is a bulletin together with the reader's receipt, if any.
type BulletinView struct {
	Bulletin
	Read *BulletinRead `json:"read,omitempty"`
}
