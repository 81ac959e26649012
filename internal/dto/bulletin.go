package dto

import (
	"time"

	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	portssvc "github.com/SscSPs/sales_commissions_app/internal/core/ports/services"
	"github.com/SscSPs/sales_commissions_app/internal/utils/period"
)

// BulletinResponse is a bulletin with the reader's receipt state.
type BulletinResponse struct {
	BulletinID int64      `json:"bulletinID"`
	Title      string     `json:"title"`
	Date       string     `json:"date"`
	Brand      string     `json:"brand"`
	Category   string     `json:"category"`
	Read       bool       `json:"read"`
	ReadAt     *time.Time `json:"readAt"`
	Confirmed  bool       `json:"confirmed"`
}

// BulletinListResponse is the filtered bulletin list.
type BulletinListResponse struct {
	Meta      ListMeta           `json:"meta"`
	Count     int                `json:"count"`
	Bulletins []BulletinResponse `json:"bulletins"`
}

// ToBulletinResponse converts a domain.BulletinView.
func ToBulletinResponse(v domain.BulletinView) BulletinResponse {
	res := BulletinResponse{
		BulletinID: v.BulletinID,
		Title:      v.Title,
		Date:       v.Date.Format(period.DayLayout),
		Brand:      v.Brand,
		Category:   v.Category,
	}
	if v.Read != nil {
		readAt := v.Read.ReadAt
		res.Read = true
		res.ReadAt = &readAt
		res.Confirmed = v.Read.Confirmed
	}
	return res
}

// ToBulletinListResponse converts a bulletin page.
func ToBulletinListResponse(page *portssvc.BulletinPage) BulletinListResponse {
	res := BulletinListResponse{
		Meta:      ToListMeta(page.Spec),
		Count:     len(page.Bulletins),
		Bulletins: make([]BulletinResponse, len(page.Bulletins)),
	}
	for i, v := range page.Bulletins {
		res.Bulletins[i] = ToBulletinResponse(v)
	}
	return res
}
