package repositories

import "context"

// DataResetter wipes application data. Used by the seed command.
type DataResetter interface {
	ResetAll(ctx context.Context) error
}
