package dashboard

import (
	"context"
	"time"
)

type StatsRepository interface {
	// Counts returns table totals plus the number of appointments dated on
	// the calendar day of today.
	Counts(ctx context.Context, today time.Time) (*Stats, error)
}
