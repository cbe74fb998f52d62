package dashboard

import (
	"context"
	"time"
)

type Service struct {
	stats StatsRepository
	loc   *time.Location
	now   func() time.Time
}

// NewService builds a Service that evaluates "today" in loc using now.
// A nil loc means time.Local and a nil now means time.Now.
func NewService(stats StatsRepository, loc *time.Location, now func() time.Time) *Service {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &Service{stats: stats, loc: loc, now: now}
}

// Today returns the current calendar date in the service's location.
func (s *Service) Today() time.Time {
	t := s.now().In(s.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	return s.stats.Counts(ctx, s.Today())
}
