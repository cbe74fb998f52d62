package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospital/records/internal/platform/db"
)

type statsRepoPG struct {
	pool *pgxpool.Pool
}

func NewStatsRepo(pool *pgxpool.Pool) StatsRepository {
	return &statsRepoPG{pool: pool}
}

func (r *statsRepoPG) conn(ctx context.Context) db.Querier {
	return db.Resolve(ctx, r.pool)
}

func (r *statsRepoPG) Counts(ctx context.Context, today time.Time) (*Stats, error) {
	var s Stats
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM patients),
			(SELECT COUNT(*) FROM doctors),
			(SELECT COUNT(*) FROM appointments),
			(SELECT COUNT(*) FROM appointments WHERE appointment_date = $1::date)`,
		today.Format(time.DateOnly),
	).Scan(&s.TotalPatients, &s.TotalDoctors, &s.TotalAppointments, &s.TodayAppointments)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &s, nil
}
