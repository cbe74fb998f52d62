package scheduling

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospital/records/internal/platform/db"
)

type appointmentRepoPG struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepo(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepoPG{pool: pool}
}

func (r *appointmentRepoPG) conn(ctx context.Context) db.Querier {
	return db.Resolve(ctx, r.pool)
}

func (r *appointmentRepoPG) Create(ctx context.Context, a *Appointment) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, appointment_date, appointment_time, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING appointment_id, created_at`,
		a.PatientID, a.DoctorID, a.AppointmentDate, a.AppointmentTime, a.Status, a.Reason,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepoPG) ListDetailed(ctx context.Context) ([]*AppointmentDetail, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT a.appointment_id, a.patient_id, a.doctor_id, a.appointment_date::text,
			a.appointment_time, a.status, a.reason, a.created_at,
			p.name, d.name
		FROM appointments a
		JOIN patients p ON a.patient_id = p.patient_id
		JOIN doctors d ON a.doctor_id = d.doctor_id
		ORDER BY a.appointment_id`)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	items := make([]*AppointmentDetail, 0)
	for rows.Next() {
		var d AppointmentDetail
		if err := rows.Scan(&d.ID, &d.PatientID, &d.DoctorID, &d.AppointmentDate,
			&d.AppointmentTime, &d.Status, &d.Reason, &d.CreatedAt,
			&d.PatientName, &d.DoctorName); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		items = append(items, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}
	return items, nil
}
