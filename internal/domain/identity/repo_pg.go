package identity

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospital/records/internal/platform/db"
)

// -- Patient Repository --

type patientRepoPG struct {
	pool *pgxpool.Pool
}

func NewPatientRepo(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{pool: pool}
}

func (r *patientRepoPG) conn(ctx context.Context) db.Querier {
	return db.Resolve(ctx, r.pool)
}

const patientCols = `patient_id, name, age, gender, contact, address, blood_group,
	emergency_contact, registered_date`

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO patients (name, age, gender, contact, address, blood_group, emergency_contact)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING patient_id, registered_date`,
		p.Name, p.Age, p.Gender, p.Contact, p.Address, p.BloodGroup, p.EmergencyContact,
	).Scan(&p.ID, &p.RegisteredDate)
	if err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

func (r *patientRepoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+patientCols+` FROM patients ORDER BY patient_id`)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	items := make([]*Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate patients: %w", err)
	}
	return items, nil
}

func (r *patientRepoPG) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM patients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count patients: %w", err)
	}
	return n, nil
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Age, &p.Gender, &p.Contact, &p.Address,
		&p.BloodGroup, &p.EmergencyContact, &p.RegisteredDate)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// -- Doctor Repository --

type doctorRepoPG struct {
	pool *pgxpool.Pool
}

func NewDoctorRepo(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepoPG{pool: pool}
}

func (r *doctorRepoPG) conn(ctx context.Context) db.Querier {
	return db.Resolve(ctx, r.pool)
}

const doctorCols = `doctor_id, name, specialization, contact, email, consultation_fee,
	available_days, available_time`

func (r *doctorRepoPG) Create(ctx context.Context, d *Doctor) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO doctors (name, specialization, contact, email, consultation_fee, available_days, available_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING doctor_id`,
		d.Name, d.Specialization, d.Contact, d.Email, d.ConsultationFee, d.AvailableDays, d.AvailableTime,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert doctor: %w", err)
	}
	return nil
}

func (r *doctorRepoPG) List(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+doctorCols+` FROM doctors ORDER BY doctor_id`)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	items := make([]*Doctor, 0)
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialization, &d.Contact, &d.Email,
			&d.ConsultationFee, &d.AvailableDays, &d.AvailableTime); err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		items = append(items, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate doctors: %w", err)
	}
	return items, nil
}
