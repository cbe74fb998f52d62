package clinical

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospital/records/internal/platform/db"
)

type medicalRecordRepoPG struct {
	pool *pgxpool.Pool
}

func NewMedicalRecordRepo(pool *pgxpool.Pool) MedicalRecordRepository {
	return &medicalRecordRepoPG{pool: pool}
}

func (r *medicalRecordRepoPG) conn(ctx context.Context) db.Querier {
	return db.Resolve(ctx, r.pool)
}

func (r *medicalRecordRepoPG) Create(ctx context.Context, m *MedicalRecord) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO medical_records (patient_id, doctor_id, diagnosis, prescription, treatment, record_date, next_visit)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING record_id`,
		m.PatientID, m.DoctorID, m.Diagnosis, m.Prescription, m.Treatment, m.RecordDate, m.NextVisit,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert medical record: %w", err)
	}
	return nil
}

// ListByPatient joins against patients and doctors, so records whose
// references do not resolve are left out.
func (r *medicalRecordRepoPG) ListByPatient(ctx context.Context, patientID int64) ([]*MedicalRecordDetail, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT m.record_id, m.patient_id, m.doctor_id, m.diagnosis, m.prescription, m.treatment,
			m.record_date::text, m.next_visit::text,
			p.name, d.name
		FROM medical_records m
		JOIN patients p ON m.patient_id = p.patient_id
		JOIN doctors d ON m.doctor_id = d.doctor_id
		WHERE m.patient_id = $1
		ORDER BY m.record_id`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list medical records: %w", err)
	}
	defer rows.Close()

	items := make([]*MedicalRecordDetail, 0)
	for rows.Next() {
		var d MedicalRecordDetail
		if err := rows.Scan(&d.ID, &d.PatientID, &d.DoctorID, &d.Diagnosis, &d.Prescription,
			&d.Treatment, &d.RecordDate, &d.NextVisit, &d.PatientName, &d.DoctorName); err != nil {
			return nil, fmt.Errorf("scan medical record: %w", err)
		}
		items = append(items, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate medical records: %w", err)
	}
	return items, nil
}
