package billing

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hospital/records/internal/platform/db"
)

type billingRepoPG struct{ pool *pgxpool.Pool }

func NewBillingRepo(pool *pgxpool.Pool) BillingRepository { return &billingRepoPG{pool: pool} }

func (r *billingRepoPG) conn(ctx context.Context) db.Querier {
	return db.Resolve(ctx, r.pool)
}

const billCols = `bill_id, patient_id, appointment_id, consultation_fee, medicine_charges,
	other_charges, total_amount, payment_status, bill_date`

func (r *billingRepoPG) Create(ctx context.Context, b *Bill) error {
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO billing (patient_id, appointment_id, consultation_fee, medicine_charges,
			other_charges, total_amount, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING bill_id, bill_date`,
		b.PatientID, b.AppointmentID, b.ConsultationFee, b.MedicineCharges,
		b.OtherCharges, b.TotalAmount, b.PaymentStatus,
	).Scan(&b.ID, &b.BillDate)
	if err != nil {
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

func (r *billingRepoPG) ListByPatient(ctx context.Context, patientID int64) ([]*Bill, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+billCols+` FROM billing WHERE patient_id = $1 ORDER BY bill_id`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()

	items := make([]*Bill, 0)
	for rows.Next() {
		var b Bill
		if err := rows.Scan(&b.ID, &b.PatientID, &b.AppointmentID, &b.ConsultationFee,
			&b.MedicineCharges, &b.OtherCharges, &b.TotalAmount, &b.PaymentStatus, &b.BillDate); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		items = append(items, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bills: %w", err)
	}
	return items, nil
}
