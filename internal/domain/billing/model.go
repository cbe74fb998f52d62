package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentPending is the status a bill is created with.
const PaymentPending = "Pending"

// Bill maps to the billing table. AppointmentID is optional and, like
// PatientID, not checked against existing rows.
type Bill struct {
	ID              int64            `db:"bill_id" json:"bill_id"`
	PatientID       int64            `db:"patient_id" json:"patient_id"`
	AppointmentID   *int64           `db:"appointment_id" json:"appointment_id"`
	ConsultationFee *decimal.Decimal `db:"consultation_fee" json:"consultation_fee"`
	MedicineCharges *decimal.Decimal `db:"medicine_charges" json:"medicine_charges"`
	OtherCharges    *decimal.Decimal `db:"other_charges" json:"other_charges"`
	TotalAmount     *decimal.Decimal `db:"total_amount" json:"total_amount"`
	PaymentStatus   string           `db:"payment_status" json:"payment_status"`
	BillDate        time.Time        `db:"bill_date" json:"bill_date"`
}
