package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/hospital/records/internal/platform/validate"
)

type Service struct {
	bills BillingRepository
}

func NewService(bills BillingRepository) *Service {
	return &Service{bills: bills}
}

// CreateBill stores b. A missing total is filled in as the sum of the
// charges that are present; a missing payment status becomes Pending.
func (s *Service) CreateBill(ctx context.Context, b *Bill) error {
	if b.PatientID == 0 {
		return validate.Field("patient_id", "is required")
	}

	charges := []struct {
		field string
		value *decimal.Decimal
	}{
		{"consultation_fee", b.ConsultationFee},
		{"medicine_charges", b.MedicineCharges},
		{"other_charges", b.OtherCharges},
		{"total_amount", b.TotalAmount},
	}
	verrs := &validate.Errors{}
	for _, c := range charges {
		if c.value == nil {
			continue
		}
		if msg := validate.Money(*c.value); msg != "" {
			verrs.Fields = append(verrs.Fields, validate.FieldError{Field: c.field, Message: msg})
		}
	}
	if len(verrs.Fields) > 0 {
		return verrs
	}

	if b.TotalAmount == nil {
		total := Total(b.ConsultationFee, b.MedicineCharges, b.OtherCharges)
		if msg := validate.Money(total); msg != "" {
			return validate.Field("total_amount", msg)
		}
		b.TotalAmount = &total
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = PaymentPending
	}
	return s.bills.Create(ctx, b)
}

func (s *Service) ListBills(ctx context.Context, patientID int64) ([]*Bill, error) {
	return s.bills.ListByPatient(ctx, patientID)
}

// Total adds the given amounts, treating nil as zero.
func Total(amounts ...*decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range amounts {
		if a != nil {
			sum = sum.Add(*a)
		}
	}
	return sum
}
