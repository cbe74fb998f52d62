package billing

import (
	"context"
)

type BillingRepository interface {
	Create(ctx context.Context, b *Bill) error
	ListByPatient(ctx context.Context, patientID int64) ([]*Bill, error)
}
