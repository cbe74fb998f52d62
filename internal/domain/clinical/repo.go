package clinical

import (
	"context"
)

type MedicalRecordRepository interface {
	Create(ctx context.Context, m *MedicalRecord) error
	ListByPatient(ctx context.Context, patientID int64) ([]*MedicalRecordDetail, error)
}
