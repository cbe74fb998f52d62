package clinical

import (
	"context"

	"github.com/hospital/records/internal/platform/validate"
)

type Service struct {
	records MedicalRecordRepository
}

func NewService(records MedicalRecordRepository) *Service {
	return &Service{records: records}
}

func (s *Service) CreateMedicalRecord(ctx context.Context, m *MedicalRecord) error {
	dates := []struct {
		field string
		value *string
	}{
		{"record_date", m.RecordDate},
		{"next_visit", m.NextVisit},
	}

	verrs := &validate.Errors{}
	for _, d := range dates {
		if d.value == nil {
			continue
		}
		if !validate.Date(*d.value) {
			verrs.Fields = append(verrs.Fields, validate.FieldError{Field: d.field, Message: "must be a date in YYYY-MM-DD format"})
		}
	}
	if len(verrs.Fields) > 0 {
		return verrs
	}
	return s.records.Create(ctx, m)
}

// ListMedicalRecords returns the patient's records. Unknown patient ids
// yield an empty list.
func (s *Service) ListMedicalRecords(ctx context.Context, patientID int64) ([]*MedicalRecordDetail, error) {
	return s.records.ListByPatient(ctx, patientID)
}
