package clinical

// MedicalRecord maps to the medical_records table. Dates are YYYY-MM-DD.
type MedicalRecord struct {
	ID           int64   `db:"record_id" json:"record_id"`
	PatientID    int64   `db:"patient_id" json:"patient_id"`
	DoctorID     int64   `db:"doctor_id" json:"doctor_id"`
	Diagnosis    *string `db:"diagnosis" json:"diagnosis"`
	Prescription *string `db:"prescription" json:"prescription"`
	Treatment    *string `db:"treatment" json:"treatment"`
	RecordDate   *string `db:"record_date" json:"record_date"`
	NextVisit    *string `db:"next_visit" json:"next_visit"`
}

// MedicalRecordDetail adds the patient and doctor names to a record.
type MedicalRecordDetail struct {
	MedicalRecord
	PatientName string `json:"patient_name"`
	DoctorName  string `json:"doctor_name"`
}

// CreateMedicalRecordRequest is the body of POST /add_medical_record.
type CreateMedicalRecordRequest struct {
	PatientID    *int64  `json:"patient_id" validate:"required"`
	DoctorID     *int64  `json:"doctor_id" validate:"required"`
	Diagnosis    *string `json:"diagnosis"`
	Prescription *string `json:"prescription"`
	Treatment    *string `json:"treatment"`
	RecordDate   *string `json:"record_date" validate:"omitempty,isodate"`
	NextVisit    *string `json:"next_visit" validate:"omitempty,isodate"`
}

func (r *CreateMedicalRecordRequest) toRecord() *MedicalRecord {
	m := &MedicalRecord{
		Diagnosis:    r.Diagnosis,
		Prescription: r.Prescription,
		Treatment:    r.Treatment,
		RecordDate:   r.RecordDate,
		NextVisit:    r.NextVisit,
	}
	if r.PatientID != nil {
		m.PatientID = *r.PatientID
	}
	if r.DoctorID != nil {
		m.DoctorID = *r.DoctorID
	}
	return m
}
