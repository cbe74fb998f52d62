package scheduling

import "time"

// StatusScheduled is the status every appointment is created with. No
// operation moves an appointment out of it.
const StatusScheduled = "Scheduled"

// Appointment maps to the appointments table. PatientID and DoctorID are
// not checked against existing rows. AppointmentTime is free text returned
// exactly as submitted.
type Appointment struct {
	ID              int64     `db:"appointment_id" json:"appointment_id"`
	PatientID       int64     `db:"patient_id" json:"patient_id"`
	DoctorID        int64     `db:"doctor_id" json:"doctor_id"`
	AppointmentDate *string   `db:"appointment_date" json:"appointment_date"`
	AppointmentTime *string   `db:"appointment_time" json:"appointment_time"`
	Status          string    `db:"status" json:"status"`
	Reason          *string   `db:"reason" json:"reason"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// AppointmentDetail is an appointment decorated with the names of the
// patient and doctor it references.
type AppointmentDetail struct {
	Appointment
	PatientName string `json:"patient_name"`
	DoctorName  string `json:"doctor_name"`
}

// CreateAppointmentRequest is the body of POST /add_appointment.
type CreateAppointmentRequest struct {
	PatientID       *int64  `json:"patient_id" validate:"required"`
	DoctorID        *int64  `json:"doctor_id" validate:"required"`
	AppointmentDate *string `json:"appointment_date" validate:"omitempty,isodate"`
	AppointmentTime *string `json:"appointment_time"`
	Reason          *string `json:"reason"`
}

func (r *CreateAppointmentRequest) toAppointment() *Appointment {
	a := &Appointment{
		AppointmentDate: r.AppointmentDate,
		AppointmentTime: r.AppointmentTime,
		Reason:          r.Reason,
	}
	if r.PatientID != nil {
		a.PatientID = *r.PatientID
	}
	if r.DoctorID != nil {
		a.DoctorID = *r.DoctorID
	}
	return a
}
