package identity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxAge is the largest age a patient may be registered with.
const MaxAge = 150

// Patient maps to the patients table.
type Patient struct {
	ID               int64     `db:"patient_id" json:"patient_id"`
	Name             string    `db:"name" json:"name"`
	Age              *int      `db:"age" json:"age"`
	Gender           *string   `db:"gender" json:"gender"`
	Contact          *string   `db:"contact" json:"contact"`
	Address          *string   `db:"address" json:"address"`
	BloodGroup       *string   `db:"blood_group" json:"blood_group"`
	EmergencyContact *string   `db:"emergency_contact" json:"emergency_contact"`
	RegisteredDate   time.Time `db:"registered_date" json:"registered_date"`
}

// Doctor maps to the doctors table. AvailableDays is a comma-separated list
// of day tokens such as "Mon,Wed,Fri".
type Doctor struct {
	ID              int64            `db:"doctor_id" json:"doctor_id"`
	Name            string           `db:"name" json:"name"`
	Specialization  *string          `db:"specialization" json:"specialization"`
	Contact         *string          `db:"contact" json:"contact"`
	Email           *string          `db:"email" json:"email"`
	ConsultationFee *decimal.Decimal `db:"consultation_fee" json:"consultation_fee"`
	AvailableDays   *string          `db:"available_days" json:"available_days"`
	AvailableTime   *string          `db:"available_time" json:"available_time"`
}

// CreatePatientRequest is the body of POST /add_patient. Pointer fields
// distinguish an absent key from a zero value.
type CreatePatientRequest struct {
	Name             *string `json:"name" validate:"required,notblank"`
	Age              *int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender           *string `json:"gender"`
	Contact          *string `json:"contact"`
	Address          *string `json:"address"`
	BloodGroup       *string `json:"blood_group"`
	EmergencyContact *string `json:"emergency_contact"`
}

func (r *CreatePatientRequest) toPatient() *Patient {
	p := &Patient{
		Age:              r.Age,
		Gender:           r.Gender,
		Contact:          r.Contact,
		Address:          r.Address,
		BloodGroup:       r.BloodGroup,
		EmergencyContact: r.EmergencyContact,
	}
	if r.Name != nil {
		p.Name = *r.Name
	}
	return p
}

// CreateDoctorRequest is the body of POST /add_doctor.
type CreateDoctorRequest struct {
	Name            *string          `json:"name" validate:"required,notblank"`
	Specialization  *string          `json:"specialization"`
	Contact         *string          `json:"contact"`
	Email           *string          `json:"email"`
	ConsultationFee *decimal.Decimal `json:"consultation_fee"`
	AvailableDays   *string          `json:"available_days"`
	AvailableTime   *string          `json:"available_time"`
}

func (r *CreateDoctorRequest) toDoctor() *Doctor {
	d := &Doctor{
		Specialization:  r.Specialization,
		Contact:         r.Contact,
		Email:           r.Email,
		ConsultationFee: r.ConsultationFee,
		AvailableDays:   r.AvailableDays,
		AvailableTime:   r.AvailableTime,
	}
	if r.Name != nil {
		d.Name = *r.Name
	}
	return d
}
