package scheduling

import (
	"context"

	"github.com/hospital/records/internal/platform/validate"
)

type Service struct {
	appointments AppointmentRepository
}

func NewService(appointments AppointmentRepository) *Service {
	return &Service{appointments: appointments}
}

// CreateAppointment stores a with status Scheduled. Overlapping bookings
// and unknown patient or doctor ids are accepted.
func (s *Service) CreateAppointment(ctx context.Context, a *Appointment) error {
	if a.AppointmentDate != nil {
		if !validate.Date(*a.AppointmentDate) {
			return validate.Field("appointment_date", "must be a date in YYYY-MM-DD format")
		}
	}
	a.Status = StatusScheduled
	return s.appointments.Create(ctx, a)
}

func (s *Service) ListAppointments(ctx context.Context) ([]*AppointmentDetail, error) {
	return s.appointments.ListDetailed(ctx)
}
