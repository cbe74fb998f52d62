package scheduling

import (
	"context"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	// ListDetailed returns appointments whose patient and doctor both
	// exist, in id order.
	ListDetailed(ctx context.Context) ([]*AppointmentDetail, error)
}
