package identity

import (
	"context"
)

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	List(ctx context.Context) ([]*Patient, error)
	Count(ctx context.Context) (int, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	List(ctx context.Context) ([]*Doctor, error)
}
