package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/hospital/records/internal/platform/validate"
)

type Service struct {
	patients PatientRepository
	doctors  DoctorRepository
}

func NewService(patients PatientRepository, doctors DoctorRepository) *Service {
	return &Service{patients: patients, doctors: doctors}
}

// -- Patient --

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if strings.TrimSpace(p.Name) == "" {
		return validate.Field("name", "is required")
	}
	if p.Age != nil {
		if *p.Age < 0 {
			return validate.Field("age", "must be at least 0")
		}
		if *p.Age > MaxAge {
			return validate.Field("age", fmt.Sprintf("must be at most %d", MaxAge))
		}
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.patients.List(ctx)
}

// -- Doctor --

func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) error {
	if strings.TrimSpace(d.Name) == "" {
		return validate.Field("name", "is required")
	}
	if d.ConsultationFee != nil {
		if msg := validate.Money(*d.ConsultationFee); msg != "" {
			return validate.Field("consultation_fee", msg)
		}
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.doctors.List(ctx)
}
