package identity

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hospital/records/internal/platform/db"
)

func samplePatients() []*Patient {
	return []*Patient{
		{Name: "Ramesh Kumar", Age: intPtr(45), Gender: strPtr("Male"), Contact: strPtr("9876543210"),
			Address: strPtr("Chennai"), BloodGroup: strPtr("O+"), EmergencyContact: strPtr("9876543211")},
		{Name: "Priya Sharma", Age: intPtr(32), Gender: strPtr("Female"), Contact: strPtr("8765432109"),
			Address: strPtr("Bangalore"), BloodGroup: strPtr("A+"), EmergencyContact: strPtr("8765432110")},
	}
}

func sampleDoctors() []*Doctor {
	return []*Doctor{
		{Name: "Dr. Rajesh Khanna", Specialization: strPtr("Cardiology"), Contact: strPtr("9123456780"),
			Email: strPtr("dr.rajesh@hospital.com"), ConsultationFee: feePtr("800.00"),
			AvailableDays: strPtr("Mon,Wed,Fri"), AvailableTime: strPtr("09:00-13:00")},
		{Name: "Dr. Anjali Mehta", Specialization: strPtr("Pediatrics"), Contact: strPtr("9234567891"),
			Email: strPtr("dr.anjali@hospital.com"), ConsultationFee: feePtr("600.00"),
			AvailableDays: strPtr("Tue,Thu,Sat"), AvailableTime: strPtr("10:00-14:00")},
	}
}

// Seed inserts the sample patients and doctors when no patient exists yet.
// It reports whether rows were inserted.
func Seed(ctx context.Context, patients PatientRepository, doctors DoctorRepository) (bool, error) {
	n, err := patients.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	for _, p := range samplePatients() {
		if err := patients.Create(ctx, p); err != nil {
			return false, fmt.Errorf("seed patient %s: %w", p.Name, err)
		}
	}
	for _, d := range sampleDoctors() {
		if err := doctors.Create(ctx, d); err != nil {
			return false, fmt.Errorf("seed doctor %s: %w", d.Name, err)
		}
	}
	return true, nil
}

// SeedSamples runs Seed in a single transaction against pool.
func SeedSamples(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	var seeded bool
	err := db.WithTx(ctx, pool, func(ctx context.Context) error {
		var err error
		seeded, err = Seed(ctx, NewPatientRepo(pool), NewDoctorRepo(pool))
		return err
	})
	if err != nil {
		return fmt.Errorf("seed sample data: %w", err)
	}

	if seeded {
		logger.Info().
			Int("patients", len(samplePatients())).
			Int("doctors", len(sampleDoctors())).
			Msg("sample data inserted")
	} else {
		logger.Debug().Msg("patients present, sample data skipped")
	}
	return nil
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func feePtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
