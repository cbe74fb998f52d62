package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/hospital/records/internal/config"
	"github.com/hospital/records/internal/domain/billing"
	"github.com/hospital/records/internal/domain/identity"
	"github.com/hospital/records/internal/platform/db"
	"github.com/hospital/records/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "hospital-server",
		Short:        "Hospital record service",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(billingCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(dev bool, out io.Writer) zerolog.Logger {
	if dev {
		return zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()
	}
	return zerolog.New(out).With().Timestamp().Logger()
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openPool connects and makes sure the configured schema exists.
func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns, cfg.DBSchema)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(ctx, pool, cfg.DBSchema); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// migrationsFS returns the embedded migrations, or dir when it is set.
func migrationsFS(dir string) fs.FS {
	if dir == "" {
		return db.EmbeddedMigrations()
	}
	return os.DirFS(dir)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate, seed and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	// migrate up
	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := openPool(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			fmt.Printf("Running migrations on schema: %s\n", cfg.DBSchema)
			count, err := db.NewMigrator(pool, migrationsFS(dir)).Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "", "Migrations directory (defaults to the embedded set)")
	cmd.AddCommand(upCmd)

	// migrate status
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := openPool(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			statuses, err := db.NewMigrator(pool, migrationsFS(dir)).Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("Migration status for schema: %s\n", cfg.DBSchema)
			printStatuses(os.Stdout, statuses)
			return nil
		},
	}
	statusCmd.Flags().String("dir", "", "Migrations directory (defaults to the embedded set)")
	cmd.AddCommand(statusCmd)

	return cmd
}

func printStatuses(w io.Writer, statuses []db.MigrationStatus) {
	fmt.Fprintf(w, "%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
	fmt.Fprintln(w, "---------- ---------------------------------------- ---------- --------------------")
	for _, s := range statuses {
		status := "pending"
		appliedAt := ""
		if s.Applied {
			status = "applied"
			if s.AppliedAt != nil {
				appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
		}
		fmt.Fprintf(w, "%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample patients and doctors when none exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg.IsDev(), os.Stdout)

			ctx := context.Background()
			pool, err := openPool(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			return identity.SeedSamples(ctx, pool, logger)
		},
	}
}

func billingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Inspect billing rows",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List a patient's bills",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetInt64("patient-id")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := openPool(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			bills, err := billing.NewService(billing.NewBillingRepo(pool)).ListBills(ctx, patientID)
			if err != nil {
				return err
			}
			printBills(os.Stdout, bills)
			return nil
		},
	}
	listCmd.Flags().Int64("patient-id", 0, "Patient whose bills to list")
	_ = listCmd.MarkFlagRequired("patient-id")
	cmd.AddCommand(listCmd)

	return cmd
}

func printBills(w io.Writer, bills []*billing.Bill) {
	if len(bills) == 0 {
		fmt.Fprintln(w, "No bills found.")
		return
	}
	fmt.Fprintf(w, "%-8s %-12s %-12s %-12s %-12s %-12s %-10s %s\n",
		"BILL", "APPOINTMENT", "FEE", "MEDICINE", "OTHER", "TOTAL", "STATUS", "DATE")
	for _, b := range bills {
		appt := "-"
		if b.AppointmentID != nil {
			appt = fmt.Sprintf("%d", *b.AppointmentID)
		}
		fmt.Fprintf(w, "%-8d %-12s %-12s %-12s %-12s %-12s %-10s %s\n",
			b.ID, appt, money(b.ConsultationFee), money(b.MedicineCharges), money(b.OtherCharges),
			money(b.TotalAmount), b.PaymentStatus, b.BillDate.Format("2006-01-02"))
	}
}

func money(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return d.StringFixed(2)
}

func runServer() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.IsDev(), os.Stdout)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// Database
	ctx := context.Background()
	pool, err := openPool(ctx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("failed to connect to database")
		return err
	}
	defer pool.Close()
	logger.Info().Str("schema", cfg.DBSchema).Msg("connected to database")

	applied, err := db.NewMigrator(pool, db.EmbeddedMigrations()).Up(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("migration failed")
		return err
	}
	logger.Info().Int("applied", applied).Msg("migrations up to date")

	if cfg.SeedSampleData {
		if err := identity.SeedSamples(ctx, pool, logger); err != nil {
			logger.Error().Err(err).Msg("seeding failed")
			return err
		}
	}

	e := server.New(server.Options{Config: cfg, Pool: pool, Location: loc, Logger: logger})

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("timezone", loc.String()).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		logger.Error().Err(err).Msg("server error")
		return err
	}

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
