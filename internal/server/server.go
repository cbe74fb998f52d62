// Package server assembles the HTTP API served by hospital-server.
package server

import (
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hospital/records/internal/config"
	"github.com/hospital/records/internal/domain/clinical"
	"github.com/hospital/records/internal/domain/dashboard"
	"github.com/hospital/records/internal/domain/identity"
	"github.com/hospital/records/internal/domain/scheduling"
	"github.com/hospital/records/internal/platform/db"
	"github.com/hospital/records/internal/platform/httperr"
	"github.com/hospital/records/internal/platform/middleware"
	"github.com/hospital/records/internal/platform/validate"
)

func init() {
	// Money is written as JSON numbers, never quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Options carries what New needs. Location and Now default to the local
// zone and time.Now.
type Options struct {
	Config   *config.Config
	Pool     *pgxpool.Pool
	Location *time.Location
	Now      func() time.Time
	Logger   zerolog.Logger
}

// New wires middleware, error rendering and every route onto a new echo
// instance.
func New(opts Options) *echo.Echo {
	cfg, pool, logger := opts.Config, opts.Pool, opts.Logger

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httperr.Handler(logger)
	e.Validator = validate.New()

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders(!cfg.IsDev()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderContentType, middleware.RequestIDHeader},
	}))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(middleware.RequestTimeout(cfg.RequestTimeout))
	if cfg.RateLimitRPS > 0 {
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimitRPS
		rl.BurstSize = cfg.RateLimitBurst
		e.Use(middleware.RateLimit(rl))
	}
	e.Use(db.ConnMiddleware(pool))

	api := e.Group("")

	identitySvc := identity.NewService(identity.NewPatientRepo(pool), identity.NewDoctorRepo(pool))
	identity.NewHandler(identitySvc).RegisterRoutes(api)

	schedulingSvc := scheduling.NewService(scheduling.NewAppointmentRepo(pool))
	scheduling.NewHandler(schedulingSvc).RegisterRoutes(api)

	clinicalSvc := clinical.NewService(clinical.NewMedicalRecordRepo(pool))
	clinical.NewHandler(clinicalSvc).RegisterRoutes(api)

	dashboardSvc := dashboard.NewService(dashboard.NewStatsRepo(pool), opts.Location, opts.Now)
	dashboard.NewHandler(dashboardSvc).RegisterRoutes(api)

	// DB health check endpoint
	e.GET("/health/db", db.HealthHandler(pool))

	return e
}
