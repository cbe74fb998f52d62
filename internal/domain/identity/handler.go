package identity

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/add_patient", h.AddPatient)
	g.GET("/get_patients", h.GetPatients)
	g.POST("/add_doctor", h.AddDoctor)
	g.GET("/get_doctors", h.GetDoctors)
}

type patientCreated struct {
	Message   string `json:"message"`
	PatientID int64  `json:"patient_id"`
}

type doctorCreated struct {
	Message  string `json:"message"`
	DoctorID int64  `json:"doctor_id"`
}

func (h *Handler) AddPatient(c echo.Context) error {
	var req CreatePatientRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	p := req.toPatient()
	if err := h.svc.CreatePatient(c.Request().Context(), p); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, patientCreated{Message: "Patient added!", PatientID: p.ID})
}

func (h *Handler) GetPatients(c echo.Context) error {
	patients, err := h.svc.ListPatients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) AddDoctor(c echo.Context) error {
	var req CreateDoctorRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	d := req.toDoctor()
	if err := h.svc.CreateDoctor(c.Request().Context(), d); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, doctorCreated{Message: "Doctor added!", DoctorID: d.ID})
}

func (h *Handler) GetDoctors(c echo.Context) error {
	doctors, err := h.svc.ListDoctors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}
