package scheduling

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
	g.POST("/add_appointment", h.AddAppointment)
	g.GET("/get_appointments", h.GetAppointments)
}

type appointmentCreated struct {
	Message       string `json:"message"`
	AppointmentID int64  `json:"appointment_id"`
}

func (h *Handler) AddAppointment(c echo.Context) error {
	var req CreateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	a := req.toAppointment()
	if err := h.svc.CreateAppointment(c.Request().Context(), a); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, appointmentCreated{Message: "Appointment scheduled!", AppointmentID: a.ID})
}

func (h *Handler) GetAppointments(c echo.Context) error {
	items, err := h.svc.ListAppointments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
