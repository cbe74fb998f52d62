package clinical

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/add_medical_record", h.AddMedicalRecord)
	g.GET("/get_medical_records/:patient_id", h.GetMedicalRecords)
}

type recordCreated struct {
	Message  string `json:"message"`
	RecordID int64  `json:"record_id"`
}

func (h *Handler) AddMedicalRecord(c echo.Context) error {
	var req CreateMedicalRecordRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	m := req.toRecord()
	if err := h.svc.CreateMedicalRecord(c.Request().Context(), m); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, recordCreated{Message: "Medical record added!", RecordID: m.ID})
}

func (h *Handler) GetMedicalRecords(c echo.Context) error {
	patientID, err := strconv.ParseInt(c.Param("patient_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
	}
	items, err := h.svc.ListMedicalRecords(c.Request().Context(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
