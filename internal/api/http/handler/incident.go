package handler

import (
	"net/http"

	"github.com/entnt/dentalcare-server/internal/api/http/middleware"
	"github.com/entnt/dentalcare-server/internal/api/http/response"
	"github.com/entnt/dentalcare-server/internal/logger"
	"github.com/entnt/dentalcare-server/internal/model"
	"github.com/entnt/dentalcare-server/internal/service"
	"github.com/gin-gonic/gin"
)

// Incident serves incident CRUD endpoints.
type Incident struct {
	clinic *service.Clinic
	logger *logger.Logger
}

// NewIncident creates a new Incident handler.
func NewIncident(clinic *service.Clinic, logger *logger.Logger) *Incident {
	return &Incident{clinic: clinic, logger: logger}
}

type createIncidentRequest struct {
	PatientID       string                 `json:"patientId" binding:"required"`
	Title           string                 `json:"title" binding:"required"`
	Description     string                 `json:"description"`
	Comments        string                 `json:"comments"`
	AppointmentDate string                 `json:"appointmentDate" binding:"required"`
	Cost            *float64               `json:"cost"`
	Treatment       string                 `json:"treatment"`
	Status          model.IncidentStatus   `json:"status"`
	NextDate        string                 `json:"nextDate"`
	Files           []model.FileAttachment `json:"files"`
}

type updateIncidentRequest struct {
	PatientID       *string                 `json:"patientId"`
	Title           *string                 `json:"title"`
	Description     *string                 `json:"description"`
	Comments        *string                 `json:"comments"`
	AppointmentDate *string                 `json:"appointmentDate"`
	Cost            *float64                `json:"cost"`
	Treatment       *string                 `json:"treatment"`
	Status          *model.IncidentStatus   `json:"status"`
	NextDate        *string                 `json:"nextDate"`
	Files           *[]model.FileAttachment `json:"files"`
}

// List returns the incidents visible to the caller.
func (h *Incident) List(c *gin.Context) {
	caller, _ := middleware.Caller(c)
	response.JSON(c, http.StatusOK, true, "incidents", h.clinic.Incidents(caller))
}

// Get returns one incident.
func (h *Incident) Get(c *gin.Context) {
	caller, _ := middleware.Caller(c)
	incident, err := h.clinic.IncidentByID(caller, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, true, "incident", incident)
}

// Create adds a new incident for an existing patient.
func (h *Incident) Create(c *gin.Context) {
	caller, _ := middleware.Caller(c)

	var req createIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSON(c, http.StatusBadRequest, false, "invalid request body", nil)
		return
	}

	incident, err := h.clinic.AddIncident(c.Request.Context(), caller, model.CreateIncidentParams{
		PatientID:       req.PatientID,
		Title:           req.Title,
		Description:     req.Description,
		Comments:        req.Comments,
		AppointmentDate: req.AppointmentDate,
		Cost:            req.Cost,
		Treatment:       req.Treatment,
		Status:          req.Status,
		NextDate:        req.NextDate,
		Files:           req.Files,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, true, "incident created", incident)
}

// Update merges the provided fields into an incident. An unknown ID is
// accepted and ignored, matching the store contract.
func (h *Incident) Update(c *gin.Context) {
	caller, _ := middleware.Caller(c)

	var req updateIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSON(c, http.StatusBadRequest, false, "invalid request body", nil)
		return
	}

	err := h.clinic.UpdateIncident(c.Request.Context(), caller, c.Param("id"), model.IncidentUpdate{
		PatientID:       req.PatientID,
		Title:           req.Title,
		Description:     req.Description,
		Comments:        req.Comments,
		AppointmentDate: req.AppointmentDate,
		Cost:            req.Cost,
		Treatment:       req.Treatment,
		Status:          req.Status,
		NextDate:        req.NextDate,
		Files:           req.Files,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, true, "incident updated", nil)
}

// Delete removes one incident.
func (h *Incident) Delete(c *gin.Context) {
	caller, _ := middleware.Caller(c)

	if err := h.clinic.DeleteIncident(c.Request.Context(), caller, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, true, "incident deleted", nil)
}
