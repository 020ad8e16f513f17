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

// Patient serves patient CRUD endpoints.
type Patient struct {
	clinic *service.Clinic
	logger *logger.Logger
}

// NewPatient creates a new Patient handler.
func NewPatient(clinic *service.Clinic, logger *logger.Logger) *Patient {
	return &Patient{clinic: clinic, logger: logger}
}

type createPatientRequest struct {
	Name       string `json:"name" binding:"required"`
	DOB        string `json:"dob" binding:"required"`
	Contact    string `json:"contact" binding:"required"`
	Email      string `json:"email"`
	HealthInfo string `json:"healthInfo"`
}

type updatePatientRequest struct {
	Name       *string `json:"name"`
	DOB        *string `json:"dob"`
	Contact    *string `json:"contact"`
	Email      *string `json:"email"`
	HealthInfo *string `json:"healthInfo"`
}

// List returns the patients visible to the caller.
func (h *Patient) List(c *gin.Context) {
	caller, _ := middleware.Caller(c)
	response.JSON(c, http.StatusOK, true, "patients", h.clinic.Patients(caller))
}

// Get returns one patient record.
func (h *Patient) Get(c *gin.Context) {
	caller, _ := middleware.Caller(c)
	patient, err := h.clinic.PatientByID(caller, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, true, "patient", patient)
}

// Create adds a new patient record.
func (h *Patient) Create(c *gin.Context) {
	caller, _ := middleware.Caller(c)

	var req createPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSON(c, http.StatusBadRequest, false, "invalid request body", nil)
		return
	}

	patient, err := h.clinic.AddPatient(c.Request.Context(), caller, model.CreatePatientParams{
		Name:       req.Name,
		DOB:        req.DOB,
		Contact:    req.Contact,
		Email:      req.Email,
		HealthInfo: req.HealthInfo,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, true, "patient created", patient)
}

// Update merges the provided fields into a patient record. An unknown ID is
// accepted and ignored, matching the store contract.
func (h *Patient) Update(c *gin.Context) {
	caller, _ := middleware.Caller(c)

	var req updatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.JSON(c, http.StatusBadRequest, false, "invalid request body", nil)
		return
	}

	err := h.clinic.UpdatePatient(c.Request.Context(), caller, c.Param("id"), model.PatientUpdate{
		Name:       req.Name,
		DOB:        req.DOB,
		Contact:    req.Contact,
		Email:      req.Email,
		HealthInfo: req.HealthInfo,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, true, "patient updated", nil)
}

// Delete removes a patient and every incident referencing it.
func (h *Patient) Delete(c *gin.Context) {
	caller, _ := middleware.Caller(c)

	if err := h.clinic.DeletePatient(c.Request.Context(), caller, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, true, "patient deleted", nil)
}
