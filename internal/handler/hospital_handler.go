package handler

import (
	"errors"
	"net/http"

	"hospital-records/internal/models"
	"hospital-records/internal/repository"
	"hospital-records/internal/service"
	"hospital-records/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
}

func NewHospitalHandler(hospitalService *service.HospitalService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

type HospitalRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Address string `json:"address" binding:"max=255"`
	City    string `json:"city" binding:"max=100"`
}

type WardRequest struct {
	Type        models.WardType `json:"type" binding:"required"`
	MaxCapacity int             `json:"max_capacity" binding:"required,min=1"`
}

// CreateHospital creates a new hospital (admin only)
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var req HospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	hospital := models.Hospital{Name: req.Name, Address: req.Address, City: req.City}
	if err := h.hospitalService.CreateHospital(c.Request.Context(), &hospital, currentUserID(c)); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create hospital")
		return
	}

	utils.CreatedResponse(c, hospital)
}

// UpdateHospital updates an existing hospital (admin only)
func (h *HospitalHandler) UpdateHospital(c *gin.Context) {
	id, ok := parseID(c, "id", "hospital")
	if !ok {
		return
	}

	var req HospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	hospital := models.Hospital{ID: id, Name: req.Name, Address: req.Address, City: req.City}
	updated, err := h.hospitalService.UpdateHospital(c.Request.Context(), &hospital, currentUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Hospital not found")
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update hospital")
		}
		return
	}

	utils.SuccessResponse(c, updated)
}

// DeleteHospital removes a hospital (admin only)
func (h *HospitalHandler) DeleteHospital(c *gin.Context) {
	id, ok := parseID(c, "id", "hospital")
	if !ok {
		return
	}

	if err := h.hospitalService.DeleteHospital(c.Request.Context(), id, currentUserID(c)); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "Hospital not found")
		case errors.Is(err, repository.ErrInUse):
			utils.ErrorResponse(c, http.StatusConflict, "Failed to delete hospital: it still has dependent records")
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete hospital")
		}
		return
	}

	utils.MessageResponse(c, "Hospital deleted successfully")
}

// GetHospitalWards lists the wards of a hospital
func (h *HospitalHandler) GetHospitalWards(c *gin.Context) {
	id, ok := parseID(c, "id", "hospital")
	if !ok {
		return
	}

	wards, err := h.hospitalService.GetWardsByHospitalID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Hospital not found")
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch wards")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"wards": wards,
		"count": len(wards),
	})
}

// CreateHospitalWard adds a ward to a hospital (admin only)
func (h *HospitalHandler) CreateHospitalWard(c *gin.Context) {
	id, ok := parseID(c, "id", "hospital")
	if !ok {
		return
	}

	var req WardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ward := models.Ward{HospitalID: id, Type: req.Type, MaxCapacity: req.MaxCapacity}
	if err := h.hospitalService.CreateWard(c.Request.Context(), &ward, currentUserID(c)); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "Hospital not found")
		case errors.Is(err, service.ErrInvalidWardType), errors.Is(err, service.ErrInvalidWardCapacity):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create ward")
		}
		return
	}

	utils.CreatedResponse(c, ward)
}
