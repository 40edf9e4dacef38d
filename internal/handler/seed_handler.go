package handler

import (
	"context"
	"net/http"

	"hospital-records/internal/seeder"
	"hospital-records/internal/service"
	"hospital-records/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SeedCountsRequest is the body of POST /admin/seed/custom
type SeedCountsRequest struct {
	Hospitals    int `json:"hospitals" binding:"min=0,max=10000"`
	Patients     int `json:"patients" binding:"min=0,max=10000"`
	Doctors      int `json:"doctors" binding:"min=0,max=10000"`
	Nurses       int `json:"nurses" binding:"min=0,max=10000"`
	Appointments int `json:"appointments" binding:"min=0,max=10000"`
}

func (r SeedCountsRequest) toCounts() seeder.Counts {
	return seeder.Counts{
		Hospitals:    r.Hospitals,
		Patients:     r.Patients,
		Doctors:      r.Doctors,
		Nurses:       r.Nurses,
		Appointments: r.Appointments,
	}
}

type SeedHandler struct {
	seedService *service.SeedService
}

func NewSeedHandler(seedService *service.SeedService) *SeedHandler {
	return &SeedHandler{
		seedService: seedService,
	}
}

// SeedQuick seeds the quick preset (admin only)
func (h *SeedHandler) SeedQuick(c *gin.Context) {
	h.respond(c, h.seedService.SeedQuick)
}

// SeedLarge seeds the large preset (admin only)
func (h *SeedHandler) SeedLarge(c *gin.Context) {
	h.respond(c, h.seedService.SeedLarge)
}

// SeedCustom seeds caller supplied counts (admin only)
func (h *SeedHandler) SeedCustom(c *gin.Context) {
	var req SeedCountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	counts := req.toCounts()

	h.respond(c, func(ctx context.Context, userID *uuid.UUID) (map[string]int, error) {
		return h.seedService.SeedCustom(ctx, counts, userID)
	})
}

func (h *SeedHandler) respond(c *gin.Context, run func(context.Context, *uuid.UUID) (map[string]int, error)) {
	results, err := run(c.Request.Context(), currentUserID(c))
	if err != nil {
		message := err.Error()
		if message == "" {
			message = "Unknown error"
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, message)
		return
	}

	utils.CreatedResponse(c, results)
}
