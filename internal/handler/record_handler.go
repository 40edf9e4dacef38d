package handler

import (
	"errors"
	"net/http"

	"hospital-records/internal/repository"
	"hospital-records/internal/service"
	"hospital-records/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Binder decodes and validates a request body into a record
type Binder[T any] func(c *gin.Context) (*T, error)

// RecordHandler serves the endpoints of one record kind
type RecordHandler[T any] struct {
	kind    string
	label   string
	service *service.RecordService[T]
	bind    Binder[T]
}

// NewRecordHandler creates a handler; kind names the collection in list
// responses and label is used in messages. A nil bind leaves the kind read-only.
func NewRecordHandler[T any](kind, label string, svc *service.RecordService[T], bind Binder[T]) *RecordHandler[T] {
	return &RecordHandler[T]{kind: kind, label: label, service: svc, bind: bind}
}

// List returns a page of records
func (h *RecordHandler[T]) List(c *gin.Context) {
	limit, offset := utils.Pagination(c)

	records, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch "+h.kind)
		return
	}

	utils.SuccessResponse(c, gin.H{
		h.kind:   records,
		"count":  len(records),
		"limit":  limit,
		"offset": offset,
	})
}

// Get returns a single record by id
func (h *RecordHandler[T]) Get(c *gin.Context) {
	id, ok := parseID(c, "id", h.label)
	if !ok {
		return
	}

	record, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "fetch")
		return
	}

	utils.SuccessResponse(c, record)
}

// Create adds a new record (admin only)
func (h *RecordHandler[T]) Create(c *gin.Context) {
	record, err := h.bind(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.service.Create(c.Request.Context(), record, currentUserID(c)); err != nil {
		h.writeError(c, err, "create")
		return
	}

	utils.CreatedResponse(c, record)
}

// Update replaces an existing record (admin only)
func (h *RecordHandler[T]) Update(c *gin.Context) {
	id, ok := parseID(c, "id", h.label)
	if !ok {
		return
	}

	record, err := h.bind(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, record, currentUserID(c))
	if err != nil {
		h.writeError(c, err, "update")
		return
	}

	utils.SuccessResponse(c, updated)
}

// Delete removes a record (admin only)
func (h *RecordHandler[T]) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", h.label)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, currentUserID(c)); err != nil {
		h.writeError(c, err, "delete")
		return
	}

	utils.MessageResponse(c, h.label+" deleted successfully")
}

func (h *RecordHandler[T]) writeError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, h.label+" not found")
	case errors.Is(err, service.ErrInvalidRecord), errors.Is(err, repository.ErrMissingReference):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrInUse):
		utils.ErrorResponse(c, http.StatusConflict, h.label+" is still referenced by other records")
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to "+action+" "+h.label)
	}
}

// Register mounts GET /<kind> and GET /<kind>/:id on rg. When the kind is
// writable it also mounts POST, PUT and DELETE behind writeGuards.
func (h *RecordHandler[T]) Register(rg *gin.RouterGroup, writeGuards ...gin.HandlerFunc) {
	rg.GET("/"+h.kind, h.List)
	rg.GET("/"+h.kind+"/:id", h.Get)
	if h.bind == nil {
		return
	}

	guarded := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		chain := make([]gin.HandlerFunc, 0, len(writeGuards)+1)
		chain = append(chain, writeGuards...)
		return append(chain, fn)
	}
	rg.POST("/"+h.kind, guarded(h.Create)...)
	rg.PUT("/"+h.kind+"/:id", guarded(h.Update)...)
	rg.DELETE("/"+h.kind+"/:id", guarded(h.Delete)...)
}
