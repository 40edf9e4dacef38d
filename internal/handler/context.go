package handler

import (
	"net/http"

	"hospital-records/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID returns the authenticated user id set by AuthMiddleware, or nil
func currentUserID(c *gin.Context) *uuid.UUID {
	value, exists := c.Get("userID")
	if !exists {
		return nil
	}
	id, ok := value.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

// parseID reads a uuid path parameter and writes a 400 response when it is malformed
func parseID(c *gin.Context, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}
