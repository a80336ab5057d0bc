package conversion

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"leadhub/internal/middleware"
	"leadhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// EventPublisher pushes a post-commit notification to connected dashboards.
// Publishing is best-effort and never affects the transaction outcome.
type EventPublisher interface {
	Publish(tenantID string, eventType string, payload any)
}

type Handler struct {
	service *Service
	events  EventPublisher
}

func NewHandler(service *Service, events EventPublisher) *Handler {
	return &Handler{service: service, events: events}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/leads/:id/convert", h.Convert)
}

func (h *Handler) Convert(c *gin.Context) {
	leadID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	// An empty body is a valid request: every flag defaults to off.
	var req ConvertLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	tenantID := middleware.TenantID(c)

	result, err := h.service.ConvertLead(c.Request.Context(), leadID, tenantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrLeadNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
		case errors.Is(err, ErrAlreadyConverted):
			response.Error(c, http.StatusConflict, "ALREADY_CONVERTED", "Lead has already been converted")
		case errors.Is(err, ErrMissingOwner):
			response.Error(c, http.StatusUnprocessableEntity, "MISSING_OWNER", "No owner could be resolved; supply owner_id")
		default:
			log.Printf("lead conversion failed lead_id=%d: %v", leadID, err)
			response.Error(c, http.StatusInternalServerError, "CONVERSION_FAILED", "Failed to convert lead")
		}
		return
	}

	if h.events != nil {
		tenant := ""
		if tenantID != nil {
			tenant = *tenantID
		}
		h.events.Publish(tenant, "lead.converted", result)
	}

	response.Success(c, http.StatusOK, result)
}
