package lead

import (
	"errors"
	"net/http"
	"strconv"

	"leadhub/internal/domain"
	"leadhub/internal/middleware"
	"leadhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the capture endpoint used by website forms.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/leads", h.Submit)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	leads := rg.Group("/leads")
	{
		leads.GET("", h.List)
		leads.GET("/:id", h.Get)
		leads.PATCH("/:id/status", h.UpdateStatus)
	}
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.service.SubmitLead(c.Request.Context(), middleware.TenantID(c), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SUBMIT_FAILED", "Failed to submit lead")
		return
	}
	response.Success(c, http.StatusCreated, l)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	var status *domain.LeadStatus
	if q.Status != "" {
		s := domain.LeadStatus(q.Status)
		status = &s
	}

	leads, total, err := h.service.List(c.Request.Context(), middleware.TenantID(c), status, q.Limit, q.Offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list leads")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"leads": leads,
		"total": total,
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to fetch lead")
		return
	}
	response.Success(c, http.StatusOK, l)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	err = h.service.UpdateStatus(c.Request.Context(), middleware.TenantID(c), id, domain.LeadStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrLeadNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
		case errors.Is(err, ErrAlreadyConverted):
			response.Error(c, http.StatusConflict, "ALREADY_CONVERTED", "Converted leads cannot change status")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_TRANSITION", "Status transition not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update lead status")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": true})
}
