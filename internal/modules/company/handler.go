package company

import (
	"errors"
	"net/http"
	"strconv"

	"placementhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages HTTP interactions for company visit records.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts read routes on the public group and mutating routes
// on the session-guarded group.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		companies := public.Group("/companies")
		companies.GET("", h.List)
		companies.GET("/:id", h.GetByID)
	}
	if protected != nil {
		companies := protected.Group("/companies")
		companies.POST("", h.Create)
		companies.PUT("/:id", h.Update)
		companies.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "All fields required")
		return
	}

	record, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "All fields required")
		case errors.Is(err, ErrInvalidDate):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid visit date")
		default:
			response.Error(c, http.StatusInternalServerError, "COMPANY_ADD_FAILED", "Error adding company")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Company added",
		"company": record,
	})
}

func (h *Handler) List(c *gin.Context) {
	companies, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "COMPANY_FETCH_FAILED", "Error fetching companies")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"companies": companies})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Company not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "COMPANY_FETCH_FAILED", "Error fetching company")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"company": record})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	record, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCompanyNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Company not found")
		case errors.Is(err, ErrInvalidDate):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid visit date")
		default:
			response.Error(c, http.StatusInternalServerError, "COMPANY_UPDATE_FAILED", "Error updating company")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Company updated",
		"company": record,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Company not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "COMPANY_DELETE_FAILED", "Error deleting company")
		return
	}
	response.Message(c, http.StatusOK, "Company deleted")
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid company ID")
		return 0, false
	}
	return id, true
}
