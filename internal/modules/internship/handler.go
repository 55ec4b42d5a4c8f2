package internship

import (
	"errors"
	"net/http"
	"strconv"

	"placementhub/internal/pkg/response"
	"placementhub/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler manages HTTP interactions for internship listings.
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
		internships := public.Group("/internships")
		internships.GET("", h.List)
		internships.GET("/:id", h.GetByID)
	}
	if protected != nil {
		internships := protected.Group("/internships")
		internships.POST("", h.Create)
		internships.PUT("/:id", h.Update)
		internships.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateInternshipRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid form data")
		return
	}

	document, err := c.FormFile("file")
	if err != nil {
		document = nil
	}

	record, err := h.service.Create(c.Request.Context(), req, document)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNSHIP_ADD_FAILED", "Error adding internship")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":    "Internship added successfully",
		"internship": record,
	})
}

func (h *Handler) List(c *gin.Context) {
	internships, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNSHIP_FETCH_FAILED", "Error fetching internships")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"internships": internships})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrInternshipNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Internship not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNSHIP_FETCH_FAILED", "Error fetching internship")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"internship": record})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	record, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrInternshipNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Internship not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNSHIP_UPDATE_FAILED", "Failed to update internship")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"internship": record})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrInternshipNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Internship not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNSHIP_DELETE_FAILED", "Error deleting internship")
		return
	}
	response.Message(c, http.StatusOK, "Internship deleted successfully")
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid internship ID")
		return 0, false
	}
	return id, true
}
