package student

import (
	"errors"
	"net/http"
	"strconv"

	"placementhub/internal/pkg/response"
	"placementhub/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler manages HTTP interactions for student records.
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
		students := public.Group("/students")
		students.GET("", h.List)
		students.GET("/:id", h.GetByID)
	}
	if protected != nil {
		students := protected.Group("/students")
		students.POST("", h.Create)
		students.PUT("/:id", h.Update)
		students.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid form data")
		return
	}

	// Both uploads are optional named parts of the multipart form.
	resume, err := c.FormFile("resume")
	if err != nil {
		resume = nil
	}
	certificates, err := c.FormFile("certificates")
	if err != nil {
		certificates = nil
	}

	record, err := h.service.Create(c.Request.Context(), req, resume, certificates)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "STUDENT_ADD_FAILED", "Error adding student")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "New Student added with files",
		"student": record,
	})
}

func (h *Handler) List(c *gin.Context) {
	students, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STUDENT_FETCH_FAILED", "Error fetching students")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"students": students})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Student not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STUDENT_FETCH_FAILED", "Error fetching student")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student": record})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	record, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Student not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STUDENT_UPDATE_FAILED", "Failed to update student")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"student": record})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if _, err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrStudentNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Student not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "STUDENT_DELETE_FAILED", "Error deleting student")
		return
	}
	response.Message(c, http.StatusOK, "Student deleted successfully")
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid student ID")
		return 0, false
	}
	return id, true
}
