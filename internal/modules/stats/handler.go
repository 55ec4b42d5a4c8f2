package stats

import (
	"net/http"

	"placementhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler serves the aggregation endpoints.
type Handler struct {
	service *Service
	stream  *Stream
}

func NewHandler(service *Service, stream *Stream) *Handler {
	return &Handler{service: service, stream: stream}
}

func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	stats := public.Group("/stats")
	stats.GET("/dashboard", h.Dashboard)
	stats.GET("/cgpa-by-department", h.CGPAByDepartment)
	if h.stream != nil {
		stats.GET("/live", h.stream.Serve)
	}
}

// Dashboard returns the overview counters at the top level of the envelope,
// the shape the dashboard frontend consumes.
func (h *Handler) Dashboard(c *gin.Context) {
	out, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STATS_FAILED", "Error fetching stats")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"total":       out.Total,
		"avgCgpa":     out.AvgCGPA,
		"eligible":    out.Eligible,
		"notEligible": out.NotEligible,
		"placed":      out.Placed,
	})
}

func (h *Handler) CGPAByDepartment(c *gin.Context) {
	rows, err := h.service.CGPAByDepartment(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STATS_FAILED", "Error fetching stats")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"data": rows})
}
