package analysis

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze-resume", h.analyzeResume)
	rg.GET("/summaries", h.listSummaries)
	rg.DELETE("/summaries/:id", h.deleteSummary)
}

func (h *Handler) analyzeResume(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	// Leave headroom for multipart framing; the service enforces the exact cap.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxFileSize+1<<20)
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respond.Error(c, http.StatusBadRequest, "File size too large (max 10MB)")
			return
		}
		respond.Error(c, http.StatusBadRequest, "Invalid or unsupported file. Please upload a PDF.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid or unsupported file. Please upload a PDF.")
		return
	}

	analysis, err := h.Svc.Analyze(c.Request.Context(), userID, header.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, ErrTooLarge):
			respond.Error(c, http.StatusBadRequest, "File size too large (max 10MB)")
		case errors.Is(err, ErrInvalidFormat):
			respond.Error(c, http.StatusBadRequest, "Invalid or unsupported file. Please upload a PDF.")
		case errors.Is(err, ErrNoTextFound):
			respond.Error(c, http.StatusBadRequest, "No text found in PDF")
		default:
			respond.Error(c, http.StatusInternalServerError, "Error processing resume")
		}
		return
	}

	respond.OK(c, gin.H{
		"message":  "Analysis completed successfully",
		"analysis": analysis,
	})
}

func (h *Handler) listSummaries(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	summaries, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Error fetching summaries")
		return
	}

	respond.OK(c, gin.H{
		"summaries": summaries,
		"count":     len(summaries),
	})
}

func (h *Handler) deleteSummary(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	analysisID := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), analysisID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Analysis not found")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Error deleting summary")
		return
	}

	respond.OK(c, gin.H{"message": "Analysis deleted successfully"})
}
