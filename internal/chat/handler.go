package chat

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the chat service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.chat)
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *Handler) chat(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := h.Svc.Reply(c.Request.Context(), userID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingMessage):
			respond.Error(c, http.StatusBadRequest, "Message is required")
		case errors.Is(err, ErrNoAnalysisFound):
			respond.Error(c, http.StatusNotFound, "No resume analysis found")
		default:
			respond.Error(c, http.StatusInternalServerError, "Error in chat")
		}
		return
	}

	respond.OK(c, gin.H{
		"reply":     reply,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
