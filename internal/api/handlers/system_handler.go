package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/mockview/internal/live"
	"github.com/yoockh/mockview/internal/services"
)

type SystemHandler struct {
	interviews         services.InterviewService
	hub                *live.Hub
	providerConfigured bool
}

func NewSystemHandler(interviews services.InterviewService, hub *live.Hub, providerConfigured bool) *SystemHandler {
	return &SystemHandler{interviews: interviews, hub: hub, providerConfigured: providerConfigured}
}

func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "AI 면접관 시스템 API 서버가 정상 작동 중입니다.",
		"health":  "/api/health",
	})
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}

func (h *SystemHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"active_sessions":       h.interviews.ActiveSessions(),
		"active_websockets":     h.hub.Subscribers(),
		"gemini_api_configured": h.providerConfigured,
		"environment":           os.Getenv("DEBUG"),
	})
}
