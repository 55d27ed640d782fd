package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yoockh/mockview/internal/api/handlers"
	"github.com/yoockh/mockview/internal/api/middleware"
)

type Deps struct {
	Auth      *handlers.AuthHandler
	Interview *handlers.InterviewHandler
	WS        *handlers.WSHandler
	System    *handlers.SystemHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/", d.System.Root)
	r.GET("/api/health", d.System.Health)
	r.GET("/api/system/status", d.System.Status)

	r.POST("/api/auth/login", d.Auth.Login)

	auth := r.Group("/api/interview")
	auth.Use(middleware.JWTAuth())

	auth.POST("/profile", d.Interview.SaveProfile)
	auth.POST("/start-personalized", d.Interview.StartPersonalized)
	auth.POST("/start", d.Interview.StartLegacy)
	auth.POST("/respond", d.Interview.Respond)
	auth.POST("/end", d.Interview.End)
	auth.GET("/types", d.Interview.Types)

	// WebSocket (duplex respond/end)
	r.GET("/ws/:session_id", d.WS.InterviewWS)
}
