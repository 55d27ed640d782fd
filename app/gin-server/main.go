package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yoockh/mockview/internal/api/handlers"
	"github.com/yoockh/mockview/internal/api/middleware"
	"github.com/yoockh/mockview/internal/api/routes"
	"github.com/yoockh/mockview/internal/live"
	"github.com/yoockh/mockview/internal/logger"
	"github.com/yoockh/mockview/internal/providers/llm"
	"github.com/yoockh/mockview/internal/repositories/memory"
	"github.com/yoockh/mockview/internal/services"
)

func main() {
	_ = godotenv.Load()
	log := logger.New()

	ctx := context.Background()

	// Init Vertex Gemini
	var provider llm.Provider
	project := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if project == "" {
		log.Warn("GOOGLE_CLOUD_PROJECT is not set; interviews cannot start until it is configured")
	} else {
		location := os.Getenv("GOOGLE_CLOUD_LOCATION")
		if location == "" {
			location = "us-central1"
		}
		vg, err := llm.NewVertexGemini(ctx, project, location, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.WithError(err).Fatal("vertex gemini init error")
		}
		defer vg.Close()
		provider = vg
		log.Info("vertex gemini connected")
	}

	profileTTL := 24 * time.Hour
	if v := os.Getenv("PROFILE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.WithError(err).Fatal("invalid PROFILE_TTL")
		}
		profileTTL = d
	}

	sessions := memory.NewSessionRepository()
	profiles := memory.NewProfileRepository(profileTTL)
	hub := live.NewHub()

	interviewSvc := services.NewInterviewService(provider, sessions, hub, log)
	profileSvc := services.NewProfileService(profiles)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Auth:      handlers.NewAuthHandler(middleware.SigningSecret()),
		Interview: handlers.NewInterviewHandler(interviewSvc, profileSvc),
		WS:        handlers.NewWSHandler(interviewSvc, hub, log),
		System:    handlers.NewSystemHandler(interviewSvc, hub, provider != nil),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("server starting")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server error")
	}
}
