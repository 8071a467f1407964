package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"motor-kita.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	onboardingHandler *handlers.OnboardingHandler
	catalogHandler    *handlers.CatalogHandler
	submitLock        gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Onboarding session routes (public)
		onboarding := v1.Group("/onboarding")
		{
			onboarding.POST("", d.onboardingHandler.StartSession)
			onboarding.GET("/:id", d.onboardingHandler.GetRecord)
			onboarding.POST("/:id/open", d.onboardingHandler.OpenSection)

			onboarding.POST("/:id/plate/verify", d.onboardingHandler.VerifyPlate)
			onboarding.POST("/:id/plate/confirm-new", d.onboardingHandler.ConfirmNew)
			onboarding.POST("/:id/plate/confirm-ownership", d.onboardingHandler.ConfirmOwnership)
			onboarding.POST("/:id/plate/cancel", d.onboardingHandler.CancelLookup)

			onboarding.PUT("/:id/personal", d.onboardingHandler.UpdatePersonal)
			onboarding.POST("/:id/personal/id-type", d.onboardingHandler.SetIdentificationType)
			onboarding.POST("/:id/personal/save", d.onboardingHandler.SavePersonal)

			onboarding.PUT("/:id/car", d.onboardingHandler.UpdateCar)
			onboarding.POST("/:id/car/save", d.onboardingHandler.SaveCar)

			onboarding.POST("/:id/submit", d.submitLock, d.onboardingHandler.Submit)
		}

		// Catalog routes (public)
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/brands", d.catalogHandler.ListBrands)
			catalog.GET("/brands/:brand/models", d.catalogHandler.ListModels)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = "*"
		}
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "motor-kita-backend",
			"version": "0.1.0",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
