package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"communityhub/pkg/logger"
	"communityhub/pkg/metrics"
)

func SetupRoutes(
	feedbackHandler *FeedbackHandler,
	suggestionHandler *SuggestionHandler,
	statsHandler *StatsHandler,
	analyticsHandler *AnalyticsHandler,
) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())

	router.Use(logger.GinLoggerMiddleware())

	router.Use(metrics.GinPrometheusMiddleware("portal"))

	// Портал обслуживает браузерные формы с других origin
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		AllowCredentials: false,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "portal",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
		})

		feedback := api.Group("/feedback")
		{
			feedback.POST("", feedbackHandler.CreateFeedback)
			feedback.GET("", feedbackHandler.ListFeedback)
			feedback.GET("/:feedback_id", feedbackHandler.GetFeedback)
			feedback.PATCH("/:feedback_id", feedbackHandler.UpdateFeedback)
		}

		suggestions := api.Group("/suggestions")
		{
			suggestions.POST("", suggestionHandler.CreateSuggestion)
			suggestions.GET("", suggestionHandler.ListSuggestions)
			suggestions.GET("/:suggestion_id", suggestionHandler.GetSuggestion)
			suggestions.PATCH("/:suggestion_id", suggestionHandler.UpdateSuggestion)
			suggestions.POST("/:suggestion_id/vote", suggestionHandler.VoteSuggestion)
		}

		api.GET("/categories/stats", statsHandler.GetCategoryStats)
		api.GET("/admin/dashboard", statsHandler.GetDashboard)

		api.POST("/analytics", analyticsHandler.TrackEvent)
		api.POST("/status", analyticsHandler.CreateStatusCheck)
		api.GET("/status", analyticsHandler.ListStatusChecks)
	}

	return router
}
