package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"campus-hub.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	eventHandler   *handlers.EventHandler
	teamHandler    *handlers.TeamHandler
	studentHandler *handlers.StudentHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Event routes (public reads, authenticated join)
		events := v1.Group("/events")
		{
			events.GET("", d.eventHandler.ListEvents)
			events.GET("/:id", d.eventHandler.GetEvent)
			events.GET("/:id/roster", d.eventHandler.GetRoster)
			events.GET("/:id/teams", d.teamHandler.ListEventTeams)
			events.POST("/:id/join", d.authMiddleware, d.eventHandler.JoinEvent)
			events.POST("/:id/teams", d.authMiddleware, d.teamHandler.CreateTeam)
		}

		// Team routes (authenticated join)
		teams := v1.Group("/teams")
		{
			teams.POST("/:id/join", d.authMiddleware, d.teamHandler.JoinTeam)
		}

		// Directory routes (public reads)
		v1.GET("/students/:id", d.studentHandler.GetStudent)
		v1.GET("/colleges", d.studentHandler.ListColleges)
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "campus-hub-backend",
			"version": "0.1.0",
		})
	})
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
