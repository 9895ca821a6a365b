package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskhub/backend/internal/model"
)

// Ping godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} model.PingResponse
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, model.PingResponse{Message: "pong"})
}

// Root redirects to the interactive API documentation.
func Root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/api-docs")
}

// Info godoc
// @Summary API info
// @Tags health
// @Produce json
// @Success 200 {object} model.InfoResponse
// @Router /info [get]
func Info(c *gin.Context) {
	c.JSON(http.StatusOK, model.InfoResponse{
		Success:       true,
		Message:       "Welcome to Task Manager API",
		Documentation: "/api-docs",
		Endpoints: map[string]string{
			"tasks": "/api/tasks",
			"stats": "/api/stats",
			"users": "/api/users",
		},
	})
}

// NoRoute answers every unmatched path with the standard envelope.
func NoRoute(c *gin.Context) {
	respondError(c, http.StatusNotFound, "Route not found")
}
