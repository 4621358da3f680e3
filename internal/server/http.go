package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evodexlab/evodex-mcp/internal/core/model"
)

// SetupRouter builds the REST gateway. Each route is the HTTP face of one
// tool and shares its validation and rendering with the protocol surface.
func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.Health)

	api := r.Group("/api/v1")
	api.POST("/formula", s.toolRoute(ToolFormulaAssign))
	api.POST("/operators", s.toolRoute(ToolOperatorMatch))
	api.POST("/evaluate", s.toolRoute(ToolFullEvaluate))
	api.POST("/batch", s.toolRoute(ToolBatchEvaluate))

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"name":    serverName,
		"version": serverVersion,
	})
}

func (s *Server) toolRoute(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var args map[string]any
		if err := c.ShouldBindJSON(&args); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		resp, err := s.Handle(c.Request.Context(), name, args)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArguments), errors.Is(err, model.ErrMalformedReaction):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnknownTool):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
