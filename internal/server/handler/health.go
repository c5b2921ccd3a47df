package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hahaha8459812/simple-ai-drawing/internal/model"
)

const ServiceName = "Simple AI Drawing Backend"

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{
		Status:  "ok",
		Service: ServiceName,
	})
}
