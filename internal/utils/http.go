package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/hahaha8459812/simple-ai-drawing/internal/model"
)

func GinFailedWithMessage(c *gin.Context, status int, message string) {
	c.JSON(status, model.ProcessImageResponse{
		Success: false,
		Error:   message,
	})
}

func GinAbortWithMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, model.ProcessImageResponse{
		Success: false,
		Error:   message,
	})
}

func GinSucceededWithImage(c *gin.Context, imageBase64 string) {
	c.JSON(200, model.ProcessImageResponse{
		Success:     true,
		ImageBase64: imageBase64,
	})
}
