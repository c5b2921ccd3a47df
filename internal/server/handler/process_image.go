package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hahaha8459812/simple-ai-drawing/internal/logger"
	"github.com/hahaha8459812/simple-ai-drawing/internal/model"
	"github.com/hahaha8459812/simple-ai-drawing/internal/relay"
	"github.com/hahaha8459812/simple-ai-drawing/internal/utils"
)

const RequestIdHeader = "X-Request-Id"

type RelayHandler struct {
	pipeline *relay.Pipeline

	logger *logger.CustomLogger
}

func NewRelayHandler(pipeline *relay.Pipeline, l *logger.CustomLogger) *RelayHandler {
	return &RelayHandler{
		pipeline: pipeline,
		logger:   l,
	}
}

func (h *RelayHandler) ProcessImage(c *gin.Context) {
	requestId := uuid.New().String()
	c.Header(RequestIdHeader, requestId)
	log := h.logger.With("requestId", requestId)

	var req model.ProcessImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Errorf("处理请求时发生错误: %s", err)
		utils.GinFailedWithMessage(c, http.StatusInternalServerError, err.Error())
		return
	}

	// outbound calls are bounded by their own timeouts only, a caller hanging up does not abort them
	ctx := logger.NewContext(context.Background(), log)
	image, err := h.pipeline.Process(ctx, req)
	if err != nil {
		utils.GinFailedWithMessage(c, relay.StatusOf(err), err.Error())
		return
	}
	utils.GinSucceededWithImage(c, image)
}
