package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/hahaha8459812/simple-ai-drawing/internal/config"
	"github.com/hahaha8459812/simple-ai-drawing/internal/logger"
	"github.com/hahaha8459812/simple-ai-drawing/internal/server/handler"
	"github.com/hahaha8459812/simple-ai-drawing/internal/utils"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func NewHTTPServer(cfg config.ServerConfig, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:    cfg.Host + ":" + cfg.Port,
		Handler: router,
	}
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func Start(ctx context.Context, srv *http.Server, log *logger.CustomLogger) error {
	errChan := make(chan error, 1)
	go func() {
		log.Infof("service is listening on %s", srv.Addr)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Infof("service is shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func InitRouter(cfg config.ServerConfig, zapLogger *zap.Logger, relayHandler *handler.RelayHandler) *gin.Engine {
	router := gin.New()
	router.Use(ginzap.CustomRecoveryWithZap(zapLogger, true, func(c *gin.Context, err any) {
		utils.GinAbortWithMessage(c, http.StatusInternalServerError, fmt.Sprint(err))
	}))
	router.Use(ginzap.Ginzap(zapLogger, time.RFC3339Nano, true))
	router.Use(cors.Default())
	if cfg.Pprof {
		pprof.Register(router)
	}

	router.POST("/process-image", relayHandler.ProcessImage)
	router.GET("/health", handler.Health)
	return router
}
