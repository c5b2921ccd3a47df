package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/hahaha8459812/simple-ai-drawing/internal/config"
	"github.com/hahaha8459812/simple-ai-drawing/internal/inject"
	"github.com/hahaha8459812/simple-ai-drawing/internal/logger"
	"github.com/hahaha8459812/simple-ai-drawing/internal/server"
	"github.com/samber/do"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	log := logger.NewCustomLogger(zapLogger)
	defer func() {
		_ = log.Sync()
	}()
	gin.SetMode(cfg.Server.Mode)

	injector := inject.Setup(cfg, zapLogger)
	srv := do.MustInvoke[*http.Server](injector)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("启动 Simple AI Drawing Backend Service, address: %s", cfg.Address())
	log.Infof("健康检查: http://localhost:%s/health", cfg.Server.Port)
	log.Infof("API接口: http://localhost:%s/process-image", cfg.Server.Port)
	if err := server.Start(ctx, srv, log); err != nil {
		log.Errorf("service stopped with error: %s", err)
	}
	if err := injector.Shutdown(); err != nil {
		log.Warnf("failed to shutdown injector: %s", err)
	}
}
