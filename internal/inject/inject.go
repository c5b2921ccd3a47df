package inject

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hahaha8459812/simple-ai-drawing/internal/config"
	"github.com/hahaha8459812/simple-ai-drawing/internal/logger"
	"github.com/hahaha8459812/simple-ai-drawing/internal/relay"
	"github.com/hahaha8459812/simple-ai-drawing/internal/server"
	"github.com/hahaha8459812/simple-ai-drawing/internal/server/handler"
	"github.com/samber/do"
	"go.uber.org/zap"
)

func Setup(cfg *config.Config, zapLogger *zap.Logger) *do.Injector {
	sugared := zapLogger.Sugar()
	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			sugared.Debugf(format, args...)
		},
	})

	do.ProvideValue[*config.Config](injector, cfg)
	do.ProvideValue[*zap.Logger](injector, zapLogger)
	do.Provide[*logger.CustomLogger](injector, func(i *do.Injector) (*logger.CustomLogger, error) {
		return logger.NewCustomLogger(do.MustInvoke[*zap.Logger](i)), nil
	})

	do.Provide[relay.Fetcher](injector, func(i *do.Injector) (relay.Fetcher, error) {
		c := do.MustInvoke[*config.Config](i).Relay
		return relay.NewHTTPImageFetcher(c.FetchTimeout, c.MaxImageBytes), nil
	})
	do.Provide[relay.Invoker](injector, func(i *do.Injector) (relay.Invoker, error) {
		c := do.MustInvoke[*config.Config](i).Relay
		return relay.NewGeminiInvoker(c.InvokeTimeout, c.ImageMimeType), nil
	})
	do.Provide[*relay.Pipeline](injector, func(i *do.Injector) (*relay.Pipeline, error) {
		c := do.MustInvoke[*config.Config](i).Relay
		return relay.NewPipeline(
			do.MustInvoke[relay.Fetcher](i),
			do.MustInvoke[relay.Invoker](i),
			relay.Defaults{Endpoint: c.DefaultEndpoint, Model: c.DefaultModel},
		), nil
	})

	do.Provide[*handler.RelayHandler](injector, func(i *do.Injector) (*handler.RelayHandler, error) {
		return handler.NewRelayHandler(
			do.MustInvoke[*relay.Pipeline](i),
			do.MustInvoke[*logger.CustomLogger](i).With("component", "relay"),
		), nil
	})
	do.Provide[*gin.Engine](injector, func(i *do.Injector) (*gin.Engine, error) {
		return server.InitRouter(
			do.MustInvoke[*config.Config](i).Server,
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[*handler.RelayHandler](i),
		), nil
	})
	do.Provide[*http.Server](injector, func(i *do.Injector) (*http.Server, error) {
		return server.NewHTTPServer(do.MustInvoke[*config.Config](i).Server, do.MustInvoke[*gin.Engine](i)), nil
	})

	return injector
}
