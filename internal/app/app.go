package app

import (
	"github.com/carousell/ct-go/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/opty-app/opty-search/internal/config"
	"github.com/opty-app/opty-search/internal/kafka"
	"github.com/opty-app/opty-search/internal/repo/llm"
	"github.com/opty-app/opty-search/internal/repo/mercadolivre"
	"github.com/opty-app/opty-search/internal/repo/sources"
	"github.com/opty-app/opty-search/internal/server"
	"github.com/opty-app/opty-search/internal/usecase"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newMongoDB,
			newSearchHistory,
			asSearchHistoryPort,

			kafka.NewNotifier,
			llm.NewQueryNormalizer,

			sources.NewRegistry,
			mercadolivre.NewClient,

			usecase.NewSearchUsecase,

			server.NewHandler,
		),
		fx.Supply(conf),
		fx.Invoke(registerSources),
		fx.Invoke(funcs...),
	)
}

func registerSources(registry *sources.Registry, client mercadolivre.Client) error {
	return registry.Register(mercadolivre.NewSource(client))
}
