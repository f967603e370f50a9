package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/pressdesk/internal/app"
	"github.com/polkiloo/pressdesk/internal/config"
	"github.com/polkiloo/pressdesk/internal/idgen"
	"github.com/polkiloo/pressdesk/internal/logger"
	"github.com/polkiloo/pressdesk/internal/seed"
	"github.com/polkiloo/pressdesk/internal/server/http/router"
	"github.com/polkiloo/pressdesk/internal/storage"
	"github.com/polkiloo/pressdesk/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		storage.Module,
		idgen.Module,
		fx.Provide(func(g *idgen.Generator) usecase.IDGenerator { return g }),
		fx.Provide(func(b storage.Backend) app.HealthChecker { return b }),
		usecase.Module,
		seed.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
