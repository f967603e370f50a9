// Package storage selects the storage engine the application runs on.
package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/pressdesk/internal/config"
	"github.com/polkiloo/pressdesk/internal/domain/repository"
	"github.com/polkiloo/pressdesk/internal/storage/memory"
	"github.com/polkiloo/pressdesk/internal/storage/postgres"
)

// Backend is a storage engine holding all four collections.
type Backend interface {
	repository.Factory
	repository.Seeder
	HealthCheck(ctx context.Context) error
	Close()
}

// Module wires the storage backend and repository adapters.
var Module = fx.Options(
	fx.Provide(newBackend),
	fx.Provide(
		func(b Backend) repository.CustomerRepository { return b.Customers() },
		func(b Backend) repository.EmployeeRepository { return b.Employees() },
		func(b Backend) repository.OrderRepository { return b.Orders() },
		func(b Backend) repository.PaymentRepository { return b.Payments() },
		func(b Backend) repository.Seeder { return b },
	),
	fx.Invoke(registerLifecycle),
)

type backendParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

var openPostgres = func(ctx context.Context, dsn string, logger *slog.Logger) (Backend, error) {
	s, err := postgres.New(ctx, dsn, logger)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newBackend(p backendParams) (Backend, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("using in-memory storage")
		return memory.New(), nil
	}
	p.Logger.Info("using postgres storage")
	return openPostgres(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, backend Backend) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			backend.Close()
			return nil
		},
	})
}
