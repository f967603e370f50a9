// Package seed loads an initial snapshot of all collections from a JSON file.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/polkiloo/pressdesk/internal/config"
	"github.com/polkiloo/pressdesk/internal/domain/model"
	"github.com/polkiloo/pressdesk/internal/domain/repository"
	"github.com/polkiloo/pressdesk/internal/server/http/dto"
)

// Module seeds storage while the fx graph is built, before anything starts.
var Module = fx.Invoke(seedStorage)

// Load reads the snapshot document at path.
func Load(path string) (model.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("read seed file: %w", err)
	}
	var doc dto.Snapshot
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.Snapshot{}, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return doc.Model(), nil
}

// Apply loads the snapshot at path into seeder. An empty path does nothing.
func Apply(ctx context.Context, path string, seeder repository.Seeder, logger *slog.Logger) error {
	if path == "" {
		return nil
	}
	snapshot, err := Load(path)
	if err != nil {
		return err
	}
	if err := seeder.Seed(ctx, snapshot); err != nil {
		return fmt.Errorf("seed storage: %w", err)
	}
	logger.Info("storage seeded",
		slog.String("file", path),
		slog.Int("customers", len(snapshot.Customers)),
		slog.Int("employees", len(snapshot.Employees)),
		slog.Int("orders", len(snapshot.Orders)),
		slog.Int("payments", len(snapshot.Payments)),
	)
	return nil
}

type params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Seeder repository.Seeder
	Logger *slog.Logger
}

func seedStorage(p params) error {
	return Apply(p.Ctx, p.Config.SeedFile, p.Seeder, p.Logger)
}
