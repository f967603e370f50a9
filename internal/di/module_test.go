package di

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/polkiloo/pressdesk/internal/app"
	"github.com/polkiloo/pressdesk/internal/config"
	"github.com/polkiloo/pressdesk/internal/domain/model"
	"github.com/polkiloo/pressdesk/internal/server/http/handlers"
	"github.com/polkiloo/pressdesk/internal/storage"
	"github.com/polkiloo/pressdesk/internal/storage/memory"
)

func testConfig() *config.Config {
	return &config.Config{
		RunAddress:          "127.0.0.1:0",
		PaymentTerms:        720 * time.Hour,
		OverdueScanInterval: time.Hour,
		WorkerPoolSize:      1,
		OverdueBatchSize:    1,
		ShutdownTimeout:     time.Second,
		LogLevel:            "info",
	}
}

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	store := memory.New()

	var (
		facade  *app.DashboardFacade
		surface handlers.DashboardFacade
	)
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(testConfig()),
			fx.Replace(logger),
			fx.Replace(fx.Annotate(store, fx.As(new(storage.Backend)))),
		),
		fx.Populate(&facade, &surface),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil || surface == nil {
		t.Fatal("expected dashboard facade instance")
	}

	order, payment, err := facade.PlaceOrder(context.Background(), modelDraft())
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if payment.OrderID != order.ID || payment.DueDate == nil {
		t.Fatalf("unexpected payment %+v", payment)
	}
	orders, _ := store.Orders().List(context.Background())
	if len(orders) != 1 {
		t.Fatalf("expected order stored in replaced backend, got %d", len(orders))
	}
}

func TestModuleSeedsFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	doc := `{"customers":[{"id":"CUS-1","name":"John Smith"}],"employees":[{"id":"EMP-1","name":"Alice Chen"}]}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	cfg := testConfig()
	cfg.SeedFile = path
	store := memory.New()

	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(slog.New(slog.NewJSONHandler(io.Discard, nil))),
			fx.Replace(fx.Annotate(store, fx.As(new(storage.Backend)))),
		),
	)
	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}

	employees, _ := store.Employees().List(context.Background())
	if len(employees) != 1 || employees[0].Name != "Alice Chen" {
		t.Fatalf("expected seeded employees, got %+v", employees)
	}
}

func modelDraft() model.OrderDraft {
	return model.OrderDraft{CustomerName: "Walk-in", OrderType: "Book Printing", Quantity: 10, UnitPrice: 5}
}
