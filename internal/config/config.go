package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress          string
	DatabaseURI         string
	SeedFile            string
	PaymentTerms        time.Duration
	OverdueScanInterval time.Duration
	WorkerPoolSize      int
	OverdueBatchSize    int
	ShutdownTimeout     time.Duration
	LogLevel            string
}

const (
	defaultRunAddress          = ":8080"
	defaultEnvFile             = ".env"
	defaultPaymentTerms        = 30 * 24 * time.Hour
	defaultOverdueScanInterval = time.Minute
	defaultWorkerPoolSize      = 4
	defaultOverdueBatchSize    = 64
	defaultShutdownTimeout     = 10 * time.Second
	defaultLogLevel            = "info"
)

// Load parses configuration from flags, environment variables and an
// optional dotenv file. Process environment wins over the file.
func Load() (*Config, error) {
	lookup, err := withEnvFile(os.LookupEnv)
	if err != nil {
		return nil, err
	}
	return load(os.Args[1:], lookup)
}

type envLookup func(string) (string, bool)

// withEnvFile chains lookup with values read from ENV_FILE, or from .env
// when ENV_FILE is unset. A missing default file is not an error.
func withEnvFile(lookup envLookup) (envLookup, error) {
	path, explicit := defaultEnvFile, false
	if v, ok := lookup("ENV_FILE"); ok && v != "" {
		path, explicit = v, true
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return lookup, nil
		}
		return nil, fmt.Errorf("read env file: %w", err)
	}

	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		SeedFile:            getString(lookup, "SEED_FILE", ""),
		PaymentTerms:        getDuration(lookup, "PAYMENT_TERMS", defaultPaymentTerms),
		OverdueScanInterval: getDuration(lookup, "OVERDUE_SCAN_INTERVAL", defaultOverdueScanInterval),
		WorkerPoolSize:      getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		OverdueBatchSize:    getInt(lookup, "OVERDUE_BATCH_SIZE", defaultOverdueBatchSize),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:            getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	fs := flag.NewFlagSet("pressdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		paymentTermsStr    = cfg.PaymentTerms.String()
		scanIntervalStr    = cfg.OverdueScanInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN, in-memory storage when empty")
	fs.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "JSON snapshot loaded at startup")
	fs.StringVar(&paymentTermsStr, "payment-terms", paymentTermsStr, "Time from order date until payment is due")
	fs.StringVar(&scanIntervalStr, "overdue-interval", scanIntervalStr, "Interval between overdue scans")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent overdue workers")
	fs.IntVar(&cfg.OverdueBatchSize, "overdue-batch", cfg.OverdueBatchSize, "Maximum payments per overdue scan")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Minimum log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.PaymentTerms, err = time.ParseDuration(paymentTermsStr); err != nil {
		return nil, fmt.Errorf("invalid payment terms: %w", err)
	}

	if cfg.OverdueScanInterval, err = time.ParseDuration(scanIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid overdue interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if uriFile, ok := lookup("DATABASE_URI_FILE"); ok && uriFile != "" {
		content, err := os.ReadFile(uriFile)
		if err != nil {
			return nil, fmt.Errorf("read database uri file: %w", err)
		}
		cfg.DatabaseURI = strings.TrimSpace(string(content))
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.OverdueBatchSize <= 0 {
		cfg.OverdueBatchSize = defaultOverdueBatchSize
	}

	if cfg.OverdueScanInterval <= 0 {
		cfg.OverdueScanInterval = defaultOverdueScanInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.PaymentTerms < 0 {
		return nil, fmt.Errorf("payment terms must not be negative")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
