package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	service "github.com/okian/ftracker/internal/app"
	"github.com/okian/ftracker/internal/config"
	"github.com/okian/ftracker/internal/domain/model"
	"github.com/okian/ftracker/internal/domain/workout"
	"github.com/okian/ftracker/pkg/logger"
	"github.com/okian/ftracker/pkg/metrics"
)

// Process exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process globals, so it can be driven from tests.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ftracker", flag.ContinueOnError)
	fs.SetOutput(stderr)
	packagesFile := fs.String("packages", "", "YAML file with sensor packages (overrides packages_file)")
	metricsFile := fs.String("metrics-file", "", "write Prometheus metrics to this file after the run (overrides metrics_file)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ftracker [-packages file.yaml] [-metrics-file out.prom]\n\n")
		fmt.Fprintf(stderr, "Known activity codes: %s\n\n", strings.Join(workout.Codes(), ", "))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is configured from cfg, so report directly.
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return exitError
	}
	if *packagesFile != "" {
		cfg.PackagesFile = *packagesFile
	}
	if *metricsFile != "" {
		cfg.MetricsFile = *metricsFile
		cfg.MetricsEnabled = true
	}

	if err := logger.Init(
		logger.WithWriter(stderr),
		logger.WithJSON(strings.EqualFold(cfg.LogFormat, config.LogFormatJSON)),
	); err != nil {
		fmt.Fprintf(stderr, "failed to initialize logging: %v\n", err)
		return exitError
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	metrics.SetEnabled(cfg.MetricsEnabled)

	pkgs, err := loadPackages(ctx, cfg)
	if err != nil {
		log.Error(ctx, "failed to load packages", logger.Error(err))
		return exitError
	}

	svc := service.New(service.WithLogger(log.Named("runner")))
	_, runErr := svc.Run(ctx, pkgs, stdout)

	// Metrics are written even for failed runs so rejections are visible.
	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile, metrics.GetRegistry()); err != nil {
			log.Error(ctx, "failed to write metrics", logger.Error(err))
			return exitError
		}
		log.Debug(ctx, "metrics written", logger.String("path", cfg.MetricsFile))
	}

	if runErr != nil {
		fmt.Fprintf(stderr, "ftracker: %v\n", runErr)
		return exitError
	}
	return exitOK
}

func loadPackages(ctx context.Context, cfg *config.Config) ([]model.Package, error) {
	if cfg.PackagesFile == "" {
		return service.DefaultPackages(), nil
	}
	return config.LoadPackages(ctx, cfg.PackagesFile)
}
