package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/ftracker/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
				convey.So(cfg.MetricsEnabled, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("FTRACKER_LOG_LEVEL", "debug")
			_ = os.Setenv("FTRACKER_LOG_FORMAT", "json")
			_ = os.Setenv("FTRACKER_PACKAGES_FILE", "/data/packages.yaml")
			_ = os.Setenv("FTRACKER_METRICS_FILE", "/var/lib/node_exporter/ftracker.prom")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.PackagesFile, convey.ShouldEqual, "/data/packages.yaml")
				convey.So(cfg.MetricsFile, convey.ShouldEqual, "/var/lib/node_exporter/ftracker.prom")
			})
		})

		convey.Convey("When loading config with a boolean environment variable", func() {
			_ = os.Setenv("FTRACKER_METRICS_ENABLED", "false")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then the string is decoded into a bool", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.MetricsEnabled, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
log_level: warn
log_format: json
packages_file: ./packages.yaml
metrics_enabled: true
metrics_file: ./ftracker.prom
`
			tmpFile := createTempFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("FTRACKER_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.PackagesFile, convey.ShouldEqual, "./packages.yaml")
				convey.So(cfg.MetricsFile, convey.ShouldEqual, "./ftracker.prom")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
log_level: warn
packages_file: ./packages.yaml
`
			tmpFile := createTempFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("FTRACKER_CONFIG", tmpFile)
			_ = os.Setenv("FTRACKER_LOG_LEVEL", "error")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "error")
				convey.So(cfg.PackagesFile, convey.ShouldEqual, "./packages.yaml")
				convey.So(cfg.LogFormat, convey.ShouldEqual, config.LogFormatText)
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("FTRACKER_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("FTRACKER_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an invalid log format", func() {
			_ = os.Setenv("FTRACKER_LOG_FORMAT", "xml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an invalid boolean", func() {
			_ = os.Setenv("FTRACKER_METRICS_ENABLED", "not_a_bool")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"FTRACKER_CONFIG",
		"FTRACKER_LOG_LEVEL",
		"FTRACKER_LOG_FORMAT",
		"FTRACKER_PACKAGES_FILE",
		"FTRACKER_METRICS_ENABLED",
		"FTRACKER_METRICS_FILE",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempFile(content string) string {
	tmpFile, err := os.CreateTemp("", "ftracker-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
