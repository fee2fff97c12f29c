package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/kbukum/untappd/api"
	"github.com/kbukum/untappd/config"
	"github.com/kbukum/untappd/logger"
	"github.com/kbukum/untappd/observability"
	"github.com/kbukum/untappd/untappd"
	"github.com/kbukum/untappd/version"
)

const appName = "untappd"

// app holds the state shared by all subcommands of one invocation.
type app struct {
	out, errOut io.Writer

	configFile string
	dryRun     bool

	settings  *config.Settings
	telemetry *observability.Telemetry
}

// setup loads settings, configures logging and, when enabled, tracing and
// metrics export.
func (a *app) setup(cmd *cobra.Command) error {
	var opts []config.LoaderOption
	if a.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.configFile))
	}
	s, err := config.Load(appName, opts...)
	if err != nil {
		return err
	}
	a.settings = s
	logger.Init(s.Logging, appName)

	if !s.Tracing.Enabled {
		return nil
	}
	return a.initTelemetry(cmd.Context())
}

func (a *app) initTelemetry(ctx context.Context) error {
	t := a.settings.Tracing
	cfg := observability.DefaultConfig(appName)
	cfg.ServiceVersion = version.Version
	cfg.Environment = a.settings.Environment
	cfg.Endpoint = t.Endpoint
	cfg.Insecure = t.Insecure
	cfg.SampleRate = t.SampleRate

	tel, err := observability.Start(ctx, cfg)
	if err != nil {
		return err
	}
	a.telemetry = tel
	return nil
}

// teardown flushes telemetry exporters.
func (a *app) teardown(ctx context.Context) error {
	if a.telemetry == nil {
		return nil
	}
	err := a.telemetry.Shutdown(context.WithoutCancel(ctx))
	a.telemetry = nil
	return err
}

func (a *app) searchService() (*untappd.SearchService, error) {
	opts := []api.ServiceOption{api.WithUserAgent(version.UserAgent())}
	if a.telemetry != nil {
		opts = append(opts, api.WithMetrics(a.telemetry.Metrics()))
	}
	return untappd.NewManagerFromSettings(*a.settings, opts...).SearchService()
}
