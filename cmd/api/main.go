package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"metro.transit.dev/internal/app"
	"metro.transit.dev/internal/appconf"
	"metro.transit.dev/internal/logging"
	"metro.transit.dev/internal/metro"
	"metro.transit.dev/internal/restapi"
)

// parseFlags fills a Config from args, starting from appconf.Default().
func parseFlags(args []string) (appconf.Config, error) {
	cfg := appconf.Default()
	var envFlag, apiKeysFlag string

	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "API server port")
	fs.StringVar(&envFlag, "env", cfg.Env.String(), "Environment (development|test|production)")
	fs.StringVar(&apiKeysFlag, "api-keys", strings.Join(cfg.ApiKeys, ","), "Comma Separated API Keys (test, etc)")
	fs.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Requests per second allowed per API key (0 disables)")
	fs.StringVar(&cfg.MetroBaseURL, "metro-url", cfg.MetroBaseURL, "Base URL of the Metro API")
	fs.DurationVar(&cfg.UpstreamTimeout, "upstream-timeout", cfg.UpstreamTimeout, "Timeout for one Metro API request")
	fs.Float64Var(&cfg.UpstreamRateLimit, "upstream-rate-limit", cfg.UpstreamRateLimit, "Metro API requests per second (0 disables)")
	fs.IntVar(&cfg.CompressionMinSize, "compression-min-size", cfg.CompressionMinSize, "Smallest JSON response in bytes that is gzipped")
	fs.IntVar(&cfg.CompressionLevel, "compression-level", cfg.CompressionLevel, "Gzip level (1-9)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return appconf.Config{}, err
	}

	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	cfg.ApiKeys = appconf.ParseAPIKeys(apiKeysFlag)
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.NewStructuredLogger(os.Stdout, level)

	if err := cfg.Validate(); err != nil {
		logging.LogError(logger, "invalid configuration", err)
		os.Exit(1)
	}

	requester, err := metro.NewHTTPRequester(metro.RequesterConfig{
		BaseURL:   cfg.MetroBaseURL,
		Timeout:   cfg.UpstreamTimeout,
		RateLimit: cfg.UpstreamRateLimit,
		Logger:    logger,
	})
	if err != nil {
		logging.LogError(logger, "failed to create metro requester", err)
		os.Exit(1)
	}

	api := restapi.NewRestAPI(&app.Application{
		Config: cfg,
		Logger: logger,
		Metro:  metro.NewClient(requester),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server",
		slog.String("addr", srv.Addr),
		slog.String("env", cfg.Env.String()),
		slog.String("metro_url", cfg.MetroBaseURL))

	err = srv.ListenAndServe()
	api.Shutdown()
	logger.Error(err.Error())
	os.Exit(1)
}
