package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"

	"github.com/vanshverma888/Galytix/internal/app"
	"github.com/vanshverma888/Galytix/internal/appconf"
	"github.com/vanshverma888/Galytix/internal/gwp"
	"github.com/vanshverma888/Galytix/internal/logging"
	"github.com/vanshverma888/Galytix/internal/metrics"
	"github.com/vanshverma888/Galytix/internal/restapi"
	"github.com/vanshverma888/Galytix/internal/webui"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env file is fine; the process environment still applies.
	_ = godotenv.Load()

	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewStructuredLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	table, err := gwp.Load(cfg.DatasetPath, logger)
	if err != nil {
		logging.LogError(logger, "failed to load GWP dataset", err,
			slog.String("path", cfg.DatasetPath))
		os.Exit(1)
	}
	table.LogStatistics(logger)

	stats := table.Stats()
	metrics.SetDatasetStats(stats.RecordsLoaded, stats.RowsSkipped, stats.CellsDefaulted)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, app.New(cfg, logger, table)); err != nil {
		logging.LogError(logger, "server stopped with error", err)
		os.Exit(1)
	}
}

// parseConfig reads flags from args. GWP_* environment variables supply the
// flag defaults, so flags win over the environment.
func parseConfig(args []string, output io.Writer) (appconf.Config, error) {
	var cfg appconf.Config

	port, err := appconf.IntFromEnv(appconf.EnvPort, appconf.DefaultPort)
	if err != nil {
		return cfg, err
	}
	rateLimit, err := appconf.IntFromEnv(appconf.EnvRateLimit, appconf.DefaultRateLimit)
	if err != nil {
		return cfg, err
	}
	trustProxy, err := appconf.BoolFromEnv(appconf.EnvTrustProxy, appconf.DefaultTrustProxy)
	if err != nil {
		return cfg, err
	}

	var env, logLevel string

	fs := flag.NewFlagSet("gwp-api", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Port, "port", port, "API server port")
	fs.StringVar(&env, "env", appconf.StringFromEnv(appconf.EnvEnvironment, appconf.DefaultEnv), "Environment (development|test|production)")
	fs.StringVar(&cfg.DatasetPath, "dataset", appconf.StringFromEnv(appconf.EnvDatasetPath, appconf.DefaultDatasetPath), "Path to the GWP by country CSV file")
	fs.IntVar(&cfg.RateLimit, "rate-limit", rateLimit, "Requests per second allowed per client (0 blocks all, negative disables)")
	fs.BoolVar(&cfg.TrustProxy, "trust-proxy", trustProxy, "Key rate limiting by X-Forwarded-For (only behind a trusted proxy)")
	fs.StringVar(&logLevel, "log-level", appconf.StringFromEnv(appconf.EnvLogLevel, appconf.DefaultLogLevel), "Log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.Port < 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("invalid port %d", cfg.Port)
	}

	cfg.Env = appconf.EnvFlagToEnvironment(env)
	cfg.LogLevel, err = logging.ParseLevel(logLevel)
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}

// buildHandler wires the REST API, and the debug pages outside production,
// behind the middleware chain.
func buildHandler(application *app.Application) (http.Handler, *restapi.RestAPI) {
	api := restapi.NewRestAPI(application)

	router := httprouter.New()
	api.SetRoutes(router)

	if application.Config.DebugEnabled() {
		webUI := &webui.WebUI{Application: application}
		webUI.SetWebUIRoutes(router)
	}

	return api.WithMiddleware(router), api
}

// run serves until ctx is cancelled, then drains in-flight requests.
func run(ctx context.Context, application *app.Application) (err error) {
	logger := application.Logger
	handler, api := buildHandler(application)
	defer api.Shutdown()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", application.Config.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", application.Config.Env.String())
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	defer logging.HandleDeferredError(&err, func() error {
		return srv.Shutdown(shutdownCtx)
	}, logger, "server_shutdown")

	return nil
}
