package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/pkg/pkgconfig"
	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/pkg/pkglog"
	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/pkg/pkgrouter"
	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/pkg/pkgroutine"
	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/pkg/pkguid"
)

const defaultShutdownTimeout = 10 * time.Second

// defaults reproduce the service's fixed startup behavior when no config file
// is mounted: every interface on port 5000, debug logging, the CSV next to
// the binary.
func defaults() map[string]any {
	return map[string]any{
		"tz":                         "",
		"debug":                      true,
		"server.address.http":        "0.0.0.0:5000",
		"server.correlation_id":      "uuid",
		"server.cors.origins":        "*",
		"server.read_header_timeout": "10s",
		"server.shutdown_timeout":    defaultShutdownTimeout.String(),
		"dataset.path":               "data_planets.csv",
		"dataset.sheet":              "",
		"static.dir":                 "",
		"modules.planet.enabled":     true,
		"goroutine.max":              10,
	}
}

func configPath() string {
	if os.Getenv("LOCAL") == "true" {
		return "./config/config.yaml"
	}
	return "/config/config.yaml"
}

func (a *App) initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	path := configPath()
	cfg, err := pkgconfig.NewViper(path, defaults())
	if err != nil {
		slog.Error("failed to init config", "path", path, "error", err)
		os.Exit(1)
	}

	if tz := cfg.GetString("tz"); tz != "" {
		//nolint:errcheck,gosec // ignore error
		os.Setenv("TZ", tz)
	}

	followDebug(cfg)

	a.config = cfg
}

// followDebug applies the debug flag now and again on every config file change.
func followDebug(cfg *pkgconfig.Viper) {
	pkglog.SetDebug(cfg.GetBool("debug"))
	cfg.OnChange(func() {
		pkglog.SetDebug(cfg.GetBool("debug"))
	})
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(int(a.config.GetInt("goroutine.max")))

	uid, err := newIDGenerator(a.config.GetString("server.correlation_id"))
	if err != nil {
		slog.Error("failed to init id generator", "error", err)
		os.Exit(1)
	}
	a.uid = uid
}

func newIDGenerator(strategy string) (pkguid.StringID, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", "uuid":
		return pkguid.NewUUID(), nil
	case "snowflake":
		return pkguid.NewSnowflakeString()
	default:
		return nil, fmt.Errorf("unknown correlation id strategy %q", strategy)
	}
}

func newCORS(origins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{pkgrouter.HeaderCorrelationID},
	})
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uid)

	readHeaderTimeout := a.config.GetDuration("server.read_header_timeout")
	if readHeaderTimeout <= 0 {
		readHeaderTimeout = 10 * time.Second
	}

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           newCORS(a.config.GetArray("server.cors.origins")).Handler(a.router),
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
