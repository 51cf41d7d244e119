package app

import (
	"context"
	"net/http"
	"time"

	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/pkg/pkgconfig"
	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/pkg/pkglog"
	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/pkg/pkgrouter"
	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/pkg/pkgroutine"
	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uid       pkguid.StringID
	goroutine *pkgroutine.Manager

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	pkglog.InitLogging()

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}

// ShutdownTimeout bounds how long Stop may wait for in-flight requests.
func (a *App) ShutdownTimeout() time.Duration {
	if d := a.config.GetDuration("server.shutdown_timeout"); d > 0 {
		return d
	}
	return defaultShutdownTimeout
}
