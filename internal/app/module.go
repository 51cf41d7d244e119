package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/planet"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.planet.enabled") {
		closer, err := planet.New(planet.Dependency{
			Config: a.config,
			Router: a.router,
		})
		if err != nil {
			slog.Error("failed to init module planet", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Planet"] = closer
		}
	}
}
