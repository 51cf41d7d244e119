package planet

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/pkg/pkgconfig"
	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/pkg/pkgrouter"
	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/planet/assets"
	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/planet/inbound"
	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/planet/store"
	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/planet/usecase"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
}

// New wires the planets dataset into the router. It holds no resources, so
// the returned closer is always nil.
func New(dep Dependency) (func(context.Context) error, error) {
	file := store.NewFile(dep.Config.GetString("dataset.path"), dep.Config.GetString("dataset.sheet"))

	uc := usecase.New(usecase.Dependency{
		Loader: file,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, staticAssets(dep.Config.GetString("static.dir")))

	slog.Info("planet module ready", "dataset", file.Path(), "format", file.Format())

	return nil, nil
}

// staticAssets serves dir from disk when it exists, which lets the front end
// be edited without a rebuild. Otherwise the bundled files are used.
func staticAssets(dir string) http.FileSystem {
	if dir == "" {
		return http.FS(assets.Static())
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		slog.Warn("static directory not available, serving bundled assets", "dir", dir)
		return http.FS(assets.Static())
	}

	return http.Dir(dir)
}
