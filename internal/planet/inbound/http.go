package inbound

import (
	"context"
	"net/http"

	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/planet/entity"
	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/pkg/pkgrouter"
)

type uc interface {
	Planets(ctx context.Context) (entity.Dataset, error)
}

// RegisterHTTPEndpoint mounts the index page and the dataset API. Static
// front-end files are served from assets under /static/ when assets is not nil.
func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, assets http.FileSystem) {
	end := &HTTPEndpoint{uc: uc, page: indexPage()}

	r.Handle(http.MethodGet, "/", http.HandlerFunc(end.Index))
	r.GET("/api/planets", end.Planets)

	if assets != nil {
		r.ServeFiles("/static/*filepath", assets)
	}
}
