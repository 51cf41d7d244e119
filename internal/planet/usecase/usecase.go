package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/planet/entity"
	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/pkg/pkgerror"
)

type Loader interface {
	Load(ctx context.Context) (entity.Dataset, error)
}

type Dependency struct {
	Loader Loader
}

type Usecase struct {
	loader Loader
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		loader: dep.Loader,
	}
}

// Planets reads the dataset fresh on every call. Any loader failure is
// reported to the caller as an opaque server error.
func (u *Usecase) Planets(ctx context.Context) (entity.Dataset, error) {
	if u.loader == nil {
		return entity.Dataset{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	ds, err := u.loader.Load(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load planets dataset", "error", err)
		return entity.Dataset{}, pkgerror.NewServer(err)
	}

	slog.DebugContext(ctx, "planets dataset loaded", "columns", len(ds.Columns), "records", len(ds.Records))

	return ds, nil
}
