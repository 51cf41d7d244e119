package planet

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/pkg/pkgconfig"
	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/pkg/pkgrouter"
	"github.com/Data-Wrangling-and-Visualisation/potentially-habitable-planets/internal/pkg/pkguid"
)

func newModuleRouter(t *testing.T, staticDir string) *pkgrouter.Router {
	t.Helper()

	dataset := filepath.Join(t.TempDir(), "data_planets.csv")
	require.NoError(t, os.WriteFile(dataset, []byte("a,b\n1,x\n"), 0o600))

	cfg, err := pkgconfig.NewViper(filepath.Join(t.TempDir(), "config.yaml"), map[string]any{
		"dataset.path": dataset,
		"static.dir":   staticDir,
	})
	require.NoError(t, err)

	router := pkgrouter.NewRouter(pkguid.NewUUID())
	closer, err := New(Dependency{Config: cfg, Router: router})
	require.NoError(t, err)
	assert.Nil(t, closer)

	return router
}

func fetch(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestBundledFrontendIsServed(t *testing.T) {
	router := newModuleRouter(t, "")

	for _, path := range []string{
		"/static/js/script.js",
		"/static/js/D3/orbit.js",
		"/static/js/D3/starmap.js",
		"/static/js/D3/flux.js",
		"/static/css/style.css",
	} {
		rec := fetch(t, router, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Body.String(), path)
	}

	rec := fetch(t, router, "/static/js/script.js")
	assert.Contains(t, rec.Body.String(), "fetch('/api/planets')")
	assert.Contains(t, rec.Header().Get("Content-Type"), "javascript")

	rec = fetch(t, router, "/api/planets")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `[{"a":1,"b":"x"}]`, rec.Body.String())
}

func TestMissingStaticDirFallsBackToBundle(t *testing.T) {
	router := newModuleRouter(t, filepath.Join(t.TempDir(), "nope"))

	rec := fetch(t, router, "/static/js/D3/flux.js")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStaticDirOverridesBundle(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "js", "script.js"), []byte("// local"), 0o600))

	router := newModuleRouter(t, dir)

	rec := fetch(t, router, "/static/js/script.js")
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "// local", string(body))

	assert.Equal(t, http.StatusNotFound, fetch(t, router, "/static/js/D3/orbit.js").Code)
}
