package inbound

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	g "maragu.dev/gomponents"
)

type HTTPEndpoint struct {
	uc   uc
	page g.Node
}

func (h *HTTPEndpoint) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.page.Render(&buf); err != nil {
		slog.ErrorContext(r.Context(), "failed to render index page", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck,gosec // client went away
	w.Write(buf.Bytes())
}

func (h *HTTPEndpoint) Planets(ctx context.Context, _ *http.Request) (any, error) {
	ds, err := h.uc.Planets(ctx)
	if err != nil {
		return nil, err
	}

	return PlanetsResponse(ds.Rows()), nil
}
