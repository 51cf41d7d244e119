package pkgrouter

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
)

//nolint:contextcheck // logging only
func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				//nolint:err113,errorlint // this must compare directly
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				slog.ErrorContext(r.Context(), "panic on the server", "because", rvr)
				printStackTrace(os.Stderr, strings.Split(string(debug.Stack()), "\n"))

				writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// printStackTrace writes only the frames that belong to this module, trimmed
// to "internal/<pkg>/<file>.go:<line>".
func printStackTrace(out io.Writer, lines []string) {
	fmt.Fprintln(out, "===== ===== START ===== =====")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "/internal/") {
			continue
		}

		idx := strings.Index(line, ".go:")
		if idx == -1 {
			continue
		}

		short := line
		if end := strings.IndexByte(line[idx:], ' '); end != -1 {
			short = line[:idx+end]
		}
		short = short[strings.Index(short, "/internal/")+1:]
		fmt.Fprintln(out, "stack trace: ", short)
	}
	fmt.Fprintln(out, "===== ===== END ===== =====")
}
