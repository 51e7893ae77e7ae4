// Package recoverer turns handler panics into JSON error responses.
package recoverer

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
)

// New returns a middleware that recovers from panics, attaches the panic and
// its stack to the request log entry and responds 500 with body as JSON.
// http.ErrAbortHandler is re-raised so the server can abort the connection.
func New(body any) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint
					panic(rec)
				}

				httplog.LogEntrySetField(r.Context(), "panic", slog.AnyValue(rec))
				httplog.LogEntrySetField(r.Context(), "stack", slog.StringValue(string(debug.Stack())))

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, body)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
