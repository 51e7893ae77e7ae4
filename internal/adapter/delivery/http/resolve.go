package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/vadimbarashkov/qr-redirect/internal/entity"
	"github.com/vadimbarashkov/qr-redirect/pkg/retry"
)

type resolveHandler struct {
	redirects redirectUseCase
	retryOpts []retry.Option
}

func newResolveHandler(redirects redirectUseCase, retryOpts []retry.Option) *resolveHandler {
	opts := append([]retry.Option{
		retry.WithRetryIf(func(err error) bool {
			return errors.Is(err, entity.ErrStorage)
		}),
	}, retryOpts...)

	return &resolveHandler{
		redirects: redirects,
		retryOpts: opts,
	}
}

// resolve sends the visitor to the active destination of the scanned code,
// or to the fallback URL when there is none. Responses are never cached so
// every scan reaches the counter.
func (h *resolveHandler) resolve(w http.ResponseWriter, r *http.Request) {
	namespace := chi.URLParam(r, "namespace")
	slug := chi.URLParam(r, "slug")

	opts := make([]retry.Option, 0, len(h.retryOpts)+1)
	opts = append(opts, h.retryOpts...)
	opts = append(opts, retry.WithObserver(func(attempt int, _ error, _ time.Duration) {
		httplog.LogEntrySetField(r.Context(), "retries", slog.IntValue(attempt))
	}))

	var res *entity.Resolution
	err := retry.Do(r.Context(), func(ctx context.Context) error {
		var err error
		res, err = h.redirects.Resolve(ctx, namespace, slug)
		return err
	}, opts...)
	if err != nil {
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	if res.Fallback {
		httplog.LogEntrySetField(r.Context(), "fallback", slog.BoolValue(true))
	}

	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, res.URL, http.StatusFound)
}
