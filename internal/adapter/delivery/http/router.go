// Package http provides the HTTP delivery layer of the QR redirect service:
// the authenticated management API under /api/v1 and the public redirect
// route under /r.
package http

import (
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/vadimbarashkov/qr-redirect/pkg/middleware/recoverer"
	"github.com/vadimbarashkov/qr-redirect/pkg/ratelimit"
	"github.com/vadimbarashkov/qr-redirect/pkg/retry"
)

type routerOptions struct {
	loginLimiter *ratelimit.KeyedLimiter
	resolveRetry []retry.Option
}

// RouterOption configures NewRouter.
type RouterOption func(*routerOptions)

// WithLoginLimiter throttles login attempts per client address.
func WithLoginLimiter(l *ratelimit.KeyedLimiter) RouterOption {
	return func(o *routerOptions) {
		o.loginLimiter = l
	}
}

// WithResolveRetry sets the backoff applied to storage errors on the public
// redirect route.
func WithResolveRetry(opts ...retry.Option) RouterOption {
	return func(o *routerOptions) {
		o.resolveRetry = opts
	}
}

// NewRouter initializes and returns a new Chi router configured with middleware and routes for the QR redirect API.
func NewRouter(
	logger *httplog.Logger,
	userUseCase userUseCase,
	qrCodeUseCase qrCodeUseCase,
	redirectUseCase redirectUseCase,
	tokens tokenVerifier,
	opts ...RouterOption,
) *chi.Mux {
	var o routerOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*"},
		AllowedMethods:   []string{"POST", "GET", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(recoverer.New(serverErrorResponse))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.yml")
	})

	validate := newValidator()
	users := newUserHandler(userUseCase, validate)
	qrCodes := newQRCodeHandler(qrCodeUseCase, redirectUseCase, validate)
	resolver := newResolveHandler(redirectUseCase, o.resolveRetry)

	r.Get("/r/{namespace}/{slug}", resolver.resolve)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", handlePing)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", users.register)

			r.Group(func(r chi.Router) {
				if o.loginLimiter != nil {
					r.Use(o.loginLimiter.Middleware(clientAddr, tooManyRequests))
				}
				r.Post("/login", users.login)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator(tokens))

			r.Get("/me", users.me)
			r.Post("/me/namespace", users.assignNamespace)

			r.Route("/qrcodes", func(r chi.Router) {
				r.Post("/", qrCodes.createQRCode)
				r.Get("/", qrCodes.listQRCodes)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", qrCodes.getQRCode)
					r.Put("/redirect", qrCodes.setActiveRedirect)
					r.Get("/redirects", qrCodes.listRedirects)
					r.Get("/image", qrCodes.renderImage)
				})
			})
		})
	})

	return r
}

// clientAddr keys the login limiter. RealIP has already replaced RemoteAddr
// with the forwarded client address when present.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func tooManyRequests(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusTooManyRequests)
	render.JSON(w, r, tooManyRequestsResponse)
}
