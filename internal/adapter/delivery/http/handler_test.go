package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/go-chi/httplog/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vadimbarashkov/qr-redirect/internal/entity"
	"github.com/vadimbarashkov/qr-redirect/pkg/ratelimit"
	"github.com/vadimbarashkov/qr-redirect/pkg/retry"

	httpMock "github.com/vadimbarashkov/qr-redirect/mocks/http"
)

const (
	validToken = "valid-token"
	userID     = int64(1)
)

func strPtr(s string) *string {
	return &s
}

type HandlersTestSuite struct {
	suite.Suite
	logger              *httplog.Logger
	userUseCaseMock     *httpMock.MockUserUseCase
	qrCodeUseCaseMock   *httpMock.MockQrCodeUseCase
	redirectUseCaseMock *httpMock.MockRedirectUseCase
	tokensMock          *httpMock.MockTokenVerifier
	server              *httptest.Server
	e                   *httpexpect.Expect
}

func (suite *HandlersTestSuite) SetupSuite() {
	suite.logger = httplog.NewLogger("", httplog.Options{Writer: io.Discard})
}

func (suite *HandlersTestSuite) SetupSubTest() {
	suite.userUseCaseMock = httpMock.NewMockUserUseCase(suite.T())
	suite.qrCodeUseCaseMock = httpMock.NewMockQrCodeUseCase(suite.T())
	suite.redirectUseCaseMock = httpMock.NewMockRedirectUseCase(suite.T())
	suite.tokensMock = httpMock.NewMockTokenVerifier(suite.T())

	limiter := ratelimit.New(1, 2)

	router := NewRouter(
		suite.logger,
		suite.userUseCaseMock,
		suite.qrCodeUseCaseMock,
		suite.redirectUseCaseMock,
		suite.tokensMock,
		WithLoginLimiter(limiter),
		WithResolveRetry(
			retry.WithAttempts(3),
			retry.WithInitialDelay(time.Millisecond),
			retry.WithMaxDelay(time.Millisecond),
		),
	)
	suite.server = httptest.NewServer(router)
	suite.T().Cleanup(func() {
		suite.server.Close()
		limiter.Stop()
	})

	suite.e = httpexpect.Default(suite.T(), suite.server.URL)
}

func (suite *HandlersTestSuite) TearDownSubTest() {
	suite.userUseCaseMock.AssertExpectations(suite.T())
	suite.qrCodeUseCaseMock.AssertExpectations(suite.T())
	suite.redirectUseCaseMock.AssertExpectations(suite.T())
	suite.tokensMock.AssertExpectations(suite.T())
}

// authorized expects one token check and attaches the bearer token.
func (suite *HandlersTestSuite) authorized(req *httpexpect.Request) *httpexpect.Request {
	suite.tokensMock.On("Verify", validToken).Once().Return(userID, nil)
	return req.WithHeader("Authorization", "Bearer "+validToken)
}

func (suite *HandlersTestSuite) TestPing() {
	const path = "/api/v1/ping"

	suite.Run("success", func() {
		suite.e.GET(path).
			Expect().
			Status(http.StatusOK).
			Text().IsEqual("pong")
	})
}

func (suite *HandlersTestSuite) TestRegister() {
	const path = "/api/v1/auth/register"

	suite.Run("empty request body", func() {
		resp := suite.e.POST(path).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.HasValue("status", "error")
		resp.HasValue("message", "empty request body")
	})

	suite.Run("validation error", func() {
		resp := suite.e.POST(path).
			WithJSON(map[string]string{"email": "not-an-email", "password": "secret123", "name": "John"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.HasValue("status", "error")
		resp.Value("errors").Array().Value(0).Object().
			HasValue("field", "email").
			ContainsKey("message")
	})

	suite.Run("email exists", func() {
		suite.userUseCaseMock.
			On("Register", mock.Anything, "john@example.com", "secret123", "John").
			Once().
			Return(nil, fmt.Errorf("usecase.UserUseCase.Register: %w", entity.ErrEmailExists))

		resp := suite.e.POST(path).
			WithJSON(map[string]string{"email": "john@example.com", "password": "secret123", "name": "John"}).
			Expect().
			Status(http.StatusConflict).
			JSON().Object()

		resp.HasValue("status", "error")
		resp.HasValue("message", "email is already registered")
	})

	suite.Run("success", func() {
		suite.userUseCaseMock.
			On("Register", mock.Anything, "john@example.com", "secret123", "John").
			Once().
			Return(&entity.User{
				ID:           1,
				Email:        "john@example.com",
				PasswordHash: "hash",
				Name:         "John",
				Namespace:    strPtr("k3v9x0q2m7ab"),
			}, nil)

		resp := suite.e.POST(path).
			WithJSON(map[string]string{"email": "john@example.com", "password": "secret123", "name": "John"}).
			Expect().
			Status(http.StatusCreated).
			JSON().Object()

		resp.HasValue("id", 1)
		resp.HasValue("namespace", "k3v9x0q2m7ab")
		resp.NotContainsKey("password_hash")
	})
}

func (suite *HandlersTestSuite) TestLogin() {
	const path = "/api/v1/auth/login"
	body := map[string]string{"email": "john@example.com", "password": "secret123"}

	suite.Run("invalid credentials", func() {
		suite.userUseCaseMock.
			On("Login", mock.Anything, "john@example.com", "secret123").
			Once().
			Return("", time.Time{}, entity.ErrInvalidCredentials)

		resp := suite.e.POST(path).
			WithJSON(body).
			Expect().
			Status(http.StatusUnauthorized).
			JSON().Object()

		resp.HasValue("message", "invalid email or password")
	})

	suite.Run("success", func() {
		suite.userUseCaseMock.
			On("Login", mock.Anything, "john@example.com", "secret123").
			Once().
			Return("v4.local.token", time.Now().Add(time.Hour), nil)

		resp := suite.e.POST(path).
			WithJSON(body).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("token", "v4.local.token")
		resp.HasValue("token_type", "Bearer")
		resp.ContainsKey("expires_at")
	})

	suite.Run("rate limited", func() {
		suite.userUseCaseMock.
			On("Login", mock.Anything, "john@example.com", "secret123").
			Twice().
			Return("", time.Time{}, entity.ErrInvalidCredentials)

		for range 2 {
			suite.e.POST(path).WithJSON(body).Expect().Status(http.StatusUnauthorized)
		}

		suite.e.POST(path).
			WithJSON(body).
			Expect().
			Status(http.StatusTooManyRequests).
			JSON().Object().
			HasValue("status", "error")
	})
}

func (suite *HandlersTestSuite) TestAuthenticator() {
	const path = "/api/v1/me"

	suite.Run("missing token", func() {
		suite.e.GET(path).
			Expect().
			Status(http.StatusUnauthorized).
			JSON().Object().
			HasValue("status", "error")
	})

	suite.Run("wrong scheme", func() {
		suite.e.GET(path).
			WithHeader("Authorization", "Basic dXNlcjpwYXNz").
			Expect().
			Status(http.StatusUnauthorized)
	})

	suite.Run("invalid token", func() {
		suite.tokensMock.On("Verify", "forged").Once().Return(int64(0), entity.ErrInvalidToken)

		suite.e.GET(path).
			WithHeader("Authorization", "Bearer forged").
			Expect().
			Status(http.StatusUnauthorized)
	})
}

func (suite *HandlersTestSuite) TestMe() {
	const path = "/api/v1/me"

	suite.Run("success", func() {
		suite.userUseCaseMock.
			On("GetUser", mock.Anything, userID).
			Once().
			Return(&entity.User{ID: userID, Email: "john@example.com", Name: "John"}, nil)

		resp := suite.authorized(suite.e.GET(path)).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("email", "john@example.com")
		resp.Value("namespace").IsNull()
	})
}

func (suite *HandlersTestSuite) TestAssignNamespace() {
	const path = "/api/v1/me/namespace"

	suite.Run("already assigned", func() {
		suite.userUseCaseMock.
			On("AssignNamespace", mock.Anything, userID).
			Once().
			Return(nil, entity.ErrNamespaceAssigned)

		resp := suite.authorized(suite.e.POST(path)).
			Expect().
			Status(http.StatusConflict).
			JSON().Object()

		resp.HasValue("message", "namespace is already assigned")
	})

	suite.Run("success", func() {
		suite.userUseCaseMock.
			On("AssignNamespace", mock.Anything, userID).
			Once().
			Return(&entity.User{ID: userID, Namespace: strPtr("k3v9x0q2m7ab")}, nil)

		suite.authorized(suite.e.POST(path)).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			HasValue("namespace", "k3v9x0q2m7ab")
	})
}

func (suite *HandlersTestSuite) TestCreateQRCode() {
	const path = "/api/v1/qrcodes"

	suite.Run("invalid slug", func() {
		resp := suite.authorized(suite.e.POST(path)).
			WithJSON(map[string]string{"name": "Menu", "slug": "bad slug"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.Value("errors").Array().Value(0).Object().
			HasValue("field", "slug")
	})

	suite.Run("slug exists", func() {
		suite.qrCodeUseCaseMock.
			On("CreateQRCode", mock.Anything, userID, "Menu", "menu").
			Once().
			Return(nil, entity.ErrSlugExists)

		resp := suite.authorized(suite.e.POST(path)).
			WithJSON(map[string]string{"name": "Menu", "slug": "menu"}).
			Expect().
			Status(http.StatusConflict).
			JSON().Object()

		resp.HasValue("message", "already have a QR code with this slug")
	})

	suite.Run("server error", func() {
		suite.qrCodeUseCaseMock.
			On("CreateQRCode", mock.Anything, userID, "Menu", "menu").
			Once().
			Return(nil, fmt.Errorf("%w: %w", entity.ErrStorage, errors.New("connection refused")))

		resp := suite.authorized(suite.e.POST(path)).
			WithJSON(map[string]string{"name": "Menu", "slug": "menu"}).
			Expect().
			Status(http.StatusInternalServerError).
			JSON().Object()

		resp.HasValue("message", "server error occurred")
	})

	suite.Run("success", func() {
		qr := &entity.QRCode{ID: 7, UserID: userID, Name: "Menu", Slug: "menu", Namespace: "ns"}
		suite.qrCodeUseCaseMock.
			On("CreateQRCode", mock.Anything, userID, "Menu", "menu").
			Once().
			Return(qr, nil)
		suite.qrCodeUseCaseMock.On("PublicURL", qr).Once().Return("https://qr.example/r/ns/menu")

		resp := suite.authorized(suite.e.POST(path)).
			WithJSON(map[string]string{"name": "Menu", "slug": "menu"}).
			Expect().
			Status(http.StatusCreated).
			JSON().Object()

		resp.HasValue("id", 7)
		resp.HasValue("address", "ns/menu")
		resp.HasValue("public_url", "https://qr.example/r/ns/menu")
		resp.Value("active_redirect").IsNull()
	})
}

func (suite *HandlersTestSuite) TestListQRCodes() {
	const path = "/api/v1/qrcodes"

	suite.Run("success", func() {
		qrs := []*entity.QRCode{
			{ID: 1, Slug: "a", Namespace: "ns"},
			{ID: 2, Slug: "b", Namespace: "ns", ActiveRedirect: &entity.Redirect{ID: 3, URL: "https://example.com", IsActive: true}},
		}
		suite.qrCodeUseCaseMock.On("ListQRCodes", mock.Anything, userID).Once().Return(qrs, nil)
		suite.qrCodeUseCaseMock.On("PublicURL", mock.Anything).Twice().Return("https://qr.example/r/ns/x")

		arr := suite.authorized(suite.e.GET(path)).
			Expect().
			Status(http.StatusOK).
			JSON().Array()

		arr.Length().IsEqual(2)
		arr.Value(1).Object().Value("active_redirect").Object().HasValue("url", "https://example.com")
	})
}

func (suite *HandlersTestSuite) TestGetQRCode() {
	const path = "/api/v1/qrcodes/%s"

	suite.Run("invalid id", func() {
		suite.authorized(suite.e.GET(fmt.Sprintf(path, "abc"))).
			Expect().
			Status(http.StatusBadRequest)
	})

	suite.Run("not found", func() {
		suite.qrCodeUseCaseMock.
			On("GetQRCode", mock.Anything, userID, int64(7)).
			Once().
			Return(nil, entity.ErrQRCodeNotFound)

		resp := suite.authorized(suite.e.GET(fmt.Sprintf(path, "7"))).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object()

		resp.HasValue("message", "qr code not found")
	})
}

func (suite *HandlersTestSuite) TestSetActiveRedirect() {
	const path = "/api/v1/qrcodes/7/redirect"

	suite.Run("validation error", func() {
		suite.authorized(suite.e.PUT(path)).
			WithJSON(map[string]string{"url": "not a url"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			Value("errors").Array().Value(0).Object().HasValue("field", "url")
	})

	suite.Run("rejected scheme", func() {
		suite.redirectUseCaseMock.
			On("SetActiveRedirect", mock.Anything, userID, int64(7), "ftp://example.com").
			Once().
			Return(nil, entity.ErrInvalidURL)

		suite.authorized(suite.e.PUT(path)).
			WithJSON(map[string]string{"url": "ftp://example.com"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			HasValue("message", "url must be an absolute http(s) url")
	})

	suite.Run("success", func() {
		suite.redirectUseCaseMock.
			On("SetActiveRedirect", mock.Anything, userID, int64(7), "https://example.com").
			Once().
			Return(&entity.Redirect{ID: 3, QRCodeID: 7, URL: "https://example.com", IsActive: true}, nil)

		resp := suite.authorized(suite.e.PUT(path)).
			WithJSON(map[string]string{"url": "https://example.com"}).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("is_active", true)
		resp.HasValue("visit_count", 0)
	})
}

func (suite *HandlersTestSuite) TestListRedirects() {
	const path = "/api/v1/qrcodes/7/redirects"

	suite.Run("success", func() {
		suite.redirectUseCaseMock.
			On("ListRedirects", mock.Anything, userID, int64(7)).
			Once().
			Return([]*entity.Redirect{{ID: 2, IsActive: true}, {ID: 1, VisitCount: 4}}, nil)

		arr := suite.authorized(suite.e.GET(path)).
			Expect().
			Status(http.StatusOK).
			JSON().Array()

		arr.Length().IsEqual(2)
		arr.Value(1).Object().HasValue("visit_count", 4)
	})
}

func (suite *HandlersTestSuite) TestRenderImage() {
	const path = "/api/v1/qrcodes/7/image"

	suite.Run("invalid size", func() {
		suite.authorized(suite.e.GET(path)).
			WithQuery("size", "big").
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			HasValue("message", "size must be a number")
	})

	suite.Run("success", func() {
		opts := entity.DefaultImageOptions()
		opts.Size = 512
		opts.Style = entity.StyleDot
		opts.Logo = true

		suite.qrCodeUseCaseMock.
			On("RenderImage", mock.Anything, userID, int64(7), opts).
			Once().
			Return([]byte("png"), nil)

		resp := suite.authorized(suite.e.GET(path)).
			WithQuery("size", 512).
			WithQuery("style", "dot").
			WithQuery("logo", "true").
			Expect().
			Status(http.StatusOK)

		resp.Header("Content-Type").IsEqual("image/png")
		resp.Body().IsEqual("png")
	})
}

func (suite *HandlersTestSuite) TestResolve() {
	const path = "/r/ns/menu"

	suite.Run("redirects to destination", func() {
		suite.redirectUseCaseMock.
			On("Resolve", mock.Anything, "ns", "menu").
			Once().
			Return(&entity.Resolution{URL: "https://example.com/menu"}, nil)

		resp := suite.e.GET(path).
			WithRedirectPolicy(httpexpect.DontFollowRedirects).
			Expect().
			Status(http.StatusFound)

		resp.Header("Location").IsEqual("https://example.com/menu")
		resp.Header("Cache-Control").IsEqual("no-store")
	})

	suite.Run("redirects to fallback", func() {
		suite.redirectUseCaseMock.
			On("Resolve", mock.Anything, "ns", "menu").
			Once().
			Return(&entity.Resolution{URL: "https://example.com/404", Fallback: true}, nil)

		suite.e.GET(path).
			WithRedirectPolicy(httpexpect.DontFollowRedirects).
			Expect().
			Status(http.StatusFound).
			Header("Location").IsEqual("https://example.com/404")
	})

	suite.Run("retries storage errors", func() {
		storageErr := fmt.Errorf("%w: %w", entity.ErrStorage, errors.New("connection reset"))
		suite.redirectUseCaseMock.
			On("Resolve", mock.Anything, "ns", "menu").
			Once().
			Return(nil, storageErr)
		suite.redirectUseCaseMock.
			On("Resolve", mock.Anything, "ns", "menu").
			Once().
			Return(&entity.Resolution{URL: "https://example.com/menu"}, nil)

		suite.e.GET(path).
			WithRedirectPolicy(httpexpect.DontFollowRedirects).
			Expect().
			Status(http.StatusFound)
	})

	suite.Run("storage unavailable", func() {
		storageErr := fmt.Errorf("%w: %w", entity.ErrStorage, errors.New("connection reset"))
		suite.redirectUseCaseMock.
			On("Resolve", mock.Anything, "ns", "menu").
			Times(3).
			Return(nil, storageErr)

		suite.e.GET(path).
			WithRedirectPolicy(httpexpect.DontFollowRedirects).
			Expect().
			Status(http.StatusInternalServerError).
			JSON().Object().
			HasValue("status", "error")
	})

	suite.Run("other errors are not retried", func() {
		suite.redirectUseCaseMock.
			On("Resolve", mock.Anything, "ns", "menu").
			Once().
			Return(nil, errors.New("unknown error"))

		suite.e.GET(path).
			WithRedirectPolicy(httpexpect.DontFollowRedirects).
			Expect().
			Status(http.StatusInternalServerError)
	})
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
