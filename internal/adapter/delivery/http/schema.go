package http

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/qr-redirect/internal/entity"
)

const statusError = "error"

type registerRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=1024"`
	Name     string `json:"name" validate:"required,max=100"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Namespace *string   `json:"namespace"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Namespace: user.Namespace,
		CreatedAt: user.CreatedAt,
	}
}

type createQRCodeRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Slug string `json:"slug" validate:"required,max=64,slug"`
}

type setRedirectRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type redirectResponse struct {
	ID         int64     `json:"id"`
	QRCodeID   int64     `json:"qr_code_id"`
	URL        string    `json:"url"`
	IsActive   bool      `json:"is_active"`
	VisitCount int64     `json:"visit_count"`
	CreatedAt  time.Time `json:"created_at"`
}

func toRedirectResponse(redirect *entity.Redirect) redirectResponse {
	return redirectResponse{
		ID:         redirect.ID,
		QRCodeID:   redirect.QRCodeID,
		URL:        redirect.URL,
		IsActive:   redirect.IsActive,
		VisitCount: redirect.VisitCount,
		CreatedAt:  redirect.CreatedAt,
	}
}

func toRedirectResponses(redirects []*entity.Redirect) []redirectResponse {
	resp := make([]redirectResponse, 0, len(redirects))
	for _, redirect := range redirects {
		resp = append(resp, toRedirectResponse(redirect))
	}
	return resp
}

// qrCodeResponse carries the public address of a QR code. Internal ids of
// other users never appear in it.
type qrCodeResponse struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Slug           string            `json:"slug"`
	Namespace      string            `json:"namespace"`
	Address        string            `json:"address"`
	PublicURL      string            `json:"public_url"`
	ActiveRedirect *redirectResponse `json:"active_redirect"`
	CreatedAt      time.Time         `json:"created_at"`
}

func toQRCodeResponse(qr *entity.QRCode, publicURL string) qrCodeResponse {
	resp := qrCodeResponse{
		ID:        qr.ID,
		Name:      qr.Name,
		Slug:      qr.Slug,
		Namespace: qr.Namespace,
		Address:   qr.Address(),
		PublicURL: publicURL,
		CreatedAt: qr.CreatedAt,
	}
	if qr.ActiveRedirect != nil {
		redirect := toRedirectResponse(qr.ActiveRedirect)
		resp.ActiveRedirect = &redirect
	}
	return resp
}

// parseImageOptions reads the image options from the query string over the
// defaults. Range checks are left to entity.ImageOptions.Validate.
func parseImageOptions(q url.Values) (entity.ImageOptions, error) {
	opts := entity.DefaultImageOptions()

	if v := q.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return opts, fmt.Errorf("%w: size must be a number", entity.ErrValidation)
		}
		opts.Size = size
	}
	if v := q.Get("fg"); v != "" {
		opts.Foreground = v
	}
	if v := q.Get("bg"); v != "" {
		opts.Background = v
	}
	if v := q.Get("level"); v != "" {
		opts.Level = v
	}
	if v := q.Get("style"); v != "" {
		opts.Style = v
	}
	if v := q.Get("logo"); v != "" {
		logo, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("%w: logo must be a boolean", entity.ErrValidation)
		}
		opts.Logo = logo
	}

	return opts, nil
}

// validationError represents an individual validation error.
type validationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// errorResponse represents a structured error response.
type errorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  []validationError `json:"errors,omitempty"`
}

// Predefined error responses for common scenarios.
var (
	emptyRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "empty request body",
	}

	invalidRequestBodyResponse = errorResponse{
		Status:  statusError,
		Message: "invalid request body",
	}

	invalidIDResponse = errorResponse{
		Status:  statusError,
		Message: "invalid id",
	}

	unauthorizedResponse = errorResponse{
		Status:  statusError,
		Message: "missing or invalid bearer token",
	}

	tooManyRequestsResponse = errorResponse{
		Status:  statusError,
		Message: "too many requests",
	}

	serverErrorResponse = errorResponse{
		Status:  statusError,
		Message: "server error occurred",
	}
)

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "url":
		return "invalid url"
	case "email":
		return "invalid email"
	case "slug":
		return "only letters, digits, '-' and '_' are allowed"
	case "min":
		return "value is too short"
	case "max":
		return "value is too long"
	default:
		return "invalid value"
	}
}

func getValidationErrors(err error) []validationError {
	var validationErrs []validationError

	errs, ok := err.(validator.ValidationErrors)
	if ok {
		for _, e := range errs {
			validationErrs = append(validationErrs, validationError{
				Field:   e.Field(),
				Message: messageForTag(e.Tag()),
			})
		}
	}

	return validationErrs
}

func validationErrorResponse(err error) errorResponse {
	return errorResponse{
		Status:  statusError,
		Message: "validation error",
		Errors:  getValidationErrors(err),
	}
}
