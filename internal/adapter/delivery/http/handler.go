package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/qr-redirect/internal/entity"
)

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

// newValidator returns a validator reporting json field names and knowing
// the "slug" tag.
func newValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return entity.ValidateSlug(fl.Field().String()) == nil
	})

	return validate
}

// decodeRequest decodes and validates the JSON body into dst. It writes the
// error response and returns false when the body is unusable.
func decodeRequest(w http.ResponseWriter, r *http.Request, validate *validator.Validate, dst any) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		render.Status(r, http.StatusBadRequest)
		if errors.Is(err, io.EOF) {
			render.JSON(w, r, emptyRequestBodyResponse)
		} else {
			render.JSON(w, r, invalidRequestBodyResponse)
		}
		return false
	}

	if err := validate.Struct(dst); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return false
	}

	return true
}

// idParam parses a positive int64 path parameter.
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// publicMessage extracts the client-facing part of an error wrapping
// category, e.g. "slug must match ..." from "op: validation failed: slug must
// match ...". Causes wrapped after the message are dropped.
func publicMessage(err, category error) string {
	s := err.Error()
	prefix := category.Error() + ": "

	i := strings.LastIndex(s, prefix)
	if i < 0 {
		return category.Error()
	}

	msg, _, _ := strings.Cut(s[i+len(prefix):], ": ")
	return msg
}

// renderError maps err onto a status code by its category.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var category error

	switch {
	case errors.Is(err, entity.ErrValidation):
		status, category = http.StatusBadRequest, entity.ErrValidation
	case errors.Is(err, entity.ErrConflict):
		status, category = http.StatusConflict, entity.ErrConflict
	case errors.Is(err, entity.ErrNotFound):
		status, category = http.StatusNotFound, entity.ErrNotFound
	case errors.Is(err, entity.ErrUnauthorized):
		status, category = http.StatusUnauthorized, entity.ErrUnauthorized
	default:
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
		return
	}

	render.Status(r, status)
	render.JSON(w, r, errorResponse{
		Status:  statusError,
		Message: publicMessage(err, category),
	})
}

type ctxKey struct{}

var userIDKey = ctxKey{}

func withUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func userIDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}
