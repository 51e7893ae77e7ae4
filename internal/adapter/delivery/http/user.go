package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/qr-redirect/internal/entity"
)

type userUseCase interface {
	Register(ctx context.Context, email, password, name string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (string, time.Time, error)
	GetUser(ctx context.Context, id int64) (*entity.User, error)
	AssignNamespace(ctx context.Context, userID int64) (*entity.User, error)
}

type userHandler struct {
	useCase  userUseCase
	validate *validator.Validate
}

func newUserHandler(useCase userUseCase, validate *validator.Validate) *userHandler {
	return &userHandler{
		useCase:  useCase,
		validate: validate,
	}
}

func (h *userHandler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	user, err := h.useCase.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toUserResponse(user))
}

func (h *userHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	token, expiresAt, err := h.useCase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, tokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
	})
}

func (h *userHandler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.useCase.GetUser(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toUserResponse(user))
}

func (h *userHandler) assignNamespace(w http.ResponseWriter, r *http.Request) {
	user, err := h.useCase.AssignNamespace(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toUserResponse(user))
}
