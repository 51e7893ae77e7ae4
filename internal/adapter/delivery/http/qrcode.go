package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/qr-redirect/internal/entity"
)

type qrCodeUseCase interface {
	CreateQRCode(ctx context.Context, userID int64, name, slug string) (*entity.QRCode, error)
	GetQRCode(ctx context.Context, userID, id int64) (*entity.QRCode, error)
	ListQRCodes(ctx context.Context, userID int64) ([]*entity.QRCode, error)
	RenderImage(ctx context.Context, userID, id int64, opts entity.ImageOptions) ([]byte, error)
	PublicURL(qr *entity.QRCode) string
}

type redirectUseCase interface {
	SetActiveRedirect(ctx context.Context, userID, qrCodeID int64, url string) (*entity.Redirect, error)
	ListRedirects(ctx context.Context, userID, qrCodeID int64) ([]*entity.Redirect, error)
	Resolve(ctx context.Context, namespace, slug string) (*entity.Resolution, error)
}

type qrCodeHandler struct {
	qrCodes   qrCodeUseCase
	redirects redirectUseCase
	validate  *validator.Validate
}

func newQRCodeHandler(qrCodes qrCodeUseCase, redirects redirectUseCase, validate *validator.Validate) *qrCodeHandler {
	return &qrCodeHandler{
		qrCodes:   qrCodes,
		redirects: redirects,
		validate:  validate,
	}
}

func (h *qrCodeHandler) createQRCode(w http.ResponseWriter, r *http.Request) {
	var req createQRCodeRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	qr, err := h.qrCodes.CreateQRCode(r.Context(), userIDFromContext(r.Context()), req.Name, req.Slug)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toQRCodeResponse(qr, h.qrCodes.PublicURL(qr)))
}

func (h *qrCodeHandler) listQRCodes(w http.ResponseWriter, r *http.Request) {
	qrs, err := h.qrCodes.ListQRCodes(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		renderError(w, r, err)
		return
	}

	resp := make([]qrCodeResponse, 0, len(qrs))
	for _, qr := range qrs {
		resp = append(resp, toQRCodeResponse(qr, h.qrCodes.PublicURL(qr)))
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func (h *qrCodeHandler) getQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidIDResponse)
		return
	}

	qr, err := h.qrCodes.GetQRCode(r.Context(), userIDFromContext(r.Context()), id)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toQRCodeResponse(qr, h.qrCodes.PublicURL(qr)))
}

func (h *qrCodeHandler) setActiveRedirect(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidIDResponse)
		return
	}

	var req setRedirectRequest
	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	redirect, err := h.redirects.SetActiveRedirect(r.Context(), userIDFromContext(r.Context()), id, req.URL)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toRedirectResponse(redirect))
}

func (h *qrCodeHandler) listRedirects(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidIDResponse)
		return
	}

	redirects, err := h.redirects.ListRedirects(r.Context(), userIDFromContext(r.Context()), id)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toRedirectResponses(redirects))
}

func (h *qrCodeHandler) renderImage(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidIDResponse)
		return
	}

	opts, err := parseImageOptions(r.URL.Query())
	if err != nil {
		renderError(w, r, err)
		return
	}

	img, err := h.qrCodes.RenderImage(r.Context(), userIDFromContext(r.Context()), id, opts)
	if err != nil {
		renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(img)))
	w.WriteHeader(http.StatusOK)
	w.Write(img) //nolint:errcheck
}
