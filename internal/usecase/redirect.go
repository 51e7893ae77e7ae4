package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/vadimbarashkov/qr-redirect/internal/entity"
)

type redirectRepository interface {
	SwitchActive(ctx context.Context, userID, qrCodeID int64, url string) (*entity.Redirect, error)
	ResolveAndCount(ctx context.Context, namespace, slug string) (*entity.Redirect, error)
	ListByQRCode(ctx context.Context, qrCodeID int64) ([]*entity.Redirect, error)
}

type qrCodeGetter interface {
	RetrieveByID(ctx context.Context, userID, id int64) (*entity.QRCode, error)
}

// RedirectUseCase switches the destination of a QR code and resolves public
// addresses to destinations. It never retries: callers own the retry policy.
type RedirectUseCase struct {
	redirectRepo redirectRepository
	qrCodes      qrCodeGetter
	fallbackURL  string
}

// NewRedirectUseCase creates a RedirectUseCase. Misses resolve to fallbackURL.
func NewRedirectUseCase(redirectRepo redirectRepository, qrCodes qrCodeGetter, fallbackURL string) *RedirectUseCase {
	return &RedirectUseCase{
		redirectRepo: redirectRepo,
		qrCodes:      qrCodes,
		fallbackURL:  fallbackURL,
	}
}

// SetActiveRedirect makes url the only active destination of the QR code.
func (uc *RedirectUseCase) SetActiveRedirect(ctx context.Context, userID, qrCodeID int64, url string) (*entity.Redirect, error) {
	const op = "usecase.RedirectUseCase.SetActiveRedirect"

	if err := entity.ValidateURL(url); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	redirect, err := uc.redirectRepo.SwitchActive(ctx, userID, qrCodeID, url)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to switch active redirect: %w", op, err)
	}

	return redirect, nil
}

// ListRedirects returns the redirect history of a QR code owned by userID.
func (uc *RedirectUseCase) ListRedirects(ctx context.Context, userID, qrCodeID int64) ([]*entity.Redirect, error) {
	const op = "usecase.RedirectUseCase.ListRedirects"

	if _, err := uc.qrCodes.RetrieveByID(ctx, userID, qrCodeID); err != nil {
		return nil, fmt.Errorf("%s: failed to get qr code: %w", op, err)
	}

	redirects, err := uc.redirectRepo.ListByQRCode(ctx, qrCodeID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list redirects: %w", op, err)
	}

	return redirects, nil
}

// Resolve counts a visit on the active redirect of namespace/slug and returns
// its destination. Unknown addresses and QR codes without an active redirect
// resolve to the fallback URL instead of failing.
func (uc *RedirectUseCase) Resolve(ctx context.Context, namespace, slug string) (*entity.Resolution, error) {
	const op = "usecase.RedirectUseCase.Resolve"

	if namespace == "" || entity.ValidateSlug(slug) != nil {
		return uc.fallback(), nil
	}

	redirect, err := uc.redirectRepo.ResolveAndCount(ctx, namespace, slug)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return uc.fallback(), nil
		}

		return nil, fmt.Errorf("%s: failed to resolve redirect: %w", op, err)
	}

	return &entity.Resolution{
		URL:      redirect.URL,
		Redirect: redirect,
	}, nil
}

func (uc *RedirectUseCase) fallback() *entity.Resolution {
	return &entity.Resolution{
		URL:      uc.fallbackURL,
		Fallback: true,
	}
}
