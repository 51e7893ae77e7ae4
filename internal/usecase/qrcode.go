package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/vadimbarashkov/qr-redirect/internal/entity"
)

type qrCodeRepository interface {
	Save(ctx context.Context, userID int64, name, slug string) (*entity.QRCode, error)
	RetrieveByID(ctx context.Context, userID, id int64) (*entity.QRCode, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.QRCode, error)
}

type namespaceAllocator interface {
	EnsureNamespace(ctx context.Context, userID int64) (string, error)
}

type imageRenderer interface {
	Render(content string, opts entity.ImageOptions) ([]byte, error)
}

// QRCodeUseCase creates and reads QR codes scoped to their owner.
type QRCodeUseCase struct {
	qrCodeRepo qrCodeRepository
	namespaces namespaceAllocator
	renderer   imageRenderer
	baseURL    string
}

// NewQRCodeUseCase creates a QRCodeUseCase. baseURL is the external origin
// the rendered images point at, e.g. https://qr.example.
func NewQRCodeUseCase(qrCodeRepo qrCodeRepository, namespaces namespaceAllocator, renderer imageRenderer, baseURL string) *QRCodeUseCase {
	return &QRCodeUseCase{
		qrCodeRepo: qrCodeRepo,
		namespaces: namespaces,
		renderer:   renderer,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// CreateQRCode validates the slug before any write and stores the QR code
// under the user's namespace. The same slug may exist under other users.
func (uc *QRCodeUseCase) CreateQRCode(ctx context.Context, userID int64, name, slug string) (*entity.QRCode, error) {
	const op = "usecase.QRCodeUseCase.CreateQRCode"

	if err := entity.ValidateSlug(slug); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := entity.ValidateName(name); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := uc.namespaces.EnsureNamespace(ctx, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	qr, err := uc.qrCodeRepo.Save(ctx, userID, name, slug)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create qr code: %w", op, err)
	}

	return qr, nil
}

func (uc *QRCodeUseCase) GetQRCode(ctx context.Context, userID, id int64) (*entity.QRCode, error) {
	const op = "usecase.QRCodeUseCase.GetQRCode"

	qr, err := uc.qrCodeRepo.RetrieveByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get qr code: %w", op, err)
	}

	return qr, nil
}

func (uc *QRCodeUseCase) ListQRCodes(ctx context.Context, userID int64) ([]*entity.QRCode, error) {
	const op = "usecase.QRCodeUseCase.ListQRCodes"

	qrs, err := uc.qrCodeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list qr codes: %w", op, err)
	}

	return qrs, nil
}

// PublicURL returns the scannable address of the QR code.
func (uc *QRCodeUseCase) PublicURL(qr *entity.QRCode) string {
	return uc.baseURL + "/r/" + qr.Address()
}

// RenderImage renders the public address of the QR code as a PNG image.
func (uc *QRCodeUseCase) RenderImage(ctx context.Context, userID, id int64, opts entity.ImageOptions) ([]byte, error) {
	const op = "usecase.QRCodeUseCase.RenderImage"

	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	qr, err := uc.qrCodeRepo.RetrieveByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get qr code: %w", op, err)
	}

	img, err := uc.renderer.Render(uc.PublicURL(qr), opts)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to render image: %w", op, err)
	}

	return img, nil
}
