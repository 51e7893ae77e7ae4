// Package qrimage renders QR code images for public addresses.
package qrimage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/vadimbarashkov/qr-redirect/internal/entity"
)

// The logo covers at most a fifth of the image width, which the highest
// recovery level tolerates.
const logoRatio = 5

var ErrLogoNotConfigured = fmt.Errorf("%w: logo is not configured", entity.ErrValidation)

// Renderer encodes content into PNG QR codes.
type Renderer struct {
	logo image.Image
}

// NewRenderer creates a Renderer. logoPath may be empty, in which case logo
// overlays are rejected.
func NewRenderer(logoPath string) (*Renderer, error) {
	const op = "qrimage.NewRenderer"

	r := &Renderer{}
	if logoPath == "" {
		return r, nil
	}

	f, err := os.Open(logoPath)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open logo: %w", op, err)
	}
	defer f.Close()

	logo, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to decode logo: %w", op, err)
	}
	r.logo = logo

	return r, nil
}

// NewRendererWithLogo creates a Renderer overlaying the given logo.
func NewRendererWithLogo(logo image.Image) *Renderer {
	return &Renderer{logo: logo}
}

// Render encodes content with opts and returns the PNG bytes.
func (r *Renderer) Render(content string, opts entity.ImageOptions) ([]byte, error) {
	const op = "qrimage.Renderer.Render"

	if opts.Logo && r.logo == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrLogoNotConfigured)
	}

	fg, err := parseHexColor(opts.Foreground)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	bg, err := parseHexColor(opts.Background)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	level := recoveryLevel(opts.Level)
	if opts.Logo {
		level = qrcode.Highest
	}

	q, err := qrcode.New(content, level)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to encode content: %w", op, err)
	}
	q.ForegroundColor = fg
	q.BackgroundColor = bg

	var img draw.Image
	switch opts.Style {
	case entity.StyleDot:
		img = drawDots(q.Bitmap(), opts.Size, fg, bg)
	default:
		img = toRGBA(q.Image(opts.Size))
	}

	if opts.Logo {
		overlayLogo(img, r.logo, bg)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%s: failed to encode png: %w", op, err)
	}

	return buf.Bytes(), nil
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case entity.LevelLow:
		return qrcode.Low
	case entity.LevelHigh:
		return qrcode.High
	case entity.LevelHighest:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: invalid colour %q", entity.ErrValidation, s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: invalid colour %q", entity.ErrValidation, s)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}

// drawDots draws every dark module as a filled circle. Modules are scaled
// the same way the square renderer does, so both styles scan alike.
func drawDots(bitmap [][]bool, size int, fg, bg color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	n := len(bitmap)
	if n == 0 {
		return img
	}

	module := float64(size) / float64(n)
	radius := module * 0.45

	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			cx := (float64(x) + 0.5) * module
			cy := (float64(y) + 0.5) * module
			fillCircle(img, cx, cy, radius, fg)
		}
	}

	return img
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	b := img.Bounds()
	for y := int(cy - r); y <= int(cy+r); y++ {
		for x := int(cx - r); x <= int(cx+r); x++ {
			if !(image.Point{X: x, Y: y}.In(b)) {
				continue
			}
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// overlayLogo scales the logo into the centre of img on a background pad.
func overlayLogo(img draw.Image, logo image.Image, bg color.RGBA) {
	b := img.Bounds()
	side := b.Dx() / logoRatio
	if side <= 0 {
		return
	}

	pad := side / 10
	center := image.Pt(b.Min.X+b.Dx()/2, b.Min.Y+b.Dy()/2)
	padRect := image.Rect(center.X-side/2-pad, center.Y-side/2-pad, center.X+side/2+pad, center.Y+side/2+pad)
	draw.Draw(img, padRect, &image.Uniform{C: bg}, image.Point{}, draw.Src)

	logoRect := image.Rect(center.X-side/2, center.Y-side/2, center.X+side/2, center.Y+side/2)
	draw.CatmullRom.Scale(img, logoRect, logo, logo.Bounds(), draw.Over, nil)
}
