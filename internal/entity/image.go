package entity

import (
	"fmt"
	"regexp"
)

// Module styles of a rendered QR code.
const (
	StyleSquare = "square"
	StyleDot    = "dot"
)

// Recovery levels of a rendered QR code.
const (
	LevelLow     = "low"
	LevelMedium  = "medium"
	LevelHigh    = "high"
	LevelHighest = "highest"
)

const (
	MinImageSize     = 128
	MaxImageSize     = 1024
	DefaultImageSize = 256
)

var hexColorRe = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// ImageOptions are the cosmetic options of a rendered QR code.
type ImageOptions struct {
	Size       int    // Size is the width and height of the image in pixels.
	Foreground string // Foreground is the module colour as #rrggbb.
	Background string // Background is the background colour as #rrggbb.
	Level      string // Level is the error recovery level.
	Style      string // Style is the module shape.
	Logo       bool   // Logo overlays the configured logo in the centre.
}

// DefaultImageOptions returns black square modules on white at medium recovery.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{
		Size:       DefaultImageSize,
		Foreground: "#000000",
		Background: "#ffffff",
		Level:      LevelMedium,
		Style:      StyleSquare,
	}
}

// Validate checks every option against its allowed values.
func (o ImageOptions) Validate() error {
	if o.Size < MinImageSize || o.Size > MaxImageSize {
		return fmt.Errorf("%w: size must be between %d and %d", ErrValidation, MinImageSize, MaxImageSize)
	}
	if !hexColorRe.MatchString(o.Foreground) || !hexColorRe.MatchString(o.Background) {
		return fmt.Errorf("%w: colours must be hex encoded as #rrggbb", ErrValidation)
	}
	switch o.Level {
	case LevelLow, LevelMedium, LevelHigh, LevelHighest:
	default:
		return fmt.Errorf("%w: level must be one of low, medium, high, highest", ErrValidation)
	}
	switch o.Style {
	case StyleSquare, StyleDot:
	default:
		return fmt.Errorf("%w: style must be square or dot", ErrValidation)
	}
	return nil
}
