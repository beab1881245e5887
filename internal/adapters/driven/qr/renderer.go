// Package qr renders canonical payload text into QR rasters using
// github.com/skip2/go-qrcode. The library owns the symbol algebra; this
// adapter maps error-correction levels, guards empty input and classifies
// failures.
package qr

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/caddraft/qrstamp-cli/internal/core/domain"
	"github.com/caddraft/qrstamp-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.QRRenderer = (*Renderer)(nil)

// Renderer renders black-on-white QR PNGs with the library's default
// quiet-zone border.
type Renderer struct{}

// New creates a new renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render returns a square PNG of sizePx pixels for the given text.
func (r *Renderer) Render(text string, level domain.ECCLevel, sizePx int) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyPayload
	}

	png, err := qrcode.Encode(text, recoveryLevel(level), sizePx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	return png, nil
}

// RenderBlocks returns a terminal block-character rendering of the symbol.
func (r *Renderer) RenderBlocks(text string, level domain.ECCLevel) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrEmptyPayload
	}

	code, err := qrcode.New(text, recoveryLevel(level))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	return code.ToSmallString(false), nil
}

// recoveryLevel maps the domain ECC level onto the library's scale. The
// library names quartile recovery "High" and 30% recovery "Highest".
func recoveryLevel(level domain.ECCLevel) qrcode.RecoveryLevel {
	switch level {
	case domain.ECCLow:
		return qrcode.Low
	case domain.ECCMedium:
		return qrcode.Medium
	case domain.ECCHigh:
		return qrcode.Highest
	case domain.ECCQuartile:
		return qrcode.High
	default:
		return qrcode.High
	}
}
