package driven

import "github.com/caddraft/qrstamp-cli/internal/core/domain"

// QRRenderer turns canonical payload text into a QR raster.
// The symbol algebra (Reed-Solomon coding, finder patterns, masking) is
// the renderer's own concern; core treats it as a pure function.
type QRRenderer interface {
	// Render returns a square black-on-white PNG of sizePx pixels with a
	// quiet-zone border, at the given error-correction level. Callers
	// must reject empty text before calling; renderer failures (such as
	// payload text exceeding the symbol capacity) wrap
	// domain.ErrEncoding.
	Render(text string, level domain.ECCLevel, sizePx int) ([]byte, error)

	// RenderBlocks returns a terminal block-character rendering of the
	// same symbol, used for inline previews.
	RenderBlocks(text string, level domain.ECCLevel) (string, error)
}
