package domain

// Artifact is the rendered QR image for one canonical payload.
// The PNG bytes are opaque; ownership is transient. An artifact is held in
// memory for preview, written to a user path on save, or written to an
// exclusively-owned temp file for the duration of a host insert.
type Artifact struct {
	// Payload is the canonical text the symbol encodes.
	Payload string

	// PNG is the rendered raster image.
	PNG []byte

	// SizePx is the square pixel size of the raster.
	SizePx int
}

// ImageTypeID identifies an imported raster resource in the host document.
type ImageTypeID string

// ImageInstanceID identifies a placed occurrence of an image type on a
// sheet. Insert operations return it so callers can select the element.
type ImageInstanceID string
