package codec

import (
	"image"
)

// Encoder encodes a decoded image to a specific output format.
type Encoder interface {
	// Format returns the output format name (e.g. "jpeg", "webp", "png").
	Format() string

	// Encode converts the image to an encoded Blob at the given quality
	// (10-100). Lossless encoders accept the quality and ignore it.
	Encode(img image.Image, quality int) (Blob, error)

	// Available returns true if the encoder is ready to use.
	// External encoders (cwebp) may not be installed.
	Available() bool

	// Extension returns the output file extension without dot.
	Extension() string
}
