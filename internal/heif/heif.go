// Package heif routes HEIC/HEIF inputs through an external transcoder so
// they reach the codec layer as baseline JPEG.
package heif

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/imgconv-cli/internal/source"
)

// Transcoder converts HEIC/HEIF bytes into one or more baseline JPEG
// blobs. Multi-image containers yield multiple blobs in a deterministic
// order.
type Transcoder interface {
	Transcode(data []byte) ([][]byte, error)
	Available() bool
}

// IsHEIF reports whether a file should be normalized before decoding.
// The filename suffix and the declared media type are independent
// signals; either one is sufficient. Content is never sniffed.
func IsHEIF(name, mediaType string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".heic", ".heif":
		return true
	}
	switch strings.ToLower(mediaType) {
	case "image/heic", "image/heif":
		return true
	}
	return false
}

// Normalizer rewrites HEIC/HEIF inputs as JPEG via a Transcoder.
type Normalizer struct {
	tc Transcoder
}

// NewNormalizer wraps a transcoder. Pass NewLibheifTranscoder() for the
// default external tool.
func NewNormalizer(tc Transcoder) *Normalizer {
	return &Normalizer{tc: tc}
}

// Normalize transcodes the file and returns a JPEG-typed replacement with
// the extension rewritten to .jpg. When the container holds several
// images, only the first transcoded blob is kept; the rest are dropped.
func (n *Normalizer) Normalize(f *source.File) (*source.File, error) {
	data, err := f.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Name, err)
	}

	blobs, err := n.tc.Transcode(data)
	if err != nil {
		return nil, fmt.Errorf("transcode %s: %w", f.Name, err)
	}
	if len(blobs) == 0 {
		return nil, fmt.Errorf("transcode %s: no output produced", f.Name)
	}

	name := strings.TrimSuffix(f.Name, filepath.Ext(f.Name)) + ".jpg"
	return source.FromBytes(name, "image/jpeg", blobs[0]), nil
}
