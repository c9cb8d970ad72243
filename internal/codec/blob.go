package codec

import (
	"encoding/base64"
	"fmt"
	"math"
	"strings"
)

// base64Marker separates the data URI scheme prefix from its payload.
const base64Marker = ";base64,"

// Blob is an encoded image payload. Encoding backends return either raw
// bytes or a textual "data:<mime>;base64," URI; Blob normalizes size
// accounting and byte access over both representations.
type Blob struct {
	mediaType string
	data      []byte
	uri       string
}

// NewBytes wraps raw encoded bytes.
func NewBytes(mediaType string, data []byte) Blob {
	return Blob{mediaType: mediaType, data: data}
}

// NewURI wraps a textual data URI as returned by some encoding backends.
func NewURI(uri string) Blob {
	b := Blob{uri: uri}
	if rest, ok := strings.CutPrefix(uri, "data:"); ok {
		if i := strings.Index(rest, ";"); i >= 0 {
			b.mediaType = rest[:i]
		}
	}
	return b
}

// MediaType returns the payload's media type ("image/webp", ...).
func (b Blob) MediaType() string { return b.mediaType }

// IsURI reports whether the blob holds a textual data URI.
func (b Blob) IsURI() bool { return b.uri != "" }

// Size returns the payload length in bytes. For a data URI the scheme
// prefix is excluded and the base64 payload length is scaled by 3/4,
// rounded — never the raw string length.
func (b Blob) Size() int64 {
	if b.uri == "" {
		return int64(len(b.data))
	}
	i := strings.Index(b.uri, base64Marker)
	if i < 0 {
		return 0
	}
	payload := len(b.uri) - i - len(base64Marker)
	return int64(math.Round(float64(payload) * 3 / 4))
}

// Bytes materializes the encoded payload, decoding the base64 body of a
// data URI when necessary.
func (b Blob) Bytes() ([]byte, error) {
	if b.uri == "" {
		return b.data, nil
	}
	i := strings.Index(b.uri, base64Marker)
	if i < 0 {
		return nil, fmt.Errorf("blob: malformed data URI")
	}
	raw, err := base64.StdEncoding.DecodeString(b.uri[i+len(base64Marker):])
	if err != nil {
		return nil, fmt.Errorf("blob: decode data URI payload: %w", err)
	}
	return raw, nil
}

// DataURI renders the blob as a data URI, suitable for direct embedding.
func (b Blob) DataURI() string {
	if b.uri != "" {
		return b.uri
	}
	return "data:" + b.mediaType + base64Marker + base64.StdEncoding.EncodeToString(b.data)
}
