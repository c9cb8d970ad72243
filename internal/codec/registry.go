package codec

import (
	"fmt"
	"strings"
)

// Registry holds all available encoders keyed by canonical format name.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry, probing all encoders for availability.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}

	// Register all encoders. Only available ones will be used.
	all := []Encoder{
		&WebPEncoder{},
		&JPEGEncoder{},
		&PNGEncoder{},
	}

	for _, enc := range all {
		if enc.Available() {
			r.encoders[enc.Format()] = enc
		}
	}

	return r
}

// CanonicalFormat maps format aliases to the encoder's canonical name.
// "jpg" and "jpeg" name the same encoding.
func CanonicalFormat(format string) string {
	f := strings.ToLower(format)
	if f == "jpg" {
		f = "jpeg"
	}
	return f
}

// Get returns an encoder for the given format (aliases accepted), or nil
// if no encoding backend for it is available at all.
func (r *Registry) Get(format string) Encoder {
	return r.encoders[CanonicalFormat(format)]
}

// Available returns all available format names in priority order.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range []string{"webp", "jpeg", "png"} {
		if _, ok := r.encoders[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
