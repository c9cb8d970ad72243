package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/imgconv-cli/internal/codec"
)

// targetExtensions maps accepted target formats to their canonical
// output extension. "jpeg" and "jpg" are synonyms at the encoding level
// and both map to ".jpg".
var targetExtensions = map[string]string{
	"webp": "webp",
	"png":  "png",
	"jpg":  "jpg",
	"jpeg": "jpg",
}

// Config is the conversion configuration applied uniformly to every file
// of a batch run.
type Config struct {
	// TargetFormat is one of webp, png, jpg, jpeg.
	TargetFormat string
	// Quality is the lossy-compression hint, 10-100. Ignored by lossless
	// targets.
	Quality int
}

// Validate checks the target format and quality range.
func (c Config) Validate() error {
	if _, ok := targetExtensions[strings.ToLower(c.TargetFormat)]; !ok {
		return fmt.Errorf("unsupported target format %q (want webp, png, jpg or jpeg)", c.TargetFormat)
	}
	if c.Quality < 10 || c.Quality > 100 {
		return fmt.Errorf("quality %d out of range [10,100]", c.Quality)
	}
	return nil
}

// EncoderFormat returns the canonical encoder format for the target.
func (c Config) EncoderFormat() string {
	return codec.CanonicalFormat(c.TargetFormat)
}

// OutputName computes the output filename: the input's last extension is
// replaced (never appended to) by the target's canonical extension.
func (c Config) OutputName(inputName string) string {
	ext := targetExtensions[strings.ToLower(c.TargetFormat)]
	base := strings.TrimSuffix(inputName, filepath.Ext(inputName))
	return base + "." + ext
}
