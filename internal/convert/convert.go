// Package convert runs the per-file conversion pipeline: normalize
// exotic formats, decode, re-encode, account sizes.
package convert

import (
	"fmt"
	"math"

	"github.com/AnyUserName/imgconv-cli/internal/codec"
	"github.com/AnyUserName/imgconv-cli/internal/heif"
	"github.com/AnyUserName/imgconv-cli/internal/source"
)

// EncoderProvider yields an encoder for a target format, or nil when no
// backend for it is available. *codec.Registry satisfies this.
type EncoderProvider interface {
	Get(format string) codec.Encoder
}

// Result is one successfully converted file.
type Result struct {
	// File is the originating input.
	File *source.File
	// Output holds the encoded bytes.
	Output codec.Blob
	// OriginalSize is the input's byte length.
	OriginalSize int64
	// ConvertedSize is the encoded payload length (scheme prefixes of
	// textual representations excluded).
	ConvertedSize int64
	// CompressionRatio is round((1 - converted/original) * 100); negative
	// when the output is larger than the input.
	CompressionRatio int
	// OutputFormat is the requested target format.
	OutputFormat string
	// OutputName is the input name with its extension replaced.
	OutputName string
}

// Ratio computes the compression percentage, rounded. Zero when sizes
// match or the original size is unknown; negative when output grew.
func Ratio(original, converted int64) int {
	if original <= 0 {
		return 0
	}
	return int(math.Round((1 - float64(converted)/float64(original)) * 100))
}

// Converter orchestrates one file's pipeline.
type Converter struct {
	encoders   EncoderProvider
	normalizer *heif.Normalizer
}

// New builds a Converter. The normalizer may be nil, in which case
// HEIC/HEIF inputs fail at the decode stage like any other undecodable
// content.
func New(encoders EncoderProvider, normalizer *heif.Normalizer) *Converter {
	return &Converter{encoders: encoders, normalizer: normalizer}
}

// Convert runs the full pipeline for a single file. Exactly one of the
// returned values is non-nil; no error escapes this boundary and nothing
// is retried.
func (c *Converter) Convert(f *source.File, cfg Config) (*Result, *Failure) {
	orig := f

	// HEIC/HEIF can't reach the decoder directly; route through the
	// external transcoder first.
	if c.normalizer != nil && heif.IsHEIF(f.Name, f.MediaType) {
		nf, err := c.normalizer.Normalize(f)
		if err != nil {
			return nil, &Failure{File: orig, Kind: KindHeifTranscode, Err: err}
		}
		f = nf
	}

	rc, err := f.Open()
	if err != nil {
		return nil, &Failure{File: orig, Kind: KindDecode, Err: err}
	}
	img, err := codec.Decode(rc)
	rc.Close()
	if err != nil {
		return nil, &Failure{File: orig, Kind: KindDecode, Err: err}
	}

	enc := c.encoders.Get(cfg.EncoderFormat())
	if enc == nil {
		return nil, &Failure{
			File: orig,
			Kind: KindEncoderUnavailable,
			Err:  fmt.Errorf("no encoder available for %q", cfg.TargetFormat),
		}
	}

	blob, err := enc.Encode(img, cfg.Quality)
	if err != nil {
		return nil, &Failure{File: orig, Kind: KindEncode, Err: err}
	}

	converted := blob.Size()
	return &Result{
		File:             orig,
		Output:           blob,
		OriginalSize:     orig.Size,
		ConvertedSize:    converted,
		CompressionRatio: Ratio(orig.Size, converted),
		OutputFormat:     cfg.TargetFormat,
		OutputName:       cfg.OutputName(orig.Name),
	}, nil
}
