package convert

import (
	"fmt"

	"github.com/AnyUserName/imgconv-cli/internal/source"
)

// Kind classifies a conversion failure by the pipeline stage that
// produced it. The taxonomy is flat: one kind per stage.
type Kind string

const (
	// KindHeifTranscode: the external HEIC/HEIF transcoder rejected or
	// failed on the input.
	KindHeifTranscode Kind = "heif_transcode"
	// KindDecode: the input bytes could not be decoded as an image.
	KindDecode Kind = "decode"
	// KindEncoderUnavailable: no encoding backend exists for the target
	// format at all (environment-level, not input-specific).
	KindEncoderUnavailable Kind = "encoder_unavailable"
	// KindEncode: the encoder failed on this specific surface/quality.
	KindEncode Kind = "encode"
)

// Failure records one file that failed at some pipeline stage. Failed
// files are reported, never retried.
type Failure struct {
	File *source.File
	Kind Kind
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s: %v", f.File.Name, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }
