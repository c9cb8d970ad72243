package heif

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"
)

// Atomic counter for unique temp dir names across goroutines.
var tempCounter atomic.Int64

// LibheifTranscoder shells out to heif-convert (libheif) to turn
// HEIC/HEIF content into JPEG. Quality is pinned to maximum: the lossy
// step the user controls is the re-encode, not the normalization.
// Install: brew install libheif / apt install libheif-examples
type LibheifTranscoder struct {
	once      sync.Once
	available bool
	toolPath  string
}

// NewLibheifTranscoder returns the default external transcoder.
func NewLibheifTranscoder() *LibheifTranscoder {
	return &LibheifTranscoder{}
}

func (t *LibheifTranscoder) Available() bool {
	t.once.Do(func() {
		path, err := exec.LookPath("heif-convert")
		if err == nil {
			t.available = true
			t.toolPath = path
		}
	})
	return t.available
}

// Transcode converts HEIC/HEIF bytes to JPEG. For multi-image containers
// heif-convert writes one file per image; all are returned, sorted by
// output filename so the order is deterministic.
func (t *LibheifTranscoder) Transcode(data []byte) ([][]byte, error) {
	if !t.Available() {
		return nil, fmt.Errorf("heif-convert not found in PATH; install with: apt install libheif-examples")
	}

	dir, err := os.MkdirTemp("", fmt.Sprintf("imgconv_heif_%d_", tempCounter.Add(1)))
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	srcPath := filepath.Join(dir, "in.heic")
	dstPath := filepath.Join(dir, "out.jpg")
	if err := os.WriteFile(srcPath, data, 0o600); err != nil {
		return nil, fmt.Errorf("write temp: %w", err)
	}

	cmd := exec.Command(t.toolPath, "-q", "100", srcPath, dstPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("heif-convert: %w: %s", err, string(out))
	}

	// Single-image containers produce out.jpg; multi-image containers
	// produce out-1.jpg, out-2.jpg, ...
	outputs, err := filepath.Glob(filepath.Join(dir, "out*.jpg"))
	if err != nil {
		return nil, err
	}
	sort.Strings(outputs)

	var blobs [][]byte
	for _, p := range outputs {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read transcoded output: %w", err)
		}
		blobs = append(blobs, b)
	}
	if len(blobs) == 0 {
		return nil, fmt.Errorf("heif-convert produced no output")
	}
	return blobs, nil
}
