package codec

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"sync/atomic"
)

// Atomic counter for unique temp file names across goroutines.
var tempCounter atomic.Int64

// WebPEncoder encodes images to WebP by shelling out to cwebp.
// This approach avoids CGO while still producing optimized WebP.
// Install: brew install webp / apt install webp
type WebPEncoder struct {
	once      sync.Once
	available bool
	cwebpPath string
}

func (e *WebPEncoder) Format() string    { return "webp" }
func (e *WebPEncoder) Extension() string { return "webp" }

func (e *WebPEncoder) Available() bool {
	e.once.Do(func() {
		path, err := exec.LookPath("cwebp")
		if err == nil {
			e.available = true
			e.cwebpPath = path
		}
	})
	return e.available
}

func (e *WebPEncoder) Encode(img image.Image, quality int) (Blob, error) {
	if !e.Available() {
		return Blob{}, fmt.Errorf("cwebp not found in PATH; install with: apt install webp")
	}
	if quality <= 0 || quality > 100 {
		quality = 90
	}

	// cwebp reads and writes files, so stage the surface as a temp PNG.
	dir, err := os.MkdirTemp("", fmt.Sprintf("imgconv_webp_%d_", tempCounter.Add(1)))
	if err != nil {
		return Blob{}, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	srcPath := filepath.Join(dir, "src.png")
	dstPath := filepath.Join(dir, "out.webp")
	if err := writeTempPNG(srcPath, img); err != nil {
		return Blob{}, err
	}

	cmd := exec.Command(e.cwebpPath,
		"-q", fmt.Sprintf("%d", quality),
		"-m", "6", // compression method (0=fast, 6=best)
		"-mt",
		"-quiet",
		srcPath,
		"-o", dstPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return Blob{}, fmt.Errorf("cwebp: %w: %s", err, string(out))
	}

	data, err := os.ReadFile(dstPath)
	if err != nil {
		return Blob{}, fmt.Errorf("read cwebp output: %w", err)
	}
	return NewBytes("image/webp", data), nil
}

func writeTempPNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode temp png: %w", err)
	}
	return f.Close()
}
