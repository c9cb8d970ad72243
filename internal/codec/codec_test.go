package codec

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

// testImage builds a small deterministic NRGBA gradient.
func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 7), G: uint8(y * 11), B: 128, A: 255,
			})
		}
	}
	return img
}

func TestJPEGEncoder_RoundTrip(t *testing.T) {
	enc := &JPEGEncoder{}
	if !enc.Available() {
		t.Fatal("stdlib jpeg encoder must always be available")
	}

	blob, err := enc.Encode(testImage(40, 30), 80)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if blob.Size() == 0 {
		t.Fatal("empty output")
	}
	if blob.MediaType() != "image/jpeg" {
		t.Errorf("media type: got %q", blob.MediaType())
	}

	data, err := blob.Bytes()
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode own output: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("dimensions changed: got %v", img.Bounds())
	}
}

func TestPNGEncoder_QualityIgnored(t *testing.T) {
	enc := &PNGEncoder{}
	img := testImage(24, 24)

	low, err := enc.Encode(img, 10)
	if err != nil {
		t.Fatalf("encode q=10: %v", err)
	}
	high, err := enc.Encode(img, 100)
	if err != nil {
		t.Fatalf("encode q=100: %v", err)
	}

	// PNG is lossless: the quality knob must not change the output, and
	// passing it must not be an error.
	lb, _ := low.Bytes()
	hb, _ := high.Bytes()
	if !bytes.Equal(lb, hb) {
		t.Error("png output differs across quality values")
	}
}

func TestJPEGEncoder_QualityAffectsSize(t *testing.T) {
	enc := &JPEGEncoder{}
	img := testImage(120, 120)

	low, err := enc.Encode(img, 10)
	if err != nil {
		t.Fatalf("encode q=10: %v", err)
	}
	high, err := enc.Encode(img, 100)
	if err != nil {
		t.Fatalf("encode q=100: %v", err)
	}
	if low.Size() >= high.Size() {
		t.Errorf("q=10 (%d bytes) not smaller than q=100 (%d bytes)", low.Size(), high.Size())
	}
}

func TestDecode_Corrupt(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("definitely not an image"))); err == nil {
		t.Error("expected error for unparseable bytes")
	}
}

func TestRegistry_AliasAndUnknown(t *testing.T) {
	r := NewRegistry()

	// jpeg and png are stdlib-backed, always present.
	if r.Get("jpeg") == nil {
		t.Error("jpeg encoder missing")
	}
	if r.Get("png") == nil {
		t.Error("png encoder missing")
	}

	// jpg is an alias for jpeg.
	if r.Get("jpg") != r.Get("jpeg") {
		t.Error("jpg did not resolve to the jpeg encoder")
	}
	if r.Get("JPG") != r.Get("jpeg") {
		t.Error("format lookup not case-insensitive")
	}

	// Unknown formats yield nil: no encoding backend at all.
	if r.Get("avif") != nil {
		t.Error("unexpected encoder for avif")
	}
	if r.Get("") != nil {
		t.Error("unexpected encoder for empty format")
	}
}

func TestCanonicalFormat(t *testing.T) {
	tests := map[string]string{
		"jpg":  "jpeg",
		"JPG":  "jpeg",
		"jpeg": "jpeg",
		"webp": "webp",
		"PNG":  "png",
	}
	for in, want := range tests {
		if got := CanonicalFormat(in); got != want {
			t.Errorf("CanonicalFormat(%q): got %q, want %q", in, got, want)
		}
	}
}
