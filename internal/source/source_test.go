package source

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFromBytes(t *testing.T) {
	content := []byte("some image bytes")
	f := FromBytes("pic.png", "image/png", content)

	if f.Name != "pic.png" || f.Size != int64(len(content)) || f.MediaType != "image/png" {
		t.Errorf("file fields: %+v", f)
	}

	// Each Open returns an independent reader.
	for i := 0; i < 2; i++ {
		data, err := f.ReadAll()
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("read %d: content mismatch", i)
		}
	}
}

func TestFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.HEIC")
	if err := os.WriteFile(path, []byte("heic-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := FromPath(path)
	if err != nil {
		t.Fatalf("from path: %v", err)
	}
	if f.Name != "shot.HEIC" {
		t.Errorf("name: got %q", f.Name)
	}
	if f.Size != 10 {
		t.Errorf("size: got %d", f.Size)
	}
	if f.MediaType != "image/heic" {
		t.Errorf("media type: got %q", f.MediaType)
	}

	if _, err := FromPath(dir); err == nil {
		t.Error("expected error for directory path")
	}
}

func TestMediaTypeForName(t *testing.T) {
	tests := map[string]string{
		"a.png":      "image/png",
		"a.JPG":      "image/jpeg",
		"a.jpeg":     "image/jpeg",
		"a.webp":     "image/webp",
		"a.heif":     "image/heif",
		"a.unknown":  "",
		"no-ext":     "",
		"dir/b.tiff": "image/tiff",
	}
	for name, want := range tests {
		if got := MediaTypeForName(name); got != want {
			t.Errorf("MediaTypeForName(%q): got %q, want %q", name, got, want)
		}
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	write := func(rel string) {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("a.png")
	write("notes.txt")
	write("sub/b.heic")
	write(".hidden/c.png")

	files, err := Scan([]string{dir})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	names := make(map[string]bool)
	for _, f := range files {
		names[f.Name] = true
	}
	if len(files) != 2 {
		t.Fatalf("files: got %d (%v), want 2", len(files), names)
	}
	if !names["a.png"] || !names["b.heic"] {
		t.Errorf("unexpected scan set: %v", names)
	}
}

func TestScan_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "only.jpg")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := Scan([]string{path})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(files) != 1 || files[0].Name != "only.jpg" {
		t.Errorf("got %d files", len(files))
	}
}

func TestScan_MissingPath(t *testing.T) {
	if _, err := Scan([]string{"/does/not/exist"}); err == nil {
		t.Error("expected error for missing path")
	}
}
