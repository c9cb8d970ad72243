package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinPresets(t *testing.T) {
	for _, name := range Names() {
		p, ok := Get(name)
		if !ok {
			t.Fatalf("built-in preset %q missing", name)
		}
		if err := p.Config().Validate(); err != nil {
			t.Errorf("built-in preset %q invalid: %v", name, err)
		}
	}

	if _, ok := Get("nope"); ok {
		t.Error("unexpected preset for unknown name")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	yaml := `
thumbnails:
  format: webp
  quality: 60
print:
  format: png
  quality: 100
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	presets, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("presets: got %d, want 2", len(presets))
	}
	if p := presets["thumbnails"]; p.Format != "webp" || p.Quality != 60 {
		t.Errorf("thumbnails: %+v", p)
	}
}

func TestLoadFile_InvalidPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	yaml := "broken:\n  format: webp\n  quality: 5\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("expected validation error for out-of-range quality")
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.yaml")
	yaml := "web:\n  format: jpeg\n  quality: 70\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	// File entries shadow built-ins of the same name.
	p, err := Resolve("web", path)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.Format != "jpeg" || p.Quality != 70 {
		t.Errorf("file preset not preferred: %+v", p)
	}

	// Built-ins still resolve when absent from the file.
	p, err = Resolve("photo", path)
	if err != nil {
		t.Fatalf("resolve built-in: %v", err)
	}
	if p.Format != "jpeg" {
		t.Errorf("photo preset: %+v", p)
	}

	if _, err := Resolve("missing", path); err == nil {
		t.Error("expected error for unknown preset")
	}
}
