// Package config provides named conversion presets, built-in or loaded
// from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AnyUserName/imgconv-cli/internal/convert"
)

// Preset is a named format+quality pair.
type Preset struct {
	Format  string `yaml:"format"`
	Quality int    `yaml:"quality"`
}

// Config converts the preset into a conversion config.
func (p Preset) Config() convert.Config {
	return convert.Config{TargetFormat: p.Format, Quality: p.Quality}
}

// Built-in presets.
var builtin = map[string]Preset{
	"web": {
		Format:  "webp",
		Quality: 80,
	},
	"photo": {
		Format:  "jpeg",
		Quality: 90,
	},
	"lossless": {
		Format:  "png",
		Quality: 100,
	},
}

// Get returns a built-in preset by name.
func Get(name string) (Preset, bool) {
	p, ok := builtin[name]
	return p, ok
}

// Names lists the built-in preset names.
func Names() []string {
	return []string{"web", "photo", "lossless"}
}

// LoadFile parses a YAML presets file: a mapping of preset name to
// {format, quality}. Entries are validated on load.
func LoadFile(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}

	var presets map[string]Preset
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	for name, p := range presets {
		if err := p.Config().Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return presets, nil
}

// Resolve looks a preset up by name, preferring the given file (may be
// empty) over the built-ins.
func Resolve(name, path string) (Preset, error) {
	if path != "" {
		presets, err := LoadFile(path)
		if err != nil {
			return Preset{}, err
		}
		if p, ok := presets[name]; ok {
			return p, nil
		}
	}
	if p, ok := Get(name); ok {
		return p, nil
	}
	return Preset{}, fmt.Errorf("unknown preset %q", name)
}
