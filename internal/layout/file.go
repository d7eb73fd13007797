package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a layout from a .toml, .yaml or .yml file and validates it.
// A layout without a name takes the file's base name.
func LoadFile(path string) (KeyboardLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return KeyboardLayout{}, fmt.Errorf("reading layout file: %w", err)
	}

	var l KeyboardLayout
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &l); err != nil {
			return KeyboardLayout{}, fmt.Errorf("parsing TOML layout %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &l); err != nil {
			return KeyboardLayout{}, fmt.Errorf("parsing YAML layout %s: %w", path, err)
		}
	default:
		return KeyboardLayout{}, fmt.Errorf("unsupported layout file extension %q", ext)
	}

	if l.Name == "" {
		l.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := l.Validate(); err != nil {
		return KeyboardLayout{}, err
	}
	return l, nil
}

// LoadDir registers every layout file in dir with r and returns the names
// that were added. Files with other extensions are ignored.
func LoadDir(r *Registry, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading layouts dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".toml", ".yaml", ".yml":
		default:
			continue
		}
		l, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return names, err
		}
		if err := r.Register(l); err != nil {
			return names, err
		}
		names = append(names, l.Name)
	}
	return names, nil
}
