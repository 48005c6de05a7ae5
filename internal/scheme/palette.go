package scheme

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta is the descriptive part of a scheme definition file.
type Meta struct {
	System  System            `json:"system" yaml:"system"`
	Name    string            `json:"name" yaml:"name"`
	Slug    string            `json:"slug,omitempty" yaml:"slug,omitempty"`
	Author  string            `json:"author,omitempty" yaml:"author,omitempty"`
	Variant string            `json:"variant,omitempty" yaml:"variant,omitempty"`
	Palette map[string]string `json:"palette" yaml:"palette"`
}

// schemeFile mirrors both the current scheme format (nested palette) and the
// legacy flat format where baseXX keys sit at the top level.
type schemeFile struct {
	System  string            `yaml:"system"`
	Name    string            `yaml:"name"`
	Scheme  string            `yaml:"scheme"`
	Slug    string            `yaml:"slug"`
	Author  string            `yaml:"author"`
	Variant string            `yaml:"variant"`
	Palette map[string]string `yaml:"palette"`
	Rest    map[string]any    `yaml:",inline"`
}

var (
	paletteKey = regexp.MustCompile(`^base[0-9A-Fa-f]{2}$`)
	hexColor   = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)
)

// LoadMeta parses the installed scheme file for id.
func (r *Repository) LoadMeta(id ID) (*Meta, error) {
	path, err := r.Resolve(id)
	if err != nil {
		return nil, err
	}
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scheme file: %w", err)
	}
	meta, err := ParseMeta(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scheme %s: %w", id, err)
	}
	if meta.System == "" {
		meta.System = id.System
	}
	if meta.Slug == "" {
		meta.Slug = id.Name
	}
	return meta, nil
}

// ParseMeta decodes a scheme definition. Palette colors are normalized to
// lowercase "#rrggbb" and keys to lowercase "baseXX".
func ParseMeta(data []byte) (*Meta, error) {
	var f schemeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	meta := &Meta{
		System:  System(f.System),
		Name:    f.Name,
		Slug:    f.Slug,
		Author:  f.Author,
		Variant: f.Variant,
		Palette: make(map[string]string),
	}
	if meta.Name == "" {
		meta.Name = f.Scheme
	}

	raw := f.Palette
	if len(raw) == 0 {
		raw = make(map[string]string)
		for key, value := range f.Rest {
			if s, ok := value.(string); ok && paletteKey.MatchString(key) {
				raw[key] = s
			}
		}
	}

	for key, value := range raw {
		if !paletteKey.MatchString(key) {
			continue
		}
		value = strings.TrimSpace(value)
		if !hexColor.MatchString(value) {
			return nil, fmt.Errorf("invalid color %q for %s", value, key)
		}
		meta.Palette[strings.ToLower(key)] = "#" + strings.ToLower(strings.TrimPrefix(value, "#"))
	}

	if len(meta.Palette) == 0 {
		return nil, fmt.Errorf("scheme has no palette")
	}
	return meta, nil
}

// Keys returns the palette keys in order (base00, base01, ...).
func (m *Meta) Keys() []string {
	keys := make([]string, 0, len(m.Palette))
	for k := range m.Palette {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RGB splits a normalized "#rrggbb" color into its components.
func RGB(color string) (r, g, b int, err error) {
	hex := strings.TrimPrefix(color, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid color %q", color)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color %q: %w", color, err)
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), nil
}
