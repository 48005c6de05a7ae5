// Package items maps configured items onto the template files of a scheme.
//
// Every item owns a template repository at <repos>/<item-name>. Its rendered
// themes live in <themes-dir> inside that repository, one file per scheme,
// named <scheme-id>.<ext>. Applying a scheme copies that file to a stable
// location in the data directory, which is what hooks see as %f.
package items

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/tintctl/internal/config"
	"github.com/danieljhkim/tintctl/internal/fsops"
	"github.com/danieljhkim/tintctl/internal/hash"
	"github.com/danieljhkim/tintctl/internal/logging"
	"github.com/danieljhkim/tintctl/internal/scheme"
)

// Artifact is an item's template for one scheme and where it is copied to.
type Artifact struct {
	// Item is the configured item
	Item config.Item `json:"item"`

	// Template is the absolute path of the template in the item's repository
	Template string `json:"template"`

	// Path is the stable copy substituted for %f
	Path string `json:"path"`
}

// Resolver finds item templates and materializes them.
type Resolver struct {
	fs       fsops.FS
	hasher   hash.Hasher
	reposDir string
	dataDir  string
	logger   zerolog.Logger
}

// NewResolver creates a Resolver over the repositories in reposDir that
// copies artifacts into dataDir.
func NewResolver(fs fsops.FS, hasher hash.Hasher, reposDir, dataDir string) *Resolver {
	return &Resolver{
		fs:       fs,
		hasher:   hasher,
		reposDir: reposDir,
		dataDir:  dataDir,
		logger:   logging.Component("items"),
	}
}

// Resolve returns one artifact per item that supports id's system, in
// declaration order. It fails on the first item without a template and
// writes nothing.
func (r *Resolver) Resolve(items []config.Item, id scheme.ID) ([]Artifact, error) {
	artifacts := make([]Artifact, 0, len(items))

	for _, item := range items {
		if !item.Supports(id.System) {
			r.logger.Debug().
				Str("item", item.Name).
				Str("system", string(id.System)).
				Msg("item does not support scheme system, skipping")
			continue
		}

		if err := r.fs.ValidateIdentifier(item.Name); err != nil {
			return nil, fmt.Errorf("item %q: %w", item.Name, err)
		}

		dir := filepath.Join(r.reposDir, item.Name, item.ThemesDir)
		template, err := r.findTemplate(dir, id.String())
		if err != nil {
			return nil, err
		}
		if template == "" {
			return nil, &TemplateError{Item: item.Name, Scheme: id.String(), Dir: dir}
		}

		artifacts = append(artifacts, Artifact{
			Item:     item,
			Template: template,
			Path:     r.ArtifactPath(item, filepath.Ext(template)),
		})
	}

	return artifacts, nil
}

// ArtifactPath returns where item's rendered file with extension ext is kept:
// <data-dir>/<item-name>-<themes-dir>-file<ext>, with separators in
// themes-dir replaced by "-".
func (r *Resolver) ArtifactPath(item config.Item, ext string) string {
	themesDir := strings.Trim(filepath.ToSlash(filepath.Clean(item.ThemesDir)), "/")
	themesDir = strings.ReplaceAll(themesDir, "/", "-")
	return filepath.Join(r.dataDir, fmt.Sprintf("%s-%s-file%s", item.Name, themesDir, ext))
}

// Materialize copies the artifact's template to its stable path. The copy is
// skipped when the destination already has the same content. It reports
// whether a write happened.
func (r *Resolver) Materialize(a Artifact) (bool, error) {
	same, err := hash.SameContent(r.hasher, a.Template, a.Path)
	if err != nil {
		return false, fmt.Errorf("failed to compare %s: %w", a.Path, err)
	}
	if same {
		r.logger.Debug().Str("item", a.Item.Name).Str("path", a.Path).Msg("artifact unchanged")
		return false, nil
	}

	if err := r.fs.Copy(a.Template, a.Path); err != nil {
		return false, fmt.Errorf("failed to write artifact for item %q: %w", a.Item.Name, err)
	}
	r.logger.Debug().Str("item", a.Item.Name).Str("path", a.Path).Msg("artifact written")
	return true, nil
}

// findTemplate returns the first regular file in dir whose name without
// extension is stem, or "" when there is none. A missing dir has none.
func (r *Resolver) findTemplate(dir, stem string) (string, error) {
	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read themes directory %s: %w", dir, err)
	}

	// ReadDir returns entries sorted by name
	for _, entry := range entries {
		name := entry.Name()
		if strings.TrimSuffix(name, filepath.Ext(name)) != stem {
			continue
		}
		path := filepath.Join(dir, name)
		info, err := r.fs.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		return abs, nil
	}
	return "", nil
}
