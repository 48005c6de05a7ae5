package scheme

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/danieljhkim/tintctl/internal/fsops"
)

// schemeExts are the file extensions recognized as scheme definitions.
var schemeExts = []string{".yaml", ".yml"}

// Repository is the read-only index of installed schemes.
// It is built once by LoadRepository and never rescans the disk.
type Repository struct {
	fs     fsops.FS
	binary string
	index  map[ID]string
	sorted []ID
}

// LoadRepository indexes the schemes installed under dir.
// A missing directory yields an empty repository, not an error; Resolve
// reports that case as ErrSchemesNotInstalled.
func LoadRepository(fs fsops.FS, dir string) (*Repository, error) {
	r := &Repository{
		fs:     fs,
		binary: "tintctl",
		index:  make(map[ID]string),
	}

	for _, system := range Systems {
		systemDir := filepath.Join(dir, string(system))
		entries, err := fs.ReadDir(systemDir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to read schemes directory %s: %w", systemDir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name, ok := schemeStem(entry.Name())
			if !ok {
				continue
			}
			id := ID{System: system, Name: name}
			if _, dup := r.index[id]; dup {
				// .yaml and .yml for the same scheme; keep the first in directory order
				continue
			}
			abs, err := filepath.Abs(filepath.Join(systemDir, entry.Name()))
			if err != nil {
				return nil, fmt.Errorf("failed to get absolute path: %w", err)
			}
			r.index[id] = abs
			r.sorted = append(r.sorted, id)
		}
	}

	sort.Slice(r.sorted, func(i, j int) bool {
		a, b := r.sorted[i], r.sorted[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.System < b.System
	})

	return r, nil
}

// SetBinaryName sets the command name used in the "run install" hint.
func (r *Repository) SetBinaryName(name string) {
	if name != "" {
		r.binary = name
	}
}

// Installed reports whether any scheme is installed.
func (r *Repository) Installed() bool {
	return len(r.index) > 0
}

// Len returns the number of installed schemes.
func (r *Repository) Len() int {
	return len(r.index)
}

// CheckInstalled returns ErrSchemesNotInstalled when the index is empty.
func (r *Repository) CheckInstalled() error {
	if !r.Installed() {
		return NotInstalled(r.binary)
	}
	return nil
}

// Resolve returns the absolute path of the scheme file for id.
func (r *Repository) Resolve(id ID) (string, error) {
	if err := r.CheckInstalled(); err != nil {
		return "", err
	}
	path, ok := r.index[id]
	if !ok {
		return "", NotFound(id.String())
	}
	return path, nil
}

// List yields the installed identifiers sorted by name.
// The sequence can be ranged over any number of times.
func (r *Repository) List() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for _, id := range r.sorted {
			if !yield(id) {
				return
			}
		}
	}
}

// schemeStem returns the file name without a recognized scheme extension.
func schemeStem(fileName string) (string, bool) {
	if strings.HasPrefix(fileName, ".") {
		return "", false
	}
	ext := filepath.Ext(fileName)
	for _, known := range schemeExts {
		if strings.EqualFold(ext, known) {
			stem := strings.TrimSuffix(fileName, ext)
			return stem, stem != ""
		}
	}
	return "", false
}
