package state

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/danieljhkim/tintctl/internal/fsops"
	"github.com/danieljhkim/tintctl/internal/scheme"
)

// ErrPersist indicates the current scheme marker could not be written.
var ErrPersist = errors.New("failed to persist current scheme")

// CurrentStore persists a single marker file holding a bare value with no
// metadata: the applied scheme identifier, or a legacy theme name.
type CurrentStore struct {
	fs   fsops.FS
	path string
}

// NewCurrentStore creates a store backed by the file at path.
func NewCurrentStore(fs fsops.FS, path string) *CurrentStore {
	return &CurrentStore{fs: fs, path: path}
}

// Write atomically replaces the marker with id's full string form.
func (s *CurrentStore) Write(id scheme.ID) error {
	return s.WriteName(id.String())
}

// WriteName atomically replaces the marker with name.
func (s *CurrentStore) WriteName(name string) error {
	if err := s.fs.AtomicWrite(s.path, []byte(name), 0644); err != nil {
		return fmt.Errorf("%w to %s: %w", ErrPersist, s.path, err)
	}
	return nil
}

// Read returns the recorded scheme. A missing or empty marker is reported
// as ok == false with no error.
func (s *CurrentStore) Read() (id scheme.ID, ok bool, err error) {
	name, ok, err := s.ReadName()
	if err != nil || !ok {
		return scheme.ID{}, ok, err
	}
	id, err = scheme.ParseID(name)
	if err != nil {
		return scheme.ID{}, false, fmt.Errorf("current scheme file %s is corrupt: %w", s.path, err)
	}
	return id, true, nil
}

// ReadName returns the raw marker value.
func (s *CurrentStore) ReadName() (string, bool, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read current scheme: %w", err)
	}
	name := strings.TrimSpace(string(data))
	if name == "" {
		return "", false, nil
	}
	return name, true, nil
}
