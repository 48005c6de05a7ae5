// Package hash compares rendered theme files by content.
//
// Copying an item's template into the data directory is skipped when the
// destination already holds the same bytes, so watchers on the rendered file
// only fire when the theme actually changed.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Hasher computes content digests of files.
type Hasher interface {
	HashFile(path string) (string, error)
}

// SHA256Hasher hashes with SHA-256.
type SHA256Hasher struct{}

// NewSHA256Hasher creates a new SHA256Hasher.
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// HashFile returns the hex SHA-256 digest of the file at path.
func (h *SHA256Hasher) HashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// SameContent reports whether src and dst hold identical bytes.
// A missing dst is reported as different, not as an error.
func SameContent(h Hasher, src, dst string) (bool, error) {
	if _, err := os.Stat(dst); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	srcSum, err := h.HashFile(src)
	if err != nil {
		return false, err
	}
	dstSum, err := h.HashFile(dst)
	if err != nil {
		return false, err
	}
	return srcSum == dstSum, nil
}

// FakeHasher returns preset digests.
type FakeHasher struct {
	hashes map[string]string
}

// NewFakeHasher creates a FakeHasher with no digests set.
func NewFakeHasher() *FakeHasher {
	return &FakeHasher{hashes: make(map[string]string)}
}

// SetHash sets the digest returned for path.
func (h *FakeHasher) SetHash(path, hash string) {
	h.hashes[path] = hash
}

// HashFile returns the digest set for path, or the path itself so that
// unset files never compare equal.
func (h *FakeHasher) HashFile(path string) (string, error) {
	if hash, ok := h.hashes[path]; ok {
		return hash, nil
	}
	return "unset:" + path, nil
}
