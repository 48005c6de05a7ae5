// Package scheme models base16/base24 color schemes and the index of
// schemes installed on disk.
//
// A scheme is addressed by an identifier of the form <system>-<name>, for
// example "base16-oceanicnext". The installed schemes live in a directory
// with one sub-directory per system, each holding one YAML file per scheme:
//
//	schemes/
//	  base16/oceanicnext.yaml
//	  base24/dracula.yaml
package scheme

import (
	"fmt"
	"strings"
)

// System is a palette family.
type System string

const (
	Base16 System = "base16"
	Base24 System = "base24"
)

// Systems lists the recognized systems in display order.
var Systems = []System{Base16, Base24}

// Valid reports whether s is a recognized system.
func (s System) Valid() bool {
	for _, known := range Systems {
		if s == known {
			return true
		}
	}
	return false
}

// ID identifies a scheme within a system.
type ID struct {
	System System
	Name   string
}

// String returns the full identifier, e.g. "base16-oceanicnext".
func (id ID) String() string {
	return string(id.System) + "-" + id.Name
}

// MarshalText renders the identifier in its string form. A zero ID is empty.
func (id ID) MarshalText() ([]byte, error) {
	if id == (ID{}) {
		return []byte{}, nil
	}
	return []byte(id.String()), nil
}

// ParseID validates a raw "<system>-<name>" token.
// The token is split on the first '-' so names may contain dashes themselves.
func ParseID(raw string) (ID, error) {
	prefix, name, ok := strings.Cut(raw, "-")
	if !ok || prefix == "" || name == "" {
		return ID{}, &Error{
			Kind: ErrInvalidFormat,
			Msg:  "Invalid scheme name. Make sure the scheme system is prefixed <SCHEME_SYSTEM>-<SCHEME_NAME>, eg: `base16-ayu-dark`",
		}
	}

	system := System(prefix)
	if !system.Valid() {
		return ID{}, &Error{
			Kind: ErrUnsupportedSystem,
			Msg: fmt.Sprintf("Invalid scheme name. Make sure your scheme is prefixed with a supprted system (%s), eg: %s-%s",
				quotedSystems(), Base16, raw),
		}
	}

	return ID{System: system, Name: name}, nil
}

// quotedSystems renders the supported systems as `"base16" or "base24"`.
func quotedSystems() string {
	quoted := make([]string, len(Systems))
	for i, s := range Systems {
		quoted[i] = fmt.Sprintf("%q", string(s))
	}
	return strings.Join(quoted, " or ")
}
