// Package state persists which scheme is active.
//
// The record is a single plain-text file holding the bare identifier (for
// example "base16-oceanicnext") with no metadata, so shell scripts and other
// tools can read it directly. Writes go through fsops.FS.AtomicWrite, so a
// reader never observes a partially written value.
//
// The same store type backs the base16-shell "theme_name" file, which holds a
// theme name without a system prefix.
package state
