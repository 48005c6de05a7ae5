// Package hooks turns hook templates into shell commands and runs them.
package hooks

import "strings"

// FilePlaceholder is replaced with the absolute path of an item's rendered file.
const FilePlaceholder = "%f"

// Vars holds the values available to a hook template.
type Vars struct {
	// File is the rendered artifact path; empty for global hooks.
	File string
}

// Command is a hook template as written in the configuration.
type Command struct {
	Template string
}

// Substitute returns the command line for vars. Global hooks have no file
// and run exactly as written.
func (c Command) Substitute(vars Vars) string {
	if vars.File == "" {
		return c.Template
	}
	return strings.ReplaceAll(c.Template, FilePlaceholder, vars.File)
}

// Empty reports whether there is nothing to run.
func (c Command) Empty() bool {
	return strings.TrimSpace(c.Template) == ""
}
