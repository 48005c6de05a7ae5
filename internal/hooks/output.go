package hooks

import "strings"

// Output accumulates the stdout of a sequence of hooks in execution order.
//
// Each hook's output is normalized before it is appended: trailing blanks are
// stripped from every line and trailing newlines are dropped. Non-empty
// outputs are joined with a single newline, so hooks printing "This " and
// "is " combine to "This\nis".
type Output struct {
	parts []string
}

// Add appends one hook's stdout.
func (o *Output) Add(stdout string) {
	if normalized := normalize(stdout); normalized != "" {
		o.parts = append(o.parts, normalized)
	}
}

// String returns the combined output.
func (o *Output) String() string {
	return strings.Join(o.parts, "\n")
}

// Len returns the number of non-empty outputs collected.
func (o *Output) Len() int {
	return len(o.parts)
}

func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
