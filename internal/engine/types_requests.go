package engine

// ApplyRequest represents a request to apply a scheme.
type ApplyRequest struct {
	// Scheme is the raw identifier as typed by the user, e.g. "base16-ocean"
	Scheme string
}

// SetRequest represents a request to set a legacy base16-shell theme.
type SetRequest struct {
	// Name is the theme name, with or without the "base16-" prefix
	Name string
}
