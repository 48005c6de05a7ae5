package engine

import "errors"

// ErrNoCurrentScheme indicates no scheme has been applied yet.
var ErrNoCurrentScheme = errors.New("no current scheme")
