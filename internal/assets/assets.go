// Package assets provides embedded default assets so the viewer runs
// without external files.
package assets

import _ "embed"

// DefaultModel is a textured unit rectangle geometry description.
//
//go:embed rectangle.model
var DefaultModel []byte
