// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BasicVertexShader transforms vertices by the view-projection uniform.
//
//go:embed basic.vert
var BasicVertexShader string

// TexturedFragmentShader samples the diffuse texture directly.
//
//go:embed textured.frag
var TexturedFragmentShader string

// GrayscaleFragmentShader renders a desaturated variant of the texture.
//
//go:embed grayscale.frag
var GrayscaleFragmentShader string
