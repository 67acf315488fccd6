// Package renderer provides OpenGL rendering for the viewer.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitview/internal/engine/camera"
	"github.com/Faultbox/orbitview/internal/engine/model"
	"github.com/Faultbox/orbitview/internal/engine/shader"
	"github.com/Faultbox/orbitview/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Color is an RGBA clear color with components in [0,1].
type Color struct {
	R, G, B, A float64
}

// Lerp linearly interpolates between two colors.
func Lerp(from, to Color, factor float64) Color {
	return Color{
		R: from.R + (to.R-from.R)*factor,
		G: from.G + (to.G-from.G)*factor,
		B: from.B + (to.B-from.B)*factor,
		A: from.A + (to.A-from.A)*factor,
	}
}

// Pipeline is a compiled shader program with its uniform locations.
// Two of these are held in a flip selector and hot-swapped at runtime.
type Pipeline struct {
	program     uint32
	locViewProj int32
	locTexture  int32
}

// Renderer owns OpenGL state and issues draw calls.
// IMPORTANT: New must be called AFTER the OpenGL context is created.
type Renderer struct {
	config     Config
	clearColor Color
	pipelines  []uint32 // programs owned for cleanup
}

// New initializes OpenGL and default render state.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:     cfg,
		clearColor: Color{R: 1, G: 1, B: 1, A: 1},
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// NewPipeline compiles a shader pair into a render pipeline.
func (r *Renderer) NewPipeline(vertexSrc, fragmentSrc string) (Pipeline, error) {
	program, err := shader.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return Pipeline{}, err
	}
	r.pipelines = append(r.pipelines, program)

	return Pipeline{
		program:     program,
		locViewProj: shader.GetUniform(program, "uViewProj"),
		locTexture:  shader.GetUniform(program, "uTexture"),
	}, nil
}

// Close releases owned GL programs.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, program := range r.pipelines {
		gl.DeleteProgram(program)
	}
	r.pipelines = nil
}

// Resize updates the viewport for a new window size.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetClearColor sets the background color for subsequent frames.
func (r *Renderer) SetClearColor(c Color) {
	r.clearColor = c
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.ClearColor(
		float32(r.clearColor.R),
		float32(r.clearColor.G),
		float32(r.clearColor.B),
		float32(r.clearColor.A),
	)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders a mesh with the given pipeline, camera snapshot and
// diffuse texture.
func (r *Renderer) Draw(p *Pipeline, mesh *model.Mesh, u camera.Uniform, tex uint32) {
	gl.UseProgram(p.program)
	gl.UniformMatrix4fv(p.locViewProj, 1, false, u.Ptr())

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Uniform1i(p.locTexture, 0)

	mesh.Draw()
}
