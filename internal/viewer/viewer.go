// Package viewer implements the frame loop: input, camera update, render.
package viewer

import (
	"fmt"
	"image"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitview/internal/assets"
	"github.com/Faultbox/orbitview/internal/config"
	"github.com/Faultbox/orbitview/internal/engine/camera"
	"github.com/Faultbox/orbitview/internal/engine/input"
	"github.com/Faultbox/orbitview/internal/engine/model"
	"github.com/Faultbox/orbitview/internal/engine/renderer"
	"github.com/Faultbox/orbitview/internal/engine/shaders"
	"github.com/Faultbox/orbitview/internal/engine/texture"
	"github.com/Faultbox/orbitview/internal/engine/window"
	"github.com/Faultbox/orbitview/internal/logger"
	"github.com/Faultbox/orbitview/pkg/flip"
	"github.com/Faultbox/orbitview/pkg/math"
)

// Background endpoints blended by the cursor's horizontal position.
var (
	leftColor  = renderer.Color{R: 1.0, G: 0.0, B: 0.2, A: 1.0}
	rightColor = renderer.Color{R: 0.0, G: 1.0, B: 0.2, A: 1.0}
)

// Viewer owns all backend resources and mutable render state. It is
// single-threaded: input, update and render run sequentially each frame.
type Viewer struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	camera    *camera.Camera
	pipelines *flip.Flip[renderer.Pipeline]
	mesh      *model.Mesh
	texture   uint32
}

// New creates the window, GL state, pipelines, camera and mesh.
// Failures here are fatal to startup.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{cfg: cfg}

	var err error
	v.window, err = window.New(window.Config{
		Title:      "orbitview",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	textured, err := v.renderer.NewPipeline(shaders.BasicVertexShader, shaders.TexturedFragmentShader)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("textured pipeline: %w", err)
	}
	grayscale, err := v.renderer.NewPipeline(shaders.BasicVertexShader, shaders.GrayscaleFragmentShader)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("grayscale pipeline: %w", err)
	}
	v.pipelines = flip.New(textured, grayscale)

	data, err := loadModelData(cfg.Model.Path)
	if err != nil {
		v.Close()
		return nil, err
	}
	v.mesh, err = model.NewMesh(data)
	if err != nil {
		v.Close()
		return nil, fmt.Errorf("uploading mesh: %w", err)
	}

	img, err := loadTexture(cfg.Model.Texture)
	if err != nil {
		v.Close()
		return nil, err
	}
	v.texture = texture.Upload(img)

	aspect := float32(cfg.Graphics.Width) / float32(cfg.Graphics.Height)
	v.camera = camera.New(aspect)
	v.camera.FovY = cfg.Camera.FovY
	v.camera.Near = cfg.Camera.Near
	v.camera.Far = cfg.Camera.Far

	v.input = input.New()

	logger.Info("viewer initialized")
	return v, nil
}

func loadModelData(path string) (*model.Data, error) {
	if path == "" {
		logger.Debug("using embedded default model")
		return model.Decode(assets.DefaultModel)
	}
	return model.Load(path)
}

func loadTexture(path string) (*image.RGBA, error) {
	if path == "" {
		logger.Debug("using procedural checkerboard texture")
		return texture.Checkerboard(256, 8), nil
	}
	return texture.LoadRGBA(path)
}

// Run drives the frame loop until quit.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()

		// 2. Update camera from held keys
		v.update(dt)

		// 3. Render
		v.render()

		// 4. Present
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("frames", frameCount),
				zap.Float32("dt_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents applies discrete events: quit, resize, pipeline flip,
// background blend from cursor position.
func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			v.resize(event.Width, event.Height)

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				v.running = false
			case sdl.SCANCODE_SPACE:
				v.pipelines.Flip()
				logger.Debug("pipeline flipped")
			}

		case input.EventMouseMove:
			width, _ := v.window.Size()
			factor := float64(event.MouseX) / float64(width)
			v.renderer.SetClearColor(renderer.Lerp(leftColor, rightColor, factor))
		}
	}
}

// update maps held keys to continuous camera movement.
func (v *Viewer) update(dt float32) {
	pan := v.cfg.Camera.PanSpeed * dt
	rot := v.cfg.Camera.RotateSpeed * dt

	var mov math.Vec3
	if v.input.Held(sdl.SCANCODE_W) {
		mov.Z -= pan
	}
	if v.input.Held(sdl.SCANCODE_S) {
		mov.Z += pan
	}
	if v.input.Held(sdl.SCANCODE_A) {
		mov.X -= pan
	}
	if v.input.Held(sdl.SCANCODE_D) {
		mov.X += pan
	}
	if v.input.Held(sdl.SCANCODE_R) {
		mov.Y += pan
	}
	if v.input.Held(sdl.SCANCODE_F) {
		mov.Y -= pan
	}
	if mov != (math.Vec3{}) {
		v.camera.Pan(mov)
	}

	if v.input.Held(sdl.SCANCODE_LEFT) {
		v.camera.RotateH(-rot)
	}
	if v.input.Held(sdl.SCANCODE_RIGHT) {
		v.camera.RotateH(rot)
	}
	if v.input.Held(sdl.SCANCODE_UP) {
		v.camera.RotateV(-rot)
	}
	if v.input.Held(sdl.SCANCODE_DOWN) {
		v.camera.RotateV(rot)
	}
}

// render draws the current frame.
func (v *Viewer) render() {
	v.renderer.Begin()
	v.renderer.Draw(v.pipelines.Get(), v.mesh, v.camera.Uniform(), v.texture)
}

// resize reconfigures the viewport and camera aspect.
func (v *Viewer) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.renderer.Resize(width, height)
	v.camera.Aspect = float32(width) / float32(height)
	logger.Debug("resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Close releases all owned resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.mesh != nil {
		v.mesh.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
