// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Model    ModelConfig    `yaml:"model"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds lens parameters and input sensitivities.
type CameraConfig struct {
	FovY        float32 `yaml:"fov_y"` // degrees
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	PanSpeed    float32 `yaml:"pan_speed"`    // units per second
	RotateSpeed float32 `yaml:"rotate_speed"` // radians per second
}

// ModelConfig holds asset paths. Empty paths fall back to the embedded
// default model and a procedural texture.
type ModelConfig struct {
	Path    string `yaml:"path"`
	Texture string `yaml:"texture"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			FovY:        45.0,
			Near:        0.1,
			Far:         100.0,
			PanSpeed:    2.0,
			RotateSpeed: 1.5,
		},
		Model: ModelConfig{},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
