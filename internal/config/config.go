// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Render  RenderConfig  `yaml:"render"`
	Camera  CameraConfig  `yaml:"camera"`
	Light   LightConfig   `yaml:"light"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig holds frame rate and parallelism settings.
type DisplayConfig struct {
	FPS     int `yaml:"fps"`
	Workers int `yaml:"workers"` // Rasterizer goroutines, 0 = GOMAXPROCS
}

// RenderConfig holds shading settings.
type RenderConfig struct {
	Ramp     string  `yaml:"ramp"`      // Glyphs from darkest to brightest
	Ambient  float64 `yaml:"ambient"`   // Minimum shading intensity
	SpinRate float64 `yaml:"spin_rate"` // Base Y rotation, radians per second
}

// CameraConfig holds projection settings.
type CameraConfig struct {
	FOVDegrees float64 `yaml:"fov_degrees"`
	Distance   float64 `yaml:"distance"` // Eye distance from the model
	Near       float64 `yaml:"near"`
	Far        float64 `yaml:"far"`
}

// LightConfig holds the directional light.
type LightConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			FPS:     30,
			Workers: 0,
		},
		Render: RenderConfig{
			Ramp:     " .:-=+*#%@",
			Ambient:  0.1,
			SpinRate: 0.9,
		},
		Camera: CameraConfig{
			FOVDegrees: 60,
			Distance:   5,
			Near:       0.1,
			Far:        100,
		},
		Light: LightConfig{
			X: 0,
			Y: 0,
			Z: -1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
