// Package config provides configuration loading and access for the
// visualizer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pbennion/driftfield/systems"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all startup configuration parameters. Runtime mutation
// happens on systems.Params, seeded from here.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Particles ParticlesConfig `yaml:"particles"`
	Render    RenderConfig    `yaml:"render"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Snapshot  SnapshotConfig  `yaml:"snapshot"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// FieldConfig holds noise field settings.
type FieldConfig struct {
	Backend string  `yaml:"backend"` // "perlin" or "simplex"
	Seed    int64   `yaml:"seed"`
	Scale   float64 `yaml:"scale"`
	ZStep   float64 `yaml:"z_step"`
}

// PhysicsConfig holds particle integration parameters.
type PhysicsConfig struct {
	Force         float64 `yaml:"force"`
	Friction      float64 `yaml:"friction"`
	StepsPerFrame int     `yaml:"steps_per_frame"`
}

// ParticlesConfig holds population parameters.
type ParticlesConfig struct {
	SpawnCount   int `yaml:"spawn_count"`   // 0 = screen height / 4
	CapacityHint int `yaml:"capacity_hint"` // 0 = width * height / 4
}

// RenderConfig holds trail rendering parameters.
type RenderConfig struct {
	Fade      float64 `yaml:"fade"`
	ColorMode string  `yaml:"color_mode"` // direction, age or curl
}

// TelemetryConfig holds frame statistics settings.
type TelemetryConfig struct {
	WindowFrames int `yaml:"window_frames"` // frames per stats window
}

// SnapshotConfig holds PNG snapshot settings.
type SnapshotConfig struct {
	Dir string `yaml:"dir"` // empty = working directory
}

// DerivedConfig holds values computed after loading.
type DerivedConfig struct {
	SpawnCount   int               // resolved spawn count
	CapacityHint int               // resolved capacity hint
	ColorMode    systems.ColorMode // parsed color mode
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations no clamp can repair.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Field.Backend != systems.BackendPerlin && c.Field.Backend != systems.BackendSimplex {
		return fmt.Errorf("unknown field backend %q", c.Field.Backend)
	}
	if _, ok := systems.ParseColorMode(c.Render.ColorMode); !ok {
		return fmt.Errorf("unknown color mode %q", c.Render.ColorMode)
	}
	return nil
}

// computeDerived calculates values derived from loaded config and pulls
// bounded parameters into their documented ranges.
func (c *Config) computeDerived() {
	c.Derived.SpawnCount = c.Particles.SpawnCount
	if c.Derived.SpawnCount == 0 {
		c.Derived.SpawnCount = c.Screen.Height / 4
	}
	c.Derived.CapacityHint = c.Particles.CapacityHint
	if c.Derived.CapacityHint == 0 {
		c.Derived.CapacityHint = c.Screen.Width * c.Screen.Height / 4
	}
	c.Derived.ColorMode, _ = systems.ParseColorMode(c.Render.ColorMode)

	// Ranged parameters are clamped rather than rejected so stale config
	// files keep working after range changes.
	p := c.Params()
	p.ClampRanges()
	c.Field.Scale = p.Scale
	c.Field.ZStep = p.ZStep
	c.Physics.Force = p.Force
	c.Physics.Friction = p.Friction
	c.Physics.StepsPerFrame = p.StepsPerFrame
	c.Render.Fade = p.Fade
}

// Params builds the runtime parameter set this configuration describes.
func (c *Config) Params() systems.Params {
	return systems.Params{
		Scale:         c.Field.Scale,
		ZStep:         c.Field.ZStep,
		Force:         c.Physics.Force,
		Friction:      c.Physics.Friction,
		StepsPerFrame: c.Physics.StepsPerFrame,
		SpawnCount:    c.Derived.SpawnCount,
		Fade:          c.Render.Fade,
		Mode:          c.Derived.ColorMode,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
