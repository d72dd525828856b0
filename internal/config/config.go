package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/reel/internal/carousel"
	"github.com/llehouerou/reel/internal/motion"
	"github.com/llehouerou/reel/internal/pan"
)

type Config struct {
	DefaultFolder string `koanf:"default_folder"`
	Style         string `koanf:"style"` // "carousel" or "flow"
	Icons         string `koanf:"icons"` // "nerd", "unicode", or "none"

	// Strip geometry, in terminal cells
	Layout LayoutConfig `koanf:"layout"`

	// Drag, deceleration and bounce
	Physics PhysicsConfig `koanf:"physics"`

	// Frame rate and animation timings
	Animation AnimationConfig `koanf:"animation"`
}

// LayoutConfig holds the strip metrics. Sizes are in cells; an item is
// twice as tall in pixels as it is in rows.
type LayoutConfig struct {
	NaturalAspect                 float64 `koanf:"natural_aspect"`                   // columns per row at rest (default: 1.5)
	VerticalInset                 float64 `koanf:"vertical_inset"`                   // rows not used by items (default: 2)
	MinLineSpacing                float64 `koanf:"min_line_spacing"`                 // columns between items (default: 1)
	MaxLineSpacing                float64 `koanf:"max_line_spacing"`                 // columns around the focused item (default: 4)
	MaxWidthMultiplier            float64 `koanf:"max_width_multiplier"`             // focused width cap in natural widths (default: 2.5)
	PlayingVideoSpacingMultiplier float64 `koanf:"playing_video_spacing_multiplier"` // (default: 1.5)
	RatioEpsilon                  float64 `koanf:"ratio_epsilon"`                    // (default: 0.01)
}

// PhysicsConfig holds pan handler tuning. Distances are in columns and
// velocities in columns per second.
type PhysicsConfig struct {
	DecelerationRate      float64 `koanf:"deceleration_rate"`      // per millisecond, (0,1) (default: 0.998)
	DecelerationThreshold float64 `koanf:"deceleration_threshold"` // (default: 0.5)
	RubberCoefficient     float64 `koanf:"rubber_coefficient"`     // (default: 0.55)
	BounceMass            float64 `koanf:"bounce_mass"`            // (default: 1)
	BounceStiffness       float64 `koanf:"bounce_stiffness"`       // (default: 100)
	BounceDampingRatio    float64 `koanf:"bounce_damping_ratio"`   // (0,1] (default: 1)
	BounceThreshold       float64 `koanf:"bounce_threshold"`       // (default: 0.1)
	AutoInvalidateInset   float64 `koanf:"auto_invalidate_inset"`  // columns past the item before free scrolling (default: 6)
	StopWindowMS          int     `koanf:"stop_window_ms"`         // (default: 100)
}

// AnimationConfig holds the frame rate and timed animation durations.
type AnimationConfig struct {
	FPS            int     `koanf:"fps"`             // (default: 60)
	TransitionMS   int     `koanf:"transition_ms"`   // style switch (default: 250)
	RemovalMS      int     `koanf:"removal_ms"`      // (default: 220)
	FocusFrequency float64 `koanf:"focus_frequency"` // keyboard focus spring (default: 6)
	FocusDamping   float64 `koanf:"focus_damping"`   // (default: 1)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		DefaultFolder: "", // empty means use cwd
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in default_folder
	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/reel/config.toml
		filepath.Join(xdg.ConfigHome, "reel", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetStyle returns the configured layout style, carousel when unset or
// unknown.
func (c *Config) GetStyle() carousel.Style {
	s, err := carousel.ParseStyle(c.Style)
	if err != nil {
		return carousel.Carousel
	}
	return s
}

// GetLayoutConfig returns the layout configuration with defaults applied.
func (c *Config) GetLayoutConfig() LayoutConfig {
	cfg := c.Layout

	if cfg.NaturalAspect <= 0 {
		cfg.NaturalAspect = 1.5
	}
	if cfg.VerticalInset < 0 {
		cfg.VerticalInset = 0
	} else if cfg.VerticalInset == 0 {
		cfg.VerticalInset = 2
	}
	if cfg.MinLineSpacing <= 0 {
		cfg.MinLineSpacing = 1
	}
	if cfg.MaxLineSpacing <= 0 {
		cfg.MaxLineSpacing = 4
	}
	if cfg.MaxLineSpacing < cfg.MinLineSpacing {
		cfg.MaxLineSpacing = cfg.MinLineSpacing
	}
	if cfg.MaxWidthMultiplier < 1 {
		cfg.MaxWidthMultiplier = 2.5
	}
	if cfg.PlayingVideoSpacingMultiplier <= 0 {
		cfg.PlayingVideoSpacingMultiplier = 1.5
	}
	if cfg.RatioEpsilon <= 0 {
		cfg.RatioEpsilon = 0.01
	}

	return cfg
}

// Metrics converts the layout configuration to carousel metrics.
func (c *Config) Metrics() carousel.Metrics {
	l := c.GetLayoutConfig()
	return carousel.Metrics{
		NaturalAspect:                 l.NaturalAspect,
		VerticalInset:                 l.VerticalInset,
		MinLineSpacing:                l.MinLineSpacing,
		MaxLineSpacing:                l.MaxLineSpacing,
		MaxWidthMultiplier:            l.MaxWidthMultiplier,
		PlayingVideoSpacingMultiplier: l.PlayingVideoSpacingMultiplier,
		RatioEpsilon:                  l.RatioEpsilon,
	}
}

// GetPhysicsConfig returns the physics configuration with defaults applied.
func (c *Config) GetPhysicsConfig() PhysicsConfig {
	cfg := c.Physics

	if cfg.DecelerationRate <= 0 || cfg.DecelerationRate >= 1 {
		cfg.DecelerationRate = motion.DefaultDecelerationRate
	}
	if cfg.DecelerationThreshold <= 0 {
		cfg.DecelerationThreshold = motion.DefaultThreshold
	}
	if cfg.RubberCoefficient <= 0 {
		cfg.RubberCoefficient = motion.DefaultRubberBandCoefficient
	}
	if cfg.BounceMass <= 0 {
		cfg.BounceMass = motion.BounceSpring.Mass
	}
	if cfg.BounceStiffness <= 0 {
		cfg.BounceStiffness = motion.BounceSpring.Stiffness
	}
	if cfg.BounceDampingRatio <= 0 || cfg.BounceDampingRatio > 1 {
		cfg.BounceDampingRatio = motion.BounceSpring.DampingRatio
	}
	if cfg.BounceThreshold <= 0 {
		cfg.BounceThreshold = 0.1
	}
	if cfg.AutoInvalidateInset <= 0 {
		cfg.AutoInvalidateInset = 6
	}
	if cfg.StopWindowMS <= 0 {
		cfg.StopWindowMS = 100
	}

	return cfg
}

// PanParams converts the physics configuration to pan handler parameters.
func (c *Config) PanParams() pan.Params {
	p := c.GetPhysicsConfig()
	return pan.Params{
		DecelerationRate:      p.DecelerationRate,
		DecelerationThreshold: p.DecelerationThreshold,
		RubberCoefficient:     p.RubberCoefficient,
		Spring: motion.Spring{
			Mass:         p.BounceMass,
			Stiffness:    p.BounceStiffness,
			DampingRatio: p.BounceDampingRatio,
		},
		BounceThreshold:     p.BounceThreshold,
		AutoInvalidateInset: p.AutoInvalidateInset,
		StopWindow:          time.Duration(p.StopWindowMS) * time.Millisecond,
	}
}

// GetAnimationConfig returns the animation configuration with defaults
// applied.
func (c *Config) GetAnimationConfig() AnimationConfig {
	cfg := c.Animation

	if cfg.FPS <= 0 || cfg.FPS > 240 {
		cfg.FPS = 60
	}
	if cfg.TransitionMS <= 0 {
		cfg.TransitionMS = 250
	}
	if cfg.RemovalMS <= 0 {
		cfg.RemovalMS = 220
	}
	if cfg.FocusFrequency <= 0 {
		cfg.FocusFrequency = 6
	}
	if cfg.FocusDamping <= 0 {
		cfg.FocusDamping = 1
	}

	return cfg
}

// FrameInterval is the time between two animation frames.
func (a AnimationConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(a.FPS)
}

// TransitionDuration is the style switch duration.
func (a AnimationConfig) TransitionDuration() time.Duration {
	return time.Duration(a.TransitionMS) * time.Millisecond
}

// RemovalDuration is the item removal duration.
func (a AnimationConfig) RemovalDuration() time.Duration {
	return time.Duration(a.RemovalMS) * time.Millisecond
}
