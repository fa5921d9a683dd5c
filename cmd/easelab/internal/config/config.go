// Package config loads the optional easelab.yaml file and resolves it
// against built-in defaults.
package config

import (
	stderrors "errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/easelab/pkg/animation"
	"github.com/go-drift/easelab/pkg/curve"
	"github.com/go-drift/easelab/pkg/easing"
	"github.com/go-drift/easelab/pkg/errors"
	"github.com/go-drift/easelab/pkg/track"
)

// FileName is the name of the optional configuration file.
const FileName = "easelab.yaml"

// SchemaVersion is the newest configuration schema this build understands.
const SchemaVersion = "v1.0.0"

// Config represents the optional easelab.yaml configuration. Zero values
// mean "use the default".
type Config struct {
	Schema string       `yaml:"schema,omitempty"`
	Easing string       `yaml:"easing,omitempty"`
	Curve  CurveConfig  `yaml:"curve,omitempty"`
	Motion MotionConfig `yaml:"motion,omitempty"`
	Track  TrackConfig  `yaml:"track,omitempty"`
}

// CurveConfig contains sampling and plot settings.
type CurveConfig struct {
	Resolution int     `yaml:"resolution,omitempty"`
	Width      float64 `yaml:"width,omitempty"`
	Height     float64 `yaml:"height,omitempty"`
	Padding    float64 `yaml:"padding,omitempty"`
	Stroke     string  `yaml:"stroke,omitempty"`
	Background string  `yaml:"background,omitempty"`
}

// MotionConfig contains timing settings in seconds.
type MotionConfig struct {
	Duration float64  `yaml:"duration,omitempty"`
	Repeat   Repeat   `yaml:"repeat,omitempty"`
	Reverse  *bool    `yaml:"reverse,omitempty"`
	Delay    *float64 `yaml:"delay,omitempty"`
}

// TrackConfig contains the container and element geometry.
type TrackConfig struct {
	Width   float64  `yaml:"width,omitempty"`
	Element float64  `yaml:"element,omitempty"`
	Padding *float64 `yaml:"padding,omitempty"`
}

// Repeat is a repeat count that also accepts forever, true, false and once.
type Repeat struct {
	Count int
	Set   bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Repeat) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: repeat must be a scalar", node.Line)
	}
	n, err := ParseRepeat(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*r = Repeat{Count: n, Set: true}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Repeat) MarshalYAML() (any, error) {
	if r.Count == animation.RepeatForever {
		return "forever", nil
	}
	return r.Count, nil
}

// IsZero lets omitempty drop an unset repeat.
func (r Repeat) IsZero() bool {
	return !r.Set
}

// ParseRepeat converts a repeat setting to a count for animation.TimingPolicy.
func ParseRepeat(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forever", "true", "yes", "infinite":
		return animation.RepeatForever, nil
	case "false", "no", "once", "":
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid repeat %q (want forever, true, false, once or a count)", s)
	}
	return n, nil
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Path       string
	Schema     string
	Easing     easing.Easing
	Resolution int
	Domain     curve.Domain
	Render     curve.RenderOptions
	Policy     animation.TimingPolicy
	Track      track.Track
	TrackWidth float64
}

// Default values used when easelab.yaml leaves a field out.
const (
	DefaultDuration   = 1.5
	DefaultDelay      = 0.5
	DefaultTrackWidth = 320.0
)

// LoadOptional reads the file at path if present. A missing file yields an
// empty Config.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, configError("read", "failed to read %s: %v", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configError("parse", "failed to parse %s: %v", path, err)
	}
	return &cfg, nil
}

// Load finds easelab.yaml from dir upwards and resolves it. Without a file
// the defaults are returned.
func Load(dir string) (*Resolved, error) {
	cfg := &Config{}
	path, err := FindConfig(dir)
	if err == nil {
		if cfg, err = LoadOptional(path); err != nil {
			return nil, err
		}
	}
	res, err := Resolve(cfg)
	if err != nil {
		return nil, err
	}
	res.Path = path
	return res, nil
}

// Resolve applies defaults to cfg and validates the result.
func Resolve(cfg *Config) (*Resolved, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	schema := strings.TrimSpace(cfg.Schema)
	if schema == "" {
		schema = SchemaVersion
	}
	if !strings.HasPrefix(schema, "v") {
		schema = "v" + schema
	}
	if !semver.IsValid(schema) {
		return nil, configError("schema", "schema %q is not a semantic version", cfg.Schema)
	}
	if semver.Major(schema) != semver.Major(SchemaVersion) {
		return nil, configError("schema", "schema %s is not supported (want %s.x)", schema, semver.Major(SchemaVersion))
	}

	id := strings.TrimSpace(cfg.Easing)
	if id == "" {
		id = easing.DefaultID
	}
	e, err := easing.Lookup(id)
	if err != nil {
		return nil, configError("easing", "easing: %v", err)
	}

	res := &Resolved{
		Schema:     schema,
		Easing:     e,
		Resolution: cfg.Curve.Resolution,
		Domain:     curve.DefaultDomain,
		Render:     curve.DefaultRenderOptions(),
		Track:      track.DefaultTrack,
		TrackWidth: DefaultTrackWidth,
	}

	if res.Resolution == 0 {
		res.Resolution = curve.DefaultResolution
	}
	if res.Resolution < 0 {
		return nil, configError("curve.resolution", "curve.resolution must be positive (got %d)", res.Resolution)
	}
	if cfg.Curve.Width != 0 {
		res.Domain.Width = cfg.Curve.Width
	}
	if cfg.Curve.Height != 0 {
		res.Domain.Height = cfg.Curve.Height
	}
	if cfg.Curve.Padding != 0 {
		res.Domain.PaddingX = cfg.Curve.Padding
		res.Domain.PaddingY = cfg.Curve.Padding
	}
	if err := res.Domain.Validate(); err != nil {
		return nil, configError("curve", "curve: %v", err)
	}
	if cfg.Curve.Stroke != "" {
		c, err := curve.ParseColor(cfg.Curve.Stroke)
		if err != nil {
			return nil, configError("curve.stroke", "curve.stroke: %v", err)
		}
		res.Render.Stroke = c
	}
	if cfg.Curve.Background != "" {
		c, err := curve.ParseColor(cfg.Curve.Background)
		if err != nil {
			return nil, configError("curve.background", "curve.background: %v", err)
		}
		res.Render.Background = c
	}

	duration := cfg.Motion.Duration
	if duration == 0 {
		duration = DefaultDuration
	}
	repeat := animation.RepeatForever
	if cfg.Motion.Repeat.Set {
		repeat = cfg.Motion.Repeat.Count
	}
	reverse := true
	if cfg.Motion.Reverse != nil {
		reverse = *cfg.Motion.Reverse
	}
	delay := DefaultDelay
	if cfg.Motion.Delay != nil {
		delay = *cfg.Motion.Delay
	}
	if math.IsInf(duration, 0) || math.IsInf(delay, 0) {
		return nil, configError("motion", "motion values must be finite")
	}
	res.Policy = animation.PolicyFromSeconds(duration, repeat, reverse, delay)
	if err := res.Policy.Validate(); err != nil {
		return nil, configError("motion", "motion: %v", err)
	}

	if cfg.Track.Width != 0 {
		res.TrackWidth = cfg.Track.Width
	}
	if cfg.Track.Element != 0 {
		res.Track.ElementSize = cfg.Track.Element
	}
	if cfg.Track.Padding != nil {
		res.Track.EdgePadding = *cfg.Track.Padding
	}
	if res.TrackWidth < 0 || res.Track.ElementSize < 0 || res.Track.EdgePadding < 0 {
		return nil, configError("track", "track sizes must not be negative")
	}

	return res, nil
}

// FindConfig walks up from dir to find easelab.yaml.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found", FileName)
		}
		dir = parent
	}
}

// Marshal renders the resolved values back into easelab.yaml form.
func (r *Resolved) Marshal() ([]byte, error) {
	reverse := r.Policy.ReverseOnRepeat
	delay := r.Policy.RepeatDelay.Seconds()
	padding := r.Track.EdgePadding
	cfg := Config{
		Schema: r.Schema,
		Easing: r.Easing.ID,
		Curve: CurveConfig{
			Resolution: r.Resolution,
			Width:      r.Domain.Width,
			Height:     r.Domain.Height,
			Padding:    r.Domain.PaddingX,
			Stroke:     colorHex(r.Render.Stroke),
			Background: colorHex(r.Render.Background),
		},
		Motion: MotionConfig{
			Duration: r.Policy.Duration.Seconds(),
			Repeat:   Repeat{Count: r.Policy.Repeat, Set: true},
			Reverse:  &reverse,
			Delay:    &delay,
		},
		Track: TrackConfig{
			Width:   r.TrackWidth,
			Element: r.Track.ElementSize,
			Padding: &padding,
		},
	}
	return yaml.Marshal(&cfg)
}

func colorHex(c color.Color) string {
	if c == nil {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return curve.RGBA8(n.R, n.G, n.B, n.A).Hex()
}

func configError(field, format string, args ...any) *errors.EaseError {
	return errors.New("config."+field, errors.KindConfig, errors.ErrInvalidConfig, format, args...)
}
