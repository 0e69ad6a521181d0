package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tochemey/goakt/v3/log"
	"golang.org/x/image/colornames"
)

//go:embed config.schema.json
var configSchema string

type Config struct {
	// World Dimensions, also the initial window size
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	Population int `json:"population"`

	// Physics, see flock.Params
	TerminalVelocity float64 `json:"terminalVelocity"`
	SightRadius      float64 `json:"sightRadius"`
	ComfortDistance  float64 `json:"comfortDistance"`
	SeparationGain   float64 `json:"separationGain"`
	AlignmentGain    float64 `json:"alignmentGain"`
	CohesionGain     float64 `json:"cohesionGain"`
	BorderMargin     float64 `json:"borderMargin"`
	BorderPush       float64 `json:"borderPush"`
	Dt               float64 `json:"dt"`
	MaxSpeed         float64 `json:"maxSpeed"` // 0 = unclamped

	// Seed makes runs reproducible. 0 seeds from the wall clock.
	Seed uint64 `json:"seed"`

	// Shell behaviour
	AutoRun    bool   `json:"autoRun"`
	BirdColor  string `json:"birdColor"`  // an SVG color name
	Background string `json:"background"` // an SVG color name
	LogLevel   string `json:"logLevel"`
	RecordPath string `json:"recordPath"`
}

func DefaultConfig() *Config {
	p := flock.DefaultParams()
	return &Config{
		WorldWidth:       1024,
		WorldHeight:      768,
		Population:       10,
		TerminalVelocity: p.TerminalVelocity,
		SightRadius:      p.SightRadius,
		ComfortDistance:  p.ComfortDistance,
		SeparationGain:   p.SeparationGain,
		AlignmentGain:    p.AlignmentGain,
		CohesionGain:     p.CohesionGain,
		BorderMargin:     p.BorderMargin,
		BorderPush:       p.BorderPush,
		Dt:               p.Dt,
		MaxSpeed:         p.MaxSpeed,
		BirdColor:        "white",
		Background:       "black",
		LogLevel:         "info",
	}
}

// LoadConfig loads configuration from a JSON or TOML file (by extension)
// and validates it against the embedded schema. Keys missing from the
// file keep their DefaultConfig value.
func LoadConfig(configFile string) (*Config, error) {
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(configFile)) {
	case ".toml":
		var m map[string]interface{}
		if _, err := toml.Decode(string(b), &m); err != nil {
			return nil, fmt.Errorf("failed to decode config toml: %w", err)
		}
		// from here on TOML and JSON files take the same path
		if b, err = json.Marshal(m); err != nil {
			return nil, fmt.Errorf("failed to convert config toml: %w", err)
		}
	case ".json", "":
	default:
		return nil, fmt.Errorf("unsupported config file type %q", filepath.Ext(configFile))
	}
	return ParseConfig(b)
}

// ParseConfig validates a JSON document against the schema and decodes it
// over DefaultConfig.
func ParseConfig(b []byte) (*Config, error) {
	sch, err := jsonschema.CompileString("config.schema.json", configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if _, err := cfg.Colors(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// FlockParams extracts the physics constants.
func (c *Config) FlockParams() flock.Params {
	return flock.Params{
		TerminalVelocity: c.TerminalVelocity,
		SightRadius:      c.SightRadius,
		ComfortDistance:  c.ComfortDistance,
		SeparationGain:   c.SeparationGain,
		AlignmentGain:    c.AlignmentGain,
		CohesionGain:     c.CohesionGain,
		BorderMargin:     c.BorderMargin,
		BorderPush:       c.BorderPush,
		Dt:               c.Dt,
		MaxSpeed:         c.MaxSpeed,
	}
}

// Display returns the initial display rectangle.
func (c *Config) Display() geometry.Rect {
	return geometry.NewRect(0, 0, c.WorldWidth, c.WorldHeight)
}

// Palette is the pair of colors the shells draw with.
type Palette struct {
	Bird       color.RGBA
	Background color.RGBA
}

// Colors resolves BirdColor and Background by name.
func (c *Config) Colors() (Palette, error) {
	bird, ok := colornames.Map[strings.ToLower(c.BirdColor)]
	if !ok {
		return Palette{}, fmt.Errorf("unknown bird color %q", c.BirdColor)
	}
	bg, ok := colornames.Map[strings.ToLower(c.Background)]
	if !ok {
		return Palette{}, fmt.Errorf("unknown background color %q", c.Background)
	}
	return Palette{Bird: bird, Background: bg}, nil
}

// NewLogger builds the logger shared by the actor system and the shells.
func (c *Config) NewLogger(w io.Writer) log.Logger {
	level := log.InfoLevel
	switch c.LogLevel {
	case "debug":
		level = log.DebugLevel
	case "warn":
		level = log.WarningLevel
	case "error":
		level = log.ErrorLevel
	}
	return log.New(level, w)
}
