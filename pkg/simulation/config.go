package simulation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lao-tseu-is-alive/go-flock-groups/pkg/flock"
	"github.com/santhosh-tekuri/jsonschema/v5"
	golog "github.com/tochemey/goakt/v3/log"
)

//go:embed flock.schema.json
var embeddedSchema string

// ErrInvalidConfig is returned (wrapped) for every configuration that cannot run.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// Population
	NumBoids int    `json:"numBoids"`
	Seed     uint64 `json:"seed"` // 0 picks a time based seed

	// Spawn area and initial per-axis velocity range (integers, inclusive)
	SpawnWidth         int `json:"spawnWidth"`
	SpawnHeight        int `json:"spawnHeight"`
	MinInitialVelocity int `json:"minInitialVelocity"`
	MaxInitialVelocity int `json:"maxInitialVelocity"`

	// Flocking rules
	GroupRadius        float64 `json:"groupRadius"`
	SeparationRadius   float64 `json:"separationRadius"`
	SeparationStrength float64 `json:"separationStrength"`
	CohesionFactor     float64 `json:"cohesionFactor"`
	AlignmentDivisor   float64 `json:"alignmentDivisor"`
	MaxSpeed           float64 `json:"maxSpeed"`
	AgentSize          float64 `json:"agentSize"`
	SubPixel           bool    `json:"subPixel"` // keep fractional positions instead of integer steps

	// Presentation
	TickRate         int    `json:"tickRate"`
	WindowWidth      int    `json:"windowWidth"`
	WindowHeight     int    `json:"windowHeight"`
	ShowGroupCenters bool   `json:"showGroupCenters"`
	HighlightGrouped bool   `json:"highlightGrouped"`
	ShowPanel        bool   `json:"showPanel"`
	LogLevel         string `json:"logLevel"`
}

func DefaultConfig() *Config {
	p := flock.DefaultParams()
	area := flock.DefaultSpawnArea()
	return &Config{
		NumBoids:           125,
		SpawnWidth:         area.Width,
		SpawnHeight:        area.Height,
		MinInitialVelocity: area.MinVelocity,
		MaxInitialVelocity: area.MaxVelocity,
		GroupRadius:        p.GroupRadius,
		SeparationRadius:   p.SeparationRadius,
		SeparationStrength: p.SeparationStrength,
		CohesionFactor:     p.CohesionFactor,
		AlignmentDivisor:   p.AlignmentDivisor,
		MaxSpeed:           p.MaxSpeed,
		AgentSize:          p.AgentSize,
		TickRate:           60,
		WindowWidth:        2500,
		WindowHeight:       1500,
		HighlightGrouped:   true,
		ShowPanel:          true,
		LogLevel:           "info",
	}
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
// An empty schemaFile uses the schema compiled into the binary.
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	var (
		sch *jsonschema.Schema
		err error
	)
	if schemaFile == "" {
		sch, err = jsonschema.CompileString("flock.schema.json", embeddedSchema)
	} else {
		sch, err = jsonschema.Compile(schemaFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: schema validation failed: %w", ErrInvalidConfig, err)
	}

	// 4. Unmarshal over the defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the constraints a JSON schema cannot express on its own.
func (c *Config) Validate() error {
	switch {
	case c.NumBoids < 0:
		return fmt.Errorf("%w: numBoids must not be negative, got %d", ErrInvalidConfig, c.NumBoids)
	case c.SpawnWidth <= 0 || c.SpawnHeight <= 0:
		return fmt.Errorf("%w: spawn area must be positive, got %dx%d", ErrInvalidConfig, c.SpawnWidth, c.SpawnHeight)
	case c.MinInitialVelocity > c.MaxInitialVelocity:
		return fmt.Errorf("%w: minInitialVelocity %d exceeds maxInitialVelocity %d",
			ErrInvalidConfig, c.MinInitialVelocity, c.MaxInitialVelocity)
	case c.GroupRadius <= 0:
		return fmt.Errorf("%w: groupRadius must be positive, got %v", ErrInvalidConfig, c.GroupRadius)
	case c.AlignmentDivisor == 0:
		return fmt.Errorf("%w: alignmentDivisor must not be zero", ErrInvalidConfig)
	case c.MaxSpeed <= 0:
		return fmt.Errorf("%w: maxSpeed must be positive, got %v", ErrInvalidConfig, c.MaxSpeed)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tickRate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// FlockParams maps the rule constants to the simulation core.
func (c *Config) FlockParams() flock.Params {
	return flock.Params{
		GroupRadius:        c.GroupRadius,
		SeparationRadius:   c.SeparationRadius,
		SeparationStrength: c.SeparationStrength,
		CohesionFactor:     c.CohesionFactor,
		AlignmentDivisor:   c.AlignmentDivisor,
		MaxSpeed:           c.MaxSpeed,
		AgentSize:          c.AgentSize,
		SubPixel:           c.SubPixel,
	}
}

// SpawnArea maps the spawn settings to the simulation core.
func (c *Config) SpawnArea() flock.SpawnArea {
	return flock.SpawnArea{
		Width:       c.SpawnWidth,
		Height:      c.SpawnHeight,
		MinVelocity: c.MinInitialVelocity,
		MaxVelocity: c.MaxInitialVelocity,
	}
}

// Level translates LogLevel for the actor system logger.
func (c *Config) Level() (golog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return golog.DebugLevel, nil
	case "", "info":
		return golog.InfoLevel, nil
	case "warn", "warning":
		return golog.WarningLevel, nil
	case "error":
		return golog.ErrorLevel, nil
	}
	return golog.InfoLevel, fmt.Errorf("%w: unknown logLevel %q", ErrInvalidConfig, c.LogLevel)
}
