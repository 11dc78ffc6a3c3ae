// Package flock holds the simulation core: proximity grouping of boids and
// the cohesion, alignment and separation rules applied once per tick.
// It has no rendering or actor dependencies, tests drive World.Step directly.
package flock

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flock-groups/pkg/geometry"
)

// Agent is the persistent kinematic state of a boid.
// Per-tick data (group id, close flag) lives in Scratch, not here.
type Agent struct {
	Pos geometry.Vector2D
	Vel geometry.Vector2D
}

// Params are the flocking constants.
type Params struct {
	GroupRadius        float64 // agents closer than this are linked into one group
	SeparationRadius   float64 // seed repels members closer than this
	SeparationStrength float64 // repulsion is SeparationStrength / distance
	CohesionFactor     float64 // fraction of the offset to the nearest group centre added per tick
	AlignmentDivisor   float64 // first group's mean velocity is divided by this
	MaxSpeed           float64
	AgentSize          float64 // visual size, shifts the boundary test
	SubPixel           bool    // integrate the real velocity instead of its truncation
}

// DefaultParams returns the constants of the reference flock.
func DefaultParams() Params {
	return Params{
		GroupRadius:        125,
		SeparationRadius:   150,
		SeparationStrength: 130,
		CohesionFactor:     0.0027,
		AlignmentDivisor:   3,
		MaxSpeed:           5,
		AgentSize:          20,
	}
}

// Bounds is the canvas the flock lives on. It may change between ticks.
type Bounds struct {
	Width  float64
	Height float64
}

// SpawnArea describes where and how fast a new population starts.
type SpawnArea struct {
	Width, Height int // positions are uniform integers in [0, Width) x [0, Height)
	MinVelocity   int // per-axis velocity is a uniform integer in [MinVelocity, MaxVelocity]
	MaxVelocity   int
}

// DefaultSpawnArea matches the 2500x1400 field with velocities 2..6 per axis.
func DefaultSpawnArea() SpawnArea {
	return SpawnArea{Width: 2500, Height: 1400, MinVelocity: 2, MaxVelocity: 6}
}

// NewPopulation creates n agents with random integer positions and velocities.
func NewPopulation(rng *rand.Rand, n int, area SpawnArea) []Agent {
	agents := make([]Agent, n)
	span := area.MaxVelocity - area.MinVelocity + 1
	if span < 1 {
		span = 1
	}
	for i := range agents {
		agents[i] = Agent{
			Pos: geometry.Vector2D{
				X: float64(intN(rng, area.Width)),
				Y: float64(intN(rng, area.Height)),
			},
			Vel: geometry.Vector2D{
				X: float64(rng.IntN(span) + area.MinVelocity),
				Y: float64(rng.IntN(span) + area.MinVelocity),
			},
		}
	}
	return agents
}

// intN is rng.IntN that tolerates an empty range.
func intN(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.IntN(n)
}
