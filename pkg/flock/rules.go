package flock

import "github.com/lao-tseu-is-alive/go-flock-groups/pkg/geometry"

// Cohesion steers a toward the nearest group centre in aggs.
// On equal distances the earliest aggregate wins. No-op when aggs is empty.
func Cohesion(a *Agent, aggs []Aggregate, p Params) {
	if len(aggs) == 0 {
		return
	}
	closest := aggs[0].MeanPos
	minDist := a.Pos.DistanceTo(closest)
	for _, agg := range aggs[1:] {
		if d := a.Pos.DistanceTo(agg.MeanPos); d < minDist {
			minDist = d
			closest = agg.MeanPos
		}
	}
	a.Vel = a.Vel.Add(closest.Sub(a.Pos).Mul(p.CohesionFactor)).ClampLen(p.MaxSpeed)
}

// Alignment adds the mean velocity of the first discovered group, scaled down
// by AlignmentDivisor. The agent's own group plays no part. No-op when aggs is empty.
func Alignment(a *Agent, aggs []Aggregate, p Params) {
	if len(aggs) == 0 {
		return
	}
	a.Vel = a.Vel.Add(aggs[0].MeanVel.Mul(1 / p.AlignmentDivisor)).ClampLen(p.MaxSpeed)
}

// Separation pushes a away from the point other when their distance is in (0, SeparationRadius).
// The push is SeparationStrength / distance along the unit vector from other to a.
func Separation(a *Agent, other geometry.Vector2D, p Params) {
	delta := a.Pos.Sub(other)
	dist := delta.Len()
	if dist <= 0 || dist >= p.SeparationRadius {
		return
	}
	push := delta.Mul(1 / dist).Mul(p.SeparationStrength / dist)
	a.Vel = a.Vel.Add(push).ClampLen(p.MaxSpeed)
}

// Integrate moves a by its velocity and applies the edge teleport:
// crossing the far edge (x+size >= width) snaps x to 0, dropping past the
// near edge (x+size <= 0) snaps x to width, likewise for y.
func Integrate(a *Agent, b Bounds, p Params) {
	step := a.Vel
	if !p.SubPixel {
		step = step.Trunc()
	}
	a.Pos = a.Pos.Add(step)

	if a.Pos.X+p.AgentSize >= b.Width {
		a.Pos.X = 0
	}
	if a.Pos.X+p.AgentSize <= 0 {
		a.Pos.X = b.Width
	}
	if a.Pos.Y+p.AgentSize >= b.Height {
		a.Pos.Y = 0
	}
	if a.Pos.Y+p.AgentSize <= 0 {
		a.Pos.Y = b.Height
	}
}
