package flock

import "github.com/lao-tseu-is-alive/go-flock-groups/pkg/geometry"

// World owns the agent arena and its per-tick scratch.
// It is not safe for concurrent use: one owner calls Step, then reads the result.
type World struct {
	agents  []Agent
	params  Params
	scratch Scratch
	last    Grouping
	ticks   uint64
}

// NewWorld wraps an existing population. The slice is owned by the World afterwards.
func NewWorld(agents []Agent, p Params) *World {
	w := &World{agents: agents, params: p}
	w.last = FindGroups(w.agents, p.GroupRadius, &w.scratch)
	return w
}

// Step advances the flock by one tick on a canvas of the given bounds:
// group discovery, separation from each group seed, cohesion, alignment, then
// integration. All rules read positions from the start of the tick.
func (w *World) Step(b Bounds) Grouping {
	p := w.params
	grouping := FindGroups(w.agents, p.GroupRadius, &w.scratch)

	seedOf := make(map[int]Group, len(grouping.Groups))
	for _, grp := range grouping.Groups {
		seedOf[grp.Seed()] = grp
	}

	for i := range w.agents {
		a := &w.agents[i]
		if grp, ok := seedOf[i]; ok {
			for _, m := range grp.Members {
				Separation(a, w.agents[m].Pos, p)
			}
		}
		Cohesion(a, grouping.Aggregates, p)
		Alignment(a, grouping.Aggregates, p)
	}

	for i := range w.agents {
		Integrate(&w.agents[i], b, p)
	}

	w.last = grouping
	w.ticks++
	return grouping
}

// Respawn replaces the population and restarts the tick counter.
func (w *World) Respawn(agents []Agent) {
	w.agents = agents
	w.ticks = 0
	w.last = FindGroups(w.agents, w.params.GroupRadius, &w.scratch)
}

// Agents exposes the arena. Callers must not keep it across a Step.
func (w *World) Agents() []Agent { return w.agents }

// Params returns the constants the world was built with.
func (w *World) Params() Params { return w.params }

// Ticks is the number of completed steps.
func (w *World) Ticks() uint64 { return w.ticks }

// LastGrouping is the grouping computed by the most recent Step.
func (w *World) LastGrouping() Grouping { return w.last }

// View is what a renderer needs to draw one boid.
type View struct {
	Pos     geometry.Vector2D
	Vel     geometry.Vector2D
	Heading float64
	GroupID int
	IsClose bool
}

// Views returns one View per agent, in arena order. Group ids and close flags
// are those of the last grouping pass, computed before the last integration.
func (w *World) Views() []View {
	views := make([]View, len(w.agents))
	for i, a := range w.agents {
		views[i] = View{
			Pos:     a.Pos,
			Vel:     a.Vel,
			Heading: a.Vel.Heading(),
			GroupID: w.scratch.GroupID[i],
			IsClose: w.scratch.IsClose[i],
		}
	}
	return views
}
