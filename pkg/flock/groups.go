package flock

import "github.com/lao-tseu-is-alive/go-flock-groups/pkg/geometry"

// Unassigned marks an agent that no group has claimed yet in the current tick.
const Unassigned = -1

// Scratch is the tick-local metadata of the agent arena, indexed like the agents slice.
// It is rebuilt from scratch by every FindGroups call.
type Scratch struct {
	GroupID []int
	IsClose []bool

	stack []frame
	order []int
}

// frame is one level of the depth-first walk: the agent being expanded and
// the next arena index to test against it.
type frame struct {
	agent int
	next  int
}

func (s *Scratch) reset(n int) {
	if cap(s.GroupID) < n {
		s.GroupID = make([]int, n)
		s.IsClose = make([]bool, n)
	}
	s.GroupID = s.GroupID[:n]
	s.IsClose = s.IsClose[:n]
	for i := range s.GroupID {
		s.GroupID[i] = Unassigned
		s.IsClose[i] = false
	}
	s.stack = s.stack[:0]
	s.order = make([]int, 0, n)
}

// Group is a connected component of agents for one tick.
type Group struct {
	ID      int
	Members []int // arena indices in discovery order, Members[0] is the seed
	MeanPos geometry.Vector2D
	MeanVel geometry.Vector2D
}

// Seed is the agent whose scan opened the group.
func (g Group) Seed() int { return g.Members[0] }

// Size is the number of members.
func (g Group) Size() int { return len(g.Members) }

// Aggregate is the (mean position, mean velocity) entry of a group with more than one member.
type Aggregate struct {
	GroupID int
	MeanPos geometry.Vector2D
	MeanVel geometry.Vector2D
}

// Grouping is the output of FindGroups.
type Grouping struct {
	Groups     []Group     // every group, singletons included, in discovery order
	Aggregates []Aggregate // groups of size > 1 only, in discovery order
}

// Largest returns the size of the biggest group, 0 for an empty population.
func (g Grouping) Largest() int {
	largest := 0
	for _, grp := range g.Groups {
		if grp.Size() > largest {
			largest = grp.Size()
		}
	}
	return largest
}

// FindGroups partitions agents into groups of agents chained together by
// distances below radius, and fills scratch with each agent's group id and
// close flag. Agents are scanned in slice order; every unassigned agent seeds
// a new group which is grown depth first, visiting candidates in slice order.
func FindGroups(agents []Agent, radius float64, scratch *Scratch) Grouping {
	scratch.reset(len(agents))

	var out Grouping
	nextID := 0
	for seed := range agents {
		if scratch.GroupID[seed] != Unassigned {
			continue
		}
		start := len(scratch.order)
		scratch.floodFill(agents, seed, nextID, radius)
		members := scratch.order[start:len(scratch.order):len(scratch.order)]

		grp := Group{ID: nextID, Members: members}
		var sumPos, sumVel geometry.Vector2D
		for _, m := range members {
			sumPos = sumPos.Add(agents[m].Pos)
			sumVel = sumVel.Add(agents[m].Vel)
		}
		n := float64(len(members))
		grp.MeanPos = geometry.Vector2D{X: sumPos.X / n, Y: sumPos.Y / n}
		grp.MeanVel = geometry.Vector2D{X: sumVel.X / n, Y: sumVel.Y / n}

		if len(members) > 1 {
			for _, m := range members {
				scratch.IsClose[m] = true
			}
			out.Aggregates = append(out.Aggregates, Aggregate{
				GroupID: grp.ID,
				MeanPos: grp.MeanPos,
				MeanVel: grp.MeanVel,
			})
		}
		out.Groups = append(out.Groups, grp)
		nextID++
	}
	return out
}

// floodFill assigns id to seed and to every unassigned agent reachable from it,
// appending them to s.order in the preorder a recursive walk would produce.
func (s *Scratch) floodFill(agents []Agent, seed, id int, radius float64) {
	s.GroupID[seed] = id
	s.order = append(s.order, seed)
	s.stack = append(s.stack[:0], frame{agent: seed})

	for len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]
		found := Unassigned
		for top.next < len(agents) {
			j := top.next
			top.next++
			if s.GroupID[j] == Unassigned && agents[top.agent].Pos.DistanceTo(agents[j].Pos) < radius {
				found = j
				break
			}
		}
		if found == Unassigned {
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}
		s.GroupID[found] = id
		s.order = append(s.order, found)
		s.stack = append(s.stack, frame{agent: found})
	}
}
