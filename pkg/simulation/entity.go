package simulation

import (
	"github.com/lao-tseu-is-alive/go-flock-groups/pb"
	"github.com/lao-tseu-is-alive/go-flock-groups/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-groups/pkg/geometry"
)

// VectorToProto converts a geometry vector into its wire form.
func VectorToProto(v geometry.Vector2D) *pb.Vector {
	return &pb.Vector{X: v.X, Y: v.Y}
}

// VectorFromProto is the inverse of VectorToProto. A nil message is the zero vector.
func VectorFromProto(v *pb.Vector) geometry.Vector2D {
	return geometry.Vector2D{X: v.GetX(), Y: v.GetY()}
}

// ViewToProto converts the render view of boid id into its wire form.
func ViewToProto(id int, v flock.View) *pb.BoidState {
	return &pb.BoidState{
		Id:       int32(id),
		Position: VectorToProto(v.Pos),
		Velocity: VectorToProto(v.Vel),
		Heading:  v.Heading,
		GroupId:  int32(v.GroupID),
		IsClose:  v.IsClose,
	}
}

// GroupToProto summarises a group for overlays and statistics.
func GroupToProto(g flock.Group) *pb.GroupSummary {
	return &pb.GroupSummary{
		Id:           int32(g.ID),
		Size:         int32(g.Size()),
		MeanPosition: VectorToProto(g.MeanPos),
		MeanVelocity: VectorToProto(g.MeanVel),
	}
}

// BuildSnapshot copies the world's state into a message the renderer can keep
// while the world moves on.
func BuildSnapshot(w *flock.World, bounds flock.Bounds, paused bool) *pb.WorldSnapshot {
	views := w.Views()
	grouping := w.LastGrouping()

	snapshot := &pb.WorldSnapshot{
		Tick:           w.Ticks(),
		Boids:          make([]*pb.BoidState, 0, len(views)),
		Groups:         make([]*pb.GroupSummary, 0, len(grouping.Groups)),
		AggregateCount: int32(len(grouping.Aggregates)),
		CanvasWidth:    bounds.Width,
		CanvasHeight:   bounds.Height,
		Paused:         paused,
	}
	for i, v := range views {
		snapshot.Boids = append(snapshot.Boids, ViewToProto(i, v))
	}
	for _, g := range grouping.Groups {
		snapshot.Groups = append(snapshot.Groups, GroupToProto(g))
	}
	return snapshot
}

// SnapshotStats are the numbers shown in the HUD and logged once per second.
type SnapshotStats struct {
	Boids   int
	Groups  int
	Grouped int // boids in a group of more than one
	Largest int
}

// Stats summarises a snapshot.
func Stats(s *pb.WorldSnapshot) SnapshotStats {
	st := SnapshotStats{Boids: len(s.GetBoids()), Groups: len(s.GetGroups())}
	for _, g := range s.GetGroups() {
		size := int(g.GetSize())
		if size > 1 {
			st.Grouped += size
		}
		if size > st.Largest {
			st.Largest = size
		}
	}
	return st
}
