package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-flock-groups/pb"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/proto"
)

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.NumBoids = 20
	cfg.Seed = 42
	cfg.WindowWidth = 800
	cfg.WindowHeight = 600
	return cfg
}

// startWorld runs a WorldActor in a fresh actor system stopped at test cleanup.
func startWorld(t *testing.T, cfg *Config) (context.Context, *actor.PID) {
	t.Helper()
	ctx := context.Background()
	system, err := actor.NewActorSystem("FlockTest", actor.WithLogger(golog.DiscardLogger))
	if err != nil {
		t.Fatalf("NewActorSystem: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() { _ = system.Stop(ctx) })

	pid, err := system.Spawn(ctx, "world", NewWorldActor(cfg))
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	return ctx, pid
}

func ask(t *testing.T, ctx context.Context, pid *actor.PID, msg proto.Message) *pb.WorldSnapshot {
	t.Helper()
	resp, err := actor.Ask(ctx, pid, msg, time.Second)
	if err != nil {
		t.Fatalf("Ask(%T): %v", msg, err)
	}
	snap, ok := resp.(*pb.WorldSnapshot)
	if !ok {
		t.Fatalf("Ask(%T) answered %T, want *pb.WorldSnapshot", msg, resp)
	}
	return snap
}

func TestWorldActor_TickAdvancesAndAnswers(t *testing.T) {
	ctx, pid := startWorld(t, testConfig())

	snap := ask(t, ctx, pid, &pb.GetSnapshot{})
	if snap.GetTick() != 0 {
		t.Fatalf("initial tick = %d, want 0", snap.GetTick())
	}
	if len(snap.GetBoids()) != 20 {
		t.Fatalf("boids = %d, want 20", len(snap.GetBoids()))
	}

	for i := 1; i <= 3; i++ {
		snap = ask(t, ctx, pid, &pb.Tick{CanvasWidth: 1024, CanvasHeight: 768})
		if snap.GetTick() != uint64(i) {
			t.Errorf("after tick %d snapshot tick = %d", i, snap.GetTick())
		}
	}
	if snap.GetCanvasWidth() != 1024 || snap.GetCanvasHeight() != 768 {
		t.Errorf("canvas = %vx%v, want 1024x768", snap.GetCanvasWidth(), snap.GetCanvasHeight())
	}

	// Every boid belongs to exactly one group
	total := 0
	for _, g := range snap.GetGroups() {
		total += int(g.GetSize())
	}
	if total != 20 {
		t.Errorf("group sizes sum to %d, want 20", total)
	}
}

func TestWorldActor_PausedTickKeepsState(t *testing.T) {
	ctx, pid := startWorld(t, testConfig())

	before := ask(t, ctx, pid, &pb.Tick{CanvasWidth: 800, CanvasHeight: 600})
	if err := actor.Tell(ctx, pid, &pb.SetPaused{Paused: true}); err != nil {
		t.Fatalf("Tell: %v", err)
	}
	after := ask(t, ctx, pid, &pb.Tick{CanvasWidth: 800, CanvasHeight: 600})

	if !after.GetPaused() {
		t.Error("snapshot should report paused")
	}
	if after.GetTick() != before.GetTick() {
		t.Errorf("paused tick moved from %d to %d", before.GetTick(), after.GetTick())
	}
	for i, b := range after.GetBoids() {
		p0, p1 := before.GetBoids()[i].GetPosition(), b.GetPosition()
		if p0.GetX() != p1.GetX() || p0.GetY() != p1.GetY() {
			t.Errorf("boid %d moved while paused", i)
		}
	}

	if err := actor.Tell(ctx, pid, &pb.SetPaused{Paused: false}); err != nil {
		t.Fatalf("Tell: %v", err)
	}
	resumed := ask(t, ctx, pid, &pb.Tick{CanvasWidth: 800, CanvasHeight: 600})
	if resumed.GetTick() != before.GetTick()+1 {
		t.Errorf("resumed tick = %d, want %d", resumed.GetTick(), before.GetTick()+1)
	}
}

func TestWorldActor_ResetFlockIsDeterministic(t *testing.T) {
	ctx, pid := startWorld(t, testConfig())

	ask(t, ctx, pid, &pb.Tick{CanvasWidth: 800, CanvasHeight: 600})
	if err := actor.Tell(ctx, pid, &pb.ResetFlock{Seed: 7}); err != nil {
		t.Fatalf("Tell: %v", err)
	}
	first := ask(t, ctx, pid, &pb.GetSnapshot{})
	if first.GetTick() != 0 {
		t.Errorf("tick after reset = %d, want 0", first.GetTick())
	}

	if err := actor.Tell(ctx, pid, &pb.ResetFlock{Seed: 7}); err != nil {
		t.Fatalf("Tell: %v", err)
	}
	second := ask(t, ctx, pid, &pb.GetSnapshot{})
	for i := range first.GetBoids() {
		a, b := first.GetBoids()[i], second.GetBoids()[i]
		if a.GetPosition().GetX() != b.GetPosition().GetX() || a.GetVelocity().GetY() != b.GetVelocity().GetY() {
			t.Fatalf("boid %d differs between two resets with the same seed", i)
		}
	}
}

func BenchmarkWorldActor_Tick(b *testing.B) {
	cfg := DefaultConfig()
	cfg.Seed = 1
	ctx := context.Background()
	system, err := actor.NewActorSystem("FlockBench", actor.WithLogger(golog.DiscardLogger))
	if err != nil {
		b.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		b.Fatal(err)
	}
	defer func() { _ = system.Stop(ctx) }()
	pid, err := system.Spawn(ctx, "world", NewWorldActor(cfg))
	if err != nil {
		b.Fatal(err)
	}
	tick := &pb.Tick{CanvasWidth: 2500, CanvasHeight: 1500}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := actor.Ask(ctx, pid, tick, time.Second); err != nil {
			b.Fatal(err)
		}
	}
}
