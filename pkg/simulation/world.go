package simulation

import (
	"math/rand/v2"
	"time"

	"github.com/lao-tseu-is-alive/go-flock-groups/pb"
	"github.com/lao-tseu-is-alive/go-flock-groups/pkg/flock"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// WorldActor is the single owner of the flock. Its mailbox serialises every
// tick, reset and snapshot request, so the population is never mutated concurrently.
type WorldActor struct {
	cfg    *Config
	world  *flock.World
	bounds flock.Bounds
	paused bool
	seed   uint64
	// --- Benchmark Stats ---
	tickCount   int
	lastLogTime time.Time
}

var _ actor.Actor = (*WorldActor)(nil)

// NewWorldActor creates the world logic unit
func NewWorldActor(cfg *Config) *WorldActor {
	return &WorldActor{
		cfg: cfg,
		bounds: flock.Bounds{
			Width:  float64(cfg.WindowWidth),
			Height: float64(cfg.WindowHeight),
		},
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	w.spawnFlock(w.cfg.Seed)
	ctx.ActorSystem().Logger().Infof("World spawned %d boids (seed %d)", len(w.world.Agents()), w.seed)
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Info("World started, waiting for ticks...")

	// The Main Simulation Step (driven by the game loop through Ask)
	case *pb.Tick:
		w.bounds = flock.Bounds{Width: msg.GetCanvasWidth(), Height: msg.GetCanvasHeight()}
		if !w.paused {
			grouping := w.world.Step(w.bounds)
			w.tickCount++
			ctx.Logger().Debugf("tick %d: %d groups, %d aggregates", w.world.Ticks(), len(grouping.Groups), len(grouping.Aggregates))
		}
		snapshot := w.snapshot()
		w.logBenchmarks(ctx, snapshot)
		ctx.Response(snapshot)

	case *pb.GetSnapshot:
		ctx.Response(w.snapshot())

	case *pb.ResetFlock:
		w.spawnFlock(msg.GetSeed())
		ctx.Logger().Infof("Flock respawned: %d boids (seed %d)", len(w.world.Agents()), w.seed)

	case *pb.SetPaused:
		if w.paused != msg.GetPaused() {
			w.paused = msg.GetPaused()
			ctx.Logger().Infof("World paused=%v at tick %d", w.paused, w.world.Ticks())
		}

	default:
		ctx.Unhandled()
	}
}

// spawnFlock replaces the population. A zero seed is replaced by a time based one.
func (w *WorldActor) spawnFlock(seed uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	w.seed = seed
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))
	agents := flock.NewPopulation(rng, w.cfg.NumBoids, w.cfg.SpawnArea())
	if w.world == nil {
		w.world = flock.NewWorld(agents, w.cfg.FlockParams())
		return
	}
	w.world.Respawn(agents)
}

func (w *WorldActor) snapshot() *pb.WorldSnapshot {
	return BuildSnapshot(w.world, w.bounds, w.paused)
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext, snapshot *pb.WorldSnapshot) {
	if time.Since(w.lastLogTime) >= time.Second {
		st := Stats(snapshot)
		ctx.Logger().Infof("📊 TICK RATE: %d/sec | Boids: %d | Groups: %d | Grouped: %d | Largest: %d",
			w.tickCount, st.Boids, st.Groups, st.Grouped, st.Largest)
		w.tickCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is shutdown...")
	return nil
}
