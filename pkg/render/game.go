// Package render draws the flock with ebiten. It owns no simulation state:
// every frame it asks the world actor for one tick and draws the returned snapshot.
package render

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-flock-groups/pb"
	"github.com/lao-tseu-is-alive/go-flock-groups/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-groups/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-flock-groups/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
)

const askTimeout = time.Second

var (
	whiteImage      = ebiten.NewImage(3, 3)
	backgroundColor = color.RGBA{R: 211, G: 211, B: 211, A: 255}
	boidColor       = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	groupedColor    = color.RGBA{R: 30, G: 90, B: 200, A: 255}
	centerColor     = color.RGBA{R: 150, G: 50, B: 200, A: 200}
)

func init() {
	whiteImage.Fill(color.White)
}

type Game struct {
	ctx       context.Context
	System    actor.ActorSystem
	worldPID  *actor.PID
	lastState *pb.WorldSnapshot
	cfg       *simulation.Config

	// Canvas size reported by Layout, sent with every tick
	canvasW, canvasH int

	// UI Controls
	panel       *ui.Panel
	pauseButton *ui.Button
	showCenters bool
	highlight   bool
	paused      bool

	// Reused every frame
	vertices []ebiten.Vertex
	indices  []uint16

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// NewGame spawns the world actor in system and prepares the window contents.
func NewGame(ctx context.Context, cfg *simulation.Config, system actor.ActorSystem) (*Game, error) {
	worldPID, err := system.Spawn(ctx, "world", simulation.NewWorldActor(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	g := &Game{
		ctx:         ctx,
		System:      system,
		worldPID:    worldPID,
		lastState:   &pb.WorldSnapshot{}, // Avoid nil pointer
		cfg:         cfg,
		canvasW:     cfg.WindowWidth,
		canvasH:     cfg.WindowHeight,
		showCenters: cfg.ShowGroupCenters,
		highlight:   cfg.HighlightGrouped,
	}

	g.panel = ui.NewPanel(10, 10, 220, 200, "Flock")
	g.panel.AddSection("Display")
	g.panel.AddCheckbox("Show Group Centers", g.showCenters, func(v bool) { g.showCenters = v })
	g.panel.AddCheckbox("Highlight Grouped", g.highlight, func(v bool) { g.highlight = v })
	g.panel.AddSection("Simulation")
	g.pauseButton = g.panel.AddButton("Pause", g.togglePause)
	g.panel.AddButton("Respawn Flock", g.respawn)
	g.panel.EndSection()

	return g, nil
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	if g.cfg.ShowPanel {
		g.panel.Update()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.respawn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cfg.ShowPanel = !g.cfg.ShowPanel
	}

	// One synchronous simulation step; the reply is the post-tick state we draw.
	resp, err := actor.Ask(g.ctx, g.worldPID, &pb.Tick{
		CanvasWidth:  float64(g.canvasW),
		CanvasHeight: float64(g.canvasH),
	}, askTimeout)
	if err != nil {
		g.System.Logger().Errorf("tick failed, keeping last snapshot: %v", err)
		return nil
	}
	if snap, ok := resp.(*pb.WorldSnapshot); ok {
		g.lastState = snap
	}
	return nil
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		g.pauseButton.Label = "Resume"
	} else {
		g.pauseButton.Label = "Pause"
	}
	if err := actor.Tell(g.ctx, g.worldPID, &pb.SetPaused{Paused: g.paused}); err != nil {
		g.System.Logger().Errorf("failed to send pause: %v", err)
	}
}

func (g *Game) respawn() {
	if err := actor.Tell(g.ctx, g.worldPID, &pb.ResetFlock{}); err != nil {
		g.System.Logger().Errorf("failed to send respawn: %v", err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(backgroundColor)

	if g.showCenters {
		for _, grp := range g.lastState.GetGroups() {
			if grp.GetSize() < 2 {
				continue
			}
			c := grp.GetMeanPosition()
			vector.FillCircle(screen, float32(c.GetX()), float32(c.GetY()), 7.5, centerColor, true)
		}
	}

	g.drawBoids(screen)

	if g.cfg.ShowPanel {
		g.panel.Draw(screen)
	}
	g.drawStats(screen)
}

// drawBoids batches every boid into a single DrawTriangles call.
// Each boid is an isosceles triangle pointing "up", rotated by its heading.
func (g *Game) drawBoids(screen *ebiten.Image) {
	half := g.cfg.AgentSize / 2
	corners := [3]geometry.Vector2D{{X: 0, Y: -half}, {X: half, Y: half}, {X: -half, Y: half}}

	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
	for _, b := range g.lastState.GetBoids() {
		clr := boidColor
		if g.highlight && b.GetIsClose() {
			clr = groupedColor
		}
		r, gr, bl, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255

		pos := simulation.VectorFromProto(b.GetPosition())
		base := uint16(len(g.vertices))
		for _, corner := range corners {
			p := corner.Rotate(b.GetHeading()).Add(pos)
			g.vertices = append(g.vertices, ebiten.Vertex{
				DstX: float32(p.X), DstY: float32(p.Y),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: gr, ColorB: bl, ColorA: a,
			})
		}
		g.indices = append(g.indices, base, base+1, base+2)
	}
	if len(g.indices) == 0 {
		return
	}
	screen.DrawTriangles(g.vertices, g.indices, whiteImage, &ebiten.DrawTrianglesOptions{})
}

func (g *Game) drawStats(screen *ebiten.Image) {
	st := simulation.Stats(g.lastState)
	state := "running"
	if g.lastState.GetPaused() {
		state = "paused"
	}
	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nTick:    %d (%s)\nBoids:   %d\nGroups:  %d\nGrouped: %d\nLargest: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.lastState.GetTick(), state,
		st.Boids, st.Groups, st.Grouped, st.Largest,
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, g.canvasW-170, 10)
}

// Layout follows the window: the outside size is the canvas the flock wraps on.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.canvasW, g.canvasH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close stops the actor system, and with it the world.
func (g *Game) Close() error {
	return g.System.Stop(g.ctx)
}
