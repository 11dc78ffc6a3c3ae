package flock

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-flock-groups/pkg/geometry"
)

func vec(x, y float64) geometry.Vector2D { return geometry.Vector2D{X: x, Y: y} }

func TestCohesion(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name string
		a    Agent
		aggs []Aggregate
		want geometry.Vector2D
	}{
		{
			name: "Empty list is a no-op",
			a:    Agent{Pos: vec(0, 0), Vel: vec(9, 0)},
			aggs: nil,
			want: vec(9, 0),
		},
		{
			name: "Steers toward nearest centre",
			a:    Agent{Pos: vec(0, 0)},
			aggs: []Aggregate{{MeanPos: vec(500, 0)}, {MeanPos: vec(0, 100)}},
			want: vec(0, 100*0.0027),
		},
		{
			name: "First centre wins a tie",
			a:    Agent{Pos: vec(0, 0)},
			aggs: []Aggregate{{MeanPos: vec(10, 0)}, {MeanPos: vec(-10, 0)}},
			want: vec(10*0.0027, 0),
		},
		{
			name: "Result is clamped to max speed",
			a:    Agent{Pos: vec(0, 0), Vel: vec(5, 0)},
			aggs: []Aggregate{{MeanPos: vec(1000, 0)}},
			want: vec(5, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.a
			Cohesion(&a, tt.aggs, p)
			if !a.Vel.Eq(tt.want) {
				t.Errorf("Vel = %v; want %v", a.Vel, tt.want)
			}
		})
	}
}

func TestAlignment(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name string
		vel  geometry.Vector2D
		aggs []Aggregate
		want geometry.Vector2D
	}{
		{"Empty list is a no-op", vec(7, 7), nil, vec(7, 7)},
		{"Only the first group counts", vec(0, 0), []Aggregate{{MeanVel: vec(3, 0)}, {MeanVel: vec(-9, 0)}}, vec(1, 0)},
		{"Result is clamped to max speed", vec(4.5, 0), []Aggregate{{MeanVel: vec(6, 0)}}, vec(5, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Agent{Vel: tt.vel}
			Alignment(&a, tt.aggs, p)
			if !a.Vel.Eq(tt.want) {
				t.Errorf("Vel = %v; want %v", a.Vel, tt.want)
			}
		})
	}
}

func TestSeparation(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name  string
		other geometry.Vector2D
		want  geometry.Vector2D
	}{
		{"Same position is skipped", vec(0, 0), vec(0, 0)},
		{"At separation radius is skipped", vec(150, 0), vec(0, 0)},
		{"Beyond separation radius is skipped", vec(0, 400), vec(0, 0)},
		{"Pushed away, weaker when far", vec(0, 100), vec(0, -1.3)},
		{"Pushed away, clamped when near", vec(10, 0), vec(-5, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Agent{Pos: vec(0, 0)}
			Separation(&a, tt.other, p)
			if !a.Vel.Eq(tt.want) {
				t.Errorf("Vel = %v; want %v", a.Vel, tt.want)
			}
		})
	}
}

func TestIntegrate(t *testing.T) {
	bounds := Bounds{Width: 1000, Height: 800}

	tests := []struct {
		name     string
		subPixel bool
		a        Agent
		want     geometry.Vector2D
	}{
		{"Velocity truncated toward zero", false, Agent{Pos: vec(100, 100), Vel: vec(2.9, -1.7)}, vec(102, 99)},
		{"Sub-pixel keeps fractions", true, Agent{Pos: vec(100, 100), Vel: vec(2.9, -1.7)}, vec(102.9, 98.3)},
		{"Far x edge teleports to 0", false, Agent{Pos: vec(975, 400), Vel: vec(5, 0)}, vec(0, 400)},
		{"Teleport is not a modulo wrap", false, Agent{Pos: vec(990, 400), Vel: vec(4, 0)}, vec(0, 400)},
		{"Near x edge teleports to width", false, Agent{Pos: vec(-15, 400), Vel: vec(-5, 0)}, vec(1000, 400)},
		{"Far y edge teleports to 0", false, Agent{Pos: vec(500, 778), Vel: vec(0, 2)}, vec(500, 0)},
		{"Near y edge teleports to height", false, Agent{Pos: vec(500, -19), Vel: vec(0, -1)}, vec(500, 800)},
		{"Inside stays put", false, Agent{Pos: vec(500, 400), Vel: vec(0, 0)}, vec(500, 400)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			p.SubPixel = tt.subPixel
			a := tt.a
			Integrate(&a, bounds, p)
			if !a.Pos.Eq(tt.want) {
				t.Errorf("Pos = %v; want %v", a.Pos, tt.want)
			}
		})
	}
}
