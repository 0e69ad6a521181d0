package flock

import (
	"testing"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

func TestSeparation_TwoCloseBirds(t *testing.T) {
	// (10,10) and (12,10) are 2 apart, under the comfort distance of 8
	birds := []Bird{bird(10, 10, 0, 0), bird(12, 10, 0, 0)}
	p := DefaultParams()
	sep := Separation{ComfortDistance: p.ComfortDistance, Gain: p.SeparationGain}

	want := 0.05 * 2
	if d := sep.Delta(0, birds); d.X != -want || d.Y != 0 {
		t.Errorf("bird 0 delta = %v; want (%v, 0)", d, -want)
	}
	if d := sep.Delta(1, birds); d.X != want || d.Y != 0 {
		t.Errorf("bird 1 delta = %v; want (%v, 0)", d, want)
	}
}

func TestSeparation_InFlock(t *testing.T) {
	// same scenario through Step, with only the separation phase enabled
	p := DefaultParams()
	f := mustFromBirds(t, []Bird{bird(10, 10, 0, 0), bird(12, 10, 0, 0)},
		geometry.NewRect(0, 0, 200, 200),
		WithRules(Separation{ComfortDistance: p.ComfortDistance, Gain: p.SeparationGain}))

	f.apply(f.rules[0])
	if v := f.Bird(0).Velocity; v.X != -0.05*2 || v.Y != 0 {
		t.Errorf("bird 0 velocity = %v; want (-0.1, 0)", v)
	}
	if v := f.Bird(1).Velocity; v.X != 0.05*2 || v.Y != 0 {
		t.Errorf("bird 1 velocity = %v; want (0.1, 0)", v)
	}
}

func TestRules_NoNeighbours(t *testing.T) {
	// two birds far apart: every rule must leave velocities alone
	birds := []Bird{bird(100, 100, 3, -1), bird(800, 800, -2, 5)}
	for _, r := range DefaultRules(DefaultParams()) {
		t.Run(r.Name(), func(t *testing.T) {
			for i := range birds {
				if d := r.Delta(i, birds); d != geometry.Zero {
					t.Errorf("bird %d delta = %v; want zero", i, d)
				}
			}
		})
	}
}

func TestSeparation_ExcludesSelfAndFarBirds(t *testing.T) {
	sep := Separation{ComfortDistance: 8, Gain: 1}
	birds := []Bird{
		bird(0, 0, 0, 0),
		bird(8, 0, 0, 0),  // exactly at the comfort distance: not close
		bird(0, -3, 0, 0), // close
	}
	if d := sep.Delta(0, birds); !d.Eq(geometry.Vector2D{X: 0, Y: 3}) {
		t.Errorf("delta = %v; want (0, 3)", d)
	}
	if d := sep.Delta(0, birds[:1]); d != geometry.Zero {
		t.Errorf("lone bird delta = %v; want zero", d)
	}
}

func TestAlignment_IncludesSelf(t *testing.T) {
	al := Alignment{Gain: 0.5}

	// alone, the mean velocity is the bird's own: no change
	lone := []Bird{bird(0, 0, 4, 2)}
	if d := al.Delta(0, lone); d != geometry.Zero {
		t.Errorf("lone bird delta = %v; want zero", d)
	}

	// with a neighbour the mean is taken over both birds
	pair := []Bird{bird(0, 0, 4, 0), bird(10, 0, 0, 0)}
	// mean (2,0), (2-4)*0.5 = -1
	if d := al.Delta(0, pair); !d.Eq(geometry.Vector2D{X: -1, Y: 0}) {
		t.Errorf("delta = %v; want (-1, 0)", d)
	}
}

func TestAlignment_UsesOwnSightRadius(t *testing.T) {
	al := Alignment{Gain: 1}
	shortSighted := bird(0, 0, 0, 0)
	shortSighted.SightRadius = 5
	other := bird(10, 0, 6, 0)

	birds := []Bird{shortSighted, other}
	if d := al.Delta(0, birds); d != geometry.Zero {
		t.Errorf("short sighted bird delta = %v; want zero", d)
	}
	// the other bird sees 75 units and does notice the first one
	if d := al.Delta(1, birds); !d.Eq(geometry.Vector2D{X: -3, Y: 0}) {
		t.Errorf("far sighted bird delta = %v; want (-3, 0)", d)
	}
}

func TestCohesion(t *testing.T) {
	co := Cohesion{Gain: 0.005}
	birds := []Bird{bird(0, 0, 0, 0), bird(20, 10, 0, 0)}
	// mean position (10,5), pulled by 0.005 of the way
	want := geometry.Vector2D{X: 10 * 0.005, Y: 5 * 0.005}
	if d := co.Delta(0, birds); !d.Eq(want) {
		t.Errorf("delta = %v; want %v", d, want)
	}
	if d := co.Delta(0, birds[:1]); d != geometry.Zero {
		t.Errorf("lone bird delta = %v; want zero", d)
	}
}

func TestStep_PhaseReadsSnapshot(t *testing.T) {
	// Alignment with gain 0.5 on a pair. Committing in place would let
	// bird 1 see bird 0's updated velocity (0.75) instead of 1.
	f := mustFromBirds(t, []Bird{bird(500, 500, 1, 0), bird(510, 500, 0, 0)}, jail,
		WithRules(Alignment{Gain: 0.5}))
	f.Step()

	if v := f.Bird(0).Velocity; !v.Eq(geometry.Vector2D{X: 0.75, Y: 0}) {
		t.Errorf("bird 0 velocity = %v; want (0.75, 0)", v)
	}
	if v := f.Bird(1).Velocity; !v.Eq(geometry.Vector2D{X: 0.25, Y: 0}) {
		t.Errorf("bird 1 velocity = %v; want (0.25, 0)", v)
	}
}

func TestStep_PhasesSeeEarlierPhases(t *testing.T) {
	// separation runs before alignment: alignment must average the
	// velocities separation produced, not the ones from the last tick
	p := DefaultParams()
	birds := []Bird{bird(500, 500, 0, 0), bird(502, 500, 0, 0)}
	f := mustFromBirds(t, birds, jail, WithRules(
		Separation{ComfortDistance: p.ComfortDistance, Gain: p.SeparationGain},
		Alignment{Gain: 1},
	))
	f.Step()

	// separation gives -0.1 and +0.1, their mean is 0, and gain 1 snaps to it
	for i := range 2 {
		if v := f.Bird(i).Velocity; !v.Eq(geometry.Zero) {
			t.Errorf("bird %d velocity = %v; want zero", i, v)
		}
	}
}
