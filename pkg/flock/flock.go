// Package flock implements the boids flocking engine.
//
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds. Every bird steers by
// three local rules (separation, alignment, cohesion) and is softly kept
// inside a rectangular jail by a velocity nudge near its edges.
// https://en.wikipedia.org/wiki/Boids
//
// All coordinates are simulation coordinates (y up). A Flock is not safe
// for concurrent use: callers serialise Step, Reset, Resize and reads.
package flock

import (
	"fmt"
	"image/color"
	"iter"
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// Bird is a single agent of the flock.
// Fields are exported so the renderer can read them.
type Bird struct {
	Position    geometry.Vector2D
	Velocity    geometry.Vector2D
	SightRadius float64
	Color       color.RGBA
}

// Flock owns a population of birds and advances it one tick at a time.
type Flock struct {
	birds  []Bird
	bounds geometry.Rect
	params Params
	rules  []Rule
	color  color.RGBA

	seed func() uint64

	// deltas buffers one rule's output for the whole flock before it is
	// committed, so no bird observes a neighbour's same-phase update.
	deltas []geometry.Vector2D
	ticks  uint64
}

// New creates a flock of population birds scattered uniformly inside
// bounds, each flying at TerminalVelocity in a random direction.
func New(population int, bounds geometry.Rect, opts ...Option) (*Flock, error) {
	f, err := newFlock(bounds, opts)
	if err != nil {
		return nil, err
	}
	if err := f.populate(population, bounds); err != nil {
		return nil, err
	}
	return f, nil
}

// FromBirds creates a flock holding a copy of birds, as they are.
// Reset on the returned flock behaves as for New.
func FromBirds(birds []Bird, bounds geometry.Rect, opts ...Option) (*Flock, error) {
	f, err := newFlock(bounds, opts)
	if err != nil {
		return nil, err
	}
	if len(birds) > MaxPopulation {
		return nil, fmt.Errorf("%w: %d birds, max %d", ErrAllocation, len(birds), MaxPopulation)
	}
	for i, b := range birds {
		if !(b.SightRadius > 0) {
			return nil, fmt.Errorf("%w: bird %d has sight radius %v", ErrInvalidParams, i, b.SightRadius)
		}
	}
	f.birds = make([]Bird, len(birds))
	copy(f.birds, birds)
	f.deltas = make([]geometry.Vector2D, len(birds))
	return f, nil
}

func newFlock(bounds geometry.Rect, opts []Option) (*Flock, error) {
	f := &Flock{
		params: DefaultParams(),
		color:  Foreground,
		seed:   clockSeed,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rules == nil {
		f.rules = DefaultRules(f.params)
	}
	if !(f.params.SightRadius > 0) {
		return nil, fmt.Errorf("%w: sight radius %v", ErrInvalidParams, f.params.SightRadius)
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDomain, bounds)
	}
	f.bounds = bounds
	return f, nil
}

// populate replaces every bird. The population is checked and the
// storage allocated once, before anything is drawn, so a failure leaves
// the flock as it was.
func (f *Flock) populate(population int, bounds geometry.Rect) error {
	if population < 0 || population > MaxPopulation {
		return fmt.Errorf("%w: %d birds, want 0..%d", ErrAllocation, population, MaxPopulation)
	}
	if bounds.Empty() {
		return fmt.Errorf("%w: %s", ErrInvalidDomain, bounds)
	}

	s := f.seed()
	rng := rand.New(rand.NewPCG(s, s))
	birds := make([]Bird, population)
	for i := range birds {
		// draw order is part of the reproducibility contract: x, y, heading
		x := bounds.Min.X + rng.Float64()*bounds.Dx()
		y := bounds.Min.Y + rng.Float64()*bounds.Dy()
		heading := rng.Float64() * 2 * math.Pi
		birds[i] = Bird{
			Position:    geometry.Vector2D{X: x, Y: y},
			Velocity:    geometry.NewVectorPolar(f.params.TerminalVelocity, heading),
			SightRadius: f.params.SightRadius,
			Color:       f.color,
		}
	}

	f.birds = birds
	f.deltas = make([]geometry.Vector2D, population)
	f.bounds = bounds
	f.ticks = 0
	return nil
}

// Step advances the flock by exactly one tick: every rule of the pipeline
// in order, then integration and border repulsion.
func (f *Flock) Step() {
	for _, r := range f.rules {
		f.apply(r)
	}
	f.integrate()
	f.ticks++
}

// apply runs one rule over the whole flock. All deltas are computed from
// the pre-rule state before any of them is committed.
func (f *Flock) apply(r Rule) {
	for i := range f.birds {
		f.deltas[i] = r.Delta(i, f.birds)
	}
	for i := range f.birds {
		f.birds[i].Velocity = f.birds[i].Velocity.Add(f.deltas[i])
	}
}

// integrate moves every bird by v*Dt, then nudges its velocity away from
// any jail edge it is within BorderMargin of. Both edges of an axis are
// checked independently: in a jail narrower than two margins both apply.
func (f *Flock) integrate() {
	p := f.params
	jail := f.bounds
	for i := range f.birds {
		b := &f.birds[i]
		b.Position = b.Position.Add(b.Velocity.Mul(p.Dt))

		if b.Position.X < jail.Min.X+p.BorderMargin {
			b.Velocity.X += p.BorderPush
		}
		if b.Position.X > jail.Max.X-p.BorderMargin {
			b.Velocity.X -= p.BorderPush
		}
		if b.Position.Y < jail.Min.Y+p.BorderMargin {
			b.Velocity.Y += p.BorderPush
		}
		if b.Position.Y > jail.Max.Y-p.BorderMargin {
			b.Velocity.Y -= p.BorderPush
		}

		if p.MaxSpeed > 0 {
			if speed := b.Velocity.Len(); speed > p.MaxSpeed {
				b.Velocity = b.Velocity.Mul(p.MaxSpeed / speed)
			}
		}
	}
}

// Reset discards every bird and creates population new ones inside bounds,
// from a fresh seed. On error the flock is left untouched.
func (f *Flock) Reset(population int, bounds geometry.Rect) error {
	return f.populate(population, bounds)
}

// Resize replaces the jail. Birds are not moved: those left outside are
// pushed back by the border rule over the following ticks.
func (f *Flock) Resize(bounds geometry.Rect) error {
	if bounds.Empty() {
		return fmt.Errorf("%w: %s", ErrInvalidDomain, bounds)
	}
	f.bounds = bounds
	return nil
}

// Len returns the number of birds.
func (f *Flock) Len() int { return len(f.birds) }

// Bird returns a copy of bird i.
func (f *Flock) Bird(i int) Bird { return f.birds[i] }

// All yields every bird in order. The flock must not be stepped while
// iterating.
func (f *Flock) All() iter.Seq2[int, Bird] {
	return func(yield func(int, Bird) bool) {
		for i, b := range f.birds {
			if !yield(i, b) {
				return
			}
		}
	}
}

// Bounds returns the current jail.
func (f *Flock) Bounds() geometry.Rect { return f.bounds }

// Params returns the physics constants in use.
func (f *Flock) Params() Params { return f.params }

// Rules returns the names of the steering rules, in pipeline order.
func (f *Flock) Rules() []string {
	names := make([]string, len(f.rules))
	for i, r := range f.rules {
		names[i] = r.Name()
	}
	return names
}

// Ticks returns the number of steps since the flock was created or reset.
func (f *Flock) Ticks() uint64 { return f.ticks }
