package flock

import (
	"image/color"
	"time"

	"golang.org/x/image/colornames"
)

// MaxPopulation caps the number of birds a single flock may hold.
const MaxPopulation = 1 << 20

// Foreground is the color given to every bird unless WithColor says otherwise.
var Foreground = colornames.White

// Params controls the physics constants of the flock.
// They are read on every Step, never written by it.
type Params struct {
	TerminalVelocity float64 // initial speed of every bird, units/tick
	SightRadius      float64 // per bird range for alignment and cohesion
	ComfortDistance  float64 // separation kicks in below this distance

	SeparationGain float64
	AlignmentGain  float64
	CohesionGain   float64

	BorderMargin float64 // width of the repulsive band inside the jail
	BorderPush   float64 // velocity nudge applied per tick inside the band

	Dt float64 // integration step, in ticks

	// MaxSpeed clamps the speed after the border nudge. Zero disables it,
	// which is the default: near corners speed can grow without bound.
	MaxSpeed float64
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		TerminalVelocity: 40,
		SightRadius:      75,
		ComfortDistance:  8,
		SeparationGain:   0.05,
		AlignmentGain:    0.05,
		CohesionGain:     0.005,
		BorderMargin:     100,
		BorderPush:       2,
		Dt:               1,
	}
}

// Option configures a Flock at construction time.
type Option func(*Flock)

// WithParams replaces the default physics constants. Unless WithRules is
// also given, the steering pipeline is rebuilt from p.
func WithParams(p Params) Option {
	return func(f *Flock) {
		f.params = p
	}
}

// WithSeed makes the flock reproducible: New seeds with seed, and every
// Reset takes the next value (seed+1, seed+2, ...).
func WithSeed(seed uint64) Option {
	return func(f *Flock) {
		next := seed
		f.seed = func() uint64 {
			s := next
			next++
			return s
		}
	}
}

// WithRules replaces the steering pipeline. Rules run in the given order.
func WithRules(rules ...Rule) Option {
	return func(f *Flock) {
		f.rules = rules
	}
}

// WithColor sets the color of every bird created by New and Reset.
func WithColor(c color.RGBA) Option {
	return func(f *Flock) {
		f.color = c
	}
}

func clockSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
