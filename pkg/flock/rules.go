package flock

import "github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"

// Rule is one steering behaviour. Delta observes the flock as it was
// before the rule started and proposes the velocity change for bird i.
// Implementations must not modify birds.
type Rule interface {
	Name() string
	Delta(i int, birds []Bird) geometry.Vector2D
}

// DefaultRules returns separation, alignment and cohesion, in that order.
func DefaultRules(p Params) []Rule {
	return []Rule{
		Separation{ComfortDistance: p.ComfortDistance, Gain: p.SeparationGain},
		Alignment{Gain: p.AlignmentGain},
		Cohesion{Gain: p.CohesionGain},
	}
}

// Separation pushes a bird away from every other bird closer than
// ComfortDistance. It uses the global distance, not the bird's sight.
type Separation struct {
	ComfortDistance float64
	Gain            float64
}

func (Separation) Name() string { return "separation" }

func (s Separation) Delta(i int, birds []Bird) geometry.Vector2D {
	me := birds[i]
	away := geometry.Zero
	for j, other := range birds {
		if j == i {
			continue
		}
		d := me.Position.Sub(other.Position)
		if d.Len() < s.ComfortDistance {
			away = away.Add(d)
		}
	}
	return away.Mul(s.Gain)
}

// Alignment steers a bird toward the mean velocity of the birds it can
// see. The bird always sees itself, so the mean is never empty.
type Alignment struct {
	Gain float64
}

func (Alignment) Name() string { return "alignment" }

func (a Alignment) Delta(i int, birds []Bird) geometry.Vector2D {
	me := birds[i]
	sum, n := geometry.Zero, 0
	for _, other := range birds {
		if me.Position.DistanceTo(other.Position) < me.SightRadius {
			sum = sum.Add(other.Velocity)
			n++
		}
	}
	if n == 0 {
		return geometry.Zero
	}
	return mean(sum, n).Sub(me.Velocity).Mul(a.Gain)
}

// Cohesion steers a bird toward the mean position of the birds it can see.
type Cohesion struct {
	Gain float64
}

func (Cohesion) Name() string { return "cohesion" }

func (c Cohesion) Delta(i int, birds []Bird) geometry.Vector2D {
	me := birds[i]
	sum, n := geometry.Zero, 0
	for _, other := range birds {
		if me.Position.DistanceTo(other.Position) < me.SightRadius {
			sum = sum.Add(other.Position)
			n++
		}
	}
	if n == 0 {
		return geometry.Zero
	}
	return mean(sum, n).Sub(me.Position).Mul(c.Gain)
}

func mean(sum geometry.Vector2D, n int) geometry.Vector2D {
	return geometry.Vector2D{X: sum.X / float64(n), Y: sum.Y / float64(n)}
}
