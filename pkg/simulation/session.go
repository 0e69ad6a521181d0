package simulation

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// Session is one running simulation: a flock, its jail and the frame that
// maps it onto a display. The jail always has the size of the display,
// anchored at the simulation origin.
//
// A Session is not safe for concurrent use. WorldActor serialises access.
type Session struct {
	flock   *flock.Flock
	frame   geometry.Frame
	display geometry.Rect
}

// NewSession creates the flock described by cfg, scattered over the
// config's display rectangle. Extra options are applied after the ones
// derived from cfg.
func NewSession(cfg *Config, opts ...flock.Option) (*Session, error) {
	palette, err := cfg.Colors()
	if err != nil {
		return nil, err
	}
	all := []flock.Option{flock.WithParams(cfg.FlockParams()), flock.WithColor(palette.Bird)}
	if cfg.Seed != 0 {
		all = append(all, flock.WithSeed(cfg.Seed))
	}
	all = append(all, opts...)

	display := cfg.Display()
	f, err := flock.New(cfg.Population, jailFor(display), all...)
	if err != nil {
		return nil, fmt.Errorf("failed to create flock: %w", err)
	}
	return &Session{
		flock:   f,
		frame:   geometry.NewDisplayFrame(display),
		display: display,
	}, nil
}

func jailFor(display geometry.Rect) geometry.Rect {
	return geometry.NewRect(0, 0, display.Dx(), display.Dy())
}

// Step advances the flock by n ticks. n < 1 is treated as 1.
func (s *Session) Step(n int) {
	for range max(n, 1) {
		s.flock.Step()
	}
}

// Reset replaces the flock with population new birds inside the current jail.
func (s *Session) Reset(population int) error {
	return s.flock.Reset(population, s.flock.Bounds())
}

// Resize follows a new display rectangle: the frame origin moves to its
// bottom-left corner and the jail takes its size. A degenerate rectangle
// is rejected and nothing changes.
func (s *Session) Resize(display geometry.Rect) error {
	if err := s.flock.Resize(jailFor(display)); err != nil {
		return err
	}
	s.frame.Resize(display)
	s.display = display
	return nil
}

func (s *Session) Flock() *flock.Flock    { return s.flock }
func (s *Session) Frame() geometry.Frame  { return s.frame }
func (s *Session) Display() geometry.Rect { return s.display }

// Snapshot copies the state of every bird, with its display position.
func (s *Session) Snapshot() *pb.FlockSnapshot {
	snap := &pb.FlockSnapshot{
		Birds:   make([]*pb.BirdState, 0, s.flock.Len()),
		Bounds:  RectToProto(s.flock.Bounds()),
		Tick:    s.flock.Ticks(),
		Display: RectToProto(s.display),
	}
	for _, b := range s.flock.All() {
		snap.Birds = append(snap.Birds, BirdToProto(b, s.frame))
	}
	return snap
}
