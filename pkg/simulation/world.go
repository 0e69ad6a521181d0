package simulation

import (
	"time"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// WorldActor owns the Session. Its mailbox is the only way in, so every
// step, reset, resize and snapshot read happens one at a time.
type WorldActor struct {
	cfg     *Config
	session *Session
	// Communication with UI
	snapshotCh chan<- *pb.FlockSnapshot
	recorder   *Recorder

	// --- Benchmark Stats ---
	tickCount   int
	stepTime    time.Duration
	lastLogTime time.Time
}

// enforce compilation error
var _ actor.Actor = (*WorldActor)(nil)

// NewWorldActor creates the world logic unit. snapshotCh and recorder may be nil.
func NewWorldActor(cfg *Config, snapshotCh chan<- *pb.FlockSnapshot, recorder *Recorder) *WorldActor {
	return &WorldActor{
		cfg:         cfg,
		snapshotCh:  snapshotCh,
		recorder:    recorder,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	session, err := NewSession(w.cfg)
	if err != nil {
		return err
	}
	w.session = session
	ctx.ActorSystem().Logger().Infof("World created %d birds in %s", session.Flock().Len(), session.Flock().Bounds())
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Infof("World started, rules: %v", w.session.Flock().Rules())
		w.publish(ctx)

	case *pb.Tick:
		start := time.Now()
		w.session.Step(int(msg.GetSteps()))
		w.stepTime += time.Since(start)
		w.tickCount++
		w.logBenchmarks(ctx)
		w.publish(ctx)

	case *pb.ResetFlock:
		if err := w.session.Reset(int(msg.GetPopulation())); err != nil {
			ctx.Logger().Warnf("reset refused: %v", err)
			return
		}
		ctx.Logger().Infof("World reset with %d birds", w.session.Flock().Len())
		w.publish(ctx)

	case *pb.ResizeDisplay:
		display := RectFromProto(msg.GetDisplay())
		if err := w.session.Resize(display); err != nil {
			// e.g. a minimised window, keep flying in the last valid jail
			ctx.Logger().Warnf("resize refused, keeping %s: %v", w.session.Display(), err)
			return
		}
		ctx.Logger().Debugf("World resized to %s", display)
		w.publish(ctx)

	case *pb.GetSnapshot:
		ctx.Response(w.session.Snapshot())

	default:
		ctx.Unhandled()
	}
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		var avg time.Duration
		if w.tickCount > 0 {
			avg = w.stepTime / time.Duration(w.tickCount)
		}
		ctx.Logger().Infof("📊 TICK RATE: %d/sec (avg step %s) | Birds: %d | Tick: %d",
			w.tickCount, avg, w.session.Flock().Len(), w.session.Flock().Ticks())
		w.tickCount = 0
		w.stepTime = 0
		w.lastLogTime = time.Now()
	}
}

// publish records the current state and hands it to the UI.
func (w *WorldActor) publish(ctx *actor.ReceiveContext) {
	snap := w.session.Snapshot()
	if w.recorder != nil {
		if err := w.recorder.Record(snap); err != nil {
			ctx.Logger().Errorf("recording stopped: %v", err)
			w.recorder = nil
		}
	}
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- snap:
	default:
		// UI busy, skip frame
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is shutdown...")
	if w.recorder != nil {
		return w.recorder.Close()
	}
	return nil
}
