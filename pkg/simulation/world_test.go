package simulation

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
)

func startSystem(t *testing.T) (context.Context, actor.ActorSystem) {
	t.Helper()
	ctx := context.Background()
	system, err := actor.NewActorSystem("FlockTest", actor.WithLogger(log.DiscardLogger))
	if err != nil {
		t.Fatalf("NewActorSystem: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() { _ = system.Stop(ctx) })
	return ctx, system
}

func askSnapshot(t *testing.T, ctx context.Context, pid *actor.PID) *pb.FlockSnapshot {
	t.Helper()
	resp, err := actor.Ask(ctx, pid, &pb.GetSnapshot{}, time.Second)
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	snap, ok := resp.(*pb.FlockSnapshot)
	if !ok {
		t.Fatalf("Ask answered %T; want *pb.FlockSnapshot", resp)
	}
	return snap
}

func TestWorldActor_Messages(t *testing.T) {
	ctx, system := startSystem(t)
	pid, err := system.Spawn(ctx, "world", NewWorldActor(testConfig(), nil, nil))
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	snap := askSnapshot(t, ctx, pid)
	if len(snap.GetBirds()) != 25 || snap.GetTick() != 0 {
		t.Fatalf("initial snapshot: %d birds at tick %d; want 25 at 0", len(snap.GetBirds()), snap.GetTick())
	}

	steps := []struct {
		name      string
		msg       *pb.Tick
		wantTicks uint64
	}{
		{"zero steps means one", &pb.Tick{}, 1},
		{"several steps", &pb.Tick{Steps: 4}, 5},
	}
	for _, tt := range steps {
		if err := actor.Tell(ctx, pid, tt.msg); err != nil {
			t.Fatalf("%s: Tell: %v", tt.name, err)
		}
		if got := askSnapshot(t, ctx, pid).GetTick(); got != tt.wantTicks {
			t.Errorf("%s: tick = %d; want %d", tt.name, got, tt.wantTicks)
		}
	}

	if err := actor.Tell(ctx, pid, &pb.ResetFlock{Population: 40}); err != nil {
		t.Fatalf("Tell: %v", err)
	}
	snap = askSnapshot(t, ctx, pid)
	if len(snap.GetBirds()) != 40 || snap.GetTick() != 0 {
		t.Errorf("after reset: %d birds at tick %d; want 40 at 0", len(snap.GetBirds()), snap.GetTick())
	}

	display := geometry.NewRect(0, 0, 800, 600)
	if err := actor.Tell(ctx, pid, &pb.ResizeDisplay{Display: RectToProto(display)}); err != nil {
		t.Fatalf("Tell: %v", err)
	}
	snap = askSnapshot(t, ctx, pid)
	if got := RectFromProto(snap.GetBounds()); got != display {
		t.Errorf("jail after resize = %v; want %v", got, display)
	}
}

func TestWorldActor_RefusesBadRequests(t *testing.T) {
	ctx, system := startSystem(t)
	pid, err := system.Spawn(ctx, "world", NewWorldActor(testConfig(), nil, nil))
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	before := askSnapshot(t, ctx, pid)

	_ = actor.Tell(ctx, pid, &pb.ResetFlock{Population: -1})
	_ = actor.Tell(ctx, pid, &pb.ResizeDisplay{Display: RectToProto(geometry.NewRect(0, 0, 0, 0))})

	after := askSnapshot(t, ctx, pid)
	if len(after.GetBirds()) != len(before.GetBirds()) {
		t.Errorf("refused reset changed population to %d", len(after.GetBirds()))
	}
	if RectFromProto(after.GetBounds()) != RectFromProto(before.GetBounds()) {
		t.Errorf("refused resize changed jail to %v", after.GetBounds())
	}
}

func TestWorldActor_PublishesAndRecords(t *testing.T) {
	ctx, system := startSystem(t)
	snapshots := make(chan *pb.FlockSnapshot, 10)
	var buf bytes.Buffer
	rec := NewRecorder(&buf)

	pid, err := system.Spawn(ctx, "world", NewWorldActor(testConfig(), snapshots, rec))
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	_ = actor.Tell(ctx, pid, &pb.Tick{Steps: 2})
	// the Ask is served after the Tick, so the tick snapshot is already out
	askSnapshot(t, ctx, pid)

	var last *pb.FlockSnapshot
	for drained := false; !drained; {
		select {
		case s := <-snapshots:
			last = s
		default:
			drained = true
		}
	}
	if last == nil || last.GetTick() != 2 {
		t.Fatalf("last published snapshot = %v; want tick 2", last)
	}

	// the world is idle until the next message, flush what it recorded
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	got, err := ReadRecording(&buf)
	if err != nil {
		t.Fatalf("ReadRecording: %v", err)
	}
	if len(got) != rec.Records() || got[len(got)-1].GetTick() != 2 {
		t.Errorf("recorded %d snapshots; want %d ending at tick 2", len(got), rec.Records())
	}
}

func TestWorldActor_SpawnFailsOnBadConfig(t *testing.T) {
	ctx, system := startSystem(t)
	cfg := testConfig()
	cfg.Population = -1
	if _, err := system.Spawn(ctx, "world", NewWorldActor(cfg, nil, nil)); err == nil {
		t.Error("Spawn with a negative population: want an error")
	}
}
