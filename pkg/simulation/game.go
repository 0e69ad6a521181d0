package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
	"golang.org/x/image/colornames"
	"google.golang.org/protobuf/proto"
)

// birdRadius is the radius of the disc drawn for every bird, in pixels.
const birdRadius = 2

// Game is the ebiten shell. It never touches the flock: it sends messages
// to the world and draws the last snapshot it received.
type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *pb.FlockSnapshot
	lastState  *pb.FlockSnapshot
	palette    Palette

	// UI Controls
	panel            *ui.UIPanel
	widgetPopulation *ui.Slider
	widgetAutoRun    *ui.Checkbox
	resetRequested   bool

	width, height int

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// NewGame spawns the world actor on system and builds the UI around it.
// recorder may be nil.
func NewGame(ctx context.Context, cfg *Config, system actor.ActorSystem, recorder *Recorder) (*Game, error) {
	palette, err := cfg.Colors()
	if err != nil {
		return nil, err
	}

	// Buffer to avoid blocking the world
	snapshotCh := make(chan *pb.FlockSnapshot, 10)
	worldPID, err := system.Spawn(ctx, "world", NewWorldActor(cfg, snapshotCh, recorder))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &pb.FlockSnapshot{}, // Avoid nil pointer
		palette:    palette,
		width:      int(cfg.WorldWidth),
		height:     int(cfg.WorldHeight),
	}

	g.panel = ui.NewUIPanel("Flock", 10, 10, 200, 190)
	g.panel.AddSection("Population")
	g.widgetPopulation = g.panel.AddSlider("Birds", 0, float64(max(2000, cfg.Population)), 1, float64(cfg.Population))
	g.panel.AddButton("Reset [r]", func() { g.resetRequested = true })
	g.panel.EndSection()
	g.panel.AddSection("Simulation")
	g.widgetAutoRun = g.panel.AddCheckbox("Auto run", cfg.AutoRun)
	g.panel.EndSection()

	return g, nil
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyDelete) {
		return ebiten.Termination
	}

	g.panel.Update()

	// Retrieve Latest State (Non-blocking)
	for drained := false; !drained; {
		select {
		case snap := <-g.snapshotCh:
			g.lastState = snap
		default:
			drained = true
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetRequested = true
	}
	if g.resetRequested {
		g.resetRequested = false
		g.tell(&pb.ResetFlock{Population: int32(g.widgetPopulation.Value)})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || g.widgetAutoRun.Value {
		g.tell(&pb.Tick{Steps: 1})
	}
	return nil
}

// tell sends msg to the world without waiting.
func (g *Game) tell(msg proto.Message) {
	if err := actor.Tell(g.ctx, g.worldPID, msg); err != nil {
		g.System.Logger().Errorf("failed to send %T to the world: %v", msg, err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(g.palette.Background)

	for _, b := range g.lastState.GetBirds() {
		d := b.GetDisplay()
		vector.FillCircle(screen, float32(d.GetX()), float32(d.GetY()), birdRadius, UnpackColor(b.GetColor()), true)
	}

	g.panel.Draw(screen)
	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	msg := fmt.Sprintf("Tick:   %d\nBirds:  %d\n\nFPS: %.2f\nTPS: %.2f\nUpdate: %.2fms\nDraw:   %.2fms",
		g.lastState.GetTick(),
		len(g.lastState.GetBirds()),
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.updateAvg,
		g.drawAvg)
	// right side, clear of the panel
	ui.DrawText(screen, msg, float64(g.width)-150, 10, colornames.Lightgray)
	ui.DrawText(screen, "[space] step  [r] reset  [q] quit", 10, float64(g.height)-20, colornames.Gray)
}

// Layout follows the window size: every change is reported to the world,
// which moves the frame origin and resizes the jail. The world refuses
// degenerate sizes on its own.
func (g *Game) Layout(w, h int) (int, int) {
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.tell(&pb.ResizeDisplay{Display: RectToProto(geometry.NewRect(0, 0, float64(w), float64(h)))})
	}
	return max(w, 1), max(h, 1)
}
