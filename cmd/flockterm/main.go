// Command flockterm runs the flock in a terminal. Every cell stands for
// an 8x16 block of virtual pixels, so the default tuning looks the same
// as in the window shell.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/proto"
)

const (
	cellWidth  = 8
	cellHeight = 16
	tickRate   = 30 // auto run ticks per second
)

type term struct {
	ctx        context.Context
	screen     tcell.Screen
	logger     golog.Logger
	worldPID   *actor.PID
	lastState  *pb.FlockSnapshot
	population int
	autoRun    bool

	birdStyle, statusStyle tcell.Style
}

// display is the virtual pixel rectangle covered by a cols x rows
// terminal, minus the status line.
func display(cols, rows int) geometry.Rect {
	return geometry.NewRect(0, 0, float64(cols*cellWidth), float64((rows-1)*cellHeight))
}

func main() {
	flags := simulation.BindFlags(flag.CommandLine)
	logFile := flag.String("logfile", "", "write logs to this file, they are discarded otherwise")
	flag.Parse()

	cfg, err := flags.Config()
	if err != nil {
		log.Fatal(err)
	}
	palette, err := cfg.Colors()
	if err != nil {
		log.Fatal(err)
	}

	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logOut = f
	}
	logger := cfg.NewLogger(logOut)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	// the jail is the terminal, not the configured world size
	cols, rows := screen.Size()
	d := display(cols, rows)
	cfg.WorldWidth, cfg.WorldHeight = d.Dx(), d.Dy()

	ctx := context.Background()
	system, err := actor.NewActorSystem("FlockTerm",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		screen.Fini()
		log.Fatalf("failed to create actor system: %v", err)
	}
	if err := system.Start(ctx); err != nil {
		screen.Fini()
		log.Fatalf("failed to start actor system: %v", err)
	}
	defer system.Stop(ctx)

	var recorder *simulation.Recorder
	if cfg.RecordPath != "" {
		if recorder, err = simulation.CreateRecorder(cfg.RecordPath); err != nil {
			screen.Fini()
			log.Fatal(err)
		}
	}

	snapshots := make(chan *pb.FlockSnapshot, 10)
	pid, err := system.Spawn(ctx, "world", simulation.NewWorldActor(cfg, snapshots, recorder))
	if err != nil {
		screen.Fini()
		log.Fatalf("failed to spawn world: %v", err)
	}

	bg := toColor(palette.Background)
	t := &term{
		ctx:         ctx,
		screen:      screen,
		logger:      logger,
		worldPID:    pid,
		lastState:   &pb.FlockSnapshot{},
		population:  cfg.Population,
		autoRun:     cfg.AutoRun,
		birdStyle:   tcell.StyleDefault.Background(bg).Foreground(toColor(palette.Bird)),
		statusStyle: tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack),
	}
	screen.SetStyle(tcell.StyleDefault.Background(bg))
	t.run(snapshots)
}

func (t *term) run(snapshots <-chan *pb.FlockSnapshot) {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || t.handle(ev) {
				return
			}
		case <-ticker.C:
			if t.autoRun {
				t.tell(&pb.Tick{Steps: 1})
			}
		case snap := <-snapshots:
			t.lastState = snap
			t.draw()
		}
	}
}

// handle reacts to one terminal event and reports whether to quit.
func (t *term) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
		cols, rows := ev.Size()
		t.tell(&pb.ResizeDisplay{Display: simulation.RectToProto(display(cols, rows))})
		t.draw()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyDelete, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			case ' ':
				t.tell(&pb.Tick{Steps: 1})
			case 'a':
				t.autoRun = !t.autoRun
				t.draw()
			case 'r':
				t.tell(&pb.ResetFlock{Population: int32(t.population)})
			case '+':
				t.population += 10
				t.draw()
			case '-':
				t.population = max(0, t.population-10)
				t.draw()
			}
		}
	}
	return false
}

func (t *term) tell(msg proto.Message) {
	if err := actor.Tell(t.ctx, t.worldPID, msg); err != nil {
		t.logger.Errorf("failed to send %T to the world: %v", msg, err)
	}
}

func (t *term) draw() {
	t.screen.Clear()
	cols, rows := t.screen.Size()

	for _, b := range t.lastState.GetBirds() {
		d := b.GetDisplay()
		cx, cy := int(d.GetX()/cellWidth), int(d.GetY()/cellHeight)
		// a bird on the bottom edge would land on the status line
		cy = min(cy, rows-2)
		if cx < 0 || cx >= cols || cy < 0 {
			continue
		}
		t.screen.SetContent(cx, cy, 'o', nil, t.birdStyle)
	}

	run := "off"
	if t.autoRun {
		run = "on"
	}
	status := fmt.Sprintf(" tick %d  birds %d  next %d  auto %s | [space] step [a] auto [r] reset [+/-] birds [q] quit",
		t.lastState.GetTick(), len(t.lastState.GetBirds()), t.population, run)
	drawText(t.screen, 0, rows-1, cols, status, t.statusStyle)
	t.screen.Show()
}

// drawText writes s on row y, padded or cut to width cells.
func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= x+width {
			return
		}
		s.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < x+width; col++ {
		s.SetContent(col, y, ' ', nil, style)
	}
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
