package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/planar/engine"
	"github.com/lixenwraith/planar/monitor"
	"github.com/lixenwraith/planar/physics"
	"github.com/lixenwraith/planar/scene"
	"github.com/lixenwraith/planar/vmath"
)

const (
	controllerForce = 400.0
	chirpFreq       = 660
	chirpDuration   = 40 * time.Millisecond
)

// worldScale maps simulation units to terminal cells; terminal cells are
// roughly twice as tall as wide, so Y is compressed
const (
	cellsPerUnitX = 0.5
	cellsPerUnitY = 0.25
)

type sandbox struct {
	screen tcell.Screen
	eng    *engine.Engine
	mon    *monitor.Monitor
	player *physics.RigidBody

	inputX, inputY vmath.Scalar
	audioReady     bool
	sampleRate     beep.SampleRate
	wasTouching    bool
}

func main() {
	scenePath := flag.String("scene", "", "YAML scene file (default: built-in demo scene)")
	listen := flag.String("listen", "", "serve the websocket monitor on this address (e.g. :8080)")
	debug := flag.Bool("debug", false, "enable debug logging to stderr")
	flag.Parse()

	logger := zap.NewNop()
	if *debug {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, "logger:", err)
			os.Exit(1)
		}
	}
	defer func() { _ = logger.Sync() }()

	eng, err := buildEngine(*scenePath, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "screen:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "screen init:", err)
		os.Exit(1)
	}
	defer screen.Fini()

	sb := &sandbox{
		screen: screen,
		eng:    eng,
		mon:    monitor.New(eng, logger),
	}
	if *listen != "" {
		mux := http.NewServeMux()
		mux.Handle("/ws", sb.mon)
		go func() {
			if err := http.ListenAndServe(*listen, mux); err != nil {
				logger.Warn("monitor server stopped", zap.Error(err))
			}
		}()
	}
	sb.pickPlayer()
	sb.initAudio(logger)
	sb.wireController()
	sb.run()
}

func buildEngine(path string, logger *zap.Logger) (*engine.Engine, error) {
	if path != "" {
		return scene.LoadFile(path, logger)
	}
	return scene.Build(demoScene(), logger)
}

// demoScene is a container with a slab floor, two walls and a handful of
// falling bodies
func demoScene() scene.Spec {
	spec := scene.Spec{
		Engine:  engine.DefaultConfig(),
		Gravity: [2]float64{0, -98},
		Bodies: []scene.BodySpec{
			{Shape: "rect", Width: 160, Height: 10, Mass: 0, Position: [2]float64{0, -40}},
			{Shape: "rect", Width: 10, Height: 90, Mass: 0, Position: [2]float64{-80, 5}},
			{Shape: "rect", Width: 10, Height: 90, Mass: 0, Position: [2]float64{80, 5}},
			{Shape: "square", Side: 12, Mass: 1, Position: [2]float64{0, 20}},
		},
	}
	drops := []struct {
		shape string
		x, y  float64
	}{
		{"square", -40, 35}, {"circle", -15, 50}, {"isosceles", 20, 40},
		{"circle", 45, 55}, {"square", 60, 30},
	}
	for _, d := range drops {
		bs := scene.BodySpec{Shape: d.shape, Mass: 1, Position: [2]float64{d.x, d.y}}
		switch d.shape {
		case "square":
			bs.Side = 10
		case "circle":
			bs.Radius = 6
			bs.Sides = 8
		case "isosceles":
			bs.Width = 12
			bs.Height = 10
		}
		spec.Bodies = append(spec.Bodies, bs)
	}
	return spec
}

// pickPlayer grabs the first dynamic body as the controllable one
func (sb *sandbox) pickPlayer() {
	for _, b := range sb.eng.Bodies() {
		if !b.IsStatic() {
			sb.player = b
			return
		}
	}
}

func (sb *sandbox) initAudio(logger *zap.Logger) {
	sb.sampleRate = beep.SampleRate(44100)
	if err := speaker.Init(sb.sampleRate, sb.sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the sandbox runs silent
		logger.Warn("audio init failed", zap.Error(err))
		return
	}
	sb.audioReady = true
}

func (sb *sandbox) chirp() {
	if !sb.audioReady {
		return
	}
	sine, err := generators.SineTone(sb.sampleRate, chirpFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sb.sampleRate.N(chirpDuration), sine))
}

// wireController registers a generator that converts held arrow keys into a
// force on the player body, re-registered every tick like any other force
func (sb *sandbox) wireController() {
	if sb.player == nil {
		return
	}
	sb.eng.AddGenerator(func(r *physics.Repository) {
		if sb.inputX == 0 && sb.inputY == 0 {
			return
		}
		r.Register(physics.Directional{
			Direction: vmath.V2(sb.inputX, sb.inputY),
			Magnitude: controllerForce,
		}, sb.player)
	})
}

func (sb *sandbox) run() {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go sb.screen.ChannelEvents(events, quit)

	frame := time.NewTicker(time.Second / 60)
	defer frame.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				if sb.handleKey(tev) {
					close(quit)
					return
				}
			case *tcell.EventResize:
				sb.screen.Sync()
			}

		case <-frame.C:
			now := time.Now()
			elapsed := vmath.S(now.Sub(last).Seconds())
			last = now

			sb.eng.Update(elapsed)
			sb.detectContact()
			sb.mon.Broadcast()
			sb.draw()
			sb.inputX, sb.inputY = 0, 0
		}
	}
}

// handleKey updates controller input; returns true on quit
func (sb *sandbox) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		sb.inputX = -1
	case tcell.KeyRight:
		sb.inputX = 1
	case tcell.KeyUp:
		sb.inputY = 1
	case tcell.KeyDown:
		sb.inputY = -1
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return true
		}
	}
	return false
}

// detectContact chirps on the rising edge of any overlap
func (sb *sandbox) detectContact() {
	touching := physics.CheckAll(sb.eng.Bodies())
	if touching && !sb.wasTouching {
		sb.chirp()
	}
	sb.wasTouching = touching
}

func (sb *sandbox) draw() {
	sb.screen.Clear()
	w, h := sb.screen.Size()

	styleStatic := tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDynamic := tcell.StyleDefault.Foreground(tcell.ColorAqua)
	stylePlayer := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	for _, b := range sb.eng.Bodies() {
		style := styleDynamic
		if b.IsStatic() {
			style = styleStatic
		} else if b == sb.player {
			style = stylePlayer
		}
		tv := b.Polygon().TransformedVertices()
		for i := range tv {
			a := tv[i]
			c := tv[(i+1)%len(tv)]
			sb.drawLine(a, c, w, h, style)
		}
	}

	status := fmt.Sprintf(" tick %d | bodies %d | arrows push, q quits ",
		sb.eng.Ticks(), len(sb.eng.Bodies()))
	for i, r := range status {
		if i >= w {
			break
		}
		sb.screen.SetContent(i, 0, r, nil, tcell.StyleDefault)
	}

	sb.screen.Show()
}

// drawLine rasterizes a world-space segment into terminal cells
func (sb *sandbox) drawLine(a, b vmath.Vec, w, h int, style tcell.Style) {
	toCell := func(v vmath.Vec) (int, int) {
		x := int(v.X.Float()*cellsPerUnitX) + w/2
		y := h/2 - int(v.Y.Float()*cellsPerUnitY)
		return x, y
	}
	x0, y0 := toCell(a)
	x1, y1 := toCell(b)

	steps := maxInt(absInt(x1-x0), absInt(y1-y0))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(t*float64(x1-x0))
		y := y0 + int(t*float64(y1-y0))
		if x >= 0 && x < w && y >= 0 && y < h {
			sb.screen.SetContent(x, y, '·', nil, style)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
