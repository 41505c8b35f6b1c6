package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vecpool/config"
	"github.com/lixenwraith/vecpool/loop"
	"github.com/lixenwraith/vecpool/physics"
)

const (
	trailLength    = 12
	turnHoldFrames = 6
	speedStep      = 2.0
	maxSpeed       = 60.0
	hudRow         = 0
)

type trailPoint struct {
	x, y      int
	intensity float64
}

// Game is the frame-loop collaborator: it owns the driver and therefore the pool
type Game struct {
	screen        tcell.Screen
	width, height int
	cfg           config.Config

	driver *loop.Driver
	player physics.Kinetic

	turnDir    int
	turnFrames int

	trails []trailPoint
	// trailHead is the next ring write position
	trailHead int

	bounces   int
	audioInit bool
}

// NewGame wires an initialized screen to a fresh driver
func NewGame(screen tcell.Screen, cfg config.Config, clock loop.Clock) *Game {
	g := &Game{
		screen: screen,
		cfg:    cfg,
		driver: loop.NewDriver(cfg.InitialPoolSize, clock, cfg.MaxDelta.Duration),
		trails: make([]trailPoint, 0, trailLength),
		player: physics.Kinetic{
			Speed:    cfg.PlayerSpeed,
			TurnRate: cfg.TurnRate,
		},
	}
	g.width, g.height = screen.Size()
	physics.SetGridPos(&g.player, g.width/2, g.height/2)
	return g
}

func (g *Game) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		g.audioInit = true
	}
	return err
}

func (g *Game) playBounceSound() {
	if !g.audioInit {
		return
	}

	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(40 * time.Millisecond)
	sine, err := generators.SineTone(sampleRate, 440)
	if err != nil {
		log.Printf("bounce tone: %v", err)
		return
	}
	speaker.Play(beep.Take(duration, sine))
}

// update runs inside a driver step; every vector from f.Pool dies at the next step
func (g *Game) update(f loop.Frame) {
	dt := f.Seconds()
	p := f.Pool

	if g.turnFrames > 0 {
		physics.Turn(&g.player, g.turnDir, dt)
		g.turnFrames--
	}

	physics.Integrate(p, &g.player, dt)
	// Playfield excludes the HUD row
	bx := physics.ReflectBoundsX(p, &g.player, 0, g.width)
	by := physics.ReflectBoundsY(p, &g.player, hudRow+1, g.height)
	if bx || by {
		g.bounces++
		g.playBounceSound()
	}

	// Trail point one cell behind the player
	back := p.FromAngle(g.player.Heading).Scale(-1)
	tail := p.FromSource(g.player.Position()).Add(back)
	// back is dead once folded into tail
	if err := p.Release(back); err != nil {
		log.Printf("frame %d: release: %v", f.Index, err)
	}
	g.pushTrail(int(math.Floor(tail.X)), int(math.Floor(tail.Y)))
}

func (g *Game) pushTrail(x, y int) {
	for i := range g.trails {
		g.trails[i].intensity *= 0.8
	}
	pt := trailPoint{x: x, y: y, intensity: 1.0}
	if len(g.trails) < trailLength {
		g.trails = append(g.trails, pt)
		return
	}
	g.trails[g.trailHead] = pt
	g.trailHead = (g.trailHead + 1) % trailLength
}

func (g *Game) handleResize() {
	newWidth, newHeight := g.screen.Size()
	if newWidth == g.width && newHeight == g.height {
		return
	}
	g.width = newWidth
	g.height = newHeight

	x, y := physics.GridPos(&g.player)
	if x >= g.width {
		x = g.width - 1
	}
	if y >= g.height {
		y = g.height - 1
	}
	physics.SetGridPos(&g.player, x, y)
	g.screen.Sync()
}

func (g *Game) draw() {
	g.screen.Clear()

	for _, tr := range g.trails {
		if tr.x < 0 || tr.x >= g.width || tr.y <= hudRow || tr.y >= g.height {
			continue
		}
		intensity := int32(tr.intensity * 255)
		if intensity > 255 {
			intensity = 255
		}
		color := tcell.NewRGBColor(intensity, intensity, intensity)
		g.screen.SetContent(tr.x, tr.y, '·', nil, tcell.StyleDefault.Foreground(color))
	}

	x, y := physics.GridPos(&g.player)
	g.screen.SetContent(x, y, headingGlyph(g.player.Heading), nil,
		tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	g.drawHUD()
	g.screen.Show()
}

func (g *Game) drawHUD() {
	st := g.driver.Stats()
	hud := fmt.Sprintf("pool cap %d live %d peak %d grows %d | speed %.0f | bounces %d",
		st.Cap, st.LastLive, st.PeakLive, st.Grows, g.player.Speed, g.bounces)
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	col := 0
	for _, r := range hud {
		if col >= g.width {
			break
		}
		g.screen.SetContent(col, hudRow, r, nil, style)
		col++
	}
}

// headingGlyph maps heading to one of 8 arrows, screen y grows downward
func headingGlyph(heading float64) rune {
	arrows := []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
	sector := int(math.Floor(heading/(math.Pi/4)+0.5)) % len(arrows)
	if sector < 0 {
		sector += len(arrows)
	}
	return arrows[sector]
}

// handleInput returns false when the game should exit
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.turnDir, g.turnFrames = -1, turnHoldFrames
		case tcell.KeyRight:
			g.turnDir, g.turnFrames = 1, turnHoldFrames
		case tcell.KeyUp:
			g.player.Speed = math.Min(g.player.Speed+speedStep, maxSpeed)
		case tcell.KeyDown:
			g.player.Speed = math.Max(g.player.Speed-speedStep, 0)
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}

	case *tcell.EventResize:
		g.handleResize()
	}

	return true
}

// tick advances one frame and redraws
func (g *Game) tick() {
	g.driver.Step(g.update)
	g.draw()
}

func (g *Game) run() {
	ticker := time.NewTicker(g.cfg.FrameInterval())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *Game) cleanup() {
	if g.audioInit {
		speaker.Close()
	}
	st := g.driver.Stats()
	log.Printf("exit after %d frames: pool cap %d peak %d grows %d", st.Frames, st.Cap, st.PeakLive, st.Grows)
	g.screen.Fini()
}
