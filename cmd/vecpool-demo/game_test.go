package main

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vecpool/config"
	"github.com/lixenwraith/vecpool/loop"
	"github.com/lixenwraith/vecpool/physics"
)

func newTestGame(t *testing.T, w, h int) (*Game, *loop.ManualClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.InitialPoolSize = 4
	cfg.Sound = false
	clock := loop.NewManualClock(time.Unix(0, 0))
	return NewGame(screen, cfg, clock), clock
}

func TestGame_TickMovesPlayer(t *testing.T) {
	g, clock := newTestGame(t, 40, 12)
	startX, _ := physics.GridPos(&g.player)

	g.tick()
	clock.Advance(100 * time.Millisecond)
	g.tick()

	x, _ := physics.GridPos(&g.player)
	assert.Equal(t, startX+1, x, "12 cells/s for 100ms moves one cell")

	st := g.driver.Stats()
	assert.Equal(t, uint64(2), st.Frames)
	assert.Equal(t, 4, st.Cap, "steady-state frames stay within pre-allocation")
	assert.Equal(t, 2, g.driver.Pool().Live(), "released scratch vector is not counted")
}

func TestGame_BounceOffWall(t *testing.T) {
	g, clock := newTestGame(t, 20, 10)
	g.player.Pos.Set(19.4, 5.5)
	g.player.Speed = 10

	g.tick()
	clock.Advance(100 * time.Millisecond)
	g.tick()

	assert.Equal(t, 1, g.bounces)
	assert.InDelta(t, math.Pi, g.player.Heading, 1e-9)
	x, _ := physics.GridPos(&g.player)
	assert.Equal(t, 19, x)
}

func TestGame_Input(t *testing.T) {
	g, _ := newTestGame(t, 20, 10)
	speed := g.player.Speed

	assert.True(t, g.handleInput(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
	assert.Equal(t, speed+speedStep, g.player.Speed)

	assert.True(t, g.handleInput(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.Equal(t, -1, g.turnDir)
	assert.Equal(t, turnHoldFrames, g.turnFrames)

	assert.False(t, g.handleInput(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, g.handleInput(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestGame_DrawHUD(t *testing.T) {
	g, _ := newTestGame(t, 80, 10)
	g.tick()

	primary, _, _, _ := g.screen.GetContent(0, hudRow)
	assert.Equal(t, 'p', primary)

	x, y := physics.GridPos(&g.player)
	glyph, _, _, _ := g.screen.GetContent(x, y)
	assert.Equal(t, '→', glyph)
}

func TestGame_TrailRing(t *testing.T) {
	g, _ := newTestGame(t, 20, 10)
	for i := 0; i < trailLength+3; i++ {
		g.pushTrail(i, 1)
	}
	assert.Len(t, g.trails, trailLength)
	assert.Equal(t, 3, g.trailHead)
}

func TestHeadingGlyph(t *testing.T) {
	assert.Equal(t, '→', headingGlyph(0))
	assert.Equal(t, '↓', headingGlyph(math.Pi/2))
	assert.Equal(t, '←', headingGlyph(math.Pi))
	assert.Equal(t, '↑', headingGlyph(1.5*math.Pi))
	assert.Equal(t, '→', headingGlyph(2*math.Pi-0.1))
}
