package tetris

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func newTestGame(t *testing.T, variant string, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New(variant)
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func stepN(g *Game, n int, actions ...core.Action) {
	for range n {
		in := core.NewInputFrame()
		for _, a := range actions {
			in.Set(a)
		}
		g.Step(in)
	}
}

func forceGameOver(t *testing.T, g *Game) {
	t.Helper()
	e := g.Engine()
	for c := range e.Cols() {
		e.board.Set(0, c, 1)
		e.board.Set(1, c, 1)
	}
	e.spawn()
	require.Equal(t, GameOver, e.State())
}

func TestVariantsRegistered(t *testing.T) {
	for _, variant := range config.Variants() {
		assert.True(t, registry.Exists(variant), variant)

		g, err := registry.Create(variant)
		require.NoError(t, err)
		assert.Equal(t, variant, g.ID())
	}
}

func TestGameTitles(t *testing.T) {
	assert.Equal(t, "Blockfall (Classic)", New(config.VariantClassic).Title())
	assert.Equal(t, "Blockfall (Tetromino)", New(config.VariantTetromino).Title())
	assert.Equal(t, "Blockfall (custom)", New("custom").Title())
}

func TestDropEveryTicks(t *testing.T) {
	tests := []struct {
		interval time.Duration
		rate     int
		want     int
	}{
		{500 * time.Millisecond, 60, 30},
		{500 * time.Millisecond, 0, 30},
		{time.Second, 30, 30},
		{250 * time.Millisecond, 60, 15},
		{5 * time.Millisecond, 60, 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, dropEveryTicks(tc.interval, tc.rate), "%v @ %d", tc.interval, tc.rate)
	}
}

func TestGameResetUsesDefaults(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, 1)

	assert.Equal(t, "embedded:classic.yaml", g.Config().Source)
	assert.Equal(t, 20, g.Engine().Rows())
	assert.Equal(t, 10, g.Engine().Cols())
	assert.Len(t, g.Engine().Catalog(), 4)
	assert.Equal(t, 30, g.dropEveryTicks)
	assert.False(t, g.State().GameOver)
	assert.False(t, g.State().Paused)
}

func TestGameGravityCadence(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, 1)
	start := g.Engine().Position()

	stepN(g, 29)
	assert.Equal(t, start, g.Engine().Position())

	stepN(g, 1)
	assert.Equal(t, start.Y+1, g.Engine().Position().Y)

	stepN(g, 30)
	assert.Equal(t, start.Y+2, g.Engine().Position().Y)
}

func TestGameInputMovesPiece(t *testing.T) {
	g := newTestGame(t, config.VariantTetromino, 3)
	start := g.Engine().Position()

	stepN(g, 1, core.ActionMoveLeft)
	assert.Equal(t, start.X-1, g.Engine().Position().X)

	stepN(g, 1, core.ActionMoveRight)
	stepN(g, 1, core.ActionMoveRight)
	assert.Equal(t, start.X+1, g.Engine().Position().X)

	stepN(g, 1, core.ActionSoftDrop)
	assert.Equal(t, start.Y+1, g.Engine().Position().Y)
}

func TestGameInputOrderIsPreserved(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, 5)
	for range 10 {
		stepN(g, 1, core.ActionMoveLeft)
	}
	require.Zero(t, g.Engine().Position().X)

	// Left is applied before right, so the piece ends one column right.
	in := core.NewInputFrame()
	in.Set(core.ActionMoveLeft)
	in.Set(core.ActionMoveRight)
	g.Step(in)
	assert.Equal(t, 1, g.Engine().Position().X)
}

func TestGamePauseToggle(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, 1)
	start := g.Engine().Position()

	stepN(g, 1, core.ActionPause)
	assert.True(t, g.State().Paused)

	stepN(g, 100)
	stepN(g, 1, core.ActionMoveLeft)
	assert.Equal(t, start, g.Engine().Position())

	stepN(g, 1, core.ActionPause)
	assert.False(t, g.State().Paused)
	stepN(g, 1, core.ActionMoveLeft)
	assert.Equal(t, start.X-1, g.Engine().Position().X)
}

func TestGameRestartOnlyAfterGameOver(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, 1)

	stepN(g, 1, core.ActionSoftDrop)
	y := g.Engine().Position().Y
	require.Equal(t, 1, y)

	stepN(g, 1, core.ActionRestart)
	assert.Equal(t, y, g.Engine().Position().Y, "restart ignored while running")

	forceGameOver(t, g)
	assert.True(t, g.State().GameOver)

	stepN(g, 50, core.ActionMoveLeft)
	assert.True(t, g.State().GameOver, "no automatic restart")

	stepN(g, 1, core.ActionPause)
	assert.False(t, g.State().Paused, "pause ignored after game over")

	stepN(g, 1, core.ActionRestart)
	assert.False(t, g.State().GameOver)
	assert.Equal(t, Running, g.Engine().State())
	for c := range g.Engine().Cols() {
		assert.Equal(t, Empty, g.Engine().CellAt(0, c))
	}
	assert.Zero(t, g.Snapshot().Locked)
}

func TestGameDeterminism(t *testing.T) {
	run := func(seed int64) Snapshot {
		g := newTestGame(t, config.VariantTetromino, seed)
		script := []core.Action{core.ActionMoveLeft, core.ActionRotate, core.ActionNone, core.ActionMoveRight, core.ActionSoftDrop}
		for i := range 3000 {
			in := core.NewInputFrame()
			if i%7 == 0 {
				in.Set(script[(i/7)%len(script)])
			}
			if g.State().GameOver {
				in.Set(core.ActionRestart)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	a, b := run(42), run(42)
	assert.Equal(t, a, b)
	assert.Equal(t, uint64(3000), a.Tick)
}

func TestGamePiecesLockOverTime(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, 9)

	// 20 rows at 30 ticks per row is enough for the first piece to land.
	stepN(g, 30*21)
	assert.GreaterOrEqual(t, g.Snapshot().Locked, 1)
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, 1)
	scr := core.NewScreen(80, 24)

	g.Render(scr)

	assert.Contains(t, scr.Row(0), "Blockfall (Classic)")
	assert.Contains(t, scr.Row(0), "running")

	well := g.wellRect(scr)
	assert.Equal(t, 22, well.W)
	assert.Equal(t, 22, well.H)
	corner := scr.GetCell(well.X, well.Y)
	assert.Equal(t, core.ColorGray, corner.Color)

	color := g.palette.Color(g.Engine().Current().Tag).Bright()
	for p := range g.Engine().CurrentCells() {
		x, y := cellOrigin(well, p.Y, p.X)
		cell := scr.GetCell(x, y)
		assert.Equal(t, '█', cell.Rune, "piece cell %+v", p)
		assert.Equal(t, color, cell.Color, "piece cell %+v", p)
	}

	x, y := cellOrigin(well, 19, 0)
	assert.Equal(t, '·', scr.Get(x+1, y))

	assert.Contains(t, scr.String(), "Piece: "+g.Engine().Current().Name)
}

func TestGameRenderLockedCells(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, 1)
	g.Engine().board.Set(19, 3, 2)
	scr := core.NewScreen(80, 24)

	g.Render(scr)

	x, y := cellOrigin(g.wellRect(scr), 19, 3)
	cell := scr.GetCell(x, y)
	assert.Equal(t, '█', cell.Rune)
	assert.Equal(t, g.palette.Color(2), cell.Color)
}

func TestGameRenderOverlays(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, 1)
	scr := core.NewScreen(80, 24)

	stepN(g, 1, core.ActionPause)
	g.Render(scr)
	assert.Contains(t, scr.String(), "Paused")

	stepN(g, 1, core.ActionPause)
	forceGameOver(t, g)
	g.Render(scr)
	assert.Contains(t, scr.String(), "Game Over")
	assert.Contains(t, scr.String(), "Press R to restart")
	assert.Contains(t, scr.Row(0), "game over")
}

func TestGameResizeKeepsState(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, 1)
	stepN(g, 1, core.ActionMoveLeft)
	before := g.Snapshot()

	g.Resize(40, 10)
	assert.True(t, g.State().Paused)

	scr := core.NewScreen(40, 10)
	g.Render(scr)
	assert.Contains(t, scr.String(), "Resize to continue")

	stepN(g, 100, core.ActionMoveLeft)
	after := g.Snapshot()
	assert.Equal(t, before.X, after.X)
	assert.Equal(t, before.Y, after.Y)

	g.Resize(80, 24)
	assert.False(t, g.State().Paused)
	assert.Equal(t, before.Board, g.Snapshot().Board)
}

func TestGameCustomConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.yaml")
	data := `title: Tiny
board:
  rows: 8
  cols: 6
timing:
  drop_interval_ms: 100
pieces:
  - name: dot
    color: red
    shape: ["#"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := newTestGame(t, config.VariantClassic, 1)
	assert.Equal(t, path, g.Config().Source)
	assert.Equal(t, 8, g.Engine().Rows())
	assert.Equal(t, 6, g.Engine().Cols())
	assert.Equal(t, 6, g.dropEveryTicks)
	assert.Equal(t, "dot", g.Engine().Current().Name)
	assert.Equal(t, core.ColorRed, g.palette.Color(1))
}

func TestGameBrokenConfigFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: [not, a, map"), 0o644))

	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := newTestGame(t, config.VariantTetromino, 1)
	assert.Equal(t, "builtin", g.Config().Source)
	assert.Len(t, g.Engine().Catalog(), 7)
}

// useUnusableBuiltin makes both the config file and the built-in fallback
// unusable for the rest of the test.
func useUnusableBuiltin(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: [not, a, map"), 0o644))
	SetConfigPath(path)
	builtinConfig = func(string) config.GameConfig {
		return config.GameConfig{Source: "builtin"}
	}
	t.Cleanup(func() {
		SetConfigPath("")
		builtinConfig = config.DefaultConfig
	})
}

func TestGameUnusableConfigRestartsPreviousGame(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, 3)
	prev := g.Engine()
	forceGameOver(t, g)

	useUnusableBuiltin(t)
	cfg := core.DefaultConfig()
	cfg.Seed = 4
	require.NotPanics(t, func() { g.Reset(cfg) })

	assert.Same(t, prev, g.Engine())
	assert.Equal(t, "embedded:classic.yaml", g.Config().Source)
	assert.Equal(t, Running, g.Engine().State())
	assert.Equal(t, 30, g.dropEveryTicks)
	assert.NotPanics(t, func() { g.Step(core.NewInputFrame()) })
}

func TestGameUnusableBuiltinConfigPanicsOnFirstReset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	useUnusableBuiltin(t)

	g := New(config.VariantClassic)
	assert.Panics(t, func() { g.Reset(core.DefaultConfig()) })
}

func TestDebugState(t *testing.T) {
	g := newTestGame(t, config.VariantClassic, 11)
	out := g.DebugState()

	assert.Contains(t, out, "Variant: classic")
	assert.Contains(t, out, "Seed: 11")
	assert.Contains(t, out, "State: running")
}
