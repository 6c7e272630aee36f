package tetris

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Layout constants for rendering.
const (
	hudHeight  = 1 // Top status line
	cellWidth  = 2 // Screen columns per board cell
	panelWidth = 16
	panelGap   = 2
)

// Visual characters for rendering
var (
	blockGlyph = []rune("██")
	emptyGlyph = []rune(" ·")
)

// Package-level settings applied to games created afterwards,
// set by the CLI before the registry creates an instance.
var (
	configPath string
	logger     = log.New(io.Discard)
)

// builtinConfig is the last-resort configuration for a variant.
var builtinConfig = config.DefaultConfig

// SetConfigPath sets a custom YAML config path used by every variant.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger for game lifecycle events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

var titles = map[string]string{
	config.VariantClassic:   "Blockfall (Classic)",
	config.VariantTetromino: "Blockfall (Tetromino)",
}

func init() {
	for _, variant := range config.Variants() {
		registry.Register(variant, func() registry.Game {
			return New(variant)
		})
	}
}

// Game adapts the Engine to the arcade platform: it turns input frames into
// engine commands, divides the platform tick rate down to the gravity
// interval and renders the board into a screen buffer.
type Game struct {
	variant string
	logger  *log.Logger

	cfg     config.GameConfig
	engine  *Engine
	palette Palette
	rng     *rand.Rand
	seed    int64

	tick           uint64
	dropEveryTicks int
	dropTicker     int
	locked         int // Pieces locked since the last start

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a game for the given variant. The engine is built on Reset.
func New(variant string) *Game {
	return &Game{
		variant: variant,
		logger:  logger.With("variant", variant),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name.
func (g *Game) Title() string {
	if t, ok := titles[g.variant]; ok {
		return t
	}
	return "Blockfall (" + g.variant + ")"
}

// Reset loads the variant configuration and starts a new game. A config
// the engine rejects falls back to the built-in one; if that fails too the
// previous configuration is restarted.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.dropTicker = 0
	g.locked = 0
	g.paused = false

	if err := g.start(g.loadConfig()); err != nil {
		g.logger.Error("cannot start game, using defaults", "error", err)
		if err := g.start(builtinConfig(g.variant)); err != nil {
			if g.engine == nil {
				panic(fmt.Sprintf("tetris: built-in %s config is unusable: %v", g.variant, err))
			}
			g.logger.Error("cannot start built-in config, restarting previous game", "error", err)
			g.engine.Start()
		}
	}
	g.dropEveryTicks = dropEveryTicks(g.cfg.Timing.DropInterval(), cfg.TickRate)

	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.logger.Info("game started",
		"seed", cfg.Seed,
		"config", g.cfg.Source,
		"rows", g.cfg.Board.Rows,
		"cols", g.cfg.Board.Cols,
		"pieces", len(g.engine.Catalog()),
		"drop_every_ticks", g.dropEveryTicks,
	)
}

// start builds the catalog and engine for cfg and swaps them in only when
// both succeed.
func (g *Game) start(cfg config.GameConfig) error {
	pieces, palette, err := BuildCatalog(cfg.Pieces)
	if err != nil {
		return fmt.Errorf("piece catalog from %s: %w", cfg.Source, err)
	}
	engine, err := NewEngine(cfg.Board.Rows, cfg.Board.Cols, pieces, g.rng)
	if err != nil {
		return fmt.Errorf("engine from %s: %w", cfg.Source, err)
	}
	g.cfg, g.engine, g.palette = cfg, engine, palette
	return nil
}

func (g *Game) loadConfig() config.GameConfig {
	cfg, err := config.Load(g.variant, configPath)
	if err != nil {
		g.logger.Error("cannot load config, using defaults", "error", err)
		return builtinConfig(g.variant)
	}
	return cfg
}

// dropEveryTicks converts the gravity interval to a number of platform ticks.
func dropEveryTicks(interval time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	n := int(interval * time.Duration(tickRate) / time.Second)
	return max(1, n)
}

// Resize updates the screen dimensions without touching the game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < g.wellWidth() || h < g.wellHeight()+hudHeight
}

func (g *Game) wellWidth() int {
	return g.cfg.Board.Cols*cellWidth + 2
}

func (g *Game) wellHeight() int {
	return g.cfg.Board.Rows + 2
}

// Step advances the game by one platform tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	over := g.engine.State() == GameOver

	// Restart is only honored once the game has ended
	if in.Has(core.ActionRestart) && over {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}

	if over || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Sequence() {
		if cmd, ok := commandFor(a); ok {
			g.engine.Apply(cmd)
		}
	}

	g.dropTicker++
	if g.dropTicker >= g.dropEveryTicks {
		g.dropTicker = 0
		g.gravity()
	}

	return core.StepResult{State: g.State()}
}

// commandFor maps platform actions to engine commands.
func commandFor(a core.Action) (Command, bool) {
	switch a {
	case core.ActionMoveLeft:
		return CommandMoveLeft, true
	case core.ActionMoveRight:
		return CommandMoveRight, true
	case core.ActionSoftDrop:
		return CommandSoftDrop, true
	case core.ActionRotate:
		return CommandRotate, true
	default:
		return 0, false
	}
}

func (g *Game) gravity() {
	res := g.engine.Tick()
	if !res.Locked {
		return
	}

	g.locked++
	if res.Cleared > 0 {
		g.logger.Debug("lines cleared", "lines", res.Cleared, "tick", g.tick)
	}
	if res.GameOver {
		g.logger.Info("game over", "tick", g.tick, "locked", g.locked)
	}
}

func (g *Game) restart() {
	g.engine.Start()
	g.dropTicker = 0
	g.locked = 0
	g.paused = false
	g.logger.Info("game restarted", "tick", g.tick)
}

// Engine exposes the underlying engine for read-only inspection.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Config returns the configuration in effect.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	over := g.engine != nil && g.engine.State() == GameOver
	return core.GameState{
		GameOver: over,
		Paused:   g.paused || g.tooSmall,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	well := g.wellRect(dst)
	dst.DrawBoxColored(well, core.ColorGray)
	g.renderBoard(dst, well)
	g.renderPiece(dst, well)
	g.renderPanel(dst, well)

	switch {
	case g.engine.State() == GameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// wellRect returns the bordered board area centered below the HUD.
func (g *Game) wellRect(dst *core.Screen) core.Rect {
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	well := area.Centered(g.wellWidth(), g.wellHeight())
	well.Y = max(well.Y, hudHeight)
	return well
}

// cellOrigin returns the screen position of board cell (row, col).
func cellOrigin(well core.Rect, row, col int) (int, int) {
	return well.X + 1 + col*cellWidth, well.Y + 1 + row
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(0, 0, fmt.Sprintf(" %s | %s", g.Title(), g.State()))
}

func (g *Game) renderBoard(dst *core.Screen, well core.Rect) {
	for r := range g.engine.Rows() {
		for c := range g.engine.Cols() {
			x, y := cellOrigin(well, r, c)
			tag := g.engine.CellAt(r, c)
			if tag == Empty {
				drawGlyph(dst, x, y, emptyGlyph, core.ColorGray)
				continue
			}
			drawGlyph(dst, x, y, blockGlyph, g.palette.Color(tag))
		}
	}
}

func (g *Game) renderPiece(dst *core.Screen, well core.Rect) {
	if g.engine.State() == GameOver {
		return
	}
	color := g.palette.Color(g.engine.Current().Tag).Bright()
	for p := range g.engine.CurrentCells() {
		if p.Y < 0 {
			continue
		}
		x, y := cellOrigin(well, p.Y, p.X)
		drawGlyph(dst, x, y, blockGlyph, color)
	}
}

// renderPanel draws piece info to the right of the well when there is room.
func (g *Game) renderPanel(dst *core.Screen, well core.Rect) {
	x := well.Right() + panelGap
	if x+panelWidth > dst.Width() {
		return
	}
	current := g.engine.Current()
	lines := []string{
		"Piece: " + current.Name,
		fmt.Sprintf("Board: %dx%d", g.engine.Cols(), g.engine.Rows()),
	}
	for i, line := range lines {
		dst.DrawText(x, well.Y+1+i, line)
	}

	// Current shape preview in its own color
	color := g.palette.Color(current.Tag)
	top := well.Y + 1 + len(lines) + 1
	for off := range current.Shape.Cells() {
		drawGlyph(dst, x+off.X*cellWidth, top+off.Y, blockGlyph, color)
	}
}

func drawGlyph(dst *core.Screen, x, y int, glyph []rune, color core.Color) {
	for i, r := range glyph {
		dst.SetColored(x+i, y, r, color)
	}
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	g.drawCenteredText(dst, line1, box.Y+1)
	g.drawCenteredText(dst, line2, box.Y+3)
}

// drawCenteredText draws text centered horizontally.
func (g *Game) drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	dst.DrawTextCentered(y, text)
}

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Variant string
	Seed    int64
	State   string
	Piece   string
	X       int
	Y       int
	Locked  int
	Paused  bool
	Board   string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	pos := g.engine.Position()
	return Snapshot{
		Tick:    g.tick,
		Variant: g.variant,
		Seed:    g.seed,
		State:   g.engine.State().String(),
		Piece:   g.engine.Current().Name,
		X:       pos.X,
		Y:       pos.Y,
		Locked:  g.locked,
		Paused:  g.paused,
		Board:   g.engine.board.String(),
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Variant: %s, Seed: %d\n", s.Tick, s.Variant, s.Seed)
	fmt.Fprintf(&b, "Piece: %s at (%d, %d), Locked: %d\n", s.Piece, s.X, s.Y, s.Locked)
	fmt.Fprintf(&b, "State: %s, Paused: %v\n", s.State, s.Paused)
	b.WriteString(s.Board)
	return b.String()
}
