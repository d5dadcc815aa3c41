// Package tui implements the pennypad terminal interface: a session log
// of entered transactions behind an expandable entry sheet, in the Elm
// model/update/view shape Bubble Tea expects.
package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jask/pennypad/internal/config"
	"github.com/jask/pennypad/internal/transaction"
)

// App is the top-level model. While the sheet is collapsed it shows the
// session log and the add trigger; open, the sheet is composited over
// the log, bottom-anchored, at its spring-animated height.
type App struct {
	cfg  config.Config
	log  zerolog.Logger
	keys keyMap

	width  int
	height int

	status    string
	statusErr bool
	quitting  bool

	records []transaction.Record
	cursor  int

	sheet sheet

	now func() time.Time
}

// New builds the application model. The logger may be zerolog.Nop().
func New(cfg config.Config, logger zerolog.Logger) App {
	return App{
		cfg:    cfg,
		log:    logger,
		keys:   newKeyMap(),
		status: "Ready",
		width:  100,
		height: 32,
		sheet:  newSheet(cfg),
		now:    time.Now,
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(err error) {
	a.status = err.Error()
	a.statusErr = true
}

// bodyHeight is the rows left between the header and the status bar.
func (a App) bodyHeight() int {
	h := a.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

// sheetTarget is the height, in rows, the spring is pulling towards.
func (a App) sheetTarget() float64 {
	if !a.sheet.open {
		return 0
	}
	body := a.bodyHeight()
	if a.sheet.fullScreen {
		return float64(body)
	}
	natural := lipgloss.Height(a.sheet.render(a.width, body, a.cfg.UI.CurrencySymbol))
	if natural > body {
		natural = body
	}
	return float64(natural)
}

// animate pulls the rendered height towards the current target, either
// instantly (reduce_motion) or by starting the frame-tick loop.
func (a *App) animate() tea.Cmd {
	if a.cfg.UI.ReduceMotion {
		a.sheet.pos = a.sheetTarget()
		a.sheet.vel = 0
		a.sheet.animating = false
		return nil
	}
	if a.sheet.animating {
		// tick loop already running; it picks up the new target
		return nil
	}
	a.sheet.animating = true
	return frameTick()
}

func (a App) stepSpring() (App, tea.Cmd) {
	if !a.sheet.animating {
		return a, nil
	}
	target := a.sheetTarget()
	a.sheet.pos, a.sheet.vel = a.sheet.spring.Update(a.sheet.pos, a.sheet.vel, target)
	if math.Abs(a.sheet.pos-target) < settleTolerance && math.Abs(a.sheet.vel) < settleTolerance {
		a.sheet.pos = target
		a.sheet.vel = 0
		a.sheet.animating = false
		return a, nil
	}
	return a, frameTick()
}

// Records exposes the session log, newest last.
func (a App) Records() []transaction.Record {
	return a.records
}
