// Package app wires the key bridge together: configuration, the session
// listener, the shell transport, and the tcell screen that displays output
// and sources key events.
package app

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybridge/internal/clipboard"
	"github.com/dshills/keybridge/internal/config"
	"github.com/dshills/keybridge/internal/emu"
	"github.com/dshills/keybridge/internal/input/keymap"
	"github.com/dshills/keybridge/internal/logging"
	"github.com/dshills/keybridge/internal/session"
	"github.com/dshills/keybridge/internal/term"
	"github.com/dshills/keybridge/internal/transport"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// Shell is the command to run on the pseudo-terminal.
	Shell string

	// LogFile receives log output. Empty disables logging, since the
	// terminal itself is in raw mode while the application runs.
	LogFile string

	// LogLevel sets the logging verbosity.
	LogLevel string
}

// desktopDevice reports the fixed keyboard posture of a desktop terminal.
type desktopDevice struct{}

func (desktopDevice) HardwareKeyboard() bool { return true }
func (desktopDevice) KeyboardHidden() bool   { return false }

// Application coordinates one bridged shell session.
type Application struct {
	opts Options
	log  *logging.Logger

	cfg     *config.Config
	watcher *config.Watcher

	screen   tcell.Screen
	grid     *grid
	notifier *notifier
	listener *session.Listener
	pty      *transport.PTY

	logClose io.Closer
	running  atomic.Bool
	done     chan struct{}
	doneOnce sync.Once
}

// New creates an application with the given options. Configuration is loaded
// immediately; the screen and shell start in Run.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts: opts,
		done: make(chan struct{}),
	}

	if err := app.initLogging(); err != nil {
		return nil, err
	}
	if err := app.initConfig(); err != nil {
		return nil, err
	}

	app.listener = session.New(app.cfg, desktopDevice{}, app.log)
	app.grid = newGrid()
	return app, nil
}

func (app *Application) initLogging() error {
	level := logging.ParseLevel(app.opts.LogLevel)

	if app.opts.LogFile == "" {
		app.log = logging.Discard
		return nil
	}

	f, err := os.OpenFile(app.opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return NewComponentError("logging", "open log file", err)
	}
	app.logClose = f
	app.log = logging.New(f, level)
	return nil
}

func (app *Application) initConfig() error {
	settings, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return NewComponentError("config", "load", err)
	}
	app.cfg = config.New(settings)

	if app.opts.ConfigPath != "" {
		app.watcher, err = config.Watch(app.opts.ConfigPath, app.cfg, app.log)
		if err != nil {
			// Live reload is best-effort; the session runs without it.
			app.log.Warn("config watch disabled: %v", err)
		}
	}
	return nil
}

// Run starts the screen and the shell, then processes events until the shell
// exits or Shutdown is called. A normal shell exit returns ErrQuit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return NewComponentError("screen", "create", err)
	}
	if err := screen.Init(); err != nil {
		return NewComponentError("screen", "init", err)
	}
	app.screen = screen
	defer screen.Fini()

	app.notifier = newNotifier(screen, app.log)
	cols, rows := screen.Size()

	pty, err := transport.StartPTY(exec.Command(app.opts.Shell), uint16(rows), uint16(cols), app.log, app.signalDone)
	if err != nil {
		return NewComponentError("transport", "start shell", err)
	}
	app.pty = pty

	app.wireSession()

	go app.readShell()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	app.draw()

	for {
		select {
		case <-app.done:
			return ErrQuit
		case <-app.notifier.redraw:
			app.draw()
		case ev := <-events:
			app.handleEvent(ev)
		}
	}
}

// wireSession attaches all collaborators to the listener.
func (app *Application) wireSession() {
	app.listener.SetTransport(app.pty)
	app.listener.SetEmulator(emu.NewVTKeys(app.pty, app.log))
	app.listener.SetDisplay(app.notifier)
	app.listener.SetScreen(app.grid)

	sys := clipboard.NewSystem()
	if sys.Available() {
		app.listener.SetClipboard(sys)
	} else {
		app.log.Info("system clipboard unavailable, using in-memory clipboard")
		app.listener.SetClipboard(clipboard.NewMemory())
	}
}

// readShell pumps shell output into the display grid.
func (app *Application) readShell() {
	buf := make([]byte, 4096)
	for {
		n, err := app.pty.Read(buf)
		if n > 0 {
			_, _ = app.grid.Write(buf[:n])
			app.notifier.RequestRedraw()
		}
		if err != nil {
			app.log.Debug("shell read ended: %v", err)
			return
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		app.handleKey(tev)
	case *tcell.EventResize:
		cols, rows := tev.Size()
		if err := app.pty.Resize(uint16(rows), uint16(cols)); err != nil {
			app.log.Debug("resize: %v", err)
		}
		app.screen.Sync()
		app.draw()
	}
}

func (app *Application) handleKey(ev *tcell.EventKey) {
	// F11 toggles the screen selection mode; it has no session equivalent.
	if ev.Key() == tcell.KeyF11 {
		app.toggleSelection()
		return
	}

	kev, ok := term.Translate(ev, app.layout())
	if !ok {
		app.log.Debug("untranslatable key %v", ev.Key())
		return
	}

	outcome := app.listener.HandleKey(kev)
	app.log.Debug("key %s -> %s", kev, outcome)
	app.draw()
}

func (app *Application) toggleSelection() {
	if app.listener.SelectingForCopy() {
		app.listener.SetSelectingForCopy(false, 0, 0)
	} else {
		rows := app.grid.Rows()
		row := len(rows) - 1
		if row < 0 {
			row = 0
		}
		app.listener.SetSelectingForCopy(true, row, 0)
	}
	app.draw()
}

func (app *Application) layout() *keymap.Layout {
	layout, err := app.listener.Layouts().Get(app.cfg.KeymapProfile())
	if err != nil {
		layout, _ = app.listener.Layouts().Get("us")
	}
	return layout
}

// draw repaints the output grid and the status line.
func (app *Application) draw() {
	app.screen.Clear()
	cols, rows := app.screen.Size()
	if rows < 2 {
		app.screen.Show()
		return
	}

	view := rows - 1
	lines := app.grid.Rows()
	start := 0
	if len(lines) > view {
		start = len(lines) - view
	}

	style := tcell.StyleDefault
	for y, line := range lines[start:] {
		drawText(app.screen, 0, y, cols, line, style)
	}

	if app.listener.SelectingForCopy() {
		app.drawSelection(start)
	}

	app.drawStatus(cols, rows-1)
	app.screen.Show()
}

// drawSelection highlights the selection cursor cell relative to the first
// visible grid row.
func (app *Application) drawSelection(firstRow int) {
	row, col := app.listener.Selection().Pos()
	y := row - firstRow
	if y < 0 {
		return
	}

	ch := ' '
	if line := app.grid.Line(row, col, col); line != "" {
		ch = []rune(line)[0]
	}
	app.screen.SetContent(col, y, ch, nil, tcell.StyleDefault.Reverse(true))
}

// drawStatus renders the modifier indicators, profile and charset.
func (app *Application) drawStatus(cols, y int) {
	mode := ""
	if app.listener.SelectingForCopy() {
		row, col := app.listener.Selection().Pos()
		mode = fmt.Sprintf(" SELECT %d,%d", row, col)
	}

	status := fmt.Sprintf(" %s | %s | %s%s",
		app.cfg.KeymapProfile(), app.cfg.Charset(), app.listener.MetaState(), mode)
	drawText(app.screen, 0, y, cols, status, tcell.StyleDefault.Reverse(true))
}

func drawText(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= maxWidth {
			break
		}
		s.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < maxWidth; col++ {
		s.SetContent(col, y, ' ', nil, style)
	}
}

func (app *Application) signalDone() {
	app.doneOnce.Do(func() { close(app.done) })
}

// Shutdown releases all resources. Safe to call more than once.
func (app *Application) Shutdown() {
	if app.watcher != nil {
		_ = app.watcher.Close()
		app.watcher = nil
	}
	if app.pty != nil {
		app.pty.ReportDisconnect()
	}
	if app.logClose != nil {
		_ = app.logClose.Close()
		app.logClose = nil
	}
	app.signalDone()
}
