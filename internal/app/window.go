package app

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/tuikit/internal/bus"
	"github.com/matheus3301/tuikit/internal/config"
	"github.com/matheus3301/tuikit/internal/gui"
	"github.com/matheus3301/tuikit/internal/keys"
	"github.com/matheus3301/tuikit/internal/shortcut"
	"github.com/matheus3301/tuikit/internal/status"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const menuWidth = 30

// toolbarLayout lists the toolbar contents by action id; "" is a separator.
var toolbarLayout = []string{
	"open", "save", "",
	"cut", "copy", "paste", "",
	"bold", "italic", "underline", "",
	"readonly", "wrap",
}

// menuLayout lists the menu contents by action id; "" is a separator.
var menuLayout = []string{
	"open", "save", "",
	"cut", "copy", "paste", "select_all", "",
	"bold", "italic", "underline", "",
	"readonly", "wrap", "",
	"palette", "help", "about", "quit",
}

// Window is the demo editor window: a toolbar and a menu presenting the
// editor's actions around the document pane.
type Window struct {
	app      *tview.Application
	editor   *Editor
	registry *keys.Registry
	bus      *bus.Bus
	theme    *gui.Theme
	logger   *zap.Logger

	toolbar    *gui.Toolbar
	menu       *gui.Menu
	hints      *tview.TextView
	statusLine *StatusLine
	palette    *tview.InputField
	paletteAct *gui.Action
	root       *tview.Flex

	done chan struct{}
}

// NewWindow lays out the editor window.
func NewWindow(cfg *config.Config, profile string, editor *Editor, registry *keys.Registry, b *bus.Bus, theme *gui.Theme, logger *zap.Logger) (*Window, error) {
	orientation, err := gui.ParseOrientation(cfg.Toolbar.Orientation)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := []gui.Option{gui.WithTheme(theme), gui.WithEventSink(b), gui.WithLogger(logger)}

	w := &Window{
		app:        tview.NewApplication(),
		editor:     editor,
		registry:   registry,
		bus:        b,
		theme:      theme,
		logger:     logger,
		toolbar:    gui.NewToolbar(orientation, cfg.Toolbar.ButtonSize, opts...),
		menu:       gui.NewMenu("Edit", opts...),
		hints:      tview.NewTextView().SetDynamicColors(true),
		statusLine: NewStatusLine(theme),
		palette:    tview.NewInputField().SetLabel(": "),
		done:       make(chan struct{}),
	}
	w.paletteAct = gui.NewAction("Command Palette", func(*gui.Action) { w.app.SetFocus(w.palette) },
		gui.WithShortcut(shortcut.Ctrl('p')),
		gui.WithLongText("Run a command by name"))
	registry.AddWindow(MainWindow, "palette", w.paletteAct)
	editor.SetOnQuit(w.Stop)

	w.statusLine.SetProfile(profile)
	w.setupBars()
	w.setupPalette()
	w.setupLayout(orientation)
	w.refresh()
	return w, nil
}

func (w *Window) action(id string) *gui.Action {
	if id == "palette" {
		return w.paletteAct
	}
	return w.editor.Action(id)
}

func (w *Window) setupBars() {
	for _, id := range toolbarLayout {
		if id == "" {
			w.toolbar.AddSeparator()
			continue
		}
		w.toolbar.AddAction(w.action(id))
	}
	for _, id := range menuLayout {
		if id == "" {
			w.menu.AddSeparator()
			continue
		}
		w.menu.AddAction(w.action(id))
	}
}

func (w *Window) setupPalette() {
	w.palette.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			a, err := w.editor.RunCommand(w.palette.GetText())
			switch {
			case err != nil:
				w.editor.Flash().Set(err.Error(), flashShort)
			case a != nil:
				w.logger.Debug("palette command", zap.String("action", a.Text()))
			}
		}
		w.palette.SetText("")
		w.app.SetFocus(w.editor.TextArea())
	})
	w.palette.SetAutocompleteFunc(func(text string) []string {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		var entries []string
		for _, a := range w.registry.Find(MainWindow, text, 5) {
			entries = append(entries, a.Text())
		}
		return entries
	})
}

func (w *Window) setupLayout(orientation gui.Orientation) {
	area := w.editor.TextArea()
	area.SetBorder(true)
	area.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if !w.editor.AllowKey(ev) {
			return nil
		}
		return ev
	})

	body := tview.NewFlex().
		AddItem(w.menu, menuWidth, 0, false).
		AddItem(area, 0, 1, true)

	tw, th := w.toolbar.FixedSize()
	var main *tview.Flex
	if orientation == gui.Horizontal {
		main = tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(w.toolbar, th, 0, false).
			AddItem(body, 0, 1, true)
	} else {
		main = tview.NewFlex().
			AddItem(w.toolbar, tw, 0, false).
			AddItem(body, 0, 1, true)
	}

	w.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(main, 0, 1, true).
		AddItem(w.hints, 1, 0, false).
		AddItem(w.statusLine, 1, 0, false).
		AddItem(w.palette, 1, 0, false)

	w.app.SetRoot(w.root, true).EnableMouse(true)
	w.app.SetFocus(area)
	w.app.SetInputCapture(w.capture)
}

// capture routes key events through the shortcut registry before the
// focused primitive sees them.
func (w *Window) capture(ev *tcell.EventKey) *tcell.EventKey {
	focused := w.app.GetFocus()
	if focused == w.palette {
		if ev.Key() == tcell.KeyEscape {
			w.palette.SetText("")
			w.app.SetFocus(w.editor.TextArea())
			return nil
		}
		return ev
	}
	if w.registry.HandleEvent(MainWindow, focused, ev) {
		w.refresh()
		return nil
	}
	// Esc dismisses a pending flash message.
	if ev.Key() == tcell.KeyEscape && w.editor.Flash().Get() != "" {
		w.editor.Flash().Clear()
		w.refresh()
		return nil
	}
	return ev
}

// refresh redraws the hint bar and status line from current state.
func (w *Window) refresh() {
	w.hints.Clear()
	hints := w.registry.Hints(MainWindow)
	for i, h := range hints {
		hints[i] = "[" + gui.ColorName(w.theme.MenuKeyColor) + "]" + tview.Escape(h) + "[-]"
	}
	w.hints.SetText(" " + strings.Join(hints, "  "))
	w.statusLine.SetDocument(w.editor.Document(), w.editor.State())
	w.statusLine.SetFlash(w.editor.Flash().Get())
}

// handle applies a bus event on the UI goroutine.
func (w *Window) handle(evt bus.Event) {
	switch evt.Kind {
	case gui.EventActionEnter:
		if p, ok := evt.Payload.(gui.ActionEvent); ok {
			text := p.LongText
			if text == "" {
				text = p.Tooltip
			}
			w.statusLine.SetHover(text)
		}
	case gui.EventActionLeave:
		w.statusLine.SetHover("")
	case status.KindChanged:
		if c, ok := evt.Payload.(status.StatusChange); ok {
			w.logger.Debug("document state changed",
				zap.String("from", string(c.From)),
				zap.String("to", string(c.To)))
		}
	}
	w.refresh()
}

func (w *Window) watch(actions, docs <-chan bus.Event) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for actions != nil || docs != nil {
		var evt bus.Event
		var ok bool
		select {
		case evt, ok = <-actions:
			if !ok {
				actions = nil
				continue
			}
		case evt, ok = <-docs:
			if !ok {
				docs = nil
				continue
			}
		case <-ticker.C:
			w.app.QueueUpdateDraw(w.refresh)
			continue
		case <-w.done:
			return
		}
		w.app.QueueUpdateDraw(func() { w.handle(evt) })
	}
}

// Run subscribes to toolkit events and blocks until the window closes.
func (w *Window) Run() error {
	actionEvents, unsubActions := w.bus.Subscribe("action.", 64)
	docEvents, unsubDocs := w.bus.Subscribe("document.", 16)
	defer unsubActions()
	defer unsubDocs()

	go w.watch(actionEvents, docEvents)
	defer close(w.done)

	return w.app.Run()
}

// Stop closes the window.
func (w *Window) Stop() {
	w.app.Stop()
}
