package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/tuikit/internal/gui"
	"github.com/matheus3301/tuikit/internal/keys"
	"github.com/matheus3301/tuikit/internal/shortcut"
	"github.com/matheus3301/tuikit/internal/status"
	"github.com/matheus3301/tuikit/internal/store"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// MainWindow is the registry window name of the editor.
const MainWindow = "main"

// DefaultDocument is opened when no document name is given.
const DefaultDocument = "scratch"

// Activation sources recorded in the store.
const (
	SourceButton   = "button"
	SourceMenu     = "menu"
	SourceShortcut = "shortcut"
	SourcePalette  = "palette"
	SourceProgram  = "program"
)

// persistent lists the actions whose checked state survives restarts.
var persistent = []string{"bold", "italic", "underline", "readonly", "wrap"}

// Editor owns the demo document and every action that operates on it. It
// runs on the UI goroutine.
type Editor struct {
	db       *store.DB
	doc      *status.Machine
	registry *keys.Registry
	logger   *zap.Logger
	area     *tview.TextArea
	flash    *Flash

	name      string
	clipboard string
	loading   bool

	actions map[string]*gui.Action
	order   []string
	format  *gui.Group
	quit    func()
}

// NewEditor creates the editor actions and registers them with registry.
func NewEditor(db *store.DB, doc *status.Machine, registry *keys.Registry, logger *zap.Logger) *Editor {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Editor{
		db:       db,
		doc:      doc,
		registry: registry,
		logger:   logger,
		area:     tview.NewTextArea(),
		flash:    &Flash{},
		name:     DefaultDocument,
		actions:  make(map[string]*gui.Action),
		format:   gui.NewGroup(),
	}
	e.area.SetChangedFunc(e.changed)
	e.setupActions()
	return e
}

func (e *Editor) setupActions() {
	e.add("open", gui.NewOpenAction(e.handler("open", func(*gui.Action) { e.reopen() })))
	e.add("save", gui.NewSaveAction(e.handler("save", func(*gui.Action) { e.save() })))
	e.add("cut", gui.NewCutAction(e.handler("cut", func(*gui.Action) { e.Cut() })))
	e.add("copy", gui.NewCopyAction(e.handler("copy", func(*gui.Action) { e.Copy() })))
	e.add("paste", gui.NewPasteAction(e.handler("paste", func(*gui.Action) { e.Paste() })))
	e.add("select_all", gui.NewSelectAllAction(e.handler("select_all", func(*gui.Action) { e.SelectAll() })))

	// Ctrl+I arrives as Tab, so italic lives on Alt.
	for _, f := range []struct {
		id, text string
		keys     string
	}{
		{"bold", "Bold", "Ctrl+B"},
		{"italic", "Italic", "Alt+I"},
		{"underline", "Underline", "Ctrl+U"},
	} {
		a := gui.NewCheckableAction(f.text, e.handler(f.id, func(*gui.Action) { e.applyFormat() }),
			gui.WithShortcut(shortcut.MustParse(f.keys)),
			gui.WithLongText("Display the document in "+strings.ToLower(f.text)),
			gui.WithIcon(&gui.Icon{Name: f.id, Glyph: []rune(f.text)[0]}))
		e.format.Add(a)
		e.add(f.id, a)
	}

	e.add("readonly", gui.NewCheckableAction("Read Only", e.handler("readonly", func(*gui.Action) { e.updateEnabled() }),
		gui.WithShortcut(shortcut.Ctrl('r')),
		gui.WithLongText("Prevent edits to the document"),
		gui.WithIcon(&gui.Icon{Name: "readonly", Glyph: 'R'})))
	e.add("wrap", gui.NewCheckableAction("Word Wrap", e.handler("wrap", func(a *gui.Action) { e.area.SetWrap(a.Checked()) }),
		gui.WithShortcut(shortcut.MustParse("Alt+Z")),
		gui.WithLongText("Wrap long lines at word boundaries"),
		gui.WithIcon(&gui.Icon{Name: "wrap", Glyph: 'W'})))

	e.add("help", gui.NewHelpAction(e.handler("help", func(*gui.Action) {
		e.flash.Set(strings.Join(e.registry.Hints(MainWindow), "  "), flashLong)
	})))
	e.add("about", gui.NewAboutAction("tuikit", nil, e.handler("about", func(*gui.Action) {
		e.flash.Set("tuikit: actions, toolbars and menus for the terminal", flashLong)
	})))
	e.add("quit", gui.NewQuitAction(e.handler("quit", func(*gui.Action) {
		if e.quit != nil {
			e.quit()
		}
	})))

	for _, id := range e.order {
		a := e.actions[id]
		if a.Scope() == gui.ScopeApplicationGlobal {
			e.registry.AddGlobal(id, a)
		} else {
			e.registry.AddWindow(MainWindow, id, a)
		}
	}
	e.area.SetWrap(false)
	e.updateEnabled()
}

func (e *Editor) add(id string, a *gui.Action) {
	e.actions[id] = a
	e.order = append(e.order, id)
}

// handler wraps fn so that every activation is recorded and checkable
// actions triggered outside a presenter still toggle.
func (e *Editor) handler(id string, fn func(*gui.Action)) func(*gui.Action) {
	return func(a *gui.Action) {
		source := activationSource(a.Activator())
		if a.Checkable() && (source == SourceShortcut || source == SourcePalette || source == SourceProgram) {
			toggle(a)
		}
		e.logger.Debug("action activated", zap.String("action", id), zap.String("source", source))
		if e.db != nil {
			if _, err := e.db.RecordActivation(id, source); err != nil {
				e.logger.Warn("record activation failed", zap.String("action", id), zap.Error(err))
			}
		}
		fn(a)
		if a.Checkable() {
			e.persist(a)
		}
	}
}

// toggle flips a checkable action the way a presenter would: a checked
// member of an exclusive group stays checked.
func toggle(a *gui.Action) {
	if g := a.Group(); a.Checked() && g != nil && g.Exclusive() {
		return
	}
	a.SetChecked(!a.Checked())
}

func activationSource(act gui.Activator) string {
	switch act.(type) {
	case *gui.Button:
		return SourceButton
	case *gui.MenuItem:
		return SourceMenu
	case *keys.Registry:
		return SourceShortcut
	case *Editor:
		return SourcePalette
	}
	return SourceProgram
}

// persist saves the checked state of a, or of its whole group, since
// checking one member may have unchecked another.
func (e *Editor) persist(a *gui.Action) {
	if e.db == nil {
		return
	}
	members := []*gui.Action{a}
	if g := a.Group(); g != nil {
		members = g.Actions()
	}
	for _, m := range members {
		id := e.idOf(m)
		if !slices.Contains(persistent, id) {
			continue
		}
		err := e.db.SaveActionState(store.ActionState{ID: id, Checked: m.Checked(), Enabled: m.Enabled()})
		if err != nil {
			e.logger.Warn("save action state failed", zap.String("action", id), zap.Error(err))
		}
	}
}

func (e *Editor) idOf(a *gui.Action) string {
	for _, id := range e.order {
		if e.actions[id] == a {
			return id
		}
	}
	return ""
}

// SetOnQuit sets what the quit action does.
func (e *Editor) SetOnQuit(fn func()) { e.quit = fn }

// Action returns the action registered under id.
func (e *Editor) Action(id string) *gui.Action { return e.actions[id] }

// ActionIDs returns every action id in creation order.
func (e *Editor) ActionIDs() []string { return slices.Clone(e.order) }

// FormatGroup returns the exclusive text style group.
func (e *Editor) FormatGroup() *gui.Group { return e.format }

// TextArea returns the document pane.
func (e *Editor) TextArea() *tview.TextArea { return e.area }

// Flash returns the editor's transient message.
func (e *Editor) Flash() *Flash { return e.flash }

// Document returns the name of the open document.
func (e *Editor) Document() string { return e.name }

// State returns the document state.
func (e *Editor) State() status.State { return e.doc.Current() }

// ReadOnly reports whether edits are blocked.
func (e *Editor) ReadOnly() bool { return e.actions["readonly"].Checked() }

// Restore applies persisted checked states. Unknown ids are deleted from the
// store.
func (e *Editor) Restore() error {
	if e.db == nil {
		return nil
	}
	states, err := e.db.LoadActionStates()
	if err != nil {
		return fmt.Errorf("restore action state: %w", err)
	}
	var errs []error
	for id, st := range states {
		a, ok := e.actions[id]
		if !ok || !a.Checkable() {
			errs = append(errs, e.db.DeleteActionState(id))
			continue
		}
		a.SetChecked(st.Checked)
	}
	e.applyFormat()
	e.area.SetWrap(e.actions["wrap"].Checked())
	e.updateEnabled()
	return errors.Join(errs...)
}

// ApplyKeymap rebinds shortcuts from the configured keymap.
func (e *Editor) ApplyKeymap(keymap map[string]string) error {
	return e.registry.ApplyKeymap(keymap)
}

// Open loads the named document from the store. A missing document opens
// empty.
func (e *Editor) Open(name string) error {
	d, err := e.db.GetDocument(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	body := ""
	if d != nil {
		body = d.Body
	}
	e.loading = true
	e.area.SetText(body, false)
	e.loading = false
	e.name = name
	switch {
	case d != nil:
		err = e.doc.Transition(status.Clean)
	case e.doc.Current() != status.Empty:
		err = e.doc.Transition(status.Empty)
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	e.updateEnabled()
	e.logger.Info("document opened", zap.String("document", name), zap.Bool("exists", d != nil))
	return nil
}

func (e *Editor) reopen() {
	if err := e.Open(e.name); err != nil {
		e.flash.Set(err.Error(), flashLong)
		e.logger.Error("reopen failed", zap.Error(err))
		return
	}
	e.flash.Set("Opened "+e.name, flashShort)
}

// Save writes the document to the store.
func (e *Editor) Save() error {
	if err := e.doc.Transition(status.Saving); err != nil {
		return fmt.Errorf("save %s: %w", e.name, err)
	}
	if err := e.db.SaveDocument(e.name, e.area.GetText()); err != nil {
		_ = e.doc.Transition(status.Error)
		e.updateEnabled()
		return fmt.Errorf("save %s: %w", e.name, err)
	}
	_ = e.doc.Transition(status.Clean)
	e.updateEnabled()
	e.logger.Info("document saved", zap.String("document", e.name))
	return nil
}

func (e *Editor) save() {
	if err := e.Save(); err != nil {
		e.flash.Set(err.Error(), flashLong)
		e.logger.Error("save failed", zap.Error(err))
		return
	}
	e.flash.Set("Saved "+e.name, flashShort)
}

// Cut moves the selection to the clipboard.
func (e *Editor) Cut() {
	text, start, end := e.area.GetSelection()
	if text == "" || e.ReadOnly() {
		return
	}
	e.clipboard = text
	e.area.Replace(start, end, "")
	e.markModified()
}

// Copy puts the selection on the clipboard.
func (e *Editor) Copy() {
	if text, _, _ := e.area.GetSelection(); text != "" {
		e.clipboard = text
		e.updateEnabled()
	}
}

// Paste replaces the selection with the clipboard.
func (e *Editor) Paste() {
	if e.clipboard == "" || e.ReadOnly() {
		return
	}
	_, start, end := e.area.GetSelection()
	e.area.Replace(start, end, e.clipboard)
	e.markModified()
}

// SelectAll selects the whole document.
func (e *Editor) SelectAll() {
	e.area.Select(0, len(e.area.GetText()))
}

// ActivatorRef makes palette activations reference the editor weakly.
func (e *Editor) ActivatorRef() func() gui.Activator { return gui.WeakRef(e) }

// Clipboard returns the editor clipboard.
func (e *Editor) Clipboard() string { return e.clipboard }

// RunCommand activates the best enabled match for query, as typed into the
// command palette.
func (e *Editor) RunCommand(query string) (*gui.Action, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	found := e.registry.Find(MainWindow, query, 1)
	if len(found) == 0 {
		return nil, fmt.Errorf("no command matches %q", query)
	}
	found[0].Activate(e)
	return found[0], nil
}

func (e *Editor) changed() {
	if e.loading {
		return
	}
	e.markModified()
}

func (e *Editor) markModified() {
	if err := e.doc.MarkModified(); err != nil {
		e.logger.Warn("mark modified failed", zap.Error(err))
	}
	e.updateEnabled()
}

func (e *Editor) applyFormat() {
	style := tcell.StyleDefault
	switch e.format.Checked() {
	case e.actions["bold"]:
		style = style.Bold(true)
	case e.actions["italic"]:
		style = style.Italic(true)
	case e.actions["underline"]:
		style = style.Underline(true)
	}
	e.area.SetTextStyle(style)
}

// updateEnabled derives action enablement from the document state.
func (e *Editor) updateEnabled() {
	ro := e.ReadOnly()
	e.actions["save"].SetEnabled(!ro && e.doc.Dirty())
	e.actions["cut"].SetEnabled(!ro)
	e.actions["paste"].SetEnabled(!ro && e.clipboard != "")
}

// AllowKey reports whether the document pane may see ev. Read-only documents
// only accept navigation.
func (e *Editor) AllowKey(ev *tcell.EventKey) bool {
	if !e.ReadOnly() {
		return true
	}
	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight,
		tcell.KeyHome, tcell.KeyEnd, tcell.KeyPgUp, tcell.KeyPgDn:
		return true
	}
	return false
}
