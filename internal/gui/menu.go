package gui

import (
	"weak"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// MenuItem presents an Action as one row of a Menu.
type MenuItem struct {
	text      string
	icon      *Icon
	shortcut  string
	enabled   bool
	checkable bool
	checked   bool
	exclusive bool

	action weak.Pointer[Action]
}

// NewMenuItem creates a menu item bound to a.
func NewMenuItem(a *Action) *MenuItem {
	m := &MenuItem{enabled: true}
	m.SetAction(a)
	return m
}

// Action returns the bound action, or nil.
func (m *MenuItem) Action() *Action {
	return m.action.Value()
}

// SetAction binds m to a, unbinding any previous action. nil unbinds.
func (m *MenuItem) SetAction(a *Action) {
	old := m.Action()
	if old == a {
		return
	}
	if old != nil {
		old.unregisterMenuItem(m)
	}
	if a == nil {
		m.action = weak.Pointer[Action]{}
		return
	}
	m.action = weak.Make(a)
	a.registerMenuItem(m)
	m.updateFromAction(a)
}

// Destroy detaches m from its action.
func (m *MenuItem) Destroy() {
	m.SetAction(nil)
}

func (m *MenuItem) actionDestroyed(a *Action) {
	if m.Action() == a {
		m.action = weak.Pointer[Action]{}
	}
}

func (m *MenuItem) updateFromAction(a *Action) {
	m.text = a.text
	m.icon = a.icon
	m.shortcut = a.shortcut.String()
	m.enabled = a.enabled
	m.checkable = a.checkable
	m.checked = a.checkable && a.checked
	g := a.Group()
	m.exclusive = g != nil && g.Exclusive()
}

func (m *MenuItem) Text() string { return m.text }
func (m *MenuItem) Icon() *Icon { return m.icon }
func (m *MenuItem) Shortcut() string { return m.shortcut }
func (m *MenuItem) Enabled() bool { return m.enabled }
func (m *MenuItem) Checkable() bool { return m.checkable }
func (m *MenuItem) Checked() bool { return m.checked }
func (m *MenuItem) Exclusive() bool { return m.exclusive }

// Activate runs the bound action the way a click on a button would: checkable
// items toggle first, checked exclusive items stay checked. It reports
// whether the input was consumed.
func (m *MenuItem) Activate() bool {
	a := m.Action()
	if a == nil {
		return false
	}
	if !m.enabled {
		return a.swallowKeyEventWhenDisabled
	}
	if a.checkable {
		g := a.Group()
		if !(a.checked && g != nil && g.Exclusive()) {
			a.SetChecked(!a.checked)
		}
	}
	a.Activate(m)
	return true
}

func (m *MenuItem) checkMark() string {
	switch {
	case !m.checkable:
		return "   "
	case m.exclusive && m.checked:
		return "(•)"
	case m.exclusive:
		return "( )"
	case m.checked:
		return "[x]"
	}
	return "[ ]"
}

// Menu is a vertical list of menu items and separators.
type Menu struct {
	*tview.Box

	entries  []*MenuItem // nil entries are separators
	selected int
	theme    *Theme
	sink     EventSink
	logger   *zap.Logger
}

// NewMenu creates an empty menu.
func NewMenu(title string, opts ...Option) *Menu {
	cfg := newWidgetConfig(opts)
	m := &Menu{
		Box:      tview.NewBox(),
		selected: -1,
		theme:    cfg.theme,
		sink:     cfg.sink,
		logger:   cfg.logger,
	}
	m.SetBorder(true)
	m.SetTitle(" " + title + " ")
	m.SetBorderColor(cfg.theme.SeparatorColor)
	m.SetTitleColor(cfg.theme.MenuKeyColor)
	m.SetBackgroundColor(cfg.theme.MenuBgColor)
	return m
}

// AddAction appends an item bound to a and returns it.
func (m *Menu) AddAction(a *Action) *MenuItem {
	item := NewMenuItem(a)
	m.entries = append(m.entries, item)
	if m.selected < 0 {
		m.selected = len(m.entries) - 1
	}
	m.logger.Debug("menu item added", zap.String("action", a.Text()))
	return item
}

// AddSeparator appends a divider line.
func (m *Menu) AddSeparator() {
	m.entries = append(m.entries, nil)
}

// Items returns the menu items, without separators.
func (m *Menu) Items() []*MenuItem {
	var out []*MenuItem
	for _, e := range m.entries {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of rows, separators included.
func (m *Menu) Len() int { return len(m.entries) }

// Selected returns the highlighted item, or nil.
func (m *Menu) Selected() *MenuItem {
	if m.selected < 0 || m.selected >= len(m.entries) {
		return nil
	}
	return m.entries[m.selected]
}

// Select highlights row i. Out-of-range rows and separators are ignored.
func (m *Menu) Select(i int) {
	if i < 0 || i >= len(m.entries) || m.entries[i] == nil || i == m.selected {
		return
	}
	if prev := m.Selected(); prev != nil {
		postActionEvent(m.sink, EventActionLeave, prev.Action())
	}
	m.selected = i
	postActionEvent(m.sink, EventActionEnter, m.entries[i].Action())
}

// move walks the selection by step, skipping separators and wrapping.
func (m *Menu) move(step int) {
	n := len(m.entries)
	if n == 0 {
		return
	}
	i := m.selected
	for range n {
		i = (i + step + n) % n
		if m.entries[i] != nil {
			m.Select(i)
			return
		}
	}
}

// Clear destroys every item. The actions are untouched.
func (m *Menu) Clear() {
	for _, e := range m.entries {
		if e != nil {
			e.Destroy()
		}
	}
	m.entries = nil
	m.selected = -1
}

// Draw implements tview.Primitive.
func (m *Menu) Draw(screen tcell.Screen) {
	m.DrawForSubclass(screen, m)
	x, y, width, height := m.GetInnerRect()
	if width <= 0 {
		return
	}
	base := tcell.StyleDefault.Background(m.theme.MenuBgColor).Foreground(m.theme.FgColor)
	for row, e := range m.entries {
		if row >= height {
			break
		}
		if e == nil {
			sep := tcell.StyleDefault.Background(m.theme.MenuBgColor).Foreground(m.theme.SeparatorColor)
			for col := 0; col < width; col++ {
				screen.SetContent(x+col, y+row, tview.BoxDrawingsLightHorizontal, nil, sep)
			}
			continue
		}
		style := base
		if row == m.selected && m.HasFocus() {
			style = style.Background(m.theme.MenuSelectedBgColor).Foreground(m.theme.BgColor)
		}
		if !e.enabled {
			style = style.Foreground(m.theme.ButtonDisabledTextColor).Dim(true)
		}
		fillRect(screen, x, y+row, width, 1, style)
		label := e.checkMark() + " "
		if e.icon != nil {
			label += string(e.icon.Glyph) + " "
		}
		label += e.text
		used := printText(screen, x, y+row, width, label, style)
		if e.shortcut != "" {
			sw := runewidth.StringWidth(e.shortcut)
			if used+1+sw <= width {
				printText(screen, x+width-sw, y+row, sw, e.shortcut, style.Foreground(m.theme.MenuShortcutColor))
			}
		}
	}
}

// InputHandler implements tview.Primitive.
func (m *Menu) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return m.WrapInputHandler(func(event *tcell.EventKey, _ func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyUp:
			m.move(-1)
		case tcell.KeyDown:
			m.move(1)
		case tcell.KeyEnter:
			if item := m.Selected(); item != nil {
				item.Activate()
			}
		}
	})
}

// MouseHandler implements tview.Primitive.
func (m *Menu) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return m.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		px, py := event.Position()
		if !m.InRect(px, py) {
			return false, nil
		}
		_, y, _, _ := m.GetInnerRect()
		row := py - y
		switch action {
		case tview.MouseMove:
			m.Select(row)
		case tview.MouseLeftDown:
			setFocus(m)
			consumed = true
		case tview.MouseLeftClick:
			m.Select(row)
			if item := m.Selected(); item != nil && m.selected == row {
				item.Activate()
			}
			consumed = true
		}
		return
	})
}
