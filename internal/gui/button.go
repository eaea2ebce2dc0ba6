package gui

import (
	"strings"
	"weak"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// ButtonStyle selects how a button paints itself.
type ButtonStyle int

const (
	// ButtonNormal always shows the text, prefixed by the icon if any.
	ButtonNormal ButtonStyle = iota
	// ButtonCoolbar shows only the icon when there is one. Used by toolbars.
	ButtonCoolbar
)

// Button is a clickable primitive. Bound to an Action it mirrors the action's
// text, icon, enabled and checked state and forwards clicks to it.
type Button struct {
	*tview.Box

	text      string
	icon      *Icon
	tooltip   string
	enabled   bool
	checkable bool
	checked   bool
	exclusive bool
	hovered   bool
	style     ButtonStyle

	fixedWidth  int
	fixedHeight int

	action weak.Pointer[Action]
	theme  *Theme
	sink   EventSink

	onClick  func(mods tcell.ModMask)
	onToggle func(checked bool)
}

// NewButton creates an unbound, enabled button.
func NewButton(text string, opts ...Option) *Button {
	cfg := newWidgetConfig(opts)
	b := &Button{
		Box:     tview.NewBox(),
		text:    text,
		tooltip: text,
		enabled: true,
		theme:   cfg.theme,
		sink:    cfg.sink,
	}
	b.SetBackgroundColor(cfg.theme.ButtonColor)
	return b
}

// NewActionButton creates a button bound to a.
func NewActionButton(a *Action, opts ...Option) *Button {
	b := NewButton("", opts...)
	b.SetAction(a)
	return b
}

// Action returns the bound action, or nil.
func (b *Button) Action() *Action {
	return b.action.Value()
}

// SetAction binds b to a, unbinding any previous action. nil unbinds.
func (b *Button) SetAction(a *Action) {
	old := b.Action()
	if old == a {
		return
	}
	if old != nil {
		old.unregisterButton(b)
	}
	if a == nil {
		b.action = weak.Pointer[Action]{}
		return
	}
	b.action = weak.Make(a)
	a.registerButton(b)
	b.updateFromAction(a)
}

// ClearAction unbinds b. The last mirrored state stays on screen.
func (b *Button) ClearAction() {
	b.SetAction(nil)
}

// Destroy detaches b from its action. Containers call it when they drop b.
func (b *Button) Destroy() {
	if b.hovered {
		b.Leave()
	}
	b.ClearAction()
	b.onClick = nil
	b.onToggle = nil
}

func (b *Button) actionDestroyed(a *Action) {
	if b.Action() == a {
		b.action = weak.Pointer[Action]{}
	}
}

func (b *Button) updateFromAction(a *Action) {
	b.text = a.text
	b.icon = a.icon
	b.enabled = a.enabled
	b.checkable = a.checkable
	g := a.Group()
	b.exclusive = g != nil && g.Exclusive()
	b.tooltip = Tooltip(a)
	b.setCheckedState(a.checkable && a.checked)
}

func (b *Button) setCheckedState(checked bool) {
	if b.checked == checked {
		return
	}
	b.checked = checked
	if b.onToggle != nil {
		b.onToggle(checked)
	}
}

func (b *Button) Text() string { return b.text }
func (b *Button) Icon() *Icon { return b.icon }
func (b *Button) Tooltip() string { return b.tooltip }
func (b *Button) Enabled() bool { return b.enabled }
func (b *Button) Checkable() bool { return b.checkable }
func (b *Button) Checked() bool { return b.checked }
func (b *Button) Exclusive() bool { return b.exclusive }
func (b *Button) Hovered() bool { return b.hovered }
func (b *Button) ButtonStyle() ButtonStyle { return b.style }

// SetButtonStyle selects normal or coolbar painting.
func (b *Button) SetButtonStyle(style ButtonStyle) { b.style = style }

// SetText sets the label. On a bound button it renames the action.
func (b *Button) SetText(text string) {
	if a := b.Action(); a != nil {
		a.SetText(text)
		return
	}
	b.text = text
	b.tooltip = text
}

// SetIcon sets the icon. On a bound button it changes the action's icon.
func (b *Button) SetIcon(icon *Icon) {
	if a := b.Action(); a != nil {
		a.SetIcon(icon)
		return
	}
	b.icon = icon
}

// SetEnabled enables or disables b. On a bound button it changes the action.
func (b *Button) SetEnabled(enabled bool) {
	if a := b.Action(); a != nil {
		a.SetEnabled(enabled)
		return
	}
	b.enabled = enabled
}

// SetCheckable is only meaningful on unbound buttons; bound buttons follow
// their action.
func (b *Button) SetCheckable(checkable bool) {
	if a := b.Action(); a != nil {
		a.SetCheckable(checkable)
		return
	}
	b.checkable = checkable
	if !checkable {
		b.setCheckedState(false)
	}
}

// SetExclusive marks an unbound button as part of a mutually exclusive set.
func (b *Button) SetExclusive(exclusive bool) {
	if b.Action() != nil {
		return
	}
	b.exclusive = exclusive
}

// SetChecked checks or unchecks b. On a bound button it changes the action.
func (b *Button) SetChecked(checked bool) {
	if a := b.Action(); a != nil {
		a.SetChecked(checked)
		return
	}
	if !b.checkable {
		return
	}
	b.setCheckedState(checked)
}

// SetOnClick sets a callback run on every accepted click, before the action
// is activated.
func (b *Button) SetOnClick(fn func(mods tcell.ModMask)) { b.onClick = fn }

// SetOnToggle sets a callback run whenever the checked state changes.
func (b *Button) SetOnToggle(fn func(checked bool)) { b.onToggle = fn }

// SetFixedSize records the size a container must give b.
func (b *Button) SetFixedSize(width, height int) {
	b.fixedWidth, b.fixedHeight = width, height
}

// FixedSize returns the size set by SetFixedSize.
func (b *Button) FixedSize() (width, height int) {
	return b.fixedWidth, b.fixedHeight
}

// Click handles a click or keyboard press. A disabled button activates
// nothing and reports whether the input was swallowed anyway. An enabled
// checkable button toggles first (a checked member of an exclusive group
// stays checked), then the click callback runs, then the action activates.
func (b *Button) Click(mods tcell.ModMask) bool {
	if !b.enabled {
		a := b.Action()
		return a != nil && a.swallowKeyEventWhenDisabled
	}
	if b.checkable {
		if b.checked && !b.uncheckable() {
			return true
		}
		b.SetChecked(!b.checked)
	}
	if b.onClick != nil {
		b.onClick(mods)
	}
	if a := b.Action(); a != nil {
		a.Activate(b)
	}
	return true
}

func (b *Button) uncheckable() bool {
	a := b.Action()
	if a == nil {
		return !b.exclusive
	}
	g := a.Group()
	return g == nil || !g.Exclusive()
}

// Enter is called when the pointer moves onto b.
func (b *Button) Enter() {
	if b.hovered {
		return
	}
	b.hovered = true
	postActionEvent(b.sink, EventActionEnter, b.Action())
}

// Leave is called when the pointer moves off b.
func (b *Button) Leave() {
	if !b.hovered {
		return
	}
	b.hovered = false
	postActionEvent(b.sink, EventActionLeave, b.Action())
}

// Label is the text painted on the button.
func (b *Button) Label() string {
	switch {
	case b.icon != nil && (b.style == ButtonCoolbar || b.text == ""):
		return string(b.icon.Glyph)
	case b.icon != nil:
		return string(b.icon.Glyph) + " " + b.text
	}
	return b.text
}

func (b *Button) paintStyle() tcell.Style {
	bg := b.theme.ButtonColor
	fg := b.theme.ButtonTextColor
	switch {
	case b.checked:
		bg = b.theme.ButtonCheckedColor
	case b.hovered && b.enabled:
		bg = b.theme.ButtonHoverColor
	}
	if b.HasFocus() && b.enabled {
		fg = b.theme.ButtonFocusColor
	}
	if !b.enabled {
		fg = b.theme.ButtonDisabledTextColor
	}
	style := tcell.StyleDefault.Background(bg).Foreground(fg)
	if !b.enabled {
		style = style.Dim(true)
	}
	if b.checked && b.exclusive {
		style = style.Bold(true)
	}
	return style
}

// Draw implements tview.Primitive.
func (b *Button) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
	x, y, width, height := b.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	style := b.paintStyle()
	fillRect(screen, x, y, width, height, style)
	printCentered(screen, x, y+height/2, width, b.Label(), style)
}

// InputHandler implements tview.Primitive. Enter and Space click.
func (b *Button) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return b.WrapInputHandler(func(event *tcell.EventKey, _ func(p tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyEnter:
			b.Click(event.Modifiers())
		case tcell.KeyRune:
			if event.Rune() == ' ' {
				b.Click(event.Modifiers())
			}
		}
	})
}

// MouseHandler implements tview.Primitive.
func (b *Button) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return b.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		if !b.InRect(event.Position()) {
			b.Leave()
			return false, nil
		}
		switch action {
		case tview.MouseMove:
			b.Enter()
		case tview.MouseLeftDown:
			setFocus(b)
			consumed = true
		case tview.MouseLeftClick:
			b.Click(event.Modifiers())
			consumed = true
		}
		return
	})
}

// Tooltip returns the action text followed by its shortcut, e.g.
// "Save (Ctrl+S)". Invalid shortcuts are omitted.
func Tooltip(a *Action) string {
	var sb strings.Builder
	sb.WriteString(a.text)
	if a.shortcut.IsValid() {
		sb.WriteString(" (")
		sb.WriteString(a.shortcut.String())
		sb.WriteString(")")
	}
	return sb.String()
}
