package gui

import (
	"fmt"
	"weak"

	"github.com/matheus3301/tuikit/internal/shortcut"
)

// Scope controls where an action's shortcut is live.
type Scope int

const (
	ScopeNone Scope = iota
	ScopeWidgetLocal
	ScopeWindowLocal
	ScopeApplicationGlobal
)

func (s Scope) String() string {
	switch s {
	case ScopeNone:
		return "none"
	case ScopeWidgetLocal:
		return "widget"
	case ScopeWindowLocal:
		return "window"
	case ScopeApplicationGlobal:
		return "application"
	}
	return fmt.Sprintf("Scope(%d)", int(s))
}

// Activator is whatever triggered an activation: a Button, a MenuItem, a
// shortcut registry, or nil.
type Activator any

// WeakActivator is implemented by activators the action should only
// reference weakly. Buttons and menu items are always held weakly.
type WeakActivator interface {
	ActivatorRef() func() Activator
}

// Icon is a glyph drawn in place of, or next to, an action's text.
type Icon struct {
	Name  string
	Glyph rune
}

// Action is a user command that any number of buttons and menu items can
// present at once. All references between an action and its presenters are
// weak: the action does not keep elements alive and vice versa.
//
// Actions are not safe for concurrent use; they belong to the UI goroutine.
type Action struct {
	text     string
	longText string
	icon     *Icon
	shortcut shortcut.Shortcut
	scope    Scope

	enabled                     bool
	checkable                   bool
	checked                     bool
	swallowKeyEventWhenDisabled bool

	onActivation func(*Action)

	buttons   []weak.Pointer[Button]
	menuItems []weak.Pointer[MenuItem]
	group     weak.Pointer[Group]
	activator func() Activator

	// settingChecked is set while SetChecked propagates.
	settingChecked bool
}

// ActionOption configures an Action at construction.
type ActionOption func(*Action)

// WithShortcut sets the action's shortcut.
func WithShortcut(s shortcut.Shortcut) ActionOption {
	return func(a *Action) { a.shortcut = s }
}

// WithIcon sets the action's icon.
func WithIcon(icon *Icon) ActionOption {
	return func(a *Action) { a.icon = icon }
}

// WithLongText sets the status-line description.
func WithLongText(text string) ActionOption {
	return func(a *Action) { a.longText = text }
}

// WithScope sets the shortcut scope.
func WithScope(s Scope) ActionOption {
	return func(a *Action) { a.scope = s }
}

// WithSwallowKeyEventWhenDisabled makes a disabled action still consume its
// shortcut and clicks.
func WithSwallowKeyEventWhenDisabled() ActionOption {
	return func(a *Action) { a.swallowKeyEventWhenDisabled = true }
}

// NewAction creates an enabled, non-checkable action.
func NewAction(text string, onActivation func(*Action), opts ...ActionOption) *Action {
	a := &Action{
		text:         text,
		enabled:      true,
		onActivation: onActivation,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewCheckableAction creates an enabled, unchecked, checkable action.
func NewCheckableAction(text string, onActivation func(*Action), opts ...ActionOption) *Action {
	a := NewAction(text, onActivation, opts...)
	a.checkable = true
	return a
}

func (a *Action) Text() string { return a.text }
func (a *Action) LongText() string { return a.longText }
func (a *Action) Icon() *Icon { return a.icon }
func (a *Action) Shortcut() shortcut.Shortcut { return a.shortcut }
func (a *Action) Scope() Scope { return a.scope }
func (a *Action) Enabled() bool { return a.enabled }
func (a *Action) Checkable() bool { return a.checkable }
func (a *Action) SwallowKeyEventWhenDisabled() bool { return a.swallowKeyEventWhenDisabled }

// SetText updates the text on every presenter.
func (a *Action) SetText(text string) {
	if a.text == text {
		return
	}
	a.text = text
	a.notify()
}

// SetLongText updates the status-line description.
func (a *Action) SetLongText(text string) {
	a.longText = text
}

// SetIcon updates the icon on every presenter. nil removes it.
func (a *Action) SetIcon(icon *Icon) {
	if a.icon == icon {
		return
	}
	a.icon = icon
	a.notify()
}

// SetShortcut replaces the shortcut and refreshes tooltips.
func (a *Action) SetShortcut(s shortcut.Shortcut) {
	if a.shortcut == s {
		return
	}
	a.shortcut = s
	a.notify()
}

// SetScope changes where the shortcut is live.
func (a *Action) SetScope(s Scope) {
	a.scope = s
}

// SetSwallowKeyEventWhenDisabled sets whether a disabled action still
// consumes input aimed at it.
func (a *Action) SetSwallowKeyEventWhenDisabled(swallow bool) {
	a.swallowKeyEventWhenDisabled = swallow
}

// SetCheckable toggles whether the action has checked state. The stored
// checked value is left untouched. Group members are always checkable, so
// turning it off on a grouped action panics.
func (a *Action) SetCheckable(checkable bool) {
	if a.checkable == checkable {
		return
	}
	if !checkable && a.Group() != nil {
		panic(fmt.Sprintf("gui: SetCheckable(false) on grouped action %q", a.text))
	}
	a.checkable = checkable
	a.notify()
}

// SetEnabled enables or disables the action and every presenter.
func (a *Action) SetEnabled(enabled bool) {
	if a.enabled == enabled {
		return
	}
	a.enabled = enabled
	a.notify()
}

// Checked reports the checked state. It panics if the action is not checkable.
func (a *Action) Checked() bool {
	a.mustBeCheckable("Checked")
	return a.checked
}

// SetChecked checks or unchecks the action. Checking a member of an exclusive
// group unchecks the other members first. Calls made while the action is
// already propagating a SetChecked are ignored. It panics if the action is not
// checkable.
func (a *Action) SetChecked(checked bool) {
	a.mustBeCheckable("SetChecked")
	if a.settingChecked || a.checked == checked {
		return
	}
	a.settingChecked = true
	defer func() { a.settingChecked = false }()

	if checked {
		if g := a.Group(); g != nil && g.exclusive {
			g.uncheckOthers(a)
		}
	}
	a.checked = checked
	a.notify()
}

// Activate invokes the activation callback unless the action is disabled.
// It does not change the checked state. Buttons, menu items and any
// WeakActivator are remembered weakly; other values are kept as given.
func (a *Action) Activate(activator Activator) {
	if !a.enabled {
		return
	}
	a.activator = weakActivator(activator)
	if a.onActivation != nil {
		a.onActivation(a)
	}
}

// SetOnActivation replaces the activation callback.
func (a *Action) SetOnActivation(fn func(*Action)) {
	a.onActivation = fn
}

// Activator returns what most recently activated the action, or nil if it is
// gone.
func (a *Action) Activator() Activator {
	if a.activator == nil {
		return nil
	}
	return a.activator()
}

// Group returns the group the action belongs to, if any.
func (a *Action) Group() *Group {
	return a.group.Value()
}

// Buttons returns the buttons currently bound to the action.
func (a *Action) Buttons() []*Button {
	var out []*Button
	out, a.buttons = live(a.buttons)
	return out
}

// MenuItems returns the menu items currently bound to the action.
func (a *Action) MenuItems() []*MenuItem {
	var out []*MenuItem
	out, a.menuItems = live(a.menuItems)
	return out
}

// Destroy releases the action. Every presenter still bound to it is left
// unbound and the action leaves its group.
func (a *Action) Destroy() {
	for _, b := range a.Buttons() {
		b.actionDestroyed(a)
	}
	for _, m := range a.MenuItems() {
		m.actionDestroyed(a)
	}
	a.buttons = nil
	a.menuItems = nil
	if g := a.Group(); g != nil {
		g.Remove(a)
	}
	a.activator = nil
	a.onActivation = nil
}

func (a *Action) registerButton(b *Button) {
	if containsRef(a.buttons, b) {
		panic(fmt.Sprintf("gui: button registered twice with action %q", a.text))
	}
	a.buttons = append(a.buttons, weak.Make(b))
}

func (a *Action) unregisterButton(b *Button) {
	a.buttons = removeRef(a.buttons, b)
}

func (a *Action) registerMenuItem(m *MenuItem) {
	if containsRef(a.menuItems, m) {
		panic(fmt.Sprintf("gui: menu item registered twice with action %q", a.text))
	}
	a.menuItems = append(a.menuItems, weak.Make(m))
}

func (a *Action) unregisterMenuItem(m *MenuItem) {
	a.menuItems = removeRef(a.menuItems, m)
}

func (a *Action) setGroup(g *Group) {
	if g == nil {
		a.group = weak.Pointer[Group]{}
	} else {
		a.group = weak.Make(g)
	}
	a.notify()
}

func (a *Action) mustBeCheckable(op string) {
	if !a.checkable {
		panic(fmt.Sprintf("gui: %s on non-checkable action %q", op, a.text))
	}
}

// notify pushes the current state to every presenter. The snapshot keeps the
// pass stable when a presenter rebinds from inside its own refresh.
func (a *Action) notify() {
	for _, b := range a.Buttons() {
		if b.Action() == a {
			b.updateFromAction(a)
		}
	}
	for _, m := range a.MenuItems() {
		if m.Action() == a {
			m.updateFromAction(a)
		}
	}
}

func weakActivator(act Activator) func() Activator {
	switch v := act.(type) {
	case nil:
		return nil
	case *Button:
		return weakRef(v)
	case *MenuItem:
		return weakRef(v)
	case WeakActivator:
		return v.ActivatorRef()
	default:
		return func() Activator { return v }
	}
}

// WeakRef returns a resolver for p that yields nil once p is collected.
// ActivatorRef implementations use it to hand themselves out weakly.
func WeakRef[T any](p *T) func() Activator {
	return weakRef(p)
}

func weakRef[T any](p *T) func() Activator {
	if p == nil {
		return nil
	}
	w := weak.Make(p)
	return func() Activator {
		if v := w.Value(); v != nil {
			return v
		}
		return nil
	}
}

// live returns the still-reachable targets and the pruned reference list.
func live[T any](refs []weak.Pointer[T]) ([]*T, []weak.Pointer[T]) {
	out := make([]*T, 0, len(refs))
	kept := refs[:0]
	for _, w := range refs {
		if v := w.Value(); v != nil {
			out = append(out, v)
			kept = append(kept, w)
		}
	}
	clear(refs[len(kept):])
	return out, kept
}

func containsRef[T any](refs []weak.Pointer[T], p *T) bool {
	w := weak.Make(p)
	for _, r := range refs {
		if r == w {
			return true
		}
	}
	return false
}

func removeRef[T any](refs []weak.Pointer[T], p *T) []weak.Pointer[T] {
	w := weak.Make(p)
	for i, r := range refs {
		if r == w {
			return append(refs[:i], refs[i+1:]...)
		}
	}
	return refs
}
