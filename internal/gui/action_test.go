package gui

import (
	"runtime"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/matheus3301/tuikit/internal/shortcut"
)

// assertSynced checks that every presenter of a mirrors its state.
func assertSynced(t *testing.T, a *Action) {
	t.Helper()
	for _, b := range a.Buttons() {
		if b.Text() != a.Text() || b.Icon() != a.Icon() || b.Enabled() != a.Enabled() || b.Checkable() != a.Checkable() {
			t.Errorf("button out of sync with %q: text=%q enabled=%v checkable=%v", a.Text(), b.Text(), b.Enabled(), b.Checkable())
		}
		if a.Checkable() && b.Checked() != a.Checked() {
			t.Errorf("button checked = %v, action %q checked = %v", b.Checked(), a.Text(), a.Checked())
		}
	}
	for _, m := range a.MenuItems() {
		if m.Text() != a.Text() || m.Icon() != a.Icon() || m.Enabled() != a.Enabled() {
			t.Errorf("menu item out of sync with %q: text=%q enabled=%v", a.Text(), m.Text(), m.Enabled())
		}
		if a.Checkable() && m.Checked() != a.Checked() {
			t.Errorf("menu item checked = %v, action %q checked = %v", m.Checked(), a.Text(), a.Checked())
		}
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestNewActionDefaults(t *testing.T) {
	a := NewAction("Open", nil)
	if !a.Enabled() {
		t.Error("new action should be enabled")
	}
	if a.Checkable() {
		t.Error("new action should not be checkable")
	}
	if a.Scope() != ScopeNone {
		t.Errorf("scope = %s, want none", a.Scope())
	}
	if a.Shortcut().IsValid() {
		t.Error("new action should have no shortcut")
	}
	if a.SwallowKeyEventWhenDisabled() {
		t.Error("swallow should default to false")
	}
	if a.Group() != nil || a.Activator() != nil {
		t.Error("new action should have no group or activator")
	}

	c := NewCheckableAction("Bold", nil)
	if !c.Checkable() || c.Checked() {
		t.Errorf("checkable action: checkable=%v checked=%v, want true/false", c.Checkable(), c.Checked())
	}
}

func TestActionOptions(t *testing.T) {
	icon := &Icon{Name: "x", Glyph: 'x'}
	a := NewAction("Save", nil,
		WithShortcut(shortcut.Ctrl('s')),
		WithIcon(icon),
		WithLongText("Save the document"),
		WithScope(ScopeWindowLocal),
		WithSwallowKeyEventWhenDisabled(),
	)
	got := []any{a.Shortcut().String(), a.Icon(), a.LongText(), a.Scope(), a.SwallowKeyEventWhenDisabled()}
	want := []any{"Ctrl+S", icon, "Save the document", ScopeWindowLocal, true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckedOnNonCheckablePanics(t *testing.T) {
	a := NewAction("Open", nil)
	mustPanic(t, "Checked", func() { a.Checked() })
	mustPanic(t, "SetChecked", func() { a.SetChecked(true) })
}

func TestSetCheckableKeepsChecked(t *testing.T) {
	a := NewCheckableAction("Wrap", nil)
	a.SetChecked(true)
	a.SetCheckable(false)
	a.SetCheckable(true)
	if !a.Checked() {
		t.Error("SetCheckable should not touch the checked value")
	}
}

func TestSyncInvariant(t *testing.T) {
	a := NewCheckableAction("Bold", nil, WithShortcut(shortcut.Ctrl('b')))
	b1 := NewActionButton(a)
	b2 := NewActionButton(a)
	m := NewMenuItem(a)
	assertSynced(t, a)

	steps := []struct {
		name string
		do   func()
	}{
		{"disable", func() { a.SetEnabled(false) }},
		{"enable", func() { a.SetEnabled(true) }},
		{"check", func() { a.SetChecked(true) }},
		{"rename", func() { a.SetText("Strong") }},
		{"icon", func() { a.SetIcon(&Icon{Name: "b", Glyph: 'B'}) }},
		{"uncheck", func() { a.SetChecked(false) }},
		{"rename via button", func() { b1.SetText("Heavy") }},
		{"disable via button", func() { b2.SetEnabled(false) }},
		{"check via button", func() { b2.SetChecked(true) }},
		{"not checkable", func() { a.SetCheckable(false) }},
	}
	for _, s := range steps {
		s.do()
		t.Run(s.name, func(t *testing.T) { assertSynced(t, a) })
	}
	if m.Text() != "Heavy" || m.Shortcut() != "Ctrl+B" {
		t.Errorf("menu item text=%q shortcut=%q", m.Text(), m.Shortcut())
	}
}

func TestSetEnabledUnchangedIsNoop(t *testing.T) {
	a := NewCheckableAction("Bold", nil)
	b := NewActionButton(a)
	toggles := 0
	b.SetOnToggle(func(bool) { toggles++ })
	a.SetEnabled(true)
	a.SetChecked(false)
	if toggles != 0 {
		t.Errorf("toggles = %d, want 0", toggles)
	}
}

func TestActivate(t *testing.T) {
	var got []*Action
	a := NewAction("Open", func(a *Action) { got = append(got, a) })
	b := NewActionButton(a)

	a.Activate(b)
	if len(got) != 1 || got[0] != a {
		t.Fatalf("callback calls = %v, want [a]", got)
	}
	if a.Activator() != b {
		t.Errorf("activator = %v, want the button", a.Activator())
	}

	a.SetEnabled(false)
	a.Activate(b)
	if len(got) != 1 {
		t.Errorf("disabled action activated; calls = %d", len(got))
	}
}

func TestActivateDoesNotToggle(t *testing.T) {
	a := NewCheckableAction("Wrap", nil)
	a.Activate(nil)
	if a.Checked() {
		t.Error("Activate should not change checked state")
	}
}

func TestActivateCallbackDisablesItself(t *testing.T) {
	calls := 0
	var a *Action
	a = NewAction("Once", func(*Action) {
		calls++
		a.SetEnabled(false)
		a.Activate(nil)
	})
	b := NewActionButton(a)
	b.Click(tcell.ModNone)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if b.Enabled() {
		t.Error("button should follow the action to disabled")
	}
}

func TestDoubleRegistrationPanics(t *testing.T) {
	a := NewAction("Open", nil)
	b := NewActionButton(a)
	mustPanic(t, "registerButton", func() { a.registerButton(b) })
	m := NewMenuItem(a)
	mustPanic(t, "registerMenuItem", func() { a.registerMenuItem(m) })
}

func TestUnregisterIsIdempotent(t *testing.T) {
	a := NewAction("Open", nil)
	bound := NewActionButton(a)
	stray := NewButton("stray")
	item := NewMenuItem(nil)

	a.unregisterButton(stray)
	a.unregisterMenuItem(item)
	if n := len(a.Buttons()); n != 1 {
		t.Fatalf("buttons = %d, want 1", n)
	}

	a.unregisterButton(bound)
	a.unregisterButton(bound)
	if n := len(a.Buttons()); n != 0 {
		t.Errorf("buttons = %d, want 0", n)
	}
}

func TestRebind(t *testing.T) {
	a := NewAction("A", nil)
	b := NewAction("B", nil)
	btn := NewActionButton(a)

	btn.SetAction(b)
	if len(a.Buttons()) != 0 {
		t.Error("button still registered with A")
	}
	if got := b.Buttons(); len(got) != 1 || got[0] != btn {
		t.Errorf("B buttons = %v, want [btn]", got)
	}

	a.SetEnabled(false)
	a.SetText("A2")
	if !btn.Enabled() || btn.Text() != "B" {
		t.Errorf("mutating A reached the button: enabled=%v text=%q", btn.Enabled(), btn.Text())
	}
	b.SetText("B2")
	if btn.Text() != "B2" {
		t.Errorf("text = %q, want B2", btn.Text())
	}

	btn.SetAction(b)
	if len(b.Buttons()) != 1 {
		t.Error("rebinding to the same action should not register twice")
	}
}

func TestDestroyLeavesPresentersUnbound(t *testing.T) {
	g := NewGroup()
	a := NewCheckableAction("Bold", nil)
	g.Add(a)
	b := NewActionButton(a)
	m := NewMenuItem(a)

	a.Destroy()
	if b.Action() != nil || m.Action() != nil {
		t.Error("presenters still bound after Destroy")
	}
	if g.Contains(a) || g.Len() != 0 {
		t.Error("destroyed action still in group")
	}
	if b.Click(tcell.ModNone) != true {
		t.Error("unbound enabled button should still accept clicks")
	}
}

func TestPresenterDestroyUnregisters(t *testing.T) {
	a := NewAction("Open", nil)
	b := NewActionButton(a)
	m := NewMenuItem(a)
	b.Destroy()
	m.Destroy()
	if len(a.Buttons()) != 0 || len(a.MenuItems()) != 0 {
		t.Errorf("buttons=%d items=%d, want 0/0", len(a.Buttons()), len(a.MenuItems()))
	}
}

func TestActionDoesNotKeepButtonAlive(t *testing.T) {
	a := NewAction("Open", nil)
	func() { NewActionButton(a) }()
	runtime.GC()
	if n := len(a.Buttons()); n != 0 {
		t.Errorf("buttons = %d after GC, want 0", n)
	}
}

func TestButtonDoesNotKeepActionAlive(t *testing.T) {
	b := NewButton("")
	func() { b.SetAction(NewAction("Temp", nil)) }()
	runtime.GC()
	if b.Action() != nil {
		t.Error("button kept its action alive")
	}
	if b.Text() != "Temp" {
		t.Errorf("text = %q, want last mirrored Temp", b.Text())
	}
}

func TestActivatorIsWeak(t *testing.T) {
	a := NewAction("Open", nil)
	func() {
		b := NewButton("")
		b.SetAction(a)
		b.Click(tcell.ModNone)
		b.Destroy()
	}()
	runtime.GC()
	if a.Activator() != nil {
		t.Errorf("activator = %v after GC, want nil", a.Activator())
	}
}

type trigger struct {
	name string
	pad  [64]byte
}

func (tr *trigger) ActivatorRef() func() Activator { return WeakRef(tr) }

func TestWeakActivatorIsNotKeptAlive(t *testing.T) {
	a := NewAction("Run", nil)
	func() {
		tr := &trigger{name: "palette"}
		a.Activate(tr)
		if a.Activator() != tr {
			t.Errorf("activator = %v, want the trigger", a.Activator())
		}
	}()
	runtime.GC()
	if a.Activator() != nil {
		t.Errorf("activator = %v after GC, want nil", a.Activator())
	}
}

func TestScopeString(t *testing.T) {
	tests := map[Scope]string{
		ScopeNone:              "none",
		ScopeWidgetLocal:       "widget",
		ScopeWindowLocal:       "window",
		ScopeApplicationGlobal: "application",
		Scope(9):               "Scope(9)",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("Scope(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}

func TestTooltip(t *testing.T) {
	tests := []struct {
		name string
		a    *Action
		want string
	}{
		{"with shortcut", NewAction("Save", nil, WithShortcut(shortcut.Ctrl('s'))), "Save (Ctrl+S)"},
		{"no shortcut", NewAction("About", nil), "About"},
		{"invalid shortcut", NewAction("Odd", nil, WithShortcut(shortcut.Shortcut{Key: tcell.KeyRune})), "Odd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tooltip(tt.a); got != tt.want {
				t.Errorf("Tooltip() = %q, want %q", got, tt.want)
			}
		})
	}
}
