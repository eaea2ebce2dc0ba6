package gui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/matheus3301/tuikit/internal/shortcut"
	"github.com/rivo/tview"
)

func TestMenuItemMirrorsAction(t *testing.T) {
	a := NewAction("Save", nil, WithShortcut(shortcut.Ctrl('s')))
	m := NewMenuItem(a)
	if m.Text() != "Save" || m.Shortcut() != "Ctrl+S" || !m.Enabled() {
		t.Errorf("item = %q %q %v", m.Text(), m.Shortcut(), m.Enabled())
	}
	a.SetShortcut(shortcut.None)
	if m.Shortcut() != "" {
		t.Errorf("shortcut = %q after clearing", m.Shortcut())
	}
}

func TestMenuItemActivate(t *testing.T) {
	calls := 0
	a := NewCheckableAction("Wrap", func(*Action) { calls++ })
	m := NewMenuItem(a)

	if !m.Activate() || !a.Checked() || !m.Checked() {
		t.Error("first activation should check")
	}
	if a.Activator() != m {
		t.Errorf("activator = %v, want the menu item", a.Activator())
	}
	m.Activate()
	if a.Checked() {
		t.Error("second activation should uncheck")
	}

	a.SetEnabled(false)
	if m.Activate() {
		t.Error("disabled item without swallow should not consume")
	}
	if calls != 2 {
		t.Errorf("activations = %d, want 2", calls)
	}

	unbound := NewMenuItem(nil)
	if unbound.Activate() {
		t.Error("unbound menu item should not consume")
	}
}

func TestMenuItemExclusiveStaysChecked(t *testing.T) {
	g, as := newGroupOf("left", "right")
	left := NewMenuItem(as[0])
	right := NewMenuItem(as[1])
	left.Activate()
	left.Activate()
	if !as[0].Checked() {
		t.Error("checked exclusive item unchecked itself")
	}
	right.Activate()
	if diff := cmp.Diff([]string{"right"}, checkedTexts(g)); diff != "" {
		t.Errorf("checked (-want +got):\n%s", diff)
	}
	if left.Checked() || !right.Checked() {
		t.Error("menu items out of sync with group")
	}
}

func TestMenuItemCheckMark(t *testing.T) {
	g := NewGroup()
	radio := NewCheckableAction("r", nil)
	g.Add(radio)
	check := NewCheckableAction("c", nil)
	plain := NewAction("p", nil)

	r, c, p := NewMenuItem(radio), NewMenuItem(check), NewMenuItem(plain)
	got := []string{r.checkMark(), c.checkMark(), p.checkMark()}
	radio.SetChecked(true)
	check.SetChecked(true)
	got = append(got, r.checkMark(), c.checkMark())
	want := []string{"( )", "[ ]", "   ", "(•)", "[x]"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("check marks (-want +got):\n%s", diff)
	}
}

func TestMenuNavigation(t *testing.T) {
	sink := &recordingSink{}
	menu := NewMenu("Edit", WithEventSink(sink))
	cut := NewAction("Cut", nil)
	copyA := NewAction("Copy", nil)
	menu.AddAction(cut)
	menu.AddSeparator()
	menu.AddAction(copyA)

	if menu.Len() != 3 || len(menu.Items()) != 2 {
		t.Fatalf("len=%d items=%d", menu.Len(), len(menu.Items()))
	}
	if menu.Selected().Action() != cut {
		t.Fatal("first item should start selected")
	}
	handler := menu.InputHandler()
	noFocus := func(tview.Primitive) {}
	handler(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), noFocus)
	if menu.Selected().Action() != copyA {
		t.Error("Down should skip the separator")
	}
	handler(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), noFocus)
	if menu.Selected().Action() != cut {
		t.Error("Down on the last item should wrap")
	}
	menu.Select(1)
	if menu.Selected().Action() != cut {
		t.Error("selecting a separator should be ignored")
	}

	want := []string{"action.leave:Cut", "action.enter:Copy", "action.leave:Copy", "action.enter:Cut"}
	if diff := cmp.Diff(want, sink.kinds()); diff != "" {
		t.Errorf("events (-want +got):\n%s", diff)
	}
}

func TestMenuEnterActivates(t *testing.T) {
	var got []string
	menu := NewMenu("File")
	menu.AddAction(NewAction("Open", func(a *Action) { got = append(got, a.Text()) }))
	menu.AddAction(NewAction("Save", func(a *Action) { got = append(got, a.Text()) }))
	handler := menu.InputHandler()
	noFocus := func(tview.Primitive) {}
	handler(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), noFocus)
	handler(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), noFocus)
	if diff := cmp.Diff([]string{"Save"}, got); diff != "" {
		t.Errorf("activations (-want +got):\n%s", diff)
	}
}

func TestMenuMouseClick(t *testing.T) {
	var got []string
	menu := NewMenu("File")
	menu.AddAction(NewAction("Open", func(a *Action) { got = append(got, a.Text()) }))
	menu.AddAction(NewAction("Save", func(a *Action) { got = append(got, a.Text()) }))
	menu.SetRect(0, 0, 20, 4)
	handler := menu.MouseHandler()
	noFocus := func(tview.Primitive) {}

	// Inner rows start below the border.
	handler(tview.MouseLeftClick, tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone), noFocus)
	if diff := cmp.Diff([]string{"Save"}, got); diff != "" {
		t.Errorf("activations (-want +got):\n%s", diff)
	}
}

func TestMenuClear(t *testing.T) {
	a := NewAction("Open", nil)
	menu := NewMenu("File")
	menu.AddAction(a)
	menu.Clear()
	if menu.Len() != 0 || menu.Selected() != nil {
		t.Error("menu not empty after Clear")
	}
	if len(a.MenuItems()) != 0 {
		t.Error("cleared item still registered")
	}
}

func TestMenuDraw(t *testing.T) {
	screen := newScreen(t, 24, 5)
	menu := NewMenu("Edit")
	menu.AddAction(NewAction("Cut", nil, WithShortcut(shortcut.Ctrl('x'))))
	menu.AddSeparator()
	wrap := NewCheckableAction("Wrap", nil)
	wrap.SetChecked(true)
	menu.AddAction(wrap)
	menu.SetRect(0, 0, 24, 5)

	menu.Draw(screen)
	rows := []string{
		rowText(screen, 1, 1, 23),
		rowText(screen, 2, 1, 23),
		rowText(screen, 3, 1, 23),
	}
	if !strings.HasPrefix(rows[0], "    Cut") || !strings.HasSuffix(rows[0], "Ctrl+X") {
		t.Errorf("row 1 = %q", rows[0])
	}
	if rows[1] != strings.Repeat(string(tview.BoxDrawingsLightHorizontal), 22) {
		t.Errorf("row 2 = %q", rows[1])
	}
	if !strings.HasPrefix(rows[2], "[x] Wrap") {
		t.Errorf("row 3 = %q", rows[2])
	}
}
