package gui

import (
	"fmt"
	"strings"
	"weak"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// Orientation is the main axis of a toolbar or separator.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// Perpendicular returns the other orientation.
func (o Orientation) Perpendicular() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// ParseOrientation accepts "horizontal" or "vertical", case-insensitive.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("invalid orientation %q", s)
}

const (
	// DefaultButtonSize is used when a toolbar is given a non-positive size.
	DefaultButtonSize = 1
	// ButtonPadding is added to the button size to get a toolbar button's side.
	ButtonPadding = 2
	// ToolbarPadding is added to the button size to get the toolbar's
	// cross-axis size.
	ToolbarPadding = 2
	// SeparatorThickness is a separator's extent along the toolbar's axis.
	SeparatorThickness = 1
)

// ItemKind tells toolbar items apart.
type ItemKind int

const (
	ItemAction ItemKind = iota
	ItemSeparator
)

// Item is one entry of a toolbar.
type Item struct {
	Kind      ItemKind
	Button    *Button    // ItemAction only
	Separator *Separator // ItemSeparator only

	action weak.Pointer[Action]
}

// Action returns the action the item was created for, or nil.
func (it *Item) Action() *Action {
	return it.action.Value()
}

func (it *Item) primitive() tview.Primitive {
	if it.Kind == ItemSeparator {
		return it.Separator
	}
	return it.Button
}

// Toolbar is a row or column of action buttons and separators. It owns the
// buttons it creates; it never owns the actions.
type Toolbar struct {
	*tview.Box

	orientation Orientation
	buttonSize  int
	items       []*Item
	hovered     *Button
	lastFocus   int

	theme  *Theme
	sink   EventSink
	logger *zap.Logger
}

// NewToolbar creates an empty toolbar. It panics on an unknown orientation.
func NewToolbar(orientation Orientation, buttonSize int, opts ...Option) *Toolbar {
	if orientation != Horizontal && orientation != Vertical {
		panic(fmt.Sprintf("gui: invalid toolbar orientation %d", int(orientation)))
	}
	if buttonSize <= 0 {
		buttonSize = DefaultButtonSize
	}
	cfg := newWidgetConfig(opts)
	t := &Toolbar{
		Box:         tview.NewBox(),
		orientation: orientation,
		buttonSize:  buttonSize,
		theme:       cfg.theme,
		sink:        cfg.sink,
		logger:      cfg.logger,
	}
	t.SetBackgroundColor(cfg.theme.ButtonColor)
	return t
}

func (t *Toolbar) Orientation() Orientation { return t.orientation }
func (t *Toolbar) ButtonSize() int { return t.buttonSize }

// CrossAxisSize is the toolbar's fixed height (horizontal) or width
// (vertical).
func (t *Toolbar) CrossAxisSize() int {
	return t.buttonSize + ToolbarPadding
}

// MainAxisSize is the extent needed to show every item.
func (t *Toolbar) MainAxisSize() int {
	n := 0
	for _, it := range t.items {
		n += t.itemExtent(it)
	}
	return n
}

// FixedSize returns the toolbar's width and height; the main axis is the sum
// of its items.
func (t *Toolbar) FixedSize() (width, height int) {
	if t.orientation == Horizontal {
		return t.MainAxisSize(), t.CrossAxisSize()
	}
	return t.CrossAxisSize(), t.MainAxisSize()
}

// AddAction appends a coolbar-styled button bound to a and returns it.
func (t *Toolbar) AddAction(a *Action) *Button {
	b := NewButton("", WithTheme(t.theme), WithEventSink(t.sink))
	b.SetButtonStyle(ButtonCoolbar)
	b.SetAction(a)
	side := t.buttonSize + ButtonPadding
	b.SetFixedSize(side, side)

	t.items = append(t.items, &Item{
		Kind:   ItemAction,
		Button: b,
		action: weak.Make(a),
	})
	t.logger.Debug("toolbar action added",
		zap.String("action", a.Text()),
		zap.Stringer("orientation", t.orientation))
	return b
}

// AddSeparator appends a divider running perpendicular to the toolbar.
func (t *Toolbar) AddSeparator() *Separator {
	s := NewSeparator(t.orientation.Perpendicular(), WithTheme(t.theme))
	if t.orientation == Horizontal {
		s.SetFixedSize(SeparatorThickness, t.CrossAxisSize())
	} else {
		s.SetFixedSize(t.CrossAxisSize(), SeparatorThickness)
	}
	t.items = append(t.items, &Item{Kind: ItemSeparator, Separator: s})
	return s
}

// Items returns the toolbar entries in order.
func (t *Toolbar) Items() []*Item {
	out := make([]*Item, len(t.items))
	copy(out, t.items)
	return out
}

// Buttons returns the action buttons in order.
func (t *Toolbar) Buttons() []*Button {
	var out []*Button
	for _, it := range t.items {
		if it.Kind == ItemAction {
			out = append(out, it.Button)
		}
	}
	return out
}

// ButtonFor returns the first button bound to a, or nil.
func (t *Toolbar) ButtonFor(a *Action) *Button {
	for _, b := range t.Buttons() {
		if b.Action() == a {
			return b
		}
	}
	return nil
}

// Clear destroys every button and separator. Actions are untouched.
func (t *Toolbar) Clear() {
	for _, it := range t.items {
		if it.Button != nil {
			it.Button.Destroy()
		}
	}
	t.items = nil
	t.hovered = nil
	t.lastFocus = 0
}

func itemSize(it *Item) (width, height int) {
	if it.Kind == ItemSeparator {
		return it.Separator.FixedSize()
	}
	return it.Button.FixedSize()
}

func (t *Toolbar) itemExtent(it *Item) int {
	w, h := itemSize(it)
	if t.orientation == Horizontal {
		return w
	}
	return h
}

// layout assigns each item its rectangle and reports which fit.
func (t *Toolbar) layout() []bool {
	x, y, width, height := t.GetInnerRect()
	visible := make([]bool, len(t.items))
	pos := 0
	for i, it := range t.items {
		w, h := itemSize(it)
		p := it.primitive()
		if t.orientation == Horizontal {
			p.SetRect(x+pos, y, w, h)
			pos += w
			visible[i] = pos <= width
		} else {
			p.SetRect(x, y+pos, w, h)
			pos += h
			visible[i] = pos <= height
		}
	}
	return visible
}

// Draw implements tview.Primitive. It fills the background with the theme's
// button color; each child paints itself.
func (t *Toolbar) Draw(screen tcell.Screen) {
	t.DrawForSubclass(screen, t)
	x, y, width, height := t.GetInnerRect()
	fillRect(screen, x, y, width, height, tcell.StyleDefault.Background(t.theme.ButtonColor))
	for i, ok := range t.layout() {
		if ok {
			t.items[i].primitive().Draw(screen)
		}
	}
}

// Focus implements tview.Primitive by focusing the last focused button.
func (t *Toolbar) Focus(delegate func(p tview.Primitive)) {
	buttons := t.Buttons()
	if len(buttons) == 0 {
		t.Box.Focus(delegate)
		return
	}
	if t.lastFocus >= len(buttons) {
		t.lastFocus = 0
	}
	delegate(buttons[t.lastFocus])
}

// HasFocus implements tview.Primitive.
func (t *Toolbar) HasFocus() bool {
	for _, b := range t.Buttons() {
		if b.HasFocus() {
			return true
		}
	}
	return t.Box.HasFocus()
}

// InputHandler implements tview.Primitive. Arrow keys along the toolbar's axis
// move focus; everything else goes to the focused button.
func (t *Toolbar) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return t.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		buttons := t.Buttons()
		if len(buttons) == 0 {
			return
		}
		current := -1
		for i, b := range buttons {
			if b.HasFocus() {
				current = i
				break
			}
		}
		prev, next := tcell.KeyLeft, tcell.KeyRight
		if t.orientation == Vertical {
			prev, next = tcell.KeyUp, tcell.KeyDown
		}
		switch event.Key() {
		case prev:
			t.lastFocus = (max(current, 0) - 1 + len(buttons)) % len(buttons)
			setFocus(buttons[t.lastFocus])
			return
		case next:
			t.lastFocus = (current + 1) % len(buttons)
			setFocus(buttons[t.lastFocus])
			return
		}
		if current >= 0 {
			if handler := buttons[current].InputHandler(); handler != nil {
				handler(event, setFocus)
			}
		}
	})
}

// MouseHandler implements tview.Primitive. Pointer motion is turned into
// Enter/Leave on the buttons.
func (t *Toolbar) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return t.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		px, py := event.Position()
		if !t.InRect(px, py) {
			t.hover(nil)
			return false, nil
		}
		hit := t.buttonAt(px, py)
		if action == tview.MouseMove {
			t.hover(hit)
			return false, nil
		}
		if hit == nil {
			return true, nil
		}
		for i, b := range t.Buttons() {
			if b == hit {
				t.lastFocus = i
			}
		}
		return hit.MouseHandler()(action, event, setFocus)
	})
}

// hover moves the pointer onto b, or off the toolbar when b is nil.
func (t *Toolbar) hover(b *Button) {
	if t.hovered == b {
		return
	}
	if t.hovered != nil {
		t.hovered.Leave()
	}
	t.hovered = b
	if b != nil {
		b.Enter()
	}
}

func (t *Toolbar) buttonAt(px, py int) *Button {
	t.layout()
	for _, b := range t.Buttons() {
		if b.InRect(px, py) {
			return b
		}
	}
	return nil
}

// Separator is a one-cell divider line.
type Separator struct {
	*tview.Box

	orientation Orientation
	fixedWidth  int
	fixedHeight int
	theme       *Theme
}

// NewSeparator creates a divider drawn along o.
func NewSeparator(o Orientation, opts ...Option) *Separator {
	cfg := newWidgetConfig(opts)
	s := &Separator{
		Box:         tview.NewBox(),
		orientation: o,
		theme:       cfg.theme,
	}
	s.SetBackgroundColor(cfg.theme.ButtonColor)
	return s
}

// Orientation is the direction the line runs.
func (s *Separator) Orientation() Orientation { return s.orientation }

// SetFixedSize records the size a container must give s.
func (s *Separator) SetFixedSize(width, height int) {
	s.fixedWidth, s.fixedHeight = width, height
}

// FixedSize returns the size set by SetFixedSize.
func (s *Separator) FixedSize() (width, height int) {
	return s.fixedWidth, s.fixedHeight
}

// Draw implements tview.Primitive.
func (s *Separator) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)
	x, y, width, height := s.GetInnerRect()
	style := tcell.StyleDefault.Background(s.theme.ButtonColor).Foreground(s.theme.SeparatorColor)
	if s.orientation == Vertical {
		mid := x + width/2
		for row := y; row < y+height; row++ {
			screen.SetContent(mid, row, tview.BoxDrawingsLightVertical, nil, style)
		}
		return
	}
	mid := y + height/2
	for col := x; col < x+width; col++ {
		screen.SetContent(col, mid, tview.BoxDrawingsLightHorizontal, nil, style)
	}
}
