package shortcut

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// modMask is the set of modifiers a shortcut can carry.
const modMask = tcell.ModCtrl | tcell.ModAlt | tcell.ModShift | tcell.ModMeta

// Shortcut is an immutable modifier+key combination. The zero value is invalid.
type Shortcut struct {
	Modifiers tcell.ModMask
	Key       tcell.Key
	Rune      rune // set when Key is tcell.KeyRune
}

// None is the empty, invalid shortcut.
var None = Shortcut{}

// New returns a shortcut for a named key such as tcell.KeyF5 or tcell.KeyLeft.
// Control keys (tcell.KeyCtrlA..KeyCtrlZ) are folded into Ctrl+letter,
// except for the codes that double as named keys: KeyTab is KeyCtrlI and
// KeyEnter is KeyCtrlM, so those stay Ctrl+Tab and Ctrl+Enter.
func New(mods tcell.ModMask, key tcell.Key) Shortcut {
	return normalize(mods, key, 0)
}

// Rune returns a shortcut for a printable key. Upper-case letters imply Shift.
func Rune(mods tcell.ModMask, r rune) Shortcut {
	return normalize(mods, tcell.KeyRune, r)
}

// Ctrl is shorthand for Rune(tcell.ModCtrl, r).
func Ctrl(r rune) Shortcut {
	return Rune(tcell.ModCtrl, r)
}

func normalize(mods tcell.ModMask, key tcell.Key, r rune) Shortcut {
	mods &= modMask
	_, named := keyNames[key]
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ && mods&tcell.ModCtrl != 0 && !named {
		r = 'a' + rune(key-tcell.KeyCtrlA)
		key = tcell.KeyRune
	}
	if key == tcell.KeyRune {
		if unicode.IsUpper(r) {
			mods |= tcell.ModShift
			r = unicode.ToLower(r)
		}
	} else {
		r = 0
	}
	return Shortcut{Modifiers: mods, Key: key, Rune: r}
}

// IsValid reports whether s names an actual key.
func (s Shortcut) IsValid() bool {
	if s.Key == tcell.KeyRune {
		return s.Rune != 0
	}
	_, ok := keyNames[s.Key]
	return ok
}

// String renders s as e.g. "Ctrl+Shift+S". Invalid shortcuts render as "".
func (s Shortcut) String() string {
	if !s.IsValid() {
		return ""
	}
	var b strings.Builder
	for _, m := range modifierOrder {
		if s.Modifiers&m.mask != 0 {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	b.WriteString(s.keyName())
	return b.String()
}

func (s Shortcut) keyName() string {
	if s.Key != tcell.KeyRune {
		return keyNames[s.Key]
	}
	if s.Rune == ' ' {
		return "Space"
	}
	return strings.ToUpper(string(s.Rune))
}

// Matches reports whether the key event triggers s.
func (s Shortcut) Matches(ev *tcell.EventKey) bool {
	if ev == nil || !s.IsValid() {
		return false
	}
	return s == normalize(ev.Modifiers(), ev.Key(), ev.Rune())
}

type modifierName struct {
	mask tcell.ModMask
	name string
}

var modifierOrder = []modifierName{
	{tcell.ModCtrl, "Ctrl"},
	{tcell.ModAlt, "Alt"},
	{tcell.ModShift, "Shift"},
	{tcell.ModMeta, "Meta"},
}

// keyNames lists the non-rune keys a shortcut may use.
var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "Enter",
	tcell.KeyTab:        "Tab",
	tcell.KeyBacktab:    "Backtab",
	tcell.KeyEscape:     "Esc",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyDelete:     "Delete",
	tcell.KeyInsert:     "Insert",
	tcell.KeyUp:         "Up",
	tcell.KeyDown:       "Down",
	tcell.KeyLeft:       "Left",
	tcell.KeyRight:      "Right",
	tcell.KeyHome:       "Home",
	tcell.KeyEnd:        "End",
	tcell.KeyPgUp:       "PgUp",
	tcell.KeyPgDn:       "PgDn",
	tcell.KeyF1:         "F1",
	tcell.KeyF2:         "F2",
	tcell.KeyF3:         "F3",
	tcell.KeyF4:         "F4",
	tcell.KeyF5:         "F5",
	tcell.KeyF6:         "F6",
	tcell.KeyF7:         "F7",
	tcell.KeyF8:         "F8",
	tcell.KeyF9:         "F9",
	tcell.KeyF10:        "F10",
	tcell.KeyF11:        "F11",
	tcell.KeyF12:        "F12",
}
