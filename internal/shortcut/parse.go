package shortcut

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// ParseError is returned when a shortcut string cannot be parsed.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse shortcut %q: %s", e.Input, e.Reason)
}

var modifierAliases = map[string]tcell.ModMask{
	"ctrl":    tcell.ModCtrl,
	"control": tcell.ModCtrl,
	"alt":     tcell.ModAlt,
	"option":  tcell.ModAlt,
	"shift":   tcell.ModShift,
	"meta":    tcell.ModMeta,
	"super":   tcell.ModMeta,
	"cmd":     tcell.ModMeta,
}

// Parse reads the textual form produced by String, e.g. "Ctrl+S", "Alt+Left"
// or "F5". Matching is case-insensitive.
func Parse(text string) (Shortcut, error) {
	in := strings.TrimSpace(text)
	if in == "" {
		return None, &ParseError{Input: text, Reason: "empty"}
	}
	if in == "+" {
		return Rune(0, '+'), nil
	}

	parts := strings.Split(in, "+")
	// "Ctrl++" names the plus key.
	if strings.HasSuffix(in, "++") {
		parts = append(parts[:len(parts)-2], "+")
	}

	var mods tcell.ModMask
	for _, p := range parts[:len(parts)-1] {
		m, ok := modifierAliases[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			return None, &ParseError{Input: text, Reason: fmt.Sprintf("unknown modifier %q", p)}
		}
		mods |= m
	}

	key := strings.TrimSpace(parts[len(parts)-1])
	if key == "" {
		return None, &ParseError{Input: text, Reason: "missing key"}
	}
	if utf8.RuneCountInString(key) == 1 {
		// Letters render upper-case; Shift has to be spelled out.
		r, _ := utf8.DecodeRuneInString(key)
		return Rune(mods, unicode.ToLower(r)), nil
	}
	if strings.EqualFold(key, "space") {
		return Rune(mods, ' '), nil
	}
	for k, name := range keyNames {
		if strings.EqualFold(name, key) {
			return New(mods, k), nil
		}
	}
	return None, &ParseError{Input: text, Reason: fmt.Sprintf("unknown key %q", key)}
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(text string) Shortcut {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}
