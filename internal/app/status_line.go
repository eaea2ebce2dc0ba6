package app

import (
	"fmt"
	"time"

	"github.com/matheus3301/tuikit/internal/gui"
	"github.com/matheus3301/tuikit/internal/status"
	"github.com/rivo/tview"
)

// StatusLine displays the profile, document state and hover help.
type StatusLine struct {
	*tview.TextView
	theme    *gui.Theme
	profile  string
	document string
	state    status.State
	hover    string
	flash    string
	now      func() time.Time
}

// NewStatusLine creates a new status line.
func NewStatusLine(theme *gui.Theme) *StatusLine {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(tview.Styles.MoreContrastBackgroundColor)

	return &StatusLine{TextView: tv, theme: theme, now: time.Now}
}

// SetProfile updates the profile name display.
func (sl *StatusLine) SetProfile(name string) {
	sl.profile = name
	sl.render()
}

// SetDocument updates the document name and state.
func (sl *StatusLine) SetDocument(name string, state status.State) {
	sl.document = name
	sl.state = state
	sl.render()
}

// SetHover shows the description of the action under the pointer. An empty
// string clears it.
func (sl *StatusLine) SetHover(text string) {
	sl.hover = text
	sl.render()
}

// SetFlash sets a temporary message.
func (sl *StatusLine) SetFlash(msg string) {
	sl.flash = msg
	sl.render()
}

// Line returns the rendered line without color tags.
func (sl *StatusLine) Line() string {
	return sl.GetText(true)
}

func (sl *StatusLine) render() {
	sl.Clear()

	dirty := ""
	if sl.state == status.Modified || sl.state == status.Error {
		dirty = "*"
	}

	clock := sl.now().Format("15:04")

	line := fmt.Sprintf(" [::b]%s[-:-:-] | %s%s %s | %s", sl.profile, sl.document, dirty, sl.state, clock)
	switch {
	case sl.hover != "":
		line += fmt.Sprintf(" | [%s]%s[-]", gui.ColorName(sl.theme.StatusColor), tview.Escape(sl.hover))
	case sl.flash != "":
		line += fmt.Sprintf(" | [yellow]%s[-]", tview.Escape(sl.flash))
	}

	_, _ = fmt.Fprint(sl, line)
}
