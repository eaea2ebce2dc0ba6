package gui

import (
	"fmt"
	"maps"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
)

// Theme holds the colors widgets paint with.
type Theme struct {
	BgColor                 tcell.Color
	FgColor                 tcell.Color
	ButtonColor             tcell.Color
	ButtonTextColor         tcell.Color
	ButtonDisabledTextColor tcell.Color
	ButtonCheckedColor      tcell.Color
	ButtonHoverColor        tcell.Color
	ButtonFocusColor        tcell.Color
	SeparatorColor          tcell.Color
	MenuBgColor             tcell.Color
	MenuSelectedBgColor     tcell.Color
	MenuShortcutColor       tcell.Color
	MenuKeyColor            tcell.Color
	StatusColor             tcell.Color
}

// DefaultTheme returns a dark theme.
func DefaultTheme() *Theme {
	return &Theme{
		BgColor:                 tcell.ColorBlack,
		FgColor:                 tcell.ColorCadetBlue,
		ButtonColor:             tcell.ColorDarkSlateGray,
		ButtonTextColor:         tcell.ColorWhite,
		ButtonDisabledTextColor: tcell.ColorGray,
		ButtonCheckedColor:      tcell.ColorDodgerBlue,
		ButtonHoverColor:        tcell.ColorSteelBlue,
		ButtonFocusColor:        tcell.ColorLightSkyBlue,
		SeparatorColor:          tcell.ColorDimGray,
		MenuBgColor:             tcell.ColorBlack,
		MenuSelectedBgColor:     tcell.ColorAqua,
		MenuShortcutColor:       tcell.ColorGray,
		MenuKeyColor:            tcell.ColorDodgerBlue,
		StatusColor:             tcell.ColorNavajoWhite,
	}
}

// colorNames maps each named color to its alphabetically first name, so
// aliases such as aqua and cyan always render the same tag.
var colorNames = func() map[tcell.Color]string {
	out := make(map[tcell.Color]string, len(tcell.ColorNames))
	for _, name := range slices.Sorted(maps.Keys(tcell.ColorNames)) {
		c := tcell.ColorNames[name]
		if _, ok := out[c]; !ok {
			out[c] = name
		}
	}
	return out
}()

// ColorName returns a tview-compatible color name string.
func ColorName(c tcell.Color) string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("#%06x", c.Hex())
}

// Option configures a widget.
type Option func(*widgetConfig)

type widgetConfig struct {
	theme  *Theme
	sink   EventSink
	logger *zap.Logger
}

// WithTheme sets the theme a widget paints with.
func WithTheme(theme *Theme) Option {
	return func(c *widgetConfig) { c.theme = theme }
}

// WithEventSink sets where hover notifications are posted.
func WithEventSink(sink EventSink) Option {
	return func(c *widgetConfig) { c.sink = sink }
}

// WithLogger sets the widget logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *widgetConfig) { c.logger = logger }
}

func newWidgetConfig(opts []Option) widgetConfig {
	c := widgetConfig{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.theme == nil {
		c.theme = DefaultTheme()
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

func fillRect(screen tcell.Screen, x, y, width, height int, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// printText writes text starting at x, clipped to width cells. It returns the
// number of cells written.
func printText(screen tcell.Screen, x, y, width int, text string, style tcell.Style) int {
	used := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if used+w > width {
			break
		}
		screen.SetContent(x+used, y, r, nil, style)
		used += w
	}
	return used
}

func printCentered(screen tcell.Screen, x, y, width int, text string, style tcell.Style) {
	if w := runewidth.StringWidth(text); w < width {
		x += (width - w) / 2
		width = w
	}
	printText(screen, x, y, width, text, style)
}
