package gui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/tuikit/internal/shortcut"
)

// Icons used by the common actions.
var (
	IconAbout      = &Icon{Name: "about", Glyph: 'ⓘ'}
	IconOpen       = &Icon{Name: "open", Glyph: '📂'}
	IconSave       = &Icon{Name: "save", Glyph: '💾'}
	IconSaveAs     = &Icon{Name: "save-as", Glyph: '🖫'}
	IconUndo       = &Icon{Name: "undo", Glyph: '↶'}
	IconRedo       = &Icon{Name: "redo", Glyph: '↷'}
	IconCut        = &Icon{Name: "cut", Glyph: '✂'}
	IconCopy       = &Icon{Name: "copy", Glyph: '⧉'}
	IconPaste      = &Icon{Name: "paste", Glyph: '📋'}
	IconDelete     = &Icon{Name: "delete", Glyph: '✖'}
	IconFront      = &Icon{Name: "move-to-front", Glyph: '⤒'}
	IconBack       = &Icon{Name: "move-to-back", Glyph: '⤓'}
	IconFullscreen = &Icon{Name: "fullscreen", Glyph: '⛶'}
	IconQuit       = &Icon{Name: "quit", Glyph: '⏻'}
	IconHelp       = &Icon{Name: "help", Glyph: '?'}
	IconGoBack     = &Icon{Name: "go-back", Glyph: '←'}
	IconGoForward  = &Icon{Name: "go-forward", Glyph: '→'}
	IconGoHome     = &Icon{Name: "go-home", Glyph: '⌂'}
	IconReload     = &Icon{Name: "reload", Glyph: '⟳'}
	IconSelectAll  = &Icon{Name: "select-all", Glyph: '▣'}
	IconProperties = &Icon{Name: "properties", Glyph: '⚙'}
)

func commonAction(text string, s shortcut.Shortcut, icon *Icon, scope Scope, cb func(*Action)) *Action {
	return NewAction(text, cb, WithShortcut(s), WithIcon(icon), WithScope(scope))
}

// NewAboutAction returns "About <appName>". icon may be nil.
func NewAboutAction(appName string, icon *Icon, cb func(*Action)) *Action {
	if icon == nil {
		icon = IconAbout
	}
	return commonAction("About "+appName, shortcut.None, icon, ScopeWindowLocal, cb)
}

func NewOpenAction(cb func(*Action)) *Action {
	return commonAction("Open...", shortcut.Ctrl('o'), IconOpen, ScopeWindowLocal, cb)
}

func NewSaveAction(cb func(*Action)) *Action {
	return commonAction("Save", shortcut.Ctrl('s'), IconSave, ScopeWindowLocal, cb)
}

func NewSaveAsAction(cb func(*Action)) *Action {
	return commonAction("Save As...", shortcut.Rune(tcell.ModCtrl|tcell.ModShift, 's'), IconSaveAs, ScopeWindowLocal, cb)
}

func NewUndoAction(cb func(*Action)) *Action {
	return commonAction("Undo", shortcut.Ctrl('z'), IconUndo, ScopeWindowLocal, cb)
}

func NewRedoAction(cb func(*Action)) *Action {
	return commonAction("Redo", shortcut.Ctrl('y'), IconRedo, ScopeWindowLocal, cb)
}

func NewCutAction(cb func(*Action)) *Action {
	return commonAction("Cut", shortcut.Ctrl('x'), IconCut, ScopeWindowLocal, cb)
}

func NewCopyAction(cb func(*Action)) *Action {
	return commonAction("Copy", shortcut.Ctrl('c'), IconCopy, ScopeWindowLocal, cb)
}

func NewPasteAction(cb func(*Action)) *Action {
	return commonAction("Paste", shortcut.Ctrl('v'), IconPaste, ScopeWindowLocal, cb)
}

func NewDeleteAction(cb func(*Action)) *Action {
	return commonAction("Delete", shortcut.New(0, tcell.KeyDelete), IconDelete, ScopeWindowLocal, cb)
}

func NewMoveToFrontAction(cb func(*Action)) *Action {
	return commonAction("Move to Front", shortcut.Rune(tcell.ModCtrl|tcell.ModShift, 'f'), IconFront, ScopeWindowLocal, cb)
}

func NewMoveToBackAction(cb func(*Action)) *Action {
	return commonAction("Move to Back", shortcut.Rune(tcell.ModCtrl|tcell.ModShift, 'b'), IconBack, ScopeWindowLocal, cb)
}

func NewFullscreenAction(cb func(*Action)) *Action {
	return commonAction("Fullscreen", shortcut.New(0, tcell.KeyF11), IconFullscreen, ScopeWindowLocal, cb)
}

// NewQuitAction is application-global: Ctrl+Q works from every window.
func NewQuitAction(cb func(*Action)) *Action {
	return commonAction("Quit", shortcut.Ctrl('q'), IconQuit, ScopeApplicationGlobal, cb)
}

func NewHelpAction(cb func(*Action)) *Action {
	return commonAction("Help", shortcut.New(0, tcell.KeyF1), IconHelp, ScopeWindowLocal, cb)
}

func NewGoBackAction(cb func(*Action)) *Action {
	return commonAction("Go Back", shortcut.New(tcell.ModAlt, tcell.KeyLeft), IconGoBack, ScopeWindowLocal, cb)
}

func NewGoForwardAction(cb func(*Action)) *Action {
	return commonAction("Go Forward", shortcut.New(tcell.ModAlt, tcell.KeyRight), IconGoForward, ScopeWindowLocal, cb)
}

func NewGoHomeAction(cb func(*Action)) *Action {
	return commonAction("Go Home", shortcut.New(tcell.ModAlt, tcell.KeyHome), IconGoHome, ScopeWindowLocal, cb)
}

func NewReloadAction(cb func(*Action)) *Action {
	return commonAction("Reload", shortcut.New(0, tcell.KeyF5), IconReload, ScopeWindowLocal, cb)
}

func NewSelectAllAction(cb func(*Action)) *Action {
	return commonAction("Select All", shortcut.Ctrl('a'), IconSelectAll, ScopeWindowLocal, cb)
}

func NewPropertiesAction(cb func(*Action)) *Action {
	return commonAction("Properties", shortcut.New(tcell.ModAlt, tcell.KeyEnter), IconProperties, ScopeWindowLocal, cb)
}
