package gui

import "testing"

func TestCommonActions(t *testing.T) {
	tests := []struct {
		ctor     func(func(*Action)) *Action
		text     string
		shortcut string
		scope    Scope
	}{
		{NewOpenAction, "Open...", "Ctrl+O", ScopeWindowLocal},
		{NewSaveAction, "Save", "Ctrl+S", ScopeWindowLocal},
		{NewSaveAsAction, "Save As...", "Ctrl+Shift+S", ScopeWindowLocal},
		{NewUndoAction, "Undo", "Ctrl+Z", ScopeWindowLocal},
		{NewRedoAction, "Redo", "Ctrl+Y", ScopeWindowLocal},
		{NewCutAction, "Cut", "Ctrl+X", ScopeWindowLocal},
		{NewCopyAction, "Copy", "Ctrl+C", ScopeWindowLocal},
		{NewPasteAction, "Paste", "Ctrl+V", ScopeWindowLocal},
		{NewDeleteAction, "Delete", "Delete", ScopeWindowLocal},
		{NewMoveToFrontAction, "Move to Front", "Ctrl+Shift+F", ScopeWindowLocal},
		{NewMoveToBackAction, "Move to Back", "Ctrl+Shift+B", ScopeWindowLocal},
		{NewFullscreenAction, "Fullscreen", "F11", ScopeWindowLocal},
		{NewQuitAction, "Quit", "Ctrl+Q", ScopeApplicationGlobal},
		{NewHelpAction, "Help", "F1", ScopeWindowLocal},
		{NewGoBackAction, "Go Back", "Alt+Left", ScopeWindowLocal},
		{NewGoForwardAction, "Go Forward", "Alt+Right", ScopeWindowLocal},
		{NewGoHomeAction, "Go Home", "Alt+Home", ScopeWindowLocal},
		{NewReloadAction, "Reload", "F5", ScopeWindowLocal},
		{NewSelectAllAction, "Select All", "Ctrl+A", ScopeWindowLocal},
		{NewPropertiesAction, "Properties", "Alt+Enter", ScopeWindowLocal},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			calls := 0
			a := tt.ctor(func(*Action) { calls++ })
			if a.Text() != tt.text {
				t.Errorf("text = %q, want %q", a.Text(), tt.text)
			}
			if got := a.Shortcut().String(); got != tt.shortcut {
				t.Errorf("shortcut = %q, want %q", got, tt.shortcut)
			}
			if a.Scope() != tt.scope {
				t.Errorf("scope = %s, want %s", a.Scope(), tt.scope)
			}
			if a.Icon() == nil {
				t.Error("common action without icon")
			}
			if a.Checkable() {
				t.Error("common actions are not checkable")
			}
			a.Activate(nil)
			if calls != 1 {
				t.Errorf("activations = %d, want 1", calls)
			}
		})
	}
}

func TestAboutAction(t *testing.T) {
	a := NewAboutAction("tuikit", nil, nil)
	if a.Text() != "About tuikit" {
		t.Errorf("text = %q", a.Text())
	}
	if a.Icon() != IconAbout {
		t.Error("nil icon should fall back to the about icon")
	}
	if a.Shortcut().IsValid() {
		t.Error("about has no shortcut")
	}
	custom := &Icon{Name: "logo", Glyph: 'T'}
	if NewAboutAction("x", custom, nil).Icon() != custom {
		t.Error("custom icon ignored")
	}
	a.Activate(nil)
}
