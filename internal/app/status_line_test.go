package app

import (
	"strings"
	"testing"
	"time"

	"github.com/matheus3301/tuikit/internal/gui"
	"github.com/matheus3301/tuikit/internal/status"
)

func TestFlashExpires(t *testing.T) {
	var f Flash
	if f.Get() != "" {
		t.Error("zero Flash should be empty")
	}
	f.Set("saved", time.Hour)
	if f.Get() != "saved" {
		t.Errorf("Get() = %q, want saved", f.Get())
	}
	f.Set("gone", -time.Second)
	if f.Get() != "" {
		t.Errorf("expired flash = %q", f.Get())
	}
}

func TestFlashClock(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	f := Flash{now: func() time.Time { return now }}
	f.Set("Saved notes", flashShort)

	now = now.Add(flashShort - time.Millisecond)
	if f.Get() != "Saved notes" {
		t.Errorf("Get() before expiry = %q", f.Get())
	}
	now = now.Add(time.Millisecond)
	if f.Get() != "" {
		t.Errorf("Get() at expiry = %q, want empty", f.Get())
	}

	f.Set("again", flashLong)
	f.Clear()
	if f.Get() != "" {
		t.Errorf("Get() after Clear = %q, want empty", f.Get())
	}
}

func TestStatusLineRender(t *testing.T) {
	sl := NewStatusLine(gui.DefaultTheme())
	sl.now = func() time.Time { return time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC) }

	sl.SetProfile("work")
	sl.SetDocument("notes", status.Modified)
	line := sl.Line()
	for _, want := range []string{"work", "notes* MODIFIED", "09:30"} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q missing %q", line, want)
		}
	}

	sl.SetDocument("notes", status.Clean)
	if strings.Contains(sl.Line(), "*") {
		t.Errorf("clean document marked dirty: %q", sl.Line())
	}

	sl.SetFlash("Saved notes")
	if !strings.Contains(sl.Line(), "Saved notes") {
		t.Errorf("flash missing: %q", sl.Line())
	}

	// Hover help takes the flash slot until the pointer leaves.
	sl.SetHover("Save the document")
	if line := sl.Line(); !strings.Contains(line, "Save the document") || strings.Contains(line, "Saved notes") {
		t.Errorf("hover line = %q", line)
	}
	sl.SetHover("")
	if !strings.Contains(sl.Line(), "Saved notes") {
		t.Errorf("flash not back after hover: %q", sl.Line())
	}
}
