package app

import (
	"sync"
	"time"
)

const (
	flashShort = 3 * time.Second
	flashLong  = 8 * time.Second
)

// Flash is the editor's transient message, shown on the status line until
// it expires or is replaced. The zero value is empty and ready to use.
type Flash struct {
	mu    sync.Mutex
	text  string
	until time.Time
	now   func() time.Time
}

func (f *Flash) clock() time.Time {
	if f.now != nil {
		return f.now()
	}
	return time.Now()
}

// Set replaces the message; it is shown for ttl.
func (f *Flash) Set(text string, ttl time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = text
	f.until = f.clock().Add(ttl)
}

// Clear drops the message early.
func (f *Flash) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = ""
	f.until = time.Time{}
}

// Get returns the message while it is live, and "" afterwards.
func (f *Flash) Get() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.clock().Before(f.until) {
		f.text = ""
		return ""
	}
	return f.text
}
