package keys

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"weak"

	"github.com/agnivade/levenshtein"
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/tuikit/internal/gui"
	"github.com/matheus3301/tuikit/internal/shortcut"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// ErrUnknownAction is returned when an action id is not registered.
var ErrUnknownAction = errors.New("unknown action")

type binding struct {
	id     string
	action weak.Pointer[gui.Action]
}

// Registry dispatches key events to actions by scope. It references actions
// weakly; whoever created an action owns it.
type Registry struct {
	global  []binding
	windows map[string][]binding
	widgets map[tview.Primitive][]binding
	ids     map[string]weak.Pointer[gui.Action]
	logger  *zap.Logger
}

// NewRegistry creates an empty registry. logger may be nil.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		windows: make(map[string][]binding),
		widgets: make(map[tview.Primitive][]binding),
		ids:     make(map[string]weak.Pointer[gui.Action]),
		logger:  logger,
	}
}

// ActivatorRef lets actions remember the registry as their activator
// without keeping it alive.
func (r *Registry) ActivatorRef() func() gui.Activator { return gui.WeakRef(r) }

// AddGlobal registers an application-global action.
func (r *Registry) AddGlobal(id string, a *gui.Action) {
	a.SetScope(gui.ScopeApplicationGlobal)
	r.global = append(r.global, r.bind(id, a))
}

// AddWindow registers an action that is live while window is active.
func (r *Registry) AddWindow(window, id string, a *gui.Action) {
	a.SetScope(gui.ScopeWindowLocal)
	r.windows[window] = append(r.windows[window], r.bind(id, a))
}

// AddWidget registers an action that is live while p has focus.
func (r *Registry) AddWidget(p tview.Primitive, id string, a *gui.Action) {
	a.SetScope(gui.ScopeWidgetLocal)
	r.widgets[p] = append(r.widgets[p], r.bind(id, a))
}

// RemoveWidget drops every binding of p.
func (r *Registry) RemoveWidget(p tview.Primitive) {
	delete(r.widgets, p)
}

func (r *Registry) bind(id string, a *gui.Action) binding {
	w := weak.Make(a)
	if id != "" {
		r.ids[id] = w
	}
	return binding{id: id, action: w}
}

// HandleEvent offers ev to the focused widget's actions, then the window's,
// then the global ones. A matching enabled action is activated and the event
// consumed. A matching disabled action consumes the event only when it
// swallows disabled input; otherwise the search goes on.
func (r *Registry) HandleEvent(window string, focused tview.Primitive, ev *tcell.EventKey) bool {
	var scopes [][]binding
	if focused != nil {
		scopes = append(scopes, r.widgets[focused])
	}
	scopes = append(scopes, r.windows[window], r.global)
	for _, bindings := range scopes {
		for _, b := range bindings {
			a := b.action.Value()
			if a == nil || !a.Shortcut().Matches(ev) {
				continue
			}
			if a.Enabled() {
				r.logger.Debug("shortcut activated",
					zap.String("action", a.Text()),
					zap.Stringer("shortcut", a.Shortcut()),
					zap.Stringer("scope", a.Scope()))
				a.Activate(r)
				return true
			}
			if a.SwallowKeyEventWhenDisabled() {
				return true
			}
		}
	}
	return false
}

// Actions returns the live actions reachable from window, window-local ones
// first.
func (r *Registry) Actions(window string) []*gui.Action {
	var out []*gui.Action
	for _, bindings := range [][]binding{r.windows[window], r.global} {
		for _, b := range bindings {
			if a := b.action.Value(); a != nil && !slices.Contains(out, a) {
				out = append(out, a)
			}
		}
	}
	return out
}

// Hints returns "shortcut:text" for every enabled action with a valid
// shortcut reachable from window, sorted.
func (r *Registry) Hints(window string) []string {
	var hints []string
	for _, a := range r.Actions(window) {
		if a.Enabled() && a.Shortcut().IsValid() {
			hints = append(hints, a.Shortcut().String()+":"+a.Text())
		}
	}
	slices.Sort(hints)
	return hints
}

// Lookup resolves an id given to one of the Add methods.
func (r *Registry) Lookup(id string) (*gui.Action, error) {
	if w, ok := r.ids[id]; ok {
		if a := w.Value(); a != nil {
			return a, nil
		}
	}
	if best := r.closestID(id); best != "" {
		return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownAction, id, best)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownAction, id)
}

func (r *Registry) closestID(id string) string {
	best, bestDist := "", -1
	for known, w := range r.ids {
		if w.Value() == nil {
			continue
		}
		d := levenshtein.ComputeDistance(id, known)
		if d > max(len(id), len(known))/2 {
			continue
		}
		if bestDist < 0 || d < bestDist || (d == bestDist && known < best) {
			best, bestDist = known, d
		}
	}
	return best
}

// ApplyKeymap replaces the shortcuts of the actions named in keymap. An empty
// value removes the shortcut. Every bad entry is reported; good entries are
// applied regardless.
func (r *Registry) ApplyKeymap(keymap map[string]string) error {
	var errs []error
	ids := make([]string, 0, len(keymap))
	for id := range keymap {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		a, err := r.Lookup(id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s := shortcut.None
		if text := keymap[id]; strings.TrimSpace(text) != "" {
			if s, err = shortcut.Parse(text); err != nil {
				errs = append(errs, fmt.Errorf("keymap %s: %w", id, err))
				continue
			}
		}
		a.SetShortcut(s)
		r.logger.Info("shortcut overridden", zap.String("action", id), zap.Stringer("shortcut", s))
	}
	return errors.Join(errs...)
}

// Conflicts returns the shortcuts bound to more than one action reachable
// from window, sorted.
func (r *Registry) Conflicts(window string) []string {
	seen := make(map[shortcut.Shortcut]int)
	for _, a := range r.Actions(window) {
		if a.Shortcut().IsValid() {
			seen[a.Shortcut()]++
		}
	}
	var out []string
	for s, n := range seen {
		if n > 1 {
			out = append(out, s.String())
		}
	}
	slices.Sort(out)
	return out
}

// Find ranks the enabled actions reachable from window by how closely their
// text matches query, and returns at most limit of them. Texts containing the
// query rank before the rest.
func (r *Registry) Find(window, query string, limit int) []*gui.Action {
	q := strings.ToLower(strings.TrimSpace(query))
	type scored struct {
		action   *gui.Action
		contains bool
		dist     int
	}
	var candidates []scored
	for _, a := range r.Actions(window) {
		if !a.Enabled() {
			continue
		}
		text := strings.ToLower(strings.TrimRight(a.Text(), "."))
		candidates = append(candidates, scored{
			action:   a,
			contains: q != "" && strings.Contains(text, q),
			dist:     levenshtein.ComputeDistance(q, text),
		})
	}
	slices.SortStableFunc(candidates, func(x, y scored) int {
		if x.contains != y.contains {
			if x.contains {
				return -1
			}
			return 1
		}
		return x.dist - y.dist
	})
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]*gui.Action, len(candidates))
	for i, c := range candidates {
		out[i] = c.action
	}
	return out
}
