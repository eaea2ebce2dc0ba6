package gui

import "weak"

// Group is an exclusivity domain over checkable actions ("radio" semantics).
// It references its members weakly and never owns them.
type Group struct {
	exclusive bool
	members   []weak.Pointer[Action]
}

// NewGroup returns an empty exclusive group.
func NewGroup() *Group {
	return &Group{exclusive: true}
}

// Exclusive reports whether at most one member may be checked.
func (g *Group) Exclusive() bool { return g.exclusive }

// SetExclusive turns exclusivity on or off. Turning it on keeps only the
// earliest-added checked member checked.
func (g *Group) SetExclusive(exclusive bool) {
	if g.exclusive == exclusive {
		return
	}
	g.exclusive = exclusive
	members := g.Actions()
	if exclusive {
		var keep *Action
		for _, a := range members {
			if a.checkable && a.checked {
				keep = a
				break
			}
		}
		if keep != nil {
			g.uncheckOthers(keep)
		}
	}
	for _, a := range members {
		a.notify()
	}
}

// Add makes a a checkable member of g, moving it out of any previous group.
// A checked action joining an exclusive group that already has a checked
// member is unchecked.
func (g *Group) Add(a *Action) {
	if a.Group() == g {
		return
	}
	if old := a.Group(); old != nil {
		old.Remove(a)
	}
	g.members = append(g.members, weak.Make(a))
	a.checkable = true
	a.setGroup(g)
	if g.exclusive && a.checked && g.checkedOtherThan(a) != nil {
		a.SetChecked(false)
	}
}

// Remove drops a from g. Removing a non-member is a no-op.
func (g *Group) Remove(a *Action) {
	if a.Group() != g {
		return
	}
	g.members = removeRef(g.members, a)
	a.setGroup(nil)
}

// Contains reports whether a is a member of g.
func (g *Group) Contains(a *Action) bool {
	return a != nil && a.Group() == g
}

// Actions returns the live members in insertion order.
func (g *Group) Actions() []*Action {
	var out []*Action
	out, g.members = live(g.members)
	return out
}

// Len returns the number of live members.
func (g *Group) Len() int {
	return len(g.Actions())
}

// Checked returns the first checked member, or nil.
func (g *Group) Checked() *Action {
	return g.checkedOtherThan(nil)
}

func (g *Group) checkedOtherThan(a *Action) *Action {
	for _, m := range g.Actions() {
		if m != a && m.checkable && m.checked {
			return m
		}
	}
	return nil
}

// uncheckOthers unchecks every member but keep. Unchecking runs presenter
// callbacks, which may check a sibling again, so the pass repeats until no
// other member is checked or every member has had a turn.
func (g *Group) uncheckOthers(keep *Action) {
	members := g.Actions()
	for range len(members) + 1 {
		other := g.checkedOtherThan(keep)
		if other == nil {
			return
		}
		for _, m := range members {
			if m != keep && m.checkable && m.checked {
				m.SetChecked(false)
			}
		}
	}
}
