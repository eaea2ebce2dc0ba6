package store

// ActionState is the persisted state of one checkable or toggleable action.
type ActionState struct {
	ID        string
	Checked   bool
	Enabled   bool
	UpdatedAt int64
}

// Activation records one activation of an action.
type Activation struct {
	ID          string
	ActionID    string
	Source      string
	ActivatedAt int64
}

// Document is a named text buffer saved by the editor window.
type Document struct {
	Name      string
	Body      string
	UpdatedAt int64
}
