package gui

import (
	"time"

	"github.com/matheus3301/tuikit/internal/bus"
)

// Event kinds posted when the pointer or menu selection moves over a
// presenter bound to an action.
const (
	EventActionEnter = "action.enter"
	EventActionLeave = "action.leave"
)

// EventSink receives toolkit notifications for observers outside the widget
// tree. *bus.Bus satisfies it.
type EventSink interface {
	Publish(evt bus.Event)
}

// ActionEvent is the payload of action.* events.
type ActionEvent struct {
	Action   *Action
	Text     string
	LongText string
	Tooltip  string
}

func postActionEvent(sink EventSink, kind string, a *Action) {
	if sink == nil || a == nil {
		return
	}
	sink.Publish(bus.Event{
		Kind:      kind,
		Timestamp: time.Now(),
		Payload: ActionEvent{
			Action:   a,
			Text:     a.text,
			LongText: a.longText,
			Tooltip:  Tooltip(a),
		},
	})
}
