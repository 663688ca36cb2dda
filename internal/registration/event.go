package registration

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEvent marks callback payloads outside the registration grammar.
// Such payloads (stale buttons, forged data) are answered locally and never
// advance the flow.
var ErrUnknownEvent = errors.New("registration: unknown event")

// EventKind enumerates the closed set of callback event variants.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventBegin
	EventCancel
	EventCourse
	EventLevel
	EventSection
	EventConfirm
	EventEdit
	EventEditField
	EventBackCourses
	EventBackLevels
	EventBackReview
)

// Event is a decoded callback selection.
type Event struct {
	Kind EventKind
	// Arg carries the course/level/section key or the edit-field name.
	Arg string
}

// ParseEvent decodes the payload that follows the "reg" callback prefix,
// e.g. "course:english", "back:levels", "edit:age", "confirm".
func ParseEvent(payload string) (Event, error) {
	action, arg := payload, ""
	if i := strings.IndexByte(payload, ':'); i >= 0 {
		action, arg = payload[:i], payload[i+1:]
	}

	switch action {
	case "begin":
		if arg == "" {
			return Event{Kind: EventBegin}, nil
		}
	case "cancel":
		if arg == "" {
			return Event{Kind: EventCancel}, nil
		}
	case "confirm":
		if arg == "" {
			return Event{Kind: EventConfirm}, nil
		}
	case "course":
		if arg == "" {
			break
		}
		return Event{Kind: EventCourse, Arg: arg}, nil
	case "level":
		if arg == "" {
			break
		}
		return Event{Kind: EventLevel, Arg: arg}, nil
	case "section":
		if arg == "" {
			break
		}
		return Event{Kind: EventSection, Arg: arg}, nil
	case "edit":
		if arg == "" {
			return Event{Kind: EventEdit}, nil
		}
		switch arg {
		case "course", "level", "section", "name", "age", "phone":
			return Event{Kind: EventEditField, Arg: arg}, nil
		}
	case "back":
		switch arg {
		case "courses":
			return Event{Kind: EventBackCourses}, nil
		case "levels":
			return Event{Kind: EventBackLevels}, nil
		case "review":
			return Event{Kind: EventBackReview}, nil
		}
	}
	return Event{}, fmt.Errorf("%w: %q", ErrUnknownEvent, payload)
}
