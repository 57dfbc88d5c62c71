// Package lifecycle owns quote status transitions.
//
// The machine is permissive: the default configuration never refuses a
// transition because of the current state. It only defines what each event
// does. Stricter policies plug in as Guards so callers keep calling
// Transition unchanged.
package lifecycle

import (
	"errors"
	"fmt"

	"focusquote/internal/domain/entities"
)

type Event string

const (
	// EventSend is the owner marking a quote as sent.
	EventSend Event = "send"
	// EventView is the side effect of a public resolution.
	EventView Event = "view"
	// EventApprove comes from the client (public link) or the owner.
	EventApprove Event = "approve"
	// EventDecline is owner only.
	EventDecline Event = "decline"
)

var ErrUnknownEvent = errors.New("unknown lifecycle event")

// Guard may veto a transition. Returning nil allows it.
type Guard func(q entities.Quote, ev Event, to entities.QuoteStatus) error

// Transition describes the outcome of applying an event.
type Transition struct {
	Quote   entities.Quote
	From    entities.QuoteStatus
	To      entities.QuoteStatus
	Changed bool
}

type Machine struct {
	guards []Guard
}

// Default has no guards.
var Default = NewMachine()

func NewMachine(guards ...Guard) Machine {
	return Machine{guards: guards}
}

// Transition applies ev to q and returns the resulting quote. q itself is
// not modified.
func (m Machine) Transition(q entities.Quote, ev Event) (Transition, error) {
	to, err := target(q.Status, ev)
	if err != nil {
		return Transition{}, err
	}
	for _, g := range m.guards {
		if err := g(q, ev, to); err != nil {
			return Transition{}, fmt.Errorf("%s %s -> %s: %w", ev, q.Status, to, err)
		}
	}

	out := q.Clone()
	out.Status = to
	return Transition{
		Quote:   out,
		From:    q.Status,
		To:      to,
		Changed: q.Status != to,
	}, nil
}

func target(from entities.QuoteStatus, ev Event) (entities.QuoteStatus, error) {
	switch ev {
	case EventSend:
		return entities.QuoteStatusSent, nil
	case EventView:
		// Only draft and sent quotes move; repeated views never revert.
		if from == entities.QuoteStatusDraft || from == entities.QuoteStatusSent {
			return entities.QuoteStatusViewed, nil
		}
		return from, nil
	case EventApprove:
		return entities.QuoteStatusApproved, nil
	case EventDecline:
		return entities.QuoteStatusDeclined, nil
	default:
		return from, fmt.Errorf("%w: %q", ErrUnknownEvent, ev)
	}
}

// Warning is advisory. It never blocks an operation.
type Warning string

const WarningEditingApproved Warning = "editing_approved_quote"

// EditWarnings reports conditions the caller should confirm before editing
// the stored version of a quote.
func EditWarnings(stored entities.Quote) []Warning {
	if stored.Status == entities.QuoteStatusApproved {
		return []Warning{WarningEditingApproved}
	}
	return nil
}
