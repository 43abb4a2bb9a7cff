package wiki

import (
	"slices"
)

// Queue records the events it receives for later replay.
type Queue struct {
	EventFunc

	events []Event
}

func NewQueue() *Queue {
	q := &Queue{}
	q.EventFunc = q.push
	return q
}

func (q *Queue) push(e Event) {
	q.events = append(q.events, e)
}

// ConsumeEvents sends the recorded events to l in the order they were
// received and empties the queue. Events recorded while consuming are
// consumed too.
func (q *Queue) ConsumeEvents(l Listener) {
	for len(q.events) > 0 {
		e := q.events[0]
		q.events[0] = Event{}
		q.events = q.events[1:]
		e.Send(l)
	}
	q.events = nil
}

// Events returns a copy of the recorded events.
func (q *Queue) Events() []Event { return slices.Clone(q.events) }

func (q *Queue) Len() int { return len(q.events) }

// Peek returns the oldest recorded event.
func (q *Queue) Peek() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	return q.events[0], true
}

// Clear drops the recorded events.
func (q *Queue) Clear() { q.events = nil }
