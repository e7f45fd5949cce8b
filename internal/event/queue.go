package event

// Queue is a FIFO of events produced during turn resolution.
// It is owned by the turn loop and is not safe for concurrent use.
type Queue struct {
	events []Event
}

// Push appends e to the back of the queue.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain returns all queued events in the order they were pushed and empties
// the queue.
func (q *Queue) Drain() []Event {
	events := q.events
	q.events = nil
	return events
}
