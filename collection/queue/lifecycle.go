package queue

// State describes the lifecycle of a ConcurrentQueue.
//
//go:generate go run github.com/dmarkham/enumer -type=State -text -json -yaml
type State int

const (
	// Open queues accept new elements and hand out queued ones.
	Open State = iota
	// Draining queues have been shut down but still hold elements which can be dequeued.
	Draining
	// Closed queues have been shut down and are empty. This state is terminal.
	Closed
)

// AcceptsElements states whether elements can still be enqueued.
func (s State) AcceptsElements() bool {
	return s == Open
}

// IsTerminal states whether the queue can no longer change state.
func (s State) IsTerminal() bool {
	return s == Closed
}
