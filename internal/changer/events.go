package changer

// EventKind identifies a state machine event.
type EventKind int

const (
	EventSelect    EventKind = iota // Target chosen
	EventSpin                       // Spin started
	EventAdvance                    // Reel moved to the next symbol
	EventCountdown                  // Countdown second elapsed
	EventSettle                     // Spin stopped; Symbol is the verdict
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventSelect:
		return "select"
	case EventSpin:
		return "spin"
	case EventAdvance:
		return "advance"
	case EventCountdown:
		return "countdown"
	case EventSettle:
		return "settle"
	default:
		return "unknown"
	}
}

// Event describes one transition. Only fields relevant to Kind are set.
type Event struct {
	Kind      EventKind
	State     State  // State after the event
	Target    string // Selected symbol
	Symbol    string // Symbol in the slot (spin, advance) or verdict (settle)
	Countdown int
	Win       bool
}

// Listener receives events on the tick goroutine. Implementations must
// not block.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(e Event)

// OnEvent implements Listener.
func (f ListenerFunc) OnEvent(e Event) { f(e) }
