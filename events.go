package sierpinski

const (
	LEVEL_CHANGED EventType = iota
	LEVEL_REJECTED
	TRANSITION_STARTED
	TRANSITION_FINISHED
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// LevelChangedEvent is emitted when a level request is accepted
type LevelChangedEvent struct {
	From int
	To   int
}

func (e LevelChangedEvent) Type() EventType { return LEVEL_CHANGED }

// LevelRejectedEvent is emitted when a request falls outside [0, MaxLevel]
type LevelRejectedEvent struct {
	Current   int
	Requested int
}

func (e LevelRejectedEvent) Type() EventType { return LEVEL_REJECTED }

// TransitionStartedEvent is emitted when a level change starts animating
type TransitionStartedEvent struct {
	Level      int
	Slots      int
	Collapsing int
}

func (e TransitionStartedEvent) Type() EventType { return TRANSITION_STARTED }

// TransitionFinishedEvent is emitted once the target set is displayed as is
type TransitionFinishedEvent struct {
	Level int
}

func (e TransitionFinishedEvent) Type() EventType { return TRANSITION_FINISHED }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 16),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// flush sends all buffered events in emission order and clears the buffer.
// The buffer is detached first: a listener changing the fractal flushes its
// own events without redelivering these.
func (e *Events) flush() {
	events := e.buffer
	e.buffer = nil

	for _, event := range events {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}

	if e.buffer == nil {
		e.buffer = events[:0]
	}
}
