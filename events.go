package arcball

import "github.com/go-gl/mathgl/mgl64"

const (
	DRAG_BEGIN EventType = iota
	DRAG_END
	MOMENTUM_START
	MOMENTUM_END
	ORIENTATION_CHANGED
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Drag events
type DragBeginEvent struct {
	// Start is the drag's first sample projected onto the ball
	Start mgl64.Vec3
}

func (e DragBeginEvent) Type() EventType { return DRAG_BEGIN }

type DragEndEvent struct {
	Orientation mgl64.Quat
}

func (e DragEndEvent) Type() EventType { return DRAG_END }

// Momentum events
type MomentumStartEvent struct {
	Axis  mgl64.Vec3
	Angle float64
}

func (e MomentumStartEvent) Type() EventType { return MOMENTUM_START }

type MomentumEndEvent struct {
	Orientation mgl64.Quat
}

func (e MomentumEndEvent) Type() EventType { return MOMENTUM_END }

// OrientationChangedEvent fires on every accepted update that changed the
// visible orientation: drag samples, momentum ticks, nudges, Euler sets,
// animation steps.
type OrientationChangedEvent struct {
	Orientation mgl64.Quat
}

func (e OrientationChangedEvent) Type() EventType { return ORIENTATION_CHANGED }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager. Dispatch is synchronous and happens while the controller
// holds its lock: listeners must not call back into the controller. Subscribe
// during setup, before input or ticks are fed.
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// emit dispatches an event to its listeners immediately. Unlike a physics
// step there is no substep batching here, so no buffer/flush cycle.
func (e *Events) emit(event Event) {
	for _, listener := range e.listeners[event.Type()] {
		listener(event)
	}
}
