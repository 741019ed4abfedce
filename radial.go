package radial

import "math"

// Vec2 is a 2D point or vector in screen space. The origin is at the
// top-left, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// AngleConvention selects the reference axis and rotation direction used to
// turn a pointer offset into an angle.
type AngleConvention uint8

const (
	ClockwiseFromUp           AngleConvention = iota // 0° points up, angles grow clockwise
	CounterClockwiseFromRight                        // 0° points right, angles grow counterclockwise
)

// String returns the config name of the convention.
func (c AngleConvention) String() string {
	switch c {
	case ClockwiseFromUp:
		return "clockwise_from_up"
	case CounterClockwiseFromRight:
		return "counterclockwise_from_right"
	default:
		return "unknown"
	}
}

// PointerPhase identifies one step of a pointer track.
type PointerPhase uint8

const (
	PointerDown PointerPhase = iota // pointer pressed; starts a session
	PointerMove                     // pointer moved while pressed
	PointerUp                       // pointer released; ends the session
)

// String returns a short lowercase name for the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerEvent is one sample of the host's pointer stream. Anchor is the
// current center of the menu; it is captured on PointerDown and ignored on
// later events of the same track.
type PointerEvent struct {
	Phase  PointerPhase
	Pos    Vec2
	Anchor Vec2
}

// Controller consumes a pointer stream. Wizard and Navigator implement it.
type Controller interface {
	// HandlePointer processes one event synchronously. It returns an error
	// only for caller misuse (see ErrSessionActive and friends).
	HandlePointer(ev PointerEvent) error
	// Closed reports whether the menu has closed and stopped accepting events.
	Closed() bool
}

// EventType identifies a kind of menu event.
type EventType uint8

const (
	EventHoverChanged    EventType = iota // hovered category/option changed
	EventCommitted                        // a session committed a selection
	EventCancelled                        // a session ended without a valid hover
	EventComplete                         // every required wizard field is filled
	EventFinalize                         // the wizard was finalized by a center tap
	EventAction                           // a drill-down reached a terminal option
	EventPartitionPushed                  // a child partition became active
	EventPartitionPopped                  // the active partition returned to its parent
	EventClosed                           // the menu closed
)

// String returns a short name for the event type.
func (t EventType) String() string {
	switch t {
	case EventHoverChanged:
		return "hover"
	case EventCommitted:
		return "committed"
	case EventCancelled:
		return "cancelled"
	case EventComplete:
		return "complete"
	case EventFinalize:
		return "finalize"
	case EventAction:
		return "action"
	case EventPartitionPushed:
		return "pushed"
	case EventPartitionPopped:
		return "popped"
	case EventClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// CloseReason says why a menu closed.
type CloseReason uint8

const (
	CloseCancelled CloseReason = iota // a cancelled session abandoned the menu
	CloseFinalized                    // the wizard was finalized
	CloseAction                       // the drill-down dispatched an action
	CloseRequested                    // the host called Close
)

// String returns a short name for the reason.
func (r CloseReason) String() string {
	switch r {
	case CloseCancelled:
		return "cancelled"
	case CloseFinalized:
		return "finalized"
	case CloseAction:
		return "action"
	case CloseRequested:
		return "requested"
	default:
		return "unknown"
	}
}

// EventSink is the interface for optional event forwarding. When set on a
// controller, every produced event is also emitted here as a MenuEvent.
type EventSink interface {
	EmitEvent(event MenuEvent)
}

// MenuEvent carries event data for an EventSink.
type MenuEvent struct {
	Type      EventType
	SessionID string
	// Selection fields (hover, committed, action). Option is -1 when unset.
	CategoryID string
	Option     int
	// Field is the wizard field a commit was stored under.
	Field string
	// Depth is the partition stack depth after a push or pop.
	Depth int
	// Composite is a snapshot taken when EventComplete or EventFinalize fired.
	Composite *Composite
	Reason    CloseReason
}
