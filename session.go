package radial

import (
	"github.com/google/uuid"
)

// SessionState is the lifecycle state of a Session.
type SessionState uint8

const (
	SessionActive    SessionState = iota // tracking pointer moves
	SessionCommitted                     // released over a category and option
	SessionCancelled                     // released without a full hover
)

// String returns a short name for the state.
func (s SessionState) String() string {
	switch s {
	case SessionActive:
		return "active"
	case SessionCommitted:
		return "committed"
	case SessionCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Selection is the payload of a committed session.
type Selection struct {
	SessionID  string
	CategoryID string
	Option     int
	// Category is the committed category; its Child decides drill-down.
	Category *Category
}

// Outcome is the terminal result of Session.End. Selection is only meaningful
// when State is SessionCommitted.
type Outcome struct {
	State     SessionState
	Selection Selection
}

// Session tracks one continuous pointer-down to pointer-up interaction
// against a partition. A session is consumed exactly once by End and is inert
// afterwards.
type Session struct {
	id        string
	partition *Partition
	anchor    Vec2
	state     SessionState
	hover     Hit

	start     Vec2
	last      Vec2
	maxTravel float64

	startInDeadZone bool
	insideDeadZone  bool
}

// NewSession starts a session at pointer-down position pos. The anchor is
// fixed for the session's lifetime. The initial hover is empty; the press
// position itself is not hit tested beyond recording whether it landed in
// the dead zone.
func NewSession(p *Partition, anchor, pos Vec2) *Session {
	s := &Session{
		id:        uuid.NewString(),
		partition: p,
		anchor:    anchor,
		state:     SessionActive,
		hover:     noHit,
		start:     pos,
		last:      pos,
	}
	s.insideDeadZone = s.inDeadZone(pos)
	s.startInDeadZone = s.insideDeadZone
	return s
}

// ID returns a unique id for log and event correlation.
func (s *Session) ID() string { return s.id }

// Partition returns the partition the session hit tests against.
func (s *Session) Partition() *Partition { return s.partition }

// Anchor returns the session's fixed anchor.
func (s *Session) Anchor() Vec2 { return s.anchor }

// State returns the lifecycle state.
func (s *Session) State() SessionState { return s.state }

// Hover returns the current hover.
func (s *Session) Hover() Hit { return s.hover }

// Start returns the press position.
func (s *Session) Start() Vec2 { return s.start }

// Last returns the most recent pointer position.
func (s *Session) Last() Vec2 { return s.last }

// InsideDeadZone reports whether the last sample was inside the dead zone.
func (s *Session) InsideDeadZone() bool { return s.insideDeadZone }

// StartedInDeadZone reports whether the press landed inside the dead zone.
func (s *Session) StartedInDeadZone() bool { return s.startInDeadZone }

// MaxTravel returns the largest distance the pointer has been from the press
// position during the session.
func (s *Session) MaxTravel() float64 { return s.maxTravel }

// Update hit tests a pointer-move sample. It reports whether the hover
// changed; leaving a category and coming back reports a change each time.
func (s *Session) Update(pos Vec2) (bool, error) {
	if s.state != SessionActive {
		return false, ErrSessionEnded
	}
	return s.sample(pos), nil
}

// End applies the release position as a final sample and evaluates the hover
// once: a category with an option commits, anything else cancels. changed
// reports whether the final sample altered the hover.
func (s *Session) End(pos Vec2) (out Outcome, changed bool, err error) {
	if s.state != SessionActive {
		return Outcome{State: s.state}, false, ErrSessionEnded
	}
	changed = s.sample(pos)
	if s.hover.HasOption() {
		s.state = SessionCommitted
		return Outcome{
			State: SessionCommitted,
			Selection: Selection{
				SessionID:  s.id,
				CategoryID: s.hover.Category.id,
				Option:     s.hover.Option,
				Category:   s.hover.Category,
			},
		}, changed, nil
	}
	s.state = SessionCancelled
	return Outcome{State: SessionCancelled}, changed, nil
}

func (s *Session) sample(pos Vec2) bool {
	s.last = pos
	if t := pos.Sub(s.start).Len(); t > s.maxTravel {
		s.maxTravel = t
	}
	s.insideDeadZone = s.inDeadZone(pos)
	h := ResolvePoint(s.partition, s.anchor, pos)
	if h.Equal(s.hover) {
		return false
	}
	s.hover = h
	return true
}

func (s *Session) inDeadZone(pos Vec2) bool {
	return pos.Sub(s.anchor).Len() <= s.partition.hit.DeadZoneRadius
}
