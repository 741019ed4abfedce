package radial

// Injector queues synthetic pointer events and feeds them to a Controller one
// at a time, the way a host would deliver them frame by frame. Positions are
// in screen coordinates; every queued event carries the injector's anchor.
type Injector struct {
	Anchor Vec2
	queue  []PointerEvent
}

// NewInjector returns an injector whose events are anchored at anchor.
func NewInjector(anchor Vec2) *Injector {
	return &Injector{Anchor: anchor}
}

// Len returns the number of queued events.
func (in *Injector) Len() int { return len(in.queue) }

// Press queues a pointer-down at (x, y).
func (in *Injector) Press(x, y float64) {
	in.push(PointerDown, x, y)
}

// Move queues a pointer-move at (x, y). Use between Press and Release to
// simulate a drag.
func (in *Injector) Move(x, y float64) {
	in.push(PointerMove, x, y)
}

// Release queues a pointer-up at (x, y).
func (in *Injector) Release(x, y float64) {
	in.push(PointerUp, x, y)
}

// Tap queues a press followed by a release at the same point.
func (in *Injector) Tap(x, y float64) {
	in.Press(x, y)
	in.Release(x, y)
}

// Drag queues a full drag: press at from, linearly interpolated moves over
// frames-2 intermediate frames, and release at to. Minimum frames is 2.
func (in *Injector) Drag(from, to Vec2, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.Press(from.X, from.Y)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.Move(from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t)
	}
	in.Release(to.X, to.Y)
}

// Flick queues a drag from the anchor out to the given angle and distance,
// measured with conv.
func (in *Injector) Flick(angle, distance float64, conv AngleConvention, frames int) {
	in.Drag(in.Anchor, FromPolar(in.Anchor, angle, distance, conv), frames)
}

// Step pops one event and feeds it to c. It returns false when the queue was
// empty.
func (in *Injector) Step(c Controller) (bool, error) {
	if len(in.queue) == 0 {
		return false, nil
	}
	ev := in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue = in.queue[:len(in.queue)-1]
	return true, c.HandlePointer(ev)
}

// Drain feeds every queued event to c, stopping at the first error. The
// remaining events are dropped on error.
func (in *Injector) Drain(c Controller) error {
	for {
		ok, err := in.Step(c)
		if err != nil {
			in.queue = in.queue[:0]
			return err
		}
		if !ok {
			return nil
		}
	}
}

func (in *Injector) push(phase PointerPhase, x, y float64) {
	in.queue = append(in.queue, PointerEvent{Phase: phase, Pos: Vec2{x, y}, Anchor: in.Anchor})
}
