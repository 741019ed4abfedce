package radial

import (
	"errors"
	"testing"
)

// recorder is a Controller that records what it is fed.
type recorder struct {
	events []PointerEvent
	err    error
	closed bool
}

func (r *recorder) HandlePointer(ev PointerEvent) error {
	r.events = append(r.events, ev)
	return r.err
}

func (r *recorder) Closed() bool { return r.closed }

func (r *recorder) phases() []PointerPhase {
	out := make([]PointerPhase, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Phase
	}
	return out
}

func TestInjectTap(t *testing.T) {
	in := NewInjector(Vec2{X: 10, Y: 10})
	in.Tap(50, 50)
	if in.Len() != 2 {
		t.Fatalf("expected 2 queued events, got %d", in.Len())
	}

	rec := &recorder{}
	// Frame 1: press
	if ok, err := in.Step(rec); !ok || err != nil {
		t.Fatalf("Step = %v, %v", ok, err)
	}
	if in.Len() != 1 || rec.events[0].Phase != PointerDown {
		t.Fatalf("after frame 1: queue %d, events %v", in.Len(), rec.phases())
	}
	// Frame 2: release
	if ok, err := in.Step(rec); !ok || err != nil {
		t.Fatalf("Step = %v, %v", ok, err)
	}
	if ok, _ := in.Step(rec); ok {
		t.Error("Step on an empty queue should report false")
	}
	for _, ev := range rec.events {
		if ev.Pos != (Vec2{X: 50, Y: 50}) || ev.Anchor != (Vec2{X: 10, Y: 10}) {
			t.Errorf("event %+v", ev)
		}
	}
}

func TestInjectDrag(t *testing.T) {
	in := NewInjector(Vec2{})
	// frame 0: press at (10,10)
	// frames 1-3: moves at 57.5, 105, 152.5
	// frame 4: release at (200,200)
	in.Drag(Vec2{X: 10, Y: 10}, Vec2{X: 200, Y: 200}, 5)
	if in.Len() != 5 {
		t.Fatalf("expected 5 queued events, got %d", in.Len())
	}
	rec := &recorder{}
	if err := in.Drain(rec); err != nil {
		t.Fatal(err)
	}
	want := []PointerPhase{PointerDown, PointerMove, PointerMove, PointerMove, PointerUp}
	got := rec.phases()
	if len(got) != len(want) {
		t.Fatalf("phases = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d phase = %v, want %v", i, got[i], want[i])
		}
	}
	if p := rec.events[2].Pos; !approxEqual(p.X, 105) || !approxEqual(p.Y, 105) {
		t.Errorf("midpoint = %v, want (105, 105)", p)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	in := NewInjector(Vec2{})
	in.Drag(Vec2{}, Vec2{X: 10}, 0)
	if in.Len() != 2 {
		t.Errorf("expected press and release only, got %d events", in.Len())
	}
}

func TestInjectFlick(t *testing.T) {
	anchor := Vec2{X: 100, Y: 100}
	in := NewInjector(anchor)
	in.Flick(90, 50, ClockwiseFromUp, 3)
	rec := &recorder{}
	if err := in.Drain(rec); err != nil {
		t.Fatal(err)
	}
	if rec.events[0].Pos != anchor {
		t.Errorf("flick starts at %v, want the anchor", rec.events[0].Pos)
	}
	end := rec.events[len(rec.events)-1].Pos
	if !approxEqual(end.X, 150) || !approxEqual(end.Y, 100) {
		t.Errorf("flick ends at %v, want (150, 100)", end)
	}
}

func TestInjectDrainStopsOnError(t *testing.T) {
	in := NewInjector(Vec2{})
	in.Drag(Vec2{}, Vec2{X: 100}, 4)
	rec := &recorder{err: ErrMenuClosed}
	if err := in.Drain(rec); !errors.Is(err, ErrMenuClosed) {
		t.Fatalf("Drain = %v, want ErrMenuClosed", err)
	}
	if len(rec.events) != 1 {
		t.Errorf("controller saw %d events, want 1", len(rec.events))
	}
	if in.Len() != 0 {
		t.Errorf("queue should be dropped, %d left", in.Len())
	}
}

// The full scenario from a fresh wizard: press at the anchor, move to 10°
// at distance 95, release.
func TestInjectDrivesSession(t *testing.T) {
	w := newTestWizard(t, WizardConfig{Fields: []Field{{Name: "kind"}}})
	var got CommitContext
	w.OnCommitted(func(ctx CommitContext) { got = ctx })

	anchor := Vec2{X: 320, Y: 240}
	in := NewInjector(anchor)
	in.Press(anchor.X, anchor.Y)
	if err := in.Drain(w); err != nil {
		t.Fatal(err)
	}
	if h := w.Session().Hover(); h.HasCategory() {
		t.Errorf("hover after press = %+v, want none", h)
	}
	p := at(anchor, 10, 95)
	in.Move(p.X, p.Y)
	if err := in.Drain(w); err != nil {
		t.Fatal(err)
	}
	if h := w.Session().Hover(); h.CategoryID() != "category0" || h.Option != 0 {
		t.Errorf("hover after move = (%q, %d)", h.CategoryID(), h.Option)
	}
	in.Release(p.X, p.Y)
	if err := in.Drain(w); err != nil {
		t.Fatal(err)
	}
	if got.CategoryID != "category0" || got.Option != 0 || got.Field != "kind" {
		t.Errorf("committed = %+v", got)
	}
}
