package radial

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// logged is the comparable part of a MenuEvent; session ids are random.
type logged struct {
	Type     EventType
	Category string
	Option   int
	Field    string
	Depth    int
	Reason   CloseReason
}

// eventLog is an EventSink that records what a menu emits.
type eventLog struct {
	events []MenuEvent
}

func (l *eventLog) EmitEvent(ev MenuEvent) { l.events = append(l.events, ev) }

func (l *eventLog) types() []EventType {
	out := make([]EventType, len(l.events))
	for i, ev := range l.events {
		out[i] = ev.Type
	}
	return out
}

func (l *eventLog) entries() []logged {
	out := make([]logged, len(l.events))
	for i, ev := range l.events {
		out[i] = logged{ev.Type, ev.CategoryID, ev.Option, ev.Field, ev.Depth, ev.Reason}
	}
	return out
}

func (l *eventLog) reset() { l.events = nil }

// flick drags from the anchor to (angle, distance) with a press and a
// release, no intermediate moves.
func flick(t *testing.T, c Controller, anchor Vec2, angle, distance float64) error {
	t.Helper()
	in := NewInjector(anchor)
	in.Flick(angle, distance, ClockwiseFromUp, 2)
	return in.Drain(c)
}

func tap(t *testing.T, c Controller, anchor Vec2) error {
	t.Helper()
	in := NewInjector(anchor)
	in.Tap(anchor.X, anchor.Y)
	return in.Drain(c)
}

func TestMenuMisuse(t *testing.T) {
	p := sixWedges(t)
	core, logs := observer.New(zap.WarnLevel)
	nav, err := NewNavigator(NavigatorConfig{Root: p}, WithLogger(zap.New(core)))
	if err != nil {
		t.Fatal(err)
	}
	anchor := Vec2{X: 100, Y: 100}

	if err := nav.HandlePointer(PointerEvent{Phase: PointerMove, Pos: anchor, Anchor: anchor}); !errors.Is(err, ErrNoSession) {
		t.Errorf("move without press: %v, want ErrNoSession", err)
	}
	if err := nav.HandlePointer(PointerEvent{Phase: PointerUp, Pos: anchor, Anchor: anchor}); !errors.Is(err, ErrNoSession) {
		t.Errorf("release without press: %v, want ErrNoSession", err)
	}
	if err := nav.HandlePointer(PointerEvent{Phase: PointerDown, Pos: anchor, Anchor: anchor}); err != nil {
		t.Fatal(err)
	}
	if err := nav.HandlePointer(PointerEvent{Phase: PointerDown, Pos: anchor, Anchor: anchor}); !errors.Is(err, ErrSessionActive) {
		t.Errorf("second press: %v, want ErrSessionActive", err)
	}
	if nav.Session() == nil {
		t.Error("rejected press must not discard the live session")
	}

	nav.Close()
	if nav.Session() != nil {
		t.Error("Close should drop the live session")
	}
	if err := nav.HandlePointer(PointerEvent{Phase: PointerDown, Pos: anchor, Anchor: anchor}); !errors.Is(err, ErrMenuClosed) {
		t.Errorf("press after close: %v, want ErrMenuClosed", err)
	}

	if n := logs.FilterMessage("Rejected pointer event").Len(); n != 4 {
		t.Errorf("expected 4 rejection warnings, got %d", n)
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	p := sixWedges(t)
	nav, err := NewNavigator(NavigatorConfig{Root: p})
	if err != nil {
		t.Fatal(err)
	}

	var hovers, commits, closes int
	hh := nav.OnHoverChanged(func(HoverContext) { hovers++ })
	nav.OnCommitted(func(CommitContext) { commits++ })
	ch := nav.OnCommitted(func(CommitContext) { commits += 10 })
	nav.OnClosed(func(CloseReason) { closes++ })

	hh.Remove()
	ch.Remove()
	ch.Remove() // removing twice is a no-op
	CallbackHandle{}.Remove()

	if err := flick(t, nav, Vec2{}, 10, 95); err != nil {
		t.Fatal(err)
	}
	if hovers != 0 {
		t.Errorf("removed hover callback fired %d times", hovers)
	}
	if commits != 1 {
		t.Errorf("commits = %d, want 1", commits)
	}
	if closes != 1 {
		t.Errorf("closes = %d, want 1", closes)
	}
}

func TestCallbackRemovedDuringDispatch(t *testing.T) {
	w := newTestWizard(t, WizardConfig{Fields: []Field{{Name: "a"}, {Name: "b"}, {Name: "c"}}})

	var once, later, steady int
	var onceHandle, laterHandle CallbackHandle
	onceHandle = w.OnCommitted(func(CommitContext) {
		once++
		onceHandle.Remove()
	})
	w.OnCommitted(func(CommitContext) {
		steady++
		laterHandle.Remove()
	})
	laterHandle = w.OnCommitted(func(CommitContext) { later++ })

	for i, angle := range []float64{10, 70, 130} {
		if err := flick(t, w, Vec2{}, angle, 95); err != nil {
			t.Fatalf("gesture %d: %v", i, err)
		}
	}
	// A dispatch runs over the handlers registered when it started.
	if once != 1 || later != 1 || steady != 3 {
		t.Errorf("once %d later %d steady %d, want 1 1 3", once, later, steady)
	}
	if !w.Complete() {
		t.Error("wizard should be complete after three commits")
	}
}

func TestCloseFiresOnce(t *testing.T) {
	w := newTestWizard(t, WizardConfig{Fields: []Field{{Name: "a"}}})
	var reasons []CloseReason
	w.OnClosed(func(r CloseReason) { reasons = append(reasons, r) })
	w.Close()
	w.Close()
	if diff := cmp.Diff([]CloseReason{CloseRequested}, reasons); diff != "" {
		t.Errorf("close reasons mismatch (-want +got):\n%s", diff)
	}
}

func TestSetEventSink(t *testing.T) {
	nav, err := NewNavigator(NavigatorConfig{Root: sixWedges(t)})
	if err != nil {
		t.Fatal(err)
	}
	log := &eventLog{}
	nav.SetEventSink(log)
	nav.SetEventSink(nil)
	nav.Close()
	if len(log.events) != 0 {
		t.Errorf("detached sink received %d events", len(log.events))
	}
}
