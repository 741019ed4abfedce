package ebitenin

import (
	"errors"
	"testing"

	"github.com/phanxgames/radial"
)

type recorder struct {
	events []radial.PointerEvent
	closed bool
	err    error
}

func (r *recorder) HandlePointer(ev radial.PointerEvent) error {
	r.events = append(r.events, ev)
	return r.err
}

func (r *recorder) Closed() bool { return r.closed }

func TestTrackerPhases(t *testing.T) {
	var tr tracker
	steps := []struct {
		name    string
		pressed bool
		pos     radial.Vec2
		want    radial.PointerPhase
		wantAt  radial.Vec2
		wantOK  bool
	}{
		{"idle", false, radial.Vec2{X: 1, Y: 1}, 0, radial.Vec2{}, false},
		{"press", true, radial.Vec2{X: 10, Y: 10}, radial.PointerDown, radial.Vec2{X: 10, Y: 10}, true},
		{"hold still", true, radial.Vec2{X: 10, Y: 10}, 0, radial.Vec2{}, false},
		{"move", true, radial.Vec2{X: 20, Y: 10}, radial.PointerMove, radial.Vec2{X: 20, Y: 10}, true},
		{"release reports last held position", false, radial.Vec2{X: 99, Y: 99}, radial.PointerUp, radial.Vec2{X: 20, Y: 10}, true},
		{"idle again", false, radial.Vec2{X: 99, Y: 99}, 0, radial.Vec2{}, false},
	}
	for _, st := range steps {
		phase, at, ok := tr.next(st.pressed, st.pos)
		if ok != st.wantOK {
			t.Fatalf("%s: ok = %v, want %v", st.name, ok, st.wantOK)
		}
		if !ok {
			continue
		}
		if phase != st.want || at != st.wantAt {
			t.Errorf("%s: got %v at %v, want %v at %v", st.name, phase, at, st.want, st.wantAt)
		}
	}
}

func TestFeedForwardsWithAnchor(t *testing.T) {
	anchor := radial.Vec2{X: 320, Y: 240}
	in := New(func() radial.Vec2 { return anchor })
	rec := &recorder{}

	samples := []struct {
		pressed bool
		pos     radial.Vec2
	}{
		{true, radial.Vec2{X: 320, Y: 240}},
		{true, radial.Vec2{X: 330, Y: 150}},
		{true, radial.Vec2{X: 330, Y: 150}},
		{false, radial.Vec2{X: 330, Y: 150}},
	}
	for _, s := range samples {
		if err := in.feed(rec, s.pressed, s.pos); err != nil {
			t.Fatal(err)
		}
	}

	want := []radial.PointerPhase{radial.PointerDown, radial.PointerMove, radial.PointerUp}
	if len(rec.events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(rec.events))
	}
	for i, ev := range rec.events {
		if ev.Phase != want[i] {
			t.Errorf("event %d phase = %v, want %v", i, ev.Phase, want[i])
		}
		if ev.Anchor != anchor {
			t.Errorf("event %d anchor = %v, want %v", i, ev.Anchor, anchor)
		}
	}
}

func TestFeedSkipsClosedController(t *testing.T) {
	in := New(func() radial.Vec2 { return radial.Vec2{} })
	rec := &recorder{}

	if err := in.feed(rec, true, radial.Vec2{X: 5}); err != nil {
		t.Fatal(err)
	}
	rec.closed = true
	if err := in.feed(rec, true, radial.Vec2{X: 50}); err != nil {
		t.Fatal(err)
	}
	if len(rec.events) != 1 {
		t.Fatalf("closed controller should not receive events, got %d", len(rec.events))
	}
	if in.tr.down {
		t.Error("track should reset when the controller is closed")
	}
}

func TestFeedReturnsControllerError(t *testing.T) {
	in := New(func() radial.Vec2 { return radial.Vec2{} })
	rec := &recorder{err: radial.ErrSessionActive}
	err := in.feed(rec, true, radial.Vec2{})
	if !errors.Is(err, radial.ErrSessionActive) {
		t.Errorf("expected ErrSessionActive, got %v", err)
	}
}

func TestFeedDrivesWizard(t *testing.T) {
	p, err := radial.NewPartition(radial.PartitionConfig{
		HitConfig: radial.HitConfig{DeadZoneRadius: 30, OptionRevealRadius: 60},
		BandStep:  40,
		Categories: []radial.CategoryConfig{
			{ID: "all", Start: 0, End: 360, Options: []radial.OptionConfig{{Label: "x"}}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	w, err := radial.NewWizard(radial.WizardConfig{
		Partition: p,
		Fields:    []radial.Field{{Name: "only"}},
	}, radial.VocabularyFunc(func(string, string, int) (any, error) { return "x", nil }))
	if err != nil {
		t.Fatal(err)
	}
	var committed int
	w.OnCommitted(func(radial.CommitContext) { committed++ })

	in := New(func() radial.Vec2 { return radial.Vec2{} })
	for _, s := range []struct {
		pressed bool
		pos     radial.Vec2
	}{
		{true, radial.Vec2{}},
		{true, radial.Vec2{X: 100}},
		{false, radial.Vec2{X: 100}},
	} {
		if err := in.feed(w, s.pressed, s.pos); err != nil {
			t.Fatal(err)
		}
	}
	if committed != 1 {
		t.Errorf("committed = %d, want 1", committed)
	}
	if !w.Complete() {
		t.Error("wizard should be complete")
	}
}
