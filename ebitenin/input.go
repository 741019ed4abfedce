// Package ebitenin feeds Ebitengine mouse and touch input into a radial menu
// controller.
//
// Call Update once per tick from your ebiten.Game.Update:
//
//	in := ebitenin.New(func() radial.Vec2 { return menuCenter })
//
//	func (g *Game) Update() error {
//		return in.Update(g.menu)
//	}
//
// Only one pointer track is followed at a time. While a touch owns the track,
// the mouse and any additional touches are ignored.
package ebitenin

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/radial"
)

// AnchorFunc returns the current menu center in screen coordinates. It is
// sampled on every event; the controller keeps the value from pointer-down.
type AnchorFunc func() radial.Vec2

// tracker turns per-tick pressed/position samples into pointer phases.
type tracker struct {
	down bool
	last radial.Vec2
}

// next returns the phase for this tick's sample, or ok=false when nothing
// happened (released and idle, or held without moving).
func (t *tracker) next(pressed bool, pos radial.Vec2) (phase radial.PointerPhase, at radial.Vec2, ok bool) {
	switch {
	case pressed && !t.down:
		t.down = true
		t.last = pos
		return radial.PointerDown, pos, true
	case pressed && t.down:
		if pos == t.last {
			return 0, pos, false
		}
		t.last = pos
		return radial.PointerMove, pos, true
	case !pressed && t.down:
		t.down = false
		return radial.PointerUp, t.last, true
	default:
		return 0, pos, false
	}
}

// Input polls Ebitengine pointer state and forwards it to a controller.
type Input struct {
	anchor AnchorFunc
	tr     tracker

	touchID  ebiten.TouchID
	touching bool
	touchBuf []ebiten.TouchID
}

// New returns an Input that anchors events with anchor.
func New(anchor AnchorFunc) *Input {
	return &Input{anchor: anchor}
}

// Update reads this tick's pointer state and delivers at most one event to c.
// Closed controllers are skipped and the track is reset.
func (in *Input) Update(c radial.Controller) error {
	pressed, pos := in.poll()
	return in.feed(c, pressed, pos)
}

// Reset forgets the current track without emitting a release. Use it after
// swapping controllers mid-gesture.
func (in *Input) Reset() {
	in.tr = tracker{}
	in.touching = false
}

func (in *Input) feed(c radial.Controller, pressed bool, pos radial.Vec2) error {
	if c == nil || c.Closed() {
		in.Reset()
		return nil
	}
	phase, at, ok := in.tr.next(pressed, pos)
	if !ok {
		return nil
	}
	return c.HandlePointer(radial.PointerEvent{Phase: phase, Pos: at, Anchor: in.anchor()})
}

// poll samples the touch that owns the track, a newly pressed touch, or the
// left mouse button, in that order.
func (in *Input) poll() (bool, radial.Vec2) {
	if in.touching {
		in.touchBuf = ebiten.AppendTouchIDs(in.touchBuf[:0])
		for _, id := range in.touchBuf {
			if id == in.touchID {
				x, y := ebiten.TouchPosition(id)
				return true, radial.Vec2{X: float64(x), Y: float64(y)}
			}
		}
		in.touching = false
		return false, in.tr.last
	}
	if !in.tr.down {
		in.touchBuf = inpututil.AppendJustPressedTouchIDs(in.touchBuf[:0])
		if len(in.touchBuf) > 0 {
			in.touchID = in.touchBuf[0]
			in.touching = true
			x, y := ebiten.TouchPosition(in.touchID)
			return true, radial.Vec2{X: float64(x), Y: float64(y)}
		}
	}
	mx, my := ebiten.CursorPosition()
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), radial.Vec2{X: float64(mx), Y: float64(my)}
}
