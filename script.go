package radial

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptPoint is a position given either in screen coordinates (x, y) or in
// polar coordinates around the current anchor (angle, distance).
type scriptPoint struct {
	X        *float64 `yaml:"x,omitempty"`
	Y        *float64 `yaml:"y,omitempty"`
	Angle    *float64 `yaml:"angle,omitempty"`
	Distance *float64 `yaml:"distance,omitempty"`
}

// scriptStep is a single action in a gesture script.
type scriptStep struct {
	Action      string `yaml:"action"`
	scriptPoint `yaml:",inline"`
	From        *scriptPoint `yaml:"from,omitempty"`
	To          *scriptPoint `yaml:"to,omitempty"`
	Frames      int          `yaml:"frames,omitempty"`
}

// Script is a parsed gesture script.
type Script struct {
	Steps []scriptStep `yaml:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true,
	"tap": true, "drag": true, "wait": true, "anchor": true,
}

// LoadScript parses a gesture script. YAML and JSON are both accepted:
//
//	steps:
//	  - {action: press}                        # at the anchor
//	  - {action: move, angle: 10, distance: 95}
//	  - {action: release, angle: 10, distance: 95}
//	  - {action: drag, to: {angle: 200, distance: 150}, frames: 6}
//	  - {action: tap}
//	  - {action: wait, frames: 3}
//	  - {action: anchor, x: 320, y: 240}
func LoadScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "anchor" && (st.X == nil || st.Y == nil) {
			return nil, fmt.Errorf("parse gesture script: step %d: anchor needs x and y", i)
		}
	}
	return &s, nil
}

// ScriptRunner replays a Script against a Controller, one pointer event per
// frame. Call Step once per frame, or RunAll to replay everything at once.
type ScriptRunner struct {
	script    *Script
	inject    *Injector
	conv      AngleConvention
	cursor    int
	waitCount int
	done      bool
}

// NewScriptRunner returns a runner whose polar positions are measured around
// anchor. Angles follow the convention of the partition the controller is
// hit testing when a step starts; conv is used for controllers that do not
// expose one.
func NewScriptRunner(s *Script, anchor Vec2, conv AngleConvention) *ScriptRunner {
	return &ScriptRunner{script: s, inject: NewInjector(anchor), conv: conv}
}

// Done reports whether every step has been executed and delivered.
func (r *ScriptRunner) Done() bool { return r.done }

// Step advances the runner by one frame, delivering at most one pointer event
// to c. Errors are wrapped with the index of the step that produced them.
func (r *ScriptRunner) Step(c Controller) error {
	if r.done {
		return nil
	}
	if r.inject.Len() == 0 {
		if r.waitCount > 0 {
			r.waitCount--
			return nil
		}
		if r.cursor >= len(r.script.Steps) {
			r.done = true
			return nil
		}
		r.enqueue(r.script.Steps[r.cursor], r.convention(c))
		r.cursor++
	}
	if _, err := r.inject.Step(c); err != nil {
		return fmt.Errorf("gesture step %d: %w", r.cursor-1, err)
	}
	if r.cursor >= len(r.script.Steps) && r.waitCount == 0 && r.inject.Len() == 0 {
		r.done = true
	}
	return nil
}

// RunAll steps until the script is done or an error occurs.
func (r *ScriptRunner) RunAll(c Controller) error {
	for !r.done {
		if err := r.Step(c); err != nil {
			return err
		}
	}
	return nil
}

// convention returns the angle convention of c's current partition, or the
// runner's fallback.
func (r *ScriptRunner) convention(c Controller) AngleConvention {
	if pc, ok := c.(interface{ Partition() *Partition }); ok {
		if p := pc.Partition(); p != nil {
			return p.Convention()
		}
	}
	return r.conv
}

func (r *ScriptRunner) enqueue(st scriptStep, conv AngleConvention) {
	in := r.inject
	switch st.Action {
	case "press":
		p := r.resolve(&st.scriptPoint, conv)
		in.Press(p.X, p.Y)
	case "move":
		p := r.resolve(&st.scriptPoint, conv)
		in.Move(p.X, p.Y)
	case "release":
		p := r.resolve(&st.scriptPoint, conv)
		in.Release(p.X, p.Y)
	case "tap":
		p := r.resolve(&st.scriptPoint, conv)
		in.Tap(p.X, p.Y)
	case "drag":
		in.Drag(r.resolve(st.From, conv), r.resolve(st.To, conv), st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "anchor":
		in.Anchor = Vec2{*st.X, *st.Y}
	}
}

// resolve turns a script point into screen space. A missing point, or one
// with neither form set, is the anchor.
func (r *ScriptRunner) resolve(p *scriptPoint, conv AngleConvention) Vec2 {
	a := r.inject.Anchor
	if p == nil {
		return a
	}
	if p.Angle != nil || p.Distance != nil {
		var angle, dist float64
		if p.Angle != nil {
			angle = *p.Angle
		}
		if p.Distance != nil {
			dist = *p.Distance
		}
		return FromPolar(a, angle, dist, conv)
	}
	out := a
	if p.X != nil {
		out.X = *p.X
	}
	if p.Y != nil {
		out.Y = *p.Y
	}
	return out
}
