// Package feedback turns radial menu notifications into host-side feedback:
// eased highlight values for the renderer and haptic pulses.
//
// Nothing here feeds back into the menu. A Highlighter only listens, and the
// host advances it from its own frame loop:
//
//	hl := feedback.NewHighlighter(0.15, ease.OutCubic)
//	hl.Attach(wizard)
//	// each frame:
//	hl.Update(dt)
//	scale := 1 + 0.2*hl.Highlight("duration")
package feedback

import (
	"github.com/phanxgames/radial"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Haptics receives fire-and-forget pulses. Implementations must not block.
type Haptics interface {
	Tick()    // hover moved to a new category or option
	Confirm() // a session committed
	Cancel()  // a session cancelled
}

// Source is the subset of a radial controller a Highlighter listens to.
// Both *radial.Wizard and *radial.Navigator satisfy it.
type Source interface {
	OnHoverChanged(fn func(radial.HoverContext)) radial.CallbackHandle
	OnCommitted(fn func(radial.CommitContext)) radial.CallbackHandle
	OnCancelled(fn func(radial.CancelContext)) radial.CallbackHandle
}

// channel is one eased 0..1 value.
type channel struct {
	tween  *gween.Tween
	value  float32
	target float32
}

func (c *channel) retarget(to, duration float32, fn ease.TweenFunc) {
	if c.target == to && (c.tween != nil || c.value == to) {
		return
	}
	c.target = to
	c.tween = gween.New(c.value, to, duration, fn)
}

func (c *channel) update(dt float32) {
	if c.tween == nil {
		return
	}
	val, finished := c.tween.Update(dt)
	c.value = val
	if finished {
		c.tween = nil
	}
}

// Highlighter eases a highlight value per category and an option-fan reveal
// value toward the current hover.
type Highlighter struct {
	duration float32
	fn       ease.TweenFunc

	categories map[string]*channel
	reveal     channel
	hovered    string
	option     int

	haptics Haptics
	handles []radial.CallbackHandle
}

// NewHighlighter returns a highlighter whose tweens last duration seconds
// using easing fn. A nil fn uses ease.Linear.
func NewHighlighter(duration float32, fn ease.TweenFunc) *Highlighter {
	if fn == nil {
		fn = ease.Linear
	}
	return &Highlighter{
		duration:   duration,
		fn:         fn,
		categories: make(map[string]*channel),
		option:     radial.NoOption,
	}
}

// SetHaptics sets the haptics device pulsed on hover, commit and cancel.
func (h *Highlighter) SetHaptics(hp Haptics) {
	h.haptics = hp
}

// Attach subscribes to src. Call Detach before attaching to another source.
func (h *Highlighter) Attach(src Source) {
	h.handles = append(h.handles,
		src.OnHoverChanged(h.Hover),
		src.OnCommitted(func(radial.CommitContext) {
			h.clear()
			if h.haptics != nil {
				h.haptics.Confirm()
			}
		}),
		src.OnCancelled(func(radial.CancelContext) {
			h.clear()
			if h.haptics != nil {
				h.haptics.Cancel()
			}
		}),
	)
}

// Detach removes every subscription made by Attach.
func (h *Highlighter) Detach() {
	for _, hd := range h.handles {
		hd.Remove()
	}
	h.handles = h.handles[:0]
}

// Hover retargets the tweens for a hover transition.
func (h *Highlighter) Hover(ctx radial.HoverContext) {
	id := ctx.Hit.CategoryID()
	if id != h.hovered {
		if prev := h.categories[h.hovered]; prev != nil {
			prev.retarget(0, h.duration, h.fn)
		}
		if id != "" {
			h.channel(id).retarget(1, h.duration, h.fn)
		}
		h.hovered = id
	}
	h.option = ctx.Hit.Option
	if ctx.Hit.HasOption() {
		h.reveal.retarget(1, h.duration, h.fn)
	} else {
		h.reveal.retarget(0, h.duration, h.fn)
	}
	if h.haptics != nil {
		h.haptics.Tick()
	}
}

// Update advances every tween by dt seconds.
func (h *Highlighter) Update(dt float32) {
	for _, c := range h.categories {
		c.update(dt)
	}
	h.reveal.update(dt)
}

// Highlight returns the eased highlight of category id in [0, 1] (before
// easing overshoot).
func (h *Highlighter) Highlight(id string) float64 {
	if c := h.categories[id]; c != nil {
		return float64(c.value)
	}
	return 0
}

// Reveal returns the eased option-fan reveal value.
func (h *Highlighter) Reveal() float64 {
	return float64(h.reveal.value)
}

// Hovered returns the hovered category id and option, or "" and
// radial.NoOption.
func (h *Highlighter) Hovered() (string, int) {
	return h.hovered, h.option
}

// Settled reports whether every tween has finished.
func (h *Highlighter) Settled() bool {
	if h.reveal.tween != nil {
		return false
	}
	for _, c := range h.categories {
		if c.tween != nil {
			return false
		}
	}
	return true
}

func (h *Highlighter) clear() {
	for _, c := range h.categories {
		c.retarget(0, h.duration, h.fn)
	}
	h.reveal.retarget(0, h.duration, h.fn)
	h.hovered = ""
	h.option = radial.NoOption
}

func (h *Highlighter) channel(id string) *channel {
	c := h.categories[id]
	if c == nil {
		c = &channel{}
		h.categories[id] = c
	}
	return c
}
