package radial

// --- Callback contexts ---

// HoverContext describes a hover transition.
type HoverContext struct {
	SessionID string
	Partition *Partition
	// Depth is the partition stack depth (1 = root).
	Depth int
	Hit   Hit
	// Field is the wizard field the session targets ("" for drill-down).
	Field string
}

// CommitContext describes a committed selection.
type CommitContext struct {
	SessionID  string
	Field      string
	CategoryID string
	Option     int
	// Value is the decoded wizard value; nil for drill-down commits.
	Value any
}

// CancelContext describes a cancelled session.
type CancelContext struct {
	SessionID string
	Depth     int
	Field     string
}

// ActionContext describes a terminal drill-down selection.
type ActionContext struct {
	SessionID  string
	CategoryID string
	Option     int
	// Path lists the category ids committed on the way down, ending with
	// CategoryID.
	Path []string
}

// PartitionContext describes a push or pop of the partition stack.
type PartitionContext struct {
	Partition *Partition
	Depth     int
}

// --- Handler registry ---

type handler[F any] struct {
	id uint32
	fn F
}

type handlerRegistry struct {
	hover     []handler[func(HoverContext)]
	committed []handler[func(CommitContext)]
	cancelled []handler[func(CancelContext)]
	complete  []handler[func(*Composite)]
	finalize  []handler[func(*Composite)]
	action    []handler[func(ActionContext)]
	pushed    []handler[func(PartitionContext)]
	popped    []handler[func(PartitionContext)]
	closedFns []handler[func(CloseReason)]
	nextID    uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventHoverChanged:
		h.reg.hover = removeHandler(h.reg.hover, h.id)
	case EventCommitted:
		h.reg.committed = removeHandler(h.reg.committed, h.id)
	case EventCancelled:
		h.reg.cancelled = removeHandler(h.reg.cancelled, h.id)
	case EventComplete:
		h.reg.complete = removeHandler(h.reg.complete, h.id)
	case EventFinalize:
		h.reg.finalize = removeHandler(h.reg.finalize, h.id)
	case EventAction:
		h.reg.action = removeHandler(h.reg.action, h.id)
	case EventPartitionPushed:
		h.reg.pushed = removeHandler(h.reg.pushed, h.id)
	case EventPartitionPopped:
		h.reg.popped = removeHandler(h.reg.popped, h.id)
	case EventClosed:
		h.reg.closedFns = removeHandler(h.reg.closedFns, h.id)
	}
}

// removeHandler returns a new slice without id. The old backing array is left
// untouched, so a dispatch loop ranging over it when a callback removes a
// handle keeps running over the list it started with.
func removeHandler[F any](s []handler[F], id uint32) []handler[F] {
	for i := range s {
		if s[i].id == id {
			out := make([]handler[F], 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...)
		}
	}
	return s
}

func addHandler[F any](r *handlerRegistry, s *[]handler[F], fn F, event EventType) CallbackHandle {
	r.nextID++
	id := r.nextID
	*s = append(*s, handler[F]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: event}
}

// OnHoverChanged registers a callback fired on every hover transition. It is
// advisory (visual/haptic feedback) and cannot influence the menu.
func (r *handlerRegistry) OnHoverChanged(fn func(HoverContext)) CallbackHandle {
	return addHandler(r, &r.hover, fn, EventHoverChanged)
}

// OnCommitted registers a callback fired once per committed session.
func (r *handlerRegistry) OnCommitted(fn func(CommitContext)) CallbackHandle {
	return addHandler(r, &r.committed, fn, EventCommitted)
}

// OnCancelled registers a callback fired when a session ends without a
// category and option hovered.
func (r *handlerRegistry) OnCancelled(fn func(CancelContext)) CallbackHandle {
	return addHandler(r, &r.cancelled, fn, EventCancelled)
}

// OnComplete registers a callback fired once when every required wizard
// field holds a value.
func (r *handlerRegistry) OnComplete(fn func(*Composite)) CallbackHandle {
	return addHandler(r, &r.complete, fn, EventComplete)
}

// OnFinalize registers a callback fired when a completed wizard is finalized.
// The menu is closed when it fires.
func (r *handlerRegistry) OnFinalize(fn func(*Composite)) CallbackHandle {
	return addHandler(r, &r.finalize, fn, EventFinalize)
}

// OnAction registers a callback fired when a drill-down commits a terminal
// category. The menu is closed when it fires.
func (r *handlerRegistry) OnAction(fn func(ActionContext)) CallbackHandle {
	return addHandler(r, &r.action, fn, EventAction)
}

// OnPartitionPushed registers a callback fired when a child partition becomes
// active. Hosts run their open/close transition here.
func (r *handlerRegistry) OnPartitionPushed(fn func(PartitionContext)) CallbackHandle {
	return addHandler(r, &r.pushed, fn, EventPartitionPushed)
}

// OnPartitionPopped registers a callback fired when the menu backs out to a
// parent partition.
func (r *handlerRegistry) OnPartitionPopped(fn func(PartitionContext)) CallbackHandle {
	return addHandler(r, &r.popped, fn, EventPartitionPopped)
}

// OnClosed registers a callback fired once when the menu closes.
func (r *handlerRegistry) OnClosed(fn func(CloseReason)) CallbackHandle {
	return addHandler(r, &r.closedFns, fn, EventClosed)
}
