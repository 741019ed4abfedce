package radial

import (
	"go.uber.org/zap"
)

// MenuOption configures a Wizard or Navigator.
type MenuOption func(*menu)

// WithLogger sets the logger used for transition and misuse logging.
// The default discards everything.
func WithLogger(l *zap.Logger) MenuOption {
	return func(m *menu) {
		if l != nil {
			m.log = l
		}
	}
}

// WithEventSink forwards every produced event to sink as a MenuEvent.
func WithEventSink(sink EventSink) MenuOption {
	return func(m *menu) { m.sink = sink }
}

// menu holds what both controllers share: callbacks, logging, the single
// live session and the closed flag.
type menu struct {
	handlerRegistry
	log     *zap.Logger
	sink    EventSink
	session *Session
	closed  bool
}

func newMenu(opts []MenuOption) menu {
	m := menu{log: zap.NewNop()}
	for _, o := range opts {
		o(&m)
	}
	return m
}

// SetEventSink replaces the event sink. Pass nil to stop forwarding.
func (m *menu) SetEventSink(sink EventSink) { m.sink = sink }

// Closed reports whether the menu has closed.
func (m *menu) Closed() bool { return m.closed }

// Session returns the active session, or nil between gestures.
func (m *menu) Session() *Session { return m.session }

// checkEvent rejects misuse before an event reaches the state machine.
func (m *menu) checkEvent(ev PointerEvent) error {
	var err error
	switch {
	case m.closed:
		err = ErrMenuClosed
	case ev.Phase == PointerDown && m.session != nil:
		err = ErrSessionActive
	case ev.Phase != PointerDown && m.session == nil:
		err = ErrNoSession
	case ev.Phase > PointerUp:
		err = ErrNoSession
	}
	if err != nil {
		m.log.Warn("Rejected pointer event",
			zap.Stringer("phase", ev.Phase),
			zap.Error(err))
	}
	return err
}

func (m *menu) emit(ev MenuEvent) {
	if m.sink != nil {
		m.sink.EmitEvent(ev)
	}
}

// --- Event dispatch ---

func (m *menu) fireHover(ctx HoverContext) {
	for _, h := range m.hover {
		h.fn(ctx)
	}
	m.emit(MenuEvent{
		Type:       EventHoverChanged,
		SessionID:  ctx.SessionID,
		CategoryID: ctx.Hit.CategoryID(),
		Option:     ctx.Hit.Option,
		Field:      ctx.Field,
		Depth:      ctx.Depth,
	})
}

func (m *menu) fireCommitted(ctx CommitContext, depth int) {
	m.log.Debug("Session committed",
		zap.String("session", ctx.SessionID),
		zap.String("field", ctx.Field),
		zap.String("category", ctx.CategoryID),
		zap.Int("option", ctx.Option))
	for _, h := range m.committed {
		h.fn(ctx)
	}
	m.emit(MenuEvent{
		Type:       EventCommitted,
		SessionID:  ctx.SessionID,
		CategoryID: ctx.CategoryID,
		Option:     ctx.Option,
		Field:      ctx.Field,
		Depth:      depth,
	})
}

func (m *menu) fireCancelled(ctx CancelContext) {
	m.log.Debug("Session cancelled",
		zap.String("session", ctx.SessionID),
		zap.String("field", ctx.Field),
		zap.Int("depth", ctx.Depth))
	for _, h := range m.cancelled {
		h.fn(ctx)
	}
	m.emit(MenuEvent{
		Type:      EventCancelled,
		SessionID: ctx.SessionID,
		Option:    NoOption,
		Field:     ctx.Field,
		Depth:     ctx.Depth,
	})
}

func (m *menu) fireComplete(c *Composite) {
	m.log.Debug("Wizard complete", zap.Int("fields", c.Len()))
	for _, h := range m.complete {
		h.fn(c)
	}
	m.emit(MenuEvent{Type: EventComplete, Option: NoOption, Composite: c.Clone()})
}

func (m *menu) fireFinalize(c *Composite) {
	m.log.Debug("Wizard finalized", zap.Int("fields", c.Len()))
	for _, h := range m.finalize {
		h.fn(c)
	}
	m.emit(MenuEvent{Type: EventFinalize, Option: NoOption, Composite: c.Clone()})
}

func (m *menu) fireAction(ctx ActionContext) {
	m.log.Debug("Action dispatched",
		zap.String("session", ctx.SessionID),
		zap.Strings("path", ctx.Path),
		zap.Int("option", ctx.Option))
	for _, h := range m.action {
		h.fn(ctx)
	}
	m.emit(MenuEvent{
		Type:       EventAction,
		SessionID:  ctx.SessionID,
		CategoryID: ctx.CategoryID,
		Option:     ctx.Option,
		Depth:      len(ctx.Path),
	})
}

func (m *menu) firePushed(ctx PartitionContext) {
	m.log.Debug("Partition pushed",
		zap.String("partition", ctx.Partition.ID()),
		zap.Int("depth", ctx.Depth))
	for _, h := range m.pushed {
		h.fn(ctx)
	}
	m.emit(MenuEvent{Type: EventPartitionPushed, Option: NoOption, Depth: ctx.Depth})
}

func (m *menu) firePopped(ctx PartitionContext) {
	m.log.Debug("Partition popped",
		zap.String("partition", ctx.Partition.ID()),
		zap.Int("depth", ctx.Depth))
	for _, h := range m.popped {
		h.fn(ctx)
	}
	m.emit(MenuEvent{Type: EventPartitionPopped, Option: NoOption, Depth: ctx.Depth})
}

// shut marks the menu closed and fires OnClosed once.
func (m *menu) shut(reason CloseReason) {
	if m.closed {
		return
	}
	m.closed = true
	m.session = nil
	m.log.Debug("Menu closed", zap.Stringer("reason", reason))
	for _, h := range m.closedFns {
		h.fn(reason)
	}
	m.emit(MenuEvent{Type: EventClosed, Option: NoOption, Reason: reason})
}
