package radial

import (
	"go.uber.org/zap"
)

// NavigatorCancel selects what a cancelled session does inside a submenu.
type NavigatorCancel uint8

const (
	// PopOnCancel backs out one level; a cancel at the root closes the menu.
	PopOnCancel NavigatorCancel = iota
	// CloseOnCancel closes the menu from any depth.
	CloseOnCancel
)

// NavigatorConfig configures a drill-down navigator.
type NavigatorConfig struct {
	Root   *Partition
	Cancel NavigatorCancel
}

// Navigator walks a hierarchy of partitions. Committing a category with a
// child partition pushes the child; committing a terminal category fires
// OnAction and closes the menu.
//
// A Navigator is not safe for concurrent use.
type Navigator struct {
	menu
	cancel NavigatorCancel
	stack  []*Partition
	path   []string
}

// NewNavigator returns a navigator showing cfg.Root.
func NewNavigator(cfg NavigatorConfig, opts ...MenuOption) (*Navigator, error) {
	if cfg.Root == nil {
		return nil, &ConfigError{Field: "root", Reason: "is required"}
	}
	if cfg.Cancel > CloseOnCancel {
		return nil, configErr("cancel", "unknown policy %d", cfg.Cancel)
	}
	return &Navigator{
		menu:   newMenu(opts),
		cancel: cfg.Cancel,
		stack:  []*Partition{cfg.Root},
	}, nil
}

// Partition returns the partition currently hit tested, or nil once closed.
func (n *Navigator) Partition() *Partition {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of partitions on the stack (1 = root only).
func (n *Navigator) Depth() int { return len(n.stack) }

// Path returns the category ids committed to reach the current partition.
func (n *Navigator) Path() []string {
	out := make([]string, len(n.path))
	copy(out, n.path)
	return out
}

// Close closes the menu on the host's request.
func (n *Navigator) Close() {
	n.stack = nil
	n.shut(CloseRequested)
}

// Back pops one submenu level on the host's request (e.g. a back button).
// It must not be called during a gesture.
func (n *Navigator) Back() error {
	switch {
	case n.closed:
		return ErrMenuClosed
	case n.session != nil:
		return ErrSessionActive
	case len(n.stack) <= 1:
		return ErrAtRoot
	}
	n.pop()
	return nil
}

// HandlePointer feeds one pointer event through the navigator.
func (n *Navigator) HandlePointer(ev PointerEvent) error {
	if err := n.checkEvent(ev); err != nil {
		return err
	}
	switch ev.Phase {
	case PointerDown:
		n.session = NewSession(n.Partition(), ev.Anchor, ev.Pos)
		n.log.Debug("Session started",
			zap.String("session", n.session.ID()),
			zap.String("partition", n.Partition().ID()),
			zap.Int("depth", len(n.stack)))
		return nil
	case PointerMove:
		changed, err := n.session.Update(ev.Pos)
		if err != nil {
			return err
		}
		if changed {
			n.notifyHover()
		}
		return nil
	default:
		return n.release(ev.Pos)
	}
}

func (n *Navigator) release(pos Vec2) error {
	s := n.session
	out, changed, err := s.End(pos)
	if err != nil {
		return err
	}
	if changed {
		n.notifyHover()
	}
	n.session = nil

	if out.State == SessionCancelled {
		n.fireCancelled(CancelContext{SessionID: s.ID(), Depth: len(n.stack)})
		if n.cancel == PopOnCancel && len(n.stack) > 1 {
			n.pop()
			return nil
		}
		n.stack = nil
		n.shut(CloseCancelled)
		return nil
	}

	sel := out.Selection
	n.fireCommitted(CommitContext{
		SessionID:  sel.SessionID,
		CategoryID: sel.CategoryID,
		Option:     sel.Option,
	}, len(n.stack))

	if child := sel.Category.Child(); child != nil {
		n.stack = append(n.stack, child)
		n.path = append(n.path, sel.CategoryID)
		n.firePushed(PartitionContext{Partition: child, Depth: len(n.stack)})
		return nil
	}

	path := append(n.Path(), sel.CategoryID)
	n.fireAction(ActionContext{
		SessionID:  sel.SessionID,
		CategoryID: sel.CategoryID,
		Option:     sel.Option,
		Path:       path,
	})
	n.stack = nil
	n.path = nil
	n.shut(CloseAction)
	return nil
}

func (n *Navigator) pop() {
	n.stack = n.stack[:len(n.stack)-1]
	n.path = n.path[:len(n.path)-1]
	n.firePopped(PartitionContext{Partition: n.Partition(), Depth: len(n.stack)})
}

func (n *Navigator) notifyHover() {
	n.fireHover(HoverContext{
		SessionID: n.session.ID(),
		Partition: n.session.Partition(),
		Depth:     len(n.stack),
		Hit:       n.session.Hover(),
	})
}
