package radial

import (
	"fmt"

	"go.uber.org/zap"
)

// defaultTapSlop is the maximum pointer travel, in pixels, for a press and
// release to count as a tap.
const defaultTapSlop = 4.0

// WizardCancel selects what a cancelled session does to a wizard.
type WizardCancel uint8

const (
	// AbandonOnCancel closes the menu and discards every committed field.
	AbandonOnCancel WizardCancel = iota
	// RetryOnCancel keeps the composite and step; the user repeats the gesture.
	RetryOnCancel
)

// Field is one wizard field. Required fields are walked first, in
// configuration order, followed by optional fields.
type Field struct {
	Name     string
	Optional bool
}

// WizardConfig configures a stepwise wizard.
type WizardConfig struct {
	// Partition is the single geometry reused for every field.
	Partition *Partition
	Fields    []Field
	// TapSlop is the travel allowed for the finalize tap. Defaults to 4.
	TapSlop float64
	Cancel  WizardCancel
}

// Wizard accumulates a composite result over a sequence of sessions, one per
// field, all hit tested against the same partition. Once every required field
// holds a value, a tap inside the dead zone finalizes it.
//
// A Wizard is not safe for concurrent use.
type Wizard struct {
	menu
	partition *Partition
	vocab     Vocabulary
	tapSlop   float64
	cancel    WizardCancel

	steps     []string // walk order: required fields, then optional
	required  int
	step      int
	composite *Composite
	complete  bool
}

// NewWizard validates cfg and returns a wizard at step 0.
func NewWizard(cfg WizardConfig, vocab Vocabulary, opts ...MenuOption) (*Wizard, error) {
	if cfg.Partition == nil {
		return nil, &ConfigError{Field: "partition", Reason: "is required"}
	}
	if vocab == nil {
		return nil, &ConfigError{Field: "vocabulary", Reason: "is required"}
	}
	if cfg.TapSlop < 0 || !finite(cfg.TapSlop) {
		return nil, configErr("tap_slop", "must be a finite non-negative number")
	}
	if cfg.Cancel > RetryOnCancel {
		return nil, configErr("cancel", "unknown policy %d", cfg.Cancel)
	}

	seen := make(map[string]bool, len(cfg.Fields))
	var required, optional []string
	for i, f := range cfg.Fields {
		if f.Name == "" {
			return nil, configErr(fmt.Sprintf("fields[%d].name", i), "must not be empty")
		}
		if seen[f.Name] {
			return nil, configErr(fmt.Sprintf("fields[%d].name", i), "duplicate field %q", f.Name)
		}
		seen[f.Name] = true
		if f.Optional {
			optional = append(optional, f.Name)
		} else {
			required = append(required, f.Name)
		}
	}
	if len(required) == 0 {
		return nil, &ConfigError{Field: "fields", Reason: "at least one required field is needed"}
	}

	w := &Wizard{
		menu:      newMenu(opts),
		partition: cfg.Partition,
		vocab:     vocab,
		tapSlop:   cfg.TapSlop,
		cancel:    cfg.Cancel,
		steps:     append(required, optional...),
		required:  len(required),
	}
	if w.tapSlop == 0 {
		w.tapSlop = defaultTapSlop
	}
	w.composite = newComposite(w.steps)
	return w, nil
}

// Partition returns the wizard's geometry.
func (w *Wizard) Partition() *Partition { return w.partition }

// Step returns the index of the field the next session targets.
func (w *Wizard) Step() int { return w.step }

// Fields returns the field walk order.
func (w *Wizard) Fields() []string {
	out := make([]string, len(w.steps))
	copy(out, w.steps)
	return out
}

// CurrentField returns the field the next commit is stored under, or "" once
// every field holds a value.
func (w *Wizard) CurrentField() string {
	if w.step >= len(w.steps) {
		return ""
	}
	return w.steps[w.step]
}

// Complete reports whether every required field holds a value.
func (w *Wizard) Complete() bool { return w.complete }

// Composite returns the accumulated result. It is nil after the wizard was
// abandoned by a cancelled session.
func (w *Wizard) Composite() *Composite { return w.composite }

// Close closes the menu on the host's request, discarding any active session.
func (w *Wizard) Close() {
	w.shut(CloseRequested)
}

// HandlePointer feeds one pointer event through the wizard.
func (w *Wizard) HandlePointer(ev PointerEvent) error {
	if err := w.checkEvent(ev); err != nil {
		return err
	}
	switch ev.Phase {
	case PointerDown:
		w.session = NewSession(w.partition, ev.Anchor, ev.Pos)
		w.log.Debug("Session started",
			zap.String("session", w.session.ID()),
			zap.String("field", w.CurrentField()),
			zap.Bool("dead_zone", w.session.StartedInDeadZone()))
		return nil
	case PointerMove:
		changed, err := w.session.Update(ev.Pos)
		if err != nil {
			return err
		}
		if changed {
			w.notifyHover()
		}
		return nil
	default:
		return w.release(ev.Pos)
	}
}

func (w *Wizard) release(pos Vec2) error {
	s := w.session
	if w.complete && w.isTap(s, pos) {
		w.session = nil
		w.fireFinalize(w.composite)
		w.shut(CloseFinalized)
		return nil
	}

	out, changed, err := s.End(pos)
	if err != nil {
		return err
	}
	if changed {
		w.notifyHover()
	}
	w.session = nil

	if out.State == SessionCancelled {
		w.fireCancelled(CancelContext{SessionID: s.ID(), Depth: 1, Field: w.CurrentField()})
		if w.cancel == AbandonOnCancel {
			w.composite = nil
			w.shut(CloseCancelled)
		}
		return nil
	}

	if w.step >= len(w.steps) {
		w.log.Debug("Commit ignored, every field is set",
			zap.String("session", s.ID()),
			zap.String("category", out.Selection.CategoryID))
		return nil
	}
	field := w.steps[w.step]
	value, err := w.vocab.Decode(field, out.Selection.CategoryID, out.Selection.Option)
	if err != nil {
		w.log.Warn("Decode failed",
			zap.String("field", field),
			zap.String("category", out.Selection.CategoryID),
			zap.Int("option", out.Selection.Option),
			zap.Error(err))
		return fmt.Errorf("decode field %q: %w", field, err)
	}
	w.composite.set(field, value)
	w.step++
	w.fireCommitted(CommitContext{
		SessionID:  s.ID(),
		Field:      field,
		CategoryID: out.Selection.CategoryID,
		Option:     out.Selection.Option,
		Value:      value,
	}, 1)

	if !w.complete && w.step >= w.required {
		w.complete = true
		w.fireComplete(w.composite)
	}
	return nil
}

// isTap reports whether the gesture ending at pos is a finalize tap: pressed
// and released inside the dead zone without travelling beyond the slop.
func (w *Wizard) isTap(s *Session, pos Vec2) bool {
	if !s.StartedInDeadZone() {
		return false
	}
	travel := s.MaxTravel()
	if t := pos.Sub(s.Start()).Len(); t > travel {
		travel = t
	}
	if travel > w.tapSlop {
		return false
	}
	return pos.Sub(s.Anchor()).Len() <= w.partition.hit.DeadZoneRadius
}

func (w *Wizard) notifyHover() {
	w.fireHover(HoverContext{
		SessionID: w.session.ID(),
		Partition: w.partition,
		Depth:     1,
		Hit:       w.session.Hover(),
		Field:     w.CurrentField(),
	})
}
