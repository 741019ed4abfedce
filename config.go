package radial

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Menu modes.
const (
	ModeWizard    = "wizard"
	ModeDrillDown = "drilldown"
)

// MenuConfig is the YAML form of a complete menu definition.
type MenuConfig struct {
	Mode      string         `yaml:"mode"`
	Partition PartitionYAML  `yaml:"partition"`
	Wizard    *WizardYAML    `yaml:"wizard,omitempty"`
	DrillDown *DrillDownYAML `yaml:"drilldown,omitempty"`
}

// PartitionYAML is the YAML form of PartitionConfig.
type PartitionYAML struct {
	ID                 string         `yaml:"id,omitempty"`
	Convention         string         `yaml:"convention,omitempty"`
	DeadZoneRadius     float64        `yaml:"dead_zone_radius"`
	OptionRevealRadius float64        `yaml:"option_reveal_radius"`
	BandBase           float64        `yaml:"band_base,omitempty"`
	BandStep           float64        `yaml:"band_step,omitempty"`
	Categories         []CategoryYAML `yaml:"categories"`
}

// CategoryYAML is the YAML form of CategoryConfig.
type CategoryYAML struct {
	ID      string         `yaml:"id"`
	Start   float64        `yaml:"start"`
	End     float64        `yaml:"end"`
	Options []OptionYAML   `yaml:"options"`
	Child   *PartitionYAML `yaml:"child,omitempty"`
}

// OptionYAML is the YAML form of OptionConfig. Giving min marks the band as
// explicit; an omitted max is unbounded.
type OptionYAML struct {
	Label string   `yaml:"label"`
	Min   *float64 `yaml:"min,omitempty"`
	Max   *float64 `yaml:"max,omitempty"`
}

// WizardYAML is the YAML form of the wizard settings.
type WizardYAML struct {
	TapSlop float64 `yaml:"tap_slop,omitempty"`
	Cancel  string  `yaml:"cancel,omitempty"`
	Fields  []struct {
		Name     string `yaml:"name"`
		Optional bool   `yaml:"optional,omitempty"`
	} `yaml:"fields"`
	// Vocabulary maps field → category → option values.
	Vocabulary map[string]map[string][]any `yaml:"vocabulary"`
}

// DrillDownYAML is the YAML form of the navigator settings.
type DrillDownYAML struct {
	Cancel string `yaml:"cancel,omitempty"`
}

// LoadMenu decodes a menu definition from r. Unknown keys are rejected.
func LoadMenu(r io.Reader) (*MenuConfig, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cfg MenuConfig
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse menu config: %w", err)
	}
	switch cfg.Mode {
	case ModeWizard:
		if cfg.Wizard == nil {
			return nil, &ConfigError{Field: "wizard", Reason: "is required in wizard mode"}
		}
	case ModeDrillDown:
	default:
		return nil, configErr("mode", "must be %q or %q, got %q", ModeWizard, ModeDrillDown, cfg.Mode)
	}
	return &cfg, nil
}

// LoadMenuFile decodes the menu definition at path.
func LoadMenuFile(path string) (*MenuConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open menu config: %w", err)
	}
	defer f.Close()
	return LoadMenu(f)
}

// PartitionConfig converts the YAML form into a PartitionConfig.
func (p PartitionYAML) PartitionConfig() (PartitionConfig, error) {
	conv, err := parseConvention(p.Convention)
	if err != nil {
		return PartitionConfig{}, err
	}
	out := PartitionConfig{
		ID:         p.ID,
		Convention: conv,
		HitConfig: HitConfig{
			DeadZoneRadius:     p.DeadZoneRadius,
			OptionRevealRadius: p.OptionRevealRadius,
		},
		BandBase:   p.BandBase,
		BandStep:   p.BandStep,
		Categories: make([]CategoryConfig, len(p.Categories)),
	}
	for i, c := range p.Categories {
		cc := CategoryConfig{ID: c.ID, Start: c.Start, End: c.End}
		for _, o := range c.Options {
			oc := OptionConfig{Label: o.Label}
			if o.Min != nil || o.Max != nil {
				b := Band{Max: Unbounded}
				if o.Min != nil {
					b.Min = *o.Min
				}
				if o.Max != nil {
					b.Max = *o.Max
				}
				oc.Band = &b
			}
			cc.Options = append(cc.Options, oc)
		}
		if c.Child != nil {
			child, err := c.Child.PartitionConfig()
			if err != nil {
				return PartitionConfig{}, err
			}
			cc.Child = &child
		}
		out.Categories[i] = cc
	}
	return out, nil
}

// BuildPartition validates and builds the root partition.
func (c *MenuConfig) BuildPartition() (*Partition, error) {
	pc, err := c.Partition.PartitionConfig()
	if err != nil {
		return nil, err
	}
	return NewPartition(pc)
}

// Vocabulary returns the wizard's value table.
func (c *MenuConfig) Vocabulary() TableVocabulary {
	t := TableVocabulary{}
	if c.Wizard == nil {
		return t
	}
	for field, cats := range c.Wizard.Vocabulary {
		for cat, vals := range cats {
			for i, v := range vals {
				t.Set(field, cat, i, v)
			}
		}
	}
	return t
}

// Build constructs the controller the config describes: a *Wizard or a
// *Navigator.
func (c *MenuConfig) Build(opts ...MenuOption) (Controller, error) {
	p, err := c.BuildPartition()
	if err != nil {
		return nil, err
	}
	switch c.Mode {
	case ModeWizard:
		w, err := c.buildWizard(p, opts)
		if err != nil {
			return nil, err
		}
		return w, nil
	case ModeDrillDown:
		nc := NavigatorConfig{Root: p}
		if c.DrillDown != nil {
			switch c.DrillDown.Cancel {
			case "", "pop":
				nc.Cancel = PopOnCancel
			case "close":
				nc.Cancel = CloseOnCancel
			default:
				return nil, configErr("drilldown.cancel", "must be \"pop\" or \"close\", got %q", c.DrillDown.Cancel)
			}
		}
		n, err := NewNavigator(nc, opts...)
		if err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, configErr("mode", "unknown mode %q", c.Mode)
	}
}

func (c *MenuConfig) buildWizard(p *Partition, opts []MenuOption) (*Wizard, error) {
	wy := c.Wizard
	wc := WizardConfig{Partition: p, TapSlop: wy.TapSlop}
	switch wy.Cancel {
	case "", "abandon":
		wc.Cancel = AbandonOnCancel
	case "retry":
		wc.Cancel = RetryOnCancel
	default:
		return nil, configErr("wizard.cancel", "must be \"abandon\" or \"retry\", got %q", wy.Cancel)
	}
	for _, f := range wy.Fields {
		wc.Fields = append(wc.Fields, Field{Name: f.Name, Optional: f.Optional})
	}
	return NewWizard(wc, c.Vocabulary(), opts...)
}

func parseConvention(s string) (AngleConvention, error) {
	switch s {
	case "", "clockwise_from_up":
		return ClockwiseFromUp, nil
	case "counterclockwise_from_right":
		return CounterClockwiseFromRight, nil
	default:
		return 0, configErr("convention", "unknown convention %q", s)
	}
}
