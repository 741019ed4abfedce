package radial

import (
	"fmt"
	"math"
)

// Unbounded is the Max of a distance band with no upper limit.
var Unbounded = math.Inf(1)

// Band is a half-open distance range [Min, Max).
type Band struct {
	Min, Max float64
}

// Contains reports whether d lies in [Min, Max).
func (b Band) Contains(d float64) bool {
	return d >= b.Min && d < b.Max
}

// Option is one sub-choice of a category, selected by radial distance.
type Option struct {
	Index int
	Label string
	Band  Band
}

// Category is an angular wedge [start, end) of a partition. Ranges may wrap
// past 360 (start > end). Categories are owned by their partition and never
// change after construction.
type Category struct {
	id      string
	start   float64
	end     float64
	options []Option
	child   *Partition
}

// ID returns the category id.
func (c *Category) ID() string { return c.id }

// Start returns the inclusive start angle in degrees.
func (c *Category) Start() float64 { return c.start }

// End returns the exclusive end angle in degrees.
func (c *Category) End() float64 { return c.end }

// Span returns the angular width of the category in degrees.
func (c *Category) Span() float64 {
	return arcSpan(c.start, c.end)
}

// Mid returns the angle halfway through the wedge, normalized.
func (c *Category) Mid() float64 {
	return NormalizeAngle(c.start + c.Span()/2)
}

// NumOptions returns the number of options.
func (c *Category) NumOptions() int { return len(c.options) }

// Option returns the option at index i.
func (c *Category) Option(i int) Option { return c.options[i] }

// Options returns a copy of the category's options in index order.
func (c *Category) Options() []Option {
	out := make([]Option, len(c.options))
	copy(out, c.options)
	return out
}

// Child returns the nested partition opened by committing this category, or
// nil for a terminal category.
func (c *Category) Child() *Partition { return c.child }

// Contains reports whether the normalized angle a falls inside the wedge.
func (c *Category) Contains(a float64) bool {
	return arcContains(c.start, c.end, a)
}

// HitConfig holds the radii the hit tester applies before looking at
// categories and options.
type HitConfig struct {
	// DeadZoneRadius is the radius of the central no-selection disc.
	// Distances <= DeadZoneRadius never hover anything.
	DeadZoneRadius float64
	// OptionRevealRadius is the distance beyond which options resolve.
	// Between the dead zone and this radius only the category hovers.
	OptionRevealRadius float64
}

// Partition is an immutable set of categories plus the geometry used to hit
// test them. Build one with NewPartition.
type Partition struct {
	id         string
	convention AngleConvention
	hit        HitConfig
	categories []*Category
	byID       map[string]*Category
}

// ID returns the partition id.
func (p *Partition) ID() string { return p.id }

// Convention returns the angle convention used to map pointers for this
// partition.
func (p *Partition) Convention() AngleConvention { return p.convention }

// HitConfig returns the partition's dead-zone and reveal radii.
func (p *Partition) HitConfig() HitConfig { return p.hit }

// Len returns the number of categories.
func (p *Partition) Len() int { return len(p.categories) }

// Category returns the category at index i.
func (p *Partition) Category(i int) *Category { return p.categories[i] }

// Lookup returns the category with the given id, or nil.
func (p *Partition) Lookup(id string) *Category { return p.byID[id] }

// Categories returns the categories in configuration order.
func (p *Partition) Categories() []*Category {
	out := make([]*Category, len(p.categories))
	copy(out, p.categories)
	return out
}

// categoryAt returns the category containing the normalized angle a, or nil.
func (p *Partition) categoryAt(a float64) *Category {
	for _, c := range p.categories {
		if c.Contains(a) {
			return c
		}
	}
	return nil
}

// --- Construction ---

// PartitionConfig describes a partition before validation.
type PartitionConfig struct {
	// ID names the partition. Child partitions default to "<parent>/<category>".
	ID         string
	Convention AngleConvention
	HitConfig
	// BandBase and BandStep lay out options of categories that define no
	// explicit bands: option i covers [BandBase+i*BandStep, BandBase+(i+1)*BandStep)
	// and the last option is unbounded. BandBase defaults to OptionRevealRadius.
	BandBase   float64
	BandStep   float64
	Categories []CategoryConfig
}

// CategoryConfig describes one wedge.
type CategoryConfig struct {
	ID         string
	Start, End float64
	Options    []OptionConfig
	Child      *PartitionConfig
}

// OptionConfig describes one option. Band is nil for implicit layout.
type OptionConfig struct {
	Label string
	Band  *Band
}

// ConfigError reports a partition or menu configuration defect.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return "radial: invalid config: " + e.Reason
	}
	return "radial: invalid config: " + e.Field + ": " + e.Reason
}

func configErr(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NewPartition validates cfg and builds an immutable partition, including
// any nested child partitions.
func NewPartition(cfg PartitionConfig) (*Partition, error) {
	if cfg.ID == "" {
		cfg.ID = "root"
	}
	return buildPartition(cfg, "")
}

func buildPartition(cfg PartitionConfig, path string) (*Partition, error) {
	field := func(name string) string {
		if path == "" {
			return name
		}
		return path + "." + name
	}

	if cfg.Convention > CounterClockwiseFromRight {
		return nil, configErr(field("convention"), "unknown convention %d", cfg.Convention)
	}
	if !finite(cfg.DeadZoneRadius) || cfg.DeadZoneRadius < 0 {
		return nil, configErr(field("dead_zone_radius"), "must be a finite non-negative number")
	}
	if !finite(cfg.OptionRevealRadius) || cfg.OptionRevealRadius < cfg.DeadZoneRadius {
		return nil, configErr(field("option_reveal_radius"), "must be finite and >= dead_zone_radius")
	}
	base := cfg.BandBase
	if base == 0 {
		base = cfg.OptionRevealRadius
	}
	if !finite(base) || base < 0 {
		return nil, configErr(field("band_base"), "must be a finite non-negative number")
	}
	if !finite(cfg.BandStep) || cfg.BandStep < 0 {
		return nil, configErr(field("band_step"), "must be a finite non-negative number")
	}

	p := &Partition{
		id:         cfg.ID,
		convention: cfg.Convention,
		hit:        cfg.HitConfig,
		categories: make([]*Category, 0, len(cfg.Categories)),
		byID:       make(map[string]*Category, len(cfg.Categories)),
	}

	for i, cc := range cfg.Categories {
		cf := field(fmt.Sprintf("categories[%d]", i))
		if cc.ID == "" {
			return nil, configErr(cf+".id", "must not be empty")
		}
		if _, dup := p.byID[cc.ID]; dup {
			return nil, configErr(cf+".id", "duplicate id %q", cc.ID)
		}
		if !finite(cc.Start) || cc.Start < 0 || cc.Start >= 360 {
			return nil, configErr(cf+".start", "must be in [0, 360), got %v", cc.Start)
		}
		if !finite(cc.End) || cc.End <= 0 || cc.End > 360 {
			return nil, configErr(cf+".end", "must be in (0, 360], got %v", cc.End)
		}
		if cc.Start == cc.End {
			return nil, configErr(cf, "zero-width range [%v, %v)", cc.Start, cc.End)
		}
		for _, prev := range p.categories {
			if arcContains(prev.start, prev.end, cc.Start) || arcContains(cc.Start, cc.End, prev.start) {
				return nil, configErr(cf, "range [%v, %v) overlaps category %q", cc.Start, cc.End, prev.id)
			}
		}

		opts, err := buildOptions(cc.Options, base, cfg.BandStep, cf+".options")
		if err != nil {
			return nil, err
		}

		cat := &Category{id: cc.ID, start: cc.Start, end: cc.End, options: opts}
		if cc.Child != nil {
			childCfg := *cc.Child
			if childCfg.ID == "" {
				childCfg.ID = cfg.ID + "/" + cc.ID
			}
			child, err := buildPartition(childCfg, cf+".child")
			if err != nil {
				return nil, err
			}
			cat.child = child
		}
		p.categories = append(p.categories, cat)
		p.byID[cat.id] = cat
	}
	return p, nil
}

// buildOptions assigns indexes and bands. Either every option carries an
// explicit band or none does.
func buildOptions(cfgs []OptionConfig, base, step float64, field string) ([]Option, error) {
	if len(cfgs) == 0 {
		return nil, configErr(field, "at least one option is required")
	}
	explicit := cfgs[0].Band != nil
	opts := make([]Option, len(cfgs))
	for i, oc := range cfgs {
		of := fmt.Sprintf("%s[%d]", field, i)
		if (oc.Band != nil) != explicit {
			return nil, configErr(of, "bands must be given for every option or for none")
		}
		opts[i] = Option{Index: i, Label: oc.Label}
		if explicit {
			b := *oc.Band
			if math.IsNaN(b.Min) || math.IsNaN(b.Max) || math.IsInf(b.Min, 0) || b.Min < 0 {
				return nil, configErr(of, "band min must be a finite non-negative number")
			}
			if b.Max <= b.Min {
				return nil, configErr(of, "band [%v, %v) is empty", b.Min, b.Max)
			}
			if i > 0 && b.Min < opts[i-1].Band.Max {
				return nil, configErr(of, "band [%v, %v) overlaps or precedes the previous band", b.Min, b.Max)
			}
			opts[i].Band = b
			continue
		}
		if step <= 0 && len(cfgs) > 1 {
			return nil, configErr(field, "band_step must be positive when bands are implicit")
		}
		opts[i].Band = Band{Min: base + float64(i)*step, Max: base + float64(i+1)*step}
		if i == len(cfgs)-1 {
			opts[i].Band.Max = Unbounded
		}
	}
	return opts, nil
}

// EqualWedges returns n equal [start, end) ranges tiling the circle, the first
// starting at offset degrees. Each range ends exactly where the next begins, so
// the result always passes NewPartition's overlap check. Ranges that end at the
// top of the circle use 360 as their end. A single wedge is always [0, 360).
func EqualWedges(n int, offset float64) [][2]float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return [][2]float64{{0, 360}}
	}
	w := 360 / float64(n)
	starts := make([]float64, n)
	for i := range starts {
		starts[i] = NormalizeAngle(offset + float64(i)*w)
	}
	out := make([][2]float64, n)
	for i, start := range starts {
		end := starts[(i+1)%n]
		if end == 0 {
			end = 360
		}
		out[i] = [2]float64{start, end}
	}
	return out
}

// --- Arc helpers ---

// arcContains reports whether angle a lies in the half-open arc [start, end),
// treating start > end as a range that wraps through 0.
func arcContains(start, end, a float64) bool {
	if start < end {
		return a >= start && a < end
	}
	return a >= start || a < end
}

func arcSpan(start, end float64) float64 {
	if start < end {
		return end - start
	}
	return 360 - start + end
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
