package radial

// NoOption marks a Hit with no resolved option.
const NoOption = -1

// Hit is the result of hit testing one polar sample: the hovered category
// (nil for none) and the hovered option index (NoOption for none). Option is
// never set without Category.
type Hit struct {
	Category *Category
	Option   int
}

// noHit is the empty hover state.
var noHit = Hit{Option: NoOption}

// HasCategory reports whether a category is hovered.
func (h Hit) HasCategory() bool { return h.Category != nil }

// HasOption reports whether both a category and an option are hovered.
func (h Hit) HasOption() bool { return h.Category != nil && h.Option >= 0 }

// CategoryID returns the hovered category id, or "" when none is hovered.
func (h Hit) CategoryID() string {
	if h.Category == nil {
		return ""
	}
	return h.Category.id
}

// Equal reports whether two hits hover the same category and option.
func (h Hit) Equal(o Hit) bool {
	return h.Category == o.Category && h.Option == o.Option
}

// Resolve hit tests sample against p. It is total over finite input:
//
//  1. distance <= DeadZoneRadius resolves to nothing, regardless of angle.
//  2. The category containing the (normalized) angle is found; none matches
//     resolves to nothing.
//  3. distance <= OptionRevealRadius resolves to the category alone.
//  4. Otherwise the option whose band contains the distance is chosen. A
//     distance no band contains clamps to the last option.
func Resolve(p *Partition, sample PolarSample, cfg HitConfig) Hit {
	if p == nil || sample.Distance <= cfg.DeadZoneRadius {
		return noHit
	}
	cat := p.categoryAt(NormalizeAngle(sample.Angle))
	if cat == nil {
		return noHit
	}
	if sample.Distance <= cfg.OptionRevealRadius || len(cat.options) == 0 {
		return Hit{Category: cat, Option: NoOption}
	}
	return Hit{Category: cat, Option: optionAt(cat.options, sample.Distance)}
}

// optionAt returns the index of the first option whose band contains d, or
// the last option when none does.
func optionAt(opts []Option, d float64) int {
	for i := range opts {
		if opts[i].Band.Contains(d) {
			return i
		}
	}
	return len(opts) - 1
}

// ResolvePoint maps pointer around anchor with p's convention and hit tests
// it with p's own HitConfig.
func ResolvePoint(p *Partition, anchor, pointer Vec2) Hit {
	return Resolve(p, ToPolar(anchor, pointer, p.convention), p.hit)
}
