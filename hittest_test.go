package radial

import (
	"testing"
)

func TestResolveSixWedges(t *testing.T) {
	p := sixWedges(t)
	cfg := p.HitConfig()

	tests := []struct {
		name       string
		angle      float64
		distance   float64
		wantCat    string
		wantOption int
	}{
		{"first band", 10, 95, "category0", 0},
		{"angle past 360 wraps", 400, 200, "category0", 1},
		{"negative angle wraps", -10, 95, "category5", 0},
		{"second wedge", 60, 95, "category1", 0},
		{"just under 360", 359.9, 120, "category5", 1},
		{"dead zone boundary", 10, 30, "", NoOption},
		{"dead zone centre", 250, 0, "", NoOption},
		{"category only", 10, 45, "category0", NoOption},
		{"reveal boundary", 10, 60, "category0", NoOption},
		{"short of first band clamps to last", 10, 70, "category0", 1},
		{"band boundary", 10, 110, "category0", 1},
		{"far out clamps to last", 10, 1e6, "category0", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(p, PolarSample{Angle: tt.angle, Distance: tt.distance}, cfg)
			if got.CategoryID() != tt.wantCat || got.Option != tt.wantOption {
				t.Errorf("Resolve(%v°, %v) = (%q, %d), want (%q, %d)",
					tt.angle, tt.distance, got.CategoryID(), got.Option, tt.wantCat, tt.wantOption)
			}
			if got.HasOption() && !got.HasCategory() {
				t.Error("option resolved without a category")
			}
		})
	}
}

func TestResolveWrapAround(t *testing.T) {
	p, err := NewPartition(PartitionConfig{
		HitConfig: HitConfig{DeadZoneRadius: 10, OptionRevealRadius: 20},
		BandStep:  10,
		Categories: []CategoryConfig{
			{ID: "top", Start: 330, End: 30, Options: opts(1)},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range []float64{340, 359.9, 0, 15, 29.999} {
		if got := Resolve(p, PolarSample{Angle: a, Distance: 50}, p.HitConfig()); got.CategoryID() != "top" {
			t.Errorf("angle %v should hit top, got %q", a, got.CategoryID())
		}
	}
	for _, a := range []float64{30, 90, 180, 329.9} {
		if got := Resolve(p, PolarSample{Angle: a, Distance: 50}, p.HitConfig()); got.HasCategory() {
			t.Errorf("angle %v should miss, got %q", a, got.CategoryID())
		}
	}
}

func TestResolveUncoveredDistanceClampsToLast(t *testing.T) {
	p, err := NewPartition(PartitionConfig{
		HitConfig: HitConfig{DeadZoneRadius: 10, OptionRevealRadius: 20},
		Categories: []CategoryConfig{
			{ID: "all", Start: 0, End: 360, Options: []OptionConfig{
				{Label: "a", Band: &Band{Min: 80, Max: 100}},
				{Label: "b", Band: &Band{Min: 120, Max: 150}},
				{Label: "c", Band: &Band{Min: 200, Max: 250}},
			}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		distance float64
		want     int
	}{
		{21, 2},
		{79.99, 2},
		{80, 0},
		{90, 0},
		{100, 2},
		{119.99, 2},
		{120, 1},
		{175, 2},
		{200, 2},
		{225, 2},
		{400, 2},
	}
	for _, tt := range tests {
		if got := Resolve(p, PolarSample{Distance: tt.distance}, p.HitConfig()); got.Option != tt.want {
			t.Errorf("distance %v: option %d, want %d", tt.distance, got.Option, tt.want)
		}
	}
}

func TestResolveDeadZoneBeatsCategory(t *testing.T) {
	p := sixWedges(t)
	// A caller-supplied config may widen the dead zone past the option bands.
	cfg := HitConfig{DeadZoneRadius: 500, OptionRevealRadius: 500}
	if got := Resolve(p, PolarSample{Angle: 10, Distance: 300}, cfg); got.HasCategory() {
		t.Errorf("expected no hover inside widened dead zone, got %q", got.CategoryID())
	}
}

func TestResolveEmpty(t *testing.T) {
	empty, err := NewPartition(PartitionConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if got := Resolve(empty, PolarSample{Angle: 10, Distance: 100}, HitConfig{}); got.HasCategory() || got.Option != NoOption {
		t.Errorf("empty partition hit = %+v", got)
	}
	if got := Resolve(nil, PolarSample{Angle: 10, Distance: 100}, HitConfig{}); !got.Equal(noHit) {
		t.Errorf("nil partition hit = %+v", got)
	}
}

func TestResolvePointUsesConvention(t *testing.T) {
	p, err := NewPartition(PartitionConfig{
		Convention: CounterClockwiseFromRight,
		HitConfig:  HitConfig{DeadZoneRadius: 10, OptionRevealRadius: 20},
		BandStep:   10,
		Categories: []CategoryConfig{
			{ID: "east", Start: 315, End: 45, Options: opts(1)},
			{ID: "north", Start: 45, End: 135, Options: opts(1)},
			{ID: "west", Start: 135, End: 225, Options: opts(1)},
			{ID: "south", Start: 225, End: 315, Options: opts(1)},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	anchor := Vec2{X: 50, Y: 50}
	tests := []struct {
		pointer Vec2
		want    string
	}{
		{Vec2{X: 100, Y: 50}, "east"},
		{Vec2{X: 50, Y: 0}, "north"},
		{Vec2{X: 0, Y: 50}, "west"},
		{Vec2{X: 50, Y: 100}, "south"},
		{Vec2{X: 55, Y: 50}, ""},
	}
	for _, tt := range tests {
		if got := ResolvePoint(p, anchor, tt.pointer); got.CategoryID() != tt.want {
			t.Errorf("ResolvePoint(%v) = %q, want %q", tt.pointer, got.CategoryID(), tt.want)
		}
	}
}

func TestHitEqual(t *testing.T) {
	p := sixWedges(t)
	a := Hit{Category: p.Category(0), Option: 0}
	tests := []struct {
		name string
		b    Hit
		want bool
	}{
		{"same", Hit{Category: p.Category(0), Option: 0}, true},
		{"other option", Hit{Category: p.Category(0), Option: 1}, false},
		{"other category", Hit{Category: p.Category(1), Option: 0}, false},
		{"none", noHit, false},
	}
	for _, tt := range tests {
		if got := a.Equal(tt.b); got != tt.want {
			t.Errorf("%s: Equal = %v, want %v", tt.name, got, tt.want)
		}
	}
}
