package radial

import "math"

// PolarSample is a pointer position expressed relative to an anchor.
// Angle is in degrees within [0, 360); Distance is in screen units.
type PolarSample struct {
	Angle    float64
	Distance float64
}

// ToPolar converts pointer into a polar sample around anchor using the given
// angle convention. The degenerate case pointer == anchor yields a zero
// distance and a zero angle.
func ToPolar(anchor, pointer Vec2, conv AngleConvention) PolarSample {
	d := pointer.Sub(anchor)
	dist := d.Len()
	if dist == 0 {
		return PolarSample{}
	}
	var rad float64
	switch conv {
	case CounterClockwiseFromRight:
		// Screen Y grows downward, so flip it to get on-screen counterclockwise.
		rad = math.Atan2(-d.Y, d.X)
	default:
		rad = math.Atan2(d.X, -d.Y)
	}
	return PolarSample{Angle: NormalizeAngle(rad * 180 / math.Pi), Distance: dist}
}

// FromPolar is the inverse of ToPolar: it returns the screen point at the
// given angle (degrees) and distance from anchor.
func FromPolar(anchor Vec2, angle, distance float64, conv AngleConvention) Vec2 {
	rad := angle * math.Pi / 180
	switch conv {
	case CounterClockwiseFromRight:
		return Vec2{anchor.X + distance*math.Cos(rad), anchor.Y - distance*math.Sin(rad)}
	default:
		return Vec2{anchor.X + distance*math.Sin(rad), anchor.Y - distance*math.Cos(rad)}
	}
}

// NormalizeAngle wraps a finite angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	// math.Mod of a tiny negative value plus 360 can round up to 360.
	if a >= 360 {
		a = 0
	}
	return a
}
