package wavepack

import (
	"encoding/json"
	"math"

	"wavepack/internal/errs"
	"wavepack/internal/units"
)

// Shape is the channel cross-section variant. It is a closed enum; the wire
// strings are parsed once at the boundary so the solver never branches on
// free-form text.
type Shape int

const (
	Rectangular Shape = iota
	CircularInline
	CircularStaggered
)

const (
	shapeRectangularWire       = "Rectangular"
	shapeCircularInlineWire    = "Circular-Inline"
	shapeCircularStaggeredWire = "Circular-Staggered"
)

// hexPacking is the area efficiency of hexagonal close packing, applied on
// top of the inline pi/4 ratio for staggered circular arrays.
const hexPacking = 0.9069

// maxChannels caps the derived channel count.
const maxChannels = 2500

func ParseShape(s string) (Shape, error) {
	switch s {
	case shapeRectangularWire:
		return Rectangular, nil
	case shapeCircularInlineWire:
		return CircularInline, nil
	case shapeCircularStaggeredWire:
		return CircularStaggered, nil
	}
	return 0, errs.Invalid("shape", s, "unknown shape")
}

func (s Shape) String() string {
	switch s {
	case CircularInline:
		return shapeCircularInlineWire
	case CircularStaggered:
		return shapeCircularStaggeredWire
	default:
		return shapeRectangularWire
	}
}

func (s Shape) circular() bool {
	return s == CircularInline || s == CircularStaggered
}

func (s *Shape) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return errs.Invalid("shape", string(b), "shape must be a string")
	}
	parsed, err := ParseShape(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Shape) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// hydraulicDiameter returns Dh in meters for a channel. Circular channels use
// the bore diameter directly; rectangular use 4*Area/Perimeter = 2ab/(a+b).
func (s Shape) hydraulicDiameter(aM, bM float64) float64 {
	if s.circular() {
		return aM
	}
	return 2 * aM * bM / (aM + bM)
}

// openAreaRatio is the void fraction of the array cross-section, fixed per
// shape variant.
func (s Shape) openAreaRatio() float64 {
	switch s {
	case CircularInline:
		return math.Pi / 4
	case CircularStaggered:
		return hexPacking * math.Pi / 4
	default:
		return 1.0
	}
}

// channelArea is the void cross-section of one channel in m2.
func (s Shape) channelArea(aM, bM float64) float64 {
	if s.circular() {
		return math.Pi * (aM / 2) * (aM / 2)
	}
	return aM * bM
}

// requiredChannels sizes the array from the pressure-drop budget. The 0.1
// factor is an assumed 10% back-pressure safety margin; this is a sizing
// heuristic, not a flow solve, and the result is clamped to [1, 2500].
func requiredChannels(openRatio, dpLimitPa, rho, vMps float64) int {
	n := int(math.Floor(openRatio * dpLimitPa / (0.1 * rho * vMps * vMps)))
	if n < 1 {
		n = 1
	}
	if n > maxChannels {
		n = maxChannels
	}
	return n
}

// layout places n channels on a square grid. Rows are rounded up so the
// provisioned count never falls short of n; ceil(sqrt(n)) <= 50 for any
// n <= 2500, so the cap holds after rounding.
func layout(n int) (rows, cols int) {
	rows = int(math.Ceil(math.Sqrt(float64(n))))
	return rows, rows
}

// envelope returns the overall array width and height in meters. Each channel
// footprint gains twice the wall thickness per side.
func envelope(s Shape, rows, cols int, aM, bM, tM float64) (width, height float64) {
	if s.circular() {
		bM = aM
	}
	width = float64(cols) * (aM + 2*tM)
	height = float64(rows) * (bM + 2*tM)
	return width, height
}

// arrayMass returns the solid mass in kg: envelope volume minus the summed
// channel void volume, times material density. A negative value means the
// voids exceed the envelope, i.e. an invalid geometry/material pairing.
func arrayMass(s Shape, provisioned int, width, height, lM, aM, bM, matRho float64) (float64, error) {
	vSolid := width * height * lM
	vVoid := float64(provisioned) * s.channelArea(aM, bM) * lM
	mass := matRho * (vSolid - vVoid)
	if mass < 0 {
		return 0, errs.Domain("total_weight_lbm", mass*units.KgToLbm, "void volume exceeds envelope volume")
	}
	return mass, nil
}
