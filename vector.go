package cinder

import "math"

// vectorEpsilon is the tolerance used by Equals and by the degenerate-angle
// checks in Slerp.
const vectorEpsilon = 1e-9

// Vector2 is a mutable 2D vector with value semantics. Mutating methods
// return the receiver so calls chain fluently:
//
//	v.Add(gravity).MulScalar(dt).Rotate(math.Pi / 4)
//
// Callers that need a fresh value must Clone first; none of the methods
// allocate. Components are kept finite: a non-finite operand is treated as
// zero in release mode, and panics with the operation name when debug
// checks are on (see SetDebug). A zero divisor component in Div or Rem is
// a per-component no-op, not an error.
type Vector2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// NewVector2 creates a vector from x and y components.
func NewVector2(x, y float64) *Vector2 {
	return &Vector2{
		X: finiteOr("NewVector2", x, 0),
		Y: finiteOr("NewVector2", y, 0),
	}
}

// FromPair creates a vector from a two-component array.
func FromPair(p [2]float64) *Vector2 {
	return NewVector2(p[0], p[1])
}

// FromVector creates a copy of another vector. A nil source yields the
// zero vector.
func FromVector(o *Vector2) *Vector2 {
	if o == nil {
		if debugMode {
			panic("cinder debug: nil source in FromVector")
		}
		return &Vector2{}
	}
	return &Vector2{X: o.X, Y: o.Y}
}

// FromAngle creates a vector pointing along theta (radians) with the given
// length.
func FromAngle(theta, length float64) *Vector2 {
	sin, cos := math.Sincos(finiteOr("FromAngle", theta, 0))
	length = finiteOr("FromAngle", length, 0)
	return &Vector2{X: cos * length, Y: sin * length}
}

// operand validates a vector operand for a binary operation. A nil or
// non-finite operand is normalized to the additive identity (0, 0); in
// debug mode it panics instead so the call site is visible.
func operand(op string, o *Vector2) (x, y float64) {
	if o == nil {
		if debugMode {
			panic("cinder debug: nil operand in Vector2." + op)
		}
		return 0, 0
	}
	return finiteOr(op, o.X, 0), finiteOr(op, o.Y, 0)
}

// Clone returns a new vector with the same components.
func (v *Vector2) Clone() *Vector2 {
	return &Vector2{X: v.X, Y: v.Y}
}

// Set assigns both components.
func (v *Vector2) Set(x, y float64) *Vector2 {
	v.X = finiteOr("Set", x, 0)
	v.Y = finiteOr("Set", y, 0)
	return v
}

// SetZero resets the vector to (0, 0).
func (v *Vector2) SetZero() *Vector2 {
	v.X = 0
	v.Y = 0
	return v
}

// Copy assigns the components of o to v.
func (v *Vector2) Copy(o *Vector2) *Vector2 {
	v.X, v.Y = operand("Copy", o)
	return v
}

// IsZero reports whether both components are exactly zero.
func (v *Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Add adds o component-wise.
func (v *Vector2) Add(o *Vector2) *Vector2 {
	x, y := operand("Add", o)
	v.X += x
	v.Y += y
	return v
}

// AddScalar adds s to both components.
func (v *Vector2) AddScalar(s float64) *Vector2 {
	s = finiteOr("AddScalar", s, 0)
	v.X += s
	v.Y += s
	return v
}

// AddXY adds the component pair (x, y).
func (v *Vector2) AddXY(x, y float64) *Vector2 {
	v.X += finiteOr("AddXY", x, 0)
	v.Y += finiteOr("AddXY", y, 0)
	return v
}

// Sub subtracts o component-wise.
func (v *Vector2) Sub(o *Vector2) *Vector2 {
	x, y := operand("Sub", o)
	v.X -= x
	v.Y -= y
	return v
}

// SubScalar subtracts s from both components.
func (v *Vector2) SubScalar(s float64) *Vector2 {
	s = finiteOr("SubScalar", s, 0)
	v.X -= s
	v.Y -= s
	return v
}

// SubXY subtracts the component pair (x, y).
func (v *Vector2) SubXY(x, y float64) *Vector2 {
	v.X -= finiteOr("SubXY", x, 0)
	v.Y -= finiteOr("SubXY", y, 0)
	return v
}

// Mul multiplies component-wise by o.
func (v *Vector2) Mul(o *Vector2) *Vector2 {
	x, y := operand("Mul", o)
	v.X *= x
	v.Y *= y
	return v
}

// MulScalar scales both components by s.
func (v *Vector2) MulScalar(s float64) *Vector2 {
	s = finiteOr("MulScalar", s, 0)
	v.X *= s
	v.Y *= s
	return v
}

// MulXY multiplies by the component pair (x, y).
func (v *Vector2) MulXY(x, y float64) *Vector2 {
	v.X *= finiteOr("MulXY", x, 0)
	v.Y *= finiteOr("MulXY", y, 0)
	return v
}

// Div divides component-wise by o. A zero divisor component leaves the
// corresponding component unchanged.
func (v *Vector2) Div(o *Vector2) *Vector2 {
	x, y := operand("Div", o)
	if x != 0 {
		v.X /= x
	}
	if y != 0 {
		v.Y /= y
	}
	return v
}

// DivScalar divides both components by s. Zero is a no-op.
func (v *Vector2) DivScalar(s float64) *Vector2 {
	s = finiteOr("DivScalar", s, 0)
	if s != 0 {
		v.X /= s
		v.Y /= s
	}
	return v
}

// DivXY divides by the component pair (x, y), skipping zero components.
func (v *Vector2) DivXY(x, y float64) *Vector2 {
	x = finiteOr("DivXY", x, 0)
	y = finiteOr("DivXY", y, 0)
	if x != 0 {
		v.X /= x
	}
	if y != 0 {
		v.Y /= y
	}
	return v
}

// Rem replaces each component with its remainder modulo the matching
// component of o. A zero divisor component is a no-op.
func (v *Vector2) Rem(o *Vector2) *Vector2 {
	x, y := operand("Rem", o)
	if x != 0 {
		v.X = math.Mod(v.X, x)
	}
	if y != 0 {
		v.Y = math.Mod(v.Y, y)
	}
	return v
}

// RemScalar replaces both components with their remainder modulo s. Zero
// is a no-op.
func (v *Vector2) RemScalar(s float64) *Vector2 {
	s = finiteOr("RemScalar", s, 0)
	if s != 0 {
		v.X = math.Mod(v.X, s)
		v.Y = math.Mod(v.Y, s)
	}
	return v
}

// Negate flips the sign of both components.
func (v *Vector2) Negate() *Vector2 {
	v.X = -v.X
	v.Y = -v.Y
	return v
}

// Magnitude returns the Euclidean length.
func (v *Vector2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// MagnitudeSq returns the squared length. Prefer this over Magnitude when
// only comparing distances (collision and neighbor tests).
func (v *Vector2) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize scales the vector to unit length. The zero vector is left
// unchanged.
func (v *Vector2) Normalize() *Vector2 {
	mag := v.Magnitude()
	if mag == 0 {
		return v
	}
	v.X /= mag
	v.Y /= mag
	return v
}

// Heading returns the angle of the vector in radians.
func (v *Vector2) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate rotates the vector by theta radians via heading decomposition,
// preserving magnitude.
func (v *Vector2) Rotate(theta float64) *Vector2 {
	theta = finiteOr("Rotate", theta, 0)
	mag := v.Magnitude()
	sin, cos := math.Sincos(v.Heading() + theta)
	v.X = cos * mag
	v.Y = sin * mag
	return v
}

// Dot returns the dot product with o.
func (v *Vector2) Dot(o *Vector2) float64 {
	x, y := operand("Dot", o)
	return v.X*x + v.Y*y
}

// Cross returns the 2D scalar cross product (the determinant) with o.
func (v *Vector2) Cross(o *Vector2) float64 {
	x, y := operand("Cross", o)
	return v.X*y - v.Y*x
}

// Distance returns the Euclidean distance to o.
func (v *Vector2) Distance(o *Vector2) float64 {
	x, y := operand("Distance", o)
	dx := v.X - x
	dy := v.Y - y
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSq returns the squared distance to o.
func (v *Vector2) DistanceSq(o *Vector2) float64 {
	x, y := operand("DistanceSq", o)
	dx := v.X - x
	dy := v.Y - y
	return dx*dx + dy*dy
}

// Lerp linearly interpolates toward target; t = 0 leaves v unchanged,
// t = 1 lands on target.
func (v *Vector2) Lerp(target *Vector2, t float64) *Vector2 {
	x, y := operand("Lerp", target)
	t = finiteOr("Lerp", t, 0)
	v.X += (x - v.X) * t
	v.Y += (y - v.Y) * t
	return v
}

// Slerp spherically interpolates toward target: the heading sweeps through
// the subtended angle while the magnitude interpolates linearly. When
// either operand is the zero vector, or the angle between them is zero (or
// numerically degenerate at pi), spherical interpolation is ill-defined
// and Slerp falls back to Lerp.
func (v *Vector2) Slerp(target *Vector2, t float64) *Vector2 {
	x, y := operand("Slerp", target)
	t = finiteOr("Slerp", t, 0)

	magV := v.Magnitude()
	magT := math.Sqrt(x*x + y*y)
	if magV == 0 || magT == 0 {
		return v.Lerp(&Vector2{X: x, Y: y}, t)
	}

	cos := (v.X*x + v.Y*y) / (magV * magT)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	theta := math.Acos(cos)
	sinTheta := math.Sin(theta)
	if theta < vectorEpsilon || sinTheta < vectorEpsilon {
		return v.Lerp(&Vector2{X: x, Y: y}, t)
	}

	// Interpolate the unit directions on the arc, then the magnitudes.
	a := math.Sin((1-t)*theta) / sinTheta
	b := math.Sin(t*theta) / sinTheta
	ux := v.X/magV*a + x/magT*b
	uy := v.Y/magV*a + y/magT*b
	mag := magV + (magT-magV)*t
	v.X = ux * mag
	v.Y = uy * mag
	return v
}

// Reflect reflects the vector across the plane defined by the given
// normal. A zero normal is reported as a warning and leaves the vector
// unchanged.
func (v *Vector2) Reflect(normal *Vector2) *Vector2 {
	x, y := operand("Reflect", normal)
	magSq := x*x + y*y
	if magSq == 0 {
		warnf("Vector2.Reflect called with a zero normal; ignored")
		return v
	}
	d := 2 * (v.X*x + v.Y*y) / magSq
	v.X -= d * x
	v.Y -= d * y
	return v
}

// Equals reports whether both components match o within epsilon. A nil o
// never matches.
func (v *Vector2) Equals(o *Vector2) bool {
	if o == nil {
		return false
	}
	return math.Abs(v.X-o.X) < vectorEpsilon && math.Abs(v.Y-o.Y) < vectorEpsilon
}

// cloneOrZero copies a for the pure package-level forms below; nil yields
// the zero vector.
func cloneOrZero(a *Vector2) *Vector2 {
	if a == nil {
		return &Vector2{}
	}
	return a.Clone()
}

// VecAdd returns a + b without mutating either input.
func VecAdd(a, b *Vector2) *Vector2 { return cloneOrZero(a).Add(b) }

// VecSub returns a - b without mutating either input.
func VecSub(a, b *Vector2) *Vector2 { return cloneOrZero(a).Sub(b) }

// VecMul returns the component-wise product a * b without mutating either
// input.
func VecMul(a, b *Vector2) *Vector2 { return cloneOrZero(a).Mul(b) }

// VecDiv returns the component-wise quotient a / b without mutating either
// input. Zero divisor components are no-ops.
func VecDiv(a, b *Vector2) *Vector2 { return cloneOrZero(a).Div(b) }

// VecRem returns the component-wise remainder a mod b without mutating
// either input. Zero divisor components are no-ops.
func VecRem(a, b *Vector2) *Vector2 { return cloneOrZero(a).Rem(b) }

// VecScale returns a scaled by s without mutating a.
func VecScale(a *Vector2, s float64) *Vector2 { return cloneOrZero(a).MulScalar(s) }

// VecLerp returns the linear interpolation from a toward b by t without
// mutating either input.
func VecLerp(a, b *Vector2, t float64) *Vector2 { return cloneOrZero(a).Lerp(b, t) }

// VecSlerp returns the spherical interpolation from a toward b by t
// without mutating either input.
func VecSlerp(a, b *Vector2, t float64) *Vector2 { return cloneOrZero(a).Slerp(b, t) }

// VecRotate returns a rotated by theta without mutating a.
func VecRotate(a *Vector2, theta float64) *Vector2 { return cloneOrZero(a).Rotate(theta) }

// VecReflect returns a reflected across normal without mutating either
// input.
func VecReflect(a, normal *Vector2) *Vector2 { return cloneOrZero(a).Reflect(normal) }

// VecNormalize returns a unit-length copy of a (or a zero copy if a is
// zero).
func VecNormalize(a *Vector2) *Vector2 { return cloneOrZero(a).Normalize() }
