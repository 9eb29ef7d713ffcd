package curves

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

var log = logging.Logger("curves")

// Point is either a finite point (x, y) on a curve or the point at
// infinity, the identity of the curve's group. Points are immutable.
type Point[T ecc.Coordinate[T]] struct {
	x, y  T
	inf   bool
	curve *Curve[T]
}

// NewPoint validates (x, y) against y^2 = x^3 + ax + b.
func NewPoint[T ecc.Coordinate[T]](x, y, a, b T) (*Point[T], error) {
	c, err := NewCurve(a, b)
	if err != nil {
		return nil, err
	}
	return c.Point(x, y)
}

// Infinity returns the point at infinity on the curve (a, b).
func Infinity[T ecc.Coordinate[T]](a, b T) *Point[T] {
	return curveOf(a, b).Infinity()
}

// IsInfinity reports whether p is the group identity.
func (p *Point[T]) IsInfinity() bool {
	return p.inf
}

// IsIdentity is IsInfinity.
func (p *Point[T]) IsIdentity() bool {
	return p.inf
}

// X returns the x coordinate; the zero value of T for infinity.
func (p *Point[T]) X() T {
	return p.x
}

// Y returns the y coordinate; the zero value of T for infinity.
func (p *Point[T]) Y() T {
	return p.y
}

// Coordinates returns (x, y, true) for a finite point and ok == false for
// the point at infinity.
func (p *Point[T]) Coordinates() (x, y T, ok bool) {
	if p.inf {
		return x, y, false
	}
	return p.x, p.y, true
}

// Curve returns the curve the point lies on.
func (p *Point[T]) Curve() *Curve[T] {
	return p.curve
}

// Equal reports whether p and q are the same point on the same curve.
func (p *Point[T]) Equal(q *Point[T]) bool {
	if p == nil || q == nil {
		return p == q
	}
	if !p.curve.Equal(q.curve) || p.inf != q.inf {
		return false
	}
	if p.inf {
		return true
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Neg returns -p, the reflection over the x axis.
func (p *Point[T]) Neg() *Point[T] {
	if p.inf {
		return p
	}
	return &Point[T]{x: p.x, y: p.y.Neg(), curve: p.curve}
}

// Add returns p + q. The cases are checked in order:
//
//  1. either operand is infinity: the other operand;
//  2. same x and y1 == -y2 (this includes doubling a point with y == 0):
//     infinity;
//  3. same x and y: the tangent at p;
//  4. different x: the chord through p and q.
//
// Two valid points with the same x always have y1 == y2 or y1 == -y2, so any
// other combination is reported as ErrInvariantViolation.
func (p *Point[T]) Add(q *Point[T]) (*Point[T], error) {
	if q == nil {
		return nil, ecc.NewOpError("curves.Add", ecc.ErrInvalidParameters, "nil operand")
	}
	if !p.curve.Equal(q.curve) {
		return nil, ecc.NewOpError("curves.Add", ecc.ErrCurveMismatch, "%s vs %s", p.curve, q.curve)
	}

	switch {
	case p.inf:
		return q, nil
	case q.inf:
		return p, nil
	}

	if p.x.Equal(q.x) {
		if p.y.Equal(q.y.Neg()) {
			return p.curve.Infinity(), nil
		}
		if p.y.Equal(q.y) {
			return p.tangent()
		}
		log.Errorf("group law fell through: %s + %s", p, q)
		return nil, ecc.NewOpError("curves.Add", ecc.ErrInvariantViolation, "%s + %s", p, q)
	}
	return p.chord(q)
}

// tangent doubles p; p is finite with y != 0.
func (p *Point[T]) tangent() (*Point[T], error) {
	// s = (3x^2 + a) / 2y
	x2, err := p.x.Mul(p.x)
	if err != nil {
		return nil, err
	}
	num, err := x2.Mul(p.x.FromInt64(3))
	if err != nil {
		return nil, err
	}
	if num, err = num.Add(p.curve.a); err != nil {
		return nil, err
	}
	den, err := p.y.Mul(p.y.FromInt64(2))
	if err != nil {
		return nil, err
	}
	s, err := num.Div(den)
	if err != nil {
		return nil, err
	}

	// x3 = s^2 - 2x
	twoX, err := p.x.Add(p.x)
	if err != nil {
		return nil, err
	}
	return p.fromSlope(s, twoX)
}

// chord adds two finite points with different x.
func (p *Point[T]) chord(q *Point[T]) (*Point[T], error) {
	// s = (y2 - y1) / (x2 - x1)
	dy, err := q.y.Sub(p.y)
	if err != nil {
		return nil, err
	}
	dx, err := q.x.Sub(p.x)
	if err != nil {
		return nil, err
	}
	s, err := dy.Div(dx)
	if err != nil {
		return nil, err
	}

	// x3 = s^2 - x1 - x2
	xs, err := p.x.Add(q.x)
	if err != nil {
		return nil, err
	}
	return p.fromSlope(s, xs)
}

// fromSlope finishes both formulas: x3 = s^2 - xs, y3 = s(x1 - x3) - y1.
func (p *Point[T]) fromSlope(s, xs T) (*Point[T], error) {
	s2, err := s.Mul(s)
	if err != nil {
		return nil, err
	}
	x3, err := s2.Sub(xs)
	if err != nil {
		return nil, err
	}
	dx, err := p.x.Sub(x3)
	if err != nil {
		return nil, err
	}
	y3, err := s.Mul(dx)
	if err != nil {
		return nil, err
	}
	if y3, err = y3.Sub(p.y); err != nil {
		return nil, err
	}
	return &Point[T]{x: x3, y: y3, curve: p.curve}, nil
}

// Double returns p + p.
func (p *Point[T]) Double() (*Point[T], error) {
	return p.Add(p)
}

// Sub returns p - q.
func (p *Point[T]) Sub(q *Point[T]) (*Point[T], error) {
	if q == nil {
		return nil, ecc.NewOpError("curves.Sub", ecc.ErrInvalidParameters, "nil operand")
	}
	return p.Add(q.Neg())
}

// String renders the point as Point(x,y)_a_b or Point(infinity)_a_b.
func (p *Point[T]) String() string {
	if p.inf {
		return fmt.Sprintf("Point(infinity)_%s_%s", p.curve.a, p.curve.b)
	}
	return fmt.Sprintf("Point(%s,%s)_%s_%s", p.x, p.y, p.curve.a, p.curve.b)
}
