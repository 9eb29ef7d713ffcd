package curves

import (
	"fmt"

	"github.com/smallyu/go-ecc/internal/crypto/polynomial"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Curve is the short Weierstrass curve y^2 = x^3 + ax + b over the ring of
// its coefficients.
type Curve[T ecc.Coordinate[T]] struct {
	a, b T
	rhs  *polynomial.Polynomial[T] // x^3 + ax + b
}

// NewCurve returns the curve with coefficients a and b. Both must belong to
// the same ring.
func NewCurve[T ecc.Coordinate[T]](a, b T) (*Curve[T], error) {
	if _, err := a.Add(b); err != nil {
		return nil, err
	}
	return curveOf(a, b), nil
}

func curveOf[T ecc.Coordinate[T]](a, b T) *Curve[T] {
	rhs, _ := polynomial.New(b, a, a.FromInt64(0), a.FromInt64(1))
	return &Curve[T]{a: a, b: b, rhs: rhs}
}

// A returns the linear coefficient.
func (c *Curve[T]) A() T {
	return c.a
}

// B returns the constant term.
func (c *Curve[T]) B() T {
	return c.b
}

// Equal reports whether both curves have the same coefficients.
func (c *Curve[T]) Equal(o *Curve[T]) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return c.a.Equal(o.a) && c.b.Equal(o.b)
}

// Polynomial returns x^3 + ax + b.
func (c *Curve[T]) Polynomial(x T) (T, error) {
	return c.rhs.Evaluate(x)
}

// IsOnCurve reports whether (x, y) satisfies y^2 = x^3 + ax + b.
func (c *Curve[T]) IsOnCurve(x, y T) (bool, error) {
	rhs, err := c.Polynomial(x)
	if err != nil {
		return false, err
	}
	lhs, err := y.Mul(y)
	if err != nil {
		return false, err
	}
	// Sub checks that y and the curve share a ring; Equal would not.
	d, err := lhs.Sub(rhs)
	if err != nil {
		return false, err
	}
	return d.IsZero(), nil
}

// IsSingular reports whether 4a^3 + 27b^2 == 0, in which case the curve has
// a cusp or node and the chord-tangent law does not form a group.
func (c *Curve[T]) IsSingular() (bool, error) {
	a3, err := mul(c.a, c.a, c.a, c.a.FromInt64(4))
	if err != nil {
		return false, err
	}
	b2, err := mul(c.b, c.b, c.b.FromInt64(27))
	if err != nil {
		return false, err
	}
	d, err := a3.Add(b2)
	if err != nil {
		return false, err
	}
	return d.IsZero(), nil
}

// Point returns the finite point (x, y) on c, or ErrNotOnCurve.
func (c *Curve[T]) Point(x, y T) (*Point[T], error) {
	ok, err := c.IsOnCurve(x, y)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ecc.NewOpError("curves.NewPoint", ecc.ErrNotOnCurve, "(%s, %s) on %s", x, y, c)
	}
	return &Point[T]{x: x, y: y, curve: c}, nil
}

// Infinity returns the identity element of c.
func (c *Curve[T]) Infinity() *Point[T] {
	return &Point[T]{inf: true, curve: c}
}

func (c *Curve[T]) String() string {
	return fmt.Sprintf("y^2 = x^3 + %s*x + %s", c.a, c.b)
}

// mul multiplies all factors left to right.
func mul[T ecc.Coordinate[T]](first T, rest ...T) (T, error) {
	acc := first
	var err error
	for _, f := range rest {
		acc, err = acc.Mul(f)
		if err != nil {
			return acc, err
		}
	}
	return acc, nil
}
