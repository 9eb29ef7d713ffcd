// Package rational provides exact rational numbers satisfying the curve
// coordinate contract, for curves defined over Q instead of a prime field.
// Slopes computed over these values are exact, unlike integer division.
package rational

import (
	"math/big"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Rat is an immutable rational number.
type Rat struct {
	r *big.Rat
}

var _ ecc.Coordinate[*Rat] = (*Rat)(nil)

// New returns num/den. It fails with ErrDivisionByZero when den is zero.
func New(num, den int64) (*Rat, error) {
	if den == 0 {
		return nil, ecc.NewOpError("rational.New", ecc.ErrDivisionByZero, "%d/0", num)
	}
	return &Rat{r: big.NewRat(num, den)}, nil
}

// FromInt64 returns v as a rational.
func FromInt64(v int64) *Rat {
	return &Rat{r: new(big.Rat).SetInt64(v)}
}

// FromBigInt returns v as a rational.
func FromBigInt(v *big.Int) *Rat {
	return &Rat{r: new(big.Rat).SetInt(v)}
}

// FromRat copies r.
func FromRat(r *big.Rat) *Rat {
	return &Rat{r: new(big.Rat).Set(r)}
}

// Parse reads an integer or fraction such as "-7" or "3/4".
func Parse(s string) (*Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, ecc.NewOpError("rational.Parse", ecc.ErrInvalidParameters, "%q", s)
	}
	return &Rat{r: r}, nil
}

func (a *Rat) check(op string, b *Rat) error {
	if b == nil || b.r == nil {
		return ecc.NewOpError(op, ecc.ErrInvalidParameters, "nil operand")
	}
	return nil
}

// Add returns a + b.
func (a *Rat) Add(b *Rat) (*Rat, error) {
	if err := a.check("rational.Add", b); err != nil {
		return nil, err
	}
	return &Rat{r: new(big.Rat).Add(a.r, b.r)}, nil
}

// Sub returns a - b.
func (a *Rat) Sub(b *Rat) (*Rat, error) {
	if err := a.check("rational.Sub", b); err != nil {
		return nil, err
	}
	return &Rat{r: new(big.Rat).Sub(a.r, b.r)}, nil
}

// Mul returns a * b.
func (a *Rat) Mul(b *Rat) (*Rat, error) {
	if err := a.check("rational.Mul", b); err != nil {
		return nil, err
	}
	return &Rat{r: new(big.Rat).Mul(a.r, b.r)}, nil
}

// Div returns a / b exactly.
func (a *Rat) Div(b *Rat) (*Rat, error) {
	if err := a.check("rational.Div", b); err != nil {
		return nil, err
	}
	if b.IsZero() {
		return nil, ecc.NewOpError("rational.Div", ecc.ErrDivisionByZero, "%s / 0", a)
	}
	return &Rat{r: new(big.Rat).Quo(a.r, b.r)}, nil
}

// Neg returns -a.
func (a *Rat) Neg() *Rat {
	return &Rat{r: new(big.Rat).Neg(a.r)}
}

// IsZero reports whether a == 0.
func (a *Rat) IsZero() bool {
	return a.r.Sign() == 0
}

// IsInt reports whether the denominator is 1.
func (a *Rat) IsInt() bool {
	return a.r.IsInt()
}

// Equal reports whether a == b.
func (a *Rat) Equal(b *Rat) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.r.Cmp(b.r) == 0
}

// FromInt64 returns v; every rational shares the same ring.
func (a *Rat) FromInt64(v int64) *Rat {
	return FromInt64(v)
}

// BigRat returns a copy of the underlying value.
func (a *Rat) BigRat() *big.Rat {
	return new(big.Rat).Set(a.r)
}

// String renders integers without a denominator and fractions as "n/d".
func (a *Rat) String() string {
	if a == nil {
		return "<nil>"
	}
	return a.r.RatString()
}
