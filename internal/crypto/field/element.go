package field

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Element is a member of a prime field. The value always lies in [0, p).
// Elements are immutable: every method returns a new Element.
type Element struct {
	value *big.Int // element value in range [0, p-1]
	field *Field   // parent field
}

var _ ecc.Coordinate[*Element] = (*Element)(nil)

// sameField returns ErrFieldMismatch unless b is in e's field.
func (e *Element) sameField(op string, b *Element) error {
	if b == nil {
		return ecc.NewOpError(op, ecc.ErrInvalidParameters, "nil operand")
	}
	if !e.field.Equal(b.field) {
		return ecc.NewOpError(op, ecc.ErrFieldMismatch, "%s vs %s", e.field, b.field)
	}
	return nil
}

func (e *Element) with(v *big.Int) *Element {
	return &Element{value: v.Mod(v, e.field.p), field: e.field}
}

// Add returns e + b.
func (e *Element) Add(b *Element) (*Element, error) {
	if err := e.sameField("field.Add", b); err != nil {
		return nil, err
	}
	return e.with(new(big.Int).Add(e.value, b.value)), nil
}

// Sub returns e - b. The difference is reduced with a Euclidean modulus so
// negative intermediates land in [0, p).
func (e *Element) Sub(b *Element) (*Element, error) {
	if err := e.sameField("field.Sub", b); err != nil {
		return nil, err
	}
	return e.with(new(big.Int).Sub(e.value, b.value)), nil
}

// Mul returns e * b.
func (e *Element) Mul(b *Element) (*Element, error) {
	if err := e.sameField("field.Mul", b); err != nil {
		return nil, err
	}
	return e.with(new(big.Int).Mul(e.value, b.value)), nil
}

// Div returns e / b, computed as e * b^(p-2).
func (e *Element) Div(b *Element) (*Element, error) {
	if err := e.sameField("field.Div", b); err != nil {
		return nil, err
	}
	if b.IsZero() {
		return nil, ecc.NewOpError("field.Div", ecc.ErrDivisionByZero, "%s / %s", e, b)
	}
	return e.Mul(b.pow(e.field.pMinus2))
}

// Inverse returns e^-1 = e^(p-2).
func (e *Element) Inverse() (*Element, error) {
	if e.IsZero() {
		return nil, ecc.NewOpError("field.Inverse", ecc.ErrDivisionByZero, "%s", e)
	}
	return e.pow(e.field.pMinus2), nil
}

// Pow returns e^exp for any signed exponent. The exponent is first reduced
// modulo p-1, the order of the multiplicative group, which also turns a
// negative exponent into the equivalent positive one.
//
// As a consequence Pow follows a^k == a^(k mod (p-1)) for every element,
// zero included: 0^(p-1) evaluates to 0^0 == 1. A nil exponent is
// ErrInvalidParameters.
func (e *Element) Pow(exp *big.Int) (*Element, error) {
	if exp == nil {
		return nil, ecc.NewOpError("field.Pow", ecc.ErrInvalidParameters, "nil exponent")
	}
	return e.pow(exp), nil
}

func (e *Element) pow(exp *big.Int) *Element {
	k := new(big.Int).Mod(exp, e.field.pMinus1)
	return &Element{
		value: new(big.Int).Exp(e.value, k, e.field.p),
		field: e.field,
	}
}

// PowInt64 is Pow for small exponents.
func (e *Element) PowInt64(exp int64) *Element {
	return e.pow(big.NewInt(exp))
}

// Neg returns -e.
func (e *Element) Neg() *Element {
	return e.with(new(big.Int).Neg(e.value))
}

// Square returns e * e.
func (e *Element) Square() *Element {
	return e.with(new(big.Int).Mul(e.value, e.value))
}

// IsZero returns true if e equals zero.
func (e *Element) IsZero() bool {
	return e.value.Sign() == 0
}

// Equal reports whether e and b have the same value and modulus.
func (e *Element) Equal(b *Element) bool {
	if e == nil || b == nil {
		return e == b
	}
	return e.field.Equal(b.field) && e.value.Cmp(b.value) == 0
}

// FromInt64 returns v reduced into e's field.
func (e *Element) FromInt64(v int64) *Element {
	return e.field.ReduceInt64(v)
}

// BigInt returns a copy of the value.
func (e *Element) BigInt() *big.Int {
	return new(big.Int).Set(e.value)
}

// Modulus returns a copy of the field modulus.
func (e *Element) Modulus() *big.Int {
	return e.field.Modulus()
}

// Field returns the parent field.
func (e *Element) Field() *Field {
	return e.field
}

// String renders the element as FieldElement_p(value).
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("FieldElement_%s(%s)", e.field.p, e.value)
}
