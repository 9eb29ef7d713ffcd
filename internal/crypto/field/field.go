package field

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

// primalityRounds is the number of Miller-Rabin rounds passed to
// big.Int.ProbablyPrime; the check also runs Baillie-PSW.
const primalityRounds = 20

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Field is the prime field Z/pZ. The modulus is checked for primality once,
// when the Field is created, so elements built from the same Field skip
// the check.
type Field struct {
	p       *big.Int // the prime modulus
	pMinus1 *big.Int // order of the multiplicative group
	pMinus2 *big.Int // Fermat inverse exponent
}

// NewField validates p and returns the field Z/pZ.
// It fails with ErrNotPrime when p is not prime.
func NewField(p *big.Int) (*Field, error) {
	if p == nil {
		return nil, ecc.NewOpError("field.NewField", ecc.ErrInvalidParameters, "nil modulus")
	}
	if p.Cmp(two) < 0 || !p.ProbablyPrime(primalityRounds) {
		return nil, ecc.NewOpError("field.NewField", ecc.ErrNotPrime, "%s", p)
	}

	modulus := new(big.Int).Set(p)
	return &Field{
		p:       modulus,
		pMinus1: new(big.Int).Sub(modulus, one),
		pMinus2: new(big.Int).Sub(modulus, two),
	}, nil
}

// NewFieldInt64 is NewField for small moduli.
func NewFieldInt64(p int64) (*Field, error) {
	return NewField(big.NewInt(p))
}

// Modulus returns a copy of p.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// Equal reports whether two fields have the same modulus.
func (f *Field) Equal(g *Field) bool {
	if f == g {
		return true
	}
	if f == nil || g == nil {
		return false
	}
	return f.p.Cmp(g.p) == 0
}

// Element returns v as a field element. v must already be in [0, p).
func (f *Field) Element(v *big.Int) (*Element, error) {
	if v == nil {
		return nil, ecc.NewOpError("field.Element", ecc.ErrInvalidParameters, "nil value")
	}
	if v.Sign() < 0 || v.Cmp(f.p) >= 0 {
		return nil, ecc.NewOpError("field.Element", ecc.ErrOutOfRange, "%s not in [0, %s)", v, f.p)
	}
	return &Element{value: new(big.Int).Set(v), field: f}, nil
}

// ElementInt64 is Element for small values.
func (f *Field) ElementInt64(v int64) (*Element, error) {
	return f.Element(big.NewInt(v))
}

// Reduce maps any integer, negative ones included, onto its residue class.
func (f *Field) Reduce(v *big.Int) *Element {
	// big.Int.Mod is Euclidean: the result is always in [0, p).
	return &Element{value: new(big.Int).Mod(v, f.p), field: f}
}

// ReduceInt64 is Reduce for small values.
func (f *Field) ReduceInt64(v int64) *Element {
	return f.Reduce(big.NewInt(v))
}

// Zero returns the additive identity.
func (f *Field) Zero() *Element {
	return &Element{value: new(big.Int), field: f}
}

// One returns the multiplicative identity.
func (f *Field) One() *Element {
	return &Element{value: big.NewInt(1), field: f}
}

func (f *Field) String() string {
	return fmt.Sprintf("F_%s", f.p)
}

// New validates modulus and value and returns the element value mod modulus.
// It fails with ErrNotPrime for a composite modulus and ErrOutOfRange when
// value is not in [0, modulus).
func New(value, modulus *big.Int) (*Element, error) {
	f, err := NewField(modulus)
	if err != nil {
		return nil, err
	}
	return f.Element(value)
}

// NewInt64 is New for small values.
func NewInt64(value, modulus int64) (*Element, error) {
	return New(big.NewInt(value), big.NewInt(modulus))
}
