package curves

import (
	"math/big"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecc/internal/crypto/field"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

var _ ecc.Group[*Point[*field.Element]] = (*Point[*field.Element])(nil)

var (
	secp256k1Once  sync.Once
	secp256k1Curve *Curve[*field.Element]
	secp256k1G     *Point[*field.Element]
	secp256k1Err   error
)

// Secp256k1 returns the curve y^2 = x^3 + 7 over the secp256k1 base field
// and its generator G. The parameters are taken from the decred
// implementation and built once.
func Secp256k1() (*Curve[*field.Element], *Point[*field.Element], error) {
	secp256k1Once.Do(func() {
		secp256k1Curve, secp256k1G, secp256k1Err = newSecp256k1()
	})
	return secp256k1Curve, secp256k1G, secp256k1Err
}

func newSecp256k1() (*Curve[*field.Element], *Point[*field.Element], error) {
	params := secp256k1.S256().Params()

	f, err := field.NewField(params.P)
	if err != nil {
		return nil, nil, err
	}
	c, err := NewCurve(f.Zero(), f.Reduce(params.B))
	if err != nil {
		return nil, nil, err
	}
	g, err := c.Point(f.Reduce(params.Gx), f.Reduce(params.Gy))
	if err != nil {
		return nil, nil, err
	}
	return c, g, nil
}

// Secp256k1Order returns N, the order of the secp256k1 generator.
func Secp256k1Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().N)
}

// ToSecp256k1PublicKey converts a finite point of the secp256k1 curve to a
// decred public key.
func ToSecp256k1PublicKey(p *Point[*field.Element]) (*secp256k1.PublicKey, error) {
	c, _, err := Secp256k1()
	if err != nil {
		return nil, err
	}
	if !p.Curve().Equal(c) {
		return nil, ecc.NewOpError("curves.ToSecp256k1PublicKey", ecc.ErrCurveMismatch, "%s", p.Curve())
	}
	if p.IsInfinity() {
		return nil, ecc.NewOpError("curves.ToSecp256k1PublicKey", ecc.ErrInvalidParameters, "point at infinity")
	}

	var x, y secp256k1.FieldVal
	x.SetByteSlice(p.X().BigInt().Bytes())
	y.SetByteSlice(p.Y().BigInt().Bytes())
	return secp256k1.NewPublicKey(&x, &y), nil
}

// FromSecp256k1PublicKey converts a decred public key to a point.
func FromSecp256k1PublicKey(pub *secp256k1.PublicKey) (*Point[*field.Element], error) {
	if pub == nil {
		return nil, ecc.NewOpError("curves.FromSecp256k1PublicKey", ecc.ErrInvalidParameters, "nil key")
	}
	c, _, err := Secp256k1()
	if err != nil {
		return nil, err
	}
	f := c.A().Field()
	return c.Point(f.Reduce(pub.X()), f.Reduce(pub.Y()))
}
