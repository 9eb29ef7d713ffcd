package config

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/internal/crypto/field"
	"github.com/smallyu/go-ecc/internal/crypto/rational"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

// Preset names a curve y^2 = x^3 + ax + b. An empty Modulus selects the
// rationals, anything else the prime field of that order.
type Preset struct {
	Name    string `mapstructure:"name"`
	Modulus string `mapstructure:"modulus"`
	A       string `mapstructure:"a"`
	B       string `mapstructure:"b"`
	Gx      string `mapstructure:"gx"`
	Gy      string `mapstructure:"gy"`
}

func builtin() map[string]Preset {
	params := secp256k1.S256().Params()
	return map[string]Preset{
		"book": {Name: "book", A: "5", B: "7"},
		"book223": {
			Name: "book223", Modulus: "223", A: "0", B: "7",
			Gx: "47", Gy: "71",
		},
		"secp256k1": {
			Name:    "secp256k1",
			Modulus: "0x" + params.P.Text(16),
			A:       "0",
			B:       "7",
			Gx:      "0x" + params.Gx.Text(16),
			Gy:      "0x" + params.Gy.Text(16),
		},
	}
}

// Modular reports whether the preset is over a prime field.
func (p Preset) Modular() bool {
	return p.Modulus != ""
}

// HasGenerator reports whether both generator coordinates are set.
func (p Preset) HasGenerator() bool {
	return p.Gx != "" && p.Gy != ""
}

// Validate checks that the preset builds a curve, and that the generator,
// if any, lies on it.
func (p Preset) Validate() error {
	if p.Name == "" {
		return ecc.NewOpError("config.Validate", ecc.ErrInvalidParameters, "preset without a name")
	}
	if (p.Gx == "") != (p.Gy == "") {
		return ecc.NewOpError("config.Validate", ecc.ErrInvalidParameters, "%s: generator needs both gx and gy", p.Name)
	}

	if p.Modular() {
		c, err := p.FieldCurve()
		if err != nil {
			return err
		}
		if p.HasGenerator() {
			_, err = FieldPoint(c, p.Gx, p.Gy)
		}
		return err
	}

	c, err := p.RationalCurve()
	if err != nil {
		return err
	}
	if p.HasGenerator() {
		_, err = RationalPoint(c, p.Gx, p.Gy)
	}
	return err
}

// Field returns the prime field of a modular preset.
func (p Preset) Field() (*field.Field, error) {
	if !p.Modular() {
		return nil, ecc.NewOpError("config.Field", ecc.ErrInvalidParameters, "%s is not over a prime field", p.Name)
	}
	m, err := ParseInt(p.Modulus)
	if err != nil {
		return nil, err
	}
	return field.NewField(m)
}

// FieldCurve builds a modular preset. Coefficients are reduced mod p.
func (p Preset) FieldCurve() (*curves.Curve[*field.Element], error) {
	f, err := p.Field()
	if err != nil {
		return nil, err
	}
	a, err := ParseInt(p.A)
	if err != nil {
		return nil, err
	}
	b, err := ParseInt(p.B)
	if err != nil {
		return nil, err
	}
	return curves.NewCurve(f.Reduce(a), f.Reduce(b))
}

// RationalCurve builds a preset over the rationals.
func (p Preset) RationalCurve() (*curves.Curve[*rational.Rat], error) {
	if p.Modular() {
		return nil, ecc.NewOpError("config.RationalCurve", ecc.ErrInvalidParameters, "%s is over a prime field", p.Name)
	}
	a, err := rational.Parse(p.A)
	if err != nil {
		return nil, err
	}
	b, err := rational.Parse(p.B)
	if err != nil {
		return nil, err
	}
	return curves.NewCurve(a, b)
}

// FieldPoint parses (x, y) on a modular curve. "inf" for x selects the
// point at infinity. Coordinates must already be in [0, p).
func FieldPoint(c *curves.Curve[*field.Element], x, y string) (*curves.Point[*field.Element], error) {
	if x == "inf" {
		return c.Infinity(), nil
	}
	f := c.A().Field()
	xv, err := ParseInt(x)
	if err != nil {
		return nil, err
	}
	yv, err := ParseInt(y)
	if err != nil {
		return nil, err
	}
	xe, err := f.Element(xv)
	if err != nil {
		return nil, err
	}
	ye, err := f.Element(yv)
	if err != nil {
		return nil, err
	}
	return c.Point(xe, ye)
}

// RationalPoint parses (x, y) on a rational curve; "inf" as for FieldPoint.
func RationalPoint(c *curves.Curve[*rational.Rat], x, y string) (*curves.Point[*rational.Rat], error) {
	if x == "inf" {
		return c.Infinity(), nil
	}
	xr, err := rational.Parse(x)
	if err != nil {
		return nil, err
	}
	yr, err := rational.Parse(y)
	if err != nil {
		return nil, err
	}
	return c.Point(xr, yr)
}
