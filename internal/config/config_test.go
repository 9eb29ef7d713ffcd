package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecc/internal/crypto/curves"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ecc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	conf, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "book223", conf.Curve)
	assert.Equal(t, "warn", conf.LogLevel)
	assert.Empty(t, conf.Presets)
	assert.Equal(t, []string{"book", "book223", "secp256k1"}, conf.Names())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ECC_CURVE", "secp256k1")
	t.Setenv("ECC_LOG_LEVEL", "debug")

	conf, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "secp256k1", conf.Curve)
	assert.Equal(t, "debug", conf.LogLevel)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
curve: small
presets:
  - name: small
    modulus: 59
    a: 2
    b: 3
    gx: 3
    gy: 6
  - name: book
    a: "-1"
    b: "0"
`)

	conf, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "small", conf.Curve)
	require.Len(t, conf.Presets, 2)
	assert.Equal(t, []string{"book", "book223", "secp256k1", "small"}, conf.Names())

	small, err := conf.Preset("small")
	require.NoError(t, err)
	assert.True(t, small.Modular())
	assert.True(t, small.HasGenerator())

	// The file shadows the built-in preset of the same name.
	book, err := conf.Preset("book")
	require.NoError(t, err)
	assert.Equal(t, "-1", book.A)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		target error
	}{
		{"unknown key", "bogus: 1\n", nil},
		{"composite modulus", "presets:\n  - name: x\n    modulus: 221\n    a: 0\n    b: 7\n", ecc.ErrNotPrime},
		{"generator off curve", "presets:\n  - name: x\n    modulus: 223\n    a: 0\n    b: 7\n    gx: 47\n    gy: 70\n", ecc.ErrNotOnCurve},
		{"half generator", "presets:\n  - name: x\n    a: 5\n    b: 7\n    gx: 2\n", ecc.ErrInvalidParameters},
		{"no name", "presets:\n  - a: 5\n    b: 7\n", ecc.ErrInvalidParameters},
		{"bad number", "presets:\n  - name: x\n    modulus: 0xzz\n    a: 0\n    b: 7\n", ecc.ErrInvalidParameters},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(New(), writeConfig(t, tc.body))
			require.Error(t, err)
			if tc.target != nil {
				assert.ErrorIs(t, err, tc.target)
			}
		})
	}

	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuiltinPresets(t *testing.T) {
	for name, p := range builtin() {
		assert.NoError(t, p.Validate(), name)
	}

	conf := &Config{}
	_, err := conf.Preset("p256")
	assert.ErrorIs(t, err, ecc.ErrInvalidParameters)
}

func TestSecp256k1PresetMatchesCurve(t *testing.T) {
	c, g, err := curves.Secp256k1()
	require.NoError(t, err)

	p := builtin()["secp256k1"]
	pc, err := p.FieldCurve()
	require.NoError(t, err)
	assert.True(t, pc.Equal(c))

	pg, err := FieldPoint(pc, p.Gx, p.Gy)
	require.NoError(t, err)
	assert.True(t, pg.Equal(g))
}

func TestPresetCurves(t *testing.T) {
	book := builtin()["book"]
	_, err := book.Field()
	assert.ErrorIs(t, err, ecc.ErrInvalidParameters)
	_, err = book.FieldCurve()
	assert.ErrorIs(t, err, ecc.ErrInvalidParameters)

	c, err := book.RationalCurve()
	require.NoError(t, err)
	p, err := RationalPoint(c, "-1", "-1")
	require.NoError(t, err)
	assert.Equal(t, "Point(-1,-1)_5_7", p.String())

	inf, err := RationalPoint(c, "inf", "")
	require.NoError(t, err)
	assert.True(t, inf.IsInfinity())

	_, err = builtin()["book223"].RationalCurve()
	assert.ErrorIs(t, err, ecc.ErrInvalidParameters)

	fc, err := builtin()["book223"].FieldCurve()
	require.NoError(t, err)
	_, err = FieldPoint(fc, "300", "71")
	assert.ErrorIs(t, err, ecc.ErrOutOfRange)
	_, err = FieldPoint(fc, "0x2f", "0x47")
	assert.NoError(t, err, "(47, 71) in hex")
}

func TestParseInt(t *testing.T) {
	v, err := ParseInt(" 0xff ")
	require.NoError(t, err)
	assert.Equal(t, int64(255), v.Int64())

	v, err = ParseInt("-12")
	require.NoError(t, err)
	assert.Equal(t, int64(-12), v.Int64())

	_, err = ParseInt("twelve")
	assert.ErrorIs(t, err, ecc.ErrInvalidParameters)
}
