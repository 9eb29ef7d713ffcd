package curves

import (
	"context"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecc/internal/crypto/field"
	"github.com/smallyu/go-ecc/pkg/ecc"
)

func TestSecp256k1Generator(t *testing.T) {
	c, g, err := Secp256k1()
	require.NoError(t, err)

	params := secp256k1.S256().Params()
	assert.Equal(t, 0, g.X().BigInt().Cmp(params.Gx))
	assert.Equal(t, 0, g.Y().BigInt().Cmp(params.Gy))
	assert.Equal(t, 0, c.A().Modulus().Cmp(params.P))
	assert.True(t, c.A().IsZero())

	singular, err := c.IsSingular()
	require.NoError(t, err)
	assert.False(t, singular)

	c2, g2, err := Secp256k1()
	require.NoError(t, err)
	assert.Same(t, c, c2)
	assert.Same(t, g, g2)
}

func TestSecp256k1ScalarMul(t *testing.T) {
	_, g, err := Secp256k1()
	require.NoError(t, err)

	scalars := []string{
		"1",
		"2",
		"7",
		"deadbeef",
		"c0ffee254729296a45a3885639ac7e10f9d54979",
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140", // N - 1
	}

	for _, hex := range scalars {
		k, ok := new(big.Int).SetString(hex, 16)
		require.True(t, ok)

		got, err := g.ScalarMul(k)
		require.NoError(t, err)

		want := secp256k1.PrivKeyFromBytes(k.Bytes()).PubKey()
		assert.Equal(t, 0, got.X().BigInt().Cmp(want.X()), "k = %s", hex)
		assert.Equal(t, 0, got.Y().BigInt().Cmp(want.Y()), "k = %s", hex)
	}
}

func TestSecp256k1Order(t *testing.T) {
	_, g, err := Secp256k1()
	require.NoError(t, err)

	n := Secp256k1Order()
	p, err := g.ScalarMul(n)
	require.NoError(t, err)
	assert.True(t, p.IsInfinity())

	// (N - 1) * G == -G
	p, err = g.ScalarMul(new(big.Int).Sub(n, big.NewInt(1)))
	require.NoError(t, err)
	assert.True(t, p.Equal(g.Neg()))

	// Secp256k1Order returns a copy.
	n.SetInt64(0)
	assert.NotZero(t, Secp256k1Order().Sign())
}

func TestSecp256k1AddMatchesDecred(t *testing.T) {
	_, g, err := Secp256k1()
	require.NoError(t, err)

	p, err := g.ScalarMulInt64(12345)
	require.NoError(t, err)
	q, err := g.ScalarMulInt64(67890)
	require.NoError(t, err)

	sum, err := p.Add(q)
	require.NoError(t, err)

	x, y := secp256k1.S256().Add(p.X().BigInt(), p.Y().BigInt(), q.X().BigInt(), q.Y().BigInt())
	assert.Equal(t, 0, sum.X().BigInt().Cmp(x))
	assert.Equal(t, 0, sum.Y().BigInt().Cmp(y))

	expected, err := g.ScalarMulInt64(12345 + 67890)
	require.NoError(t, err)
	assert.True(t, sum.Equal(expected))
}

func TestSecp256k1PublicKeyConversion(t *testing.T) {
	_, g, err := Secp256k1()
	require.NoError(t, err)

	p, err := g.ScalarMulInt64(424242)
	require.NoError(t, err)

	pub, err := ToSecp256k1PublicKey(p)
	require.NoError(t, err)
	assert.True(t, pub.IsEqual(secp256k1.PrivKeyFromBytes(big.NewInt(424242).Bytes()).PubKey()))

	back, err := FromSecp256k1PublicKey(pub)
	require.NoError(t, err)
	assert.True(t, back.Equal(p))

	// Compressed encoding round trip.
	parsed, err := secp256k1.ParsePubKey(pub.SerializeCompressed())
	require.NoError(t, err)
	back, err = FromSecp256k1PublicKey(parsed)
	require.NoError(t, err)
	assert.True(t, back.Equal(p))
}

func TestSecp256k1PublicKeyConversionErrors(t *testing.T) {
	c, _, err := Secp256k1()
	require.NoError(t, err)

	_, err = ToSecp256k1PublicKey(c.Infinity())
	assert.ErrorIs(t, err, ecc.ErrInvalidParameters)

	f, other := f223(t)
	_, err = ToSecp256k1PublicKey(fieldPoint(t, f, other, 47, 71))
	assert.ErrorIs(t, err, ecc.ErrCurveMismatch)

	_, err = FromSecp256k1PublicKey(nil)
	assert.ErrorIs(t, err, ecc.ErrInvalidParameters)
}

func TestScalarMulSmall(t *testing.T) {
	f, c := f223(t)
	g := fieldPoint(t, f, c, 47, 71)

	testCases := []struct {
		k      int64
		expect *Point[*field.Element]
	}{
		{0, c.Infinity()},
		{1, g},
		{2, fieldPoint(t, f, c, 36, 111)},
		{21, c.Infinity()},
		{22, g},
		{-1, g.Neg()},
		{-20, g},
	}

	for _, tc := range testCases {
		got, err := g.ScalarMulInt64(tc.k)
		require.NoError(t, err)
		assert.True(t, got.Equal(tc.expect), "%d * %s = %s", tc.k, g, got)
	}

	seven, err := fieldPoint(t, f, c, 15, 86).ScalarMulInt64(7)
	require.NoError(t, err)
	assert.True(t, seven.IsInfinity())

	inf, err := c.Infinity().ScalarMulInt64(5)
	require.NoError(t, err)
	assert.True(t, inf.IsInfinity())

	_, err = g.ScalarMul(nil)
	assert.ErrorIs(t, err, ecc.ErrInvalidParameters)
}

func TestScalarMulMatchesRepeatedAddition(t *testing.T) {
	c := bookCurve(t)
	p := ratPoint(t, c, 2, 5)

	acc := c.Infinity()
	for k := int64(1); k <= 4; k++ {
		var err error
		acc, err = acc.Add(p)
		require.NoError(t, err)

		got, err := p.ScalarMulInt64(k)
		require.NoError(t, err)
		assert.True(t, got.Equal(acc), "k = %d", k)
	}
}

func TestScalarMulBatch(t *testing.T) {
	f, c := f223(t)
	g := fieldPoint(t, f, c, 47, 71)

	var jobs []ScalarMulJob[*field.Element]
	for k := int64(0); k < 42; k++ {
		jobs = append(jobs, ScalarMulJob[*field.Element]{Point: g, Scalar: big.NewInt(k)})
	}

	results, err := ScalarMulBatch(context.Background(), jobs, 4)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	for i, job := range jobs {
		want, err := g.ScalarMul(job.Scalar)
		require.NoError(t, err)
		assert.True(t, results[i].Equal(want), "job %d", i)
	}

	results, err = ScalarMulBatch(context.Background(), jobs[:3], 0)
	require.NoError(t, err)
	assert.Len(t, results, 3)

	results, err = ScalarMulBatch[*field.Element](context.Background(), nil, 2)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestScalarMulBatchErrors(t *testing.T) {
	f, c := f223(t)
	g := fieldPoint(t, f, c, 47, 71)

	jobs := []ScalarMulJob[*field.Element]{
		{Point: g, Scalar: big.NewInt(3)},
		{Point: g, Scalar: nil},
	}
	_, err := ScalarMulBatch(context.Background(), jobs, 1)
	assert.ErrorIs(t, err, ecc.ErrInvalidParameters)

	jobs = []ScalarMulJob[*field.Element]{{Point: nil, Scalar: big.NewInt(1)}}
	_, err = ScalarMulBatch(context.Background(), jobs, 1)
	assert.ErrorIs(t, err, ecc.ErrInvalidParameters)
	var opErr *ecc.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "curves.ScalarMulBatch", opErr.Op)
	assert.Equal(t, "job 0: nil point", opErr.Detail)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	jobs = []ScalarMulJob[*field.Element]{{Point: g, Scalar: big.NewInt(5)}}
	_, err = ScalarMulBatch(ctx, jobs, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorAs(t, err, &opErr)
}
