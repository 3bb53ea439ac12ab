package pairing

import (
	"math/big"
	"testing"

	bn256 "github.com/ethereum/go-ethereum/crypto/bn256/cloudflare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireG1Equal(t *testing.T, want, got G1Point) {
	t.Helper()
	require.Zero(t, want.X.Cmp(got.X), "X: want %s, got %s", want.X, got.X)
	require.Zero(t, want.Y.Cmp(got.Y), "Y: want %s, got %s", want.Y, got.Y)
}

func g1Times(k int64) G1Point {
	return g1FromCurve(new(bn256.G1).ScalarBaseMult(big.NewInt(k)))
}

func g2Times(k int64) G2Point {
	return g2FromCurve(new(bn256.G2).ScalarBaseMult(big.NewInt(k)))
}

func TestNegate(t *testing.T) {
	p := P1()

	sum, err := Addition(p, p.Negate())
	require.NoError(t, err)
	assert.True(t, sum.IsInfinity())

	requireG1Equal(t, G1Infinity(), G1Infinity().Negate())
}

func TestAddition(t *testing.T) {
	p := P1()

	double, err := Addition(p, p)
	require.NoError(t, err)
	requireG1Equal(t, g1Times(2), double)

	// identity is neutral
	sum, err := Addition(p, G1Infinity())
	require.NoError(t, err)
	requireG1Equal(t, p, sum)
}

func TestAdditionRejectsInvalidPoint(t *testing.T) {
	_, err := Addition(P1(), G1Point{X: big.NewInt(1), Y: big.NewInt(3)})
	require.ErrorIs(t, err, ErrPointNotOnCurve)
}

func TestScalarMul(t *testing.T) {
	p := P1()

	one, err := ScalarMul(p, big.NewInt(1))
	require.NoError(t, err)
	requireG1Equal(t, p, one)

	two, err := ScalarMul(p, big.NewInt(2))
	require.NoError(t, err)
	double, err := Addition(p, p)
	require.NoError(t, err)
	requireG1Equal(t, double, two)

	zero, err := ScalarMul(p, new(big.Int))
	require.NoError(t, err)
	assert.True(t, zero.IsInfinity())
}

func TestScalarMulRejectsNegativeScalar(t *testing.T) {
	_, err := ScalarMul(P1(), big.NewInt(-1))
	require.ErrorIs(t, err, ErrNegativeScalar)
}

func TestPairingCancellation(t *testing.T) {
	// e(P1, P2) * e(-P1, P2) == 1
	ok, err := Pairing([]G1Point{P1(), P1().Negate()}, []G2Point{P2(), P2()})
	require.NoError(t, err)
	assert.True(t, ok)

	// e(P1, P2)^2 != 1
	ok, err = Pairing([]G1Point{P1(), P1()}, []G2Point{P2(), P2()})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPairingBilinearity(t *testing.T) {
	// e(2*P1, 3*P2) * e(-6*P1, P2) == 1
	ok, err := Pairing(
		[]G1Point{g1Times(2), g1Times(6).Negate()},
		[]G2Point{g2Times(3), P2()},
	)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPairingLengthMismatch(t *testing.T) {
	_, err := Pairing([]G1Point{P1()}, []G2Point{P2(), P2()})
	require.ErrorIs(t, err, ErrPairingMismatch)
}

func TestPairingRejectsInvalidPoint(t *testing.T) {
	_, err := Pairing([]G1Point{{X: big.NewInt(1), Y: big.NewInt(3)}}, []G2Point{P2()})
	require.ErrorIs(t, err, ErrPointNotOnCurve)
}

func TestPairingProdWrappers(t *testing.T) {
	a1, b1, c1, d1 := P1(), g1Times(2), g1Times(3), g1Times(4)
	a2, b2, c2, d2 := P2(), g2Times(5), g2Times(6), g2Times(7)

	want, err := Pairing([]G1Point{a1, b1}, []G2Point{a2, b2})
	require.NoError(t, err)
	got, err := PairingProd2(a1, a2, b1, b2)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	want, err = Pairing([]G1Point{a1, b1, c1}, []G2Point{a2, b2, c2})
	require.NoError(t, err)
	got, err = PairingProd3(a1, a2, b1, b2, c1, c2)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	want, err = Pairing([]G1Point{a1, b1, c1, d1}, []G2Point{a2, b2, c2, d2})
	require.NoError(t, err)
	got, err = PairingProd4(a1, a2, b1, b2, c1, c2, d1, d2)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// a self-cancelling product through the 2-pair wrapper
	ok, err := PairingProd2(P1(), P2(), P1().Negate(), P2())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGeneratorRoundTrip(t *testing.T) {
	requireG1Equal(t, g1Times(1), P1())

	gen := g2Times(1)
	p2 := P2()
	for i := 0; i < 2; i++ {
		require.Zero(t, gen.X[i].Cmp(p2.X[i]))
		require.Zero(t, gen.Y[i].Cmp(p2.Y[i]))
	}
}
