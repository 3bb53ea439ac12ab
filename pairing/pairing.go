// Package pairing implements arithmetic over the BN254 pairing groups G1 and G2.
//
// Points are held as big-endian affine coordinates, the representation emitted by
// circom/snarkjs setup ceremonies and by the Ethereum precompiles. The group law and
// the pairing product check are delegated to the precompile implementation in
// go-ethereum (crypto/bn256/cloudflare); its Unmarshal performs the on-curve and
// subgroup checks.
package pairing

import (
	"math/big"

	bn256 "github.com/ethereum/go-ethereum/crypto/bn256/cloudflare"
	"github.com/pkg/errors"

	"github.com/zkmesh/go-groth16-verifier/constants"
)

var (
	// ErrPointNotOnCurve is returned when a coordinate pair does not encode a valid
	// point of the expected group.
	ErrPointNotOnCurve = errors.New("point is not on the curve")
	// ErrPairingMismatch is returned when a pairing is requested over G1 and G2
	// sequences of different lengths.
	ErrPairingMismatch = errors.New("pairing requires equal numbers of G1 and G2 points")
	// ErrNegativeScalar is returned when a scalar multiplication receives a negative
	// scalar. Scalars are field elements and therefore never negative.
	ErrNegativeScalar = errors.New("scalar must be non-negative")
)

const coordLen = 32

// G1Point is a point of G1 in affine coordinates. The point at infinity is
// represented by (0, 0).
type G1Point struct {
	X *big.Int
	Y *big.Int
}

// G2Point is a point of the twisted group G2. Each coordinate is an element of the
// quadratic extension field, encoded as X[0] + X[1]*z. The point at infinity is
// represented by all-zero coordinates.
type G2Point struct {
	X [2]*big.Int
	Y [2]*big.Int
}

// P1 returns the generator of G1.
func P1() G1Point {
	return G1Point{X: big.NewInt(1), Y: big.NewInt(2)}
}

// P2 returns the generator of G2.
func P2() G2Point {
	return G2Point{
		X: [2]*big.Int{
			mustBigInt("10857046999023057135944570762232829481370756359578518086990519993285655852781"),
			mustBigInt("11559732032986387107991004021392285783925812861821192530917403151452391805634"),
		},
		Y: [2]*big.Int{
			mustBigInt("8495653923123431417604973247489272438418190587263600148770280649306958101930"),
			mustBigInt("4082367875863433681332203403145435568316851327593401208105741076214120093531"),
		},
	}
}

// G1Infinity returns the identity of G1.
func G1Infinity() G1Point {
	return G1Point{X: new(big.Int), Y: new(big.Int)}
}

// IsInfinity reports whether p is the (0, 0) identity sentinel.
func (p G1Point) IsInfinity() bool {
	return p.X != nil && p.Y != nil && p.X.Sign() == 0 && p.Y.Sign() == 0
}

// Negate returns the additive inverse of p, i.e. (X, Q - (Y mod Q)).
// The identity negates to itself.
func (p G1Point) Negate() G1Point {
	if p.IsInfinity() {
		return G1Infinity()
	}
	y := new(big.Int).Mod(p.Y, constants.Q)
	return G1Point{
		X: new(big.Int).Set(p.X),
		Y: y.Sub(constants.Q, y),
	}
}

// Addition returns the group sum p1 + p2. It fails if either operand is not a valid
// curve point.
func Addition(p1, p2 G1Point) (G1Point, error) {
	a, err := p1.curvePoint()
	if err != nil {
		return G1Point{}, err
	}
	b, err := p2.curvePoint()
	if err != nil {
		return G1Point{}, err
	}
	return g1FromCurve(new(bn256.G1).Add(a, b)), nil
}

// ScalarMul returns s * p computed with the curve's native scalar multiplication.
func ScalarMul(p G1Point, s *big.Int) (G1Point, error) {
	if s == nil || s.Sign() < 0 {
		return G1Point{}, errors.Wrap(ErrNegativeScalar, "scalar multiplication")
	}
	a, err := p.curvePoint()
	if err != nil {
		return G1Point{}, err
	}
	return g1FromCurve(new(bn256.G1).ScalarMult(a, s)), nil
}

// Pairing computes the product of the pairings e(p1[i], p2[i]) and reports whether it
// equals the identity of the target group. The sequences must have equal length.
func Pairing(p1 []G1Point, p2 []G2Point) (bool, error) {
	if len(p1) != len(p2) {
		return false, errors.Wrapf(ErrPairingMismatch, "got %d G1 and %d G2 points", len(p1), len(p2))
	}
	a := make([]*bn256.G1, len(p1))
	b := make([]*bn256.G2, len(p2))
	for i := range p1 {
		g1, err := p1[i].curvePoint()
		if err != nil {
			return false, err
		}
		g2, err := p2[i].twistPoint()
		if err != nil {
			return false, err
		}
		a[i], b[i] = g1, g2
	}
	return bn256.PairingCheck(a, b), nil
}

// PairingProd2 is the two-pair convenience form of Pairing.
func PairingProd2(a1 G1Point, a2 G2Point, b1 G1Point, b2 G2Point) (bool, error) {
	return Pairing([]G1Point{a1, b1}, []G2Point{a2, b2})
}

// PairingProd3 is the three-pair convenience form of Pairing.
func PairingProd3(a1 G1Point, a2 G2Point, b1 G1Point, b2 G2Point, c1 G1Point, c2 G2Point) (bool, error) {
	return Pairing([]G1Point{a1, b1, c1}, []G2Point{a2, b2, c2})
}

// PairingProd4 is the four-pair convenience form of Pairing.
func PairingProd4(
	a1 G1Point, a2 G2Point,
	b1 G1Point, b2 G2Point,
	c1 G1Point, c2 G2Point,
	d1 G1Point, d2 G2Point,
) (bool, error) {
	return Pairing([]G1Point{a1, b1, c1, d1}, []G2Point{a2, b2, c2, d2})
}

// ValidateG1 reports whether p encodes a valid G1 point (the identity included).
func ValidateG1(p G1Point) error {
	_, err := p.curvePoint()
	return err
}

// ValidateG2 reports whether p encodes a valid G2 point (the identity included).
func ValidateG2(p G2Point) error {
	_, err := p.twistPoint()
	return err
}

func (p G1Point) curvePoint() (*bn256.G1, error) {
	buf := make([]byte, 2*coordLen)
	if err := fillCoord(buf[:coordLen], p.X); err != nil {
		return nil, err
	}
	if err := fillCoord(buf[coordLen:], p.Y); err != nil {
		return nil, err
	}
	g := new(bn256.G1)
	if _, err := g.Unmarshal(buf); err != nil {
		return nil, errors.Wrapf(ErrPointNotOnCurve, "G1 (%s, %s): %v", p.X, p.Y, err)
	}
	return g, nil
}

// twistPoint marshals in the precompile coordinate order: imaginary part first.
func (p G2Point) twistPoint() (*bn256.G2, error) {
	buf := make([]byte, 4*coordLen)
	for i, c := range []*big.Int{p.X[1], p.X[0], p.Y[1], p.Y[0]} {
		if err := fillCoord(buf[i*coordLen:(i+1)*coordLen], c); err != nil {
			return nil, err
		}
	}
	g := new(bn256.G2)
	if _, err := g.Unmarshal(buf); err != nil {
		return nil, errors.Wrapf(ErrPointNotOnCurve, "G2: %v", err)
	}
	return g, nil
}

func g1FromCurve(g *bn256.G1) G1Point {
	m := g.Marshal()
	return G1Point{
		X: new(big.Int).SetBytes(m[:coordLen]),
		Y: new(big.Int).SetBytes(m[coordLen:]),
	}
}

func g2FromCurve(g *bn256.G2) G2Point {
	m := g.Marshal()
	return G2Point{
		X: [2]*big.Int{
			new(big.Int).SetBytes(m[coordLen : 2*coordLen]),
			new(big.Int).SetBytes(m[:coordLen]),
		},
		Y: [2]*big.Int{
			new(big.Int).SetBytes(m[3*coordLen:]),
			new(big.Int).SetBytes(m[2*coordLen : 3*coordLen]),
		},
	}
}

func fillCoord(dst []byte, v *big.Int) error {
	if v == nil {
		return errors.Wrap(ErrPointNotOnCurve, "nil coordinate")
	}
	if v.Sign() < 0 || v.Cmp(constants.Q) >= 0 {
		return errors.Wrapf(ErrPointNotOnCurve, "coordinate %s exceeds field modulus", v)
	}
	v.FillBytes(dst)
	return nil
}

func mustBigInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("pairing: can not parse " + s)
	}
	return n
}
