// Package groth16 implements verification of Groth16 zkSNARK proofs over BN254.
//
// A Verifier is constructed once per circuit from the verification key produced by
// the trusted setup and is safe for concurrent use; every call is a pure function of
// the supplied proof and public inputs.
package groth16

import (
	"math/big"
	"time"

	"github.com/pkg/errors"

	"github.com/zkmesh/go-groth16-verifier/constants"
	"github.com/zkmesh/go-groth16-verifier/logger"
	"github.com/zkmesh/go-groth16-verifier/pairing"
)

var (
	// ErrInvalidInputCount is returned when the number of public inputs does not
	// match the verification key. This is a structural defect of the call, not a
	// rejected proof.
	ErrInvalidInputCount = errors.New("public input count does not match the verification key")
	// ErrInputNotInField is returned when a public input is not a canonical scalar
	// field element, i.e. not in [0, R).
	ErrInputNotInField = errors.New("public input is not in the scalar field")
	// ErrInvalidVerificationKey is returned by NewVerifier for malformed keys.
	ErrInvalidVerificationKey = errors.New("invalid verification key")
)

// VerifyingKey holds the public parameters of one circuit, derived once from the
// trusted setup. IC must have exactly one entry more than the circuit has public
// inputs.
type VerifyingKey struct {
	Alpha pairing.G1Point
	Beta  pairing.G2Point
	Gamma pairing.G2Point
	Delta pairing.G2Point
	IC    []pairing.G1Point
}

// NbPublicInputs returns the number of public inputs the key commits to.
func (vk VerifyingKey) NbPublicInputs() int {
	return len(vk.IC) - 1
}

// Proof is one Groth16 proof as emitted by the prover.
type Proof struct {
	A pairing.G1Point
	B pairing.G2Point
	C pairing.G1Point
}

// Verifier checks proofs for a single circuit. The verification key is validated and
// copied at construction and never mutated afterwards, so a Verifier may be shared
// freely between goroutines.
type Verifier struct {
	vk VerifyingKey
}

// NewVerifier validates the verification key and returns a verifier bound to it.
// The circuit's public input arity is derived from the key, never configured
// separately.
func NewVerifier(vk VerifyingKey) (*Verifier, error) {
	if len(vk.IC) == 0 {
		return nil, errors.Wrap(ErrInvalidVerificationKey, "IC is empty")
	}
	if err := pairing.ValidateG1(vk.Alpha); err != nil {
		return nil, errors.Wrap(err, "alpha")
	}
	if err := pairing.ValidateG2(vk.Beta); err != nil {
		return nil, errors.Wrap(err, "beta")
	}
	if err := pairing.ValidateG2(vk.Gamma); err != nil {
		return nil, errors.Wrap(err, "gamma")
	}
	if err := pairing.ValidateG2(vk.Delta); err != nil {
		return nil, errors.Wrap(err, "delta")
	}
	for i, p := range vk.IC {
		if err := pairing.ValidateG1(p); err != nil {
			return nil, errors.Wrapf(err, "IC[%d]", i)
		}
	}
	return &Verifier{vk: cloneKey(vk)}, nil
}

// NbPublicInputs returns the number of public inputs expected by Verify.
func (v *Verifier) NbPublicInputs() int {
	return v.vk.NbPublicInputs()
}

// Verify checks the proof against the public inputs.
//
// It returns (false, nil) when the inputs are well formed but the pairing equation
// does not hold — the normal "invalid proof" outcome. Structural defects (wrong input
// count, inputs outside the scalar field, points not on the curve) are reported as
// errors so the caller can tell them apart from a rejected proof.
func (v *Verifier) Verify(inputs []*big.Int, proof Proof) (bool, error) {
	log := logger.Logger().With().Str("curve", "bn254").Str("backend", "groth16").Logger()
	start := time.Now()

	if len(inputs)+1 != len(v.vk.IC) {
		return false, errors.Wrapf(ErrInvalidInputCount, "got %d inputs, key expects %d",
			len(inputs), len(v.vk.IC)-1)
	}
	for i, in := range inputs {
		if in == nil || in.Sign() < 0 || in.Cmp(constants.R) >= 0 {
			return false, errors.Wrapf(ErrInputNotInField, "input %d", i)
		}
	}

	// Proof points are validated before any group arithmetic so a malformed point is
	// always reported as an error, never a panic. Key points were validated at
	// construction.
	if err := pairing.ValidateG1(proof.A); err != nil {
		return false, errors.Wrap(err, "proof A")
	}
	if err := pairing.ValidateG2(proof.B); err != nil {
		return false, errors.Wrap(err, "proof B")
	}
	if err := pairing.ValidateG1(proof.C); err != nil {
		return false, errors.Wrap(err, "proof C")
	}

	// vk_x = IC[0] + sum(inputs[i] * IC[i+1]), the public input commitment.
	vkX := pairing.G1Infinity()
	for i := range inputs {
		term, err := pairing.ScalarMul(v.vk.IC[i+1], inputs[i])
		if err != nil {
			return false, err
		}
		if vkX, err = pairing.Addition(vkX, term); err != nil {
			return false, err
		}
	}
	vkX, err := pairing.Addition(vkX, v.vk.IC[0])
	if err != nil {
		return false, err
	}

	// e(A, B) * e(-vk_x, gamma) * e(-C, delta) * e(-alpha, beta) == 1
	ok, err := pairing.PairingProd4(
		proof.A, proof.B,
		vkX.Negate(), v.vk.Gamma,
		proof.C.Negate(), v.vk.Delta,
		v.vk.Alpha.Negate(), v.vk.Beta,
	)
	if err != nil {
		return false, err
	}

	log.Debug().Dur("took", time.Since(start)).Bool("valid", ok).Msg("verifier done")
	return ok, nil
}

func cloneKey(vk VerifyingKey) VerifyingKey {
	c := VerifyingKey{
		Alpha: cloneG1(vk.Alpha),
		Beta:  cloneG2(vk.Beta),
		Gamma: cloneG2(vk.Gamma),
		Delta: cloneG2(vk.Delta),
		IC:    make([]pairing.G1Point, len(vk.IC)),
	}
	for i, p := range vk.IC {
		c.IC[i] = cloneG1(p)
	}
	return c
}

func cloneG1(p pairing.G1Point) pairing.G1Point {
	return pairing.G1Point{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y)}
}

func cloneG2(p pairing.G2Point) pairing.G2Point {
	return pairing.G2Point{
		X: [2]*big.Int{new(big.Int).Set(p.X[0]), new(big.Int).Set(p.X[1])},
		Y: [2]*big.Int{new(big.Int).Set(p.Y[0]), new(big.Int).Set(p.Y[1])},
	}
}
