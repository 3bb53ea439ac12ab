package types

import (
	"encoding/json"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/zkmesh/go-groth16-verifier/groth16"
	"github.com/zkmesh/go-groth16-verifier/pairing"
)

// protocolGroth16 is the only proof system these keys and proofs can belong to.
const protocolGroth16 = "groth16"

// Parse converts the serialized proof into curve points. Point validity is checked
// by the verifier, not here.
func (p *ProofData) Parse() (groth16.Proof, error) {
	if p == nil {
		return groth16.Proof{}, errors.New("proof data is empty")
	}
	if p.Protocol != "" && p.Protocol != protocolGroth16 {
		return groth16.Proof{}, errors.Errorf("%s protocol is not supported", p.Protocol)
	}

	var (
		proof groth16.Proof
		err   error
	)
	if proof.A, err = stringsToG1(p.A); err != nil {
		return groth16.Proof{}, errors.Wrap(err, "pi_a")
	}
	if proof.B, err = stringsToG2(p.B); err != nil {
		return groth16.Proof{}, errors.Wrap(err, "pi_b")
	}
	if proof.C, err = stringsToG1(p.C); err != nil {
		return groth16.Proof{}, errors.Wrap(err, "pi_c")
	}
	return proof, nil
}

// ParseProof decodes a snarkjs proof JSON document.
func ParseProof(data []byte) (groth16.Proof, error) {
	var p ProofData
	if err := json.Unmarshal(data, &p); err != nil {
		return groth16.Proof{}, errors.Wrap(err, "failed to unmarshal proof")
	}
	return p.Parse()
}

// ParseVerificationKey decodes a setup-ceremony verification key JSON document.
// The declared public input count must agree with the IC length, so an arity
// mismatch is caught at load time rather than on the first verification.
func ParseVerificationKey(data []byte) (groth16.VerifyingKey, error) {
	var k VerificationKeyJSON
	if err := json.Unmarshal(data, &k); err != nil {
		return groth16.VerifyingKey{}, errors.Wrap(err, "failed to unmarshal verification key")
	}
	if k.Protocol != "" && k.Protocol != protocolGroth16 {
		return groth16.VerifyingKey{}, errors.Errorf("%s protocol is not supported", k.Protocol)
	}
	if len(k.IC) == 0 {
		return groth16.VerifyingKey{}, errors.New("verification key has no IC points")
	}
	if k.NPublic+1 != len(k.IC) {
		return groth16.VerifyingKey{}, errors.Errorf(
			"verification key declares %d public inputs but has %d IC points", k.NPublic, len(k.IC))
	}

	var (
		vk  groth16.VerifyingKey
		err error
	)
	if vk.Alpha, err = stringsToG1(k.Alpha); err != nil {
		return groth16.VerifyingKey{}, errors.Wrap(err, "vk_alpha_1")
	}
	if vk.Beta, err = stringsToG2(k.Beta); err != nil {
		return groth16.VerifyingKey{}, errors.Wrap(err, "vk_beta_2")
	}
	if vk.Gamma, err = stringsToG2(k.Gamma); err != nil {
		return groth16.VerifyingKey{}, errors.Wrap(err, "vk_gamma_2")
	}
	if vk.Delta, err = stringsToG2(k.Delta); err != nil {
		return groth16.VerifyingKey{}, errors.Wrap(err, "vk_delta_2")
	}
	vk.IC = make([]pairing.G1Point, len(k.IC))
	for i := range k.IC {
		if vk.IC[i], err = stringsToG1(k.IC[i]); err != nil {
			return groth16.VerifyingKey{}, errors.Wrapf(err, "IC[%d]", i)
		}
	}
	return vk, nil
}

func stringsToG1(s []string) (pairing.G1Point, error) {
	if len(s) < 2 {
		return pairing.G1Point{}, errors.Errorf("G1 point needs 2 coordinates, got %d", len(s))
	}
	x, err := stringToBigInt(s[0])
	if err != nil {
		return pairing.G1Point{}, err
	}
	y, err := stringToBigInt(s[1])
	if err != nil {
		return pairing.G1Point{}, err
	}
	return pairing.G1Point{X: x, Y: y}, nil
}

func stringsToG2(s [][]string) (pairing.G2Point, error) {
	if len(s) < 2 {
		return pairing.G2Point{}, errors.Errorf("G2 point needs 2 coordinate pairs, got %d", len(s))
	}
	var p pairing.G2Point
	for i, pair := range s[:2] {
		if len(pair) != 2 {
			return pairing.G2Point{}, errors.Errorf("G2 coordinate %d is not an extension field element", i)
		}
		c0, err := stringToBigInt(pair[0])
		if err != nil {
			return pairing.G2Point{}, err
		}
		c1, err := stringToBigInt(pair[1])
		if err != nil {
			return pairing.G2Point{}, err
		}
		if i == 0 {
			p.X = [2]*big.Int{c0, c1}
		} else {
			p.Y = [2]*big.Int{c0, c1}
		}
	}
	return p, nil
}

func stringToBigInt(s string) (*big.Int, error) {
	base := 10
	if strings.HasPrefix(s, "0x") {
		base = 16
		s = strings.TrimPrefix(s, "0x")
	}
	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, errors.Errorf("can not parse string to *big.Int: %s", s)
	}
	return n, nil
}
