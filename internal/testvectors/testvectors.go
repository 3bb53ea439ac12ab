// Package testvectors builds deterministic Groth16/BN254 fixtures for tests.
//
// A synthetic circuit is generated by picking the key and proof exponents directly:
// with alpha, beta, gamma, delta and the IC coefficients fixed as scalars, a proof
// (a*G1, b*G2, c*G1) satisfies the verification equation exactly when
// a*b = alpha*beta + vkx*gamma + c*delta (mod r). Solving for `a` yields a valid
// (key, proof, inputs) triple without running a prover, which is all the verifier
// tests need.
package testvectors

import (
	"encoding/json"
	"math/big"

	bn256 "github.com/ethereum/go-ethereum/crypto/bn256/cloudflare"

	"github.com/zkmesh/go-groth16-verifier/constants"
	"github.com/zkmesh/go-groth16-verifier/groth16"
	"github.com/zkmesh/go-groth16-verifier/pairing"
	"github.com/zkmesh/go-groth16-verifier/types"
)

// Circuit is a complete synthetic verification fixture.
type Circuit struct {
	VK         groth16.VerifyingKey
	VKJSON     []byte
	Proof      groth16.Proof
	ProofData  types.ProofData
	PubSignals []string
	Inputs     []*big.Int
}

// SyntheticCircuit returns a fixture with nInputs public inputs whose proof verifies
// against its key. The construction is deterministic.
func SyntheticCircuit(nInputs int) Circuit {
	r := constants.R

	alpha := big.NewInt(3)
	beta := big.NewInt(4)
	gamma := big.NewInt(5)
	delta := big.NewInt(6)

	ic := make([]*big.Int, nInputs+1)
	for i := range ic {
		ic[i] = big.NewInt(int64(7 + i))
	}
	inputs := make([]*big.Int, nInputs)
	for i := range inputs {
		inputs[i] = big.NewInt(int64(1001 + 13*i))
	}

	// vkx = ic[0] + sum(ic[i+1] * inputs[i]) mod r
	vkx := new(big.Int).Set(ic[0])
	for i := range inputs {
		term := new(big.Int).Mul(ic[i+1], inputs[i])
		vkx.Mod(vkx.Add(vkx, term), r)
	}

	c := big.NewInt(17)
	b := big.NewInt(19)

	// a = (alpha*beta + vkx*gamma + c*delta) / b mod r
	a := new(big.Int).Mul(alpha, beta)
	a.Add(a, new(big.Int).Mul(vkx, gamma))
	a.Add(a, new(big.Int).Mul(c, delta))
	a.Mod(a, r)
	a.Mul(a, new(big.Int).ModInverse(b, r))
	a.Mod(a, r)

	vk := groth16.VerifyingKey{
		Alpha: G1(alpha),
		Beta:  G2(beta),
		Gamma: G2(gamma),
		Delta: G2(delta),
		IC:    make([]pairing.G1Point, len(ic)),
	}
	for i, k := range ic {
		vk.IC[i] = G1(k)
	}
	proof := groth16.Proof{A: G1(a), B: G2(b), C: G1(c)}

	signals := make([]string, len(inputs))
	for i, in := range inputs {
		signals[i] = in.String()
	}

	return Circuit{
		VK:         vk,
		VKJSON:     marshalVK(vk, nInputs),
		Proof:      proof,
		ProofData:  marshalProof(proof),
		PubSignals: signals,
		Inputs:     inputs,
	}
}

// G1 returns k times the G1 generator.
func G1(k *big.Int) pairing.G1Point {
	m := new(bn256.G1).ScalarBaseMult(k).Marshal()
	return pairing.G1Point{
		X: new(big.Int).SetBytes(m[:32]),
		Y: new(big.Int).SetBytes(m[32:]),
	}
}

// G2 returns k times the G2 generator.
func G2(k *big.Int) pairing.G2Point {
	// bn256 marshals the imaginary part of each coordinate first.
	m := new(bn256.G2).ScalarBaseMult(k).Marshal()
	return pairing.G2Point{
		X: [2]*big.Int{new(big.Int).SetBytes(m[32:64]), new(big.Int).SetBytes(m[:32])},
		Y: [2]*big.Int{new(big.Int).SetBytes(m[96:128]), new(big.Int).SetBytes(m[64:96])},
	}
}

func marshalVK(vk groth16.VerifyingKey, nInputs int) []byte {
	k := types.VerificationKeyJSON{
		Protocol: "groth16",
		Curve:    "bn128",
		NPublic:  nInputs,
		Alpha:    g1Strings(vk.Alpha),
		Beta:     g2Strings(vk.Beta),
		Gamma:    g2Strings(vk.Gamma),
		Delta:    g2Strings(vk.Delta),
		IC:       make([][]string, len(vk.IC)),
	}
	for i, p := range vk.IC {
		k.IC[i] = g1Strings(p)
	}
	data, err := json.Marshal(k)
	if err != nil {
		panic(err)
	}
	return data
}

func marshalProof(p groth16.Proof) types.ProofData {
	return types.ProofData{
		A:        g1Strings(p.A),
		B:        g2Strings(p.B),
		C:        g1Strings(p.C),
		Protocol: "groth16",
	}
}

func g1Strings(p pairing.G1Point) []string {
	return []string{p.X.String(), p.Y.String(), "1"}
}

func g2Strings(p pairing.G2Point) [][]string {
	return [][]string{
		{p.X[0].String(), p.X[1].String()},
		{p.Y[0].String(), p.Y[1].String()},
		{"1", "0"},
	}
}
