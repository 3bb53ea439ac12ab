// Package verifier checks Groth16 zkSNARK proofs over BN254 against per-circuit
// verification keys produced by a trusted setup.
//
// The package is a thin facade: wire-format parsing lives in types, key loading in
// loaders, and the verification algorithm itself in groth16 on top of the pairing
// group library.
package verifier

import (
	"github.com/pkg/errors"

	"github.com/zkmesh/go-groth16-verifier/cache"
	"github.com/zkmesh/go-groth16-verifier/constants"
	"github.com/zkmesh/go-groth16-verifier/groth16"
	"github.com/zkmesh/go-groth16-verifier/loaders"
	"github.com/zkmesh/go-groth16-verifier/logger"
	"github.com/zkmesh/go-groth16-verifier/types"
)

// Verifier resolves circuit verification keys through a loader and verifies proofs
// against them. Constructed circuit verifiers are cached: keys are immutable, so a
// cached verifier stays valid for its whole lifetime.
type Verifier struct {
	keyLoader loaders.VerificationKeyLoader
	verifiers cache.ICache[*groth16.Verifier]
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithVerifierCache replaces the default verifier cache.
func WithVerifierCache(c cache.ICache[*groth16.Verifier]) Option {
	return func(v *Verifier) {
		v.verifiers = c
	}
}

// NewVerifier creates a verifier that loads circuit verification keys through the
// given loader.
func NewVerifier(keyLoader loaders.VerificationKeyLoader, opts ...Option) *Verifier {
	v := &Verifier{
		keyLoader: keyLoader,
		verifiers: cache.NewInMemoryCache[*groth16.Verifier](
			constants.DefaultVerifierCacheMaxSize, constants.DefaultVerifierCacheTTL),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// VerifyProof verifies the zero-knowledge proof for the given circuit.
//
// It returns (false, nil) when the proof is well formed but cryptographically
// invalid. Malformed inputs — missing key, wrong signal count, signals outside the
// scalar field, points off the curve — are reported as errors.
func (v *Verifier) VerifyProof(circuitID types.CircuitID, zkProof types.ZKProof) (bool, error) {
	g, err := v.verifierForCircuit(circuitID)
	if err != nil {
		return false, err
	}
	return verify(g, zkProof)
}

// VerifyGroth16 verifies a single proof against raw verification key bytes, without
// any circuit registry or caching.
func VerifyGroth16(zkProof types.ZKProof, verificationKey []byte) (bool, error) {
	vk, err := types.ParseVerificationKey(verificationKey)
	if err != nil {
		return false, err
	}
	g, err := groth16.NewVerifier(vk)
	if err != nil {
		return false, err
	}
	return verify(g, zkProof)
}

func verify(g *groth16.Verifier, zkProof types.ZKProof) (bool, error) {
	proof, err := zkProof.Proof.Parse()
	if err != nil {
		return false, err
	}
	inputs, err := ArrayStringToBigInt(zkProof.PubSignals)
	if err != nil {
		return false, err
	}
	return g.Verify(inputs, proof)
}

func (v *Verifier) verifierForCircuit(id types.CircuitID) (*groth16.Verifier, error) {
	if g, ok := v.verifiers.Get(id.String()); ok {
		return g, nil
	}

	data, err := v.keyLoader.Load(id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load verification key for circuit %v", id)
	}
	vk, err := types.ParseVerificationKey(data)
	if err != nil {
		return nil, errors.Wrapf(err, "circuit %v", id)
	}
	g, err := groth16.NewVerifier(vk)
	if err != nil {
		return nil, errors.Wrapf(err, "circuit %v", id)
	}

	v.verifiers.Set(id.String(), g)
	log := logger.Logger()
	log.Debug().
		Str("circuit", id.String()).
		Int("publicInputs", g.NbPublicInputs()).
		Msg("verification key loaded")
	return g, nil
}
