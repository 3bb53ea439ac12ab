package types

// CircuitID identifies the arithmetic circuit a proof was generated for. It selects
// which verification key is used to check the proof.
type CircuitID string

func (id CircuitID) String() string {
	return string(id)
}

// ProofData describes the three components of a Groth16 proof as serialized by
// circom/snarkjs. Coordinates are decimal or 0x-prefixed hex strings; points may
// carry the projective third coordinate, which is ignored.
type ProofData struct {
	A        []string   `json:"pi_a"`
	B        [][]string `json:"pi_b"`
	C        []string   `json:"pi_c"`
	Protocol string     `json:"protocol"`
}

// ZKProof couples a proof with the public signals it was generated against.
type ZKProof struct {
	Proof      *ProofData `json:"proof"`
	PubSignals []string   `json:"pub_signals"`
}

// VerificationKeyJSON is the verification key file written by the setup ceremony
// (snarkjs verification_key.json layout).
type VerificationKeyJSON struct {
	Protocol string     `json:"protocol"`
	Curve    string     `json:"curve"`
	NPublic  int        `json:"nPublic"`
	Alpha    []string   `json:"vk_alpha_1"`
	Beta     [][]string `json:"vk_beta_2"`
	Gamma    [][]string `json:"vk_gamma_2"`
	Delta    [][]string `json:"vk_delta_2"`
	IC       [][]string `json:"IC"`
}
