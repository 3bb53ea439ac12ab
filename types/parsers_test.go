package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkmesh/go-groth16-verifier/internal/testvectors"
	"github.com/zkmesh/go-groth16-verifier/types"
)

func TestParseVerificationKey(t *testing.T) {
	tv := testvectors.SyntheticCircuit(3)

	vk, err := types.ParseVerificationKey(tv.VKJSON)
	require.NoError(t, err)

	assert.Equal(t, 3, vk.NbPublicInputs())
	assert.Zero(t, tv.VK.Alpha.X.Cmp(vk.Alpha.X))
	assert.Zero(t, tv.VK.Alpha.Y.Cmp(vk.Alpha.Y))
	for i := 0; i < 2; i++ {
		assert.Zero(t, tv.VK.Beta.X[i].Cmp(vk.Beta.X[i]))
		assert.Zero(t, tv.VK.Beta.Y[i].Cmp(vk.Beta.Y[i]))
	}
	require.Len(t, vk.IC, 4)
	for i := range vk.IC {
		assert.Zero(t, tv.VK.IC[i].X.Cmp(vk.IC[i].X))
		assert.Zero(t, tv.VK.IC[i].Y.Cmp(vk.IC[i].Y))
	}
}

func TestParseVerificationKeyArityMismatch(t *testing.T) {
	tv := testvectors.SyntheticCircuit(3)

	var k types.VerificationKeyJSON
	require.NoError(t, json.Unmarshal(tv.VKJSON, &k))
	k.NPublic = 4
	data, err := json.Marshal(k)
	require.NoError(t, err)

	_, err = types.ParseVerificationKey(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IC")
}

func TestParseVerificationKeyUnsupportedProtocol(t *testing.T) {
	tv := testvectors.SyntheticCircuit(1)

	var k types.VerificationKeyJSON
	require.NoError(t, json.Unmarshal(tv.VKJSON, &k))
	k.Protocol = "plonk"
	data, err := json.Marshal(k)
	require.NoError(t, err)

	_, err = types.ParseVerificationKey(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plonk")
}

func TestParseVerificationKeyEmptyIC(t *testing.T) {
	_, err := types.ParseVerificationKey([]byte(`{"protocol":"groth16","nPublic":0}`))
	require.Error(t, err)
}

func TestParseProof(t *testing.T) {
	tv := testvectors.SyntheticCircuit(2)

	data, err := json.Marshal(tv.ProofData)
	require.NoError(t, err)

	proof, err := types.ParseProof(data)
	require.NoError(t, err)
	assert.Zero(t, tv.Proof.A.X.Cmp(proof.A.X))
	assert.Zero(t, tv.Proof.A.Y.Cmp(proof.A.Y))
	assert.Zero(t, tv.Proof.C.X.Cmp(proof.C.X))
	for i := 0; i < 2; i++ {
		assert.Zero(t, tv.Proof.B.X[i].Cmp(proof.B.X[i]))
		assert.Zero(t, tv.Proof.B.Y[i].Cmp(proof.B.Y[i]))
	}
}

func TestParseProofHexCoordinates(t *testing.T) {
	p := types.ProofData{
		A: []string{"0x1", "0x2", "1"},
		B: [][]string{{"3", "4"}, {"5", "6"}, {"1", "0"}},
		C: []string{"7", "8", "1"},
	}
	proof, err := p.Parse()
	require.NoError(t, err)
	assert.EqualValues(t, 1, proof.A.X.Int64())
	assert.EqualValues(t, 2, proof.A.Y.Int64())
	assert.EqualValues(t, 4, proof.B.X[1].Int64())
}

func TestParseProofErrors(t *testing.T) {
	t.Run("nil proof data", func(t *testing.T) {
		var p *types.ProofData
		_, err := p.Parse()
		require.Error(t, err)
	})

	t.Run("unsupported protocol", func(t *testing.T) {
		p := types.ProofData{Protocol: "plonk"}
		_, err := p.Parse()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "plonk")
	})

	t.Run("missing coordinate", func(t *testing.T) {
		p := types.ProofData{
			A: []string{"1"},
			B: [][]string{{"1", "2"}, {"3", "4"}},
			C: []string{"1", "2"},
		}
		_, err := p.Parse()
		require.Error(t, err)
	})

	t.Run("malformed number", func(t *testing.T) {
		p := types.ProofData{
			A: []string{"not-a-number", "2"},
			B: [][]string{{"1", "2"}, {"3", "4"}},
			C: []string{"1", "2"},
		}
		_, err := p.Parse()
		require.Error(t, err)
	})
}
