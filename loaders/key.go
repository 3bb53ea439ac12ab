package loaders

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/zkmesh/go-groth16-verifier/types"
)

// ErrKeyNotFound is returned when no verification key is registered for a circuit.
var ErrKeyNotFound = errors.New("verification key not found")

// VerificationKeyLoader loads verification key bytes for a specific circuit.
type VerificationKeyLoader interface {
	Load(id types.CircuitID) ([]byte, error)
}

// FSKeyLoader reads setup-ceremony key files from a directory, one
// `<circuit id>.json` per circuit.
type FSKeyLoader struct {
	Dir string
}

// Load reads the key file for the given circuit.
func (m FSKeyLoader) Load(id types.CircuitID) ([]byte, error) {
	data, err := os.ReadFile(fmt.Sprintf("%s/%v.json", m.Dir, id))
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(ErrKeyNotFound, "circuit %v", id)
	}
	return data, err
}

// StaticKeyLoader serves keys from an in-memory map. Useful for keys embedded in the
// binary and for tests.
type StaticKeyLoader struct {
	Keys map[types.CircuitID][]byte
}

// Load returns the registered key bytes for the given circuit.
func (m StaticKeyLoader) Load(id types.CircuitID) ([]byte, error) {
	key, ok := m.Keys[id]
	if !ok {
		return nil, errors.Wrapf(ErrKeyNotFound, "circuit %v", id)
	}
	return key, nil
}
