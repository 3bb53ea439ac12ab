package constants

import (
	"math/big"
	"time"
)

const (
	// DefaultVerifierCacheMaxSize limits how many circuit verifiers the facade keeps in memory.
	DefaultVerifierCacheMaxSize int64 = 10_000
	// DefaultVerifierCacheTTL is the lifetime of a cached circuit verifier.
	DefaultVerifierCacheTTL = 24 * time.Hour
)

var (
	// Q is the modulus of the BN254 base field, the field of the curve point coordinates.
	Q = mustBigInt("21888242871839275222246405745257275088696311157297823662689037894645226208583")

	// R is the order of the BN254 groups, i.e. the modulus of the scalar field.
	// Every public input must be strictly below R.
	R = mustBigInt("21888242871839275222246405745257275088548364400416034343698204186575808495617")
)

func mustBigInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("constants: can not parse " + s)
	}
	return n
}
