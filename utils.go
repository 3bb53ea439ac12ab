package verifier

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// ArrayStringToBigInt converts a string array to an array of big integers.
// Strings may be decimal or 0x-prefixed hex.
func ArrayStringToBigInt(s []string) ([]*big.Int, error) {
	o := make([]*big.Int, 0, len(s))
	for i := 0; i < len(s); i++ {
		si, err := stringToBigInt(s[i])
		if err != nil {
			return nil, errors.Wrapf(err, "signal %d", i)
		}
		o = append(o, si)
	}
	return o, nil
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
