package keypair

import (
	stellar "github.com/stellar/go/keypair"
)

// Random creates a new keypair for test code; it panics instead of failing.
func Random() *Full {
	kp, err := stellar.Random()
	if err != nil {
		panic(err)
	}

	return kp
}
