// Encapsulate Stellar's keypair package
//
// Provides additional wrapper and convenience functions,
// suited for usage within votebank
package keypair

import (
	stellar "github.com/stellar/go/keypair"
	"github.com/stellar/go/strkey"
)

// Aliases to stellar types
type Full = stellar.Full
type KP = stellar.KP

// Aliases to stellar functions
var Master = stellar.Master
var Parse = stellar.Parse
var RandomCanFail = stellar.Random

// MakeSignature makes signature from given hash string
func MakeSignature(kp KP, networkID []byte, hash string) ([]byte, error) {
	return kp.Sign(append(networkID, []byte(hash)...))
}

// VerifySignature checks `signature` was made by `address` over the
// network id and hash.
func VerifySignature(address string, networkID []byte, hash string, signature []byte) error {
	kp, err := stellar.Parse(address)
	if err != nil {
		return err
	}

	return kp.Verify(append(networkID, []byte(hash)...), signature)
}

// RawPublicKey returns the 32 byte ed25519 public key of an account
// address.
func RawPublicKey(address string) ([]byte, error) {
	return strkey.Decode(strkey.VersionByteAccountID, address)
}

// AddressFromRawPublicKey is the reverse of `RawPublicKey`.
func AddressFromRawPublicKey(raw []byte) (string, error) {
	return strkey.Encode(strkey.VersionByteAccountID, raw)
}
