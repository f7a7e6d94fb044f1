package votebank

import (
	"boscoin.io/votebank/lib/errors"
)

// Variant selects how a vote bank guards against double votes.
type Variant string

const (
	// VariantVoterList keeps the addresses of the voters and rejects a
	// second vote from the same signer.
	VariantVoterList Variant = "voter-list"

	// VariantOpen only keeps the tallies; a signer may vote any number of
	// times while the bank is open.
	VariantOpen Variant = "open"
)

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantVoterList, VariantOpen:
		return v, nil
	default:
		return "", errors.UnknownVariant.Clone().SetData("variant", s)
	}
}

func (v Variant) TracksVoters() bool {
	return v == VariantVoterList
}

// Space is the size of the persisted record.
func (v Variant) Space() int {
	if v.TracksVoters() {
		return voterListSpace
	}

	return openSpace
}

func (v Variant) String() string {
	return string(v)
}
