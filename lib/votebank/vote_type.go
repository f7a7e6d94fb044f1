package votebank

import (
	"encoding/json"
	"io"

	"github.com/ethereum/go-ethereum/rlp"

	"boscoin.io/votebank/lib/errors"
)

type VoteType byte

const (
	GM VoteType = iota
	GN
)

var voteTypeNames = map[VoteType]string{
	GM: "gm",
	GN: "gn",
}

func (v VoteType) IsValid() bool {
	_, found := voteTypeNames[v]
	return found
}

// String returns the label used in program logs, "GM" or "GN".
func (v VoteType) String() string {
	switch v {
	case GM:
		return "GM"
	case GN:
		return "GN"
	default:
		return "unknown"
	}
}

// Byte is the single byte wire discriminant.
func (v VoteType) Byte() byte {
	return byte(v)
}

func VoteTypeFromByte(b byte) (VoteType, error) {
	v := VoteType(b)
	if !v.IsValid() {
		return 0, errors.InvalidVoteType
	}

	return v, nil
}

// EncodeRLP writes the wire discriminant, so operation hashes cover the
// single byte form.
func (v VoteType) EncodeRLP(w io.Writer) error {
	if !v.IsValid() {
		return errors.InvalidVoteType
	}

	return rlp.Encode(w, v.Byte())
}

func (v *VoteType) DecodeRLP(s *rlp.Stream) error {
	b, err := s.Uint()
	if err != nil {
		return err
	}
	if b > 0xff {
		return errors.InvalidVoteType
	}

	parsed, err := VoteTypeFromByte(byte(b))
	if err != nil {
		return err
	}
	*v = parsed

	return nil
}

func ParseVoteType(s string) (VoteType, error) {
	for v, name := range voteTypeNames {
		if name == s {
			return v, nil
		}
	}

	return 0, errors.InvalidVoteType
}

func (v VoteType) MarshalJSON() ([]byte, error) {
	name, found := voteTypeNames[v]
	if !found {
		return nil, errors.InvalidVoteType
	}

	return json.Marshal(name)
}

func (v *VoteType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.InvalidVoteType
	}

	parsed, err := ParseVoteType(s)
	if err != nil {
		return err
	}
	*v = parsed

	return nil
}
