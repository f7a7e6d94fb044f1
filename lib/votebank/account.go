package votebank

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"

	"boscoin.io/votebank/lib/common/keypair"
	"boscoin.io/votebank/lib/errors"
)

const (
	MaxVoters = 50

	discriminatorSize = 8
	publicKeySize     = 32

	flagOffset     = discriminatorSize
	gmOffset       = flagOffset + 1
	gnOffset       = gmOffset + 8
	countOffset    = gnOffset + 8
	votersOffset   = countOffset + 4
	openSpace      = countOffset
	voterListSpace = votersOffset + MaxVoters*publicKeySize
)

// AccountDiscriminator prefixes every persisted vote bank record.
var AccountDiscriminator []byte

func init() {
	h := sha256.Sum256([]byte("account:VoteBankData"))
	AccountDiscriminator = h[:discriminatorSize]
}

// Account is the persisted state of a vote bank.
type Account struct {
	Variant      Variant  `json:"variant"`
	IsOpenToVote bool     `json:"is_open_to_vote"`
	GMCount      uint64   `json:"gm_count"`
	GNCount      uint64   `json:"gn_count"`
	Voters       []string `json:"voters,omitempty"`
}

// NewAccount returns an open vote bank with zero tallies.
func NewAccount(variant Variant) *Account {
	a := &Account{
		Variant:      variant,
		IsOpenToVote: true,
	}
	if variant.TracksVoters() {
		a.Voters = make([]string, 0, MaxVoters)
	}

	return a
}

func (a *Account) TotalVotes() uint64 {
	return a.GMCount + a.GNCount
}

func (a *Account) HasVoted(address string) bool {
	for _, v := range a.Voters {
		if v == address {
			return true
		}
	}

	return false
}

func (a *Account) Count(vt VoteType) uint64 {
	if vt == GN {
		return a.GNCount
	}

	return a.GMCount
}

func (a *Account) Clone() *Account {
	c := *a
	if a.Voters != nil {
		c.Voters = make([]string, len(a.Voters), cap(a.Voters))
		copy(c.Voters, a.Voters)
	}

	return &c
}

func (a *Account) String() string {
	encoded, _ := json.MarshalIndent(a, "", "  ")
	return string(encoded)
}

// Serialize encodes the account into its fixed size binary layout; the
// voter list variant is always allocated for `MaxVoters` entries.
func (a *Account) Serialize() ([]byte, error) {
	if a.Variant != VariantVoterList && a.Variant != VariantOpen {
		return nil, errors.UnknownVariant.Clone().SetData("variant", a.Variant)
	}
	if !a.Variant.TracksVoters() && len(a.Voters) > 0 {
		return nil, errors.InvalidVoteBankData.Clone().SetData("error", "voters in open variant")
	}
	if len(a.Voters) > MaxVoters {
		return nil, errors.VoterListFull
	}

	b := make([]byte, a.Variant.Space())
	copy(b[:discriminatorSize], AccountDiscriminator)
	if a.IsOpenToVote {
		b[flagOffset] = 1
	}
	binary.LittleEndian.PutUint64(b[gmOffset:], a.GMCount)
	binary.LittleEndian.PutUint64(b[gnOffset:], a.GNCount)

	if !a.Variant.TracksVoters() {
		return b, nil
	}

	binary.LittleEndian.PutUint32(b[countOffset:], uint32(len(a.Voters)))
	for i, voter := range a.Voters {
		raw, err := keypair.RawPublicKey(voter)
		if err != nil {
			return nil, errors.BadPublicAddress.Clone().SetData("address", voter)
		}
		copy(b[votersOffset+i*publicKeySize:], raw)
	}

	return b, nil
}

// Deserialize decodes a record written by `Serialize`. The variant is
// taken from the record size.
func (a *Account) Deserialize(b []byte) error {
	var variant Variant
	switch len(b) {
	case openSpace:
		variant = VariantOpen
	case voterListSpace:
		variant = VariantVoterList
	default:
		return errors.InvalidVoteBankData.Clone().SetData("error", "unexpected record size")
	}

	for i := 0; i < discriminatorSize; i++ {
		if b[i] != AccountDiscriminator[i] {
			return errors.InvalidVoteBankData.Clone().SetData("error", "wrong discriminator")
		}
	}

	var isOpen bool
	switch b[flagOffset] {
	case 0:
	case 1:
		isOpen = true
	default:
		return errors.InvalidVoteBankData.Clone().SetData("error", "invalid flag")
	}

	decoded := Account{
		Variant:      variant,
		IsOpenToVote: isOpen,
		GMCount:      binary.LittleEndian.Uint64(b[gmOffset:]),
		GNCount:      binary.LittleEndian.Uint64(b[gnOffset:]),
	}

	if variant.TracksVoters() {
		count := int(binary.LittleEndian.Uint32(b[countOffset:]))
		if count > MaxVoters {
			return errors.InvalidVoteBankData.Clone().SetData("error", "voter count over capacity")
		}

		decoded.Voters = make([]string, 0, MaxVoters)
		for i := 0; i < count; i++ {
			start := votersOffset + i*publicKeySize
			address, err := keypair.AddressFromRawPublicKey(b[start : start+publicKeySize])
			if err != nil {
				return errors.InvalidVoteBankData.Clone().SetData("error", err.Error())
			}
			decoded.Voters = append(decoded.Voters, address)
		}
	}

	*a = decoded

	return nil
}
