package operation

import (
	"boscoin.io/votebank/lib/common"
	"boscoin.io/votebank/lib/common/keypair"
	"boscoin.io/votebank/lib/errors"
	"boscoin.io/votebank/lib/votebank"
)

func checkVoteBankAddress(address string) error {
	if len(address) < 1 {
		return errors.OperationBodyInsufficient
	}
	if _, err := keypair.Parse(address); err != nil {
		return errors.BadPublicAddress.Clone().SetData("address", address)
	}

	return nil
}

// InitVoteBank allocates a new vote bank at `VoteBank`; the source of the
// transaction pays for it.
type InitVoteBank struct {
	VoteBank string `json:"vote_bank"`
}

func NewInitVoteBank(voteBank string) InitVoteBank {
	return InitVoteBank{VoteBank: voteBank}
}

func (o InitVoteBank) IsWellFormed(common.Config) error {
	return checkVoteBankAddress(o.VoteBank)
}

func (o InitVoteBank) TargetVoteBank() string {
	return o.VoteBank
}

// GiveVote is the vote of the transaction source.
type GiveVote struct {
	VoteBank string            `json:"vote_bank"`
	VoteType votebank.VoteType `json:"vote_type"`
}

func NewGiveVote(voteBank string, vt votebank.VoteType) GiveVote {
	return GiveVote{VoteBank: voteBank, VoteType: vt}
}

func (o GiveVote) IsWellFormed(common.Config) error {
	if err := checkVoteBankAddress(o.VoteBank); err != nil {
		return err
	}
	if !o.VoteType.IsValid() {
		return errors.InvalidVoteType
	}

	return nil
}

func (o GiveVote) TargetVoteBank() string {
	return o.VoteBank
}

type CloseVoteBank struct {
	VoteBank string `json:"vote_bank"`
}

func NewCloseVoteBank(voteBank string) CloseVoteBank {
	return CloseVoteBank{VoteBank: voteBank}
}

func (o CloseVoteBank) IsWellFormed(common.Config) error {
	return checkVoteBankAddress(o.VoteBank)
}

func (o CloseVoteBank) TargetVoteBank() string {
	return o.VoteBank
}
