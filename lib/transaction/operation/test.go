package operation

import (
	"boscoin.io/votebank/lib/common/keypair"
	"boscoin.io/votebank/lib/votebank"
)

func MakeTestInitVoteBank() Operation {
	return MakeTestInitVoteBankAt(keypair.Random().Address())
}

func MakeTestInitVoteBankAt(address string) Operation {
	return Operation{
		H: Header{
			Type: TypeInitVoteBank,
		},
		B: InitVoteBank{
			VoteBank: address,
		},
	}
}

func MakeTestGiveVote(address string, vt votebank.VoteType) Operation {
	return Operation{
		H: Header{
			Type: TypeGiveVote,
		},
		B: GiveVote{
			VoteBank: address,
			VoteType: vt,
		},
	}
}

func MakeTestCloseVoteBank(address string) Operation {
	return Operation{
		H: Header{
			Type: TypeCloseVoteBank,
		},
		B: CloseVoteBank{
			VoteBank: address,
		},
	}
}
