package resource

import (
	"strings"

	"github.com/nvellon/hal"

	"boscoin.io/votebank/lib/votebank"
)

type VoteBank struct {
	address string
	account *votebank.Account
}

func NewVoteBank(address string, account *votebank.Account) *VoteBank {
	return &VoteBank{
		address: address,
		account: account,
	}
}

func (v VoteBank) GetMap() hal.Entry {
	entry := hal.Entry{
		"id":              v.address,
		"variant":         v.account.Variant,
		"is_open_to_vote": v.account.IsOpenToVote,
		"gm":              v.account.Count(votebank.GM),
		"gn":              v.account.Count(votebank.GN),
		"total_votes":     v.account.TotalVotes(),
	}
	if v.account.Variant.TracksVoters() {
		voters := v.account.Voters
		if voters == nil {
			voters = []string{}
		}
		entry["voters"] = voters
	}

	return entry
}

func (v VoteBank) Resource() *hal.Resource {
	return hal.NewResource(v, v.LinkSelf())
}

func (v VoteBank) LinkSelf() string {
	return strings.Replace(URLVoteBanks, "{id}", v.address, -1)
}
