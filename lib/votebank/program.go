package votebank

import (
	"fmt"

	"boscoin.io/votebank/lib/errors"
)

// Context is the single invocation of a program entry point: who signed
// it, which vote bank it touches and where vote banks live.
type Context struct {
	Signer   string
	VoteBank string
	Store    Store

	logs []string
}

func NewContext(signer, voteBank string, store Store) *Context {
	return &Context{
		Signer:   signer,
		VoteBank: voteBank,
		Store:    store,
	}
}

// Msg records a program log line.
func (c *Context) Msg(format string, args ...interface{}) {
	c.logs = append(c.logs, fmt.Sprintf(format, args...))
}

func (c *Context) Logs() []string {
	return c.logs
}

type Program struct {
	variant Variant
}

func NewProgram(variant Variant) *Program {
	return &Program{variant: variant}
}

func (p *Program) Variant() Variant {
	return p.variant
}

// InitVoteBank allocates an open vote bank at `ctx.VoteBank`.
func (p *Program) InitVoteBank(ctx *Context) error {
	account := NewAccount(p.variant)
	if err := ctx.Store.Create(ctx.VoteBank, account); err != nil {
		return err
	}

	log.Debug("vote bank initialized", "vote-bank", ctx.VoteBank, "payer", ctx.Signer, "variant", p.variant)

	return nil
}

// GiveVote counts the vote of `ctx.Signer`. Every check runs before the
// account is touched.
func (p *Program) GiveVote(ctx *Context, vt VoteType) error {
	if !vt.IsValid() {
		return errors.InvalidVoteType
	}

	account, err := p.load(ctx)
	if err != nil {
		return err
	}

	if !account.IsOpenToVote {
		return errors.VotingClosed
	}

	if p.variant.TracksVoters() {
		if account.HasVoted(ctx.Signer) {
			return errors.AlreadyVoted
		}
		if len(account.Voters) >= MaxVoters {
			return errors.VoterListFull
		}
	}

	switch vt {
	case GM:
		account.GMCount++
	case GN:
		account.GNCount++
	}

	if p.variant.TracksVoters() {
		account.Voters = append(account.Voters, ctx.Signer)
	}

	if err = ctx.Store.Save(ctx.VoteBank, account); err != nil {
		return err
	}

	ctx.Msg("Signer Voted %s: %s", vt, ctx.Signer)
	log.Debug("vote given", "vote-bank", ctx.VoteBank, "signer", ctx.Signer, "vote-type", vt)

	return nil
}

// CloseVoteBank closes the vote bank for good. Anyone may close it and
// closing a closed bank is not an error.
func (p *Program) CloseVoteBank(ctx *Context) error {
	account, err := p.load(ctx)
	if err != nil {
		return err
	}

	account.IsOpenToVote = false
	if err = ctx.Store.Save(ctx.VoteBank, account); err != nil {
		return err
	}

	log.Debug("vote bank closed", "vote-bank", ctx.VoteBank, "signer", ctx.Signer)

	return nil
}

func (p *Program) load(ctx *Context) (*Account, error) {
	account, err := ctx.Store.Load(ctx.VoteBank)
	if err != nil {
		return nil, err
	}

	if account.Variant != p.variant {
		return nil, errors.InvalidVoteBankData.Clone().SetData("variant", account.Variant)
	}

	return account, nil
}
