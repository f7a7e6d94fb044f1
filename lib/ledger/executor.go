package ledger

import (
	"boscoin.io/votebank/lib/errors"
	"boscoin.io/votebank/lib/transaction/operation"
	"boscoin.io/votebank/lib/votebank"
)

// ExecFunc runs one operation body against the program.
type ExecFunc func(program *votebank.Program, ctx *votebank.Context, body operation.Body) error

var execFuncs = map[operation.OperationType]ExecFunc{}

func RegisterExecFunc(t operation.OperationType, f ExecFunc) {
	execFuncs[t] = f
}

func init() {
	RegisterExecFunc(operation.TypeInitVoteBank, ExecInitVoteBank)
	RegisterExecFunc(operation.TypeGiveVote, ExecGiveVote)
	RegisterExecFunc(operation.TypeCloseVoteBank, ExecCloseVoteBank)
}

func Execute(program *votebank.Program, ctx *votebank.Context, op operation.Operation) error {
	f, found := execFuncs[op.H.Type]
	if !found {
		return errors.UnknownExecutor.Clone().SetData("type", op.H.Type)
	}

	return f(program, ctx, op.B)
}

func ExecInitVoteBank(program *votebank.Program, ctx *votebank.Context, body operation.Body) error {
	if _, ok := body.(operation.InitVoteBank); !ok {
		return errors.InvalidOperation
	}

	return program.InitVoteBank(ctx)
}

func ExecGiveVote(program *votebank.Program, ctx *votebank.Context, body operation.Body) error {
	opb, ok := body.(operation.GiveVote)
	if !ok {
		return errors.InvalidOperation
	}

	return program.GiveVote(ctx, opb.VoteType)
}

func ExecCloseVoteBank(program *votebank.Program, ctx *votebank.Context, body operation.Body) error {
	if _, ok := body.(operation.CloseVoteBank); !ok {
		return errors.InvalidOperation
	}

	return program.CloseVoteBank(ctx)
}
