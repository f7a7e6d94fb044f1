package transaction

import (
	"math/rand"

	"boscoin.io/votebank/lib/common/keypair"
	"boscoin.io/votebank/lib/transaction/operation"
)

// TestMakeTransaction returns a signed transaction initializing `n` new
// vote banks.
func TestMakeTransaction(networkID []byte, n int) (kp *keypair.Full, tx Transaction) {
	kp = keypair.Random()

	var ops []operation.Operation
	for i := 0; i < n; i++ {
		ops = append(ops, operation.MakeTestInitVoteBank())
	}

	tx, _ = NewTransaction(kp.Address(), TestGenerateNewSequenceID(), ops...)
	tx.Sign(kp, networkID)

	return
}

func TestGenerateNewSequenceID() uint64 {
	return rand.Uint64()
}

func TestMakeTransactionWithKeypair(networkID []byte, kp *keypair.Full, ops ...operation.Operation) (tx Transaction) {
	tx, _ = NewTransaction(
		kp.Address(),
		TestGenerateNewSequenceID(),
		ops...,
	)
	tx.Sign(kp, networkID)

	return
}
