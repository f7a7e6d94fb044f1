package ledger

import (
	"boscoin.io/votebank/lib/common"
	"boscoin.io/votebank/lib/metrics"
	"boscoin.io/votebank/lib/storage"
	"boscoin.io/votebank/lib/votebank"
)

// NewTestLedger returns a ledger over a memory storage.
func NewTestLedger(variant votebank.Variant) *Ledger {
	l, err := NewLedger(
		storage.NewTestStorage(),
		votebank.NewProgram(variant),
		common.NewTestConfig(),
		WithMetrics(metrics.NopLedgerMetrics()),
	)
	if err != nil {
		panic(err)
	}

	return l
}
