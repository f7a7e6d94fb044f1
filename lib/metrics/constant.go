package metrics

const (
	Namespace       = "votebank"
	LedgerSubsystem = "ledger"
	APISubsystem    = "api"
)

const (
	StatusCommitted = "committed"
	StatusFailed    = "failed"
	StatusRejected  = "rejected"
)
