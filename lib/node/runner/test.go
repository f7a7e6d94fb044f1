package runner

import (
	"net/url"

	"boscoin.io/votebank/lib/ledger"
	"boscoin.io/votebank/lib/network"
	"boscoin.io/votebank/lib/votebank"
)

// NewTestNodeRunner returns a ready node runner over a memory storage; it
// is served thru `Handler` without listening.
func NewTestNodeRunner(variant votebank.Variant, opts ...Option) *NodeRunner {
	endpoint, _ := url.Parse("http://localhost:12345")
	config, err := network.NewHTTP2ServerConfigFromEndpoint(endpoint)
	if err != nil {
		panic(err)
	}

	nr, err := NewNodeRunner(ledger.NewTestLedger(variant), network.NewHTTP2Server(config, false), opts...)
	if err != nil {
		panic(err)
	}
	if err := nr.Ready(); err != nil {
		panic(err)
	}

	return nr
}
