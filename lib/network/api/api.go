package api

import (
	"boscoin.io/votebank/lib/ledger"
	"boscoin.io/votebank/lib/network/httpcache"
)

// API Endpoint patterns
const (
	NodeInfoHandlerPattern             = "/"
	GetVoteBankHandlerPattern          = "/votebanks/{id}"
	GetTransactionsHandlerPattern      = "/transactions"
	GetTransactionByHashHandlerPattern = "/transactions/{id}"
	PostTransactionPattern             = "/transactions"
)

// MaxTransactionBodySize bounds the body of `POST /transactions`.
const MaxTransactionBodySize int64 = 1 << 20

type NetworkHandlerAPI struct {
	ledger    *ledger.Ledger
	urlPrefix string
	cache     httpcache.Wrapper
	nodeInfo  NodeInfo
}

func NewNetworkHandlerAPI(l *ledger.Ledger, urlPrefix string, cache httpcache.Wrapper, nodeInfo NodeInfo) *NetworkHandlerAPI {
	if cache == nil {
		cache = httpcache.NewNopClient()
	}

	return &NetworkHandlerAPI{
		ledger:    l,
		urlPrefix: urlPrefix,
		cache:     cache,
		nodeInfo:  nodeInfo,
	}
}

func (api NetworkHandlerAPI) HandlerURLPattern(pattern string) string {
	if pattern == "/" {
		return api.urlPrefix
	}
	return api.urlPrefix + pattern
}
