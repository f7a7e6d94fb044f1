package api

import (
	"net/http"

	"boscoin.io/votebank/lib/network/httputils"
)

type NodeInfo struct {
	NetworkID string            `json:"network-id"`
	Variant   string            `json:"variant"`
	Version   map[string]string `json:"version"`
	Policy    NodePolicy        `json:"policy"`
}

type NodePolicy struct {
	OperationsLimit  int    `json:"operations-limit"`
	RateLimitRuleAPI string `json:"rate-limit-api"`
	HTTPCacheAdapter string `json:"http-cache-adapter"`
}

func (api NetworkHandlerAPI) GetNodeInfoHandler(w http.ResponseWriter, r *http.Request) {
	httputils.MustWriteJSON(w, http.StatusOK, api.nodeInfo)
}
