package resource

const (
	APIVersionV1 = "/v1"
	APIPrefix    = "/api"

	URLVoteBanks         = APIPrefix + APIVersionV1 + "/votebanks/{id}"
	URLTransactions      = APIPrefix + APIVersionV1 + "/transactions"
	URLTransactionByHash = APIPrefix + APIVersionV1 + "/transactions/{id}"
)
