package common

const (
	DefaultOperationsInTransactionLimit = 10
	DefaultVoteBankCacheSize            = 1000
	DefaultHTTPCachePoolSize            = 10000
	DefaultRateLimitAPI                 = "100-S"
)

// Config carries the network-wide settings every node of the same
// network must agree on, plus a few local tunables.
type Config struct {
	NetworkID []byte

	OpsLimit int

	// Those fields are not network-related
	VoteBankCacheSize int

	HTTPCacheAdapter    string
	HTTPCachePoolSize   int
	HTTPCacheRedisAddrs []string

	// RateLimitAPI is a ulule/limiter formatted rate, like "100-S"; empty
	// disables the limit.
	RateLimitAPI string
}

func NewConfig(networkID []byte) Config {
	p := Config{}

	p.NetworkID = networkID
	p.OpsLimit = DefaultOperationsInTransactionLimit
	p.VoteBankCacheSize = DefaultVoteBankCacheSize
	p.HTTPCachePoolSize = DefaultHTTPCachePoolSize
	p.RateLimitAPI = DefaultRateLimitAPI

	return p
}
