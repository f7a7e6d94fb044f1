// Provide test utilities for the common package
package common

// Initialize a new config object for unittests
func NewTestConfig() Config {
	p := NewConfig([]byte("votebank-unittest"))
	p.VoteBankCacheSize = 10
	p.HTTPCachePoolSize = 10
	p.RateLimitAPI = ""

	return p
}
