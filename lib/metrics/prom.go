package metrics

import "sync"

var promOnce sync.Once

// InitPrometheusMetrics swaps the no-op metrics for prometheus ones. The
// collectors are registered once per process.
func InitPrometheusMetrics() {
	promOnce.Do(func() {
		Version = PromVersion()
		Ledger = PromLedgerMetrics()
		API = PromAPIMetrics()
	})
}
