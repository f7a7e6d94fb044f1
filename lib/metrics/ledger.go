package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type LedgerMetrics struct {
	Transactions     metrics.Counter
	Votes            metrics.Counter
	VoteBanksCreated metrics.Counter
	VoteBanksClosed  metrics.Counter

	SubmitDurationSeconds metrics.Histogram
}

func (l *LedgerMetrics) AddTransaction(status string) {
	l.Transactions.With("status", status).Add(1)
}

func (l *LedgerMetrics) AddVote(voteType string) {
	l.Votes.With("vote_type", voteType).Add(1)
}

func (l *LedgerMetrics) AddVoteBankCreated() {
	l.VoteBanksCreated.Add(1)
}

func (l *LedgerMetrics) AddVoteBankClosed() {
	l.VoteBanksClosed.Add(1)
}

func (l *LedgerMetrics) ObserveSubmit(status string, seconds float64) {
	l.SubmitDurationSeconds.With("status", status).Observe(seconds)
}

func PromLedgerMetrics() *LedgerMetrics {
	return &LedgerMetrics{
		Transactions: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "transactions_total",
			Help:      "Total number of submitted transactions.",
		}, []string{"status"}),
		Votes: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "votes_total",
			Help:      "Total number of accepted votes.",
		}, []string{"vote_type"}),
		VoteBanksCreated: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "vote_banks_created_total",
			Help:      "Total number of initialized vote banks.",
		}, []string{}),
		VoteBanksClosed: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "vote_banks_closed_total",
			Help:      "Total number of close operations.",
		}, []string{}),
		SubmitDurationSeconds: prometheus.NewSummaryFrom(stdprometheus.SummaryOpts{
			Namespace: Namespace,
			Subsystem: LedgerSubsystem,
			Name:      "submit_duration_seconds",
			Help:      "Time to run a transaction.",
		}, []string{"status"}),
	}
}

func NopLedgerMetrics() *LedgerMetrics {
	return &LedgerMetrics{
		Transactions:          discard.NewCounter(),
		Votes:                 discard.NewCounter(),
		VoteBanksCreated:      discard.NewCounter(),
		VoteBanksClosed:       discard.NewCounter(),
		SubmitDurationSeconds: discard.NewHistogram(),
	}
}
