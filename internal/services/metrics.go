package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reviewDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "innohub",
		Name:      "review_decisions_total",
		Help:      "Review decisions by collection and outcome.",
	}, []string{"collection", "decision"})

	ledgerSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "innohub",
		Name:      "ledger_submissions_total",
		Help:      "Ledger submissions of filing decisions by outcome.",
	}, []string{"outcome"})

	similarityScores = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "innohub",
		Name:      "similarity_scores_total",
		Help:      "Similarity comparisons by scoring method.",
	}, []string{"method"})

	chatMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "innohub",
		Name:      "chat_messages_total",
		Help:      "Chat messages stored and pushed over streams.",
	}, []string{"path"})
)

// CountStreamDelivery records a message written to a push stream
func CountStreamDelivery() {
	chatMessages.WithLabelValues("pushed").Inc()
}
