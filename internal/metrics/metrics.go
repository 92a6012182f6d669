package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationSessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quizcraft_generation_sessions_started_total",
		Help: "Number of quiz generation sessions started",
	})

	GenerationSessionsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quizcraft_generation_sessions_finished_total",
		Help: "Number of quiz generation sessions finished, by outcome",
	}, []string{"outcome"})

	QuestionsProduced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quizcraft_questions_produced_total",
		Help: "Number of validated questions streamed to clients",
	})

	BadgesAwarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quizcraft_badges_awarded_total",
		Help: "Number of badges awarded by the rule engine",
	})

	WebsocketConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "quizcraft_websocket_connections",
		Help: "Currently registered websocket connections",
	})
)
