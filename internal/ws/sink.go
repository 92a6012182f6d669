package ws

import (
	"github.com/KBARATH13/QuizCraft/internal/generation"
	"github.com/KBARATH13/QuizCraft/internal/metrics"
)

// connSink delivers generation events to one connection. Events after the
// connection closed are dropped; terminal events are counted by outcome.
type connSink struct {
	conn *Conn
}

func (s connSink) Send(ev generation.Event) {
	sent := s.conn.Send(ev)
	switch ev.Kind {
	case generation.EventQuestionProduced:
		if sent {
			metrics.QuestionsProduced.Inc()
		}
	case generation.EventComplete, generation.EventError, generation.EventCancelled:
		metrics.GenerationSessionsFinished.WithLabelValues(ev.Kind).Inc()
	}
}
