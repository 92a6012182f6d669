package generation

import (
	"context"
	"fmt"
	"strings"
)

// Assistant answers simple academic questions through the generation
// backend, with canned replies for identity questions and a keyword guard
// for out-of-scope topics.
type Assistant struct {
	backend Backend
}

func NewAssistant(backend Backend) *Assistant {
	return &Assistant{backend: backend}
}

var outOfDomainKeywords = []string{
	"current events", "news today", "personal life", "feelings", "emotions",
	"weather", "sports scores", "celebrity gossip", "political opinions",
	"tell me a joke", "sing a song", "write a poem", "recipe for",
	"stock market", "financial advice", "medical advice", "legal advice",
}

const assistantPersona = `You are an AI assistant for a quiz application, designed to answer simple, factual questions and define concepts. Your name is QuizBot. Keep your answers concise and to the point. If a question is too complex, open-ended, or requires deep analysis, politely state that you are designed for simpler questions.`

func (a *Assistant) Ask(ctx context.Context, question string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(question))

	if strings.Contains(lower, "what is your name") || strings.Contains(lower, "who are you") {
		return "I am an AI assistant designed to help you with quizzes and academic doubts. I don't have a name.", nil
	}

	for _, keyword := range outOfDomainKeywords {
		if strings.Contains(lower, keyword) {
			return "Sorry, I am not trained in that domain or field. I can help you with academic concepts and quiz-related questions.", nil
		}
	}

	prompt := assistantPersona + "\n\n" + question
	answer, err := a.backend.Generate(ctx, prompt, false, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get response from AI: %w", err)
	}
	return answer, nil
}
