package generation

import (
	"context"
	"strings"
	"testing"
)

func TestAssistantAsk(t *testing.T) {
	backend := &fakeBackend{generate: func(int, string, bool) (string, error) {
		return "Photosynthesis converts light into chemical energy.", nil
	}}
	a := NewAssistant(backend)

	t.Run("identity questions get a canned reply", func(t *testing.T) {
		answer, err := a.Ask(context.Background(), "Who are you?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(answer, "AI assistant") {
			t.Errorf("answer = %q", answer)
		}
		if backend.calls != 0 {
			t.Error("identity question reached the backend")
		}
	})

	t.Run("out of domain questions are refused", func(t *testing.T) {
		answer, err := a.Ask(context.Background(), "Can you tell me a joke?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(answer, "not trained in that domain") {
			t.Errorf("answer = %q", answer)
		}
		if backend.calls != 0 {
			t.Error("out-of-domain question reached the backend")
		}
	})

	t.Run("academic questions reach the backend", func(t *testing.T) {
		answer, err := a.Ask(context.Background(), "What is photosynthesis?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(answer, "Photosynthesis") {
			t.Errorf("answer = %q", answer)
		}
		if backend.calls != 1 {
			t.Errorf("backend called %d times, want 1", backend.calls)
		}
	})
}
