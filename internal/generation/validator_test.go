package generation

import (
	"errors"
	"testing"
)

func TestValidateCandidate(t *testing.T) {
	valid := Candidate{
		QuestionText:  "Which planet is closest to the sun?",
		Options:       []string{"Mercury", "Venus", "Earth", "Mars"},
		CorrectAnswer: "Mercury",
		Explanation:   "Mercury orbits closest to the sun.",
	}

	t.Run("accepts a well-formed candidate", func(t *testing.T) {
		q, err := ValidateCandidate(valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.CorrectAnswerIndex != 0 {
			t.Errorf("CorrectAnswerIndex = %d, want 0", q.CorrectAnswerIndex)
		}
		if len(q.Options) != 4 {
			t.Errorf("got %d options, want 4", len(q.Options))
		}
	})

	t.Run("resolves answer case-insensitively by substring", func(t *testing.T) {
		c := valid
		c.Options = []string{"The planet Mercury", "Venus", "Earth", "Mars"}
		c.CorrectAnswer = "mercury"
		q, err := ValidateCandidate(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.CorrectAnswerIndex != 0 {
			t.Errorf("CorrectAnswerIndex = %d, want 0", q.CorrectAnswerIndex)
		}
	})

	t.Run("pads a three-option candidate", func(t *testing.T) {
		c := valid
		c.Options = []string{"Mercury", "Venus", "Earth"}
		q, err := ValidateCandidate(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Options[3] != "Invalid Option" {
			t.Errorf("padding option = %q", q.Options[3])
		}
	})

	t.Run("truncates extra options", func(t *testing.T) {
		c := valid
		c.Options = []string{"Mercury", "Venus", "Earth", "Mars", "Jupiter"}
		q, err := ValidateCandidate(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(q.Options) != 4 {
			t.Errorf("got %d options, want 4", len(q.Options))
		}
	})

	t.Run("defaults a missing explanation", func(t *testing.T) {
		c := valid
		c.Explanation = "  "
		q, err := ValidateCandidate(c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Explanation != "No explanation provided." {
			t.Errorf("Explanation = %q", q.Explanation)
		}
	})

	rejects := []struct {
		name string
		mod  func(*Candidate)
	}{
		{"empty question text", func(c *Candidate) { c.QuestionText = "  " }},
		{"no options", func(c *Candidate) { c.Options = nil }},
		{"duplicate options", func(c *Candidate) { c.Options = []string{"Mercury", "mercury", "Earth", "Mars"} }},
		{"unresolvable answer", func(c *Candidate) { c.CorrectAnswer = "Pluto" }},
		{"empty answer", func(c *Candidate) { c.CorrectAnswer = "" }},
		{"true or false phrasing", func(c *Candidate) { c.QuestionText = "True or false: Mercury is closest to the sun" }},
		{"is it true phrasing", func(c *Candidate) { c.QuestionText = "Is it true that Mercury is closest?" }},
		{"boolean options", func(c *Candidate) {
			c.Options = []string{"True", "False", "Maybe", "Unsure"}
			c.CorrectAnswer = "True"
		}},
	}
	for _, tt := range rejects {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			c := valid
			c.Options = append([]string(nil), valid.Options...)
			tt.mod(&c)
			if _, err := ValidateCandidate(c); !errors.Is(err, ErrValidation) {
				t.Errorf("got %v, want ErrValidation", err)
			}
		})
	}
}
