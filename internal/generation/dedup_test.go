package generation

import "testing"

func TestNormalizeQuestionText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"What is Go?", "whatisgo"},
		{"  What   is GO ", "whatisgo"},
		{"What-is,go!?", "whatisgo"},
		{"Question 42", "question42"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeQuestionText(tt.in); got != tt.want {
			t.Errorf("NormalizeQuestionText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSeenSet(t *testing.T) {
	s := NewSeenSet()

	if !s.Add("What is Go?") {
		t.Error("first Add returned false")
	}
	if s.Add("what is go") {
		t.Error("Add accepted a duplicate that differs only in case and punctuation")
	}
	if !s.Contains("WHAT IS GO???") {
		t.Error("Contains missed a normalized duplicate")
	}
	if s.Contains("What is Rust?") {
		t.Error("Contains reported an unseen question")
	}
	if !s.Add("What is Rust?") {
		t.Error("Add rejected a genuinely new question")
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}
