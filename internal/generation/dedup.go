package generation

import "strings"

// NormalizeQuestionText lowercases text and strips everything that is not a
// letter or digit, so near-identical questions compare equal.
func NormalizeQuestionText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SeenSet tracks normalized question texts already accepted in a session.
// It belongs to exactly one session and is not safe for concurrent use.
type SeenSet struct {
	seen map[string]struct{}
}

func NewSeenSet() *SeenSet {
	return &SeenSet{seen: make(map[string]struct{})}
}

// Add records the question text and reports whether it was new.
func (s *SeenSet) Add(text string) bool {
	key := NormalizeQuestionText(text)
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	return true
}

func (s *SeenSet) Contains(text string) bool {
	_, ok := s.seen[NormalizeQuestionText(text)]
	return ok
}

func (s *SeenSet) Len() int {
	return len(s.seen)
}
