package generation

import "strings"

// Candidate is a question object as returned by the generation backend,
// before validation.
type Candidate struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Question is a validated multiple-choice question ready to be streamed to
// the client or stored in a quiz.
type Question struct {
	Text               string   `json:"questionText"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswer"`
	Explanation        string   `json:"explanation"`
}

const optionCount = 4

const paddingOption = "Invalid Option"

var trueFalsePhrases = []string{"true or false", "is it true that"}

// ValidateCandidate normalizes a candidate and checks the invariants every
// accepted question must satisfy: text present, exactly 4 distinct options
// after truncation/padding, correct answer resolvable to one option, and no
// true/false pattern. Returns ErrValidation when any check fails.
func ValidateCandidate(c Candidate) (*Question, error) {
	text := strings.TrimSpace(c.QuestionText)
	if text == "" || len(c.Options) == 0 {
		return nil, ErrValidation
	}

	options := make([]string, 0, optionCount)
	for _, opt := range c.Options {
		options = append(options, strings.TrimSpace(opt))
	}
	if len(options) > optionCount {
		options = options[:optionCount]
	}
	for len(options) < optionCount {
		options = append(options, paddingOption)
	}

	if isTrueFalse(text, options) {
		return nil, ErrValidation
	}
	if !optionsDistinct(options) {
		return nil, ErrValidation
	}

	answer := strings.ToLower(strings.TrimSpace(c.CorrectAnswer))
	if answer == "" {
		return nil, ErrValidation
	}
	correctIndex := -1
	for i, opt := range options {
		if strings.Contains(strings.ToLower(opt), answer) {
			correctIndex = i
			break
		}
	}
	if correctIndex < 0 {
		return nil, ErrValidation
	}

	explanation := strings.TrimSpace(c.Explanation)
	if explanation == "" {
		explanation = "No explanation provided."
	}

	return &Question{
		Text:               text,
		Options:            options,
		CorrectAnswerIndex: correctIndex,
		Explanation:        explanation,
	}, nil
}

func isTrueFalse(text string, options []string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range trueFalsePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	for _, opt := range options {
		switch strings.ToLower(opt) {
		case "true", "false":
			return true
		}
	}
	return false
}

func optionsDistinct(options []string) bool {
	seen := make(map[string]struct{}, len(options))
	for _, opt := range options {
		key := strings.ToLower(opt)
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}
