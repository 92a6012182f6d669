package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"
)

// Event kinds of the generation-streaming protocol. A session emits zero or
// more status events, strictly increasing questionProduced events, and
// exactly one terminal event (complete, error or cancelled).
const (
	EventStatus           = "status"
	EventQuestionProduced = "questionProduced"
	EventComplete         = "complete"
	EventError            = "error"
	EventCancelled        = "cancelled"
)

type Event struct {
	Kind           string    `json:"kind"`
	Message        string    `json:"message,omitempty"`
	Question       *Question `json:"question,omitempty"`
	ProducedCount  int       `json:"producedCount,omitempty"`
	TotalRequested int       `json:"totalRequested,omitempty"`
	Title          string    `json:"title,omitempty"`
	Category       string    `json:"category,omitempty"`
	Topic          string    `json:"topic,omitempty"`
}

// Sink receives session events. Implementations guard on the transport
// still being open; events sent after the client is gone are dropped.
type Sink interface {
	Send(Event)
}

type Config struct {
	RequestedCount      int
	MinSourceLength     int
	SingleRequestLimit  int
	ChunkSize           int
	MaxRetries          int
	AttemptBudgetFactor int
	Pacing              time.Duration
}

const (
	defaultMinSourceLength     = 50
	defaultSingleRequestLimit  = 15000
	defaultChunkSize           = 4000
	defaultMaxRetries          = 3
	defaultAttemptBudgetFactor = 5
	defaultPacing              = 100 * time.Millisecond
)

func (c *Config) applyDefaults() {
	if c.RequestedCount <= 0 {
		c.RequestedCount = 5
	}
	if c.MinSourceLength <= 0 {
		c.MinSourceLength = defaultMinSourceLength
	}
	if c.SingleRequestLimit <= 0 {
		c.SingleRequestLimit = defaultSingleRequestLimit
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = defaultChunkSize
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = defaultMaxRetries
	}
	if c.AttemptBudgetFactor <= 0 {
		c.AttemptBudgetFactor = defaultAttemptBudgetFactor
	}
	// A negative pacing disables the delay entirely.
	if c.Pacing == 0 {
		c.Pacing = defaultPacing
	}
}

// Session is one end-to-end quiz generation run streamed to a single
// client. The dedup set and attempt counters belong to this session only;
// a session runs sequentially with one backend call in flight at a time.
type Session struct {
	backend Backend
	sink    Sink
	cfg     Config
	seen    *SeenSet
	rnd     *rand.Rand
}

func NewSession(backend Backend, sink Sink, cfg Config) *Session {
	cfg.applyDefaults()
	return &Session{
		backend: backend,
		sink:    sink,
		cfg:     cfg,
		seen:    NewSeenSet(),
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// RunDocument generates questions grounded on sourceText, supplementing
// from general knowledge if the source under-delivers.
func (s *Session) RunDocument(ctx context.Context, sourceText string) {
	if ctx.Err() != nil {
		s.emit(Event{Kind: EventCancelled})
		return
	}

	trimmed := strings.TrimSpace(sourceText)
	if len(trimmed) < s.cfg.MinSourceLength {
		err := fmt.Errorf("%w (at least %d characters required)", ErrInsufficientContent, s.cfg.MinSourceLength)
		s.emit(Event{Kind: EventError, Message: err.Error()})
		return
	}

	total := s.cfg.RequestedCount
	s.emit(Event{Kind: EventStatus, Message: "Phase 1: Generating questions from document content..."})

	// Ground each attempt on the whole text when it is small enough,
	// otherwise on a random chunk for diversity.
	var chunks []string
	if len(trimmed) > s.cfg.SingleRequestLimit {
		for chunk := range Chunks(trimmed, s.cfg.ChunkSize) {
			chunks = append(chunks, chunk)
		}
	}

	produced := 0
	budget := total * s.cfg.AttemptBudgetFactor
	for attempts := 0; produced < total && attempts < budget; attempts++ {
		if ctx.Err() != nil {
			s.emit(Event{Kind: EventCancelled})
			return
		}

		fragment := trimmed
		if len(chunks) > 0 {
			fragment = chunks[s.rnd.Intn(len(chunks))]
		}

		q, err := s.generateOne(ctx, fragmentPrompt(fragment))
		if err != nil {
			if isCancellation(err) {
				s.emit(Event{Kind: EventCancelled})
				return
			}
			s.emit(Event{Kind: EventError, Message: err.Error()})
			return
		}
		if q == nil || !s.seen.Add(q.Text) {
			continue
		}
		produced++
		s.emit(Event{
			Kind:           EventQuestionProduced,
			Question:       q,
			ProducedCount:  produced,
			TotalRequested: total,
		})
		s.pace(ctx)
	}

	if produced < total {
		s.emit(Event{Kind: EventStatus, Message: "Phase 2: Supplementing with general knowledge..."})

		fallbackTopic := trimmed
		if len(fallbackTopic) > 500 {
			fallbackTopic = fallbackTopic[:500]
		}

		remaining := total - produced
		for i := 0; i < remaining && produced < total; i++ {
			if ctx.Err() != nil {
				s.emit(Event{Kind: EventCancelled})
				return
			}
			q, err := s.generateOne(ctx, topicPrompt(fallbackTopic))
			if err != nil {
				if isCancellation(err) {
					s.emit(Event{Kind: EventCancelled})
					return
				}
				s.emit(Event{Kind: EventError, Message: err.Error()})
				return
			}
			if q == nil || !s.seen.Add(q.Text) {
				continue
			}
			produced++
			s.emit(Event{
				Kind:           EventQuestionProduced,
				Question:       q,
				ProducedCount:  produced,
				TotalRequested: total,
			})
			s.pace(ctx)
		}
	}

	message := fmt.Sprintf("Quiz generation complete. Generated %d out of %d requested questions.", produced, total)
	if produced < total {
		message += " The document may not have contained enough distinct information to create all questions, so some were generated from general knowledge."
	}
	s.emit(Event{Kind: EventComplete, Message: message, ProducedCount: produced})
}

type quizPayload struct {
	Title     string      `json:"title"`
	Category  string      `json:"category"`
	Questions []Candidate `json:"questions"`
}

// RunTopic generates a complete quiz about a topic in one streamed backend
// call and emits the validated questions one by one.
func (s *Session) RunTopic(ctx context.Context, topic string) {
	if ctx.Err() != nil {
		s.emit(Event{Kind: EventCancelled})
		return
	}

	total := s.cfg.RequestedCount
	raw, err := s.backend.Generate(ctx, fullQuizPrompt(topic, total), true, func(generated int) {
		s.emit(Event{Kind: EventStatus, Message: fmt.Sprintf("Generating quiz... (%d characters generated)", generated)})
	})
	if err != nil {
		if isCancellation(err) {
			s.emit(Event{Kind: EventCancelled})
			return
		}
		s.emit(Event{Kind: EventError, Message: err.Error()})
		return
	}

	s.emit(Event{Kind: EventStatus, Message: "Processing generated quiz data..."})

	var payload quizPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		extracted, ok := extractJSON(raw)
		if !ok {
			s.emit(Event{Kind: EventError, Message: "The AI response was not in a valid JSON format."})
			return
		}
		if err := json.Unmarshal([]byte(extracted), &payload); err != nil {
			s.emit(Event{Kind: EventError, Message: "The AI response was not in a valid JSON format even after extraction."})
			return
		}
	}
	if payload.Title == "" || payload.Category == "" || len(payload.Questions) == 0 {
		s.emit(Event{Kind: EventError, Message: "The AI response was valid JSON, but not in the expected structure (missing title, category, or questions array)."})
		return
	}

	produced := 0
	for _, candidate := range payload.Questions {
		if ctx.Err() != nil {
			s.emit(Event{Kind: EventCancelled})
			return
		}
		q, err := ValidateCandidate(candidate)
		if err != nil {
			log.Printf("Skipping invalid generated question: %v", err)
			continue
		}
		if !s.seen.Add(q.Text) {
			continue
		}
		produced++
		s.emit(Event{
			Kind:           EventQuestionProduced,
			Question:       q,
			ProducedCount:  produced,
			TotalRequested: total,
			Title:          payload.Title,
			Category:       payload.Category,
			Topic:          topic,
		})
		s.pace(ctx)
	}

	if produced == 0 {
		s.emit(Event{Kind: EventError, Message: "AI returned JSON, but no valid questions could be processed."})
		return
	}
	s.emit(Event{
		Kind:          EventComplete,
		Message:       "Quiz generation complete!",
		ProducedCount: produced,
		Title:         payload.Title,
		Category:      payload.Category,
		Topic:         topic,
	})
}

// generateOne is the retry loop: up to MaxRetries attempts to obtain one
// validated question for the prompt. Parse and validation failures are
// logged and retried; exhausting the budget returns (nil, nil) so the
// caller can try a different fragment. Cancellation and an unreachable
// backend are returned as errors.
func (s *Session) generateOne(ctx context.Context, prompt string) (*Question, error) {
	for attempt := 0; attempt < s.cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := s.backend.Generate(ctx, prompt, false, nil)
		if err != nil {
			if isCancellation(err) || errors.Is(err, ErrBackendUnavailable) {
				return nil, err
			}
			log.Printf("Generation attempt %d failed: %v", attempt+1, err)
			continue
		}

		candidates, err := parseCandidates(raw)
		if err != nil {
			log.Printf("Generation attempt %d returned unparseable output: %v", attempt+1, err)
			continue
		}

		for _, c := range candidates {
			if q, err := ValidateCandidate(c); err == nil {
				return q, nil
			}
		}
		log.Printf("Generation attempt %d produced no valid question", attempt+1)
	}
	return nil, nil
}

// parseCandidates accepts the shapes the model actually produces: a bare
// array, an object with a questions array, or a single question object.
func parseCandidates(raw string) ([]Candidate, error) {
	if decoded, err := decodeCandidates(raw); err == nil {
		return decoded, nil
	}
	extracted, ok := extractJSON(raw)
	if !ok {
		return nil, ErrParse
	}
	decoded, err := decodeCandidates(extracted)
	if err != nil {
		return nil, ErrParse
	}
	return decoded, nil
}

func decodeCandidates(raw string) ([]Candidate, error) {
	var list []Candidate
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list, nil
	}
	var wrapped struct {
		Questions []Candidate `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapped); err == nil && len(wrapped.Questions) > 0 {
		return wrapped.Questions, nil
	}
	var single Candidate
	if err := json.Unmarshal([]byte(raw), &single); err == nil && single.QuestionText != "" {
		return []Candidate{single}, nil
	}
	return nil, ErrParse
}

func (s *Session) emit(ev Event) {
	s.sink.Send(ev)
}

// pace sleeps briefly between emitted events so the transport is not
// overwhelmed. Cut short by cancellation; the next loop boundary emits the
// cancellation event.
func (s *Session) pace(ctx context.Context) {
	if s.cfg.Pacing <= 0 {
		return
	}
	t := time.NewTimer(s.cfg.Pacing)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
