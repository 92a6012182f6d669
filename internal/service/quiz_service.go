package service

import (
	"context"
	"errors"
	"time"

	"github.com/KBARATH13/QuizCraft/internal/event"
	"github.com/KBARATH13/QuizCraft/internal/gamification"
	"github.com/KBARATH13/QuizCraft/internal/models"
	"github.com/KBARATH13/QuizCraft/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

type QuizService struct {
	Quizzes   *repository.QuizRepository
	Attempts  *repository.AttemptRepository
	Users     *repository.UserRepository
	Engine    *gamification.Engine
	Publisher *event.EventPublisher
}

func NewQuizService(quizzes *repository.QuizRepository, attempts *repository.AttemptRepository, users *repository.UserRepository, engine *gamification.Engine, publisher *event.EventPublisher) *QuizService {
	return &QuizService{Quizzes: quizzes, Attempts: attempts, Users: users, Engine: engine, Publisher: publisher}
}

func (s *QuizService) Create(ctx context.Context, quiz *models.Quiz) error {
	if quiz.Title == "" || len(quiz.Questions) == 0 {
		return errors.New("a quiz needs a title and at least one question")
	}
	if err := s.Quizzes.Create(ctx, quiz); err != nil {
		return err
	}
	if s.Publisher != nil {
		s.Publisher.Publish("quiz.created", map[string]any{
			"quizId": quiz.ID,
			"userId": quiz.CreatedBy,
		})
	}
	s.Engine.CheckAndAward(ctx, quiz.CreatedBy)
	return nil
}

func (s *QuizService) Get(ctx context.Context, id string) (*models.Quiz, error) {
	quiz, err := s.Quizzes.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	return quiz, err
}

func (s *QuizService) List(ctx context.Context, search string) ([]models.Quiz, error) {
	return s.Quizzes.FindAll(ctx, search)
}

func (s *QuizService) Categories(ctx context.Context) ([]string, error) {
	return s.Quizzes.DistinctCategories(ctx)
}

// AttemptHistory returns the user's attempts, newest first.
func (s *QuizService) AttemptHistory(ctx context.Context, userID string) ([]models.QuizAttempt, error) {
	return s.Attempts.FindByUser(ctx, userID)
}

// Delete removes a quiz; only its creator may do so.
func (s *QuizService) Delete(ctx context.Context, id, userID string) error {
	quiz, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if quiz.CreatedBy != userID {
		return ErrForbidden
	}
	return s.Quizzes.Delete(ctx, id)
}

type SubmitResult struct {
	Score           int                    `json:"score"`
	TotalQuestions  int                    `json:"totalQuestions"`
	PointsAwarded   int                    `json:"pointsAwarded"`
	XPAwarded       int                    `json:"xpAwarded"`
	FirstAttempt    bool                   `json:"firstAttempt"`
	Streak          int                    `json:"streak"`
	Level           gamification.LevelInfo `json:"level"`
	DetailedResults []models.AttemptResult `json:"detailedResults"`
}

// Submit scores an answer sheet against the quiz, records the attempt and
// applies the reward rules: ten points and one XP per correct answer, on
// the first attempt of a quiz only, plus the daily streak update.
func (s *QuizService) Submit(ctx context.Context, userID, quizID string, answers []int, timeTaken int) (*SubmitResult, error) {
	quiz, err := s.Get(ctx, quizID)
	if err != nil {
		return nil, err
	}
	user, err := s.Users.FindByID(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	score := 0
	results := make([]models.AttemptResult, len(quiz.Questions))
	for i, q := range quiz.Questions {
		correct := i < len(answers) && answers[i] == q.CorrectAnswer
		if correct {
			score++
		}
		results[i] = models.AttemptResult{
			QuestionText:  q.QuestionText,
			QuestionTopic: quiz.Topic,
			IsCorrect:     correct,
		}
	}

	_, err = s.Attempts.FindByUserAndQuiz(ctx, userID, quizID)
	firstAttempt := errors.Is(err, mongo.ErrNoDocuments)
	if err != nil && !firstAttempt {
		return nil, err
	}

	attempt := &models.QuizAttempt{
		UserID:          userID,
		QuizID:          quizID,
		Score:           score,
		TotalQuestions:  len(quiz.Questions),
		DetailedResults: results,
		TimeTaken:       timeTaken,
	}
	if err := s.Attempts.Create(ctx, attempt); err != nil {
		return nil, err
	}

	result := &SubmitResult{
		Score:           score,
		TotalQuestions:  len(quiz.Questions),
		FirstAttempt:    firstAttempt,
		Streak:          user.Streaks,
		Level:           gamification.CalculateLevel(user.XP),
		DetailedResults: results,
	}

	update := bson.M{}
	now := time.Now()

	if firstAttempt {
		result.PointsAwarded = score * 10
		result.XPAwarded = score
		newXP := user.XP + score
		info := gamification.CalculateLevel(newXP)
		update["points"] = user.Points + result.PointsAwarded
		update["xp"] = newXP
		update["level"] = info.Level
		result.Level = info
	}

	// One streak increment per calendar day; a missed day resets to 1.
	streak := updatedStreak(user.Streaks, user.LastDailyChallengeAt, now)
	if streak != user.Streaks || user.LastDailyChallengeAt == nil || !sameDay(*user.LastDailyChallengeAt, now) {
		update["streaks"] = streak
		update["last_daily_challenge_at"] = now
		result.Streak = streak
	}
	update["completed_daily_quizzes"] = updatedDailyCount(user.CompletedDailyQuizzes, user.LastDailyChallengeAt, now)

	if len(update) > 0 {
		if err := s.Users.UpdateFields(ctx, userID, update); err != nil {
			return nil, err
		}
	}

	if s.Publisher != nil {
		s.Publisher.Publish("quiz.completed", map[string]any{
			"userId": userID,
			"quizId": quizID,
			"score":  score,
			"total":  len(quiz.Questions),
		})
	}
	s.Engine.CheckAndAward(ctx, userID)
	return result, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func updatedStreak(current int, last *time.Time, now time.Time) int {
	if last == nil {
		return 1
	}
	if sameDay(*last, now) {
		return current
	}
	if sameDay(last.AddDate(0, 0, 1), now) {
		return current + 1
	}
	return 1
}

// updatedDailyCount counts quizzes completed today: it grows on same-day
// submissions and restarts at 1 when the calendar day changes.
func updatedDailyCount(current int, last *time.Time, now time.Time) int {
	if last != nil && sameDay(*last, now) {
		return current + 1
	}
	return 1
}
