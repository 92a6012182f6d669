package repository

import (
	"context"

	"github.com/KBARATH13/QuizCraft/internal/gamification"
	"github.com/KBARATH13/QuizCraft/internal/models"
)

// BadgeStore composes the mongo repositories into the read/write surface
// the badge engine evaluates against.
type BadgeStore struct {
	Users    *UserRepository
	Badges   *BadgeRepository
	Attempts *AttemptRepository
	Quizzes  *QuizRepository
}

func NewBadgeStore(users *UserRepository, badges *BadgeRepository, attempts *AttemptRepository, quizzes *QuizRepository) *BadgeStore {
	return &BadgeStore{Users: users, Badges: badges, Attempts: attempts, Quizzes: quizzes}
}

func (s *BadgeStore) UserStats(ctx context.Context, userID string) (*gamification.StatsSnapshot, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &gamification.StatsSnapshot{
		Level:          user.Level,
		Streak:         user.Streaks,
		Points:         user.Points,
		FriendCount:    len(user.Friends),
		EarnedBadges:   user.Badges,
		FeaturedBadges: user.DisplayedBadges,
	}, nil
}

func (s *BadgeStore) AllBadges(ctx context.Context) ([]models.Badge, error) {
	return s.Badges.FindAll(ctx)
}

func (s *BadgeStore) QuizAttemptCount(ctx context.Context, userID string) (int64, error) {
	return s.Attempts.CountByUser(ctx, userID)
}

func (s *BadgeStore) CreatedQuizCount(ctx context.Context, userID string) (int64, error) {
	return s.Quizzes.CountByCreator(ctx, userID)
}

func (s *BadgeStore) DistinctTopicCount(ctx context.Context, userID string) (int64, error) {
	topics, err := s.Attempts.DistinctTopics(ctx, userID)
	if err != nil {
		return 0, err
	}
	return int64(len(topics)), nil
}

func (s *BadgeStore) HasPerfectScore(ctx context.Context, userID string) (bool, error) {
	return s.Attempts.HasPerfectScore(ctx, userID)
}

func (s *BadgeStore) HasPerfectScoreInCategory(ctx context.Context, userID, category string) (bool, error) {
	quizIDs, err := s.Attempts.PerfectScoreQuizIDs(ctx, userID)
	if err != nil {
		return false, err
	}
	return s.Quizzes.AnyInCategory(ctx, quizIDs, category)
}

func (s *BadgeStore) HasAttemptWithQuestionCount(ctx context.Context, userID string, min int) (bool, error) {
	return s.Attempts.HasAttemptWithQuestionCount(ctx, userID, min)
}

func (s *BadgeStore) HasAttemptAtOrAfterHour(ctx context.Context, userID string, hour int) (bool, error) {
	return s.Attempts.HasAttemptAtOrAfterHour(ctx, userID, hour)
}

func (s *BadgeStore) HasAttemptAtOrBeforeHour(ctx context.Context, userID string, hour int) (bool, error) {
	return s.Attempts.HasAttemptAtOrBeforeHour(ctx, userID, hour)
}

func (s *BadgeStore) HasAttemptOnWeekday(ctx context.Context, userID string, weekday int) (bool, error) {
	return s.Attempts.HasAttemptOnWeekday(ctx, userID, weekday)
}

func (s *BadgeStore) HasTopicAttempt(ctx context.Context, userID, topic string) (bool, error) {
	return s.Attempts.HasTopicAttempt(ctx, userID, topic)
}

func (s *BadgeStore) IsInTopByPoints(ctx context.Context, userID string, limit int) (bool, error) {
	return s.Users.IsInTopByPoints(ctx, userID, limit)
}

func (s *BadgeStore) SaveAwards(ctx context.Context, userID string, earned, featured []string) error {
	return s.Users.AppendAwards(ctx, userID, earned, featured)
}
