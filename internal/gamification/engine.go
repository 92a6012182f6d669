package gamification

import (
	"context"
	"log"
	"sync"

	"github.com/KBARATH13/QuizCraft/internal/event"
	"github.com/KBARATH13/QuizCraft/internal/metrics"
	"github.com/KBARATH13/QuizCraft/internal/models"
)

// FeaturedBadgeLimit caps how many badges a profile features. Newly earned
// badges are auto-featured while the user is under the cap.
const FeaturedBadgeLimit = 4

// StatsSnapshot is the per-user state the cheap predicates read directly;
// the rest of the criteria go through aggregate Store queries.
type StatsSnapshot struct {
	Level          int
	Streak         int
	Points         int
	FriendCount    int
	EarnedBadges   []string
	FeaturedBadges []string
}

// Store is the read/write surface the badge engine needs. Implemented by
// the mongo repositories; faked in tests.
type Store interface {
	UserStats(ctx context.Context, userID string) (*StatsSnapshot, error)
	AllBadges(ctx context.Context) ([]models.Badge, error)

	QuizAttemptCount(ctx context.Context, userID string) (int64, error)
	CreatedQuizCount(ctx context.Context, userID string) (int64, error)
	DistinctTopicCount(ctx context.Context, userID string) (int64, error)
	HasPerfectScore(ctx context.Context, userID string) (bool, error)
	HasPerfectScoreInCategory(ctx context.Context, userID, category string) (bool, error)
	HasAttemptWithQuestionCount(ctx context.Context, userID string, min int) (bool, error)
	HasAttemptAtOrAfterHour(ctx context.Context, userID string, hour int) (bool, error)
	HasAttemptAtOrBeforeHour(ctx context.Context, userID string, hour int) (bool, error)
	HasAttemptOnWeekday(ctx context.Context, userID string, weekday int) (bool, error)
	HasTopicAttempt(ctx context.Context, userID, topic string) (bool, error)
	IsInTopByPoints(ctx context.Context, userID string, limit int) (bool, error)

	SaveAwards(ctx context.Context, userID string, earned, featured []string) error
}

type evalEnv struct {
	store   Store
	userID  string
	stats   *StatsSnapshot
	earned  map[string]struct{} // grows as badges are awarded in this pass
	badgeCt int
}

type predicate func(ctx context.Context, env *evalEnv, criteria models.BadgeCriteria) (bool, error)

var predicates = map[CriteriaType]predicate{
	CriteriaLevel: func(_ context.Context, env *evalEnv, c models.BadgeCriteria) (bool, error) {
		return env.stats.Level >= c.IntValue(), nil
	},
	CriteriaStreak: func(_ context.Context, env *evalEnv, c models.BadgeCriteria) (bool, error) {
		return env.stats.Streak >= c.IntValue(), nil
	},
	CriteriaPoints: func(_ context.Context, env *evalEnv, c models.BadgeCriteria) (bool, error) {
		return env.stats.Points >= c.IntValue(), nil
	},
	CriteriaFriendsInvited: func(_ context.Context, env *evalEnv, c models.BadgeCriteria) (bool, error) {
		return env.stats.FriendCount >= c.IntValue(), nil
	},
	CriteriaBadgeCount: func(_ context.Context, env *evalEnv, c models.BadgeCriteria) (bool, error) {
		return env.badgeCt >= c.IntValue(), nil
	},
	CriteriaQuizzesCompleted: func(ctx context.Context, env *evalEnv, c models.BadgeCriteria) (bool, error) {
		n, err := env.store.QuizAttemptCount(ctx, env.userID)
		return n >= int64(c.IntValue()), err
	},
	CriteriaCreate: func(ctx context.Context, env *evalEnv, c models.BadgeCriteria) (bool, error) {
		n, err := env.store.CreatedQuizCount(ctx, env.userID)
		return n >= int64(c.IntValue()), err
	},
	CriteriaCategory: func(ctx context.Context, env *evalEnv, c models.BadgeCriteria) (bool, error) {
		n, err := env.store.DistinctTopicCount(ctx, env.userID)
		return n >= int64(c.IntValue()), err
	},
	CriteriaPerfectScore: func(ctx context.Context, env *evalEnv, _ models.BadgeCriteria) (bool, error) {
		return env.store.HasPerfectScore(ctx, env.userID)
	},
	CriteriaCategoryAce: func(ctx context.Context, env *evalEnv, c models.BadgeCriteria) (bool, error) {
		return env.store.HasPerfectScoreInCategory(ctx, env.userID, c.StringValue())
	},
	CriteriaSpeed: func(ctx context.Context, env *evalEnv, c models.BadgeCriteria) (bool, error) {
		return env.store.HasAttemptWithQuestionCount(ctx, env.userID, c.IntValue())
	},
	CriteriaQuizAfterHour: func(ctx context.Context, env *evalEnv, c models.BadgeCriteria) (bool, error) {
		return env.store.HasAttemptAtOrAfterHour(ctx, env.userID, c.IntValue())
	},
	CriteriaQuizBeforeHour: func(ctx context.Context, env *evalEnv, c models.BadgeCriteria) (bool, error) {
		return env.store.HasAttemptAtOrBeforeHour(ctx, env.userID, c.IntValue())
	},
	CriteriaDayOfWeek: func(ctx context.Context, env *evalEnv, c models.BadgeCriteria) (bool, error) {
		return env.store.HasAttemptOnWeekday(ctx, env.userID, c.IntValue())
	},
	CriteriaTopicCompleted: func(ctx context.Context, env *evalEnv, c models.BadgeCriteria) (bool, error) {
		return env.store.HasTopicAttempt(ctx, env.userID, c.StringValue())
	},
	CriteriaLeaderboard: func(ctx context.Context, env *evalEnv, c models.BadgeCriteria) (bool, error) {
		return env.store.IsInTopByPoints(ctx, env.userID, c.IntValue())
	},
}

// Engine evaluates the badge table against a user's stats and awards
// whatever is newly earned. Evaluations for the same user are serialized
// by a per-user mutex so concurrent triggers (login plus quiz submit) do
// not race on the earned set.
type Engine struct {
	store     Store
	publisher *event.EventPublisher
	locks     sync.Map // userID -> *sync.Mutex
}

func NewEngine(store Store, publisher *event.EventPublisher) *Engine {
	return &Engine{store: store, publisher: publisher}
}

func (e *Engine) lockFor(userID string) *sync.Mutex {
	mu, _ := e.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// CheckAndAward runs one evaluation pass. Failures never surface to the
// triggering action: predicate errors skip that badge, and any awards
// earned before a failure are still persisted.
func (e *Engine) CheckAndAward(ctx context.Context, userID string) {
	mu := e.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	stats, err := e.store.UserStats(ctx, userID)
	if err != nil {
		log.Printf("Badge evaluation skipped for user %s: %v", userID, err)
		return
	}
	badges, err := e.store.AllBadges(ctx)
	if err != nil {
		log.Printf("Badge evaluation skipped for user %s: %v", userID, err)
		return
	}

	env := &evalEnv{
		store:   e.store,
		userID:  userID,
		stats:   stats,
		earned:  make(map[string]struct{}, len(stats.EarnedBadges)),
		badgeCt: len(stats.EarnedBadges),
	}
	for _, name := range stats.EarnedBadges {
		env.earned[name] = struct{}{}
	}

	var newlyEarned []string
	var newlyFeatured []string
	featuredCount := len(stats.FeaturedBadges)

	for _, badge := range badges {
		if _, has := env.earned[badge.Name]; has {
			continue
		}
		ct, err := ParseCriteriaType(badge.Criteria.Type)
		if err != nil {
			log.Printf("Skipping badge %q: %v", badge.Name, err)
			continue
		}
		ok, err := predicates[ct](ctx, env, badge.Criteria)
		if err != nil {
			log.Printf("Badge %q evaluation failed for user %s: %v", badge.Name, userID, err)
			continue
		}
		if !ok {
			continue
		}

		env.earned[badge.Name] = struct{}{}
		env.badgeCt++
		newlyEarned = append(newlyEarned, badge.Name)
		if featuredCount < FeaturedBadgeLimit {
			newlyFeatured = append(newlyFeatured, badge.Name)
			featuredCount++
		}
	}

	if len(newlyEarned) == 0 {
		return
	}

	if err := e.store.SaveAwards(ctx, userID, newlyEarned, newlyFeatured); err != nil {
		log.Printf("Failed to persist badge awards for user %s: %v", userID, err)
		return
	}

	metrics.BadgesAwarded.Add(float64(len(newlyEarned)))
	for _, name := range newlyEarned {
		log.Printf("Awarded badge %q to user %s", name, userID)
		if e.publisher != nil {
			e.publisher.Publish("badge.awarded", map[string]any{
				"userId": userID,
				"badge":  name,
			})
		}
	}
}
