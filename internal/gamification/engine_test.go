package gamification

import (
	"context"
	"errors"
	"testing"

	"github.com/KBARATH13/QuizCraft/internal/models"
)

// fakeStore returns canned stats and records awards.
type fakeStore struct {
	stats  StatsSnapshot
	badges []models.Badge

	attemptCount int64
	createdCount int64
	topicCount   int64
	perfect      bool
	topByPoints  bool

	statsErr error

	savedEarned   []string
	savedFeatured []string
	saveCalls     int
}

func (f *fakeStore) UserStats(context.Context, string) (*StatsSnapshot, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	stats := f.stats
	return &stats, nil
}

func (f *fakeStore) AllBadges(context.Context) ([]models.Badge, error) { return f.badges, nil }

func (f *fakeStore) QuizAttemptCount(context.Context, string) (int64, error) {
	return f.attemptCount, nil
}
func (f *fakeStore) CreatedQuizCount(context.Context, string) (int64, error) {
	return f.createdCount, nil
}
func (f *fakeStore) DistinctTopicCount(context.Context, string) (int64, error) {
	return f.topicCount, nil
}
func (f *fakeStore) HasPerfectScore(context.Context, string) (bool, error) { return f.perfect, nil }
func (f *fakeStore) HasPerfectScoreInCategory(context.Context, string, string) (bool, error) {
	return false, nil
}
func (f *fakeStore) HasAttemptWithQuestionCount(context.Context, string, int) (bool, error) {
	return false, nil
}
func (f *fakeStore) HasAttemptAtOrAfterHour(context.Context, string, int) (bool, error) {
	return false, nil
}
func (f *fakeStore) HasAttemptAtOrBeforeHour(context.Context, string, int) (bool, error) {
	return false, nil
}
func (f *fakeStore) HasAttemptOnWeekday(context.Context, string, int) (bool, error) {
	return false, nil
}
func (f *fakeStore) HasTopicAttempt(context.Context, string, string) (bool, error) {
	return false, nil
}
func (f *fakeStore) IsInTopByPoints(context.Context, string, int) (bool, error) {
	return f.topByPoints, nil
}

func (f *fakeStore) SaveAwards(_ context.Context, _ string, earned, featured []string) error {
	f.saveCalls++
	f.savedEarned = append(f.savedEarned, earned...)
	f.savedFeatured = append(f.savedFeatured, featured...)
	return nil
}

func badge(name, criteriaType string, value interface{}) models.Badge {
	return models.Badge{
		Name:     name,
		Criteria: models.BadgeCriteria{Type: criteriaType, Value: value},
	}
}

func TestCheckAndAwardStatBadges(t *testing.T) {
	store := &fakeStore{
		stats: StatsSnapshot{Level: 5, Streak: 3, Points: 1000},
		badges: []models.Badge{
			badge("Treasurer", "points", 1000),
			badge("Streak Spark", "streak", 3),
			badge("High Roller", "points", 5000),
		},
	}
	engine := NewEngine(store, nil)
	engine.CheckAndAward(context.Background(), "u1")

	want := map[string]bool{"Treasurer": true, "Streak Spark": true}
	if len(store.savedEarned) != len(want) {
		t.Fatalf("earned %v, want exactly %d badges", store.savedEarned, len(want))
	}
	for _, name := range store.savedEarned {
		if !want[name] {
			t.Errorf("unexpected badge %q awarded", name)
		}
	}
	if store.saveCalls != 1 {
		t.Errorf("SaveAwards called %d times, want 1", store.saveCalls)
	}
}

func TestCheckAndAwardIdempotent(t *testing.T) {
	store := &fakeStore{
		stats: StatsSnapshot{
			Points:       2000,
			EarnedBadges: []string{"Treasurer"},
		},
		badges: []models.Badge{badge("Treasurer", "points", 1000)},
	}
	engine := NewEngine(store, nil)
	engine.CheckAndAward(context.Background(), "u1")

	if store.saveCalls != 0 {
		t.Errorf("already-earned badge persisted again: %v", store.savedEarned)
	}
}

func TestCheckAndAwardFeaturedCap(t *testing.T) {
	store := &fakeStore{
		stats: StatsSnapshot{
			Level:          50,
			Streak:         50,
			Points:         100000,
			FriendCount:    50,
			FeaturedBadges: []string{"A", "B", "C"},
		},
		badges: []models.Badge{
			badge("One", "level", 1),
			badge("Two", "streak", 1),
			badge("Three", "points", 1),
			badge("Four", "friends_invited", 1),
		},
	}
	engine := NewEngine(store, nil)
	engine.CheckAndAward(context.Background(), "u1")

	if len(store.savedEarned) != 4 {
		t.Fatalf("earned %v, want 4 badges", store.savedEarned)
	}
	// Three slots were already taken, so only one new badge fits.
	if len(store.savedFeatured) != FeaturedBadgeLimit-3 {
		t.Errorf("featured %v, want %d entries", store.savedFeatured, FeaturedBadgeLimit-3)
	}
}

func TestCheckAndAwardBadgeCountSeesThisPass(t *testing.T) {
	// The badge-count criterion must count badges earned earlier in the
	// same evaluation pass.
	store := &fakeStore{
		stats: StatsSnapshot{Level: 10, Streak: 10, Points: 10},
		badges: []models.Badge{
			badge("One", "level", 1),
			badge("Two", "streak", 1),
			badge("Three", "points", 1),
			badge("Collector", "badge", 3),
		},
	}
	engine := NewEngine(store, nil)
	engine.CheckAndAward(context.Background(), "u1")

	found := false
	for _, name := range store.savedEarned {
		if name == "Collector" {
			found = true
		}
	}
	if !found {
		t.Errorf("Collector not awarded, earned = %v", store.savedEarned)
	}
}

func TestCheckAndAwardStatsFailure(t *testing.T) {
	store := &fakeStore{statsErr: errors.New("mongo down")}
	engine := NewEngine(store, nil)
	engine.CheckAndAward(context.Background(), "u1")
	if store.saveCalls != 0 {
		t.Error("awards persisted despite stats load failure")
	}
}

func TestCheckAndAwardUnknownCriteriaSkipped(t *testing.T) {
	store := &fakeStore{
		stats: StatsSnapshot{Points: 1000},
		badges: []models.Badge{
			badge("Mystery", "no_such_rule", 1),
			badge("Treasurer", "points", 1000),
		},
	}
	engine := NewEngine(store, nil)
	engine.CheckAndAward(context.Background(), "u1")

	if len(store.savedEarned) != 1 || store.savedEarned[0] != "Treasurer" {
		t.Errorf("earned %v, want only Treasurer", store.savedEarned)
	}
}

func TestParseCriteriaType(t *testing.T) {
	for ct := range knownCriteria {
		if _, err := ParseCriteriaType(string(ct)); err != nil {
			t.Errorf("ParseCriteriaType(%q) = %v", ct, err)
		}
	}
	if _, err := ParseCriteriaType("bogus"); err == nil {
		t.Error("ParseCriteriaType accepted an unknown type")
	}
}

func TestDefaultBadgesCriteriaKnown(t *testing.T) {
	for _, b := range DefaultBadges {
		if _, err := ParseCriteriaType(b.Criteria.Type); err != nil {
			t.Errorf("seed badge %q: %v", b.Name, err)
		}
	}
}
