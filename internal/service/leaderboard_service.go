package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KBARATH13/QuizCraft/internal/gamification"
	"github.com/KBARATH13/QuizCraft/internal/repository"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	leaderboardSize     = 100
	leaderboardCacheTTL = 60 * time.Second
)

type LeaderboardEntry struct {
	Rank           int    `json:"rank"`
	UserID         string `json:"userId"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
	Points         int    `json:"points"`
	Level          int    `json:"level"`
}

// LeaderboardService ranks users by points. Results are cached briefly in
// redis; on a cache miss or an unavailable cache it falls through to mongo.
type LeaderboardService struct {
	Users *repository.UserRepository
	Cache *redis.Client
}

func NewLeaderboardService(users *repository.UserRepository, cache *redis.Client) *LeaderboardService {
	return &LeaderboardService{Users: users, Cache: cache}
}

// Top returns the global leaderboard, optionally narrowed to a location.
// Empty filter values are ignored.
func (s *LeaderboardService) Top(ctx context.Context, country, subdivision1, subdivision2 string) ([]LeaderboardEntry, error) {
	key := fmt.Sprintf("leaderboard:%s:%s:%s", country, subdivision1, subdivision2)
	if entries, ok := s.cached(ctx, key); ok {
		return entries, nil
	}

	filter := bson.M{}
	if country != "" {
		filter["location.country"] = country
	}
	if subdivision1 != "" {
		filter["location.subdivision1"] = subdivision1
	}
	if subdivision2 != "" {
		filter["location.subdivision2"] = subdivision2
	}

	entries, err := s.rank(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, entries)
	return entries, nil
}

// Classroom ranks the members of one classroom.
func (s *LeaderboardService) Classroom(ctx context.Context, classroomID string) ([]LeaderboardEntry, error) {
	key := "leaderboard:classroom:" + classroomID
	if entries, ok := s.cached(ctx, key); ok {
		return entries, nil
	}
	entries, err := s.rank(ctx, bson.M{"classrooms": classroomID})
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, entries)
	return entries, nil
}

func (s *LeaderboardService) rank(ctx context.Context, filter bson.M) ([]LeaderboardEntry, error) {
	users, err := s.Users.FindTopByPoints(ctx, filter, leaderboardSize)
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, LeaderboardEntry{
			Rank:           i + 1,
			UserID:         u.ID,
			Username:       u.Username,
			ProfilePicture: u.ProfilePicture,
			Points:         u.Points,
			Level:          gamification.CalculateLevel(u.XP).Level,
		})
	}
	return entries, nil
}

func (s *LeaderboardService) cached(ctx context.Context, key string) ([]LeaderboardEntry, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var entries []LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (s *LeaderboardService) store(ctx context.Context, key string, entries []LeaderboardEntry) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	s.Cache.Set(ctx, key, raw, leaderboardCacheTTL)
}
