package repository

import (
	"context"
	"errors"
	"time"

	"github.com/KBARATH13/QuizCraft/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection("quiz_attempts")}
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *models.QuizAttempt) error {
	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}
	_, err := r.Col.InsertOne(ctx, attempt)
	return err
}

func (r *AttemptRepository) FindByUserAndQuiz(ctx context.Context, userID, quizID string) (*models.QuizAttempt, error) {
	var attempt models.QuizAttempt
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID, "quiz_id": quizID}).Decode(&attempt)
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *AttemptRepository) FindByUser(ctx context.Context, userID string) ([]models.QuizAttempt, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var attempts []models.QuizAttempt
	for cur.Next(ctx) {
		var a models.QuizAttempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}

func (r *AttemptRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"user_id": userID})
}

func (r *AttemptRepository) DistinctTopics(ctx context.Context, userID string) ([]string, error) {
	values, err := r.Col.Distinct(ctx, "detailed_results.question_topic", bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			topics = append(topics, s)
		}
	}
	return topics, nil
}

func (r *AttemptRepository) exists(ctx context.Context, filter bson.M) (bool, error) {
	err := r.Col.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *AttemptRepository) HasPerfectScore(ctx context.Context, userID string) (bool, error) {
	return r.exists(ctx, bson.M{
		"user_id": userID,
		"$expr":   bson.M{"$eq": bson.A{"$score", "$total_questions"}},
	})
}

// PerfectScoreQuizIDs returns the quizzes the user has aced, for the
// category-ace criteria.
func (r *AttemptRepository) PerfectScoreQuizIDs(ctx context.Context, userID string) ([]string, error) {
	values, err := r.Col.Distinct(ctx, "quiz_id", bson.M{
		"user_id": userID,
		"$expr":   bson.M{"$eq": bson.A{"$score", "$total_questions"}},
	})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids, nil
}

func (r *AttemptRepository) HasAttemptWithQuestionCount(ctx context.Context, userID string, min int) (bool, error) {
	return r.exists(ctx, bson.M{
		"user_id":         userID,
		"total_questions": bson.M{"$gte": min},
	})
}

func (r *AttemptRepository) HasAttemptAtOrAfterHour(ctx context.Context, userID string, hour int) (bool, error) {
	return r.exists(ctx, bson.M{
		"user_id": userID,
		"$expr":   bson.M{"$gte": bson.A{bson.M{"$hour": "$created_at"}, hour}},
	})
}

func (r *AttemptRepository) HasAttemptAtOrBeforeHour(ctx context.Context, userID string, hour int) (bool, error) {
	return r.exists(ctx, bson.M{
		"user_id": userID,
		"$expr":   bson.M{"$lte": bson.A{bson.M{"$hour": "$created_at"}, hour}},
	})
}

// HasAttemptOnWeekday uses mongo $dayOfWeek semantics: 1 is Sunday, 7 is
// Saturday.
func (r *AttemptRepository) HasAttemptOnWeekday(ctx context.Context, userID string, weekday int) (bool, error) {
	return r.exists(ctx, bson.M{
		"user_id": userID,
		"$expr":   bson.M{"$eq": bson.A{bson.M{"$dayOfWeek": "$created_at"}, weekday}},
	})
}

func (r *AttemptRepository) HasTopicAttempt(ctx context.Context, userID, topic string) (bool, error) {
	return r.exists(ctx, bson.M{
		"user_id":                         userID,
		"detailed_results.question_topic": topic,
	})
}
