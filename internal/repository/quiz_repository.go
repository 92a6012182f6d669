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

type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	if quiz.ID == "" {
		quiz.ID = uuid.NewString()
	}
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = time.Now()
	}
	_, err := r.Col.InsertOne(ctx, quiz)
	return err
}

func (r *QuizRepository) FindByID(ctx context.Context, id string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&quiz)
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindAll lists quizzes, optionally filtered by a case-insensitive title
// search.
func (r *QuizRepository) FindAll(ctx context.Context, search string) ([]models.Quiz, error) {
	filter := bson.M{}
	if search != "" {
		filter["title"] = bson.M{"$regex": search, "$options": "i"}
	}
	cur, err := r.Col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var quizzes []models.Quiz
	for cur.Next(ctx) {
		var q models.Quiz
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, nil
}

func (r *QuizRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *QuizRepository) CountByCreator(ctx context.Context, userID string) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"created_by": userID})
}

func (r *QuizRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	values, err := r.Col.Distinct(ctx, "categories", bson.M{})
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

// AnyInCategory reports whether any of the given quizzes carries the
// category.
func (r *QuizRepository) AnyInCategory(ctx context.Context, quizIDs []string, category string) (bool, error) {
	if len(quizIDs) == 0 {
		return false, nil
	}
	err := r.Col.FindOne(ctx, bson.M{
		"_id":        bson.M{"$in": quizIDs},
		"categories": category,
	}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
