package repository

import (
	"context"

	"github.com/KBARATH13/QuizCraft/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BadgeRepository struct {
	Col *mongo.Collection
}

func NewBadgeRepository(db *mongo.Database) *BadgeRepository {
	return &BadgeRepository{Col: db.Collection("badges")}
}

func (r *BadgeRepository) FindAll(ctx context.Context) ([]models.Badge, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var badges []models.Badge
	for cur.Next(ctx) {
		var b models.Badge
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		badges = append(badges, b)
	}
	return badges, nil
}

func (r *BadgeRepository) Count(ctx context.Context) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{})
}

// SeedIfEmpty inserts the given badge definitions when the collection has
// none yet.
func (r *BadgeRepository) SeedIfEmpty(ctx context.Context, badges []models.Badge) error {
	n, err := r.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(badges))
	for _, b := range badges {
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		docs = append(docs, b)
	}
	_, err = r.Col.InsertMany(ctx, docs)
	return err
}
