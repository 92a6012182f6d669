package repository

import (
	"context"

	"github.com/KBARATH13/QuizCraft/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.Col.InsertOne(ctx, user)
	return err
}

func (r *UserRepository) UpdateFields(ctx context.Context, id string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}

// AppendAwards adds newly earned badges and their auto-featured subset in
// one update.
func (r *UserRepository) AppendAwards(ctx context.Context, id string, earned, featured []string) error {
	update := bson.M{
		"$push": bson.M{"badges": bson.M{"$each": earned}},
	}
	if len(featured) > 0 {
		update["$push"].(bson.M)["displayed_badges"] = bson.M{"$each": featured}
	}
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *UserRepository) SetDisplayedBadges(ctx context.Context, id string, badges []string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"displayed_badges": badges}})
	return err
}

// FindTopByPoints returns the leaderboard slice for an optional location
// filter, sorted by points descending.
func (r *UserRepository) FindTopByPoints(ctx context.Context, filter bson.M, limit int64) ([]models.User, error) {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "points", Value: -1}}).
		SetLimit(limit)
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.User
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var users []models.User
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// IsInTopByPoints reports whether the user currently ranks within the top
// limit users by points.
func (r *UserRepository) IsInTopByPoints(ctx context.Context, userID string, limit int) (bool, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "points", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"_id": 1})
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return false, err
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var row struct {
			ID string `bson:"_id"`
		}
		if err := cur.Decode(&row); err != nil {
			return false, err
		}
		if row.ID == userID {
			return true, nil
		}
	}
	return false, cur.Err()
}

func (r *UserRepository) AddFriendRequest(ctx context.Context, senderID, recipientID string) error {
	if _, err := r.Col.UpdateOne(ctx, bson.M{"_id": senderID},
		bson.M{"$addToSet": bson.M{"sent_friend_requests": recipientID}}); err != nil {
		return err
	}
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": recipientID},
		bson.M{"$addToSet": bson.M{"received_friend_requests": senderID}})
	return err
}

func (r *UserRepository) AcceptFriendRequest(ctx context.Context, userID, requesterID string) error {
	if _, err := r.Col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$addToSet": bson.M{"friends": requesterID},
		"$pull":     bson.M{"received_friend_requests": requesterID},
	}); err != nil {
		return err
	}
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": requesterID}, bson.M{
		"$addToSet": bson.M{"friends": userID},
		"$pull":     bson.M{"sent_friend_requests": userID},
	})
	return err
}

func (r *UserRepository) RemoveFriend(ctx context.Context, userID, friendID string) error {
	if _, err := r.Col.UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"friends": friendID}}); err != nil {
		return err
	}
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": friendID},
		bson.M{"$pull": bson.M{"friends": userID}})
	return err
}
