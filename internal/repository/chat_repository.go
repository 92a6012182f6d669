package repository

import (
	"context"
	"time"

	"github.com/KBARATH13/QuizCraft/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatRepository struct {
	Rooms    *mongo.Collection
	Messages *mongo.Collection
}

func NewChatRepository(db *mongo.Database) *ChatRepository {
	return &ChatRepository{
		Rooms:    db.Collection("chat_rooms"),
		Messages: db.Collection("chat_messages"),
	}
}

func (r *ChatRepository) RoomByID(ctx context.Context, id string) (*models.ChatRoom, error) {
	var room models.ChatRoom
	err := r.Rooms.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *ChatRepository) SetLastMessage(ctx context.Context, roomID, messageID string) error {
	_, err := r.Rooms.UpdateOne(ctx, bson.M{"_id": roomID},
		bson.M{"$set": bson.M{"last_message_id": messageID}})
	return err
}

func (r *ChatRepository) CreateMessage(ctx context.Context, msg *models.ChatMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	_, err := r.Messages.InsertOne(ctx, msg)
	return err
}

// RecentMessages returns the latest messages of a room in chronological
// order.
func (r *ChatRepository) RecentMessages(ctx context.Context, roomID string, limit int64) ([]models.ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cur, err := r.Messages.Find(ctx, bson.M{"chat_room_id": roomID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var messages []models.ChatMessage
	for cur.Next(ctx) {
		var m models.ChatMessage
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	// Reverse into chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *ChatRepository) MessageByID(ctx context.Context, id string) (*models.ChatMessage, error) {
	var msg models.ChatMessage
	err := r.Messages.FindOne(ctx, bson.M{"_id": id}).Decode(&msg)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *ChatRepository) MarkRead(ctx context.Context, messageID, userID string) error {
	_, err := r.Messages.UpdateOne(ctx, bson.M{"_id": messageID},
		bson.M{"$addToSet": bson.M{"read_by": userID}})
	return err
}
