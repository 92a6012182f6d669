package service

import (
	"context"
	"errors"

	"github.com/KBARATH13/QuizCraft/internal/models"
	"github.com/KBARATH13/QuizCraft/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

const chatHistorySize = 50

// Broadcaster fans a payload out to every live connection in a room.
// Implemented by the websocket registry.
type Broadcaster interface {
	BroadcastToRoom(roomID string, payload interface{})
}

type ChatService struct {
	Chats       *repository.ChatRepository
	Broadcaster Broadcaster
}

func NewChatService(chats *repository.ChatRepository, broadcaster Broadcaster) *ChatService {
	return &ChatService{Chats: chats, Broadcaster: broadcaster}
}

func (s *ChatService) room(ctx context.Context, roomID, userID string) (*models.ChatRoom, error) {
	room, err := s.Chats.RoomByID(ctx, roomID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New("chat room not found")
	}
	if err != nil {
		return nil, err
	}
	if !room.IsMember(userID) {
		return nil, errors.New("you are not a member of this chat room")
	}
	return room, nil
}

// JoinRoom checks membership and returns the recent history in
// chronological order.
func (s *ChatService) JoinRoom(ctx context.Context, roomID, userID string) ([]models.ChatMessage, error) {
	if _, err := s.room(ctx, roomID, userID); err != nil {
		return nil, err
	}
	return s.Chats.RecentMessages(ctx, roomID, chatHistorySize)
}

// SendMessage persists the message and broadcasts it to the room. The
// sender counts as having read their own message.
func (s *ChatService) SendMessage(ctx context.Context, roomID, userID, content string) (*models.ChatMessage, error) {
	if _, err := s.room(ctx, roomID, userID); err != nil {
		return nil, err
	}
	msg := &models.ChatMessage{
		ChatRoomID: roomID,
		SenderID:   userID,
		Content:    content,
		Type:       "text",
		ReadBy:     []string{userID},
	}
	if err := s.Chats.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	if err := s.Chats.SetLastMessage(ctx, roomID, msg.ID); err != nil {
		return nil, err
	}
	if s.Broadcaster != nil {
		s.Broadcaster.BroadcastToRoom(roomID, map[string]any{
			"type":    "newChatMessage",
			"payload": msg,
		})
	}
	return msg, nil
}

// MarkRead records a read receipt and notifies the room.
func (s *ChatService) MarkRead(ctx context.Context, messageID, userID string) (*models.ChatMessage, error) {
	msg, err := s.Chats.MessageByID(ctx, messageID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New("message not found")
	}
	if err != nil {
		return nil, err
	}
	if _, err := s.room(ctx, msg.ChatRoomID, userID); err != nil {
		return nil, err
	}
	if err := s.Chats.MarkRead(ctx, messageID, userID); err != nil {
		return nil, err
	}
	if s.Broadcaster != nil {
		s.Broadcaster.BroadcastToRoom(msg.ChatRoomID, map[string]any{
			"type": "messageRead",
			"payload": map[string]any{
				"messageId":  messageID,
				"chatRoomId": msg.ChatRoomID,
				"userId":     userID,
			},
		})
	}
	return msg, nil
}
