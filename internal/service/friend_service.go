package service

import (
	"context"
	"errors"

	"github.com/KBARATH13/QuizCraft/internal/event"
	"github.com/KBARATH13/QuizCraft/internal/gamification"
	"github.com/KBARATH13/QuizCraft/internal/models"
	"github.com/KBARATH13/QuizCraft/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

type FriendService struct {
	Users     *repository.UserRepository
	Engine    *gamification.Engine
	Publisher *event.EventPublisher
}

func NewFriendService(users *repository.UserRepository, engine *gamification.Engine, publisher *event.EventPublisher) *FriendService {
	return &FriendService{Users: users, Engine: engine, Publisher: publisher}
}

func (s *FriendService) findUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Users.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	return user, err
}

func (s *FriendService) SendRequest(ctx context.Context, senderID, recipientID string) error {
	if senderID == recipientID {
		return errors.New("cannot send a friend request to yourself")
	}
	sender, err := s.findUser(ctx, senderID)
	if err != nil {
		return err
	}
	if _, err := s.findUser(ctx, recipientID); err != nil {
		return err
	}
	for _, f := range sender.Friends {
		if f == recipientID {
			return errors.New("already friends")
		}
	}
	for _, r := range sender.SentFriendRequests {
		if r == recipientID {
			return errors.New("friend request already sent")
		}
	}
	return s.Users.AddFriendRequest(ctx, senderID, recipientID)
}

// Accept confirms a pending request and re-evaluates badges for both
// users, since the friend count of each just changed.
func (s *FriendService) Accept(ctx context.Context, userID, requesterID string) error {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	pending := false
	for _, r := range user.ReceivedFriendRequest {
		if r == requesterID {
			pending = true
			break
		}
	}
	if !pending {
		return errors.New("no pending friend request from this user")
	}
	if err := s.Users.AcceptFriendRequest(ctx, userID, requesterID); err != nil {
		return err
	}
	if s.Publisher != nil {
		s.Publisher.Publish("friend.accepted", map[string]any{
			"userId":   userID,
			"friendId": requesterID,
		})
	}
	s.Engine.CheckAndAward(ctx, userID)
	s.Engine.CheckAndAward(ctx, requesterID)
	return nil
}

func (s *FriendService) Remove(ctx context.Context, userID, friendID string) error {
	if _, err := s.findUser(ctx, userID); err != nil {
		return err
	}
	return s.Users.RemoveFriend(ctx, userID, friendID)
}

type FriendSummary struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
	Level          int    `json:"level"`
	Points         int    `json:"points"`
}

func (s *FriendService) List(ctx context.Context, userID string) ([]FriendSummary, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(user.Friends) == 0 {
		return []FriendSummary{}, nil
	}
	friends, err := s.Users.FindByIDs(ctx, user.Friends)
	if err != nil {
		return nil, err
	}
	summaries := make([]FriendSummary, 0, len(friends))
	for _, f := range friends {
		summaries = append(summaries, FriendSummary{
			ID:             f.ID,
			Username:       f.Username,
			ProfilePicture: f.ProfilePicture,
			Level:          f.Level,
			Points:         f.Points,
		})
	}
	return summaries, nil
}
