package models

import "time"

const (
	ChatRoomGlobal    = "global"
	ChatRoomClassroom = "classroom"
	ChatRoomDirect    = "direct"
)

type ChatRoom struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Type          string    `bson:"type" json:"type"`
	Members       []string  `bson:"members" json:"members"`
	LastMessageID string    `bson:"last_message_id,omitempty" json:"lastMessageId,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// IsMember reports whether the user may read and post in the room. Global
// rooms are open to everyone.
func (r *ChatRoom) IsMember(userID string) bool {
	if r.Type == ChatRoomGlobal {
		return true
	}
	for _, m := range r.Members {
		if m == userID {
			return true
		}
	}
	return false
}

type ChatMessage struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	ChatRoomID string    `bson:"chat_room_id" json:"chatRoomId"`
	SenderID   string    `bson:"sender_id" json:"senderId"`
	Content    string    `bson:"content" json:"content"`
	Type       string    `bson:"type" json:"type"`
	ReadBy     []string  `bson:"read_by" json:"readBy"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}
