package models

import "time"

type Location struct {
	Country      string `bson:"country" json:"country"`
	Subdivision1 string `bson:"subdivision1" json:"subdivision1"`
	Subdivision2 string `bson:"subdivision2" json:"subdivision2"`
}

type User struct {
	ID                    string     `bson:"_id,omitempty" json:"id"`
	Username              string     `bson:"username" json:"username"`
	Email                 string     `bson:"email" json:"email"`
	Role                  string     `bson:"role" json:"role"`
	ProfilePicture        string     `bson:"profile_picture" json:"profilePicture"`
	Streaks               int        `bson:"streaks" json:"streaks"`
	Points                int        `bson:"points" json:"points"`
	XP                    int        `bson:"xp" json:"xp"`
	Level                 int        `bson:"level" json:"level"`
	Badges                []string   `bson:"badges" json:"badges"`
	DisplayedBadges       []string   `bson:"displayed_badges" json:"displayedBadges"`
	LastDailyChallengeAt  *time.Time `bson:"last_daily_challenge_at,omitempty" json:"lastDailyChallengeDate,omitempty"`
	CompletedDailyQuizzes int        `bson:"completed_daily_quizzes" json:"completedDailyQuizzes"`
	Classrooms            []string   `bson:"classrooms" json:"classrooms"`
	Friends               []string   `bson:"friends" json:"friends"`
	SentFriendRequests    []string   `bson:"sent_friend_requests" json:"sentFriendRequests"`
	ReceivedFriendRequest []string   `bson:"received_friend_requests" json:"receivedFriendRequests"`
	Location              Location   `bson:"location" json:"location"`
}

// HasBadge reports whether the user already earned the named badge.
func (u *User) HasBadge(name string) bool {
	for _, b := range u.Badges {
		if b == name {
			return true
		}
	}
	return false
}
