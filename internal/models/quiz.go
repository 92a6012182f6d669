package models

import "time"

type QuizQuestion struct {
	QuestionText  string   `bson:"question_text" json:"questionText"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer int      `bson:"correct_answer" json:"correctAnswer"`
	Explanation   string   `bson:"explanation" json:"explanation"`
}

type Quiz struct {
	ID         string         `bson:"_id,omitempty" json:"id"`
	Title      string         `bson:"title" json:"title"`
	Topic      string         `bson:"topic" json:"topic"`
	Categories []string       `bson:"categories" json:"categories"`
	Questions  []QuizQuestion `bson:"questions" json:"questions"`
	CreatedBy  string         `bson:"created_by" json:"createdBy"`
	CreatedAt  time.Time      `bson:"created_at" json:"createdAt"`
}
