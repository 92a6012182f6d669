package models

import "time"

type AttemptResult struct {
	QuestionText  string `bson:"question_text" json:"questionText"`
	QuestionTopic string `bson:"question_topic" json:"questionTopic"`
	IsCorrect     bool   `bson:"is_correct" json:"isCorrect"`
}

type QuizAttempt struct {
	ID              string          `bson:"_id,omitempty" json:"id"`
	UserID          string          `bson:"user_id" json:"userId"`
	QuizID          string          `bson:"quiz_id" json:"quizId"`
	Score           int             `bson:"score" json:"score"`
	TotalQuestions  int             `bson:"total_questions" json:"totalQuestions"`
	DetailedResults []AttemptResult `bson:"detailed_results" json:"detailedResults"`
	TimeTaken       int             `bson:"time_taken" json:"timeTaken"`
	CreatedAt       time.Time       `bson:"created_at" json:"createdAt"`
}
