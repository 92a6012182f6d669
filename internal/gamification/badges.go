package gamification

import "github.com/KBARATH13/QuizCraft/internal/models"

// DefaultBadges is the static badge definition table seeded into the badge
// collection when it is empty.
var DefaultBadges = []models.Badge{
	// Level badges
	{Name: "Newbie", Icon: "fas fa-baby", Description: "Just starting out.", Phrase: "Welcome to the club!", Criteria: models.BadgeCriteria{Type: string(CriteriaLevel), Value: 1}},
	{Name: "Apprentice", Icon: "fas fa-child", Description: "You're learning the ropes.", Phrase: "Keep up the great work!", Criteria: models.BadgeCriteria{Type: string(CriteriaLevel), Value: 5}},
	{Name: "Journeyman", Icon: "fas fa-route", Description: "You're on your way.", Phrase: "The journey is the reward.", Criteria: models.BadgeCriteria{Type: string(CriteriaLevel), Value: 10}},
	{Name: "Master", Icon: "fas fa-crown", Description: "You've achieved mastery.", Phrase: "All hail the master!", Criteria: models.BadgeCriteria{Type: string(CriteriaLevel), Value: 20}},
	{Name: "Legend", Icon: "fas fa-star", Description: "Your name will be remembered.", Phrase: "A true legend!", Criteria: models.BadgeCriteria{Type: string(CriteriaLevel), Value: 50}},
	// Achievement badges
	{Name: "First Quiz", Icon: "fas fa-pencil-alt", Description: "You've completed your first quiz.", Phrase: "The first of many!", Criteria: models.BadgeCriteria{Type: string(CriteriaQuizzesCompleted), Value: 1}},
	{Name: "Quiz Whiz", Icon: "fas fa-graduation-cap", Description: "You've completed 10 quizzes.", Phrase: "You're a real quiz whiz!", Criteria: models.BadgeCriteria{Type: string(CriteriaQuizzesCompleted), Value: 10}},
	{Name: "Perfect Score", Icon: "fas fa-bullseye", Description: "You got a perfect score on a quiz.", Phrase: "Bullseye!", Criteria: models.BadgeCriteria{Type: string(CriteriaPerfectScore), Value: 1}},
	{Name: "Hot Streak", Icon: "fas fa-fire", Description: "You've completed 3 quizzes in a row.", Phrase: "You're on fire!", Criteria: models.BadgeCriteria{Type: string(CriteriaStreak), Value: 3}},
	{Name: "Creator", Icon: "fas fa-hammer", Description: "You've created your first quiz.", Phrase: "Now you're a creator!", Criteria: models.BadgeCriteria{Type: string(CriteriaCreate), Value: 1}},
	{Name: "Scholar", Icon: "fas fa-book-open", Description: "You've explored a variety of quiz categories.", Phrase: "A true scholar!", Criteria: models.BadgeCriteria{Type: string(CriteriaCategory), Value: 5}},
	{Name: "Comet", Icon: "fas fa-meteor", Description: "You answered 20 questions in a single quiz.", Phrase: "Blazing fast!", Criteria: models.BadgeCriteria{Type: string(CriteriaSpeed), Value: 20}},
	{Name: "Treasurer", Icon: "fas fa-coins", Description: "You've earned 1000 points.", Phrase: "Rich in knowledge!", Criteria: models.BadgeCriteria{Type: string(CriteriaPoints), Value: 1000}},
	{Name: "Collector", Icon: "fas fa-gem", Description: "You've collected 5 badges.", Phrase: "A fine collection!", Criteria: models.BadgeCriteria{Type: string(CriteriaBadgeCount), Value: 5}},
	{Name: "Energizer", Icon: "fas fa-bolt", Description: "You've played quizzes for 7 days in a row.", Phrase: "Full of energy!", Criteria: models.BadgeCriteria{Type: string(CriteriaStreak), Value: 7}},
	{Name: "Mastermind", Icon: "fas fa-brain", Description: "You've aced a quiz in the 'Science' category.", Phrase: "A true mastermind!", Criteria: models.BadgeCriteria{Type: string(CriteriaCategoryAce), Value: "Science"}},
	{Name: "Socialite", Icon: "fas fa-users", Description: "You've invited a friend.", Phrase: "The more the merrier!", Criteria: models.BadgeCriteria{Type: string(CriteriaFriendsInvited), Value: 1}},
	{Name: "Night Owl", Icon: "fas fa-moon", Description: "You've completed a quiz after midnight.", Phrase: "Hoot hoot!", Criteria: models.BadgeCriteria{Type: string(CriteriaQuizAfterHour), Value: 23}},
	{Name: "Early Bird", Icon: "fas fa-sun", Description: "You've completed a quiz before 6 AM.", Phrase: "The early bird gets the worm!", Criteria: models.BadgeCriteria{Type: string(CriteriaQuizBeforeHour), Value: 6}},
	{Name: "Scientist", Icon: "fas fa-microscope", Description: "You've completed a quiz on 'Biology'.", Phrase: "For science!", Criteria: models.BadgeCriteria{Type: string(CriteriaTopicCompleted), Value: "Biology"}},
	{Name: "Globetrotter", Icon: "fas fa-globe", Description: "You've completed a quiz on 'Geography'.", Phrase: "Around the world!", Criteria: models.BadgeCriteria{Type: string(CriteriaTopicCompleted), Value: "Geography"}},
	{Name: "Hydrated", Icon: "fas fa-tint", Description: "You've completed a quiz on 'Chemistry'.", Phrase: "Stay hydrated!", Criteria: models.BadgeCriteria{Type: string(CriteriaTopicCompleted), Value: "Chemistry"}},
	{Name: "Champion", Icon: "fas fa-trophy", Description: "You've reached the top of the leaderboard.", Phrase: "The champion is here!", Criteria: models.BadgeCriteria{Type: string(CriteriaLeaderboard), Value: 1}},
	{Name: "Consistent", Icon: "fas fa-chart-line", Description: "You've maintained a 5-day streak.", Phrase: "Consistency is key!", Criteria: models.BadgeCriteria{Type: string(CriteriaStreak), Value: 5}},
	{Name: "Weekly Planner", Icon: "fas fa-calendar-check", Description: "You started your week with a quiz!", Phrase: "A great start to the week!", Criteria: models.BadgeCriteria{Type: string(CriteriaDayOfWeek), Value: 1}},
}
