package gamification

import "fmt"

// CriteriaType enumerates the badge award rules. Stored as strings in the
// badge collection; parsed to a typed constant before evaluation so the
// dispatch table stays exhaustive.
type CriteriaType string

const (
	CriteriaLevel            CriteriaType = "level"
	CriteriaQuizzesCompleted CriteriaType = "quizzesCompleted"
	CriteriaPerfectScore     CriteriaType = "perfectScore"
	CriteriaStreak           CriteriaType = "streak"
	CriteriaPoints           CriteriaType = "points"
	CriteriaCreate           CriteriaType = "create"
	CriteriaCategory         CriteriaType = "category"
	CriteriaSpeed            CriteriaType = "speed"
	CriteriaBadgeCount       CriteriaType = "badge"
	CriteriaCategoryAce      CriteriaType = "category_ace"
	CriteriaFriendsInvited   CriteriaType = "friends_invited"
	CriteriaQuizAfterHour    CriteriaType = "quiz_after_hour"
	CriteriaQuizBeforeHour   CriteriaType = "quiz_before_hour"
	CriteriaTopicCompleted   CriteriaType = "topic_completed"
	CriteriaLeaderboard      CriteriaType = "leaderboard"
	CriteriaDayOfWeek        CriteriaType = "day_of_week"
)

var knownCriteria = map[CriteriaType]struct{}{
	CriteriaLevel:            {},
	CriteriaQuizzesCompleted: {},
	CriteriaPerfectScore:     {},
	CriteriaStreak:           {},
	CriteriaPoints:           {},
	CriteriaCreate:           {},
	CriteriaCategory:         {},
	CriteriaSpeed:            {},
	CriteriaBadgeCount:       {},
	CriteriaCategoryAce:      {},
	CriteriaFriendsInvited:   {},
	CriteriaQuizAfterHour:    {},
	CriteriaQuizBeforeHour:   {},
	CriteriaTopicCompleted:   {},
	CriteriaLeaderboard:      {},
	CriteriaDayOfWeek:        {},
}

// ParseCriteriaType rejects criteria strings the engine has no predicate
// for, so a bad badge row is skipped instead of silently never awarded.
func ParseCriteriaType(s string) (CriteriaType, error) {
	ct := CriteriaType(s)
	if _, ok := knownCriteria[ct]; !ok {
		return "", fmt.Errorf("unknown badge criteria type %q", s)
	}
	return ct, nil
}
