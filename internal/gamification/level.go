package gamification

// MaxLevel is the level cap; progress beyond it is not computed.
const MaxLevel = 50

// LevelInfo is derived from cumulative XP, never stored.
type LevelInfo struct {
	Level                   int `json:"level"`
	XPForCurrentLevel       int `json:"xpForCurrentLevel"`
	XPToNextLevel           int `json:"xpToNextLevel"`
	XPProgress              int `json:"xpProgress"`
	XPRemainingForNextLevel int `json:"xpRemainingForNextLevel"`
}

// CalculateLevel maps cumulative XP to a level and progress within it.
// Level 0 covers xp < 10; advancing from level i to i+1 costs 10*(i+1) XP,
// so the cumulative thresholds run 10, 30, 60, 100, ... up to the cap.
func CalculateLevel(xp int) LevelInfo {
	if xp < 10 {
		return LevelInfo{
			Level:                   0,
			XPForCurrentLevel:       0,
			XPToNextLevel:           10,
			XPProgress:              xp,
			XPRemainingForNextLevel: 10 - xp,
		}
	}

	cumulative := 10 // XP needed to reach level 1
	for i := 1; i < MaxLevel; i++ {
		needed := 10 * (i + 1)
		if xp < cumulative+needed {
			return LevelInfo{
				Level:                   i,
				XPForCurrentLevel:       cumulative,
				XPToNextLevel:           cumulative + needed,
				XPProgress:              xp - cumulative,
				XPRemainingForNextLevel: cumulative + needed - xp,
			}
		}
		cumulative += needed
	}

	return LevelInfo{
		Level:                   MaxLevel,
		XPForCurrentLevel:       cumulative,
		XPToNextLevel:           cumulative, // no next level
		XPProgress:              xp - cumulative,
		XPRemainingForNextLevel: 0,
	}
}
