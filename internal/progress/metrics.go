package progress

import "slices"

// XPPerLevel is the experience needed to advance one level.
const XPPerLevel = 100

// Level returns the level reached with xp experience. Level 1 starts at 0 XP.
func Level(xp int) int {
	return floorDiv(xp, XPPerLevel) + 1
}

// XPToNextLevel returns how much experience is missing to reach the next level.
func XPToNextLevel(xp int) int {
	return Level(xp)*XPPerLevel - xp
}

// LevelProgressPercent returns the progress through the current level, in [0, 100).
func LevelProgressPercent(xp int) float64 {
	base := floorDiv(xp, XPPerLevel) * XPPerLevel
	return float64(xp-base) / XPPerLevel * 100
}

// IsLessonUnlocked reports whether lessonID may be attempted. Lesson 1 is
// always unlocked; any other lesson requires its predecessor to be completed.
func IsLessonUnlocked(lessonID int, completed []int) bool {
	if lessonID == 1 {
		return true
	}
	return IsLessonCompleted(lessonID-1, completed)
}

// IsLessonCompleted reports whether lessonID is in completed.
func IsLessonCompleted(lessonID int, completed []int) bool {
	return slices.Contains(completed, lessonID)
}

// CompletionPercent returns the share of a mission's lessons that are
// completed, in [0, 100]. It returns 0 when totalLessons is not positive.
func CompletionPercent(completed []int, totalLessons int) float64 {
	if totalLessons <= 0 {
		return 0
	}
	n := 0
	for _, id := range completed {
		if id >= 1 && id <= totalLessons {
			n++
		}
	}
	return float64(n) / float64(totalLessons) * 100
}

// Metrics bundles the values derived from a record for presentation.
type Metrics struct {
	Level                int
	XPToNextLevel        int
	LevelProgressPercent float64
	CompletedCount       int
}

// Derive computes the presentation metrics of r.
func Derive(r Record) Metrics {
	return Metrics{
		Level:                Level(r.TotalXP),
		XPToNextLevel:        XPToNextLevel(r.TotalXP),
		LevelProgressPercent: LevelProgressPercent(r.TotalXP),
		CompletedCount:       len(r.CompletedLessons),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
