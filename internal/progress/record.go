package progress

import (
	"fmt"
	"slices"
	"time"
)

// DefaultMissionID is the mission used when none is given.
const DefaultMissionID = "dax-basics"

// Record is the canonical per-user, per-mission advancement state.
type Record struct {
	MissionID        string     `json:"currentMission"`
	CompletedLessons []int      `json:"completedLessons"`
	CurrentLesson    int        `json:"currentLesson"`
	TotalXP          int        `json:"totalXP"`
	StreakDays       int        `json:"streakDays"`
	LastActivity     *time.Time `json:"lastActivity"`
}

// Defaults returns the starting record for a mission.
func Defaults(missionID string) Record {
	if missionID == "" {
		missionID = DefaultMissionID
	}
	return Record{
		MissionID:        missionID,
		CompletedLessons: []int{},
		CurrentLesson:    1,
		TotalXP:          0,
		StreakDays:       1,
	}
}

// Normalize returns a copy of r that satisfies every record invariant:
// lessons are unique, positive and sorted, CurrentLesson follows the highest
// completed lesson, XP is non-negative and the streak is at least 1.
func Normalize(r Record) Record {
	out := r
	if out.MissionID == "" {
		out.MissionID = DefaultMissionID
	}

	lessons := make([]int, 0, len(r.CompletedLessons))
	for _, id := range r.CompletedLessons {
		if id >= 1 {
			lessons = append(lessons, id)
		}
	}
	slices.Sort(lessons)
	out.CompletedLessons = slices.Compact(lessons)

	out.CurrentLesson = 1
	if n := len(out.CompletedLessons); n > 0 {
		out.CurrentLesson = out.CompletedLessons[n-1] + 1
	}

	if out.TotalXP < 0 {
		out.TotalXP = 0
	}
	if out.StreakDays < 1 {
		out.StreakDays = 1
	}
	if r.LastActivity != nil {
		t := r.LastActivity.UTC()
		out.LastActivity = &t
	}
	return out
}

// Validate reports the first invariant r violates, if any.
func (r Record) Validate() error {
	switch {
	case r.MissionID == "":
		return fmt.Errorf("%w: empty mission id", ErrInvalidRecord)
	case r.TotalXP < 0:
		return fmt.Errorf("%w: totalXP %d < 0", ErrInvalidRecord, r.TotalXP)
	case r.StreakDays < 1:
		return fmt.Errorf("%w: streakDays %d < 1", ErrInvalidRecord, r.StreakDays)
	}

	want := 1
	for i, id := range r.CompletedLessons {
		if id < 1 {
			return fmt.Errorf("%w: lesson ordinal %d < 1", ErrInvalidRecord, id)
		}
		if i > 0 && id <= r.CompletedLessons[i-1] {
			return fmt.Errorf("%w: completed lessons not strictly ascending", ErrInvalidRecord)
		}
		want = id + 1
	}
	if r.CurrentLesson != want {
		return fmt.Errorf("%w: currentLesson %d, want %d", ErrInvalidRecord, r.CurrentLesson, want)
	}
	return nil
}

// Equal reports whether a and b hold the same values.
func Equal(a, b Record) bool {
	if a.MissionID != b.MissionID ||
		a.CurrentLesson != b.CurrentLesson ||
		a.TotalXP != b.TotalXP ||
		a.StreakDays != b.StreakDays {
		return false
	}
	if !slices.Equal(a.CompletedLessons, b.CompletedLessons) {
		return false
	}
	switch {
	case a.LastActivity == nil && b.LastActivity == nil:
		return true
	case a.LastActivity == nil || b.LastActivity == nil:
		return false
	default:
		return a.LastActivity.Equal(*b.LastActivity)
	}
}

// clone returns a deep copy of r so published values never share a slice
// with the store's working copy.
func (r Record) clone() Record {
	out := r
	out.CompletedLessons = slices.Clone(r.CompletedLessons)
	if out.CompletedLessons == nil {
		out.CompletedLessons = []int{}
	}
	if r.LastActivity != nil {
		t := *r.LastActivity
		out.LastActivity = &t
	}
	return out
}

// withLesson returns r with lessonID marked completed. Marking an already
// completed lesson leaves the set unchanged.
func (r Record) withLesson(lessonID int) Record {
	out := r.clone()
	if !slices.Contains(out.CompletedLessons, lessonID) {
		out.CompletedLessons = append(out.CompletedLessons, lessonID)
	}
	return Normalize(out)
}
