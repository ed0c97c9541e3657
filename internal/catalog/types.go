// Package catalog defines the read-only reference data served by the
// backend: missions, lessons, the leaderboard and service health.
package catalog

// ExerciseType identifies how an exercise is answered.
type ExerciseType string

const (
	ExerciseMultipleChoice   ExerciseType = "multiple_choice"
	ExerciseCode             ExerciseType = "code"
	ExerciseFillBlank        ExerciseType = "fill_blank"
	ExerciseDebug            ExerciseType = "debug"
	ExerciseOutputPrediction ExerciseType = "output_prediction"
)

// LessonType classifies a lesson within a mission.
type LessonType string

const (
	LessonTheory    LessonType = "theory"
	LessonPractice  LessonType = "practice"
	LessonChallenge LessonType = "challenge"
	LessonBoss      LessonType = "boss"
)

// Exercise is a single question inside a lesson.
type Exercise struct {
	Type        ExerciseType `json:"type"`
	Question    string       `json:"question"`
	Options     []string     `json:"options,omitempty"`
	Correct     *int         `json:"correct,omitempty"`
	Solution    string       `json:"solution,omitempty"`
	Hints       []string     `json:"hints"`
	Explanation string       `json:"explanation"`
	XPReward    int          `json:"xp_reward"`
}

// Lesson is one ordered unit of a mission.
type Lesson struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Icon          string     `json:"icon"`
	Description   string     `json:"description"`
	XP            int        `json:"xp"`
	Type          LessonType `json:"type"`
	MissionID     string     `json:"mission_id"`
	Order         int        `json:"order"`
	Theory        string     `json:"theory"`
	TheoryTitle   string     `json:"theory_title,omitempty"`
	KeyConcepts   []string   `json:"key_concepts"`
	Exercises     []Exercise `json:"exercises"`
	EstimatedTime int        `json:"estimated_time"` // minutes
	Prerequisites []int      `json:"prerequisites"`
}

// Mission is a themed set of lessons.
type Mission struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Description  string `json:"description"`
	TotalLessons int    `json:"total_lessons"`
	TotalXP      int    `json:"total_xp"`
	IsFree       bool   `json:"is_free"`
	Order        int    `json:"order"`
	BadgeReward  string `json:"badge_reward,omitempty"`
}

// LeaderboardEntry is one ranked player.
type LeaderboardEntry struct {
	UserID           string   `json:"user_id"`
	Username         string   `json:"username"`
	TotalXP          int      `json:"total_xp"`
	CompletedLessons int      `json:"completed_lessons"`
	StreakDays       int      `json:"streak_days"`
	Badges           []string `json:"badges"`
	Rank             int      `json:"rank"`
}

// Health is the backend's self-reported status.
type Health struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	Version       string `json:"version"`
	TotalLessons  int    `json:"total_lessons"`
	TotalMissions int    `json:"total_missions"`
	Timestamp     string `json:"timestamp"`
}

// Online reports whether the backend declared itself online.
func (h Health) Online() bool { return h.Status == "online" }
