package progress

import (
	"math"
	"testing"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{1, 1},
		{99, 1},
		{100, 2},
		{170, 2},
		{250, 3},
		{999, 10},
		{1000, 11},
	}
	for _, tt := range tests {
		if got := Level(tt.xp); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestXPToNextLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 100},
		{1, 99},
		{99, 1},
		{100, 100},
		{170, 30},
		{250, 50},
	}
	for _, tt := range tests {
		if got := XPToNextLevel(tt.xp); got != tt.want {
			t.Errorf("XPToNextLevel(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelProgressPercent(t *testing.T) {
	tests := []struct {
		xp   int
		want float64
	}{
		{0, 0},
		{50, 50},
		{100, 0},
		{170, 70},
		{199, 99},
		{250, 50},
	}
	for _, tt := range tests {
		if got := LevelProgressPercent(tt.xp); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("LevelProgressPercent(%d) = %v, want %v", tt.xp, got, tt.want)
		}
	}
}

func TestLevelIdentities(t *testing.T) {
	for xp := 0; xp <= 1000; xp++ {
		level := Level(xp)
		toNext := XPToNextLevel(xp)
		if (level-1)*XPPerLevel+(XPPerLevel-toNext) != xp {
			t.Fatalf("xp %d: level %d, toNext %d do not reconstruct xp", xp, level, toNext)
		}
		if toNext < 1 || toNext > XPPerLevel {
			t.Fatalf("xp %d: toNext %d out of [1, %d]", xp, toNext, XPPerLevel)
		}
		if p := LevelProgressPercent(xp); p < 0 || p >= 100 {
			t.Fatalf("xp %d: percent %v out of [0, 100)", xp, p)
		}
	}
}

func TestIsLessonUnlocked(t *testing.T) {
	tests := []struct {
		name      string
		lesson    int
		completed []int
		want      bool
	}{
		{"first lesson always", 1, nil, true},
		{"first lesson empty slice", 1, []int{}, true},
		{"second locked", 2, []int{}, false},
		{"second after first", 2, []int{1}, true},
		{"third needs second", 3, []int{1}, false},
		{"gap", 4, []int{1, 3}, true},
		{"completed itself", 2, []int{1, 2}, true},
	}
	for _, tt := range tests {
		if got := IsLessonUnlocked(tt.lesson, tt.completed); got != tt.want {
			t.Errorf("%s: IsLessonUnlocked(%d, %v) = %v, want %v", tt.name, tt.lesson, tt.completed, got, tt.want)
		}
	}
}

func TestIsLessonCompleted(t *testing.T) {
	completed := []int{1, 2, 5}
	for _, id := range []int{1, 2, 5} {
		if !IsLessonCompleted(id, completed) {
			t.Errorf("IsLessonCompleted(%d) = false, want true", id)
		}
	}
	for _, id := range []int{0, 3, 4, 6} {
		if IsLessonCompleted(id, completed) {
			t.Errorf("IsLessonCompleted(%d) = true, want false", id)
		}
	}
}

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		completed []int
		total     int
		want      float64
	}{
		{nil, 5, 0},
		{[]int{1, 2}, 5, 40},
		{[]int{1, 2, 3, 4, 5}, 5, 100},
		{[]int{1, 2, 9}, 5, 40},
		{[]int{1}, 0, 0},
		{[]int{1}, -3, 0},
	}
	for _, tt := range tests {
		if got := CompletionPercent(tt.completed, tt.total); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("CompletionPercent(%v, %d) = %v, want %v", tt.completed, tt.total, got, tt.want)
		}
	}
}

func TestDerive(t *testing.T) {
	r := Normalize(Record{CompletedLessons: []int{1, 2, 3}, TotalXP: 170})
	got := Derive(r)
	want := Metrics{Level: 2, XPToNextLevel: 30, LevelProgressPercent: 70, CompletedCount: 3}
	if got != want {
		t.Errorf("Derive() = %+v, want %+v", got, want)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 2, 3},
		{-7, 2, -4},
		{-100, 100, -1},
		{-1, 100, -1},
		{0, 100, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
