package components

import (
	"strings"
	"testing"

	"github.com/daxvengers/daxvengers/internal/catalog"
	"github.com/daxvengers/daxvengers/internal/progress"
)

func TestProgressBarFilled(t *testing.T) {
	tests := []struct {
		percent float64
		want    int
	}{
		{0, 0},
		{50, 10},
		{70, 14},
		{100, 20},
		{150, 20},
		{-10, 0},
	}
	for _, tt := range tests {
		p := ProgressBar{Percent: tt.percent}
		if got := p.Filled(20); got != tt.want {
			t.Errorf("Filled(20) at %v%% = %d, want %d", tt.percent, got, tt.want)
		}
	}
}

func TestProgressBarViewShowsPercent(t *testing.T) {
	v := NewProgressBar("XP", 70, true, 30).View()
	if !strings.Contains(v, "70%") {
		t.Errorf("View() = %q, want it to contain 70%%", v)
	}
	if !strings.Contains(v, "XP") {
		t.Errorf("View() = %q, want label", v)
	}
}

func TestLessonMark(t *testing.T) {
	rec := progress.Normalize(progress.Record{CompletedLessons: []int{1, 2}})
	tests := []struct {
		lesson int
		want   string
	}{
		{1, "✓"},
		{2, "✓"},
		{3, "▶"},
		{4, "🔒"},
	}
	for _, tt := range tests {
		if got := LessonMark(tt.lesson, rec); got != tt.want {
			t.Errorf("LessonMark(%d) = %q, want %q", tt.lesson, got, tt.want)
		}
	}
}

func TestSummaryMentionsMetrics(t *testing.T) {
	rec := progress.Normalize(progress.Record{MissionID: "dax-basics", CompletedLessons: []int{1, 2}, TotalXP: 170, StreakDays: 3})
	out := Summary(rec, 40)
	for _, want := range []string{"Level 2", "170 XP total", "30 to next level", "3 day streak", "dax-basics"} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary() missing %q:\n%s", want, out)
		}
	}
}

func TestLessonListOrder(t *testing.T) {
	rec := progress.Defaults("")
	out := LessonList([]catalog.Lesson{{ID: 1, Title: "Introdução ao DAX"}, {ID: 2, Title: "SUM e SUMX"}}, rec)
	first := strings.Index(out, "Introdução ao DAX")
	second := strings.Index(out, "SUM e SUMX")
	if first < 0 || second < 0 || first > second {
		t.Errorf("LessonList() order wrong:\n%s", out)
	}
}

func TestLessonDetail(t *testing.T) {
	l := catalog.Lesson{
		ID:          2,
		Title:       "SUM e SUMX",
		XP:          60,
		Type:        catalog.LessonPractice,
		Theory:      "SUMX itera linha a linha.",
		KeyConcepts: []string{"Iteradores"},
		Exercises:   []catalog.Exercise{{Type: catalog.ExerciseCode}},
	}
	out := LessonDetail(l)
	for _, want := range []string{"2. SUM e SUMX", "60 XP", "SUMX itera", "Iteradores", "1 exercises"} {
		if !strings.Contains(out, want) {
			t.Errorf("LessonDetail() missing %q:\n%s", want, out)
		}
	}
}
