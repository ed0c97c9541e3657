package components

import (
	"fmt"
	"strings"

	"github.com/daxvengers/daxvengers/internal/catalog"
	"github.com/daxvengers/daxvengers/internal/progress"
	"github.com/daxvengers/daxvengers/internal/ui/theme"
)

// Summary renders the level, XP and streak card for a record.
func Summary(rec progress.Record, width int) string {
	m := progress.Derive(rec)

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Level %d", m.Level)))
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %s", rec.MissionID)))
	b.WriteString("\n")
	b.WriteString(NewProgressBar("XP", m.LevelProgressPercent, true, width).View())
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("%d XP total, %d to next level", rec.TotalXP, m.XPToNextLevel)))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("%d lessons completed, current lesson %d", m.CompletedCount, rec.CurrentLesson)))
	b.WriteString("\n")
	b.WriteString(theme.Warning.Render(fmt.Sprintf("%d day streak", rec.StreakDays)))
	if rec.LastActivity != nil {
		b.WriteString(theme.Hint.Render("  last active " + rec.LastActivity.Format("2006-01-02 15:04 UTC")))
	}

	return theme.Card.Render(b.String())
}

// LessonMark returns the status glyph for a lesson in rec.
func LessonMark(lessonID int, rec progress.Record) string {
	switch {
	case progress.IsLessonCompleted(lessonID, rec.CompletedLessons):
		return "✓"
	case progress.IsLessonUnlocked(lessonID, rec.CompletedLessons):
		return "▶"
	default:
		return "🔒"
	}
}

// LessonList renders lessons with their completion and lock state.
func LessonList(lessons []catalog.Lesson, rec progress.Record) string {
	var b strings.Builder
	for _, l := range lessons {
		line := fmt.Sprintf("%s %2d. %s (%d XP)", LessonMark(l.ID, rec), l.ID, l.Title, l.XP)
		switch {
		case progress.IsLessonCompleted(l.ID, rec.CompletedLessons):
			line = theme.Completed.Render(line)
		case progress.IsLessonUnlocked(l.ID, rec.CompletedLessons):
			line = theme.Unlocked.Render(line)
		default:
			line = theme.Locked.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// MissionList renders missions with the share of lessons completed in rec.
// Only rec's own mission shows progress.
func MissionList(missions []catalog.Mission, rec progress.Record, width int) string {
	var b strings.Builder
	for _, m := range missions {
		b.WriteString(theme.Title.Render(m.Name))
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %s, %d lessons, %d XP", m.ID, m.TotalLessons, m.TotalXP)))
		b.WriteString("\n")
		pct := 0.0
		if m.ID == rec.MissionID {
			pct = progress.CompletionPercent(rec.CompletedLessons, m.TotalLessons)
		}
		b.WriteString(NewProgressBar("", pct, true, width).View())
		b.WriteString("\n")
	}
	return b.String()
}

// Leaderboard renders ranked players.
func Leaderboard(entries []catalog.LeaderboardEntry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(theme.Body.Render(fmt.Sprintf("%3d. %-20s %6d XP", e.Rank, e.Username, e.TotalXP)))
		b.WriteString("\n")
	}
	return b.String()
}

// LessonDetail renders a lesson's header, theory and key concepts.
func LessonDetail(l catalog.Lesson) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("%d. %s", l.ID, l.Title)))
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %s, %d XP, ~%d min", l.Type, l.XP, l.EstimatedTime)))
	b.WriteString("\n")
	if l.Description != "" {
		b.WriteString(theme.Body.Render(l.Description))
		b.WriteString("\n")
	}
	if l.Theory != "" {
		if l.TheoryTitle != "" {
			b.WriteString(theme.Title.Render(l.TheoryTitle))
			b.WriteString("\n")
		}
		b.WriteString(theme.Body.Render(l.Theory))
		b.WriteString("\n")
	}
	for _, c := range l.KeyConcepts {
		b.WriteString(theme.Hint.Render("• " + c))
		b.WriteString("\n")
	}
	if n := len(l.Exercises); n > 0 {
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d exercises", n)))
		b.WriteString("\n")
	}
	return b.String()
}
