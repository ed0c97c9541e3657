package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/daxvengers/daxvengers/internal/progress"
)

var (
	_ progress.Backend = (*Client)(nil)
	_ progress.Catalog = (*Client)(nil)
)

// progressDTO is the backend's wire shape of a progress record.
type progressDTO struct {
	UserID           string  `json:"user_id"`
	MissionID        string  `json:"mission_id"`
	CompletedLessons []int   `json:"completed_lessons"`
	CurrentLesson    int     `json:"current_lesson"`
	TotalXP          int     `json:"total_xp"`
	StreakDays       int     `json:"streak_days"`
	LastActivity     *string `json:"last_activity"`
}

type completionDTO struct {
	UserID    string `json:"user_id"`
	LessonID  int    `json:"lesson_id"`
	XPEarned  int    `json:"xp_earned"`
	Completed bool   `json:"completed"`
}

type saveResultDTO struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	LessonCompleted bool   `json:"lesson_completed"`
	NextLessonID    int    `json:"next_lesson_id"`
}

// GetProgress fetches the record of userID in missionID. A 404 yields
// progress.ErrRecordNotFound.
func (c *Client) GetProgress(ctx context.Context, userID, missionID string) (progress.Record, error) {
	endpoint := fmt.Sprintf("/api/progress/%s?%s", url.PathEscape(userID), missionQuery(missionID))

	var dto progressDTO
	if err := c.Do(ctx, http.MethodGet, endpoint, nil, &dto); err != nil {
		if IsNotFound(err) {
			return progress.Record{}, fmt.Errorf("%w: %v", progress.ErrRecordNotFound, err)
		}
		return progress.Record{}, err
	}

	rec := progress.Record{
		MissionID:        dto.MissionID,
		CompletedLessons: dto.CompletedLessons,
		CurrentLesson:    dto.CurrentLesson,
		TotalXP:          dto.TotalXP,
		StreakDays:       dto.StreakDays,
	}
	if rec.MissionID == "" {
		rec.MissionID = missionID
	}
	if dto.LastActivity != nil {
		t, err := parseTimestamp(*dto.LastActivity)
		if err != nil {
			return progress.Record{}, fmt.Errorf("decode last_activity: %w", err)
		}
		rec.LastActivity = &t
	}
	return progress.Normalize(rec), nil
}

// SaveProgress reports a lesson completion.
func (c *Client) SaveProgress(ctx context.Context, comp progress.Completion) (progress.SaveResult, error) {
	body := completionDTO{
		UserID:    comp.UserID,
		LessonID:  comp.LessonID,
		XPEarned:  comp.XPEarned,
		Completed: comp.Completed,
	}
	var dto saveResultDTO
	if err := c.Do(ctx, http.MethodPost, "/api/progress", body, &dto); err != nil {
		return progress.SaveResult{}, err
	}
	return progress.SaveResult{
		Success:         dto.Success,
		Message:         dto.Message,
		LessonCompleted: dto.LessonCompleted,
		NextLessonID:    dto.NextLessonID,
	}, nil
}

// ResetProgress wipes userID's progress in missionID.
func (c *Client) ResetProgress(ctx context.Context, userID, missionID string) error {
	endpoint := fmt.Sprintf("/api/progress/reset/%s?%s", url.PathEscape(userID), missionQuery(missionID))
	return c.Do(ctx, http.MethodPost, endpoint, nil, nil)
}

func missionQuery(missionID string) string {
	if missionID == "" {
		missionID = progress.DefaultMissionID
	}
	return url.Values{"mission_id": {missionID}}.Encode()
}

// timestampLayouts are tried in order. The backend emits ISO-8601 without a
// zone offset; those values are taken as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
