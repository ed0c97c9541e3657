package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/mod/semver"

	"github.com/daxvengers/daxvengers/internal/catalog"
)

// MinServerVersion is the oldest backend API version this client supports.
const MinServerVersion = "v1.0.0"

// Missions lists every mission in progression order. Concurrent calls share
// one request.
func (c *Client) Missions(ctx context.Context) ([]catalog.Mission, error) {
	v, err := c.shared(ctx, "missions", func(ctx context.Context) (any, error) {
		var out []catalog.Mission
		if err := c.Do(ctx, http.MethodGet, "/api/missions", nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]catalog.Mission), nil
}

// shared runs fn once for all concurrent callers of key. fn gets a context
// that is not cancelled with any one caller's; each caller still stops
// waiting when its own ctx is done.
func (c *Client) shared(ctx context.Context, key string, fn func(ctx context.Context) (any, error)) (any, error) {
	ch := c.group.DoChan(key, func() (any, error) {
		return fn(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Mission fetches a single mission.
func (c *Client) Mission(ctx context.Context, missionID string) (catalog.Mission, error) {
	var out catalog.Mission
	err := c.Do(ctx, http.MethodGet, "/api/missions/"+url.PathEscape(missionID), nil, &out)
	return out, err
}

// Lessons lists the lessons of missionID. Concurrent calls for the same
// mission share one request.
func (c *Client) Lessons(ctx context.Context, missionID string) ([]catalog.Lesson, error) {
	v, err := c.shared(ctx, "lessons:"+missionID, func(ctx context.Context) (any, error) {
		var out []catalog.Lesson
		endpoint := "/api/missions/" + url.PathEscape(missionID) + "/lessons"
		if err := c.Do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]catalog.Lesson), nil
}

// Lesson fetches a lesson with its full content.
func (c *Client) Lesson(ctx context.Context, lessonID int) (catalog.Lesson, error) {
	var out catalog.Lesson
	err := c.Do(ctx, http.MethodGet, "/api/lessons/"+strconv.Itoa(lessonID), nil, &out)
	return out, err
}

// NextLesson fetches the lesson following lessonID in missionID. The backend
// answers 404 after the last lesson.
func (c *Client) NextLesson(ctx context.Context, lessonID int, missionID string) (catalog.Lesson, error) {
	var out catalog.Lesson
	endpoint := fmt.Sprintf("/api/lessons/%d/next?%s", lessonID, missionQuery(missionID))
	err := c.Do(ctx, http.MethodGet, endpoint, nil, &out)
	return out, err
}

// Leaderboard returns the top limit players. limit <= 0 uses the server default.
func (c *Client) Leaderboard(ctx context.Context, limit int) ([]catalog.LeaderboardEntry, error) {
	endpoint := "/api/leaderboard"
	if limit > 0 {
		endpoint += "?limit=" + strconv.Itoa(limit)
	}
	var out []catalog.LeaderboardEntry
	if err := c.Do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Health returns the backend's status report.
func (c *Client) Health(ctx context.Context) (catalog.Health, error) {
	var out catalog.Health
	err := c.Do(ctx, http.MethodGet, "/api/health", nil, &out)
	return out, err
}

// CheckCompatible reports an error if h is offline or advertises a version
// with a different major or older than MinServerVersion.
func CheckCompatible(h catalog.Health) error {
	if !h.Online() {
		return fmt.Errorf("backend status %q", h.Status)
	}
	v := canonicalVersion(h.Version)
	if !semver.IsValid(v) {
		return fmt.Errorf("backend version %q is not a semantic version", h.Version)
	}
	if semver.Major(v) != semver.Major(MinServerVersion) {
		return fmt.Errorf("backend version %s incompatible with client (want %s.x)", v, semver.Major(MinServerVersion))
	}
	if semver.Compare(v, MinServerVersion) < 0 {
		return fmt.Errorf("backend version %s older than %s", v, MinServerVersion)
	}
	return nil
}

func canonicalVersion(v string) string {
	if v != "" && v[0] != 'v' {
		v = "v" + v
	}
	return semver.Canonical(v)
}
