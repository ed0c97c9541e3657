package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI serves the progress and catalog endpoints from memory.
type fakeAPI struct {
	mu        sync.Mutex
	completed []int
	xp        int
	down      bool
}

func (f *fakeAPI) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.down {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/progress/tester":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"user_id":           "tester",
				"mission_id":        "dax-basics",
				"completed_lessons": f.completed,
				"total_xp":          f.xp,
				"streak_days":       1,
			})
		case r.Method == http.MethodPost && r.URL.Path == "/api/progress":
			var body struct {
				LessonID int `json:"lesson_id"`
				XPEarned int `json:"xp_earned"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			f.completed = append(f.completed, body.LessonID)
			f.xp += body.XPEarned
			_, _ = io.WriteString(w, `{"success":true,"message":"Progresso salvo!","lesson_completed":true}`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/progress/reset/tester":
			f.completed, f.xp = nil, 0
			_, _ = io.WriteString(w, `{"success":true}`)
		case r.URL.Path == "/api/missions/dax-basics":
			_, _ = io.WriteString(w, `{"id":"dax-basics","name":"Funções Básicas DAX","total_lessons":2}`)
		case r.URL.Path == "/api/lessons/1":
			_, _ = io.WriteString(w, `{"id":1,"title":"Introdução ao DAX","xp":50,"type":"theory","theory":"DAX é a linguagem de fórmulas do Power BI."}`)
		case r.URL.Path == "/api/lessons/1/next":
			_, _ = io.WriteString(w, `{"id":2,"title":"SUM e SUMX","xp":60}`)
		case r.URL.Path == "/api/missions/dax-basics/lessons":
			_, _ = io.WriteString(w, `[{"id":1,"title":"Introdução ao DAX","xp":50},{"id":2,"title":"SUM e SUMX","xp":60}]`)
		case r.URL.Path == "/api/health":
			_, _ = io.WriteString(w, `{"status":"online","service":"DAXVengers API","version":"1.0.0"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func (f *fakeAPI) setDown(down bool) {
	f.mu.Lock()
	f.down = down
	f.mu.Unlock()
}

func run(t *testing.T, srvURL, dbPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	base := []string{"--api", srvURL, "--db", dbPath, "--user", "tester", "--env-file", ""}
	rootCmd.SetArgs(append(args, base...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	api := &fakeAPI{}
	srv := httptest.NewServer(api.handler(t))
	defer srv.Close()
	db := filepath.Join(t.TempDir(), "cache.db")

	out, err := run(t, srv.URL, db, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Level 1")

	_, err = run(t, srv.URL, db, "complete", "2", "60")
	assert.Error(t, err, "lesson 2 is locked")

	out, err = run(t, srv.URL, db, "complete", "1", "150")
	require.NoError(t, err)
	assert.Contains(t, out, "Progresso salvo!")
	assert.Contains(t, out, "Level 2")
	assert.Contains(t, out, "Next: 2. SUM e SUMX")

	out, err = run(t, srv.URL, db, "complete", "2", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "Mission complete!")

	out, err = run(t, srv.URL, db, "lessons")
	require.NoError(t, err)
	assert.Contains(t, out, "Funções Básicas DAX")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "SUM e SUMX")

	api.setDown(true)
	out, err = run(t, srv.URL, db, "status")
	require.NoError(t, err, "cached progress is shown when the backend is down")
	assert.Contains(t, out, "210 XP total")

	out, err = run(t, srv.URL, db, "forget")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared")

	out, err = run(t, srv.URL, db, "status")
	require.NoError(t, err, "defaults are shown once the cache is gone")
	assert.Contains(t, out, "0 XP total")
	api.setDown(false)

	out, err = run(t, srv.URL, db, "lesson", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "linguagem de fórmulas")

	_, err = run(t, srv.URL, db, "reset")
	assert.Error(t, err, "reset needs --yes")

	out, err = run(t, srv.URL, db, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "reset")

	out, err = run(t, srv.URL, db, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "0 XP total")

	_, err = run(t, srv.URL, db, "health")
	assert.NoError(t, err)
}

func TestResolveDBPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DAXVENGERS_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	cmd := statusCmd
	require.NoError(t, rootCmd.PersistentFlags().Set("db", ""))

	p, err := resolveDBPath(cmd, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "daxvengers", "daxvengers.db"), p)

	configured := filepath.Join(dir, "custom", "c.db")
	p, err = resolveDBPath(cmd, configured)
	require.NoError(t, err)
	assert.Equal(t, configured, p)
	assert.DirExists(t, filepath.Join(dir, "custom"))
}
