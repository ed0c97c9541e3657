// Package reconcile keeps the local progress cache in step with the store and
// decides where the startup record comes from.
package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/daxvengers/daxvengers/internal/logger"
	"github.com/daxvengers/daxvengers/internal/progress"
)

const (
	// ProgressKey holds the JSON-encoded progress record.
	ProgressKey = "daxvengers_progress"
	// UserKey holds the id of the user the cached record belongs to.
	UserKey = "daxvengers_user"
)

// Cache is a durable string key/value store.
type Cache interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// UserSource resolves the identity the cache is written for.
type UserSource interface {
	UserID() string
}

// Source tells where the startup record came from.
type Source int

const (
	SourceRemote Source = iota
	SourceCache
	SourceDefaults
)

func (s Source) String() string {
	switch s {
	case SourceRemote:
		return "remote"
	case SourceCache:
		return "cache"
	case SourceDefaults:
		return "defaults"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// StartResult reports the outcome of Start. Warning is the remote failure
// that caused a fallback; it is nil when Source is SourceRemote.
type StartResult struct {
	Source  Source
	Warning error
}

// Reconciler mirrors published progress records to a Cache and restores
// from it when the backend is unreachable.
type Reconciler struct {
	cache Cache
	users UserSource
	log   *logger.Logger
}

// New creates a Reconciler. A nil log discards output.
func New(cache Cache, users UserSource, log *logger.Logger) *Reconciler {
	if log == nil {
		log = logger.Nop()
	}
	return &Reconciler{cache: cache, users: users, log: log}
}

// Attach subscribes to s and writes every published record to the cache.
// Write errors are logged and dropped. The returned func stops mirroring.
func (r *Reconciler) Attach(s *progress.Store) (detach func()) {
	return s.Subscribe(func(rec progress.Record) {
		r.persist(context.Background(), rec)
	})
}

func (r *Reconciler) persist(ctx context.Context, rec progress.Record) {
	data, err := progress.Marshal(rec)
	if err != nil {
		r.log.Warn("encode progress for cache", "error", err)
		return
	}
	// Ownership is withdrawn first so a partial write is never restored for
	// the wrong user.
	if err := r.cache.Delete(ctx, UserKey); err != nil {
		r.log.Warn("clear user cache", "error", err)
		return
	}
	if err := r.cache.Put(ctx, ProgressKey, string(data)); err != nil {
		r.log.Warn("write progress cache", "error", err)
		return
	}
	if err := r.cache.Put(ctx, UserKey, r.users.UserID()); err != nil {
		r.log.Warn("write user cache", "error", err)
	}
}

// Start hydrates s for the current user. The backend is tried first; if it
// fails, a cached record of the same user and mission is restored, and
// failing that the mission defaults. The remote failure is returned as the
// result's Warning, not as an error.
//
// An error is returned only when the load was rejected outright or superseded
// by a concurrent Load.
func (r *Reconciler) Start(ctx context.Context, s *progress.Store, missionID string) (StartResult, error) {
	if missionID == "" {
		missionID = progress.DefaultMissionID
	}
	userID := r.users.UserID()

	err := s.Load(ctx, userID, missionID)
	switch {
	case err == nil:
		return StartResult{Source: SourceRemote}, nil
	case errors.Is(err, progress.ErrSuperseded), errors.Is(err, progress.ErrInvalidInput):
		return StartResult{}, err
	}

	r.log.Warn("remote progress unavailable", "user", userID, "mission", missionID, "error", err)

	if rec, ok := r.Cached(ctx, userID, missionID); ok {
		s.Restore(rec)
		r.log.Info("restored progress from cache", "user", userID, "mission", missionID)
		return StartResult{Source: SourceCache, Warning: err}, nil
	}

	s.Restore(progress.Defaults(missionID))
	return StartResult{Source: SourceDefaults, Warning: err}, nil
}

// Clear removes the cached record and user.
func (r *Reconciler) Clear(ctx context.Context) error {
	if err := r.cache.Delete(ctx, ProgressKey); err != nil {
		return fmt.Errorf("clear progress cache: %w", err)
	}
	if err := r.cache.Delete(ctx, UserKey); err != nil {
		return fmt.Errorf("clear user cache: %w", err)
	}
	return nil
}

// Cached returns the cached record if it is recorded as belonging to userID
// and is for missionID. A record with no recorded owner is never returned. A
// cached record that cannot be decoded is deleted.
func (r *Reconciler) Cached(ctx context.Context, userID, missionID string) (progress.Record, bool) {
	owner, ok, err := r.cache.Get(ctx, UserKey)
	if err != nil {
		r.log.Warn("read user cache", "error", err)
		return progress.Record{}, false
	}
	if !ok {
		r.log.Debug("cached progress has no owner", "user", userID)
		return progress.Record{}, false
	}
	if owner != userID {
		r.log.Debug("cached progress belongs to another user", "cached_user", owner, "user", userID)
		return progress.Record{}, false
	}

	raw, ok, err := r.cache.Get(ctx, ProgressKey)
	if err != nil {
		r.log.Warn("read progress cache", "error", err)
		return progress.Record{}, false
	}
	if !ok {
		return progress.Record{}, false
	}

	rec, err := progress.Unmarshal([]byte(raw))
	if err != nil {
		r.log.Warn("discarding malformed progress cache", "error", err)
		if derr := r.cache.Delete(ctx, ProgressKey); derr != nil {
			r.log.Warn("delete progress cache", "error", derr)
		}
		return progress.Record{}, false
	}
	if rec.MissionID != missionID {
		r.log.Debug("cached progress is for another mission", "cached_mission", rec.MissionID, "mission", missionID)
		return progress.Record{}, false
	}
	return rec, true
}
