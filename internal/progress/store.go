package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/daxvengers/daxvengers/internal/catalog"
	"github.com/daxvengers/daxvengers/internal/observable"
)

// Completion is the payload sent to the backend when a lesson is completed.
type Completion struct {
	UserID    string
	LessonID  int
	XPEarned  int
	Completed bool
}

// SaveResult is the backend's confirmation of a saved completion.
type SaveResult struct {
	Success         bool
	Message         string
	LessonCompleted bool
	NextLessonID    int
}

// Backend is the remote authoritative record of progress.
type Backend interface {
	// GetProgress returns the stored record, or ErrRecordNotFound.
	GetProgress(ctx context.Context, userID, missionID string) (Record, error)

	// SaveProgress records a lesson completion.
	SaveProgress(ctx context.Context, c Completion) (SaveResult, error)

	// ResetProgress wipes the user's progress for a mission.
	ResetProgress(ctx context.Context, userID, missionID string) error
}

// Catalog supplies the read-only mission and lesson listings.
type Catalog interface {
	Missions(ctx context.Context) ([]catalog.Mission, error)
	Lessons(ctx context.Context, missionID string) ([]catalog.Lesson, error)
}

// UserSource resolves the identity progress is recorded for.
type UserSource interface {
	UserID() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock used to stamp activity.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithCatalog sets the catalog used by LoadMissions and LoadLessons.
func WithCatalog(c Catalog) Option {
	return func(s *Store) { s.catalog = c }
}

// WithMission sets the mission of the initial default record.
func WithMission(missionID string) Option {
	return func(s *Store) { s.record = observable.New(Defaults(missionID)) }
}

// Store owns the in-memory progress record and publishes every change.
//
// Record mutations are serialized: remote calls run outside the lock, so the
// synchronous part of one operation may interleave with the completion of an
// earlier asynchronous one. Subscribers run while the mutation lock is held
// and must not call Store mutators.
type Store struct {
	backend Backend
	catalog Catalog
	users   UserSource
	now     func() time.Time

	record          *observable.Value[Record]
	status          *observable.Value[Status]
	selectedMission *observable.Value[*catalog.Mission]
	selectedLesson  *observable.Value[*catalog.Lesson]

	mu       sync.Mutex // guards hydrated, loadGen and record publishes
	hydrated bool
	loadGen  uint64
}

// NewStore creates a Store holding the default record. Mutations are refused
// until the store is hydrated by Load or Restore.
func NewStore(backend Backend, users UserSource, opts ...Option) *Store {
	s := &Store{
		backend:         backend,
		users:           users,
		now:             time.Now,
		record:          observable.New(Defaults(DefaultMissionID)),
		status:          observable.New(newStatus()),
		selectedMission: observable.New[*catalog.Mission](nil),
		selectedLesson:  observable.New[*catalog.Lesson](nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record returns a copy of the current record.
func (s *Store) Record() Record {
	return s.record.Get().clone()
}

// Status returns a copy of the current loading and error state.
func (s *Store) Status() Status {
	return s.status.Get().clone()
}

// Metrics returns the derived presentation metrics of the current record.
func (s *Store) Metrics() Metrics {
	return Derive(s.record.Get())
}

// IsLessonUnlocked reports whether lessonID is unlocked in the current record.
func (s *Store) IsLessonUnlocked(lessonID int) bool {
	return IsLessonUnlocked(lessonID, s.record.Get().CompletedLessons)
}

// IsLessonCompleted reports whether lessonID is completed in the current record.
func (s *Store) IsLessonCompleted(lessonID int) bool {
	return IsLessonCompleted(lessonID, s.record.Get().CompletedLessons)
}

// Hydrated reports whether the store has received a record from Load or Restore.
func (s *Store) Hydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hydrated
}

// Subscribe registers fn to receive every published record. Subscribers must
// not modify the record they receive.
func (s *Store) Subscribe(fn func(Record)) (unsubscribe func()) {
	return s.record.Subscribe(fn)
}

// SubscribeStatus registers fn to receive every loading/error state change.
func (s *Store) SubscribeStatus(fn func(Status)) (unsubscribe func()) {
	return s.status.Subscribe(fn)
}

// Load fetches the record for userID and missionID from the backend and
// replaces the held record on success. A missing remote record loads the
// mission defaults. On failure the held record is kept and the error is
// recorded under the progress category.
//
// If another Load is issued before this one resolves, this call's result is
// discarded and ErrSuperseded is returned; the newer call owns the status.
func (s *Store) Load(ctx context.Context, userID, missionID string) error {
	if userID == "" {
		return fmt.Errorf("%w: empty user id", ErrInvalidInput)
	}
	if missionID == "" {
		missionID = DefaultMissionID
	}

	s.mu.Lock()
	s.loadGen++
	gen := s.loadGen
	s.status.Update(func(st Status) Status { return st.begin(CategoryProgress) })
	s.mu.Unlock()

	rec, err := s.backend.GetProgress(ctx, userID, missionID)
	if errors.Is(err, ErrRecordNotFound) {
		rec, err = Defaults(missionID), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.loadGen {
		return ErrSuperseded
	}

	if err != nil {
		s.status.Update(func(st Status) Status { return st.settle(CategoryProgress, err) })
		return fmt.Errorf("load progress: %w", err)
	}

	if rec.MissionID == "" {
		rec.MissionID = missionID
	}
	s.hydrated = true
	s.record.Set(Normalize(rec))
	s.status.Update(func(st Status) Status { return st.settle(CategoryProgress, nil) })
	return nil
}

// Restore hydrates the store with r without contacting the backend. It is
// used at startup when the remote record is unavailable.
func (s *Store) Restore(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrated = true
	s.record.Set(Normalize(r))
}

// CompleteLesson marks lessonID completed, adds xpEarned and stamps the
// activity time, then reports the completion to the backend.
//
// The local change is published before the remote call and is kept even if
// the call fails: the error is returned and recorded, and the next Load
// re-syncs with whatever the backend holds. Completing a lesson twice adds the
// XP twice but records the lesson once.
func (s *Store) CompleteLesson(ctx context.Context, lessonID, xpEarned int) (SaveResult, error) {
	if lessonID < 1 {
		return SaveResult{}, fmt.Errorf("%w: lesson id %d < 1", ErrInvalidInput, lessonID)
	}
	if xpEarned < 0 {
		return SaveResult{}, fmt.Errorf("%w: xp earned %d < 0", ErrInvalidInput, xpEarned)
	}

	err := s.mutate(func(r Record) Record {
		next := r.withLesson(lessonID)
		next.TotalXP += xpEarned
		now := s.now().UTC()
		next.LastActivity = &now
		return next
	})
	if err != nil {
		return SaveResult{}, err
	}

	res, err := s.backend.SaveProgress(ctx, Completion{
		UserID:    s.users.UserID(),
		LessonID:  lessonID,
		XPEarned:  xpEarned,
		Completed: true,
	})
	if err != nil {
		s.recordError(CategoryProgress, err)
		return SaveResult{}, fmt.Errorf("save progress: %w", err)
	}
	return res, nil
}

// AddXP adjusts the XP total locally. Negative amounts are corrections; the
// total never drops below zero. Nothing is sent to the backend.
func (s *Store) AddXP(amount int) error {
	return s.mutate(func(r Record) Record {
		next := r.clone()
		next.TotalXP += amount
		return next
	})
}

// UpdateStreak re-evaluates the daily streak against the last activity time
// and the current clock. Nothing is sent to the backend.
func (s *Store) UpdateStreak() error {
	return s.mutate(func(r Record) Record {
		next := r.clone()
		next.StreakDays = NextStreak(r.StreakDays, r.LastActivity, s.now())
		return next
	})
}

// Reset asks the backend to wipe progress for missionID and, only once it
// confirms, replaces the local record with the mission defaults. If the
// backend call fails the local record is left untouched.
func (s *Store) Reset(ctx context.Context, missionID string) error {
	if missionID == "" {
		missionID = DefaultMissionID
	}
	if !s.Hydrated() {
		return ErrNotHydrated
	}

	if err := s.backend.ResetProgress(ctx, s.users.UserID(), missionID); err != nil {
		s.recordError(CategoryProgress, err)
		return fmt.Errorf("reset progress: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A load started before the reset must not resurrect the wiped record.
	s.loadGen++
	rec := Defaults(missionID)
	now := s.now().UTC()
	rec.LastActivity = &now
	s.record.Set(rec)
	s.status.Update(func(st Status) Status { return st.settle(CategoryProgress, nil) })
	return nil
}

// LoadMissions fetches the mission list, tracking the missions category.
func (s *Store) LoadMissions(ctx context.Context) ([]catalog.Mission, error) {
	if s.catalog == nil {
		return nil, errors.New("no catalog configured")
	}
	s.status.Update(func(st Status) Status { return st.begin(CategoryMissions) })
	missions, err := s.catalog.Missions(ctx)
	s.status.Update(func(st Status) Status { return st.settle(CategoryMissions, err) })
	if err != nil {
		return nil, fmt.Errorf("load missions: %w", err)
	}
	return missions, nil
}

// LoadLessons fetches the lessons of missionID, tracking the lessons category.
func (s *Store) LoadLessons(ctx context.Context, missionID string) ([]catalog.Lesson, error) {
	if s.catalog == nil {
		return nil, errors.New("no catalog configured")
	}
	if missionID == "" {
		missionID = s.record.Get().MissionID
	}
	s.status.Update(func(st Status) Status { return st.begin(CategoryLessons) })
	lessons, err := s.catalog.Lessons(ctx, missionID)
	s.status.Update(func(st Status) Status { return st.settle(CategoryLessons, err) })
	if err != nil {
		return nil, fmt.Errorf("load lessons: %w", err)
	}
	return lessons, nil
}

// SelectMission sets the mission currently being viewed. nil clears it.
func (s *Store) SelectMission(m *catalog.Mission) { s.selectedMission.Set(m) }

// SelectedMission returns the mission currently being viewed, if any.
func (s *Store) SelectedMission() *catalog.Mission { return s.selectedMission.Get() }

// SelectLesson sets the lesson currently being viewed. nil clears it.
func (s *Store) SelectLesson(l *catalog.Lesson) { s.selectedLesson.Set(l) }

// SelectedLesson returns the lesson currently being viewed, if any.
func (s *Store) SelectedLesson() *catalog.Lesson { return s.selectedLesson.Get() }

// mutate applies fn to the held record, normalizes the result and publishes it.
func (s *Store) mutate(fn func(Record) Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hydrated {
		return ErrNotHydrated
	}
	s.record.Set(Normalize(fn(s.record.Get())))
	return nil
}

func (s *Store) recordError(c Category, err error) {
	s.status.Update(func(st Status) Status {
		out := st.clone()
		out.Errors[c] = err.Error()
		return out
	})
}
