package filter

import (
	"context"
	"sync"

	"github.com/emre/event-discovery-go/models"
)

// EventSource is the external collaborator the controller loads from. It is
// injected so the engine can be exercised against a fake in tests.
type EventSource interface {
	FetchEvents(ctx context.Context) ([]models.Event, error)
}

// State is the controller's load lifecycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Snapshot is the immutable view handed to presentation: the ordered events
// after filter and sort, plus the flags the list screen renders. An empty
// Events with an empty ErrorMessage is a legitimate zero-result state, not a
// failure.
type Snapshot struct {
	Events            []models.Event
	State             State
	IsLoading         bool
	ErrorMessage      string
	ActiveFilterCount int
	Sort              SortOption
}

// Controller owns one session's master event set and composes fetch, filter
// and sort into the displayed list. All mutations serialize on one mutex: a
// criteria or sort change started during an in-flight load blocks until it
// can run, and a later mutation always applies to the latest master set. A
// newer Load supersedes an older in-flight one; the stale fetch result is
// discarded when it finally arrives.
type Controller struct {
	source EventSource

	mu       sync.Mutex
	loadGen  uint64
	state    State
	master   []models.Event
	visible  []models.Event
	criteria *Criteria
	sortOpt  SortOption
	errMsg   string
}

func NewController(source EventSource) *Controller {
	return &Controller{
		source:   source,
		state:    StateIdle,
		criteria: NewCriteria(),
		sortOpt:  DefaultSort,
	}
}

// Load fetches the full event set and recomputes the displayed list. On
// failure the previous displayed list stays in place (empty before the first
// successful load) and the error message is recorded. Load never retries on
// its own; calling it again is the retry.
func (ctl *Controller) Load(ctx context.Context) error {
	ctl.mu.Lock()
	ctl.loadGen++
	gen := ctl.loadGen
	ctl.state = StateLoading
	ctl.errMsg = ""
	ctl.mu.Unlock()

	events, err := ctl.source.FetchEvents(ctx)

	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if gen != ctl.loadGen {
		// A newer Load superseded this one; drop the stale result.
		return nil
	}
	if err != nil {
		ctl.state = StateFailed
		ctl.errMsg = err.Error()
		return err
	}
	ctl.master = events
	ctl.recompose()
	ctl.state = StateLoaded
	return nil
}

// UpdateCriteria mutates the criteria under the controller's lock and
// recomputes the displayed list before returning, so the next Snapshot
// already reflects the change.
func (ctl *Controller) UpdateCriteria(mutate func(*Criteria)) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	mutate(ctl.criteria)
	ctl.recompose()
}

// SetCriteria replaces the criteria wholesale, e.g. from a parsed query.
func (ctl *Controller) SetCriteria(c *Criteria) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	if c == nil {
		c = NewCriteria()
	}
	ctl.criteria = c
	ctl.recompose()
}

// ClearCriteria resets every filter group and recomputes.
func (ctl *Controller) ClearCriteria() {
	ctl.UpdateCriteria(func(c *Criteria) { c.Clear() })
}

// SetSort re-sorts the already filtered list. It does not re-fetch and does
// not re-filter.
func (ctl *Controller) SetSort(opt SortOption) {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	ctl.sortOpt = opt
	Sort(ctl.visible, ctl.sortOpt)
}

// recompose rebuilds visible from the master set. Caller holds the lock.
// Filtering always runs before sorting.
func (ctl *Controller) recompose() {
	ctl.visible = ctl.criteria.Apply(ctl.master)
	Sort(ctl.visible, ctl.sortOpt)
}

// Snapshot returns a copy of the current displayed state. The event slice is
// the caller's to keep; later mutations never write into it.
func (ctl *Controller) Snapshot() Snapshot {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	events := make([]models.Event, len(ctl.visible))
	copy(events, ctl.visible)
	return Snapshot{
		Events:            events,
		State:             ctl.state,
		IsLoading:         ctl.state == StateLoading,
		ErrorMessage:      ctl.errMsg,
		ActiveFilterCount: ctl.criteria.ActiveFilterCount(),
		Sort:              ctl.sortOpt,
	}
}
