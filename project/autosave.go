package project

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/creatorkit/canvas"
)

// Autosave timing defaults.
const (
	// DefaultDelay is the inactivity window after the last edit before
	// an autosave fires.
	DefaultDelay = 10 * time.Second

	// DefaultMinInterval is the minimum spacing between two autosaves,
	// the guard against save storms during rapid editing.
	DefaultMinInterval = 30 * time.Second
)

// SaveFunc performs one save of the current project state.
type SaveFunc func(ctx context.Context) error

// Autosaver schedules debounced saves. Wire it to the element store with
// Store.OnChange(a.MarkDirty): every mutation marks the project dirty
// and (re)arms the inactivity timer; when the timer fires, a save runs
// provided the minimum inter-save interval has elapsed — otherwise the
// dirty flag survives and the timer re-arms for the remainder.
//
// Save failures are logged and swallowed: autosave must never lose
// in-memory work over a storage problem, it just leaves the project in
// a not-saved state until the next attempt.
type Autosaver struct {
	save        SaveFunc
	delay       time.Duration
	minInterval time.Duration

	mu       sync.Mutex
	dirty    bool
	lastSave time.Time
	timer    *time.Timer
	stopped  bool

	now func() time.Time
}

// NewAutosaver creates an autosaver with the default timing around the
// given save function.
func NewAutosaver(save SaveFunc) *Autosaver {
	return &Autosaver{
		save:        save,
		delay:       DefaultDelay,
		minInterval: DefaultMinInterval,
		now:         time.Now,
	}
}

// MarkDirty notes an edit and re-arms the inactivity timer.
func (a *Autosaver) MarkDirty() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}
	a.dirty = true
	a.armLocked(a.delay)
}

// armLocked (re)schedules the flush. Callers hold a.mu.
func (a *Autosaver) armLocked(d time.Duration) {
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(d, a.flush)
}

// flush runs when the inactivity timer fires.
func (a *Autosaver) flush() {
	a.mu.Lock()
	if a.stopped || !a.dirty {
		a.mu.Unlock()
		return
	}
	if since := a.now().Sub(a.lastSave); !a.lastSave.IsZero() && since < a.minInterval {
		// Too soon after the previous autosave: keep the dirty flag
		// and come back when the interval has elapsed.
		a.armLocked(a.minInterval - since)
		a.mu.Unlock()
		return
	}
	a.dirty = false
	a.lastSave = a.now()
	save := a.save
	a.mu.Unlock()

	if err := save(context.Background()); err != nil {
		if errors.Is(err, ErrBudgetExceeded) {
			// Already logged at the store; nothing more to do.
			return
		}
		canvas.Logger().Error("autosave failed", "error", err)
	}
}

// SaveNow performs a manual save immediately. Manual saves are always
// allowed regardless of timer state; a success clears the dirty flag
// and resets the inter-save clock.
func (a *Autosaver) SaveNow(ctx context.Context) error {
	a.mu.Lock()
	save := a.save
	a.mu.Unlock()

	if err := save(ctx); err != nil {
		return err
	}

	a.mu.Lock()
	a.dirty = false
	a.lastSave = a.now()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.mu.Unlock()
	return nil
}

// Stop disarms the autosaver. Pending dirty state is dropped; callers
// wanting a final save call SaveNow first.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopped = true
	if a.timer != nil {
		a.timer.Stop()
	}
}

// Dirty reports whether unsaved edits are pending.
func (a *Autosaver) Dirty() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dirty
}
