package history

import (
	"github.com/creatorkit/canvas"
)

// DefaultLimit caps the undo stack depth. Past the cap the oldest
// actions are dropped; their changes stay applied, they just stop being
// undoable.
const DefaultLimit = 100

// Engine is a linear undo/redo stack over a single element store.
//
// Record appends a committed action; Undo applies the inverse of the
// most recent one and moves it to the redo stack; Redo replays it.
// Recording a new action truncates the redo stack — new work invalidates
// the future. The caller applies the forward change itself before
// recording: Record never mutates the store.
//
// Engine methods are not safe for concurrent use. Like the rest of the
// editor they run on the event loop.
type Engine struct {
	store *canvas.Store
	undo  []Action
	redo  []Action
	limit int
}

// NewEngine creates an engine over the given store with DefaultLimit.
func NewEngine(st *canvas.Store) *Engine {
	return &Engine{store: st, limit: DefaultLimit}
}

// Record appends a committed action and truncates the redo stack.
// The caller must call it exactly once per logical gesture completion,
// never per preview frame.
func (e *Engine) Record(a Action) {
	if a == nil {
		return
	}
	e.undo = append(e.undo, a)
	if len(e.undo) > e.limit {
		e.undo = e.undo[len(e.undo)-e.limit:]
	}
	e.redo = e.redo[:0]
}

// Undo reverts the most recent action and clears the selection.
// Selection is intentionally not restored: after an undo it could
// reference elements whose state just changed under it.
//
// Undo on an empty stack is a no-op. A revert whose target element no
// longer exists fails soft — logged and skipped, the action still moves
// to the redo stack so the bookkeeping stays linear.
func (e *Engine) Undo() bool {
	if len(e.undo) == 0 {
		return false
	}
	a := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	if !a.Revert(e.store) {
		canvas.Logger().Warn("undo skipped, target missing", "action", a.Name())
	}
	e.redo = append(e.redo, a)
	e.store.ClearSelection()
	return true
}

// Redo replays the most recently undone action. No-op on an empty redo
// stack; a missing target fails soft like Undo.
func (e *Engine) Redo() bool {
	if len(e.redo) == 0 {
		return false
	}
	a := e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]
	if !a.Apply(e.store) {
		canvas.Logger().Warn("redo skipped, target missing", "action", a.Name())
	}
	e.undo = append(e.undo, a)
	return true
}

// CanUndo reports whether the undo stack is non-empty.
func (e *Engine) CanUndo() bool { return len(e.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (e *Engine) CanRedo() bool { return len(e.redo) > 0 }

// Reset drops both stacks, used on project load and new-project.
func (e *Engine) Reset() {
	e.undo = e.undo[:0]
	e.redo = e.redo[:0]
}
