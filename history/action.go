// Package history records reversible actions over the element store and
// implements linear undo/redo.
//
// An Action is the unit of undo granularity: one committed gesture, one
// nudge, one create or delete. Gesture previews never pass through here —
// the interaction layer mutates the store directly and records a single
// action on gesture completion.
package history

import (
	"github.com/creatorkit/canvas"
)

// Action is a reversible unit of change. Apply replays the forward
// change, Revert applies the exact inverse. Both report false when the
// target element no longer exists: history integrity is a soundness
// property, not a user-facing error, so a missing target is skipped
// rather than raised.
type Action interface {
	// Name identifies the action kind for logging.
	Name() string

	Apply(st *canvas.Store) bool
	Revert(st *canvas.Store) bool
}

// Move records a completed drag of one element.
type Move struct {
	ID       string
	From, To canvas.Point
}

func (a *Move) Name() string { return "move" }

func (a *Move) Apply(st *canvas.Store) bool {
	return st.Update(a.ID, canvas.PositionPatch(a.To))
}

func (a *Move) Revert(st *canvas.Store) bool {
	return st.Update(a.ID, canvas.PositionPatch(a.From))
}

// Resize records a completed resize gesture.
type Resize struct {
	ID       string
	From, To canvas.Rect
}

func (a *Resize) Name() string { return "resize" }

func (a *Resize) Apply(st *canvas.Store) bool {
	return st.Update(a.ID, canvas.RectPatch(a.To))
}

func (a *Resize) Revert(st *canvas.Store) bool {
	return st.Update(a.ID, canvas.RectPatch(a.From))
}

// Rotate records a completed rotate gesture.
type Rotate struct {
	ID       string
	From, To float64
}

func (a *Rotate) Name() string { return "rotate" }

func (a *Rotate) Apply(st *canvas.Store) bool {
	return st.Update(a.ID, canvas.Patch{Rotation: canvas.F(a.To)})
}

func (a *Rotate) Revert(st *canvas.Store) bool {
	return st.Update(a.ID, canvas.Patch{Rotation: canvas.F(a.From)})
}

// Update is the generic field patch action, used for flips, z-index
// changes, text edits, and style changes. Before and After must cover
// the same field set or the round trip drifts.
type Update struct {
	ID            string
	Before, After canvas.Patch
}

func (a *Update) Name() string { return "update" }

func (a *Update) Apply(st *canvas.Store) bool {
	return st.Update(a.ID, a.After)
}

func (a *Update) Revert(st *canvas.Store) bool {
	return st.Update(a.ID, a.Before)
}

// Reorder records a layer move. It captures only the moved element's
// own z-index before and after; the neighbors' shifted indices are a
// side effect of renumbering and are derivable, so Apply and Revert
// both replay the removal/reinsertion renumber rather than patching a
// single index — a bare patch would leave two elements sharing a
// z-index.
type Reorder struct {
	ID       string
	From, To int
}

func (a *Reorder) Name() string { return "reorder" }

func (a *Reorder) Apply(st *canvas.Store) bool {
	return st.ReorderToZ(a.ID, a.To)
}

func (a *Reorder) Revert(st *canvas.Store) bool {
	return st.ReorderToZ(a.ID, a.From)
}

// Create records an element addition. Revert removes exactly the created
// element and nothing else.
type Create struct {
	Element canvas.Element
}

func (a *Create) Name() string { return "create" }

func (a *Create) Apply(st *canvas.Store) bool {
	return st.Add(a.Element.Clone())
}

func (a *Create) Revert(st *canvas.Store) bool {
	_, ok := st.Remove(a.Element.ID)
	return ok
}

// Delete records an element removal, carrying a full snapshot so Revert
// can restore the element with identical fields.
type Delete struct {
	Element canvas.Element
}

func (a *Delete) Name() string { return "delete" }

func (a *Delete) Apply(st *canvas.Store) bool {
	_, ok := st.Remove(a.Element.ID)
	return ok
}

func (a *Delete) Revert(st *canvas.Store) bool {
	return st.Add(a.Element.Clone())
}

// Copy records a duplication: a new element cloned from a source. Only
// the new element is owned by the action; the source is untouched.
type Copy struct {
	SourceID string
	Element  canvas.Element
}

func (a *Copy) Name() string { return "copy" }

func (a *Copy) Apply(st *canvas.Store) bool {
	return st.Add(a.Element.Clone())
}

func (a *Copy) Revert(st *canvas.Store) bool {
	_, ok := st.Remove(a.Element.ID)
	return ok
}
