package gesture

import (
	"github.com/google/uuid"

	"github.com/creatorkit/canvas"
	"github.com/creatorkit/canvas/history"
)

// pasteOffset is the logical-unit nudge applied to pasted elements so a
// paste is visibly distinct from its source.
const pasteOffset = 10.0

// InsertAsset adds a new asset element at the default placement, records
// its creation, and selects it. The store mutation returns the element
// synchronously and selection follows immediately — a two-phase commit
// with no reliance on render timing.
func (c *Controller) InsertAsset(assetID string) canvas.Element {
	el := canvas.NewAssetElement(assetID, c.store.NextZIndex())
	c.store.Add(el)
	c.hist.Record(&history.Create{Element: el})
	c.store.SelectSingle(el.ID)
	return el
}

// InsertText adds a new text element, records its creation, and selects it.
func (c *Controller) InsertText(text string) canvas.Element {
	el := canvas.NewTextElement(text, c.store.NextZIndex())
	c.store.Add(el)
	c.hist.Record(&history.Create{Element: el})
	c.store.SelectSingle(el.ID)
	return el
}

// InsertBackground adds a background element in the next negative z
// slot and records its creation. Backgrounds are selectable (for flips
// and opacity) but not movable.
func (c *Controller) InsertBackground(assetID string) canvas.Element {
	el := canvas.NewBackgroundElement(assetID, c.store.NextBackgroundZIndex())
	c.store.Add(el)
	c.hist.Record(&history.Create{Element: el})
	c.store.SelectSingle(el.ID)
	return el
}

// DeleteSelection removes every selected element, recording one delete
// action per element, each carrying a full snapshot for undo.
func (c *Controller) DeleteSelection() {
	for _, id := range c.store.Selection() {
		snap, ok := c.store.Remove(id)
		if !ok {
			continue
		}
		c.hist.Record(&history.Delete{Element: snap})
	}
}

// CopySelection snapshots the selected non-background elements into the
// internal clipboard, in z order.
func (c *Controller) CopySelection() {
	c.clipboard = c.clipboard[:0]
	for _, id := range c.store.Selection() {
		el, ok := c.store.Get(id)
		if !ok || el.IsBackground {
			continue
		}
		c.clipboard = append(c.clipboard, el.Clone())
	}
}

// Paste clones the clipboard onto the canvas with a small offset and
// fresh ids, recording one copy action per element, and selects the
// pasted set.
func (c *Controller) Paste() {
	first := true
	for _, src := range c.clipboard {
		el := src.Clone()
		el.ID = uuid.NewString()
		el.X = src.X + pasteOffset
		el.Y = src.Y + pasteOffset
		el.ZIndex = c.store.NextZIndex()
		if !c.store.Add(el) {
			continue
		}
		c.hist.Record(&history.Copy{SourceID: src.ID, Element: el})
		if first {
			c.store.SelectSingle(el.ID)
			first = false
		} else {
			c.store.ToggleInSelection(el.ID)
		}
	}
}

// Flip toggles the horizontal or vertical flip of an element and records
// it as a generic update action.
func (c *Controller) Flip(id string, horizontal bool) {
	el, ok := c.store.Get(id)
	if !ok || el.Locked {
		return
	}
	var before, after canvas.Patch
	if horizontal {
		before.FlipHorizontal = canvas.B(el.FlipHorizontal)
		after.FlipHorizontal = canvas.B(!el.FlipHorizontal)
	} else {
		before.FlipVertical = canvas.B(el.FlipVertical)
		after.FlipVertical = canvas.B(!el.FlipVertical)
	}
	if !c.store.Update(id, after) {
		return
	}
	c.hist.Record(&history.Update{ID: id, Before: before, After: after})
}

// ReorderLayer moves an element to a target position in the layer list
// and records a single reorder action carrying the moved element's own
// before/after z-index. The other elements' shifted indices are a side
// effect of renumbering and are derivable, so they carry no history of
// their own; undo and redo re-derive them by replaying the renumber.
func (c *Controller) ReorderLayer(id string, target int) bool {
	before, after, ok := c.store.Reorder(id, target)
	if !ok {
		return false
	}
	c.hist.Record(&history.Reorder{ID: id, From: before, To: after})
	return true
}

// BeginTextEdit enters text editing on a text element.
func (c *Controller) BeginTextEdit(id string) bool {
	el, ok := c.store.Get(id)
	if !ok || el.Kind != canvas.KindText || el.Locked || c.state.phase != Idle {
		return false
	}
	c.state = gestureState{phase: TextEditing, id: id, textOriginal: el.Text}
	return true
}

// SetText writes the in-progress edit buffer to the store as an
// ephemeral preview. Nothing is recorded until commit.
func (c *Controller) SetText(text string) {
	if c.state.phase != TextEditing {
		return
	}
	c.store.Update(c.state.id, canvas.Patch{Text: canvas.S(text)})
}

// CommitTextEdit ends the edit, recording one update action when the
// text actually changed.
func (c *Controller) CommitTextEdit() {
	if c.state.phase != TextEditing {
		return
	}
	st := c.state
	c.state = gestureState{}

	el, ok := c.store.Get(st.id)
	if !ok || el.Text == st.textOriginal {
		return
	}
	c.hist.Record(&history.Update{
		ID:     st.id,
		Before: canvas.Patch{Text: canvas.S(st.textOriginal)},
		After:  canvas.Patch{Text: canvas.S(el.Text)},
	})
}

// CancelTextEdit discards the edit buffer and restores the original text.
func (c *Controller) CancelTextEdit() {
	if c.state.phase != TextEditing {
		return
	}
	st := c.state
	c.state = gestureState{}
	c.store.Update(st.id, canvas.Patch{Text: canvas.S(st.textOriginal)})
}
