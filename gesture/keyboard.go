package gesture

import (
	"github.com/creatorkit/canvas"
	"github.com/creatorkit/canvas/history"
)

// Key identifies a keyboard key in the subset the editor reacts to.
type Key string

// Keys the controller handles.
const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyDelete     Key = "Delete"
	KeyEscape     Key = "Escape"
	KeyA          Key = "a"
	KeyC          Key = "c"
	KeyV          Key = "v"
	KeyY          Key = "y"
	KeyZ          Key = "z"
)

// Nudge distances in logical units.
const (
	nudgeStep      = 1.0
	nudgeStepLarge = 10.0
)

// KeyDown dispatches a key press. During text editing only Escape is
// meaningful here — character input flows through SetText.
func (c *Controller) KeyDown(k Key, mods Modifiers) {
	if c.state.phase == TextEditing {
		if k == KeyEscape {
			c.CancelTextEdit()
		}
		return
	}

	if mods.Command {
		switch k {
		case KeyZ:
			if mods.Shift {
				c.hist.Redo()
			} else {
				c.hist.Undo()
			}
		case KeyY:
			c.hist.Redo()
		case KeyA:
			c.store.SelectAll()
		case KeyC:
			c.CopySelection()
		case KeyV:
			c.Paste()
		}
		return
	}

	switch k {
	case KeyArrowUp:
		c.nudge(canvas.Pt(0, -1), mods)
	case KeyArrowDown:
		c.nudge(canvas.Pt(0, 1), mods)
	case KeyArrowLeft:
		c.nudge(canvas.Pt(-1, 0), mods)
	case KeyArrowRight:
		c.nudge(canvas.Pt(1, 0), mods)
	case KeyDelete:
		c.DeleteSelection()
	case KeyEscape:
		c.store.ClearSelection()
	}
}

// nudge moves every selected movable element by one step in the given
// direction. Each nudge is individually recorded, so repeated arrow
// presses undo one step at a time.
func (c *Controller) nudge(dir canvas.Point, mods Modifiers) {
	step := nudgeStep
	if mods.Shift {
		step = nudgeStepLarge
	}
	for _, id := range c.store.Selection() {
		el, ok := c.store.Get(id)
		if !ok || el.Locked || el.IsBackground {
			continue
		}
		from := canvas.Pt(el.X, el.Y)
		if !c.store.Update(id, canvas.PositionPatch(from.Add(dir.Mul(step)))) {
			continue
		}
		moved, _ := c.store.Get(id)
		to := canvas.Pt(moved.X, moved.Y)
		if to == from {
			// Clamped against the canvas edge; nothing to record.
			continue
		}
		c.hist.Record(&history.Move{ID: id, From: from, To: to})
	}
}
