// Package gesture implements the interaction controller: a state machine
// that consumes pointer, touch, and keyboard events and turns completed
// gestures into committed history actions.
//
// One gesture is active at a time. The current gesture is a single
// tagged value — never parallel boolean flags — so illegal combinations
// (dragging while resizing) cannot be represented. While a gesture is in
// flight the controller writes ephemeral previews straight to the store;
// only on release does it compare the result against the gesture-start
// snapshot and record an action.
package gesture

import (
	"github.com/creatorkit/canvas"
	"github.com/creatorkit/canvas/history"
)

// HitKind classifies what the pointer landed on. Hit testing itself is
// the rendering layer's job; the controller only consumes the result.
type HitKind int

const (
	// HitNone is empty canvas background.
	HitNone HitKind = iota

	// HitElement is an element body.
	HitElement

	// HitHandle is one of the eight resize handles.
	HitHandle

	// HitRotate is the rotation affordance above the selection box.
	HitRotate

	// HitControl is a recognized UI control; clicks on it never clear
	// the selection.
	HitControl
)

// Hit describes a pointer-down target.
type Hit struct {
	Kind      HitKind
	ElementID string
	Handle    canvas.Handle
}

// Modifiers carries the modifier-key state accompanying an event.
type Modifiers struct {
	// Command is Ctrl on Linux/Windows, Cmd on macOS.
	Command bool
	Shift   bool

	// Pan marks a pan intent (space held or pan tool active).
	Pan bool
}

// Phase is the gesture state machine's current state.
type Phase int

const (
	Idle Phase = iota
	Dragging
	Resizing
	Rotating
	Panning
	TextEditing
)

// gestureState is the single "current gesture" value. Which fields are
// meaningful depends on the phase.
type gestureState struct {
	phase       Phase
	id          string
	startScreen canvas.Point

	// Dragging: initial positions of every selected member, so one
	// uniform delta applies to the whole multi-selection.
	origins map[string]canvas.Point

	// Resizing.
	startRect canvas.Rect
	handle    canvas.Handle

	// Rotating.
	startAngle      float64
	initialRotation float64

	// Panning.
	startPan canvas.Point

	// Text editing.
	textOriginal string
}

// Controller drives gestures over one store/history/viewport triple.
// It is event-loop driven and not safe for concurrent use.
type Controller struct {
	store *canvas.Store
	hist  *history.Engine
	view  *canvas.Viewport

	state gestureState

	// suppressClick eats the synthetic click that follows a completed
	// drag/resize/rotate release, so it cannot deselect.
	suppressClick bool

	clipboard []canvas.Element
}

// NewController creates a controller over the given store, history
// engine, and viewport.
func NewController(st *canvas.Store, hist *history.Engine, view *canvas.Viewport) *Controller {
	return &Controller{store: st, hist: hist, view: view}
}

// Phase returns the current gesture phase.
func (c *Controller) Phase() Phase { return c.state.phase }

// PointerDown starts a gesture according to what was hit. Selection
// changes happen here, on press, so that dragging an unselected element
// selects and moves it in one motion.
func (c *Controller) PointerDown(hit Hit, screen canvas.Point, mods Modifiers) {
	if c.state.phase == TextEditing {
		// Any press outside the edit box commits the edit first.
		if hit.Kind != HitControl && hit.ElementID != c.state.id {
			c.CommitTextEdit()
		} else if hit.Kind == HitControl {
			return
		}
	}
	if c.state.phase != Idle {
		return
	}

	switch hit.Kind {
	case HitControl:
		return

	case HitNone:
		if mods.Pan {
			c.state = gestureState{phase: Panning, startScreen: screen, startPan: c.view.Pan}
			canvas.Logger().Debug("gesture start", "phase", "panning")
		}

	case HitElement:
		el, ok := c.store.Get(hit.ElementID)
		if !ok {
			return
		}
		if mods.Command {
			c.store.ToggleInSelection(el.ID)
			return
		}
		if mods.Shift {
			if anchor := c.store.Primary(); anchor != "" {
				c.store.SelectRange(anchor, el.ID)
			} else {
				c.store.SelectSingle(el.ID)
			}
			return
		}
		if !c.store.IsSelected(el.ID) {
			c.store.SelectSingle(el.ID)
		}
		if el.Locked || el.IsBackground {
			return
		}
		origins := make(map[string]canvas.Point)
		for _, id := range c.store.Selection() {
			member, ok := c.store.Get(id)
			if !ok || member.Locked || member.IsBackground {
				continue
			}
			origins[id] = canvas.Pt(member.X, member.Y)
		}
		c.state = gestureState{phase: Dragging, id: el.ID, startScreen: screen, origins: origins}
		canvas.Logger().Debug("gesture start", "phase", "dragging", "members", len(origins))

	case HitHandle:
		el, ok := c.store.Get(hit.ElementID)
		if !ok || el.Locked || el.IsBackground {
			return
		}
		c.state = gestureState{
			phase:       Resizing,
			id:          el.ID,
			startScreen: screen,
			startRect:   el.Rect(),
			handle:      hit.Handle,
		}
		canvas.Logger().Debug("gesture start", "phase", "resizing", "handle", int(hit.Handle))

	case HitRotate:
		el, ok := c.store.Get(hit.ElementID)
		if !ok || el.Locked || el.IsBackground {
			return
		}
		center := c.view.CanvasToScreen(el.Center())
		c.state = gestureState{
			phase:           Rotating,
			id:              el.ID,
			startScreen:     screen,
			startAngle:      canvas.PointerAngle(screen, center),
			initialRotation: el.Rotation,
		}
		canvas.Logger().Debug("gesture start", "phase", "rotating")
	}
}

// PointerMove advances the active gesture, writing an ephemeral preview
// to the store. Nothing is recorded here.
func (c *Controller) PointerMove(screen canvas.Point, mods Modifiers) {
	switch c.state.phase {
	case Dragging:
		// Raw screen deltas divide by zoom only; they are already
		// independent of the viewport centering term.
		delta := screen.Sub(c.state.startScreen).Div(c.view.Zoom)
		for id, origin := range c.state.origins {
			c.store.Update(id, canvas.PositionPatch(origin.Add(delta)))
		}

	case Resizing:
		r := canvas.ApplyResize(c.state.startRect, c.state.handle, screen.Sub(c.state.startScreen), c.view.Zoom)
		c.store.Update(c.state.id, canvas.RectPatch(r))

	case Rotating:
		el, ok := c.store.Get(c.state.id)
		if !ok {
			return
		}
		center := c.view.CanvasToScreen(el.Center())
		angle := canvas.PointerAngle(screen, center)
		rot := canvas.ApplyRotation(c.state.initialRotation, c.state.startAngle, angle, mods.Shift, el.IsBackground)
		c.store.Update(c.state.id, canvas.Patch{Rotation: canvas.F(rot)})

	case Panning:
		c.view.Pan = c.state.startPan.Add(screen.Sub(c.state.startScreen).Div(c.view.AutoScale))
	}
}

// PointerUp completes the active gesture. If the final state differs
// from the gesture-start snapshot it records one action (one per member
// for a multi-drag) and arms the click suppression.
func (c *Controller) PointerUp(screen canvas.Point, mods Modifiers) {
	st := c.state
	if st.phase != Idle && st.phase != TextEditing {
		c.state = gestureState{}
	}

	switch st.phase {
	case Dragging:
		recorded := false
		for id, origin := range st.origins {
			el, ok := c.store.Get(id)
			if !ok {
				continue
			}
			final := canvas.Pt(el.X, el.Y)
			if final == origin {
				continue
			}
			c.hist.Record(&history.Move{ID: id, From: origin, To: final})
			recorded = true
		}
		if recorded {
			c.suppressClick = true
		}

	case Resizing:
		el, ok := c.store.Get(st.id)
		if !ok {
			return
		}
		if final := el.Rect(); !final.Eq(st.startRect) {
			c.hist.Record(&history.Resize{ID: st.id, From: st.startRect, To: final})
			c.suppressClick = true
		}

	case Rotating:
		el, ok := c.store.Get(st.id)
		if !ok {
			return
		}
		if el.Rotation != canvas.NormalizeAngle(st.initialRotation) {
			c.hist.Record(&history.Rotate{ID: st.id, From: st.initialRotation, To: el.Rotation})
			c.suppressClick = true
		}
	}
}

// Click handles the synthetic click that follows pointer-up. A click on
// empty canvas clears the selection — unless it trails a just-completed
// gesture or targets a recognized UI control.
func (c *Controller) Click(hit Hit, mods Modifiers) {
	if c.suppressClick {
		c.suppressClick = false
		return
	}
	if c.state.phase == TextEditing {
		return
	}
	switch hit.Kind {
	case HitNone:
		c.store.ClearSelection()
	case HitControl, HitElement, HitHandle, HitRotate:
		// Element selection already happened on pointer-down.
	}
}

// DoubleClick opens text editing on a text element.
func (c *Controller) DoubleClick(hit Hit) {
	if hit.Kind != HitElement || c.state.phase != Idle {
		return
	}
	c.BeginTextEdit(hit.ElementID)
}

// TouchStart mirrors PointerDown for touch devices.
func (c *Controller) TouchStart(hit Hit, screen canvas.Point) {
	c.PointerDown(hit, screen, Modifiers{})
}

// TouchMove mirrors PointerMove; the same 1/zoom delta math applies to
// raw touch deltas.
func (c *Controller) TouchMove(screen canvas.Point) {
	c.PointerMove(screen, Modifiers{})
}

// TouchEnd mirrors PointerUp.
func (c *Controller) TouchEnd(screen canvas.Point) {
	c.PointerUp(screen, Modifiers{})
}
