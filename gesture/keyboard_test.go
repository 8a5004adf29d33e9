package gesture

import (
	"testing"

	"github.com/creatorkit/canvas"
)

func TestArrowNudgeRecordsIndividually(t *testing.T) {
	f := newFixture()
	f.addAt("A", 100, 100)
	f.store.SelectSingle("A")

	f.ctrl.KeyDown(KeyArrowRight, Modifiers{})
	f.ctrl.KeyDown(KeyArrowRight, Modifiers{})
	f.ctrl.KeyDown(KeyArrowDown, Modifiers{Shift: true})

	el, _ := f.store.Get("A")
	if el.X != 102 || el.Y != 110 {
		t.Errorf("position = (%v,%v), want (102,110)", el.X, el.Y)
	}

	// Three nudges, three undo steps.
	f.hist.Undo()
	f.hist.Undo()
	f.hist.Undo()
	el, _ = f.store.Get("A")
	if el.X != 100 || el.Y != 100 {
		t.Errorf("position after undos = (%v,%v), want (100,100)", el.X, el.Y)
	}
	if f.hist.CanUndo() {
		t.Error("unexpected extra history entries")
	}
}

func TestNudgeClampedAtEdgeRecordsNothing(t *testing.T) {
	f := newFixture()
	f.addAt("A", 0, 0)
	f.store.SelectSingle("A")

	f.ctrl.KeyDown(KeyArrowLeft, Modifiers{})
	if f.hist.CanUndo() {
		t.Error("fully clamped nudge recorded an action")
	}
}

func TestNudgeSkipsLockedAndBackground(t *testing.T) {
	f := newFixture()
	f.addAt("A", 50, 50)
	f.store.Update("A", canvas.Patch{Locked: canvas.B(true)})
	f.store.SelectSingle("A")

	f.ctrl.KeyDown(KeyArrowRight, Modifiers{})
	el, _ := f.store.Get("A")
	if el.X != 50 {
		t.Errorf("locked element nudged to %v", el.X)
	}
}

func TestDeleteKeyDeletesEachSelected(t *testing.T) {
	f := newFixture()
	f.addAt("A", 10, 10)
	f.addAt("B", 20, 20)
	f.store.SelectSingle("A")
	f.store.ToggleInSelection("B")

	f.ctrl.KeyDown(KeyDelete, Modifiers{})
	if f.store.Len() != 0 {
		t.Fatalf("len = %d, want 0", f.store.Len())
	}

	// One delete action per element, each restorable.
	f.hist.Undo()
	f.hist.Undo()
	if f.store.Len() != 2 {
		t.Errorf("len after undos = %d, want 2", f.store.Len())
	}
}

func TestUndoRedoChords(t *testing.T) {
	f := newFixture()
	f.ctrl.InsertText("hello")
	if f.store.Len() != 1 {
		t.Fatal("insert failed")
	}

	f.ctrl.KeyDown(KeyZ, Modifiers{Command: true})
	if f.store.Len() != 0 {
		t.Error("Cmd+Z did not undo")
	}
	f.ctrl.KeyDown(KeyZ, Modifiers{Command: true, Shift: true})
	if f.store.Len() != 1 {
		t.Error("Cmd+Shift+Z did not redo")
	}
	f.ctrl.KeyDown(KeyZ, Modifiers{Command: true})
	f.ctrl.KeyDown(KeyY, Modifiers{Command: true})
	if f.store.Len() != 1 {
		t.Error("Cmd+Y did not redo")
	}
}

func TestSelectAllChordAndEscape(t *testing.T) {
	f := newFixture()
	f.addAt("A", 0, 0)
	f.addAt("B", 0, 0)

	f.ctrl.KeyDown(KeyA, Modifiers{Command: true})
	if f.store.SelectionLen() != 2 {
		t.Errorf("selection len = %d, want 2", f.store.SelectionLen())
	}
	f.ctrl.KeyDown(KeyEscape, Modifiers{})
	if f.store.SelectionLen() != 0 {
		t.Error("Escape did not clear the selection")
	}
}

func TestCopyPasteChords(t *testing.T) {
	f := newFixture()
	f.addAt("A", 100, 100)
	f.store.SelectSingle("A")

	f.ctrl.KeyDown(KeyC, Modifiers{Command: true})
	f.ctrl.KeyDown(KeyV, Modifiers{Command: true})

	if f.store.Len() != 2 {
		t.Fatalf("len = %d, want 2", f.store.Len())
	}
	var pasted canvas.Element
	for _, el := range f.store.All() {
		if el.ID != "A" {
			pasted = el
		}
	}
	if pasted.X != 110 || pasted.Y != 110 {
		t.Errorf("pasted at (%v,%v), want offset (110,110)", pasted.X, pasted.Y)
	}
	if pasted.ID == "A" || pasted.ID == "" {
		t.Errorf("pasted element needs a fresh id, got %q", pasted.ID)
	}
	if !f.store.IsSelected(pasted.ID) || f.store.IsSelected("A") {
		t.Error("paste should select the new element only")
	}

	// Paste is undoable as a copy action.
	f.hist.Undo()
	if f.store.Len() != 1 {
		t.Error("undo did not remove the pasted element")
	}
}
