package gesture

import (
	"testing"

	"github.com/creatorkit/canvas"
)

func TestInsertAssetSelectsAndRecords(t *testing.T) {
	f := newFixture()
	el := f.ctrl.InsertAsset("asset-1")

	if !f.store.IsSelected(el.ID) {
		t.Error("inserted element not selected")
	}
	if el.ZIndex != 0 {
		t.Errorf("first element z = %d, want 0", el.ZIndex)
	}

	second := f.ctrl.InsertAsset("asset-2")
	if second.ZIndex != 1 {
		t.Errorf("second element z = %d, want 1", second.ZIndex)
	}

	f.hist.Undo()
	if _, ok := f.store.Get(second.ID); ok {
		t.Error("undo did not remove the created element")
	}
}

func TestInsertBackgroundUsesNegativeBand(t *testing.T) {
	f := newFixture()
	first := f.ctrl.InsertBackground("bg-1")
	second := f.ctrl.InsertBackground("bg-2")

	if first.ZIndex != canvas.BackgroundZBase {
		t.Errorf("first background z = %d, want %d", first.ZIndex, canvas.BackgroundZBase)
	}
	if second.ZIndex != canvas.BackgroundZBase-1 {
		t.Errorf("second background z = %d, want %d", second.ZIndex, canvas.BackgroundZBase-1)
	}
}

func TestFlipRecordsUpdate(t *testing.T) {
	f := newFixture()
	el := f.ctrl.InsertAsset("a")

	f.ctrl.Flip(el.ID, true)
	got, _ := f.store.Get(el.ID)
	if !got.FlipHorizontal {
		t.Fatal("flip not applied")
	}

	f.hist.Undo()
	got, _ = f.store.Get(el.ID)
	if got.FlipHorizontal {
		t.Error("undo did not restore the flip")
	}
}

func TestFlipWorksOnBackgrounds(t *testing.T) {
	f := newFixture()
	bg := f.ctrl.InsertBackground("bg")

	f.ctrl.Flip(bg.ID, false)
	got, _ := f.store.Get(bg.ID)
	if !got.FlipVertical {
		t.Error("vertical flip is the one background mutation allowed and it failed")
	}
}

func TestReorderLayerRecordsSingleAction(t *testing.T) {
	f := newFixture()
	a := f.ctrl.InsertAsset("a")
	b := f.ctrl.InsertAsset("b")
	f.hist.Reset()

	if !f.ctrl.ReorderLayer(a.ID, 1) {
		t.Fatal("reorder rejected")
	}
	gotA, _ := f.store.Get(a.ID)
	gotB, _ := f.store.Get(b.ID)
	if gotB.ZIndex != 0 || gotA.ZIndex != 1 {
		t.Errorf("order = b:%d a:%d, want b:0 a:1", gotB.ZIndex, gotA.ZIndex)
	}

	// One undo restores the whole order, not just the moved element.
	f.hist.Undo()
	if f.hist.CanUndo() {
		t.Error("reorder recorded more than one action")
	}
	gotA, _ = f.store.Get(a.ID)
	gotB, _ = f.store.Get(b.ID)
	if gotA.ZIndex != 0 || gotB.ZIndex != 1 {
		t.Errorf("undo order = a:%d b:%d, want a:0 b:1", gotA.ZIndex, gotB.ZIndex)
	}
}

func TestReorderLayerUndoKeepsZOrderStrict(t *testing.T) {
	f := newFixture()
	first := f.ctrl.InsertAsset("first")
	second := f.ctrl.InsertAsset("second")
	third := f.ctrl.InsertAsset("third")

	if !f.ctrl.ReorderLayer(first.ID, 2) {
		t.Fatal("reorder rejected")
	}
	f.hist.Undo()

	want := map[string]int{first.ID: 0, second.ID: 1, third.ID: 2}
	seen := map[int]string{}
	for _, el := range f.store.All() {
		if prev, dup := seen[el.ZIndex]; dup {
			t.Fatalf("z-index %d shared by %s and %s after undo", el.ZIndex, prev, el.ID)
		}
		seen[el.ZIndex] = el.ID
		if el.ZIndex != want[el.ID] {
			t.Errorf("%s z = %d, want %d", el.AssetID, el.ZIndex, want[el.ID])
		}
	}

	// Redo re-derives the shifted indices the same way.
	f.hist.Redo()
	got := map[string]int{}
	for _, el := range f.store.All() {
		got[el.ID] = el.ZIndex
	}
	if got[second.ID] != 0 || got[third.ID] != 1 || got[first.ID] != 2 {
		t.Errorf("redo order = second:%d third:%d first:%d, want 0 1 2",
			got[second.ID], got[third.ID], got[first.ID])
	}
}

func TestTextEditCommit(t *testing.T) {
	f := newFixture()
	el := f.ctrl.InsertText("before")

	if !f.ctrl.BeginTextEdit(el.ID) {
		t.Fatal("BeginTextEdit failed")
	}
	if f.ctrl.Phase() != TextEditing {
		t.Fatalf("phase = %v, want TextEditing", f.ctrl.Phase())
	}
	f.ctrl.SetText("befor")
	f.ctrl.SetText("after")
	f.ctrl.CommitTextEdit()

	got, _ := f.store.Get(el.ID)
	if got.Text != "after" {
		t.Errorf("text = %q, want %q", got.Text, "after")
	}

	// Intermediate buffers were ephemeral: one undo restores the original.
	f.hist.Undo()
	got, _ = f.store.Get(el.ID)
	if got.Text != "before" {
		t.Errorf("text after undo = %q, want %q", got.Text, "before")
	}
}

func TestTextEditEscapeCancels(t *testing.T) {
	f := newFixture()
	el := f.ctrl.InsertText("keep me")

	f.ctrl.BeginTextEdit(el.ID)
	f.ctrl.SetText("discard me")
	f.ctrl.KeyDown(KeyEscape, Modifiers{})

	if f.ctrl.Phase() != Idle {
		t.Errorf("phase = %v, want Idle", f.ctrl.Phase())
	}
	got, _ := f.store.Get(el.ID)
	if got.Text != "keep me" {
		t.Errorf("text = %q, want original", got.Text)
	}
	if f.hist.CanUndo() {
		// InsertText recorded a create; consume it and expect nothing else.
		f.hist.Undo()
		if f.hist.CanUndo() {
			t.Error("cancelled edit left history entries")
		}
	}
}

func TestBeginTextEditRejectsNonText(t *testing.T) {
	f := newFixture()
	el := f.ctrl.InsertAsset("a")
	if f.ctrl.BeginTextEdit(el.ID) {
		t.Error("asset element entered text editing")
	}
}

func TestCommitWithoutChangeRecordsNothing(t *testing.T) {
	f := newFixture()
	el := f.ctrl.InsertText("same")
	f.hist.Reset()

	f.ctrl.BeginTextEdit(el.ID)
	f.ctrl.SetText("same")
	f.ctrl.CommitTextEdit()
	if f.hist.CanUndo() {
		t.Error("unchanged text edit recorded an action")
	}
}

func TestCopySkipsBackgrounds(t *testing.T) {
	f := newFixture()
	f.ctrl.InsertBackground("bg")
	el := f.ctrl.InsertAsset("a")
	f.store.SelectAll()

	f.ctrl.CopySelection()
	f.ctrl.Paste()

	// Only the asset was cloned.
	if f.store.Len() != 3 {
		t.Errorf("len = %d, want 3 (bg + asset + paste)", f.store.Len())
	}
	count := 0
	for _, e := range f.store.All() {
		if e.IsBackground {
			count++
		}
	}
	if count != 1 {
		t.Errorf("background count = %d, want 1", count)
	}
	_ = el
}
