package canvas

import "testing"

func fixedElement(id string, z int) Element {
	el := NewAssetElement("asset-"+id, z)
	el.ID = id
	return el
}

func TestStoreAddRejectsDuplicateIDs(t *testing.T) {
	st := NewStore()
	if !st.Add(fixedElement("a", 0)) {
		t.Fatal("first add failed")
	}
	if st.Add(fixedElement("a", 1)) {
		t.Error("duplicate id accepted")
	}
	if st.Len() != 1 {
		t.Errorf("len = %d, want 1", st.Len())
	}
}

func TestStoreUpdateMissingElement(t *testing.T) {
	st := NewStore()
	if st.Update("ghost", Patch{X: F(10)}) {
		t.Error("update of missing element reported success")
	}
}

func TestStoreRemovePrunesSelection(t *testing.T) {
	st := NewStore()
	st.Add(fixedElement("a", 0))
	st.Add(fixedElement("b", 1))
	st.SelectSingle("a")
	st.ToggleInSelection("b")

	if _, ok := st.Remove("b"); !ok {
		t.Fatal("remove failed")
	}
	if st.IsSelected("b") {
		t.Error("removed element still selected")
	}
	if !st.IsSelected("a") {
		t.Error("unrelated selection dropped")
	}
}

func TestStoreAllSortedByZ(t *testing.T) {
	st := NewStore()
	st.Add(fixedElement("top", 5))
	st.Add(fixedElement("bottom", -1000))
	st.Add(fixedElement("mid", 0))

	all := st.All()
	wantOrder := []string{"bottom", "mid", "top"}
	for i, id := range wantOrder {
		if all[i].ID != id {
			t.Errorf("All()[%d] = %s, want %s", i, all[i].ID, id)
		}
	}
}

func TestStoreOnChangeFiresOnMutation(t *testing.T) {
	st := NewStore()
	fired := 0
	st.OnChange(func() { fired++ })

	st.Add(fixedElement("a", 0))
	st.Update("a", Patch{X: F(5)})
	st.Remove("a")

	if fired != 3 {
		t.Errorf("observer fired %d times, want 3", fired)
	}

	before := fired
	st.Add(fixedElement("b", 0))
	st.SelectSingle("b")
	st.ClearSelection()
	if fired != before+1 {
		t.Errorf("selection changes fired the observer (%d extra)", fired-before-1)
	}
}

func TestSelectSingleReplacesSelection(t *testing.T) {
	st := NewStore()
	st.Add(fixedElement("a", 0))
	st.Add(fixedElement("b", 1))
	st.SelectSingle("a")
	st.ToggleInSelection("b")
	st.SelectSingle("b")

	if st.SelectionLen() != 1 || !st.IsSelected("b") {
		t.Errorf("selection = %v, want only b", st.Selection())
	}
	if st.Primary() != "b" {
		t.Errorf("primary = %q, want b", st.Primary())
	}
}

func TestToggleInSelection(t *testing.T) {
	st := NewStore()
	st.Add(fixedElement("a", 0))
	st.Add(fixedElement("b", 1))

	st.ToggleInSelection("a")
	if st.Primary() != "a" {
		t.Fatalf("first toggle should set primary, got %q", st.Primary())
	}
	st.ToggleInSelection("b")
	if st.SelectionLen() != 2 {
		t.Fatalf("selection len = %d, want 2", st.SelectionLen())
	}
	st.ToggleInSelection("a")
	if st.IsSelected("a") {
		t.Error("a still selected after toggle off")
	}
	if st.Primary() != "b" {
		t.Errorf("primary after demotion = %q, want b", st.Primary())
	}
}

func TestSelectRangeIsContiguousZSlice(t *testing.T) {
	st := NewStore()
	// Insert out of order to prove the range runs over z, not insertion.
	st.Add(fixedElement("c", 2))
	st.Add(fixedElement("a", 0))
	st.Add(fixedElement("e", 4))
	st.Add(fixedElement("b", 1))
	st.Add(fixedElement("d", 3))

	st.SelectSingle("b")
	st.SelectRange("b", "d")

	for _, id := range []string{"b", "c", "d"} {
		if !st.IsSelected(id) {
			t.Errorf("%s not selected", id)
		}
	}
	for _, id := range []string{"a", "e"} {
		if st.IsSelected(id) {
			t.Errorf("%s selected outside the range", id)
		}
	}
	if st.Primary() != "b" {
		t.Errorf("anchor lost: primary = %q, want b", st.Primary())
	}

	// Reversed direction selects the same slice.
	st.SelectRange("d", "b")
	if st.SelectionLen() != 3 {
		t.Errorf("reversed range len = %d, want 3", st.SelectionLen())
	}
}

func TestSelectAllAndClear(t *testing.T) {
	st := NewStore()
	st.Add(fixedElement("a", 0))
	st.Add(fixedElement("b", 1))
	st.SelectAll()
	if st.SelectionLen() != 2 {
		t.Errorf("selection len = %d, want 2", st.SelectionLen())
	}
	st.ClearSelection()
	if st.SelectionLen() != 0 {
		t.Errorf("selection not cleared: %v", st.Selection())
	}
}

func TestReplaceResetsSelection(t *testing.T) {
	st := NewStore()
	st.Add(fixedElement("a", 0))
	st.SelectSingle("a")
	st.Replace([]Element{fixedElement("x", 0), fixedElement("y", 1)})

	if st.Len() != 2 {
		t.Errorf("len = %d, want 2", st.Len())
	}
	if st.SelectionLen() != 0 {
		t.Error("selection survived Replace")
	}
}
