package canvas

// BackgroundZBase is the top of the reserved negative z band. The first
// background sits at -1000 and later ones stack downward, so a background
// can never climb above a foreground element no matter how the list is
// reordered.
const BackgroundZBase = -1000

// NextZIndex returns the z-index for a newly added foreground element:
// one above the current top, starting at 0.
func (s *Store) NextZIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	next := 0
	for _, el := range s.elements {
		if !el.IsBackground && el.ZIndex >= next {
			next = el.ZIndex + 1
		}
	}
	return next
}

// NextBackgroundZIndex returns the z-index for a newly added background:
// one below the current bottom of the background band, starting at
// BackgroundZBase.
func (s *Store) NextBackgroundZIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	next := BackgroundZBase
	for _, el := range s.elements {
		if el.IsBackground && el.ZIndex <= next {
			next = el.ZIndex - 1
		}
	}
	return next
}

// Reorder moves the element to the target position in the z-ascending
// sequence and renumbers the whole order: backgrounds keep the negative
// band in their relative order, foregrounds are renumbered 0,1,2,… in
// their new relative order.
//
// It returns the moved element's z-index before and after the renumber;
// the caller records that single pair as the undo unit (the other
// elements' shifted indices are derivable and carry no history of their
// own). Moving a background, or dropping into the background band, is
// rejected.
func (s *Store) Reorder(id string, target int) (before, after int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	el, found := s.elements[id]
	if !found || el.IsBackground {
		return 0, 0, false
	}
	before = el.ZIndex

	sorted := s.sortedLocked()
	backgrounds := 0
	cur := -1
	for i, e := range sorted {
		if e.IsBackground {
			backgrounds++
		}
		if e.ID == id {
			cur = i
		}
	}
	if target < 0 {
		target = 0
	}
	if target >= len(sorted) {
		target = len(sorted) - 1
	}
	// Backgrounds cannot be displaced from the bottom.
	if target < backgrounds {
		return 0, 0, false
	}
	if cur < 0 {
		return 0, 0, false
	}

	ids := make([]string, 0, len(sorted))
	for _, e := range sorted {
		ids = append(ids, e.ID)
	}
	ids = append(ids[:cur], ids[cur+1:]...)
	ids = append(ids[:target], append([]string{id}, ids[target:]...)...)

	s.renumberLocked(ids)
	after = s.elements[id].ZIndex
	s.notify()
	return before, after, true
}

// ReorderToZ moves a foreground element so the renumber assigns it the
// given z-index. Equivalent to Reorder with the target position derived
// from the z value; history replays reorders through this so the
// neighbors' derived indices are recomputed instead of patched.
func (s *Store) ReorderToZ(id string, z int) bool {
	s.mu.RLock()
	backgrounds := 0
	for _, el := range s.elements {
		if el.IsBackground {
			backgrounds++
		}
	}
	s.mu.RUnlock()
	_, _, ok := s.Reorder(id, backgrounds+z)
	return ok
}

// renumberLocked assigns fresh z-indices following the given id order:
// the background band ends at BackgroundZBase, foregrounds count up
// from 0.
func (s *Store) renumberLocked(ids []string) {
	backgrounds := 0
	for _, id := range ids {
		if s.elements[id].IsBackground {
			backgrounds++
		}
	}
	bg, fg := 0, 0
	for _, id := range ids {
		el := s.elements[id]
		if el.IsBackground {
			el.ZIndex = BackgroundZBase - (backgrounds - 1 - bg)
			bg++
		} else {
			el.ZIndex = fg
			fg++
		}
	}
}
