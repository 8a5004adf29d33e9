package canvas

import "sort"

// SelectSingle makes id the only selected element. Selecting a missing
// id clears the selection instead.
func (s *Store) SelectSingle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secondary = make(map[string]struct{})
	if _, ok := s.elements[id]; !ok {
		s.primary = ""
		return
	}
	s.primary = id
}

// ToggleInSelection adds or removes id from the selection, the
// modifier-click semantics. The first toggled element becomes primary.
func (s *Store) ToggleInSelection(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elements[id]; !ok {
		return
	}
	if s.primary == id {
		// Promote an arbitrary secondary member, or clear.
		s.primary = ""
		for sid := range s.secondary {
			s.primary = sid
			delete(s.secondary, sid)
			break
		}
		return
	}
	if _, ok := s.secondary[id]; ok {
		delete(s.secondary, id)
		return
	}
	if s.primary == "" {
		s.primary = id
		return
	}
	s.secondary[id] = struct{}{}
}

// SelectRange selects the contiguous z-order slice between fromID and
// toID, inclusive — shift-click semantics. The range is positional over
// elements sorted by current z-index, not spatial. fromID stays primary.
func (s *Store) SelectRange(fromID, toID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elements[fromID]; !ok {
		return
	}
	if _, ok := s.elements[toID]; !ok {
		return
	}

	sorted := s.sortedLocked()
	from, to := -1, -1
	for i, el := range sorted {
		if el.ID == fromID {
			from = i
		}
		if el.ID == toID {
			to = i
		}
	}
	if from < 0 || to < 0 {
		return
	}
	if from > to {
		from, to = to, from
	}

	s.primary = fromID
	s.secondary = make(map[string]struct{})
	for _, el := range sorted[from : to+1] {
		if el.ID != fromID {
			s.secondary[el.ID] = struct{}{}
		}
	}
}

// SelectAll selects every element. The bottom-most element becomes
// primary so a following shift-click has a stable anchor.
func (s *Store) SelectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primary = ""
	s.secondary = make(map[string]struct{})
	sorted := s.sortedLocked()
	for i, el := range sorted {
		if i == 0 {
			s.primary = el.ID
			continue
		}
		s.secondary[el.ID] = struct{}{}
	}
}

// ClearSelection empties the selection.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primary = ""
	s.secondary = make(map[string]struct{})
}

// Primary returns the primary selected element id, or "".
func (s *Store) Primary() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.primary
}

// IsSelected reports whether id is in the selection union.
func (s *Store) IsSelected(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.primary == id && id != "" {
		return true
	}
	_, ok := s.secondary[id]
	return ok
}

// Selection returns the selected ids sorted by ascending z-index.
func (s *Store) Selection() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.secondary)+1)
	if s.primary != "" {
		ids = append(ids, s.primary)
	}
	for id := range s.secondary {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.elements[ids[i]].ZIndex < s.elements[ids[j]].ZIndex
	})
	return ids
}

// SelectionLen returns the size of the selection union.
func (s *Store) SelectionLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.secondary)
	if s.primary != "" {
		n++
	}
	return n
}
