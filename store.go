package canvas

import (
	"sort"
	"sync"
)

// Store holds the authoritative element list and the selection state.
//
// All mutation operations are synchronous and have no side effect beyond
// the Store itself: recording to the history engine is the caller's
// responsibility. This keeps ephemeral gesture previews cheap — a drag
// writes the Store on every pointer move and records a single action on
// release.
//
// The Store is safe for concurrent use. The editor itself is event-loop
// driven, but the autosave scheduler and the export pipeline read
// snapshots from their own goroutines.
type Store struct {
	mu       sync.RWMutex
	elements map[string]*Element

	// Selection: one primary (or none) plus a secondary multi-set.
	// The union never contains duplicates and never references an
	// element missing from the Store.
	primary   string
	secondary map[string]struct{}

	observers []func()
}

// NewStore creates an empty element store.
func NewStore() *Store {
	return &Store{
		elements:  make(map[string]*Element),
		secondary: make(map[string]struct{}),
	}
}

// OnChange registers an observer invoked after every element mutation
// (add, update, remove, reorder). Selection changes do not fire it.
// Observers must not mutate the Store.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	for _, fn := range s.observers {
		fn()
	}
}

// Add inserts an element. It returns false if an element with the same
// id already exists; ids are unique within a project.
func (s *Store) Add(el Element) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elements[el.ID]; ok {
		return false
	}
	cp := el.Clone()
	s.elements[el.ID] = &cp
	s.notify()
	return true
}

// Update applies a partial patch to the element with the given id.
// It returns false if the element does not exist. Invariant enforcement
// (clamps, background pinning) happens inside the patch application.
func (s *Store) Update(id string, p Patch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.elements[id]
	if !ok {
		return false
	}
	p.apply(el)
	s.notify()
	return true
}

// Remove deletes the element and prunes it from the selection, so a
// removed element can never remain selected. It returns the removed
// element's final state for snapshotting.
func (s *Store) Remove(id string) (Element, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.elements[id]
	if !ok {
		return Element{}, false
	}
	snap := el.Clone()
	delete(s.elements, id)
	if s.primary == id {
		s.primary = ""
	}
	delete(s.secondary, id)
	s.notify()
	return snap, true
}

// Get returns a copy of the element with the given id.
func (s *Store) Get(id string) (Element, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	el, ok := s.elements[id]
	if !ok {
		return Element{}, false
	}
	return el.Clone(), true
}

// All returns copies of every element sorted by ascending z-index.
func (s *Store) All() []Element {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked()
}

func (s *Store) sortedLocked() []Element {
	out := make([]Element, 0, len(s.elements))
	for _, el := range s.elements {
		out = append(out, el.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ZIndex < out[j].ZIndex })
	return out
}

// Len returns the number of elements.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.elements)
}

// Replace swaps the whole element list, used by project load. The
// selection is cleared; history is the caller's concern (a load resets
// it entirely).
func (s *Store) Replace(elements []Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elements = make(map[string]*Element, len(elements))
	for _, el := range elements {
		cp := el.Clone()
		s.elements[el.ID] = &cp
	}
	s.primary = ""
	s.secondary = make(map[string]struct{})
	s.notify()
}
