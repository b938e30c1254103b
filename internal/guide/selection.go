package guide

import "fmt"

// Selection holds the active tab. It always points at a registered tab.
type Selection struct {
	reg    *Registry
	active int
}

// NewSelection starts on the first registered tab.
func NewSelection(reg *Registry) *Selection {
	return &Selection{reg: reg}
}

func (s *Selection) Registry() *Registry { return s.reg }
func (s *Selection) Index() int          { return s.active }
func (s *Selection) Active() Tab         { return s.reg.tabs[s.active] }
func (s *Selection) ActiveID() string    { return s.reg.tabs[s.active].ID }

// Content returns the content block of the active tab.
func (s *Selection) Content() Content {
	return s.reg.content[s.ActiveID()]
}

// Select makes id the active tab. Unregistered ids are rejected and the
// selection is left as it was. changed is false when id was already active.
func (s *Selection) Select(id string) (changed bool, err error) {
	idx := s.reg.Index(id)
	if idx < 0 {
		return false, s.reg.unknown(id)
	}
	return s.set(idx), nil
}

// SelectIndex selects by zero-based position.
func (s *Selection) SelectIndex(i int) (bool, error) {
	if i < 0 || i >= len(s.reg.tabs) {
		return false, fmt.Errorf("%w at position %d", ErrUnknownTab, i+1)
	}
	return s.set(i), nil
}

// Next moves one tab right, wrapping at the end.
func (s *Selection) Next() bool { return s.move(1) }

// Prev moves one tab left, wrapping at the start.
func (s *Selection) Prev() bool { return s.move(-1) }

// Reset returns to the first tab.
func (s *Selection) Reset() bool { return s.set(0) }

func (s *Selection) move(delta int) bool {
	n := len(s.reg.tabs)
	return s.set((s.active + delta + n) % n)
}

func (s *Selection) set(idx int) bool {
	if idx == s.active {
		return false
	}
	s.active = idx
	return true
}
