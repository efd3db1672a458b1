package wizard

import (
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/catalog"
)

// Selections tracks the chosen items per category, in selection order,
// and enforces the per-category rules (limits, included-in-full).
type Selections struct {
	catalog catalog.Catalog
	rules   map[catalog.Category]catalog.Step
	chosen  map[catalog.Category][]string
}

func NewSelections(c catalog.Catalog, steps []catalog.Step) *Selections {
	s := &Selections{
		catalog: c,
		rules:   make(map[catalog.Category]catalog.Step, len(steps)),
		chosen:  make(map[catalog.Category][]string, len(steps)),
	}
	for _, step := range steps {
		s.rules[step.Category] = step
	}
	s.Reset()
	return s
}

// Reset empties every category, then pre-fills included categories with
// the full catalog list.
func (s *Selections) Reset() {
	for cat, rule := range s.rules {
		if rule.Included {
			s.chosen[cat] = s.catalog.Items(cat)
		} else {
			s.chosen[cat] = []string{}
		}
	}
}

// Toggle removes an already-selected item or appends a new one.
// Additions are refused when the category is at its limit; any edit to
// an included category is refused so the caller can surface a message.
func (s *Selections) Toggle(cat catalog.Category, item string) error {
	rule, ok := s.rules[cat]
	if !ok {
		return ErrUnknownCategory
	}
	if !s.catalog.Contains(cat, item) {
		return ErrUnknownItem
	}
	if rule.Included {
		return ErrImmutableCategory
	}

	current := s.chosen[cat]
	for i, chosen := range current {
		if chosen == item {
			s.chosen[cat] = append(current[:i], current[i+1:]...)
			return nil
		}
	}

	if rule.Limit != nil && len(current) >= *rule.Limit {
		return &LimitError{Max: *rule.Limit}
	}
	s.chosen[cat] = append(current, item)
	return nil
}

// Count returns how many items are chosen in a category.
func (s *Selections) Count(cat catalog.Category) int {
	return len(s.chosen[cat])
}

// Selected returns a copy of the ordered selection for a category.
func (s *Selections) Selected(cat catalog.Category) []string {
	out := make([]string, len(s.chosen[cat]))
	copy(out, s.chosen[cat])
	return out
}

// IsSelected reports whether an item is currently chosen.
func (s *Selections) IsSelected(cat catalog.Category, item string) bool {
	for _, chosen := range s.chosen[cat] {
		if chosen == item {
			return true
		}
	}
	return false
}

// Snapshot deep-copies the full selection map, every category included
// even when empty.
func (s *Selections) Snapshot() map[catalog.Category][]string {
	out := make(map[catalog.Category][]string, len(s.chosen))
	for cat := range s.chosen {
		out[cat] = s.Selected(cat)
	}
	return out
}
