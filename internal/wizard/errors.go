package wizard

import (
	"errors"
	"fmt"
)

var (
	// ErrImmutableCategory rejects edits to a category that is included
	// in full (starters). State is left unchanged.
	ErrImmutableCategory = errors.New("all starters are included with your menu and cannot be removed")

	// ErrUnknownItem means the toggled item is not in the catalog for
	// that category. Item lists are rendered from the catalog, so this
	// is a programming error, not user input.
	ErrUnknownItem = errors.New("item is not on the menu for this category")

	// ErrUnknownCategory means the category itself is not a wizard step.
	ErrUnknownCategory = errors.New("unknown menu category")
)

// LimitError rejects an addition to a category already at its cap.
type LimitError struct {
	Max int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("you can only select up to %d items in this category", e.Max)
}
