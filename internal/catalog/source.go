package catalog

import (
	"context"
	"errors"
)

// ErrUnavailable means the menu could not be loaded. The wizard must not
// start a session until a catalog load succeeds.
var ErrUnavailable = errors.New("menu catalog unavailable")

// Source loads the menu catalog at startup.
type Source interface {
	Load(ctx context.Context) (Catalog, error)
}

// StaticSource serves the embedded default menu.
type StaticSource struct{}

func (StaticSource) Load(_ context.Context) (Catalog, error) {
	return Default(), nil
}
