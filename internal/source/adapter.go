// Package source contains the adapters that pull raw documents from the
// external news sources. Each adapter is independently fallible: a failed
// adapter contributes zero documents and one per-source error, never a
// failed run.
package source

import (
	"context"

	"github.com/icewatch/icewatch/internal/model"
)

// Adapter fetches documents from one external source type. Fetch may fail
// outright, partially (logging and skipping bad calls), or legitimately
// return nothing.
type Adapter interface {
	Name() string
	Fetch(ctx context.Context) ([]model.RawDocument, error)
}
