// Package beatmap defines the hand-off to difficulty geometry parsing.
//
// Notes, obstacles, and events live in one file per difficulty. Parsing them
// is owned by the editor; this package only fixes the contract (Loader) and
// ships SummaryLoader, which counts top-level collections for tooling that
// needs a quick overview.
package beatmap

import (
	"errors"
	"fmt"

	"beatinfo/internal/jsonnode"
)

// Map is the result of loading one difficulty file.
type Map struct {
	Path      string
	Version   string
	Notes     int
	Obstacles int
	Events    int
	// Document is the parsed file, for loaders that keep it.
	Document *jsonnode.Node
}

// Loader turns a parsed difficulty document into a Map.
type Loader interface {
	LoadMap(doc *jsonnode.Node, path string) (*Map, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(doc *jsonnode.Node, path string) (*Map, error)

func (f LoaderFunc) LoadMap(doc *jsonnode.Node, path string) (*Map, error) {
	return f(doc, path)
}

// ErrNotObject is returned when a difficulty document root is not an object.
var ErrNotObject = errors.New("difficulty document root is not an object")

// SummaryLoader counts notes, obstacles, and events without interpreting them.
type SummaryLoader struct {
	// KeepDocument retains the parsed tree on the returned Map.
	KeepDocument bool
}

// LoadMap implements Loader.
func (l SummaryLoader) LoadMap(doc *jsonnode.Node, path string) (*Map, error) {
	if !doc.IsObject() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotObject)
	}
	m := &Map{
		Path:      path,
		Version:   doc.Get("_version").AsString(),
		Notes:     doc.Get("_notes").Len(),
		Obstacles: doc.Get("_obstacles").Len(),
		Events:    doc.Get("_events").Len(),
	}
	if l.KeepDocument {
		m.Document = doc
	}
	return m, nil
}
