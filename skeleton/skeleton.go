// Package skeleton provides a small named record with coordinates and an
// ordered list of children, together with the helpers to allocate,
// initialise, release, compare and print it.
package skeleton

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/Johniel/skeleton/bsearch"
)

// ErrNilSkeleton is returned when an operation is handed a nil skeleton.
var ErrNilSkeleton = errors.New("skeleton: nil skeleton")

// Skeleton is a named point with children.
// Children are kept sorted by Compare when added through AddChild.
type Skeleton struct {
	ID       int    // unique, assigned by Init
	Name     string // ordering key
	X, Y     int
	Children []*Skeleton
}

// CompareFunc orders two skeletons.
type CompareFunc func(a, b *Skeleton) int

// Root is the root skeleton.
var Root = Skeleton{
	ID:   0,
	Name: "root",
}

var lastID atomic.Int64

// Alloc returns a block of count zeroed skeletons.
func Alloc(count int) []Skeleton {
	if count <= 0 {
		return nil
	}
	return make([]Skeleton, count)
}

// Free releases the names and child links held by every skeleton in block.
func Free(block []Skeleton) {
	if len(block) == 0 {
		return
	}
	for i := range block {
		block[i].release()
	}
	logger.Debug("freed skeletons", "count", len(block))
}

// Free releases the name and child links of a single skeleton, such as one
// returned by New. A nil skeleton is ignored.
func (s *Skeleton) Free() {
	if s == nil {
		return
	}
	s.release()
	logger.Debug("freed skeleton", "id", s.ID)
}

func (s *Skeleton) release() {
	s.Name = ""
	clear(s.Children)
	s.Children = nil
}

// Init sets the name and coordinates of s and gives it the next unique ID.
func Init(s *Skeleton, name string, x, y int) error {
	if s == nil {
		logger.Error("init on nil skeleton", "name", name)
		return ErrNilSkeleton
	}
	s.Name = strings.Clone(name)
	s.ID = int(lastID.Add(1))
	s.X = x
	s.Y = y
	return nil
}

// New allocates and initialises a single skeleton.
func New(name string, x, y int) (*Skeleton, error) {
	block := Alloc(1)
	s := &block[0]
	if err := Init(s, name, x, y); err != nil {
		Free(block)
		return nil, fmt.Errorf("new skeleton %q: %w", name, err)
	}
	logger.Debug("new skeleton", "id", s.ID, "name", s.Name)
	return s, nil
}

// Compare orders skeletons by name, with nil before everything else.
// The result is suitable for slices.SortFunc.
func Compare(a, b *Skeleton) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return strings.Compare(a.Name, b.Name)
}

// AddChild inserts c into the children of s, keeping them sorted by name,
// and returns the slot it was placed at.
func (s *Skeleton) AddChild(c *Skeleton) (int, error) {
	if s == nil {
		return -1, ErrNilSkeleton
	}
	var slot int
	s.Children, slot = bsearch.Insert(s.Children, c, Compare)
	return slot, nil
}

// Child returns the direct child called name.
func (s *Skeleton) Child(name string) (*Skeleton, bool) {
	if s == nil {
		return nil, false
	}
	slot, found := bsearch.Search(s.Children, name, func(key string, c *Skeleton) int {
		if c == nil {
			return 1
		}
		return strings.Compare(key, c.Name)
	})
	if !found {
		return nil, false
	}
	return s.Children[slot], true
}

func (s *Skeleton) String() string {
	if s == nil {
		return "skeleton <nil>"
	}
	return fmt.Sprintf("skeleton #%d %q at (%d, %d) children=%d",
		s.ID, s.Name, s.X, s.Y, len(s.Children))
}

// Print writes s to w in human-readable form, followed by a newline.
func Print(w io.Writer, s *Skeleton) error {
	if s == nil {
		return ErrNilSkeleton
	}
	if _, err := fmt.Fprintln(w, s.String()); err != nil {
		return fmt.Errorf("print skeleton #%d: %w", s.ID, err)
	}
	return nil
}
