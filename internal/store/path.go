package store

import (
	"fmt"
	"strings"
)

// Path addresses one node in the store's slash-delimited tree namespace.
// The zero Path addresses the root. Paths are values; Child returns a new
// Path and never mutates the receiver.
type Path struct {
	segs []string
}

// NewPath builds a path from the given segments.
func NewPath(segs ...string) Path {
	return Path{}.Child(segs...)
}

// ParsePath splits a slash-delimited string into a Path.
// Leading and trailing slashes are ignored; "" parses to the root.
func ParsePath(s string) Path {
	s = strings.Trim(s, "/")
	if s == "" {
		return Path{}
	}
	return NewPath(strings.Split(s, "/")...)
}

// Child returns the path extended by the given segments.
func (p Path) Child(segs ...string) Path {
	if len(segs) == 0 {
		return p
	}
	out := make([]string, 0, len(p.segs)+len(segs))
	out = append(out, p.segs...)
	out = append(out, segs...)
	return Path{segs: out}
}

// Segments returns a copy of the path's segments.
func (p Path) Segments() []string {
	out := make([]string, len(p.segs))
	copy(out, p.segs)
	return out
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segs)
}

// IsRoot reports whether the path addresses the namespace root.
func (p Path) IsRoot() bool {
	return len(p.segs) == 0
}

// String renders the path as a slash-delimited key.
func (p Path) String() string {
	return strings.Join(p.segs, "/")
}

// Validate checks that every segment is non-empty and free of slashes,
// so a path always addresses exactly the node its segments spell.
func (p Path) Validate() error {
	for _, seg := range p.segs {
		if seg == "" {
			return fmt.Errorf("%w: empty segment in %q", ErrInvalidPath, p.String())
		}
		if strings.Contains(seg, "/") {
			return fmt.Errorf("%w: segment %q contains a slash", ErrInvalidPath, seg)
		}
	}
	return nil
}
