// Package ident issues sequential identifiers for domain entities.
//
// Both aggregators own their own Sequence instead of relying on hidden
// package-level counters, so identifier generation stays safe when
// entities are constructed from multiple goroutines.
package ident

import (
	"fmt"
	"sync/atomic"
)

// Sequence produces zero-padded sequential identifiers with a fixed
// prefix, e.g. "HOLDER-0001". The zero value is not usable; create one
// with NewSequence.
type Sequence struct {
	prefix string
	width  int
	n      atomic.Uint64
}

// NewSequence creates a sequence whose identifiers start at 1 and are
// zero-padded to width digits after the prefix.
func NewSequence(prefix string, width int) *Sequence {
	return &Sequence{prefix: prefix, width: width}
}

// Next returns the next identifier in the sequence.
func (s *Sequence) Next() string {
	return fmt.Sprintf("%s%0*d", s.prefix, s.width, s.n.Add(1))
}

// Count reports how many identifiers have been issued so far.
func (s *Sequence) Count() uint64 {
	return s.n.Load()
}
