// Package groupindex provides an insertion-ordered index from encoded
// identifier tuples to the rows that carry them.
package groupindex

import (
	"strconv"
	"strings"
)

// Index records which rows belong to each group, remembering the order in
// which groups were first seen.
type Index struct {
	order  []string
	groups map[string][]int
}

// New creates an empty index.
func New() *Index {
	return &Index{groups: make(map[string][]int)}
}

// Add appends a row to the group for key, creating the group on first use.
func (ix *Index) Add(key string, row int) {
	if _, ok := ix.groups[key]; !ok {
		ix.order = append(ix.order, key)
	}
	ix.groups[key] = append(ix.groups[key], row)
}

// Len returns the number of distinct groups.
func (ix *Index) Len() int { return len(ix.order) }

// Keys returns the group keys in first-seen order.
func (ix *Index) Keys() []string { return ix.order }

// Rows returns the row indices recorded for key, in insertion order.
func (ix *Index) Rows(key string) []int { return ix.groups[key] }

// EncodeKey builds an unambiguous key from tuple parts by length-prefixing
// each part, so that ("a", "bc") and ("ab", "c") never collide.
func EncodeKey(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strconv.Itoa(len(p)))
		b.WriteByte(':')
		b.WriteString(p)
	}
	return b.String()
}
