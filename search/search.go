/*
Package search implements searching in forests of titled records, as needed
by tree views with a search box: titles are split around a search term for
highlighting, and the parents of matching records are collected as the set
of nodes to expand.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package search

import (
	"strings"

	"github.com/npillmayer/forest/tree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'forest.search'.
func tracer() tracing.Trace {
	return tracing.Select("forest.search")
}

// Segments is a title split around the first occurrence of a search term.
// If the term has not been found, Before holds the whole title.
type Segments struct {
	Before string
	Match  string
	After  string
	Found  bool
}

// String re-assembles the title.
func (s Segments) String() string {
	return s.Before + s.Match + s.After
}

// Highlight splits title around the first occurrence of term.
// An empty term is found at the start of every title.
func Highlight(title, term string) Segments {
	i := strings.Index(title, term)
	if i < 0 {
		return Segments{Before: title}
	}
	return Segments{
		Before: title[:i],
		Match:  title[i : i+len(term)],
		After:  title[i+len(term):],
		Found:  true,
	}
}

// Marked is a record together with its highlighted title.
type Marked[R any] struct {
	Record R
	Title  Segments
}

// Mark creates a forest of the same shape as f, with every record's title
// split around term.
func Mark[R any](f tree.Forest[R], title func(R) string, term string) tree.Forest[Marked[R]] {
	return tree.Map(f, func(r R) Marked[R] {
		return Marked[R]{Record: r, Title: Highlight(title(r), term)}
	})
}

// ExpandKeys returns the identifiers of the parents of all records in list
// whose title contains term, i.e. the nodes of f to expand to make every match
// visible. Keys are unique and appear in the order of the matching records.
// Matches at root level contribute nothing. A blank term yields no keys.
func ExpandKeys[R any, K comparable](list []R, f tree.Forest[R], id func(R) K, title func(R) string, term string) []K {
	keys := []K{}
	if strings.TrimSpace(term) == "" {
		return keys
	}
	seen := make(map[K]struct{})
	for _, r := range list {
		if !strings.Contains(title(r), term) {
			continue
		}
		parent, ok := tree.FindParent(f, id, id(r)).Get()
		if !ok {
			continue
		}
		k := id(parent.Record)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	tracer().Debugf("search for %q expands %d nodes", term, len(keys))
	return keys
}
