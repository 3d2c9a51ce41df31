/*
Package tree implements forests of records which are built from flat lists.

Many data sources deliver hierarchies as flat lists of records, where every
record carries its own identifier and the identifier of its parent. This
package converts such lists into a forest of nodes, flattens forests back
into lists, and offers lookup and traversal operations on the result.

Records are of arbitrary type. Clients hand in typed accessor functions for
the identifier and the parent identifier:

	type Item struct {
		ID, ParentID int
		Title        string
	}

	conv := tree.NewConverter(
		func(it Item) int { return it.ID },
		tree.NonZero(func(it Item) int { return it.ParentID }),
	)
	forest := conv.ListToTree(items)
	parent := tree.FindParent(forest, func(it Item) int { return it.ID }, 4)

Nodes own their children exclusively. A converter never retains any state
between calls and never modifies its input. Lookups signal "not found" by
returning maybe.Nothing.

All operations are synchronous and recursive; recursion depth is bounded by
the depth of the forest.

# Cycles

A record whose parent identifier points to itself, or a group of records whose
parent identifiers form a cycle, is attached to its parent like every other
record. None of these records is a root, therefore they (and everything below
them) are not reachable from the forest. Traversals never enter them.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'forest.tree'.
func tracer() tracing.Trace {
	return tracing.Select("forest.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("forest.tree: "+msg, msgargs...)
		panic(msg)
	}
}
