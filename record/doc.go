/*
Package record converts lists of untyped records, as delivered by JSON or
YAML sources, into forests.

A Record is a mapping of field names to values. Field names for the
identifier and the parent identifier are supplied by the caller:

	forest := record.ListToTree(list, "id", "parentId")
	parent := record.FindParent(forest, "id", 4)

Values are compared with Go's == on interface values, i.e. without any
coercion: the integer 1 does not match the float 1.0 or the string "1".
Values which are not comparable (slices, maps, or arrays and structs holding
them) never match anything.

Records are deep-copied when they enter a forest and when they are flattened
again, so neither input lists nor forests are ever shared with results.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package record

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'forest.record'.
func tracer() tracing.Trace {
	return tracing.Select("forest.record")
}
