package record

import (
	"reflect"

	"github.com/npillmayer/forest/maybe"
	"github.com/npillmayer/forest/tree"
)

// Record is a flat key/value payload. Identifier and parent identifier are
// stored under caller-defined field names.
type Record map[string]any

// ChildrenKey is the field holding the children of a record in nested form.
const ChildrenKey = "children"

// IDKey is the field name CollectLeaves uses to identify nodes.
const IDKey = "id"

// Node is a node of a forest of records.
type Node = tree.Node[Record]

// Forest is a forest of records.
type Forest = tree.Forest[Record]

// noKey stands in for field values which cannot be used as keys.
type noKey struct{}

// isComparable checks the dynamic value, as arrays and structs may hold
// interface values of uncomparable types.
func isComparable(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}

// Field returns an accessor for a named field. A missing field yields nil.
func Field(name string) func(Record) any {
	return func(r Record) any {
		v := r[name]
		if !isComparable(v) {
			return noKey{}
		}
		return v
	}
}

// ParentField returns an accessor for a named parent-id field.
// Missing fields and nil values mean "no parent".
func ParentField(name string) func(Record) (any, bool) {
	return func(r Record) (any, bool) {
		v, ok := r[name]
		if !ok || v == nil || !isComparable(v) {
			return nil, false
		}
		return v, true
	}
}

// Clone creates a deep copy of r. Nested mappings and sequences are copied
// as well; all other values are copied as is.
func Clone(r Record) Record {
	if r == nil {
		return nil
	}
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = cloneValue(v)
	}
	return c
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case Record:
		return Clone(x)
	case map[string]any:
		return map[string]any(Clone(Record(x)))
	case map[any]any:
		c := make(map[any]any, len(x))
		for k, e := range x {
			c[k] = cloneValue(e)
		}
		return c
	case []any:
		c := make([]any, len(x))
		for i, e := range x {
			c[i] = cloneValue(e)
		}
		return c
	case []Record:
		c := make([]Record, len(x))
		for i, e := range x {
			c[i] = Clone(e)
		}
		return c
	case []map[string]any:
		c := make([]map[string]any, len(x))
		for i, e := range x {
			c[i] = map[string]any(Clone(Record(e)))
		}
		return c
	}
	return v
}

// without returns a deep copy of r, leaving out field key.
func without(r Record, key string) Record {
	c := make(Record, len(r))
	for k, v := range r {
		if k != key {
			c[k] = cloneValue(v)
		}
	}
	return c
}

func stripChildren(r Record) Record {
	return without(r, ChildrenKey)
}

// ListToTree builds a forest from list, with records identified by field
// idKey and pointing to their parent by field parentIDKey.
// Records are deep-copied; list is not modified.
func ListToTree(list []Record, idKey, parentIDKey string) Forest {
	conv := tree.NewConverter(Field(idKey), ParentField(parentIDKey), tree.Clone(Clone))
	return conv.ListToTree(list)
}

// TreeToList flattens a forest in pre-order. The resulting records are
// deep copies without a children field.
func TreeToList(f Forest) []Record {
	return tree.ToList(tree.Map(f, stripChildren))
}

// FindNode returns the first node in pre-order whose field keyName equals
// value.
func FindNode(f Forest, keyName string, value any) maybe.Maybe[*Node] {
	if !isComparable(value) {
		return maybe.Nothing[*Node]()
	}
	return tree.FindNode(f, Field(keyName), value)
}

// FindParent returns the parent of the node whose field keyName equals
// value. Roots have no parent.
func FindParent(f Forest, keyName string, value any) maybe.Maybe[*Node] {
	if !isComparable(value) {
		return maybe.Nothing[*Node]()
	}
	return tree.FindParent(f, Field(keyName), value)
}

// CollectLeaves returns all descendants of the node whose "id" field equals
// nodeID, in pre-order.
func CollectLeaves(f Forest, nodeID any) []*Node {
	if !isComparable(nodeID) {
		return []*Node{}
	}
	return tree.CollectLeaves(f, Field(IDKey), nodeID)
}

// --- Nested form -----------------------------------------------------------

// Nest converts a forest into nested records, where each record holding
// children carries them as a []Record in field "children". Leafs carry no
// children field.
func Nest(f Forest) []Record {
	nested := make([]Record, 0, len(f))
	for _, node := range f {
		if node == nil {
			continue
		}
		r := stripChildren(node.Record)
		if node.ChildCount() > 0 {
			r[ChildrenKey] = Nest(node.Children())
		}
		nested = append(nested, r)
	}
	return nested
}

// Unnest converts nested records into a forest. The "children" field is
// removed from every payload. It is descended into only if it holds a
// sequence; other values are dropped.
func Unnest(nested []Record) Forest {
	f := make(Forest, 0, len(nested))
	for _, r := range nested {
		if r == nil {
			continue
		}
		node := tree.NewNode(stripChildren(r))
		for _, ch := range Unnest(childRecords(r[ChildrenKey])) {
			node.AddChild(ch)
		}
		f = append(f, node)
	}
	return f
}

func childRecords(v any) []Record {
	switch x := v.(type) {
	case nil:
		return nil
	case []Record:
		return x
	case []map[string]any:
		rs := make([]Record, len(x))
		for i, m := range x {
			rs[i] = Record(m)
		}
		return rs
	case []any:
		rs := make([]Record, 0, len(x))
		for _, e := range x {
			switch m := e.(type) {
			case Record:
				rs = append(rs, m)
			case map[string]any:
				rs = append(rs, Record(m))
			default:
				tracer().Debugf("child of type %T is not a record, ignored", e)
			}
		}
		return rs
	}
	tracer().Debugf("children field of type %T is not a sequence, ignored", v)
	return nil
}
