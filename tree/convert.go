package tree

// Converter turns flat lists of records into forests and back.
// Records of type R are identified by keys of type K.
//
// A Converter holds no state besides its configuration and may be used
// concurrently.
type Converter[R any, K comparable] struct {
	props[R]
	id     func(R) K
	parent func(R) (K, bool)
}

type props[R any] struct {
	clone func(R) R // copies a record before it becomes part of the output
}

// Option is a type to help initializing converters at creation time.
type Option[R any] struct {
	config func(props[R]) props[R]
}

// Clone is an option to set a copy function for records. Records are
// copied before they become node payloads and again when forests are
// flattened. The default is to copy the record value as is, which is a
// shallow copy for records containing pointers, maps or slices.
//
// Use it like this:
//
//	conv := tree.NewConverter(id, parent, tree.Clone(deepCopy))
func Clone[R any](f func(R) R) Option[R] {
	conf := func(p props[R]) props[R] {
		p.clone = f
		return p
	}
	return Option[R]{config: conf}
}

// NewConverter creates a converter with accessors for the identifier and
// the parent identifier of records. parent reports false for records without
// a parent identifier; these always become roots.
func NewConverter[R any, K comparable](id func(R) K, parent func(R) (K, bool), opts ...Option[R]) *Converter[R, K] {
	assertThat(id != nil && parent != nil, "converter needs id and parent accessors")
	c := &Converter[R, K]{id: id, parent: parent}
	for _, option := range opts {
		c.props = option.config(c.props)
	}
	return c
}

// NonZero wraps a parent-id accessor, treating the zero value of K as
// "no parent".
func NonZero[R any, K comparable](f func(R) K) func(R) (K, bool) {
	return func(r R) (K, bool) {
		var zero K
		k := f(r)
		return k, k != zero
	}
}

func (p props[R]) copy(r R) R {
	if p.clone == nil {
		return r
	}
	return p.clone(r)
}

// FromList converts list into a forest, using default options.
func FromList[R any, K comparable](list []R, id func(R) K, parent func(R) (K, bool)) Forest[R] {
	return NewConverter(id, parent).ListToTree(list)
}

// ListToTree builds a forest from a flat list of records.
//
// Every record whose parent identifier matches the identifier of a record
// in list is appended to that record's children; all other records become
// roots. Input order is preserved among siblings and among roots.
// If identifiers are duplicated, children attach to the record appearing
// last in list.
//
// list is not modified.
func (c *Converter[R, K]) ListToTree(list []R) Forest[R] {
	roots := make(Forest[R], 0)
	if len(list) == 0 {
		return roots
	}
	arena := make([]Node[R], len(list)) // one node per record
	index := make(map[K]int, len(list)) // id → arena slot
	for i, r := range list {
		arena[i].Record = c.copy(r)
		k := c.id(arena[i].Record)
		if j, dup := index[k]; dup {
			tracer().Debugf("duplicate id %v at positions %d and %d, last one wins", k, j, i)
		}
		index[k] = i
	}
	for i := range arena {
		node := &arena[i]
		if pid, ok := c.parent(node.Record); ok {
			if j, found := index[pid]; found {
				if j == i {
					tracer().Debugf("record at position %d is its own parent (id %v)", i, pid)
				}
				arena[j].children = append(arena[j].children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}

// ToList flattens a forest in pre-order, using default options.
func ToList[R any](f Forest[R]) []R {
	return flatten(f, props[R]{}, make([]R, 0, f.Size()))
}

// TreeToList flattens a forest into a list of records. Parents precede
// their children, siblings appear in forest order. f is not modified.
func (c *Converter[R, K]) TreeToList(f Forest[R]) []R {
	return flatten(f, c.props, make([]R, 0, f.Size()))
}

func flatten[R any](f Forest[R], p props[R], list []R) []R {
	for _, node := range f {
		if node == nil {
			continue
		}
		list = append(list, p.copy(node.Record))
		list = flatten(node.children, p, list)
	}
	return list
}
