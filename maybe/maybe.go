/*
Package maybe implements an optional value.

Lookups in a forest may come up empty. Instead of handing out nil pointers,
they return a Maybe, which either holds a value (Just) or is empty (Nothing).
Clients either pattern-match on it:

	var node *tree.Node[Item]
	switch m := tree.FindNode(forest, ItemID, 42).Match(); m {
	case m.Just(&node):
		// use node
	case m.Nothing():
		// not found
	}

or use the Go-style accessor Get, which returns the value and an ok-flag.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
// The zero value is Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing is the empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get returns the wrapped value and true, or the zero value of T and false.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// IsNothing is true for an empty Maybe.
func (m Maybe[T]) IsNothing() bool {
	return !m.tag
}

// WithDefault unwraps m, using def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a wrapped value. Nothing stays Nothing.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Match returns a matcher to be used in a switch statement.
func (m Maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// AndThen chains a computation which may fail itself.
func AndThen[T, S any](x Maybe[T], f func(T) Maybe[S]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Then converts the value of x with f, changing its type.
func Then[T, S any](x Maybe[T], f func(T) S) Maybe[S] {
	if v, ok := x.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used for pattern-matching a Maybe within a switch:
// exactly one of Just and Nothing returns the matcher itself, the other
// one returns nil.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m Maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
