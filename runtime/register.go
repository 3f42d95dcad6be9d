package runtime

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
)

// --- Entries ---------------------------------------------------------------

// Entry is a binding stored in a register. Besides the bound value it keeps
// the scope and the name it has been registered for, for diagnostics.
type Entry[V any] struct {
	Scope Scope
	Name  string
	Value V
}

// Key returns the register key of the entry.
func (e Entry[V]) Key() string {
	return entryKey(e.Scope, e.Name)
}

func (e Entry[V]) String() string {
	return fmt.Sprintf("<entry %s%v = %v>", e.Name, e.Scope, e.Value)
}

// entryKey concatenates the scope ID and the name, e.g. "3:x".
func entryKey(scope Scope, name string) string {
	return fmt.Sprintf("%d:%s", scope.ID(), name)
}

// === Register ==============================================================

// Register is a table of bindings, indexed by scope and name. There is at
// most one entry per (scope ID, name) key.
//
// The zero value is an empty register ready to use.
type Register[V any] struct {
	table *treemap.Map // string key → *Entry[V], ordered by key
}

// NewRegister creates an empty register.
func NewRegister[V any]() *Register[V] {
	return &Register[V]{
		table: treemap.NewWithStringComparator(),
	}
}

func (r *Register[V]) init() {
	if r.table == nil {
		r.table = treemap.NewWithStringComparator()
	}
}

// Register binds name in scope to value. An existing binding for the same
// key will be replaced. Returns true if there has been no previous binding.
func (r *Register[V]) Register(scope Scope, name string, value V) bool {
	r.init()
	key := entryKey(scope, name)
	_, found := r.table.Get(key)
	r.table.Put(key, &Entry[V]{
		Scope: scope,
		Name:  name,
		Value: value,
	})
	tracer().Debugf("register %s = %v (replaced=%v)", key, value, found)
	return !found
}

// Lookup finds the value bound to name in exactly the given scope.
// Ancestor scopes are not searched.
func (r *Register[V]) Lookup(scope Scope, name string) (V, bool) {
	var zero V
	if r.table == nil {
		return zero, false
	}
	e, found := r.table.Get(entryKey(scope, name))
	if !found {
		return zero, false
	}
	return e.(*Entry[V]).Value, true
}

// Remove deletes the binding for name in scope, if any.
func (r *Register[V]) Remove(scope Scope, name string) {
	if r.table == nil {
		return
	}
	key := entryKey(scope, name)
	tracer().Debugf("remove %s from register", key)
	r.table.Remove(key)
}

// Size counts the bindings in a register.
func (r *Register[V]) Size() int {
	if r.table == nil {
		return 0
	}
	return r.table.Size()
}

// Each iterates over all entries in key order, executing a mapper function.
func (r *Register[V]) Each(mapper func(Entry[V])) {
	if r.table == nil {
		return
	}
	r.table.Each(func(k interface{}, v interface{}) {
		mapper(*v.(*Entry[V]))
	})
}

// Dump is a debugging helper.
func (r *Register[V]) Dump() {
	tracer().Debugf("--- register (%d entries) --------", r.Size())
	r.Each(func(e Entry[V]) {
		tracer().Debugf("%8s = %v", e.Key(), e.Value)
	})
	tracer().Debugf("----------------------------------")
}
