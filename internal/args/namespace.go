package args

import (
	"slices"
	"time"
)

// Namespace holds parsed argument values, keyed by the destination name.
type Namespace struct {
	values map[string]any
	set    map[string]bool // explicitly given on the command line
	order  []string
}

func newNamespace() *Namespace {
	return &Namespace{values: make(map[string]any), set: make(map[string]bool)}
}

// put stores the value; explicit values always win over defaults.
func (ns *Namespace) put(dest string, v any, explicit bool) {
	if _, exists := ns.values[dest]; !exists {
		ns.order = append(ns.order, dest)
	} else if !explicit {
		return // keep the first default (or the explicit value)
	}

	ns.values[dest] = v

	if explicit {
		ns.set[dest] = true
	}
}

// Dests returns the destination names in registration order.
func (ns *Namespace) Dests() []string { return slices.Clone(ns.order) }

// Get returns the raw value. The boolean is false for an unknown destination.
func (ns *Namespace) Get(dest string) (any, bool) {
	v, ok := ns.values[dest]

	return v, ok
}

// IsSet reports whether the value came from the command line rather than from the default.
func (ns *Namespace) IsSet(dest string) bool { return ns.set[dest] }

func value[T any](ns *Namespace, dest string) T {
	v, _ := ns.values[dest].(T)

	return v
}

// String returns the string value (or an empty string).
func (ns *Namespace) String(dest string) string { return value[string](ns, dest) }

// Strings returns the string list value (or nil).
func (ns *Namespace) Strings(dest string) []string { return slices.Clone(value[[]string](ns, dest)) }

// Bool returns the boolean value (or false).
func (ns *Namespace) Bool(dest string) bool { return value[bool](ns, dest) }

// Int returns the integer value (or 0). Count actions are read with it too.
func (ns *Namespace) Int(dest string) int { return value[int](ns, dest) }

// Ints returns the integer list value (or nil).
func (ns *Namespace) Ints(dest string) []int { return slices.Clone(value[[]int](ns, dest)) }

// Float returns the float value (or 0).
func (ns *Namespace) Float(dest string) float64 { return value[float64](ns, dest) }

// Duration returns the duration value (or 0).
func (ns *Namespace) Duration(dest string) time.Duration { return value[time.Duration](ns, dest) }

// Count returns the occurrences counted by a Count action.
func (ns *Namespace) Count(dest string) int { return ns.Int(dest) }
