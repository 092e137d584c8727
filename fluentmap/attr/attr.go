package attr

import "fmt"

type State int

const (
	Unset State = iota
	Default
	Specified
)

func (s State) String() string {
	switch s {
	case Default:
		return "Default"
	case Specified:
		return "Specified"
	default:
		return "Unset"
	}
}

// Attr is a mapping attribute with two layers: a default, which conventions
// and builders may replace freely, and an explicit value, which always wins.
type Attr[T any] struct {
	def        T
	val        T
	hasDefault bool
	specified  bool
}

// Of creates an explicitly specified Attr.
func Of[T any](val T) Attr[T] {
	return Attr[T]{val: val, specified: true}
}

// DefaultOf creates an Attr holding only a default value.
func DefaultOf[T any](def T) Attr[T] {
	return Attr[T]{def: def, hasDefault: true}
}

func (a *Attr[T]) Set(val T) {
	a.val = val
	a.specified = true
}

// SetDefault replaces the default layer. It has no visible effect while an
// explicit value is present.
func (a *Attr[T]) SetDefault(def T) {
	a.def = def
	a.hasDefault = true
}

func (a *Attr[T]) Unset() {
	var zero T
	a.val, a.def = zero, zero
	a.specified, a.hasDefault = false, false
}

// Get returns the explicit value, the default, or the zero value of T.
func (a Attr[T]) Get() T {
	v, _ := a.Value()
	return v
}

func (a Attr[T]) GetOr(fallback T) T {
	if v, ok := a.Value(); ok {
		return v
	}
	return fallback
}

func (a Attr[T]) Value() (T, bool) {
	if a.specified {
		return a.val, true
	}
	if a.hasDefault {
		return a.def, true
	}
	var zero T
	return zero, false
}

// IsSpecified reports whether an explicit value was set.
func (a Attr[T]) IsSpecified() bool {
	return a.specified
}

func (a Attr[T]) HasValue() bool {
	return a.specified || a.hasDefault
}

func (a Attr[T]) State() State {
	switch {
	case a.specified:
		return Specified
	case a.hasDefault:
		return Default
	default:
		return Unset
	}
}

// Merge copies the layers of other that are present. An explicit value in
// other overrides the receiver's explicit value; other's default only fills
// an empty default layer.
func (a *Attr[T]) Merge(other Attr[T]) {
	if other.specified {
		a.Set(other.val)
	}
	if other.hasDefault && !a.hasDefault {
		a.SetDefault(other.def)
	}
}

func (a Attr[T]) String() string {
	switch {
	case a.specified:
		return fmt.Sprintf("Specified(%v)", a.val)
	case a.hasDefault:
		return fmt.Sprintf("Default(%v)", a.def)
	default:
		return "Unset"
	}
}
