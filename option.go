package openenum

import (
	"fmt"
	"reflect"
)

// Option represents an optional value. It is the result type of
// OpenEnum.AsOption and follows the usual Some/None shape.
type Option[T any] struct {
	value T
	some  bool
}

// Some constructs an Option containing a value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option contains a value.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the value and a boolean indicating presence, mirroring the
// common Go "(value, ok)" pattern.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// MustGet returns the value or panics if the option is empty.
func (o Option[T]) MustGet() T {
	if !o.some {
		panic(Issue{Code: CodeNoSuchElement, Message: "no value present", Hint: "check IsSome first, or use Get"})
	}
	return o.value
}

// OrElse returns the contained value, or def when the option is empty.
func (o Option[T]) OrElse(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// Equal reports whether both options are empty, or both contain structurally
// equal values.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.some != other.some {
		return false
	}
	if !o.some {
		return true
	}
	return reflect.DeepEqual(o.value, other.value)
}

// String renders "Some(<value>)" or "None".
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
