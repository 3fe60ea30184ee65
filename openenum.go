package openenum

import (
	"fmt"
	"hash/fnv"
	"io"
	"reflect"
	"sort"
	"strings"
)

// OpenEnum is a value that is either a member of a closed enum type T or an
// unrecognized payload of type U captured for forward-compatible handling.
//
// The open enum pattern is useful when consuming evolving external data
// (wire protocols, configuration, network APIs) where today's input is one of
// a closed set of values, but future inputs may fall outside it. Callers keep
// exhaustive handling of the known cases while still being forced to supply a
// fallback for values that do not exist in code yet; see Map and Accept.
//
// T is constrained to comparable, which is what a Go enum (a named type with
// a const block) satisfies and what gives the known side value-equality
// semantics. U is opaque; the type never inspects or validates it.
//
// OpenEnum is an immutable value: exactly one variant is populated, the
// discriminant is fixed at construction, and instances are safe to share
// across goroutines without synchronization. The zero value is the Unknown
// variant carrying U's zero value; prefer the constructors.
//
// When T is itself an interface type, its members must be strictly
// comparable: Equal compares known members with ==, which panics on a
// dynamically incomparable value just as == does anywhere else in Go.
type OpenEnum[T comparable, U any] struct {
	known   T
	unknown U
	isKnown bool
}

// FromKnown returns an OpenEnum holding the given enum member. The known side
// must always carry a real member: a nil value (nil pointer, nil interface,
// and so on) reports CodeInvalidArgument, since "absent" is never a
// legitimate known state. The zero value of a value-kind enum is a real
// member and is accepted.
func FromKnown[T comparable, U any](v T) (OpenEnum[T, U], error) {
	if isAbsent(v) {
		var zero OpenEnum[T, U]
		return zero, Issue{
			Code:    CodeInvalidArgument,
			Message: "known value must not be nil",
			Hint:    "values outside the enum belong in FromUnknown",
		}
	}
	return OpenEnum[T, U]{known: v, isKnown: true}, nil
}

// MustKnown is FromKnown for values that are statically known to be non-nil.
// It panics on a nil value.
func MustKnown[T comparable, U any](v T) OpenEnum[T, U] {
	e, err := FromKnown[T, U](v)
	if err != nil {
		panic(err)
	}
	return e
}

// FromUnknown returns an OpenEnum holding a value that is not a member of the
// enum. The payload is opaque data whose shape this type does not police; it
// may be nil.
func FromUnknown[T comparable, U any](v U) OpenEnum[T, U] {
	return OpenEnum[T, U]{unknown: v}
}

// IsKnown reports whether the instance was constructed via FromKnown.
func (e OpenEnum[T, U]) IsKnown() bool { return e.isKnown }

// IsUnknown reports whether the instance holds an unknown payload. Exactly
// one of IsKnown and IsUnknown holds.
func (e OpenEnum[T, U]) IsUnknown() bool { return !e.isKnown }

// Known returns the known enum member, or CodeNoSuchElement when the instance
// is the Unknown variant. Check IsKnown first, or prefer AsOption or the
// Map/Accept dispatch, which cannot fail this way.
func (e OpenEnum[T, U]) Known() (T, error) {
	if !e.isKnown {
		var zero T
		return zero, Issue{
			Code:    CodeNoSuchElement,
			Message: "no known value present",
			Hint:    "check IsKnown first, or use AsOption",
		}
	}
	return e.known, nil
}

// Unknown returns the unknown payload, or CodeNoSuchElement when the instance
// is the Known variant.
func (e OpenEnum[T, U]) Unknown() (U, error) {
	if e.isKnown {
		var zero U
		return zero, Issue{
			Code:    CodeNoSuchElement,
			Message: "no unknown value present",
			Hint:    "check IsUnknown first",
		}
	}
	return e.unknown, nil
}

// AsOption returns Some of the known member, or None when the instance is the
// Unknown variant. It never fails; this is the safe alternative to Known.
func (e OpenEnum[T, U]) AsOption() Option[T] {
	if !e.isKnown {
		return None[T]()
	}
	return Some(e.known)
}

// Equal reports whether both instances hold the same variant with equal
// payloads. Known sides compare with ==; unknown sides compare structurally,
// with two nil payloads equal. A Known instance never equals an Unknown one,
// regardless of payloads.
func (e OpenEnum[T, U]) Equal(other OpenEnum[T, U]) bool {
	if e.isKnown != other.isKnown {
		return false
	}
	if e.isKnown {
		return e.known == other.known
	}
	return reflect.DeepEqual(e.unknown, other.unknown)
}

// Hash returns a hash consistent with Equal: equal instances hash equal. It
// combines the variant discriminant with a canonical rendering of the
// payload. The unknown side is rendered by following pointers and interfaces
// the way Equal's structural comparison follows them, so deeply equal
// payloads hash equal; cyclic payloads are not supported. The known side
// compares with ==, so its plain rendering is already canonical (equal
// pointers are the same pointer).
func (e OpenEnum[T, U]) Hash() uint64 {
	h := fnv.New64a()
	if e.isKnown {
		h.Write([]byte{1})
		fmt.Fprintf(h, "%v", e.known)
	} else {
		h.Write([]byte{0})
		writeCanonical(h, reflect.ValueOf(e.unknown))
	}
	return h.Sum64()
}

// String renders "OpenEnum{<known>}" or "OpenEnum{unknown:<payload>}". A nil
// unknown payload renders as <nil>.
func (e OpenEnum[T, U]) String() string {
	if e.isKnown {
		return fmt.Sprintf("OpenEnum{%v}", e.known)
	}
	return fmt.Sprintf("OpenEnum{unknown:%v}", e.unknown)
}

// isAbsent reports whether v is a Go representation of "no value": an untyped
// nil boxed into an interface, or a typed nil of a nilable comparable kind.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Map, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// writeCanonical renders rv into w, dereferencing pointers and interfaces so
// that deeply equal values produce identical output. Map entries are emitted
// in sorted order; everything else defers to fmt.
func writeCanonical(w io.Writer, rv reflect.Value) {
	if !rv.IsValid() {
		io.WriteString(w, "<nil>")
		return
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			io.WriteString(w, "<nil>")
			return
		}
		writeCanonical(w, rv.Elem())
	case reflect.Struct:
		io.WriteString(w, "{")
		for i := 0; i < rv.NumField(); i++ {
			if i > 0 {
				io.WriteString(w, " ")
			}
			writeCanonical(w, rv.Field(i))
		}
		io.WriteString(w, "}")
	case reflect.Slice, reflect.Array:
		io.WriteString(w, "[")
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				io.WriteString(w, " ")
			}
			writeCanonical(w, rv.Index(i))
		}
		io.WriteString(w, "]")
	case reflect.Map:
		entries := make([]string, 0, rv.Len())
		for iter := rv.MapRange(); iter.Next(); {
			var b strings.Builder
			writeCanonical(&b, iter.Key())
			b.WriteString(":")
			writeCanonical(&b, iter.Value())
			entries = append(entries, b.String())
		}
		sort.Strings(entries)
		io.WriteString(w, "map[")
		for i, entry := range entries {
			if i > 0 {
				io.WriteString(w, " ")
			}
			io.WriteString(w, entry)
		}
		io.WriteString(w, "]")
	default:
		fmt.Fprintf(w, "%v", rv)
	}
}
