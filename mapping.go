package openenum

// Mapping is the in-progress half of an exhaustive dispatch started by Map.
// Call OrElse to execute it.
//
// A Mapping is scoped to the call chain that created it: it has no identity,
// is never compared, and must not be retained past the expression that calls
// OrElse.
type Mapping[T comparable, U, V any] struct {
	e       OpenEnum[T, U]
	knownFn func(T) V
}

// Map captures knownFn against e without invoking it. The function runs only
// when Mapping.OrElse executes the dispatch, and only if e holds a known
// member.
//
// Write knownFn as if it were an exhaustive switch over T's members; Go does
// not check switch exhaustiveness over const enums, so the expectation is by
// convention and pinned by the caller's tests. OrElse supplies the mandatory
// fallback for values of T that do not exist in code yet.
//
// Map is a package-level function rather than a method because Go methods
// cannot introduce the result type parameter V.
func Map[T comparable, U, V any](e OpenEnum[T, U], knownFn func(T) V) Mapping[T, U, V] {
	return Mapping[T, U, V]{e: e, knownFn: knownFn}
}

// OrElse executes the dispatch: the captured known function applied to the
// known member if one is present, otherwise unknownFn applied to the unknown
// payload. Exactly one of the two functions runs.
func (m Mapping[T, U, V]) OrElse(unknownFn func(U) V) V {
	if m.e.isKnown {
		return m.knownFn(m.e.known)
	}
	return unknownFn(m.e.unknown)
}

// Consuming is the in-progress half of an effectful dispatch started by
// Accept. Call OrElse to execute it. Like Mapping, it is single-use and
// scoped to its call chain.
type Consuming[T comparable, U any] struct {
	e       OpenEnum[T, U]
	knownFn func(T)
}

// Accept is the side-effecting counterpart of Map: it captures a consumer for
// the known member without invoking it. The same exhaustiveness expectation
// applies to knownFn.
func (e OpenEnum[T, U]) Accept(knownFn func(T)) Consuming[T, U] {
	return Consuming[T, U]{e: e, knownFn: knownFn}
}

// OrElse executes the dispatch, invoking exactly one of the two consumers.
func (c Consuming[T, U]) OrElse(unknownFn func(U)) {
	if c.e.isKnown {
		c.knownFn(c.e.known)
		return
	}
	unknownFn(c.e.unknown)
}
