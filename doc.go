package openenum

// Package openenum provides:
//
// - OpenEnum[T, U]: an immutable tagged union holding either a member of a
//   closed enum type T or an unrecognized payload of type U
// - Constructors with nil enforcement on the known side (FromKnown/MustKnown)
//   and an unconditional FromUnknown
// - Exhaustive two-step dispatch via Map(...).OrElse(...) and
//   Accept(...).OrElse(...)
// - A stable error model via Issue (code, message)
//
// Design policy:
// - The core never parses or serializes a wire format; translating raw input
//   into a known-vs-unknown determination is the caller's responsibility.
// - Keep the whole public API in the root package; consumer-side translation
//   demos live under examples/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	plan, ok := knownPlans[raw]
//	var e openenum.OpenEnum[Plan, string]
//	if ok {
//		e = openenum.MustKnown[Plan, string](plan)
//	} else {
//		e = openenum.FromUnknown[Plan, string](raw)
//	}
//
//	price := openenum.Map(e, priceFor).OrElse(func(raw string) string {
//		return "no price for " + raw
//	})
