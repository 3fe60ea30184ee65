package openenum_test

import (
	"testing"

	openenum "github.com/reoring/openenum"
)

func TestOption_SomeNone(t *testing.T) {
	s := openenum.Some(PlanStandard)
	if !s.IsSome() || s.IsNone() {
		t.Fatalf("predicates: IsSome=%v IsNone=%v", s.IsSome(), s.IsNone())
	}
	if v, ok := s.Get(); !ok || v != PlanStandard {
		t.Fatalf("Get() = %v, %v", v, ok)
	}
	if got := s.MustGet(); got != PlanStandard {
		t.Fatalf("MustGet() = %v", got)
	}

	n := openenum.None[Plan]()
	if n.IsSome() || !n.IsNone() {
		t.Fatalf("predicates: IsSome=%v IsNone=%v", n.IsSome(), n.IsNone())
	}
	if v, ok := n.Get(); ok || v != Plan("") {
		t.Fatalf("Get() = %v, %v", v, ok)
	}
}

func TestOption_OrElse(t *testing.T) {
	if got := openenum.Some(PlanBusiness).OrElse(PlanStandard); got != PlanBusiness {
		t.Fatalf("OrElse() = %v", got)
	}
	if got := openenum.None[Plan]().OrElse(PlanStandard); got != PlanStandard {
		t.Fatalf("OrElse() = %v", got)
	}
}

func TestOption_MustGetPanicsOnNone(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	openenum.None[Plan]().MustGet()
}

func TestOption_Equal(t *testing.T) {
	if !openenum.Some(PlanStandard).Equal(openenum.Some(PlanStandard)) {
		t.Fatalf("equal Somes compared unequal")
	}
	if openenum.Some(PlanStandard).Equal(openenum.Some(PlanBusiness)) {
		t.Fatalf("different Somes compared equal")
	}
	if !openenum.None[Plan]().Equal(openenum.None[Plan]()) {
		t.Fatalf("Nones compared unequal")
	}
	if openenum.Some(Plan("")).Equal(openenum.None[Plan]()) {
		t.Fatalf("Some of zero value compared equal to None")
	}
}

func TestOption_String(t *testing.T) {
	if got := openenum.Some(PlanStandard).String(); got != "Some(Standard)" {
		t.Fatalf("String() = %q", got)
	}
	if got := openenum.None[Plan]().String(); got != "None" {
		t.Fatalf("String() = %q", got)
	}
}
