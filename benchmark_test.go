package openenum_test

import (
	"testing"

	openenum "github.com/reoring/openenum"
)

func BenchmarkFromKnown(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := openenum.FromKnown[Plan, string](PlanStandard); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMapDispatch(b *testing.B) {
	e := openenum.MustKnown[Plan, string](PlanStandard)
	knownFn := func(p Plan) int { return len(p) }
	unknownFn := func(raw string) int { return -1 }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := openenum.Map(e, knownFn).OrElse(unknownFn); got == -1 {
			b.Fatal("unknown branch ran")
		}
	}
}

func BenchmarkEqual(b *testing.B) {
	x := openenum.FromUnknown[Plan, map[string]any](map[string]any{"tier": "Legacy", "seats": 3})
	y := openenum.FromUnknown[Plan, map[string]any](map[string]any{"tier": "Legacy", "seats": 3})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !x.Equal(y) {
			b.Fatal("expected equal")
		}
	}
}
