package autoresolve

import (
	"fmt"
	"reflect"
	"testing"
)

// benchTypes builds n distinct candidate types, alternating lifetimes and self registration.
func benchTypes(n int) Types {
	markers := []Abstraction{ResolveAsScoped, ResolveAsTransient, ResolveAsSingleton}
	types := make(Types, 0, n)
	for i := 0; i < n; i++ {
		impl := reflect.StructOf([]reflect.StructField{
			{Name: fmt.Sprintf("Field%d", i), Type: reflect.TypeOf("")},
		})
		declared := []Abstraction{Interface[IWidget](), markers[i%len(markers)]}
		if i%4 == 0 {
			declared = append(declared, ResolveAsSelf)
		}
		types = append(types, DescribeType(impl, declared...))
	}
	return types
}

// BenchmarkClassify benchmarks marker classification of a single type.
func BenchmarkClassify(b *testing.B) {
	c := NewClassifier(DefaultMarkers())
	info := gadgetInfo()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = c.Classify(info)
	}
}

// BenchmarkBuild benchmarks entry construction for a multi-marker type.
func BenchmarkBuild(b *testing.B) {
	builder := NewBuilder(DefaultMarkers())
	info := widget2Info()
	matched := []Marker{MarkerScoped, MarkerTransient}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = builder.Build(info, matched)
	}
}

// BenchmarkResolve benchmarks full scans of increasing size.
func BenchmarkResolve(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("types=%d", n), func(b *testing.B) {
			r := New()
			src := benchTypes(n)

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if _, err := r.Resolve(src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
