package nonempty

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOfHead(t *testing.T) {
	t.Parallel()
	l := Of(1, 2, 3)
	if l.Head() != 1 {
		t.Fatalf("expected head 1, got %d", l.Head())
	}
	if l.Len() != 3 {
		t.Fatalf("expected len 3, got %d", l.Len())
	}
	if diff := cmp.Diff([]int{2, 3}, l.Tail()); diff != "" {
		t.Fatalf("tail mismatch (-want +got):\n%s", diff)
	}
}

func TestSingletonHead(t *testing.T) {
	t.Parallel()
	l := Of("only")
	if l.Head() != "only" || l.Len() != 1 || len(l.Tail()) != 0 {
		t.Fatalf("unexpected singleton shape: %v", l)
	}
}

func TestFromSlice(t *testing.T) {
	t.Parallel()
	got := FromSlice([]int{4, 5})
	l, ok := got.Get()
	if !ok {
		t.Fatalf("expected Some for non-empty slice")
	}
	if diff := cmp.Diff([]int{4, 5}, l.All()); diff != "" {
		t.Fatalf("elements mismatch (-want +got):\n%s", diff)
	}

	if FromSlice([]int{}).IsSome() {
		t.Fatalf("expected None for empty slice")
	}
}

func TestOfCopiesInput(t *testing.T) {
	t.Parallel()
	rest := []int{2, 3}
	l := Of(1, rest...)
	rest[0] = 99
	if diff := cmp.Diff([]int{1, 2, 3}, l.All()); diff != "" {
		t.Fatalf("list must not alias caller's slice (-want +got):\n%s", diff)
	}
}

func TestMapHeadLaw(t *testing.T) {
	t.Parallel()
	double := func(v int) int { return v * 2 }
	l := Of(3, 4)
	mapped := Map(l, double)
	if mapped.Head() != double(l.Head()) {
		t.Fatalf("map must transform the head: got %d", mapped.Head())
	}
	if diff := cmp.Diff([]int{6, 8}, mapped.All()); diff != "" {
		t.Fatalf("map mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatMapCartesianOrder(t *testing.T) {
	t.Parallel()
	got := FlatMap(Of(1, 2), func(x int) List[int] {
		return Map(Of(10, 20), func(y int) int { return x + y })
	})
	if diff := cmp.Diff([]int{11, 21, 12, 22}, got.All()); diff != "" {
		t.Fatalf("outer-major order violated (-want +got):\n%s", diff)
	}
}

func TestFoldLeft(t *testing.T) {
	t.Parallel()
	got := FoldLeft(Of(1, 2, 3), "0", func(acc string, v int) string {
		return acc + "+" + strconv.Itoa(v)
	})
	if got != "0+1+2+3" {
		t.Fatalf("left-to-right order violated: %s", got)
	}
}

func TestReduce(t *testing.T) {
	t.Parallel()
	if got := Reduce(Of(2, 3, 4), func(a, b int) int { return a * b }); got != 24 {
		t.Fatalf("expected 24, got %d", got)
	}
	if got := Reduce(Of(7), func(a, b int) int { return a + b }); got != 7 {
		t.Fatalf("reduce of singleton must be its head, got %d", got)
	}
}

func TestAppendAndConcatImmutable(t *testing.T) {
	t.Parallel()
	base := Of(1, 2)
	grown := base.Append(3).Concat(Of(4, 5))
	if diff := cmp.Diff([]int{1, 2}, base.All()); diff != "" {
		t.Fatalf("base mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, grown.All()); diff != "" {
		t.Fatalf("grown mismatch (-want +got):\n%s", diff)
	}
}

func TestMap2CartesianProduct(t *testing.T) {
	t.Parallel()
	got := Map2(Of(1, 2), Of("a", "b"), func(n int, s string) string {
		return strconv.Itoa(n) + s
	})
	if diff := cmp.Diff([]string{"1a", "1b", "2a", "2b"}, got.All()); diff != "" {
		t.Fatalf("row-major order violated (-want +got):\n%s", diff)
	}
}

func TestMap3CartesianProduct(t *testing.T) {
	t.Parallel()
	got := Map3(Of(0, 1), Of(0, 10), Of(0, 100), func(a, b, c int) int {
		return a + b + c
	})
	want := []int{0, 100, 10, 110, 1, 101, 11, 111}
	if diff := cmp.Diff(want, got.All()); diff != "" {
		t.Fatalf("first-sequence-outermost order violated (-want +got):\n%s", diff)
	}
}
