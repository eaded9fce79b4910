package option

import (
	"strconv"
	"testing"
)

func TestSomeAndGet(t *testing.T) {
	t.Parallel()
	o := Some(42)
	v, ok := o.Get()
	if !ok || v != 42 {
		t.Fatalf("expected present 42, got: present=%v, val=%v", ok, v)
	}
}

func TestNone(t *testing.T) {
	t.Parallel()
	o := None[int]()
	if o.IsSome() || !o.IsNone() {
		t.Fatalf("expected absent option")
	}
}

func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()
	var o Option[string]
	if !o.IsNone() {
		t.Fatalf("zero value should be None")
	}
}

func TestFromOk(t *testing.T) {
	t.Parallel()
	m := map[string]int{"a": 1}
	v, ok := m["a"]
	if got := FromOk(v, ok); got.GetOrElse(-1) != 1 {
		t.Fatalf("expected 1, got %v", got.GetOrElse(-1))
	}
	v, ok = m["b"]
	if got := FromOk(v, ok); got.IsSome() {
		t.Fatalf("expected None for missing key")
	}
}

func TestFromPtr(t *testing.T) {
	t.Parallel()
	n := 7
	if got := FromPtr(&n); got.GetOrElse(0) != 7 {
		t.Fatalf("expected 7")
	}
	if got := FromPtr[int](nil); got.IsSome() {
		t.Fatalf("expected None for nil pointer")
	}
}

func TestMapIdentity(t *testing.T) {
	t.Parallel()
	o := Some(3)
	mapped := Map(o, func(v int) int { return v })
	if mapped != o {
		t.Fatalf("functor identity violated: %v != %v", mapped, o)
	}
}

func TestMapComposition(t *testing.T) {
	t.Parallel()
	f := func(v int) int { return v + 1 }
	g := func(v int) string { return strconv.Itoa(v) }

	o := Some(9)
	left := Map(Map(o, f), g)
	right := Map(o, func(v int) string { return g(f(v)) })
	if left != right {
		t.Fatalf("functor composition violated: %v != %v", left, right)
	}
}

func TestMapOnNone(t *testing.T) {
	t.Parallel()
	called := false
	got := Map(None[int](), func(v int) int {
		called = true
		return v
	})
	if got.IsSome() || called {
		t.Fatalf("map over None must not invoke f")
	}
}

func TestFlatMapFlattens(t *testing.T) {
	t.Parallel()
	got := FlatMap(Some("5"), func(s string) Option[int] {
		n, err := strconv.Atoi(s)
		return FromOk(n, err == nil)
	})
	if got.GetOrElse(0) != 5 {
		t.Fatalf("expected Some(5), got %v", got)
	}

	got = FlatMap(Some("x"), func(s string) Option[int] {
		n, err := strconv.Atoi(s)
		return FromOk(n, err == nil)
	})
	if got.IsSome() {
		t.Fatalf("expected None for unparsable input")
	}
}

func TestGetOrElseAndOrElse(t *testing.T) {
	t.Parallel()
	if got := None[int]().GetOrElse(10); got != 10 {
		t.Fatalf("expected default 10, got %d", got)
	}
	evaluated := false
	got := Some(1).OrElse(func() int {
		evaluated = true
		return 10
	})
	if got != 1 || evaluated {
		t.Fatalf("OrElse must not evaluate fallback when present")
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()
	even := func(v int) bool { return v%2 == 0 }
	if got := Some(4).Filter(even); got.IsNone() {
		t.Fatalf("expected 4 to pass")
	}
	if got := Some(3).Filter(even); got.IsSome() {
		t.Fatalf("expected 3 to be rejected")
	}
}

func TestFold(t *testing.T) {
	t.Parallel()
	describe := func(o Option[int]) string {
		return Fold(o,
			func() string { return "absent" },
			func(v int) string { return "present:" + strconv.Itoa(v) })
	}
	if got := describe(Some(2)); got != "present:2" {
		t.Fatalf("unexpected fold result: %s", got)
	}
	if got := describe(None[int]()); got != "absent" {
		t.Fatalf("unexpected fold result: %s", got)
	}
}
