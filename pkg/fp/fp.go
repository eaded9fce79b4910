package fp

// Identity returns its argument unchanged.
func Identity[T any](v T) T {
	return v
}

// Const returns a function that always produces v.
func Const[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Compose returns h = f . g, applying g first.
func Compose[A, B, C any](g func(A) B, f func(B) C) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}
