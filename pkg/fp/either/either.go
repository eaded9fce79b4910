package either

// Either holds exactly one of a Left or a Right value. Combinators act on
// the Right side; a Left value propagates unchanged through them.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Right constructs an Either populated on the biased side.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// Left constructs an Either populated on the alternate side.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Cond returns Right(right()) when test holds, otherwise Left(left()).
// Only the branch matching the predicate is evaluated.
func Cond[L, R any](test bool, right func() R, left func() L) Either[L, R] {
	if test {
		return Right[L](right())
	}
	return Left[L, R](left())
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// Right returns the Right value; zero when the Either is a Left.
func (e Either[L, R]) Right() R {
	return e.right
}

// Left returns the Left value; zero when the Either is a Right.
func (e Either[L, R]) Left() L {
	return e.left
}

// Swap exchanges the sides without altering the stored values, so that
// combinators act on what was previously the Left side.
func (e Either[L, R]) Swap() Either[R, L] {
	return Either[R, L]{left: e.right, right: e.left, isRight: !e.isRight}
}

// GetOrElse returns the Right value, or computes a replacement from the
// Left value via handler.
func (e Either[L, R]) GetOrElse(handler func(L) R) R {
	if e.isRight {
		return e.right
	}
	return handler(e.left)
}

// Map transforms the Right value; a Left passes through unchanged.
func Map[L, R, U any](e Either[L, R], f func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, U](e.left)
}

// MapLeft transforms the Left value, mirroring Map for the other side.
func MapLeft[L, R, M any](e Either[L, R], f func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M](e.right)
	}
	return Left[M, R](f(e.left))
}

// FlatMap transforms the Right value with a function that itself returns an
// Either; the first Left encountered in a chain propagates unchanged
// through all subsequent combinators.
func FlatMap[L, R, U any](e Either[L, R], f func(R) Either[L, U]) Either[L, U] {
	if e.isRight {
		return f(e.right)
	}
	return Left[L, U](e.left)
}

// Fold reduces the Either to a single value via one of the two handlers.
func Fold[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
