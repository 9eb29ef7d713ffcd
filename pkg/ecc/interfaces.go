package ecc

// Coordinate is the ring contract a curve coordinate type must satisfy.
// Implementations have immutable value semantics: every method returns a
// new value and leaves the receiver untouched.
//
// Binary operations return ErrFieldMismatch (wrapped in an *OpError) when
// the operands do not belong to the same ring, and Div returns
// ErrDivisionByZero when the divisor is zero. Division must be exact.
type Coordinate[T any] interface {
	// Add returns receiver + b.
	Add(b T) (T, error)

	// Sub returns receiver - b.
	Sub(b T) (T, error)

	// Mul returns receiver * b.
	Mul(b T) (T, error)

	// Div returns receiver / b.
	Div(b T) (T, error)

	// Neg returns the additive inverse.
	Neg() T

	// IsZero reports whether the value is the additive identity.
	IsZero() bool

	// Equal reports whether two values are equal members of the same ring.
	Equal(b T) bool

	// FromInt64 embeds a small integer into the receiver's ring.
	FromInt64(v int64) T

	// String returns a human-readable representation.
	String() string
}

// Group is the additive group interface implemented by curve points.
type Group[P any] interface {
	// Add returns receiver + q.
	Add(q P) (P, error)

	// Neg returns the additive inverse.
	Neg() P

	// IsIdentity reports whether the element is the group identity.
	IsIdentity() bool

	// Equal reports whether two elements are equal.
	Equal(q P) bool
}
