package shared

// Specification is a named, reusable boolean predicate over a domain
// object. Evaluation is pure: no side effects and no errors for normal
// candidates. Leaf specifications are plain structs; the combinators
// below provide logical composition.
type Specification[T any] interface {
	IsSatisfiedBy(candidate T) bool
}

// AndSpecification is satisfied when both operands are satisfied
type AndSpecification[T any] struct {
	left  Specification[T]
	right Specification[T]
}

// IsSatisfiedBy evaluates the conjunction
func (s AndSpecification[T]) IsSatisfiedBy(candidate T) bool {
	return s.left.IsSatisfiedBy(candidate) && s.right.IsSatisfiedBy(candidate)
}

// OrSpecification is satisfied when either operand is satisfied
type OrSpecification[T any] struct {
	left  Specification[T]
	right Specification[T]
}

// IsSatisfiedBy evaluates the disjunction
func (s OrSpecification[T]) IsSatisfiedBy(candidate T) bool {
	return s.left.IsSatisfiedBy(candidate) || s.right.IsSatisfiedBy(candidate)
}

// NotSpecification negates the wrapped specification
type NotSpecification[T any] struct {
	inner Specification[T]
}

// IsSatisfiedBy evaluates the negation
func (s NotSpecification[T]) IsSatisfiedBy(candidate T) bool {
	return !s.inner.IsSatisfiedBy(candidate)
}

// And combines two specifications with logical AND
func And[T any](left, right Specification[T]) Specification[T] {
	return AndSpecification[T]{left: left, right: right}
}

// Or combines two specifications with logical OR
func Or[T any](left, right Specification[T]) Specification[T] {
	return OrSpecification[T]{left: left, right: right}
}

// Not negates a specification
func Not[T any](inner Specification[T]) Specification[T] {
	return NotSpecification[T]{inner: inner}
}
