package pulse

// Validator is the schema-validation collaborator. It is consulted only when
// assertions are compiled in, never in the production dispatch path. A
// non-nil error rejects the value before it is committed, so prior state is
// unchanged.
type Validator[T any] interface {
	Validate(value T) error
}

// ValidatorFunc adapts a plain function to Validator.
type ValidatorFunc[T any] func(value T) error

func (f ValidatorFunc[T]) Validate(value T) error {
	return f(value)
}
