package surfutils

// Validatable is anything that can check its own internal consistency
type Validatable interface {
	Validate() error
}

// ValidateFunc adapts a consistency check that is not a method into a Validatable
type ValidateFunc func() error

func (f ValidateFunc) Validate() error {
	return f()
}
