package alloc

type allocError string

var _ error = allocError("")

func (err allocError) Error() string {
	return string(err)
}

const (
	// ErrSize is returned for non-positive block sizes.
	ErrSize = allocError("alloc: block size must be positive")

	// ErrBudget is returned when a request would exceed a Budget's limit.
	ErrBudget = allocError("alloc: budget exceeded")
)
