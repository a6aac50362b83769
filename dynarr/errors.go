package dynarr

type arrayError string

var _ error = arrayError("")

func (err arrayError) Error() string {
	return string(err)
}

const (
	// ErrAlloc marks every error caused by the allocator refusing a request.
	// The array is unchanged when it is returned.
	ErrAlloc = arrayError("dynarr: allocation failed")

	ErrItemSize    = arrayError("dynarr: item must be at least 1 byte")
	ErrPointerItem = arrayError("dynarr: item must not contain pointers")
)

// NotFound is returned by the search methods when no element matches. Methods
// returning an index or a count also return it, together with an error, on
// allocation failure.
const NotFound = -1
