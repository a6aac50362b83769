package dynarr

import (
	"io"
	"log/slog"

	"github.com/webbmaffian/go-dynarr/alloc"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type config struct {
	alloc alloc.Allocator
	log   *slog.Logger
}

// Option configures an Array at creation.
type Option func(*config)

// WithAllocator makes the array take its block from a instead of alloc.Default.
func WithAllocator(a alloc.Allocator) Option {
	return func(c *config) {
		if a != nil {
			c.alloc = a
		}
	}
}

// WithLogger sets the logger used for reallocation, compaction and
// allocation failure records. Nothing is logged by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
