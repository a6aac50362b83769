//go:build !dynarr_unchecked

package dynarr

// Contract checks are compiled in. Build with -tags dynarr_unchecked to drop them.
const checked = true
