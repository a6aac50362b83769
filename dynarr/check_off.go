//go:build dynarr_unchecked

package dynarr

const checked = false
