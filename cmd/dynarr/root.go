package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/webbmaffian/go-dynarr/alloc"
	"github.com/webbmaffian/go-dynarr/dynarr"
)

var (
	// Global flags
	allocName string
	budget    int
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "dynarr",
	Short: "Exercise dynamic arrays against different allocators",
	Long: `dynarr runs dynamic array workloads and shows how the array's block
is grown, compacted and shrunk by the selected allocator.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&allocName, "alloc", "heap", "Allocator backing the arrays (heap or mmap)")
	rootCmd.PersistentFlags().IntVar(&budget, "budget", 0, "Cap on live bytes across all arrays, 0 for none")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every reallocation and compaction")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo

	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newAllocator builds the allocator chain selected by the flags. The returned
// counter sits on top of the chain and sees every call.
func newAllocator(name string, budget int) (*alloc.Counter, error) {
	var a alloc.Allocator

	switch name {
	case "heap":
		a = alloc.Heap{}
	case "mmap":
		a = alloc.Mmap{}
	default:
		return nil, errors.Newf("unknown allocator %q (expected heap or mmap)", name)
	}

	if budget < 0 {
		return nil, errors.Newf("budget must not be negative, got %d", budget)
	}

	if budget > 0 {
		a = alloc.NewBudget(a, budget)
	}

	return alloc.NewCounter(a), nil
}

// arrayOptions returns the options shared by every command.
func arrayOptions(log *slog.Logger) ([]dynarr.Option, *alloc.Counter, error) {
	counter, err := newAllocator(allocName, budget)

	if err != nil {
		return nil, nil, err
	}

	return []dynarr.Option{
		dynarr.WithAllocator(counter),
		dynarr.WithLogger(log),
	}, counter, nil
}
