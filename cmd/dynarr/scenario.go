package main

import (
	"cmp"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/webbmaffian/go-dynarr/dynarr"
)

func init() {
	rootCmd.AddCommand(newScenarioCmd())
}

func newScenarioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario",
		Short: "Run the push, sort, search, dequeue and clear walkthrough",
		Long: `The scenario command pushes 5, 3, 8 and 1, sorts them, searches for 5,
dequeues the front, clears the array and pushes 42, printing the array
after every step.

Example:
  dynarr scenario
  dynarr scenario --alloc mmap -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := arrayOptions(newLogger(os.Stderr, verbose))

			if err != nil {
				return err
			}

			return runScenario(cmd.OutOrStdout(), opts...)
		},
	}
}

func runScenario(w io.Writer, opts ...dynarr.Option) (err error) {
	arr, err := dynarr.New[int32](opts...)

	if err != nil {
		return
	}

	defer func() {
		if freeErr := arr.Free(); err == nil {
			err = freeErr
		}
	}()

	for _, v := range []int32{5, 3, 8, 1} {
		if _, err = arr.Push(v); err != nil {
			return errors.Wrapf(err, "push %d", v)
		}
	}

	fmt.Fprintf(w, "push 5 3 8 1: %v len=%d cap=%d\n", arr.Items(), arr.Len(), arr.Cap())

	arr.Sort(cmp.Compare[int32])
	fmt.Fprintf(w, "sort: %v\n", arr.Items())
	fmt.Fprintf(w, "find 5: %d\n", arr.FindBinary(5, cmp.Compare[int32]))

	front := arr.Dequeue()
	fmt.Fprintf(w, "dequeue: %d -> %v offset=%d\n", front, arr.Items(), arr.Offset())

	arr.Clear()
	fmt.Fprintf(w, "clear: len=%d cap=%d\n", arr.Len(), arr.Cap())

	if _, err = arr.Push(42); err != nil {
		return errors.Wrap(err, "push 42")
	}

	fmt.Fprintf(w, "push 42: %v len=%d\n", arr.Items(), arr.Len())
	return
}
