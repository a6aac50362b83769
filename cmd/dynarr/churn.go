package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/webbmaffian/go-dynarr/alloc"
	"github.com/webbmaffian/go-dynarr/dynarr"
)

type churnConfig struct {
	ops      int
	batch    int
	depth    int
	pushPct  int
	seed     int64
	interval time.Duration
}

var churnCfg = churnConfig{
	ops:      1_000_000,
	batch:    1000,
	depth:    64,
	pushPct:  50,
	seed:     1,
	interval: 250 * time.Millisecond,
}

func init() {
	cmd := newChurnCmd()
	cmd.Flags().IntVar(&churnCfg.ops, "ops", churnCfg.ops, "Operations to run, 0 to run until interrupted")
	cmd.Flags().IntVar(&churnCfg.batch, "batch", churnCfg.batch, "Operations between each capacity check")
	cmd.Flags().IntVar(&churnCfg.depth, "depth", churnCfg.depth, "Elements queued before churning starts")
	cmd.Flags().IntVar(&churnCfg.pushPct, "push", churnCfg.pushPct, "Percentage of operations that push (the rest dequeue)")
	cmd.Flags().Int64Var(&churnCfg.seed, "seed", churnCfg.seed, "Random seed")
	cmd.Flags().DurationVar(&churnCfg.interval, "interval", churnCfg.interval, "Time between renders")
	rootCmd.AddCommand(cmd)
}

func newChurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "churn",
		Short: "Run a queue workload and watch the array's block",
		Long: `The churn command runs a random mix of pushes and dequeues against one
array, shrinking it whenever it is mostly empty. Length, capacity, offset and
allocator statistics are shown live on a terminal and logged otherwise.

Example:
  dynarr churn
  dynarr churn --ops 0 --push 55 --alloc mmap
  dynarr churn --budget 65536`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			log := newLogger(os.Stderr, verbose)
			opts, counter, err := arrayOptions(log)

			if err != nil {
				return err
			}

			var view churnView

			if f, ok := cmd.OutOrStdout().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
				view = newLiveView(f)
			} else {
				view = logView{log: log}
			}

			defer view.stop()

			return runChurn(ctx, churnCfg, counter, view, opts...)
		},
	}
}

// churnView presents the state of a churn run. It is only ever called from
// the goroutine running the workload.
type churnView interface {
	render(done int, m dynarr.Metrics, s alloc.Stats)
	stop()
}

type liveView struct {
	writer *uilive.Writer

	ops      io.Writer
	length   io.Writer
	capacity io.Writer
	offset   io.Writer
	usage    io.Writer
	allocs   io.Writer
	bytes    io.Writer
}

func newLiveView(out io.Writer) *liveView {
	writer := uilive.New()
	writer.Out = out

	v := &liveView{
		writer:   writer,
		ops:      writer.Newline(),
		length:   writer.Newline(),
		capacity: writer.Newline(),
		offset:   writer.Newline(),
		usage:    writer.Newline(),
		allocs:   writer.Newline(),
		bytes:    writer.Newline(),
	}

	writer.Start()
	return v
}

func (v *liveView) render(done int, m dynarr.Metrics, s alloc.Stats) {
	fmt.Fprintf(v.ops, "Operations: %d\n", done)
	fmt.Fprintf(v.length, "Length: %d\n", m.Len)
	fmt.Fprintf(v.capacity, "Capacity: %d\n", m.Cap)
	fmt.Fprintf(v.offset, "Offset: %d\n", m.Offset)
	fmt.Fprintf(v.usage, "Utilization: %.1f%%\n", m.Utilization*100)
	fmt.Fprintf(v.allocs, "Allocs: %d  Reallocs: %d  Frees: %d  Failures: %d\n", s.Allocs, s.Reallocs, s.Frees, s.Failures)
	fmt.Fprintf(v.bytes, "Live bytes: %d  Peak bytes: %d\n", s.LiveBytes, s.PeakBytes)
}

func (v *liveView) stop() {
	v.writer.Stop()
}

type logView struct {
	log *slog.Logger
}

func (v logView) render(done int, m dynarr.Metrics, s alloc.Stats) {
	v.log.Info("churn",
		slog.Int("ops", done),
		slog.Int("len", m.Len),
		slog.Int("cap", m.Cap),
		slog.Int("offset", m.Offset),
		slog.Float64("utilization", m.Utilization),
		slog.Uint64("reallocs", s.Reallocs),
		slog.Uint64("failures", s.Failures),
		slog.Int("live_bytes", s.LiveBytes),
	)
}

func (logView) stop() {}

// runChurn drives a queue of uint64 with a random mix of pushes and dequeues
// until cfg.ops operations are done or ctx is cancelled. Failed pushes are
// counted by the allocator and otherwise ignored, so a budget simply caps the
// queue.
func runChurn(ctx context.Context, cfg churnConfig, counter *alloc.Counter, view churnView, opts ...dynarr.Option) (err error) {
	arr, err := dynarr.New[uint64](opts...)

	if err != nil {
		return
	}

	defer func() {
		if freeErr := arr.Free(); err == nil {
			err = freeErr
		}
	}()

	if cfg.batch < 1 {
		cfg.batch = 1
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	next := uint64(0)

	for i := 0; i < cfg.depth; i++ {
		if _, err = arr.Push(next); err != nil {
			return
		}

		next++
	}

	done := 0
	lastRender := time.Now()
	view.render(done, arr.Metrics(), counter.Stats())

	for cfg.ops == 0 || done < cfg.ops {
		if ctx.Err() != nil {
			break
		}

		n := cfg.batch

		if cfg.ops > 0 && cfg.ops-done < n {
			n = cfg.ops - done
		}

		for i := 0; i < n; i++ {
			if rng.Intn(100) < cfg.pushPct {
				if _, err := arr.Push(next); err == nil {
					next++
				}
			} else if arr.Len() > 0 {
				arr.Dequeue()
			}
		}

		done += n

		// Give memory back once the queue has drained to a quarter of its block.
		if m := arr.Metrics(); m.Cap > 64 && m.Len < m.Cap/4 {
			if _, err := arr.AdjustCapacity(m.Len * 2); err != nil {
				return err
			}
		}

		if time.Since(lastRender) >= cfg.interval {
			view.render(done, arr.Metrics(), counter.Stats())
			lastRender = time.Now()
		}
	}

	view.render(done, arr.Metrics(), counter.Stats())
	return
}
