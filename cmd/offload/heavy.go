package main

import (
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ja7ad/offload/pkg/offload"
	"github.com/ja7ad/offload/pkg/util"
)

func newHeavyCmd() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "heavy X [X...]",
		Short: "Run the synthetic CPU-bound workload for each X",
		Long: fmt.Sprintf(`Runs HeavyCalc(X), a fixed %d-term summation of 0.5*sin(2(X+i)), for every
argument. Arguments are independent and evaluated in parallel, up to --jobs at once.
Results are printed in argument order.`, offload.HeavyIterations),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs := make([]float64, len(args))
			for i, a := range args {
				x, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				xs[i] = x
			}

			results, err := heavyAll(cmd, xs, jobs)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "X\tHEAVY_CALC(X)")
			for i, x := range xs {
				fmt.Fprintf(tw, "%s\t%s\n", util.FmtFloat(x), util.FmtFloat(results[i]))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "maximum concurrent evaluations")
	return cmd
}

func heavyAll(cmd *cobra.Command, xs []float64, jobs int) ([]float64, error) {
	if jobs < 1 {
		return nil, fmt.Errorf("jobs must be >= 1")
	}

	results := make([]float64, len(xs))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)

	for i, x := range xs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = offload.HeavyCalc(x)
			slog.Debug("heavy done", "x", x, "result", results[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
