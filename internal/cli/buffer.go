package cli

import (
	"github.com/spf13/cobra"

	"lazyseq/internal/config"
	"lazyseq/seqs"
)

type bufferOptions struct {
	Count int `flag:"count" validate:"gte=1"`
	Step  int `flag:"step" validate:"gte=0"`
}

func newBufferCommand(a *app) *cobra.Command {
	var opts bufferOptions

	cmd := &cobra.Command{
		Use:   "buffer",
		Short: "Group lines into windows of --count lines, one starting every --step lines",
		Long: `Group lines into windows written as JSON arrays.

Without --step (or with --step equal to --count) windows tile the input.
A smaller step makes windows overlap; a larger one skips the lines between
windows. Windows still open at the end of the input are written shorter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Validate(&opts); err != nil {
				return err
			}

			var (
				windows seqs.Seq[[]string]
				err     error
			)
			if opts.Step == 0 {
				windows, err = seqs.Buffer(a.lines(cmd), opts.Count)
			} else {
				windows, err = seqs.BufferStep(a.lines(cmd), opts.Count, opts.Step)
			}
			if err != nil {
				return err
			}

			n, err := emit(limit(windows, a.cfg.Limit), jsonLines[[]string](cmd.OutOrStdout()))
			a.done(n)
			return err
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.Count, "count", 2, "lines per window")
	flags.IntVar(&opts.Step, "step", 0, "lines between window starts, 0 for --count")
	return cmd
}
