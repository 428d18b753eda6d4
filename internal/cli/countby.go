package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"lazyseq/ordmap"
	"lazyseq/seqs"
)

func newCountByCommand(a *app) *cobra.Command {
	var (
		keySpec    string
		ignoreCase bool
	)

	cmd := &cobra.Command{
		Use:   "countby",
		Short: "Count lines per key in first-seen order",
		Long: `Count lines per key and write one "key<TAB>count" row per key, in the
order keys were first seen. Lines without a key are counted together on a
final "` + noKey + `" row.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keyOf, err := parseKey(keySpec)
			if err != nil {
				return err
			}

			var counts ordmap.ReadOnly[ordmap.Nullable[string], int]
			if ignoreCase {
				counts, err = seqs.CountByOptionalFunc(a.lines(cmd), keyOf, ordmap.FoldString)
			} else {
				counts, err = seqs.CountByOptional(a.lines(cmd), keyOf)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			n := 0
			for key, count := range counts.All() {
				if a.cfg.Limit > 0 && n == a.cfg.Limit {
					break
				}
				name, ok := key.Get()
				if !ok {
					name = noKey
				}
				if _, err := fmt.Fprintf(out, "%s\t%d\n", name, count); err != nil {
					return err
				}
				n++
			}
			a.log.Debug().Int("keys", counts.Len()).Msg("counted")
			a.done(n)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&keySpec, "key", "line", "key to count by: line, length or field:N")
	flags.BoolVar(&ignoreCase, "ignore-case", false, "treat keys that differ only in case as one")
	return cmd
}
