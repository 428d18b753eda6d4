package cli

import (
	"cmp"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"lazyseq/seqs"
)

// numberedLine is an input line with its parsed key.
type numberedLine struct {
	text string
	key  float64
}

func newExtremeCommand(a *app, greatest bool) *cobra.Command {
	var (
		keySpec string
		numeric bool
	)

	use, short := "minby", "Write every line whose key is the smallest"
	if greatest {
		use, short = "maxby", "Write every line whose key is the greatest"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `, in input order.

Keys are compared as strings, except for --key length and --numeric keys.
With --numeric every line must have a key that parses as a number.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lines, err := selectLines(a.lines(cmd), keySpec, numeric, greatest)
			if err != nil {
				return err
			}

			n, err := emit(limit(seqs.FromSlice(lines), a.cfg.Limit), plainLines(cmd.OutOrStdout()))
			a.done(n)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&keySpec, "key", "length", "key to compare: line, length or field:N")
	flags.BoolVar(&numeric, "numeric", false, "compare keys as numbers")
	return cmd
}

func selectLines(src seqs.Seq[string], keySpec string, numeric, greatest bool) ([]string, error) {
	if keySpec == "length" && !numeric {
		return extreme(greatest, src, utf8.RuneCountInString)
	}

	keyOf, err := parseKey(keySpec)
	if err != nil {
		return nil, err
	}
	if !numeric {
		return extreme(greatest, src, func(line string) string {
			key, _ := keyOf(line)
			return key
		})
	}

	indexed, err := seqs.WithIndex(src)
	if err != nil {
		return nil, err
	}
	parsed, err := seqs.TryMap(indexed, func(l seqs.Indexed[string]) (numberedLine, error) {
		key, ok := keyOf(l.Element)
		if !ok {
			return numberedLine{}, fmt.Errorf("line %d: no %s key", l.Index+1, keySpec)
		}
		f, err := strconv.ParseFloat(key, 64)
		if err != nil {
			return numberedLine{}, fmt.Errorf("line %d: %w", l.Index+1, err)
		}
		return numberedLine{text: l.Element, key: f}, nil
	})
	if err != nil {
		return nil, err
	}

	best, err := extreme(greatest, parsed, func(l numberedLine) float64 { return l.key })
	if err != nil {
		return nil, err
	}
	out := make([]string, len(best))
	for i, l := range best {
		out[i] = l.text
	}
	return out, nil
}

func extreme[T any, K cmp.Ordered](greatest bool, src seqs.Seq[T], keyOf func(T) K) ([]T, error) {
	if greatest {
		return seqs.MaxBy(src, keyOf)
	}
	return seqs.MinBy(src, keyOf)
}
