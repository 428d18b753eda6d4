package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lazyseq/seqs"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

type opener func() (io.ReadCloser, error)

func openFile(path string) opener {
	return func() (io.ReadCloser, error) {
		return os.Open(path)
	}
}

// readLines opens the input on every pass and yields its lines. Open and
// read failures arrive as the last step of the pass.
func readLines(open opener) seqs.Seq[string] {
	return func(yield func(string, error) bool) {
		rc, err := open()
		if err != nil {
			yield("", err)
			return
		}
		defer rc.Close()

		sc := bufio.NewScanner(rc)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for sc.Scan() {
			if !yield(sc.Text(), nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield("", err)
		}
	}
}

// stdin is the path that names standard input.
const stdin = "-"

// open reads path, or the standard input of cmd for "-".
func open(cmd *cobra.Command, path string) opener {
	if path == stdin {
		return func() (io.ReadCloser, error) {
			return io.NopCloser(cmd.InOrStdin()), nil
		}
	}
	return openFile(path)
}

// lines returns the configured input of cmd.
func (a *app) lines(cmd *cobra.Command) seqs.Seq[string] {
	return readLines(open(cmd, a.cfg.Input))
}

// limit caps src at n results; n <= 0 leaves it whole.
func limit[T any](src seqs.Seq[T], n int) seqs.Seq[T] {
	if n <= 0 {
		return src
	}
	return seqs.Take(src, n)
}
