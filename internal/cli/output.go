package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"lazyseq/seqs"
)

// emit writes every element of src and returns how many were written. A
// source failure stops the output where it happened.
func emit[T any](src seqs.Seq[T], write func(T) error) (int, error) {
	n := 0
	for v, err := range src {
		if err != nil {
			return n, err
		}
		if err := write(v); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// jsonLines writes one JSON document per line.
func jsonLines[T any](w io.Writer) func(T) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return func(v T) error {
		return enc.Encode(v)
	}
}

func plainLines(w io.Writer) func(string) error {
	return func(s string) error {
		_, err := fmt.Fprintln(w, s)
		return err
	}
}
