/*
Package seqs provides lazily evaluated operators over fallible Go iterators.

A sequence is an [iter.Seq2] whose second value is an error ([Seq]). Each step
yields either an element or the error that ended the sequence; nothing follows
an error. Ranging over the same Seq twice is two independent passes, and each
pass pulls the source again from its start.

The package includes:

  - **Windowing**: [Buffer] and [BufferStep] cut a sequence into tiling,
    overlapping or gapped windows.
  - **Grouping**: [CountBy], [CountByFunc], [CountByOptional] and
    [CountByOptionalFunc] count elements per key in first-seen order, with an
    out-of-band bucket for elements that have no key.
  - **Selection**: [MaxBy], [MinBy] and their Func variants return every
    element whose key ties for best.
  - **Combinators**: [Flatten], [WithIndex], [Zip], [Scan], [ScanFirst],
    [TryMap], [Partition], [IsEmpty].

# Construction and enumeration

Lazy operators return (Seq, error). The error covers the arguments only and is
decided before the source is touched:

	windows, err := seqs.BufferStep(src, 3, 2)
	if err != nil {
		// errors.Is(err, seqs.ErrOutOfRange) or seqs.ErrMissingArgument
	}
	for w, err := range windows {
		if err != nil {
			// the source failed while this window was being filled
			break
		}
		fmt.Println(w)
	}

Enumeration pulls the source only as far as the consumer asks. Breaking out
of the loop after K windows means the source is never asked for the element
after the last one those K windows needed, so a source that would fail later
is never seen to fail.

Source errors reach the consumer unchanged (same value, not wrapped) at the
position that needed the failing pull.

# Infallible sources

Plain iterators and slices are lifted with [FromSeq] and [FromSlice].
*/
package seqs
