package seqs

// Range yields start, start+step, ... up to but excluding end.
// A zero step yields nothing; a negative step counts down.
func Range(start, end, step int) Seq[int] {
	return func(yield func(int, error) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i, nil) {
				return
			}
		}
	}
}

// Naturals yields 0, 1, 2, ... without end.
func Naturals() Seq[int] {
	return func(yield func(int, error) bool) {
		for i := 0; ; i++ {
			if !yield(i, nil) {
				return
			}
		}
	}
}
