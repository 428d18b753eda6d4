package seqs_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazyseq/seqs"
	"lazyseq/seqtest"
)

// collectWindows takes the result of Buffer or BufferStep directly:
// collectWindows(t)(seqs.Buffer(src, n)).
func collectWindows(t *testing.T) func(seqs.Seq[[]int], error) [][]int {
	t.Helper()
	return func(windows seqs.Seq[[]int], err error) [][]int {
		t.Helper()
		require.NoError(t, err)
		got, err := seqs.Collect(windows)
		require.NoError(t, err)
		return got
	}
}

func TestBuffer_Arguments(t *testing.T) {
	values := seqs.FromSlice([]int{3, 1, 4, 1, 5, 9, 2})

	tests := []struct {
		name    string
		build   func() (seqs.Seq[[]int], error)
		wantErr error
		param   string
	}{
		{"nil source", func() (seqs.Seq[[]int], error) { return seqs.Buffer[int](nil, 5) }, seqs.ErrMissingArgument, "source"},
		{"nil source tiling", func() (seqs.Seq[[]int], error) { return seqs.BufferStep[int](nil, 5, 5) }, seqs.ErrMissingArgument, "source"},
		{"nil source overlap", func() (seqs.Seq[[]int], error) { return seqs.BufferStep[int](nil, 5, 4) }, seqs.ErrMissingArgument, "source"},
		{"nil source skip", func() (seqs.Seq[[]int], error) { return seqs.BufferStep[int](nil, 5, 6) }, seqs.ErrMissingArgument, "source"},
		{"zero count", func() (seqs.Seq[[]int], error) { return seqs.Buffer(values, 0) }, seqs.ErrOutOfRange, "count"},
		{"negative count", func() (seqs.Seq[[]int], error) { return seqs.Buffer(values, -1) }, seqs.ErrOutOfRange, "count"},
		{"zero count with step", func() (seqs.Seq[[]int], error) { return seqs.BufferStep(values, 0, 4) }, seqs.ErrOutOfRange, "count"},
		{"negative count with step", func() (seqs.Seq[[]int], error) { return seqs.BufferStep(values, -1, 4) }, seqs.ErrOutOfRange, "count"},
		{"zero step", func() (seqs.Seq[[]int], error) { return seqs.BufferStep(values, 4, 0) }, seqs.ErrOutOfRange, "step"},
		{"negative step", func() (seqs.Seq[[]int], error) { return seqs.BufferStep(values, 4, -1) }, seqs.ErrOutOfRange, "step"},
		{"both zero", func() (seqs.Seq[[]int], error) { return seqs.BufferStep(values, 0, 0) }, seqs.ErrOutOfRange, "count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows, err := tt.build()
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, windows)

			var argErr *seqs.ArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, tt.param, argErr.Param)
		})
	}
}

func TestBuffer_ConstructionDoesNotEnumerate(t *testing.T) {
	for _, step := range []int{1, 3, 5} {
		_, err := seqs.BufferStep(seqtest.Untouched[int](t), 3, step)
		require.NoError(t, err)
	}
	_, err := seqs.Buffer(seqtest.Untouched[int](t), 3)
	require.NoError(t, err)
}

func TestBuffer_Regimes(t *testing.T) {
	tests := []struct {
		name  string
		src   seqs.Seq[int]
		count int
		step  int // 0 means Buffer without step
		want  [][]int
	}{
		{"tiling with remainder", seqs.Range(0, 10, 1), 3, 0, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9}}},
		{"tiling exact", seqs.Range(0, 9, 1), 3, 0, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}},
		{"tiling step form with remainder", seqs.Range(0, 10, 1), 3, 3, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9}}},
		{"tiling step form exact", seqs.Range(0, 9, 1), 3, 3, [][]int{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}}},
		{"overlap", seqs.Range(0, 9, 1), 3, 2, [][]int{{0, 1, 2}, {2, 3, 4}, {4, 5, 6}, {6, 7, 8}, {8}}},
		{"overlap step one", seqs.Range(0, 4, 1), 3, 1, [][]int{{0, 1, 2}, {1, 2, 3}, {2, 3}, {3}}},
		{"skip", seqs.Range(0, 9, 1), 3, 4, [][]int{{0, 1, 2}, {4, 5, 6}, {8}}},
		{"skip ends inside gap", seqs.Range(0, 8, 1), 3, 5, [][]int{{0, 1, 2}, {5, 6, 7}}},
		{"skip ends right after window", seqs.Range(0, 4, 1), 2, 3, [][]int{{0, 1}, {3}}},
		{"empty tiling", seqs.Range(0, 0, 1), 3, 0, nil},
		{"empty overlap", seqs.Range(0, 0, 1), 3, 1, nil},
		{"empty skip", seqs.Range(0, 0, 1), 1, 3, nil},
		{"source shorter than count", seqs.Range(0, 2, 1), 5, 0, [][]int{{0, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [][]int
			if tt.step == 0 {
				got = collectWindows(t)(seqs.Buffer(tt.src, tt.count))
			} else {
				got = collectWindows(t)(seqs.BufferStep(tt.src, tt.count, tt.step))
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("windows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuffer_TilingProperties(t *testing.T) {
	for length := 0; length <= 20; length++ {
		for count := 1; count <= 6; count++ {
			got := collectWindows(t)(seqs.Buffer(seqs.Range(0, length, 1), count))

			assert.Len(t, got, (length+count-1)/count, "L=%d c=%d", length, count)
			for i, w := range got {
				if i < len(got)-1 {
					assert.Len(t, w, count, "L=%d c=%d window %d", length, count, i)
				}
			}
			flat := slices.Concat(got...)
			if length == 0 {
				assert.Empty(t, flat)
			} else {
				assert.Equal(t, slices.Collect(seqs.Values(seqs.Range(0, length, 1))), flat)
			}
		}
	}
}

func TestBuffer_OverlapProperties(t *testing.T) {
	for count := 2; count <= 6; count++ {
		for step := 1; step < count; step++ {
			got := collectWindows(t)(seqs.BufferStep(seqs.Range(0, 30, 1), count, step))

			for i, w := range got {
				require.NotEmpty(t, w)
				assert.Equal(t, i*step, w[0], "c=%d s=%d window %d start", count, step, i)
				assert.LessOrEqual(t, len(w), count)
				if i+1 < len(got) && len(got[i+1]) == count && len(w) == count {
					assert.Equal(t, w[step:], got[i+1][:count-step], "c=%d s=%d shared tail", count, step)
				}
			}
		}
	}
}

func TestBuffer_SkipProperties(t *testing.T) {
	for count := 1; count <= 4; count++ {
		for step := count + 1; step <= 7; step++ {
			got := collectWindows(t)(seqs.BufferStep(seqs.Range(0, 30, 1), count, step))

			for i, w := range got {
				assert.Equal(t, i*step, w[0], "c=%d s=%d window %d start", count, step, i)
				for j := 1; j < len(w); j++ {
					assert.Equal(t, w[j-1]+1, w[j])
				}
			}
		}
	}
}

func TestBuffer_StopsPullingWhenConsumerStops(t *testing.T) {
	tests := []struct {
		name        string
		count, step int
	}{
		{"tiling", 3, 3},
		{"overlap", 3, 2},
		{"overlap step one", 4, 1},
		{"skip", 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k := 1; k <= 5; k++ {
				counter := seqtest.Counting(seqs.Naturals())
				windows, err := seqs.BufferStep(counter.Seq(), tt.count, tt.step)
				require.NoError(t, err)
				assert.Zero(t, counter.Passes())

				got, err := seqs.Collect(seqs.Take(windows, k))
				require.NoError(t, err)
				require.Len(t, got, k)

				// the k-th window ends at (k-1)*step + count - 1
				assert.Equal(t, (k-1)*tt.step+tt.count, counter.Pulls(), "k=%d", k)
			}
		})
	}
}

func TestBuffer_FailingSourceNotObservedEarly(t *testing.T) {
	tests := []struct {
		name        string
		count, step int
		take        int
	}{
		{"tiling", 2, 2, 2},
		{"overlap", 2, 1, 4},
		{"skip", 2, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows, err := seqs.BufferStep(seqtest.Failing(0, 1, 2, 3, 4), tt.count, tt.step)
			require.NoError(t, err)

			got, err := seqs.Collect(seqs.Take(windows, tt.take))
			require.NoError(t, err)
			assert.Len(t, got, tt.take)

			_, err = seqs.Collect(windows)
			assert.Same(t, seqtest.ErrSource, err)
		})
	}
}

func TestBuffer_FailingSourceAnyCountAndStep(t *testing.T) {
	values := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	for count := 1; count <= 5; count++ {
		for step := 1; step <= 5; step++ {
			reference := collectWindows(t)(seqs.BufferStep(seqs.FromSlice(values), count, step))
			full := 0
			for _, w := range reference {
				if len(w) == count {
					full++
				}
			}

			windows, err := seqs.BufferStep(seqtest.Failing(values...), count, step)
			require.NoError(t, err)

			got, err := seqs.Collect(seqs.Take(windows, full))
			require.NoError(t, err, "c=%d s=%d", count, step)
			assert.Equal(t, reference[:full], got, "c=%d s=%d", count, step)

			got, err = seqs.Collect(windows)
			require.ErrorIs(t, err, seqtest.ErrSource, "c=%d s=%d", count, step)
			assert.Len(t, got, full, "partial windows are not yielded before the failure")
		}
	}
}

func TestBuffer_WindowsAreNotShared(t *testing.T) {
	windows, err := seqs.BufferStep(seqs.Range(0, 6, 1), 4, 1)
	require.NoError(t, err)

	var got [][]int
	for w, err := range windows {
		require.NoError(t, err)
		got = append(got, w)
		w[0] = -1
		_ = append(w, 100)
	}

	want := [][]int{{-1, 1, 2, 3}, {-1, 2, 3, 4}, {-1, 3, 4, 5}, {-1, 4, 5}, {-1, 5}, {-1}}
	assert.Equal(t, want, got)
}

func TestBuffer_ReEnumeration(t *testing.T) {
	counter := seqtest.Counting(seqs.Range(0, 7, 1))
	windows, err := seqs.BufferStep(counter.Seq(), 3, 2)
	require.NoError(t, err)

	first, err := seqs.Collect(windows)
	require.NoError(t, err)
	second, err := seqs.Collect(windows)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, counter.Passes())
	assert.Equal(t, 14, counter.Pulls())
}

func TestBuffer_LargeCountOnShortSource(t *testing.T) {
	got := collectWindows(t)(seqs.BufferStep(seqs.Range(0, 3, 1), 1<<40, 1<<39))
	assert.Equal(t, [][]int{{0, 1, 2}}, got)
}

func TestBuffer_StopWhileDrainingTail(t *testing.T) {
	tests := []struct {
		name        string
		count, step int
		take        int
		want        [][]int
	}{
		{"overlap stops inside tail", 3, 1, 3, [][]int{{0, 1, 2}, {1, 2, 3}, {2, 3}}},
		{"overlap takes whole tail", 3, 1, 9, [][]int{{0, 1, 2}, {1, 2, 3}, {2, 3}, {3}}},
		{"tile stops before tail", 3, 3, 1, [][]int{{0, 1, 2}}},
		{"skip stops before tail", 1, 3, 1, [][]int{{0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows, err := seqs.BufferStep(seqs.Range(0, 4, 1), tt.count, tt.step)
			require.NoError(t, err)

			got, err := seqs.Collect(seqs.Take(windows, tt.take))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("windows mismatch (-want +got):\n%s", diff)
			}

			// a pass cut short inside the tail leaves the next pass intact
			again, err := seqs.Collect(seqs.Take(windows, tt.take))
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}
