package layout

import (
	"testing"
)

func sizes(buckets []Bucket) []int {
	out := make([]int, len(buckets))
	for i, b := range buckets {
		out[i] = b.Size
	}
	return out
}

func starts(buckets []Bucket) []int {
	out := make([]int, len(buckets))
	for i, b := range buckets {
		out[i] = b.Start
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDistribute(t *testing.T) {
	type tc struct {
		total      int
		buckets    []Bucket
		wantSizes  []int
		wantStarts []int
	}

	snapped := func(base, weight, snap int) Bucket {
		b := Flex(base, weight)
		b.Snap = snap
		return b
	}

	tests := map[string]tc{
		"exact fit, no leftover": {
			total:      8,
			buckets:    []Bucket{Fixed(3), Flex(5, 1)},
			wantSizes:  []int{3, 5},
			wantStarts: []int{0, 3},
		},
		"grow proportionally with remainder carried": {
			total:      10,
			buckets:    []Bucket{Fixed(3), Flex(2, 1), Flex(1, 2)},
			wantSizes:  []int{3, 3, 4},
			wantStarts: []int{0, 3, 6},
		},
		"zero weight never grows": {
			total:      10,
			buckets:    []Bucket{Flex(2, 0), Flex(2, 1)},
			wantSizes:  []int{2, 8},
			wantStarts: []int{0, 2},
		},
		"no weighted buckets leaves extent unused": {
			total:      10,
			buckets:    []Bucket{Fixed(2), Flex(3, 0)},
			wantSizes:  []int{2, 3},
			wantStarts: []int{0, 2},
		},
		"shrink proportionally to base": {
			total:      6,
			buckets:    []Bucket{Flex(4, 0), Flex(8, 0)},
			wantSizes:  []int{2, 4},
			wantStarts: []int{0, 2},
		},
		"shrink floors at zero, sweeps from the end": {
			total:      1,
			buckets:    []Bucket{Flex(1, 0), Flex(1, 0), Flex(1, 0)},
			wantSizes:  []int{1, 0, 0},
			wantStarts: []int{0, 1, 1},
		},
		"fixed buckets never shrink": {
			total:      3,
			buckets:    []Bucket{Fixed(2), Flex(4, 1), Fixed(2)},
			wantSizes:  []int{2, 0, 2},
			wantStarts: []int{0, 2, 2},
		},
		"snap rounds down, residue to unsnapped bucket": {
			total:      10,
			buckets:    []Bucket{snapped(0, 1, 4), Flex(0, 1)},
			wantSizes:  []int{4, 6},
			wantStarts: []int{0, 4},
		},
		"all snapped, residue to last weighted": {
			total:      10,
			buckets:    []Bucket{snapped(0, 1, 3), snapped(0, 1, 3)},
			wantSizes:  []int{3, 7},
			wantStarts: []int{0, 3},
		},
		"negative total treated as zero": {
			total:      -5,
			buckets:    []Bucket{Flex(3, 1)},
			wantSizes:  []int{0},
			wantStarts: []int{0},
		},
		"empty bucket list": {
			total:      10,
			buckets:    []Bucket{},
			wantSizes:  []int{},
			wantStarts: []int{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			Distribute(tt.total, tt.buckets)

			if got := sizes(tt.buckets); !equalInts(got, tt.wantSizes) {
				t.Errorf("sizes = %v, want %v", got, tt.wantSizes)
			}
			if got := starts(tt.buckets); !equalInts(got, tt.wantStarts) {
				t.Errorf("starts = %v, want %v", got, tt.wantStarts)
			}
		})
	}
}

// Sizes must sum to the total whenever the total covers the fixed buckets
// and at least one bucket can grow.
func TestDistribute_ExactSum(t *testing.T) {
	type tc struct {
		buckets []Bucket
	}

	tests := map[string]tc{
		"weighted pair": {
			buckets: []Bucket{Flex(0, 1), Flex(0, 1)},
		},
		"uneven weights": {
			buckets: []Bucket{Flex(2, 3), Fixed(1), Flex(5, 2), Flex(0, 7)},
		},
		"snapped and unsnapped": {
			buckets: []Bucket{
				{Kind: BucketFlex, Base: 1, Weight: 2, Snap: 3},
				Flex(0, 1),
				Fixed(2),
			},
		},
		"zero bases": {
			buckets: []Bucket{Flex(0, 1), Flex(0, 2), Flex(0, 4)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for total := 0; total <= 100; total++ {
				buckets := make([]Bucket, len(tt.buckets))
				copy(buckets, tt.buckets)

				fixedSum := 0
				for _, b := range buckets {
					if b.Kind == BucketFixed {
						fixedSum += b.Base
					}
				}

				Distribute(total, buckets)

				sum := 0
				for _, b := range buckets {
					if b.Size < 0 {
						t.Fatalf("total %d: negative size %d", total, b.Size)
					}
					sum += b.Size
				}
				if total >= fixedSum && sum != total {
					t.Fatalf("total %d: sizes sum to %d", total, sum)
				}
			}
		})
	}
}

func TestDistribute_SnapMultiple(t *testing.T) {
	b := Flex(0, 1)
	b.Snap = 4
	buckets := []Bucket{b, Flex(0, 1)}

	for total := 0; total <= 40; total++ {
		bs := make([]Bucket, len(buckets))
		copy(bs, buckets)
		Distribute(total, bs)

		if bs[0].Size%4 != 0 {
			t.Errorf("total %d: snapped bucket size %d not a multiple of 4", total, bs[0].Size)
		}
		if bs[0].Size+bs[1].Size != total {
			t.Errorf("total %d: sizes sum to %d", total, bs[0].Size+bs[1].Size)
		}
	}
}

func TestDistribute_StartsTile(t *testing.T) {
	buckets := []Bucket{Flex(3, 1), Fixed(1), Flex(2, 0), Fixed(2), Flex(0, 2)}
	Distribute(25, buckets)

	pos := 0
	for i, b := range buckets {
		if b.Start != pos {
			t.Errorf("bucket %d: start = %d, want %d", i, b.Start, pos)
		}
		pos += b.Size
	}
	if pos != 25 {
		t.Errorf("buckets tile %d cells, want 25", pos)
	}
}
