package layout

// BucketKind distinguishes fixed buckets from flexible ones.
type BucketKind uint8

const (
	// BucketFixed buckets are always honored exactly. Containers use them
	// for inter-cell spacing and divider bars.
	BucketFixed BucketKind = iota
	// BucketFlex buckets start at their base size, grow by expand weight,
	// and shrink (floored at zero) when the extent is too small.
	BucketFlex
)

// Bucket is a single unit of distributable extent along one axis.
// Start and Size are filled in by Distribute.
type Bucket struct {
	Kind   BucketKind
	Base   int // fixed size, or flex base size
	Weight int // expand weight; zero-weight flex buckets never grow
	Snap   int // grow granularity for flex buckets; <=1 means none

	Start int // computed offset from the start of the extent
	Size  int // computed size
}

// Fixed returns a bucket that always occupies exactly n cells.
func Fixed(n int) Bucket {
	return Bucket{Kind: BucketFixed, Base: n}
}

// Flex returns a growable bucket with the given base size and expand weight.
func Flex(base, weight int) Bucket {
	return Bucket{Kind: BucketFlex, Base: base, Weight: weight}
}

// Distribute assigns Start and Size to every bucket so they tile the extent
// [0, total). Fixed buckets keep their size exactly. Leftover space goes to
// weighted flex buckets proportionally to weight, with the integer-division
// remainder carried to the last eligible bucket so the sizes sum to total
// exactly whenever total covers the fixed sizes. A negative leftover shrinks
// flex buckets proportionally to base size, floored at zero; fixed buckets
// never shrink, so an extent smaller than their sum simply overflows and the
// caller sees degenerate trailing geometry.
//
// Distribute is a pure function of its inputs and mutates only the Start and
// Size fields of the given slice.
func Distribute(total int, buckets []Bucket) {
	if total < 0 {
		total = 0
	}

	fixedSum, baseSum, weightSum := 0, 0, 0
	for i := range buckets {
		b := &buckets[i]
		b.Size = b.Base
		if b.Kind == BucketFixed {
			fixedSum += b.Base
		} else {
			baseSum += b.Base
			weightSum += b.Weight
		}
	}

	remaining := total - fixedSum - baseSum
	switch {
	case remaining > 0 && weightSum > 0:
		grow(buckets, remaining, weightSum)
	case remaining < 0:
		shrink(buckets, -remaining, baseSum)
	}

	start := 0
	for i := range buckets {
		if buckets[i].Size < 0 {
			buckets[i].Size = 0
		}
		buckets[i].Start = start
		start += buckets[i].Size
	}
}

// grow hands out extra cells to weighted flex buckets. Snapped buckets only
// accept whole multiples of their granularity; their residue joins the
// rounding remainder, which is carried to the last un-snapped weighted
// bucket (or the last weighted bucket when every one snaps) so the total
// never drifts.
func grow(buckets []Bucket, extra, weightSum int) {
	carry, lastWeighted := -1, -1
	for i := range buckets {
		b := &buckets[i]
		if b.Kind != BucketFlex || b.Weight == 0 {
			continue
		}
		lastWeighted = i
		if b.Snap <= 1 {
			carry = i
		}
	}
	if carry == -1 {
		carry = lastWeighted
	}
	if carry == -1 {
		return
	}

	granted := 0
	for i := range buckets {
		b := &buckets[i]
		if b.Kind != BucketFlex || b.Weight == 0 {
			continue
		}
		share := extra * b.Weight / weightSum
		if b.Snap > 1 {
			share -= share % b.Snap
		}
		b.Size += share
		granted += share
	}
	buckets[carry].Size += extra - granted
}

// shrink removes deficit cells from flex buckets proportionally to their
// base sizes, never below zero. Any deficit that a bucket cannot absorb is
// taken from the remaining flex buckets, scanning from the end.
func shrink(buckets []Bucket, deficit, baseSum int) {
	if baseSum <= 0 {
		return
	}

	remaining := deficit
	for i := range buckets {
		b := &buckets[i]
		if b.Kind != BucketFlex {
			continue
		}
		cut := min(deficit*b.Base/baseSum, b.Size)
		b.Size -= cut
		remaining -= cut
	}

	// Sweep up the rounding shortfall from whatever still has size.
	for i := len(buckets) - 1; i >= 0 && remaining > 0; i-- {
		b := &buckets[i]
		if b.Kind != BucketFlex || b.Size == 0 {
			continue
		}
		cut := min(remaining, b.Size)
		b.Size -= cut
		remaining -= cut
	}
}
