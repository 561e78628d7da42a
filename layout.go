// layout.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package widgets

import "github.com/grindlemire/go-widgets/internal/layout"

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// Bucket is a layout unit consumed by Distribute: either a fixed size or a
// base size plus an expand weight.
type Bucket = layout.Bucket

// BucketKind distinguishes fixed buckets from flexible ones.
type BucketKind = layout.BucketKind

const (
	BucketFixed = layout.BucketFixed
	BucketFlex  = layout.BucketFlex
)

// FixedBucket returns a bucket that always occupies exactly n cells.
func FixedBucket(n int) Bucket {
	return layout.Fixed(n)
}

// FlexBucket returns a growable bucket with a base size and expand weight.
func FlexBucket(base, weight int) Bucket {
	return layout.Flex(base, weight)
}

// Distribute fills in bucket starts and sizes along an extent of total
// cells. See the internal/layout package for the distribution rules.
func Distribute(total int, buckets []Bucket) {
	layout.Distribute(total, buckets)
}
