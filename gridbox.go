package widgets

import "errors"

// Errors reported for grid calls that do not apply.
var (
	// ErrBadCell is returned for negative row or column indices.
	ErrBadCell = errors.New("gridbox: row and column must be non-negative")
	// ErrNoCell is returned when removing from a cell with no occupant.
	ErrNoCell = errors.New("gridbox: no child at cell")
)

// gridCell is one occupied slot of the grid.
type gridCell struct {
	child     Widget
	rowExpand int
	colExpand int

	rect    Rect // last allocated region, local to the grid surface
	visible bool
}

// CellOption configures a single grid cell at Add time.
type CellOption func(*gridCell)

// WithRowExpand sets the cell's row expand weight. The row's weight is the
// maximum over its cells.
func WithRowExpand(weight int) CellOption {
	return func(c *gridCell) {
		c.rowExpand = weight
	}
}

// WithColExpand sets the cell's column expand weight. The column's weight
// is the maximum over its cells.
func WithColExpand(weight int) CellOption {
	return func(c *gridCell) {
		c.colExpand = weight
	}
}

// GridBox arranges children in a sparse two-dimensional grid. Each row's
// height is the largest request among its children, each column's width the
// largest request among its children, and leftover space is distributed by
// per-row/per-column expand weights through the bucket distributor.
//
// The grid is recomputed from scratch on every reshape; there is no cached
// layout state beyond the child rects used for mouse routing.
type GridBox struct {
	BaseWidget

	rows   [][]*gridCell // ragged; nil entries are empty cells
	maxCol int           // highest occupied column index, -1 when empty

	rowSpacing int
	colSpacing int
}

var _ Widget = (*GridBox)(nil)

// GridBoxOption configures a GridBox.
type GridBoxOption func(*GridBox)

// WithRowSpacing sets the blank lines between rows.
func WithRowSpacing(n int) GridBoxOption {
	return func(g *GridBox) {
		g.rowSpacing = max(n, 0)
	}
}

// WithColSpacing sets the blank columns between columns.
func WithColSpacing(n int) GridBoxOption {
	return func(g *GridBox) {
		g.colSpacing = max(n, 0)
	}
}

// WithGridSpacing sets both row and column spacing.
func WithGridSpacing(n int) GridBoxOption {
	return func(g *GridBox) {
		g.rowSpacing = max(n, 0)
		g.colSpacing = max(n, 0)
	}
}

// NewGridBox creates an empty grid.
func NewGridBox(opts ...GridBoxOption) *GridBox {
	g := &GridBox{maxCol: -1}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RowCount returns the number of rows the grid currently spans.
func (g *GridBox) RowCount() int {
	return len(g.rows)
}

// ColCount returns the number of columns the grid currently spans.
func (g *GridBox) ColCount() int {
	return g.maxCol + 1
}

// ChildAt returns the occupant of (row, col), or nil.
func (g *GridBox) ChildAt(row, col int) Widget {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.rows[row]) {
		return nil
	}
	if cell := g.rows[row][col]; cell != nil {
		return cell.child
	}
	return nil
}

// Add places child at (row, col), replacing any existing occupant (the
// previous child is withdrawn; destroying it is the caller's business) and
// extending the grid bounds as needed. Negative indices are rejected.
func (g *GridBox) Add(row, col int, child Widget, opts ...CellOption) error {
	if row < 0 || col < 0 {
		return ErrBadCell
	}

	cell := &gridCell{child: child}
	for _, opt := range opts {
		opt(cell)
	}

	for len(g.rows) <= row {
		g.rows = append(g.rows, nil)
	}
	for len(g.rows[row]) <= col {
		g.rows[row] = append(g.rows[row], nil)
	}

	if old := g.rows[row][col]; old != nil {
		old.child.SetSurface(nil)
	}
	g.rows[row][col] = cell
	if col > g.maxCol {
		g.maxCol = col
	}

	g.reshape()
	return nil
}

// Remove detaches the occupant of (row, col) and trims trailing rows and
// columns that are now fully empty. Removing from an empty or out-of-bounds
// cell is rejected with ErrNoCell.
func (g *GridBox) Remove(row, col int) error {
	if row < 0 || col < 0 {
		return ErrBadCell
	}
	if row >= len(g.rows) || col >= len(g.rows[row]) || g.rows[row][col] == nil {
		return ErrNoCell
	}

	g.rows[row][col].child.SetSurface(nil)
	g.rows[row][col] = nil
	g.trim()
	g.reshape()
	return nil
}

// trim drops trailing empty rows and recomputes the highest occupied
// column. A row or column survives as long as any higher-indexed cell in it
// is occupied.
func (g *GridBox) trim() {
	for len(g.rows) > 0 {
		last := g.rows[len(g.rows)-1]
		empty := true
		for _, cell := range last {
			if cell != nil {
				empty = false
				break
			}
		}
		if !empty {
			break
		}
		g.rows = g.rows[:len(g.rows)-1]
	}

	g.maxCol = -1
	for _, row := range g.rows {
		for col, cell := range row {
			if cell != nil && col > g.maxCol {
				g.maxCol = col
			}
		}
	}
}

// rowMetrics returns each row's base height (the largest child request in
// the row) and expand weight (the largest weight in the row).
func (g *GridBox) rowMetrics() (bases, weights []int) {
	bases = make([]int, len(g.rows))
	weights = make([]int, len(g.rows))
	for r, row := range g.rows {
		for _, cell := range row {
			if cell == nil {
				continue
			}
			_, h := cell.child.SizeHint()
			bases[r] = max(bases[r], h)
			weights[r] = max(weights[r], cell.rowExpand)
		}
	}
	return bases, weights
}

// colMetrics returns each column's base width and expand weight.
func (g *GridBox) colMetrics() (bases, weights []int) {
	n := g.ColCount()
	bases = make([]int, n)
	weights = make([]int, n)
	for _, row := range g.rows {
		for c, cell := range row {
			if cell == nil {
				continue
			}
			w, _ := cell.child.SizeHint()
			bases[c] = max(bases[c], w)
			weights[c] = max(weights[c], cell.colExpand)
		}
	}
	return bases, weights
}

// SizeHint sums the row and column bases plus the spacing between them.
func (g *GridBox) SizeHint() (width, height int) {
	rowBases, _ := g.rowMetrics()
	colBases, _ := g.colMetrics()

	for _, b := range rowBases {
		height += b
	}
	if len(rowBases) > 1 {
		height += g.rowSpacing * (len(rowBases) - 1)
	}

	for _, b := range colBases {
		width += b
	}
	if len(colBases) > 1 {
		width += g.colSpacing * (len(colBases) - 1)
	}
	return width, height
}

// SetSurface assigns the grid's region and reshapes every child.
func (g *GridBox) SetSurface(s Surface) {
	g.surface = s
	g.reshape()
}

// buildBuckets interleaves flexible cell buckets with fixed spacing
// buckets. The bucket for cell index i lives at slice index 2*i.
func buildBuckets(bases, weights []int, spacing int) []Bucket {
	buckets := make([]Bucket, 0, 2*len(bases))
	for i := range bases {
		if i > 0 {
			buckets = append(buckets, FixedBucket(spacing))
		}
		buckets = append(buckets, FlexBucket(bases[i], weights[i]))
	}
	return buckets
}

// reshape rebuilds the row and column buckets, distributes the surface
// extent over them, and assigns every occupied cell its sub-surface. Cells
// whose row or column collapsed to zero are withdrawn rather than handed a
// degenerate surface.
func (g *GridBox) reshape() {
	if g.surface == nil {
		for _, row := range g.rows {
			for _, cell := range row {
				if cell != nil {
					cell.visible = false
					cell.child.SetSurface(nil)
				}
			}
		}
		return
	}

	w, h := g.surface.Size()
	rowBases, rowWeights := g.rowMetrics()
	colBases, colWeights := g.colMetrics()
	rowBuckets := buildBuckets(rowBases, rowWeights, g.rowSpacing)
	colBuckets := buildBuckets(colBases, colWeights, g.colSpacing)
	Distribute(h, rowBuckets)
	Distribute(w, colBuckets)

	for r, row := range g.rows {
		for c, cell := range row {
			if cell == nil {
				continue
			}
			rb := rowBuckets[2*r]
			cb := colBuckets[2*c]
			rect := NewRect(cb.Start, rb.Start, cb.Size, rb.Size)
			if rect.IsEmpty() || rect.Intersect(g.surface.Rect()).IsEmpty() {
				cell.visible = false
				cell.rect = Rect{}
				cell.child.SetSurface(nil)
				continue
			}
			cell.visible = true
			cell.rect = rect
			cell.child.SetSurface(NewSubSurface(g.surface, rect))
		}
	}
}

// Render clears the grid background; children paint their own cells.
func (g *GridBox) Render() {
	if g.surface == nil {
		return
	}
	g.surface.Clear()
	for _, row := range g.rows {
		for _, cell := range row {
			if cell != nil && cell.visible {
				cell.child.Render()
			}
		}
	}
}

// HandleKey offers the event to each child in row-major order.
func (g *GridBox) HandleKey(ev KeyEvent) bool {
	for _, row := range g.rows {
		for _, cell := range row {
			if cell != nil && cell.child.HandleKey(ev) {
				return true
			}
		}
	}
	return false
}

// HandleMouse routes the event to the visible child whose cell contains the
// pointer, translated into that child's coordinates.
func (g *GridBox) HandleMouse(ev MouseEvent) bool {
	for _, row := range g.rows {
		for _, cell := range row {
			if cell == nil || !cell.visible {
				continue
			}
			if cell.rect.Contains(ev.X, ev.Y) {
				return cell.child.HandleMouse(ev.Translate(-cell.rect.X, -cell.rect.Y))
			}
		}
	}
	return false
}
