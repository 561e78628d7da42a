// Package widgets is a terminal widget set built over an abstract drawing
// surface. It provides container widgets (GridBox, HSplit, VSplit, Frame)
// that partition a surface into child regions, a single-line text Entry with
// incremental damage repair, and a handful of leaf widgets (Button,
// CheckButton, RadioButton, Static, Fill, Placegrid).
//
// The package does not talk to a terminal. Widgets paint through the Surface
// interface and receive already-decoded KeyEvent and MouseEvent values from
// whatever event loop the host application runs. BufferSurface, an in-memory
// cell grid with damage diffing, is the reference implementation used by the
// examples and tests; a real renderer can implement Surface over any
// terminal backend.
package widgets
