// Package layout provides the pure geometry core shared by container
// widgets: integer rectangles and the fixed/flex bucket distributor.
// It has no knowledge of surfaces, widgets, or styling.
package layout
