package gridindex

import "errors"

var (
	// ErrDimensionMismatch indicates x and y vectors of different lengths.
	ErrDimensionMismatch = errors.New("gridindex: coordinate vectors differ in length")
	// ErrInvalidCellSize indicates a cell side that is not a finite positive number.
	ErrInvalidCellSize = errors.New("gridindex: cell size must be finite and > 0")
	// ErrThresholdTooLarge indicates a query radius wider than one cell.
	ErrThresholdTooLarge = errors.New("gridindex: threshold exceeds cell size")
	// ErrCellOverflow indicates a coordinate whose cell index is not exactly representable.
	ErrCellOverflow = errors.New("gridindex: coordinate out of indexable range")
)
