package demand

import "errors"

var (
	// ErrDuplicateDemandColumn is returned when a column name is added
	// twice to the same typed pipeline.
	ErrDuplicateDemandColumn = errors.New("demand: column name already present")

	// ErrTypeMismatch is returned when a column name already exists in
	// the other typed pipeline (f32 vs f64) — a column has exactly one
	// precision for its lifetime.
	ErrTypeMismatch = errors.New("demand: column name already used with a different precision")

	// ErrFrameLengthMismatch is returned when a sparse frame's origins,
	// destinations, and values slices disagree in length.
	ErrFrameLengthMismatch = errors.New("demand: origins, destinations, and values must have equal length")

	// ErrTableFinalized is returned when AddFrame*/AddDenseMatrix* is
	// called after Finalize.
	ErrTableFinalized = errors.New("demand: table already finalized")

	// ErrDenseMatrixNotSquare is returned when a dense matrix's row
	// lengths are not all equal to the declared zone count.
	ErrDenseMatrixNotSquare = errors.New("demand: dense matrix must be square with nZones rows and columns")
)
