package checkpoint

import "errors"

// ErrEmptyRoot is returned when NewPartitionedWriter is given an empty
// root path.
var ErrEmptyRoot = errors.New("checkpoint: root path must not be empty")
