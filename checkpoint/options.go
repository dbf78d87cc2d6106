package checkpoint

// OverwriteMode controls how WriteBatch handles a partition that already
// contains a part file for the same content hash.
type OverwriteMode int

const (
	// OverwriteOrIgnore is the default: a part file already present under
	// its content-addressed name is left untouched (spec.md §4.7's
	// "idempotent under overwrite_or_ignore semantics for re-runs").
	OverwriteOrIgnore OverwriteMode = iota

	// OverwriteAlways always (re)writes the part file, even if a file of
	// the same content-addressed name already exists.
	OverwriteAlways
)

// Option configures a PartitionedWriter at construction time, mirroring
// netgraph.GraphOption's functional-options idiom.
type Option func(*PartitionedWriter)

// WithOverwriteMode sets the writer's OverwriteMode. Default is
// OverwriteOrIgnore.
func WithOverwriteMode(mode OverwriteMode) Option {
	return func(w *PartitionedWriter) { w.overwrite = mode }
}

// WithDirMode sets the permission bits used when creating partition
// directories. Default is 0o755.
func WithDirMode(mode uint32) Option {
	return func(w *PartitionedWriter) { w.dirMode = mode }
}
