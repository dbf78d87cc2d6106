// Package checkpoint implements the Checkpoint Writer of spec.md §4.7: a
// partitioned columnar dataset writer keyed by origin_id, so a batch's
// route-set rows can be durably persisted and reloaded instead of held
// entirely in memory.
//
// Grounded on matrix/builder.go's builder-pattern construction style and
// the "AI-HINT file role" header convention of core/api.go. No Parquet or
// Arrow library ships as real, importable source anywhere in the
// retrieval pack (see DESIGN.md), so this package defines the Writer
// contract a durable columnar sink must satisfy and ships one concrete
// implementation: a Hive-style origin_id=<id>/part-*.jsonl partitioned
// writer over a plain directory tree, using encoding/json. "Columnar" here
// means partitioned-by-key with one file per content-addressed batch, not
// a binary columnar file format — there is no domain library being
// bypassed by that choice.
package checkpoint
