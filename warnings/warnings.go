// Package warnings defines the shared Warning value every component
// returns instead of logging. spec.md §1 places logging out of scope as
// an external collaborator, and the teacher itself never imports a
// logging library internally (warnings and errors are always returned
// values, e.g. matrix's validation results) — so non-fatal, caller-
// actionable conditions here are likewise returned data, not log lines.
package warnings

// Warning is a non-fatal, caller-actionable condition surfaced by a
// component that otherwise completed successfully (e.g. a zero-cost
// route set, a duplicate OD pair in a batch). Code is a short, stable
// machine-matchable identifier; Message is human-readable detail.
type Warning struct {
	Code    string
	Message string
}

func (w Warning) String() string { return w.Code + ": " + w.Message }

// Collector accumulates Warnings during one call, the same "append as
// you go, return the slice" shape used throughout this module instead of
// a channel or callback.
type Collector []Warning

// Add appends a Warning built from code and message.
func (c *Collector) Add(code, message string) {
	*c = append(*c, Warning{Code: code, Message: message})
}
