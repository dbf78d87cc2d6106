package choice

// Config bounds one Compute call. CutoffProb is the already-scaled
// binary-logit cutoff probability in [0.5, 1.0] (spec.md §4.5 item 2's
// scaled_cutoff_prob; see DESIGN.md Open Question (c) — the caller-facing
// [0,1] "fraction of demand to drop below" knob lives on
// routechoice.Config and is scaled into this range before Compute sees
// it, so this package never re-derives the linear 0.5+(1-p)*0.5 mapping).
type Config struct {
	// CutoffProb is the scaled binary-logit cutoff probability, [0.5, 1.0].
	// 0.5 keeps only the cheapest route (cutoff == cMin); 1.0 produces a
	// +Inf cutoff delta, keeping every reached route (routechoice's own
	// [0,1] cutoff_prob == 0 default maps to exactly this value).
	CutoffProb float64

	// Beta is the path-size logit dispersion parameter (θ in spec.md §4.5
	// is fixed at 1; Beta is the "β" exponent on the overlap ratio). Must
	// be >= 0.
	Beta float64
}
