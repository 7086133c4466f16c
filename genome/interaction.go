package genome

// Interaction is a pairwise contact between two loci, e.g. one record of a
// chromatin interaction track.  The two loci may lie on different
// chromosomes.
type Interaction struct {
	Locus1, Locus2 Interval
	// Score is the interaction strength reported by the source data.  Zero
	// when the source carries no score.
	Score float64
}
