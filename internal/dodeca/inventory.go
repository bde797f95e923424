package dodeca

// triangleTriplets holds twenty integer triples summing to 96, one per
// icosahedral triangle, used to build the compiled-in demonstration
// inventory below. Lifted directly from the triplet search the original
// Rust tree ran once offline (native/src/main.rs) rather than recomputed,
// since finding them is a one-off combinatorial search, not part of this
// solver's job.
var triangleTriplets = [TriangleCount][3]int{
	{13, 28, 55},
	{1, 31, 64},
	{2, 29, 65},
	{3, 30, 63},
	{4, 32, 60},
	{5, 33, 58},
	{6, 34, 56},
	{7, 27, 62},
	{8, 37, 51},
	{9, 26, 61},
	{10, 40, 46},
	{11, 41, 44},
	{12, 35, 49},
	{14, 39, 43},
	{15, 36, 45},
	{16, 38, 42},
	{17, 20, 59},
	{18, 25, 53},
	{21, 23, 52},
	{22, 24, 50},
}

// DefaultPentagons builds a compiled-in, twelve-pentagon inventory known to
// admit at least one solution: it writes each of the twenty summing-to-96
// triplets onto its triangle's three facets in table order, then slices the
// resulting sixty facets into the twelve five-label pentagons. Unlike the
// original tool this is built deterministically — no shuffle, no seed — so
// the same inventory is reproduced on every call.
func DefaultPentagons() [PentagonCount][5]int {
	var facetValues [FacetCount]int
	for t, triplet := range triangleTriplets {
		for i, f := range triToFacets[t] {
			facetValues[f] = triplet[i]
		}
	}

	var pentagons [PentagonCount][5]int
	for k := 0; k < PentagonCount; k++ {
		for c := 0; c < 5; c++ {
			pentagons[k][c] = facetValues[5*k+c]
		}
	}
	return pentagons
}
