// Package dodeca implements the stepwise facet-labeling solver over a
// dodecahedron: twelve pentagons, each placeable in five rotations, written
// onto sixty facets such that every one of the twenty icosahedral triangles
// formed by those facets sums to a fixed target.
//
// There is no standalone solver of this shape in the original Rust tree —
// only the fixed combinatorics tables below and a one-shot triplet
// generator. The search itself is this package's own generalization of the
// volumetric solver (internal/volume) onto the dodecahedral tables.
package dodeca

// PentagonCount is the number of dodecahedron faces.
const PentagonCount = 12

// TriangleCount is the number of icosahedral faces formed across the
// dodecahedron's facets.
const TriangleCount = 20

// FacetCount is the total number of label slots: one per (pentagon, corner)
// pair.
const FacetCount = 60

// TargetTriangleSum is the required sum of the three facets making up any
// completed icosahedral triangle.
const TargetTriangleSum = 96

// pentas lists, for each of the twelve pentagons, the five icosahedral
// triangle indices (in graph.svg's adjacency order) its facets belong to.
var pentas = [PentagonCount][5]int{
	{0, 2, 5, 4, 1},
	{0, 3, 7, 6, 2},
	{0, 1, 9, 8, 3},
	{4, 5, 11, 16, 10},
	{6, 7, 13, 17, 12},
	{8, 9, 15, 18, 14},
	{1, 4, 10, 15, 9},
	{2, 6, 12, 11, 5},
	{3, 8, 14, 13, 7},
	{11, 12, 17, 19, 16},
	{13, 14, 18, 19, 17},
	{10, 16, 19, 18, 15},
}

// triToFacets lists, for each of the twenty icosahedral triangles, the
// three facet indices whose labels must sum to TargetTriangleSum once all
// three are written.
var triToFacets = [TriangleCount][3]int{
	{0, 5, 10},
	{4, 11, 30},
	{1, 9, 35},
	{6, 14, 40},
	{3, 15, 31},
	{2, 16, 39},
	{8, 20, 36},
	{7, 21, 44},
	{13, 25, 41},
	{12, 26, 34},
	{19, 32, 55},
	{17, 38, 45},
	{24, 37, 46},
	{22, 43, 50},
	{29, 42, 51},
	{27, 33, 59},
	{18, 49, 56},
	{23, 47, 54},
	{28, 52, 58},
	{48, 53, 57},
}

// facet records, for facet index f, the pentagon and triangle it belongs
// to: equivalent information to pentas, indexed the other way round.
type facet struct {
	pentagon int
	triangle int
}

var facets = [FacetCount]facet{
	{0, 0}, {0, 2}, {0, 5}, {0, 4}, {0, 1},
	{1, 0}, {1, 3}, {1, 7}, {1, 6}, {1, 2},
	{2, 0}, {2, 1}, {2, 9}, {2, 8}, {2, 3},
	{3, 4}, {3, 5}, {3, 11}, {3, 16}, {3, 10},
	{4, 6}, {4, 7}, {4, 13}, {4, 17}, {4, 12},
	{5, 8}, {5, 9}, {5, 15}, {5, 18}, {5, 14},
	{6, 1}, {6, 4}, {6, 10}, {6, 15}, {6, 9},
	{7, 2}, {7, 6}, {7, 12}, {7, 11}, {7, 5},
	{8, 3}, {8, 8}, {8, 14}, {8, 13}, {8, 7},
	{9, 11}, {9, 12}, {9, 17}, {9, 19}, {9, 16},
	{10, 13}, {10, 14}, {10, 18}, {10, 19}, {10, 17},
	{11, 10}, {11, 16}, {11, 19}, {11, 18}, {11, 15},
}
