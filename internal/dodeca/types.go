package dodeca

// placement is a compact record of one placed pentagon: which inventory
// pentagon, which of its five rotations, and which of the twelve
// structural slots it occupies. Slot always equals the stack depth at
// placement time — unlike the volumetric solver there is no choice of
// position, only of pentagon and rotation.
type placement struct {
	pentagonID int
	rotation   int
	slot       int
}

// StackEntry is the external-collaborator-facing snapshot of one placed
// pentagon.
type StackEntry struct {
	PentagonID int
	Rotation   int
	Slot       int
	Labels     [5]int
}
