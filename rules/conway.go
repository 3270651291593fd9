package rules

const (
	SurvivalMin    = 2
	SurvivalMax    = 3
	BirthNeighbors = 3
)

/*
ApplyConwayRules returns the next state of a cell from its current state and its
count of living Moore neighbors.

A living cell survives with SurvivalMin..SurvivalMax neighbors and dies otherwise;
a dead cell comes alive with exactly BirthNeighbors neighbors.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= SurvivalMin && neighbors <= SurvivalMax
	}
	return neighbors == BirthNeighbors
}
