package game

type StandardRules struct {
	Queens       int
	Ants         int
	Beetles      int
	Grasshoppers int
	Spiders      int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Queens:       1,
		Ants:         3,
		Beetles:      2,
		Grasshoppers: 3,
		Spiders:      2,
	}
}

func (sr *StandardRules) Inventory() map[Kind]int {
	return map[Kind]int{
		Queen:       sr.Queens,
		Ant:         sr.Ants,
		Beetle:      sr.Beetles,
		Grasshopper: sr.Grasshoppers,
		Spider:      sr.Spiders,
	}
}

// Total is the number of pieces each color starts with.
func (sr *StandardRules) Total() int {
	return sr.Queens + sr.Ants + sr.Beetles + sr.Grasshoppers + sr.Spiders
}
