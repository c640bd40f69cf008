package game

type Rules interface {
	// Inventory is the number of pieces of each kind a color starts with.
	Inventory() map[Kind]int
	// TODO add the optional mosquito, ladybug and pillbug expansions
}
