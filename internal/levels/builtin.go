package levels

// Campaign is the built-in level sequence, played in order.
var Campaign = []Level{
	{
		ID:   "cellar",
		Name: "The Cellar",
		Layout: []string{
			"####################",
			"#@.....#...........#",
			"#......#....%%%....#",
			"#......+....%.%....#",
			"#......#....%%%....#",
			"####+###...........#",
			"#......#...&&&&....#",
			"#......#...&..&..>.#",
			"#..........&&&&....#",
			"####################",
		},
	},
	{
		ID:   "crypt",
		Name: "Crypt of Pillars",
		Layout: []string{
			"################################",
			"#@.....#..........#............#",
			"#......#..%....%..#..&&&...&&&.#",
			"#......+..........+..&.......&.#",
			"#......#..%....%..#..&..>....&.#",
			"####.###..........#..&.......&.#",
			"#......#######+####..&&&&.&&&&.#",
			"#..............................#",
			"#..%%%%%%%..........%%%%%%%....#",
			"#..%.....%..&&..&&..%.....%....#",
			"#..%.....+..........+.....%....#",
			"#..%%%%%%%..&&..&&..%%%%%%%....#",
			"#..............................#",
			"################################",
		},
	},
	{
		ID:   "warrens",
		Name: "The Warrens",
		Layout: []string{
			"########################################",
			"#@..#.......#..........#...............#",
			"#...#.###...#..%%%%....#..&&&&&&&&&&...#",
			"#...+.#.....+..%..%....+..&........&...#",
			"#...#.#.....#..%..%....#..&..####..&...#",
			"##.##.#######..%%.%....#..&..#>.#..&...#",
			"#.....#........%..%....#..&..#..#..&...#",
			"#.###.#..&&&...%%%%....#..&..##+#..&...#",
			"#.#...#..&.&...........#..&........&...#",
			"#.#.###..&.&...#########..&&&&.&&&&&...#",
			"#.#.#....&&&...#.......................#",
			"#.#.#..........#...%%%%%%%%%%%%%%%%....#",
			"#...#######+####...%..............%....#",
			"#..................%......%%......%....#",
			"#..................+......%%......+....#",
			"########################################",
		},
	},
}

// Builtin returns the campaign level with the given ID.
func Builtin(id string) (Level, bool) {
	for _, l := range Campaign {
		if l.ID == id {
			return l, true
		}
	}
	return Level{}, false
}

// Next returns the campaign level after id, or false at the end of the
// campaign or for levels outside it.
func Next(id string) (Level, bool) {
	for i, l := range Campaign {
		if l.ID == id && i+1 < len(Campaign) {
			return Campaign[i+1], true
		}
	}
	return Level{}, false
}
