package levels

// Classic returns the built-in 12x12 level, available without any level
// directory. One source starts on, one off, with two staggered block rows
// and a crystal between them.
func Classic() Level {
	return Level{
		ID:     "classic",
		Name:   "Classic",
		Width:  12,
		Height: 12,
		Rows: []string{
			"............",
			"....S.......",
			"............",
			"..b.b.b.....",
			"............",
			"......C.....",
			"............",
			".....b.b.b..",
			"............",
			"............",
			".......s....",
			"............",
		},
	}
}
