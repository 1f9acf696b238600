package strategy

// Charts are transcribed cell for cell from the Wizard of Odds 4-8 deck
// basic strategy charts (https://wizardofodds.com/games/blackjack/strategy/4-decks/).
// Columns are dealer 2 3 4 5 6 7 8 9 10 A.

var charts = map[string]*Table{
	"h17-das": mustTable("h17-das",
		"4-8 decks, dealer hits soft 17, double after split, late surrender",
		h17Hard, h17Soft, h17DASPairs),
	"s17-das": mustTable("s17-das",
		"4-8 decks, dealer stands on soft 17, double after split, late surrender",
		s17Hard, s17Soft, s17DASPairs),
	"h17": mustTable("h17",
		"4-8 decks, dealer hits soft 17, late surrender",
		h17Hard, h17Soft, h17Pairs),
}

var h17Hard = chartRows{
	5:  "H  H  H  H  H  H  H  H  H  H",
	6:  "H  H  H  H  H  H  H  H  H  H",
	7:  "H  H  H  H  H  H  H  H  H  H",
	8:  "H  H  H  H  H  H  H  H  H  H",
	9:  "H  Dh Dh Dh Dh H  H  H  H  H",
	10: "Dh Dh Dh Dh Dh Dh Dh Dh H  H",
	11: "Dh Dh Dh Dh Dh Dh Dh Dh Dh Dh",
	12: "H  H  S  S  S  H  H  H  H  H",
	13: "S  S  S  S  S  H  H  H  H  H",
	14: "S  S  S  S  S  H  H  H  H  H",
	15: "S  S  S  S  S  H  H  H  Rh Rh",
	16: "S  S  S  S  S  H  H  Rh Rh Rh",
	17: "S  S  S  S  S  S  S  S  S  Rs",
	18: "S  S  S  S  S  S  S  S  S  S",
	19: "S  S  S  S  S  S  S  S  S  S",
	20: "S  S  S  S  S  S  S  S  S  S",
	21: "S  S  S  S  S  S  S  S  S  S",
}

var h17Soft = chartRows{
	13: "H  H  H  Dh Dh H  H  H  H  H",
	14: "H  H  H  Dh Dh H  H  H  H  H",
	15: "H  H  Dh Dh Dh H  H  H  H  H",
	16: "H  H  Dh Dh Dh H  H  H  H  H",
	17: "H  Dh Dh Dh Dh H  H  H  H  H",
	18: "Ds Ds Ds Ds Ds S  S  H  H  H",
	19: "S  S  S  S  Ds S  S  S  S  S",
	20: "S  S  S  S  S  S  S  S  S  S",
	21: "S  S  S  S  S  S  S  S  S  S",
}

var h17DASPairs = chartRows{
	2:  "P  P  P  P  P  P  H  H  H  H",
	3:  "P  P  P  P  P  P  H  H  H  H",
	4:  "H  H  H  P  P  H  H  H  H  H",
	5:  "Dh Dh Dh Dh Dh Dh Dh Dh H  H",
	6:  "P  P  P  P  P  H  H  H  H  H",
	7:  "P  P  P  P  P  P  H  H  H  H",
	8:  "P  P  P  P  P  P  P  P  P  Rp",
	9:  "P  P  P  P  P  S  P  P  S  S",
	10: "S  S  S  S  S  S  S  S  S  S",
	11: "P  P  P  P  P  P  P  P  P  P",
}

// h17Pairs marks the splits that depend on doubling after split with Ph.
var h17Pairs = chartRows{
	2:  "Ph Ph P  P  P  P  H  H  H  H",
	3:  "Ph Ph P  P  P  P  H  H  H  H",
	4:  "H  H  H  Ph Ph H  H  H  H  H",
	5:  "Dh Dh Dh Dh Dh Dh Dh Dh H  H",
	6:  "Ph P  P  P  P  H  H  H  H  H",
	7:  "P  P  P  P  P  P  H  H  H  H",
	8:  "P  P  P  P  P  P  P  P  P  Rp",
	9:  "P  P  P  P  P  S  P  P  S  S",
	10: "S  S  S  S  S  S  S  S  S  S",
	11: "P  P  P  P  P  P  P  P  P  P",
}

var s17Hard = chartRows{
	5:  "H  H  H  H  H  H  H  H  H  H",
	6:  "H  H  H  H  H  H  H  H  H  H",
	7:  "H  H  H  H  H  H  H  H  H  H",
	8:  "H  H  H  H  H  H  H  H  H  H",
	9:  "H  Dh Dh Dh Dh H  H  H  H  H",
	10: "Dh Dh Dh Dh Dh Dh Dh Dh H  H",
	11: "Dh Dh Dh Dh Dh Dh Dh Dh Dh H",
	12: "H  H  S  S  S  H  H  H  H  H",
	13: "S  S  S  S  S  H  H  H  H  H",
	14: "S  S  S  S  S  H  H  H  H  H",
	15: "S  S  S  S  S  H  H  H  Rh H",
	16: "S  S  S  S  S  H  H  Rh Rh Rh",
	17: "S  S  S  S  S  S  S  S  S  S",
	18: "S  S  S  S  S  S  S  S  S  S",
	19: "S  S  S  S  S  S  S  S  S  S",
	20: "S  S  S  S  S  S  S  S  S  S",
	21: "S  S  S  S  S  S  S  S  S  S",
}

var s17Soft = chartRows{
	13: "H  H  H  Dh Dh H  H  H  H  H",
	14: "H  H  H  Dh Dh H  H  H  H  H",
	15: "H  H  Dh Dh Dh H  H  H  H  H",
	16: "H  H  Dh Dh Dh H  H  H  H  H",
	17: "H  Dh Dh Dh Dh H  H  H  H  H",
	18: "S  Ds Ds Ds Ds S  S  H  H  H",
	19: "S  S  S  S  S  S  S  S  S  S",
	20: "S  S  S  S  S  S  S  S  S  S",
	21: "S  S  S  S  S  S  S  S  S  S",
}

var s17DASPairs = chartRows{
	2:  "P  P  P  P  P  P  H  H  H  H",
	3:  "P  P  P  P  P  P  H  H  H  H",
	4:  "H  H  H  P  P  H  H  H  H  H",
	5:  "Dh Dh Dh Dh Dh Dh Dh Dh H  H",
	6:  "P  P  P  P  P  H  H  H  H  H",
	7:  "P  P  P  P  P  P  H  H  H  H",
	8:  "P  P  P  P  P  P  P  P  P  P",
	9:  "P  P  P  P  P  S  P  P  S  S",
	10: "S  S  S  S  S  S  S  S  S  S",
	11: "P  P  P  P  P  P  P  P  P  P",
}
