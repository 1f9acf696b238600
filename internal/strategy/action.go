package strategy

import "fmt"

// Action is a basic strategy play as printed on a chart cell.
type Action uint8

const (
	Hit Action = iota + 1
	Stand
	Split
	DoubleElseHit
	DoubleElseStand
	SplitElseHit
	SurrenderElseHit
	SurrenderElseStand
	SurrenderElseSplit
)

var actionCodes = map[Action]string{
	Hit:                "H",
	Stand:              "S",
	Split:              "P",
	DoubleElseHit:      "Dh",
	DoubleElseStand:    "Ds",
	SplitElseHit:       "Ph",
	SurrenderElseHit:   "Rh",
	SurrenderElseStand: "Rs",
	SurrenderElseSplit: "Rp",
}

var actionMeanings = map[Action]string{
	Hit:                "Hit",
	Stand:              "Stand",
	Split:              "Split",
	DoubleElseHit:      "Double if allowed, otherwise hit",
	DoubleElseStand:    "Double if allowed, otherwise stand",
	SplitElseHit:       "Split if double after split is allowed, otherwise hit",
	SurrenderElseHit:   "Surrender if allowed, otherwise hit",
	SurrenderElseStand: "Surrender if allowed, otherwise stand",
	SurrenderElseSplit: "Surrender if allowed, otherwise split",
}

// Legend returns every action in the order it is explained on a test sheet.
func Legend() []Action {
	return []Action{
		Hit,
		Stand,
		Split,
		DoubleElseHit,
		DoubleElseStand,
		SplitElseHit,
		SurrenderElseHit,
		SurrenderElseStand,
		SurrenderElseSplit,
	}
}

// Code returns the chart shorthand, e.g. "Dh".
func (a Action) Code() string {
	if code, ok := actionCodes[a]; ok {
		return code
	}
	return "?"
}

// Meaning returns the plain-English explanation of the shorthand.
func (a Action) Meaning() string {
	if m, ok := actionMeanings[a]; ok {
		return m
	}
	return "Unknown"
}

func (a Action) String() string {
	return a.Code()
}

// Valid reports whether a is one of the defined actions.
func (a Action) Valid() bool {
	_, ok := actionCodes[a]
	return ok
}

// ParseAction parses a chart shorthand code. Matching is case sensitive
// because "Ds" and "DS" would be ambiguous on a printed sheet.
func ParseAction(code string) (Action, error) {
	for a, c := range actionCodes {
		if c == code {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action code %q", code)
}
