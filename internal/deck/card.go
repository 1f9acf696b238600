// Package deck defines blackjack card ranks and their values.
package deck

import (
	"fmt"
	"strings"
)

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Upcards lists the distinct dealer up-cards by blackjack value, in chart column order.
var Upcards = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Ace}

// String returns the chart notation for a rank. Ten is written "10" as on
// printed strategy charts.
func (r Rank) String() string {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten:
		return fmt.Sprintf("%d", int(r))
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Valid reports whether r is a real card rank.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Value returns the blackjack value of the rank: face cards count 10 and the
// ace counts 11.
func (r Rank) Value() int {
	switch {
	case r >= Two && r <= Ten:
		return int(r)
	case r >= Jack && r <= King:
		return 10
	case r == Ace:
		return 11
	default:
		return 0
	}
}

// IsTenValued returns true for 10, J, Q and K.
func (r Rank) IsTenValued() bool {
	return r.Value() == 10
}

// FromValue returns the canonical rank for a blackjack value (2-11).
func FromValue(v int) (Rank, error) {
	switch {
	case v >= 2 && v <= 10:
		return Rank(v), nil
	case v == 11:
		return Ace, nil
	default:
		return 0, fmt.Errorf("no card has blackjack value %d", v)
	}
}

// ParseRank parses a rank such as "7", "10", "T", "q" or "A".
func ParseRank(s string) (Rank, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "2":
		return Two, nil
	case "3":
		return Three, nil
	case "4":
		return Four, nil
	case "5":
		return Five, nil
	case "6":
		return Six, nil
	case "7":
		return Seven, nil
	case "8":
		return Eight, nil
	case "9":
		return Nine, nil
	case "10", "T":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A", "11":
		return Ace, nil
	default:
		return 0, fmt.Errorf("invalid rank: %q", s)
	}
}
