package strategy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/bjquiz/internal/deck"
)

// HandKind distinguishes the three sections of a strategy chart.
type HandKind uint8

const (
	Hard HandKind = iota + 1
	Soft
	Pair
)

func (k HandKind) String() string {
	switch k {
	case Hard:
		return "hard"
	case Soft:
		return "soft"
	case Pair:
		return "pair"
	default:
		return "unknown"
	}
}

// Chart bounds for each section.
const (
	MinHardTotal = 5
	MaxHardTotal = 21
	MinSoftTotal = 13
	MaxSoftTotal = 21
)

// Hand is a player hand category. Hard and soft hands carry a Total; pairs
// carry the Rank of the paired card.
type Hand struct {
	Kind  HandKind
	Total int
	Rank  deck.Rank
}

// HardTotal returns a hard hand of total n.
func HardTotal(n int) Hand {
	return Hand{Kind: Hard, Total: n}
}

// SoftTotal returns a soft hand of total n (an ace counted as 11 plus n-11).
func SoftTotal(n int) Hand {
	return Hand{Kind: Soft, Total: n}
}

// PairOf returns a pair of r.
func PairOf(r deck.Rank) Hand {
	return Hand{Kind: Pair, Rank: r}
}

// Valid reports whether the hand lies inside the chart.
func (h Hand) Valid() bool {
	switch h.Kind {
	case Hard:
		return h.Total >= MinHardTotal && h.Total <= MaxHardTotal
	case Soft:
		return h.Total >= MinSoftTotal && h.Total <= MaxSoftTotal
	case Pair:
		return h.Rank.Valid()
	default:
		return false
	}
}

// Label returns the chart row label: "16", "A,7" or "8,8".
func (h Hand) Label() string {
	switch h.Kind {
	case Hard:
		return strconv.Itoa(h.Total)
	case Soft:
		return fmt.Sprintf("A,%d", h.Total-11)
	case Pair:
		return fmt.Sprintf("%s,%s", h.Rank, h.Rank)
	default:
		return "?"
	}
}

// Describe returns the label qualified with its kind, e.g. "16 (hard)" or
// "A,7 (soft 18)".
func (h Hand) Describe() string {
	switch h.Kind {
	case Hard:
		return fmt.Sprintf("%d (hard)", h.Total)
	case Soft:
		return fmt.Sprintf("%s (soft %d)", h.Label(), h.Total)
	case Pair:
		return fmt.Sprintf("%s (pair)", h.Label())
	default:
		return "?"
	}
}

func (h Hand) String() string {
	return h.Label()
}

// ParseHand parses a chart-style hand label. A bare number is a hard total,
// "A,x" is a soft hand, "x,x" is a pair and any other two-card hand is
// reduced to its hard total.
func ParseHand(label string) (Hand, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Hand{}, fmt.Errorf("empty hand")
	}

	if !strings.Contains(label, ",") {
		n, err := strconv.Atoi(label)
		if err != nil {
			return Hand{}, fmt.Errorf("invalid hand %q: expected a total or two cards", label)
		}
		h := HardTotal(n)
		if !h.Valid() {
			return Hand{}, fmt.Errorf("invalid hand %q: hard total must be %d-%d", label, MinHardTotal, MaxHardTotal)
		}
		return h, nil
	}

	parts := strings.Split(label, ",")
	if len(parts) != 2 {
		return Hand{}, fmt.Errorf("invalid hand %q: expected exactly two cards", label)
	}
	first, err := deck.ParseRank(parts[0])
	if err != nil {
		return Hand{}, fmt.Errorf("invalid hand %q: %w", label, err)
	}
	second, err := deck.ParseRank(parts[1])
	if err != nil {
		return Hand{}, fmt.Errorf("invalid hand %q: %w", label, err)
	}

	switch {
	case first.Value() == second.Value():
		canonical, _ := deck.FromValue(first.Value())
		return PairOf(canonical), nil
	case first == deck.Ace:
		return SoftTotal(11 + second.Value()), nil
	case second == deck.Ace:
		return SoftTotal(11 + first.Value()), nil
	default:
		return HardTotal(first.Value() + second.Value()), nil
	}
}
