package strategy

import (
	"fmt"

	"github.com/lox/bjquiz/internal/deck"
)

// Scenario is one quizzable situation: a player hand against a dealer up-card.
type Scenario struct {
	Player Hand
	Dealer deck.Rank
}

// String formats the scenario the way it is read off a chart, e.g. "16 vs 10".
func (s Scenario) String() string {
	return fmt.Sprintf("%s vs %s", s.Player.Label(), s.Dealer)
}

// DomainError reports a lookup for a scenario the chart does not cover.
// It indicates a caller bug rather than bad user input.
type DomainError struct {
	Scenario Scenario
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("scenario %s is outside the strategy chart: %s", e.Scenario, e.Reason)
}

var domain = buildDomain()

// Domain returns every scenario covered by a chart: hard totals, then soft
// totals, then pairs, each against up-cards 2 through A. The returned slice
// is a fresh copy and may be reordered by the caller.
func Domain() []Scenario {
	out := make([]Scenario, len(domain))
	copy(out, domain)
	return out
}

// DomainSize is the number of distinct scenarios in Domain.
func DomainSize() int {
	return len(domain)
}

func buildDomain() []Scenario {
	var hands []Hand
	for n := MinHardTotal; n <= MaxHardTotal; n++ {
		hands = append(hands, HardTotal(n))
	}
	for n := MinSoftTotal; n <= MaxSoftTotal; n++ {
		hands = append(hands, SoftTotal(n))
	}
	for v := 2; v <= 11; v++ {
		r, _ := deck.FromValue(v)
		hands = append(hands, PairOf(r))
	}

	scenarios := make([]Scenario, 0, len(hands)*len(deck.Upcards))
	for _, h := range hands {
		for _, up := range deck.Upcards {
			scenarios = append(scenarios, Scenario{Player: h, Dealer: up})
		}
	}
	return scenarios
}
