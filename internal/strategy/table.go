package strategy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lox/bjquiz/internal/deck"
)

const (
	columns  = 10
	hardRows = MaxHardTotal - MinHardTotal + 1
	softRows = MaxSoftTotal - MinSoftTotal + 1
	pairRows = 10
)

// DefaultChart is the chart used when none is named.
const DefaultChart = "h17-das"

// Table is an immutable basic strategy chart. Tables are built once at
// package initialisation and only expose read access, so a *Table is safe
// for concurrent use.
type Table struct {
	name  string
	rules string
	hard  [hardRows][columns]Action
	soft  [softRows][columns]Action
	pairs [pairRows][columns]Action
}

// Name returns the chart identifier, e.g. "h17-das".
func (t *Table) Name() string { return t.name }

// Rules describes the rule set the chart was computed for.
func (t *Table) Rules() string { return t.rules }

// Lookup returns the basic strategy action for a scenario. Ten-valued
// up-cards (J, Q, K) are looked up in the 10 column.
func (t *Table) Lookup(sc Scenario) (Action, error) {
	row, err := t.row(sc.Player)
	if err != nil {
		return 0, &DomainError{Scenario: sc, Reason: err.Error()}
	}
	if !sc.Dealer.Valid() {
		return 0, &DomainError{Scenario: sc, Reason: fmt.Sprintf("dealer up-card %d is not a card", int(sc.Dealer))}
	}
	return row[sc.Dealer.Value()-2], nil
}

// Row returns the chart row for a hand, one action per up-card in
// deck.Upcards order.
func (t *Table) Row(h Hand) ([]Action, error) {
	row, err := t.row(h)
	if err != nil {
		return nil, &DomainError{Scenario: Scenario{Player: h}, Reason: err.Error()}
	}
	out := make([]Action, columns)
	copy(out, row[:])
	return out, nil
}

func (t *Table) row(h Hand) (*[columns]Action, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("%s hand %q out of range", h.Kind, h.Label())
	}
	switch h.Kind {
	case Hard:
		return &t.hard[h.Total-MinHardTotal], nil
	case Soft:
		return &t.soft[h.Total-MinSoftTotal], nil
	default:
		return &t.pairs[h.Rank.Value()-2], nil
	}
}

// Charts lists the names of every available chart, sorted.
func Charts() []string {
	names := make([]string, 0, len(charts))
	for name := range charts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the named chart.
func ByName(name string) (*Table, error) {
	t, ok := charts[name]
	if !ok {
		return nil, fmt.Errorf("unknown chart %q (available: %s)", name, strings.Join(Charts(), ", "))
	}
	return t, nil
}

// Default returns the default chart.
func Default() *Table {
	return charts[DefaultChart]
}

// chartRows holds one section of a chart as text rows keyed by total (hard,
// soft) or card value (pairs). Each row lists ten action codes for dealer
// 2 through A.
type chartRows map[int]string

func mustTable(name, rules string, hard, soft, pairs chartRows) *Table {
	t := &Table{name: name, rules: rules}
	fill := func(section string, rows chartRows, lo, hi int, dst func(i int) *[columns]Action) {
		for key := lo; key <= hi; key++ {
			text, ok := rows[key]
			if !ok {
				panic(fmt.Sprintf("chart %s: %s row %d missing", name, section, key))
			}
			codes := strings.Fields(text)
			if len(codes) != columns {
				panic(fmt.Sprintf("chart %s: %s row %d has %d cells", name, section, key, len(codes)))
			}
			row := dst(key - lo)
			for i, code := range codes {
				a, err := ParseAction(code)
				if err != nil {
					panic(fmt.Sprintf("chart %s: %s row %d: %v", name, section, key, err))
				}
				row[i] = a
			}
		}
		if len(rows) != hi-lo+1 {
			panic(fmt.Sprintf("chart %s: %s section has %d rows, want %d", name, section, len(rows), hi-lo+1))
		}
	}
	fill("hard", hard, MinHardTotal, MaxHardTotal, func(i int) *[columns]Action { return &t.hard[i] })
	fill("soft", soft, MinSoftTotal, MaxSoftTotal, func(i int) *[columns]Action { return &t.soft[i] })
	fill("pair", pairs, 2, 11, func(i int) *[columns]Action { return &t.pairs[i] })
	return t
}

// UpcardHeader returns the column labels of a chart row.
func UpcardHeader() []string {
	out := make([]string, len(deck.Upcards))
	for i, r := range deck.Upcards {
		out[i] = r.String()
	}
	return out
}
