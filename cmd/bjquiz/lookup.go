package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/bjquiz/internal/deck"
	"github.com/lox/bjquiz/internal/strategy"
)

// LookupCmd answers a single question from a chart.
type LookupCmd struct {
	Hand   string `arg:"" help:"Player hand: a hard total (16), soft hand (A,7) or pair (8,8)"`
	Dealer string `arg:"" help:"Dealer up-card (2-10, J, Q, K, A)"`
	Chart  string `help:"Strategy chart" default:"h17-das"`
}

func (cmd *LookupCmd) Run() error {
	return runLookup(os.Stdout, cmd.Chart, cmd.Hand, cmd.Dealer)
}

func runLookup(w io.Writer, chart, hand, dealer string) error {
	table, err := strategy.ByName(chart)
	if err != nil {
		return err
	}
	player, err := strategy.ParseHand(hand)
	if err != nil {
		return err
	}
	up, err := deck.ParseRank(dealer)
	if err != nil {
		return fmt.Errorf("dealer up-card: %w", err)
	}

	sc := strategy.Scenario{Player: player, Dealer: up}
	action, err := table.Lookup(sc)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %s (%s)\n", sc, action.Code(), action.Meaning())
	return nil
}
