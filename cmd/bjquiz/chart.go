package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lox/bjquiz/internal/deck"
	"github.com/lox/bjquiz/internal/strategy"
)

// ChartCmd prints a strategy chart as a grid.
type ChartCmd struct {
	Name    string `arg:"" optional:"" help:"Chart name (h17-das, s17-das, h17)" default:"h17-das"`
	NoColor bool   `help:"Disable colored output"`
}

func (cmd *ChartCmd) Run() error {
	table, err := strategy.ByName(cmd.Name)
	if err != nil {
		return err
	}
	if cmd.NoColor {
		disableColor()
	}
	fmt.Fprint(os.Stdout, renderChart(table))
	return nil
}

type chartSection struct {
	title string
	hands []strategy.Hand
}

func chartSections() []chartSection {
	var hard, soft, pairs []strategy.Hand
	for n := strategy.MinHardTotal; n <= strategy.MaxHardTotal; n++ {
		hard = append(hard, strategy.HardTotal(n))
	}
	for n := strategy.MinSoftTotal; n <= strategy.MaxSoftTotal; n++ {
		soft = append(soft, strategy.SoftTotal(n))
	}
	for _, r := range deck.Upcards {
		pairs = append(pairs, strategy.PairOf(r))
	}
	return []chartSection{
		{title: "Hard totals", hands: hard},
		{title: "Soft totals", hands: soft},
		{title: "Pairs", hands: pairs},
	}
}

func renderChart(table *strategy.Table) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n", headerStyle.Render(table.Name()), table.Rules())

	var header strings.Builder
	header.WriteString(fmt.Sprintf("%-6s", ""))
	for _, up := range strategy.UpcardHeader() {
		header.WriteString(cellStyle.Render(up))
	}

	for _, section := range chartSections() {
		fmt.Fprintf(&b, "\n%s\n%s\n", sectionStyle.Render(section.title), headerStyle.Render(strings.TrimRight(header.String(), " ")))
		for _, h := range section.hands {
			row, err := table.Row(h)
			if err != nil {
				continue
			}
			var line strings.Builder
			line.WriteString(fmt.Sprintf("%-6s", h.Label()))
			for _, a := range row {
				line.WriteString(actionCell(a))
			}
			b.WriteString(strings.TrimRight(line.String(), " "))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	for _, a := range strategy.Legend() {
		fmt.Fprintf(&b, "%s %s\n", actionCell(a), a.Meaning())
	}
	return b.String()
}
