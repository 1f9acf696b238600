package quiz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/bjquiz/internal/strategy"
)

const (
	title        = "Blackjack Basic Strategy Test"
	instructions = "Fill in the blanks with the corresponding basic strategy play."
	nameWidth    = 25
	handWidth    = 14
	answerBlank  = "____"
)

// Header carries the per-version text printed above the questions.
type Header struct {
	Version string
	Rules   string
}

// Render produces the text of a test sheet. With answers set the blanks are
// replaced by action codes. The output depends only on its arguments.
func Render(h Header, questions []Question, answers bool) string {
	var b strings.Builder

	name := strings.Repeat("_", nameWidth)
	if answers {
		name = center("Answers", nameWidth, '_')
	}
	fmt.Fprintf(&b, "%s\t\t\t\tName: %s\n", title, name)
	fmt.Fprintf(&b, "Version %s\n", h.Version)
	if h.Rules != "" {
		fmt.Fprintf(&b, "Rules: %s\n", h.Rules)
	}
	b.WriteString("\n")
	b.WriteString(instructions)
	b.WriteString("\n\n")

	writeLegend(&b)
	b.WriteString("\n")

	width := len(strconv.Itoa(len(questions)))
	for _, q := range questions {
		answer := answerBlank
		if answers {
			answer = q.Answer.Code()
		}
		fmt.Fprintf(&b, "%*d. Player: %-*s  Dealer: %-2s  Answer: %s\n",
			width, q.Number, handWidth, q.Scenario.Player.Describe(), q.Scenario.Dealer, answer)
	}

	return b.String()
}

// Legend returns the legend block shared by every sheet.
func Legend() string {
	var b strings.Builder
	writeLegend(&b)
	return b.String()
}

func writeLegend(b *strings.Builder) {
	b.WriteString("Legend:\n")
	for _, a := range strategy.Legend() {
		fmt.Fprintf(b, "  %-3s %s\n", a.Code(), a.Meaning())
	}
}

// center pads s on both sides with fill to width, putting the odd pad on the right.
func center(s string, width int, fill rune) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), pad-left)
}
