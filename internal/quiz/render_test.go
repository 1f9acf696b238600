package quiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/bjquiz/internal/deck"
	"github.com/lox/bjquiz/internal/strategy"
)

func fixedQuestions() []Question {
	return []Question{
		{Number: 1, Scenario: strategy.Scenario{Player: strategy.HardTotal(16), Dealer: deck.Ten}, Answer: strategy.SurrenderElseHit},
		{Number: 2, Scenario: strategy.Scenario{Player: strategy.SoftTotal(18), Dealer: deck.Three}, Answer: strategy.DoubleElseStand},
		{Number: 3, Scenario: strategy.Scenario{Player: strategy.PairOf(deck.Eight), Dealer: deck.Ace}, Answer: strategy.SurrenderElseSplit},
	}
}

func TestRenderQuestionSheet(t *testing.T) {
	header := Header{Version: "A", Rules: "4-8 decks, dealer hits soft 17, double after split, late surrender"}
	text := Render(header, fixedQuestions(), false)

	want := "Blackjack Basic Strategy Test\t\t\t\tName: _________________________\n" +
		"Version A\n" +
		"Rules: 4-8 decks, dealer hits soft 17, double after split, late surrender\n" +
		"\n" +
		"Fill in the blanks with the corresponding basic strategy play.\n" +
		"\n" +
		"Legend:\n" +
		"  H   Hit\n" +
		"  S   Stand\n" +
		"  P   Split\n" +
		"  Dh  Double if allowed, otherwise hit\n" +
		"  Ds  Double if allowed, otherwise stand\n" +
		"  Ph  Split if double after split is allowed, otherwise hit\n" +
		"  Rh  Surrender if allowed, otherwise hit\n" +
		"  Rs  Surrender if allowed, otherwise stand\n" +
		"  Rp  Surrender if allowed, otherwise split\n" +
		"\n" +
		"1. Player: 16 (hard)       Dealer: 10  Answer: ____\n" +
		"2. Player: A,7 (soft 18)   Dealer: 3   Answer: ____\n" +
		"3. Player: 8,8 (pair)      Dealer: A   Answer: ____\n"

	assert.Equal(t, want, text)
}

func TestRenderAnswerSheet(t *testing.T) {
	text := Render(Header{Version: "B"}, fixedQuestions(), true)

	lines := strings.Split(text, "\n")
	assert.Equal(t, "Blackjack Basic Strategy Test\t\t\t\tName: _________Answers_________", lines[0])
	assert.Equal(t, "Version B", lines[1])
	assert.NotContains(t, text, "Rules:")

	assert.Contains(t, text, "1. Player: 16 (hard)       Dealer: 10  Answer: Rh\n")
	assert.Contains(t, text, "2. Player: A,7 (soft 18)   Dealer: 3   Answer: Ds\n")
	assert.Contains(t, text, "3. Player: 8,8 (pair)      Dealer: A   Answer: Rp\n")
}

func TestRenderIsDeterministic(t *testing.T) {
	header := Header{Version: "A", Rules: "rules"}
	qs := fixedQuestions()
	assert.Equal(t, Render(header, qs, false), Render(header, qs, false))
	assert.Equal(t, Render(header, qs, true), Render(header, qs, true))
}

func TestRenderPadsOrdinals(t *testing.T) {
	gen := NewGenerator(nil)
	qs, err := gen.Sample(8, 12)
	require.NoError(t, err)

	text := Render(Header{Version: "A"}, qs, false)
	assert.Contains(t, text, "\n 1. Player: ")
	assert.Contains(t, text, "\n12. Player: ")
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "_________Answers_________", center("Answers", 25, '_'))
	assert.Equal(t, "__ab___", center("ab", 7, '_'))
	assert.Equal(t, "toolong", center("toolong", 3, '_'))
}
