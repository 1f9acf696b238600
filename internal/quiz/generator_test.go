package quiz

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/bjquiz/internal/deck"
	"github.com/lox/bjquiz/internal/strategy"
)

var questionLine = regexp.MustCompile(`^\s*(\d+)\. Player: (.+?)\s+Dealer: (\S+)\s+Answer: (\S+)$`)

type parsedLine struct {
	number int
	hand   string
	dealer string
	answer string
}

func parseQuestionLines(t *testing.T, text string) []parsedLine {
	t.Helper()
	var lines []parsedLine
	for _, line := range strings.Split(text, "\n") {
		m := questionLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		lines = append(lines, parsedLine{number: n, hand: m[2], dealer: m[3], answer: m[4]})
	}
	return lines
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func seed(v int64) *int64 { return &v }

func TestGenerateValidation(t *testing.T) {
	gen := NewGenerator(strategy.Default(), WithLogger(quietLogger()))
	ctx := context.Background()

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "zero size", req: Request{Size: 0, Versions: []string{"A"}}, wantErr: ErrInvalidSize},
		{name: "negative size", req: Request{Size: -3, Versions: []string{"A"}}, wantErr: ErrInvalidSize},
		{name: "no versions", req: Request{Size: 48, Versions: nil}, wantErr: ErrInvalidVersions},
		{name: "empty versions", req: Request{Size: 48, Versions: []string{}}, wantErr: ErrInvalidVersions},
		{name: "duplicate version", req: Request{Size: 48, Versions: []string{"A", "A"}}, wantErr: ErrInvalidVersions},
		{name: "blank version", req: Request{Size: 48, Versions: []string{"A", " "}}, wantErr: ErrInvalidVersions},
		{name: "size checked first", req: Request{Size: 0, Versions: nil}, wantErr: ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := gen.Generate(ctx, tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
			assert.Nil(t, res)
		})
	}
}

func TestGenerateSizeCapped(t *testing.T) {
	gen := NewGenerator(strategy.Default(), WithLogger(quietLogger()))

	res, err := gen.Generate(context.Background(), Request{Size: 10000, Versions: []string{"A"}, Seed: seed(1)})
	require.NoError(t, err)

	domain := strategy.DomainSize()
	assert.Equal(t, domain, res.Size)
	require.Len(t, res.Warnings, 1)

	var capped *SizeCappedWarning
	require.True(t, errors.As(res.Warnings[0], &capped))
	assert.Equal(t, 10000, capped.Requested)
	assert.Equal(t, domain, capped.Capped)

	sheet, ok := res.Sheet("A")
	require.True(t, ok)
	assert.Len(t, sheet.Questions, domain)
	assert.Len(t, parseQuestionLines(t, sheet.QuestionText), domain)
}

func TestGenerateOneSheetPerVersion(t *testing.T) {
	gen := NewGenerator(strategy.Default(), WithLogger(quietLogger()))
	versions := []string{"A", "B", "C"}

	res, err := gen.Generate(context.Background(), Request{Size: 48, Versions: versions, Seed: seed(2024)})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	require.Len(t, res.Sheets, len(versions))

	for i, v := range versions {
		sheet := res.Sheets[i]
		assert.Equal(t, v, sheet.Version)
		assert.Len(t, sheet.Questions, 48)
		assert.Len(t, parseQuestionLines(t, sheet.QuestionText), 48)
		assert.Len(t, parseQuestionLines(t, sheet.AnswerText), 48)
		assert.Contains(t, sheet.QuestionText, "Version "+v+"\n")
	}

	assert.NotEqual(t, res.Sheets[0].Seed, res.Sheets[1].Seed)
	assert.NotEqual(t, res.Sheets[0].Questions, res.Sheets[1].Questions)

	_, ok := res.Sheet("Z")
	assert.False(t, ok)
}

func TestGenerateNoRepeatedScenarios(t *testing.T) {
	gen := NewGenerator(strategy.Default(), WithLogger(quietLogger()))

	res, err := gen.Generate(context.Background(), Request{Size: strategy.DomainSize(), Versions: []string{"A", "B"}, Seed: seed(5)})
	require.NoError(t, err)

	for _, sheet := range res.Sheets {
		seen := make(map[strategy.Scenario]bool)
		for _, q := range sheet.Questions {
			assert.False(t, seen[q.Scenario], "version %s repeats %s", sheet.Version, q.Scenario)
			seen[q.Scenario] = true
		}
	}
}

func TestGenerateLockStep(t *testing.T) {
	table := strategy.Default()
	gen := NewGenerator(table, WithLogger(quietLogger()))

	res, err := gen.Generate(context.Background(), Request{Size: 60, Versions: []string{"A", "B"}, Seed: seed(77)})
	require.NoError(t, err)

	for _, sheet := range res.Sheets {
		questions := parseQuestionLines(t, sheet.QuestionText)
		answers := parseQuestionLines(t, sheet.AnswerText)
		require.Len(t, answers, len(questions))

		for i := range questions {
			q, a := questions[i], answers[i]
			assert.Equal(t, i+1, q.number)
			assert.Equal(t, q.number, a.number)
			assert.Equal(t, q.hand, a.hand)
			assert.Equal(t, q.dealer, a.dealer)
			assert.Equal(t, answerBlank, q.answer)

			sc := sheet.Questions[i].Scenario
			want, err := table.Lookup(sc)
			require.NoError(t, err)
			assert.Equal(t, want.Code(), a.answer, "line %d: %s", i+1, sc)
			assert.Equal(t, sc.Player.Describe(), q.hand)
			assert.Equal(t, sc.Dealer.String(), q.dealer)
		}
	}
}

func TestGenerateReproducibleFromSeed(t *testing.T) {
	gen := NewGenerator(strategy.Default(), WithLogger(quietLogger()))
	req := Request{Size: 20, Versions: []string{"A", "B"}, Seed: seed(31337)}

	first, err := gen.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := gen.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Sheets, second.Sheets)

	// A single version can be replayed from its reported seed.
	replay, err := gen.Sample(first.Sheets[1].Seed, 20)
	require.NoError(t, err)
	assert.Equal(t, first.Sheets[1].Questions, replay)
}

func TestGenerateParallelMatchesSequential(t *testing.T) {
	versions := []string{"A", "B", "C", "D", "E", "F"}
	req := Request{Size: 48, Versions: versions, Seed: seed(99)}

	seq, err := NewGenerator(nil, WithLogger(quietLogger())).Generate(context.Background(), req)
	require.NoError(t, err)
	par, err := NewGenerator(nil, WithLogger(quietLogger()), WithParallel(true)).Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, seq.Sheets, par.Sheets)
}

func TestGenerateSeedFromClock(t *testing.T) {
	ctx := context.Background()
	mClock := quartz.NewMock(t)
	gen := NewGenerator(strategy.Default(), WithClock(mClock), WithLogger(quietLogger()))

	want := mClock.Now().UnixNano()
	res, err := gen.Generate(ctx, Request{Size: 5, Versions: []string{"A"}})
	require.NoError(t, err)
	assert.Equal(t, want, res.BaseSeed)

	mClock.Advance(time.Second).MustWait(ctx)
	later, err := gen.Generate(ctx, Request{Size: 5, Versions: []string{"A"}})
	require.NoError(t, err)
	assert.Equal(t, want+int64(time.Second), later.BaseSeed)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator(nil).Generate(ctx, Request{Size: 5, Versions: []string{"A"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateEndToEndFive(t *testing.T) {
	table := strategy.Default()
	gen := NewGenerator(table, WithLogger(quietLogger()))

	res, err := gen.Generate(context.Background(), Request{Size: 5, Versions: []string{"A"}, Seed: seed(3)})
	require.NoError(t, err)
	sheet := res.Sheets[0]

	assert.Contains(t, sheet.QuestionText, Legend())
	assert.Contains(t, sheet.AnswerText, Legend())
	assert.Equal(t, 5, strings.Count(sheet.QuestionText, "Answer: "+answerBlank))
	assert.Equal(t, 0, strings.Count(sheet.AnswerText, "Answer: "+answerBlank))

	for _, q := range sheet.Questions {
		assert.Contains(t, sheet.AnswerText, "Answer: "+q.Answer.Code()+"\n")
	}
}

func TestQuestionPrompt(t *testing.T) {
	q := Question{Number: 12, Scenario: strategy.Scenario{Player: strategy.HardTotal(16), Dealer: deck.Ten}}
	assert.Equal(t, "Player: 16 (hard)  Dealer: 10", q.Prompt())
}

func TestParseVersions(t *testing.T) {
	assert.Equal(t, []string{"A"}, ParseVersions("A"))
	assert.Equal(t, []string{"A", "B", "C"}, ParseVersions("A, B ,C"))
	assert.Equal(t, []string{""}, ParseVersions(""))
	assert.Equal(t, []string{"A", ""}, ParseVersions("A,"))
}
