package compare

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/wordlesolvers/solver"
	"github.com/powellquiring/wordlesolvers/wordle"
)

func uniqueLetterDictionary(t *testing.T) *wordle.Dictionary {
	t.Helper()
	words := []string{}
	for _, s := range wordle.DefaultWords() {
		if wordle.Word(s).UniqueLetters().Cardinality() == len(s) {
			words = append(words, s)
		}
	}
	d, err := wordle.NewDictionary(words)
	require.NoError(t, err)
	return d
}

func TestRun(t *testing.T) {
	d := uniqueLetterDictionary(t)
	report, err := Run(context.Background(), d, Options{Games: 12, Seed: 42, Workers: 4})
	require.NoError(t, err)
	require.Len(t, report.Summaries, len(solver.Kinds()))
	assert.Len(t, report.Solutions, 12)

	for _, summary := range report.Summaries {
		assert.Equal(t, 12, summary.Games, string(summary.Kind))
		assert.Equal(t, 12, summary.Wins, string(summary.Kind))
		assert.Zero(t, summary.Failures)
		assert.Zero(t, summary.FalsePrunes)
		assert.GreaterOrEqual(t, summary.MeanGuesses, 1.0)
		require.NotEmpty(t, summary.MeanBurndown)
		assert.InDelta(t, float64(d.Len()), summary.MeanBurndown[0], 1e-9)
	}

	again, err := Run(context.Background(), d, Options{Games: 12, Seed: 42, Workers: 1})
	require.NoError(t, err)
	assert.Equal(t, report, again)
}

func TestRunPruningBeatsNaive(t *testing.T) {
	d := uniqueLetterDictionary(t)
	report, err := Run(context.Background(), d, Options{
		Games:      20,
		Seed:       7,
		Strategies: []solver.Kind{solver.KindNaive, solver.KindFrequency},
	})
	require.NoError(t, err)
	require.Len(t, report.Summaries, 2)
	naive, frequency := report.Summaries[0], report.Summaries[1]
	assert.Equal(t, solver.KindNaive, naive.Kind)
	assert.Less(t, frequency.MeanGuesses, naive.MeanGuesses)
}

func TestRunErrors(t *testing.T) {
	_, err := Run(context.Background(), nil, Options{Games: 1})
	assert.ErrorIs(t, err, wordle.ErrEmptyDictionary)
	_, err = Run(context.Background(), uniqueLetterDictionary(t), Options{})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, uniqueLetterDictionary(t), Options{Games: 5})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Trace: solver.Trace{Burndown: []int{10, 4, 1}, Turns: make([]wordle.Turn, 3), Solved: true}},
		{Trace: solver.Trace{Burndown: []int{10}, Turns: make([]wordle.Turn, 1), Solved: true}},
		{Trace: solver.Trace{Burndown: []int{10, 2, 0}, Turns: make([]wordle.Turn, 2)}, Err: wordle.ErrNoCandidates, FalsePrune: true},
	}
	summary := Summarize(solver.KindHybrid, results)
	assert.Equal(t, 3, summary.Games)
	assert.Equal(t, 2, summary.Wins)
	assert.Equal(t, 1, summary.Failures)
	assert.Equal(t, 1, summary.FalsePrunes)
	assert.InDelta(t, 2.0, summary.MeanGuesses, 1e-9)
	assert.Equal(t, 3, summary.MaxGuesses)
	assert.InDeltaSlice(t, []float64{10, 7.0 / 3, 2.0 / 3}, summary.MeanBurndown, 1e-9)

	assert.Equal(t, Summary{Kind: solver.KindNaive}, Summarize(solver.KindNaive, nil))
}

func TestWriteTable(t *testing.T) {
	report := Report{Summaries: []Summary{
		{Kind: solver.KindFrequency, Games: 2, Wins: 2, MeanGuesses: 3.5, MaxGuesses: 4, MeanBurndown: []float64{100, 12.5}},
	}}
	var buf bytes.Buffer
	require.NoError(t, report.WriteTable(&buf, 3))
	out := buf.String()
	assert.Contains(t, out, "frequency")
	assert.Contains(t, out, "3.50")
	assert.Contains(t, out, "12.5")
	assert.Contains(t, out, "g3")
}
