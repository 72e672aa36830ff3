package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchingStrings(t *testing.T, d *Dictionary, guess Word, feedback Feedback) []string {
	t.Helper()
	ret := []string{}
	for _, word := range d.Words() {
		ok, err := Matches(word, guess, feedback)
		require.NoError(t, err)
		if ok {
			ret = append(ret, string(word))
		}
	}
	return ret
}

func TestMatcherPruneAgreesWithMatches(t *testing.T) {
	d := newDictionaryOrFail(t, DefaultWords()...)
	tests := []struct {
		guess, feedback string
	}{
		{"crane", "rggyr"},
		{"crane", "rrrrr"},
		{"crane", "ggggg"},
		{"slate", "yryrg"},
		{"speed", "rryry"},
		{"teeth", "gyrrr"},
		{"money", "rygry"},
		{"zzzzz", "rrrrr"},
		{"zzzzz", "yyyyy"},
	}
	for _, test := range tests {
		feedback, err := ParseFeedback(test.feedback)
		require.NoError(t, err)
		all := d.WordlistAll()
		pruned, err := d.Matcher().Prune(all, Word(test.guess), feedback)
		require.NoError(t, err)
		assert.Equal(t, matchingStrings(t, d, Word(test.guess), feedback), d.WordlistStrings(pruned), test.guess+"/"+test.feedback)
		assert.Equal(t, d.Len(), all.Len(), "candidates are not modified")
	}
}

func TestMatcherPruneEvaluatedFeedback(t *testing.T) {
	d := newDictionaryOrFail(t, DefaultWords()...)
	words := d.Words()
	for _, guess := range []Word{"crane", "speed", "heron", "sweet"} {
		for i := 0; i < len(words); i += 37 {
			feedback, err := Evaluate(words[i], guess)
			require.NoError(t, err)
			pruned, err := d.Matcher().Prune(d.WordlistAll(), guess, feedback)
			require.NoError(t, err)
			assert.Equal(t, matchingStrings(t, d, guess, feedback), d.WordlistStrings(pruned), string(guess)+"/"+feedback.String())
		}
	}
}

func TestMatcherPruneSubset(t *testing.T) {
	d := newDictionaryOrFail(t, "train", "crane", "slate", "brain", "grain")
	candidates, err := d.WordlistFromStrings([]string{"train", "slate"})
	require.NoError(t, err)
	feedback, err := ParseFeedback("rggyr")
	require.NoError(t, err)
	pruned, err := d.Matcher().Prune(candidates, "crane", feedback)
	require.NoError(t, err)
	assert.Equal(t, []string{"train"}, d.WordlistStrings(pruned))
}

func TestMatcherTruncatedDictionary(t *testing.T) {
	d := newDictionaryOrFail(t, "train", "crane", "slate", "brain", "grain").Truncate(3)
	feedback, err := ParseFeedback("rggyr")
	require.NoError(t, err)
	pruned, err := d.Matcher().Prune(d.WordlistAll(), "crane", feedback)
	require.NoError(t, err)
	// brain crane grain
	assert.Equal(t, []string{"brain", "grain"}, d.WordlistStrings(pruned))
}

func TestMatcherPruneErrors(t *testing.T) {
	d := newDictionaryOrFail(t, "train", "crane")
	m := d.Matcher()
	_, err := m.Prune(d.WordlistAll(), "crane", AllCorrect(4))
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = m.Prune(d.WordlistAll(), "cranes", AllCorrect(6))
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = m.Prune(d.WordlistAll(), "CRANE", AllCorrect(5))
	assert.ErrorIs(t, err, ErrInvalidWord)
	_, err = m.Prune(d.WordlistAll(), "crane", Feedback{9, 9, 9, 9, 9})
	assert.ErrorIs(t, err, ErrInvalidFeedback)
}
