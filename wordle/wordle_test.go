package wordle

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDictionaryOrFail(t *testing.T, words ...string) *Dictionary {
	t.Helper()
	d, err := NewDictionary(words)
	require.NoError(t, err)
	return d
}

func wordIDOrFail(t *testing.T, d *Dictionary, s string) WordID {
	t.Helper()
	id, ok := d.Word(Word(s))
	require.True(t, ok, "word not in dictionary: "+s)
	return id
}

func TestParseFeedback(t *testing.T) {
	feedback, err := ParseFeedback("rggyr")
	require.NoError(t, err)
	assert.Equal(t, Feedback{Absent, Correct, Correct, Present, Absent}, feedback)
	assert.Equal(t, "rggyr", feedback.String())
	assert.False(t, feedback.Solved())
	assert.True(t, AllCorrect(5).Solved())
	assert.Equal(t, "ggggg", AllCorrect(5).String())

	_, err = ParseFeedback("rgbyr")
	assert.Error(t, err)
	_, err = ParseFeedback("")
	assert.True(t, errors.Is(err, ErrInvalidLength))
}

func TestParseWord(t *testing.T) {
	w, err := ParseWord(" Crane ")
	require.NoError(t, err)
	assert.Equal(t, Word("crane"), w)

	_, err = ParseWord("cr4ne")
	assert.ErrorIs(t, err, ErrInvalidWord)
	_, err = ParseWord("  ")
	assert.ErrorIs(t, err, ErrInvalidWord)
}

func TestUniqueLetters(t *testing.T) {
	assert.Equal(t, 3, Word("llama").UniqueLetters().Cardinality())
	assert.True(t, Word("llama").UniqueLetters().Contains(byte('m')))
	assert.False(t, Word("llama").UniqueLetters().Contains(byte('z')))
}

func TestNewDictionary(t *testing.T) {
	d := newDictionaryOrFail(t, "edcba", "abcde", "EDCBA")
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 5, d.WordLen())
	assert.Equal(t, []Word{"abcde", "edcba"}, d.Words())
	assert.Equal(t, WordID(0), wordIDOrFail(t, d, "abcde"))
	assert.Equal(t, Word("edcba"), d.At(1))
	assert.False(t, d.Contains("zzzzz"))
}

func TestNewDictionaryRejectsLengthMismatch(t *testing.T) {
	_, err := NewDictionary([]string{"abcde", "edcba", "aabbcc"})
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.Contains(t, err.Error(), "aabbcc")
}

func TestNewDictionaryErrors(t *testing.T) {
	_, err := NewDictionary(nil)
	assert.ErrorIs(t, err, ErrEmptyDictionary)
	_, err = NewDictionary([]string{"abcde", "ab-de"})
	assert.ErrorIs(t, err, ErrInvalidWord)
}

func TestAnyWordLength(t *testing.T) {
	d := newDictionaryOrFail(t, "a", "b", "c")
	assert.Equal(t, 1, d.WordLen())
	d = newDictionaryOrFail(t, "strange", "parking")
	assert.Equal(t, 7, d.WordLen())
}

func TestReadWords(t *testing.T) {
	words, err := ReadWords(strings.NewReader("# comment\nCrane\n\n  train \nslate\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "train", "slate"}, words)

	_, err = ReadWords(strings.NewReader("crane\ntrains\n"))
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.Contains(t, err.Error(), "line 2")

	_, err = ReadWords(strings.NewReader("# nothing here\n\n"))
	assert.ErrorIs(t, err, ErrEmptyDictionary)
}

func TestLoadWordsMissingFile(t *testing.T) {
	_, err := LoadWords(t.TempDir() + "/missing.txt")
	assert.Error(t, err)
}

func TestDefaultWords(t *testing.T) {
	words := DefaultWords()
	assert.Greater(t, len(words), 400)
	d := newDictionaryOrFail(t, words...)
	assert.Equal(t, 5, d.WordLen())
	for _, s := range []string{"crane", "train", "slate", "raise"} {
		assert.True(t, d.Contains(Word(s)), s)
	}
	assert.Equal(t, 100, d.Truncate(100).Len())
	assert.Equal(t, d.Len(), d.Truncate(0).Len())
}

func TestWordList(t *testing.T) {
	d := newDictionaryOrFail(t, "crane", "slate", "train", "about")
	all := d.WordlistAll()
	assert.Equal(t, 4, all.Len())
	assert.Equal(t, []string{"about", "crane", "slate", "train"}, d.WordlistStrings(all))

	first, ok := all.FirstWord()
	require.True(t, ok)
	assert.Equal(t, Word("about"), d.At(first))
	third, ok := all.Nth(2)
	require.True(t, ok)
	assert.Equal(t, Word("slate"), d.At(third))
	_, ok = all.Nth(4)
	assert.False(t, ok)

	clone := all.Clone()
	clone.Remove(first)
	assert.Equal(t, 3, clone.Len())
	assert.Equal(t, 4, all.Len())
	assert.False(t, clone.Contains(first))
	assert.False(t, clone.Equal(all))

	empty := d.WordlistEmpty()
	_, ok = empty.FirstWord()
	assert.False(t, ok)

	subset, err := d.WordlistFromStrings([]string{"train", "crane"})
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "train"}, d.WordlistStrings(subset))
	_, err = d.WordlistFromStrings([]string{"zebra"})
	assert.Error(t, err)
}

func TestLetterFrequencies(t *testing.T) {
	d := newDictionaryOrFail(t, "abcde", "fghij")
	lf := NewLetterFrequencies(d, d.WordlistAll())
	for letter := byte('a'); letter <= 'j'; letter++ {
		assert.InDelta(t, 0.5, lf.Of(letter), 1e-9, string(letter))
	}
	assert.Zero(t, lf.Of('z'))
	assert.InDelta(t, 2.5, lf.Score("abcde"), 1e-9)
	assert.InDelta(t, 2.5, lf.Score("fghij"), 1e-9)
}

func TestLetterFrequenciesCountRepeats(t *testing.T) {
	d := newDictionaryOrFail(t, "aabcd", "efghi")
	lf := NewLetterFrequencies(d, d.WordlistAll())
	// a occurs twice in one word of two
	assert.InDelta(t, 1.0, lf.Of('a'), 1e-9)
	// but is only scored once
	assert.InDelta(t, 1.0+0.5+0.5+0.5, lf.Score("aabcd"), 1e-9)
	assert.Equal(t, LetterFrequencies{}, NewLetterFrequencies(d, d.WordlistEmpty()))
}

func TestLetterFrequenciesSkipNonLetters(t *testing.T) {
	d := newDictionaryOrFail(t, "abcde", "fghij")
	wordlist := d.WordlistAll()
	// bypass ParseWord the way a Word conversion does
	d.words[1] = "FGHIJ"
	lf := NewLetterFrequencies(d, wordlist)
	assert.InDelta(t, 0.5, lf.Of('a'), 1e-9)
	assert.Zero(t, lf.Of('f'))
	assert.Zero(t, lf.Of('F'))
	assert.InDelta(t, 2.5, lf.Score("abcde"), 1e-9)
	assert.Zero(t, lf.Score("FGHIJ"))
}

func TestFeedbackValidate(t *testing.T) {
	assert.NoError(t, AllCorrect(5).Validate())
	assert.ErrorIs(t, Feedback{Absent, Verdict(3)}.Validate(), ErrInvalidFeedback)
	_, err := ParseFeedback("rrxrr")
	assert.ErrorIs(t, err, ErrInvalidFeedback)
	assert.True(t, Word("crane").Valid())
	assert.False(t, Word("Crane").Valid())
	assert.False(t, Word("").Valid())
}
