package wordle

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

/*
Matcher indexes the words of a dictionary by letter so feedback prunes a WordList with set
operations instead of checking each candidate.

letters[0]['a'-'a'] all words whose first letter is an a, [1] second letter is an a, ...
contains['a'-'a'] all words with one or more a

a word is represented by its WordID
*/
type Matcher struct {
	letters  [][26]*bitset.BitSet
	contains [26]*bitset.BitSet
}

func newMatcher(words []Word, wordLen int) *Matcher {
	size := uint(len(words))
	ret := &Matcher{letters: make([][26]*bitset.BitSet, wordLen)}
	for c := range 26 {
		ret.contains[c] = bitset.New(size)
		for l := range ret.letters {
			ret.letters[l][c] = bitset.New(size)
		}
	}
	for w, word := range words {
		for l := 0; l < word.Len(); l++ {
			c := word[l] - 'a'
			ret.letters[l][c].Set(uint(w))
			ret.contains[c].Set(uint(w))
		}
	}
	return ret
}

// Prune returns the candidates that Matches accepts for the guess and feedback.
// candidates is not modified.
func (m *Matcher) Prune(candidates *WordList, guess Word, feedback Feedback) (*WordList, error) {
	if guess.Len() != len(feedback) {
		return nil, fmt.Errorf("guess %q has %d letters, feedback has %d: %w", guess, guess.Len(), len(feedback), ErrInvalidLength)
	}
	if guess.Len() != len(m.letters) {
		return nil, fmt.Errorf("guess %q has %d letters, dictionary words have %d: %w", guess, guess.Len(), len(m.letters), ErrInvalidLength)
	}
	if !guess.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWord, guess)
	}
	if err := feedback.Validate(); err != nil {
		return nil, err
	}
	ret := candidates.Clone().bits()
	for i, verdict := range feedback {
		c := guess[i] - 'a'
		switch verdict {
		case Correct:
			ret.InPlaceIntersection(m.letters[i][c])
		case Absent:
			ret.InPlaceDifference(m.contains[c])
		case Present:
			// in the word but would have been green here
			ret.InPlaceIntersection(m.contains[c])
			ret.InPlaceDifference(m.letters[i][c])
		}
	}
	return (*WordList)(ret), nil
}
